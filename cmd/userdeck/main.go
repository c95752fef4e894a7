package main

import (
	"os"

	"github.com/cristianoliveira/userdeck/cmd"
	"github.com/cristianoliveira/userdeck/internal/errors"
)

func main() {
	os.Exit(run(cmd.Execute))
}

// run executes the command tree and maps its error to an exit code.
func run(execute func() error) int {
	if err := execute(); err != nil {
		errors.Report(errors.NewDefaultCLIHandler(), "", err)
		return 1
	}
	return 0
}
