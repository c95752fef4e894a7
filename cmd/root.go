// Package cmd holds the root command shared by the userdeck binary.
package cmd

import (
	"fmt"
	"strings"

	"github.com/cristianoliveira/userdeck/internal/colors"
	"github.com/cristianoliveira/userdeck/internal/config"
	"github.com/cristianoliveira/userdeck/internal/logging"
	"github.com/cristianoliveira/userdeck/internal/version"
	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:           "userdeck",
	Short:         "Browse, filter and curate a list of users from the terminal.",
	Long:          `Browse, filter and curate a list of users from the terminal.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config.Load()
		colors.SetDebug(config.GetBool("debug", false))
		if err := logging.InitGlobal(); err != nil {
			colors.Warning(fmt.Sprintf("file logging disabled: %v", err))
		}
		logging.Debug("command started", "command", cmd.Name())
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.Debug("command finished", "command", cmd.Name())
		_ = logging.ShutdownGlobal()
	},
}

// Execute runs the root command. This is called by main.main().
func Execute() error {
	return RootCmd.Execute()
}

func init() {
	RootCmd.Version = version.String()

	// Hide the completion command
	RootCmd.CompletionOptions.HiddenDefaultCmd = true

	RootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		if cmd != RootCmd {
			fmt.Fprint(cmd.OutOrStdout(), cmd.UsageString())
			return
		}
		printHelpText(cmd)
	})
}

func printHelpText(cmd *cobra.Command) {
	commandOrder := []string{
		"tui",
		"list",
		"favorite",
		"unfavorite",
		"toggle-favorite",
		"remove",
		"import",
		"version",
	}

	var cmdLines []string
	for _, name := range commandOrder {
		var found *cobra.Command
		for _, c := range cmd.Commands() {
			if c.Name() == name {
				found = c
				break
			}
		}
		if found == nil {
			continue
		}
		cmdLines = append(cmdLines, fmt.Sprintf("    %-22s %s", found.Use, found.Short))
	}

	helpText := fmt.Sprintf(`userdeck v%s

Browse, filter and curate a list of users from the terminal.

USAGE:
    userdeck [COMMAND] [OPTIONS]

COMMANDS:
%s

OPTIONS:
    -h, --help      Show help message
`, version.String(), strings.Join(cmdLines, "\n"))
	fmt.Fprint(cmd.OutOrStdout(), helpText)
}
