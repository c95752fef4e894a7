// Package hooks runs user scripts around CLI mutations.
//
// Scripts live in <hooks_dir>/<hook point>/ and run in name order. Only
// executable regular files are considered.
package hooks

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/cristianoliveira/userdeck/internal/colors"
	"github.com/cristianoliveira/userdeck/internal/config"
	"github.com/cristianoliveira/userdeck/internal/logging"
)

// Hook points.
const (
	PreRemove      = "pre-remove"
	PostRemove     = "post-remove"
	PostFavorite   = "post-favorite"
	PostUnfavorite = "post-unfavorite"
	PostImport     = "post-import"
)

// Failure modes.
const (
	FailureAbort  = "abort"
	FailureWarn   = "warn"
	FailureIgnore = "ignore"
)

// stderr receives script output.
var stderr io.Writer = os.Stderr

// Dir returns the configured hooks directory.
func Dir() string {
	if dir := config.Get("hooks_dir", ""); dir != "" {
		return dir
	}
	return filepath.Join(config.Get("config_dir", ""), "hooks")
}

func failureMode() string {
	mode := config.Get("hooks_failure_mode", FailureWarn)
	switch mode {
	case FailureAbort, FailureWarn, FailureIgnore:
		return mode
	}
	return FailureWarn
}

func timeout() time.Duration {
	return time.Duration(config.GetInt("hooks_timeout_seconds", 30)) * time.Second
}

type script struct {
	path string
	name string
}

func collect(dir string) []script {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	scripts := []script{}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		path := filepath.Join(dir, e.Name())
		info, err := os.Stat(path)
		if err != nil || !info.Mode().IsRegular() || info.Mode()&0111 == 0 {
			continue
		}
		scripts = append(scripts, script{path: path, name: e.Name()})
	}
	sort.Slice(scripts, func(i, j int) bool {
		return scripts[i].name < scripts[j].name
	})
	return scripts
}

func scriptNames(scripts []script) []string {
	names := make([]string, 0, len(scripts))
	for _, s := range scripts {
		names = append(names, s.name)
	}
	return names
}

// Run executes the scripts for hookPoint. envVars are KEY=VALUE pairs added
// to the script environment. An error is returned only when the failure
// mode is abort.
func Run(ctx context.Context, hookPoint string, envVars ...string) error {
	scripts := collect(filepath.Join(Dir(), hookPoint))
	if len(scripts) == 0 {
		return nil
	}

	env := buildEnv(hookPoint, envVars)
	mode := failureMode()
	limit := timeout()
	log := logging.With("component", "hooks", "hook_point", hookPoint)
	log.Debug("running hooks", "scripts", strings.Join(scriptNames(scripts), ","))

	for _, s := range scripts {
		err := runScript(ctx, s, env, limit, log)
		if err == nil {
			continue
		}
		switch mode {
		case FailureAbort:
			return err
		case FailureWarn:
			colors.Warning(err.Error())
		}
	}
	return nil
}

func runScript(ctx context.Context, s script, env []string, limit time.Duration, log logging.Logger) error {
	ctx, cancel := context.WithTimeout(ctx, limit)
	defer cancel()

	start := time.Now()
	cmd := exec.CommandContext(ctx, s.path)
	cmd.Env = env
	cmd.WaitDelay = time.Second
	output, err := cmd.CombinedOutput()
	duration := time.Since(start)
	if len(output) > 0 {
		_, _ = stderr.Write(output)
	}
	if ctx.Err() == context.DeadlineExceeded {
		log.Warn("hook timed out", "script", s.name, "timeout", limit.String())
		return fmt.Errorf("hook %s timed out after %s", s.name, limit)
	}
	if err != nil {
		log.Warn("hook failed", "script", s.name, "error", err.Error())
		return fmt.Errorf("hook %s failed: %w", s.name, err)
	}
	log.Debug("hook completed", "script", s.name, "duration_ms", duration.Milliseconds())
	return nil
}

func buildEnv(hookPoint string, envVars []string) []string {
	env := os.Environ()
	env = append(env,
		"HOOK_POINT="+hookPoint,
		"HOOK_TIMESTAMP="+time.Now().Format(time.RFC3339),
	)
	if exe, err := os.Executable(); err == nil {
		env = append(env, "USERDECK_BINARY="+exe)
	}
	for _, v := range envVars {
		if strings.Contains(v, "=") {
			env = append(env, v)
		}
	}
	return env
}
