// Package hook runs a project's on-start command when a session begins.
// Hook failures are logged and reported to the caller, but never propagate
// into session state.
package hook

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/rs/zerolog"

	pulseerrors "github.com/mrz1836/pulse/internal/errors"
)

// Runner executes hook command strings through the shell.
type Runner struct {
	logger zerolog.Logger
}

// NewRunner creates a Runner that logs hook output to the given logger.
func NewRunner(logger zerolog.Logger) *Runner {
	return &Runner{logger: logger}
}

// Run executes the command string via `sh -c` in dir (or the process working
// directory when dir is empty). Output is captured to the debug log; a
// non-zero exit is returned as ErrHookFailed.
func (r *Runner) Run(ctx context.Context, command, dir string) error {
	if strings.TrimSpace(command) == "" {
		return nil
	}

	cmd := exec.CommandContext(ctx, "sh", "-c", command) //#nosec G204 -- command comes from the user's own project config
	if dir != "" {
		cmd.Dir = dir
	}

	output, err := cmd.CombinedOutput()
	if len(output) > 0 {
		r.logger.Debug().
			Str("command", command).
			Str("output", strings.TrimRight(string(output), "\n")).
			Msg("hook output")
	}

	if err != nil {
		return fmt.Errorf("%w: %s: %w", pulseerrors.ErrHookFailed, command, err)
	}

	r.logger.Debug().Str("command", command).Msg("hook completed")
	return nil
}
