// Package cli provides the command-line interface for pulse.
package cli

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mrz1836/pulse/internal/config"
	"github.com/mrz1836/pulse/internal/errors"
	"github.com/mrz1836/pulse/internal/tui"
)

// BuildInfo contains version information set at build time via ldflags.
type BuildInfo struct {
	// Version is the semantic version (e.g., "1.0.0").
	Version string
	// Commit is the git commit hash.
	Commit string
	// Date is the build date.
	Date string
}

// globalLogger stores the initialized logger for use by subcommands.
// This is set during PersistentPreRunE and should be accessed via GetLogger.
// Access is protected by globalLoggerMu for thread safety.
var (
	globalLogger   zerolog.Logger //nolint:gochecknoglobals // CLI logger requires global access
	globalLoggerMu sync.RWMutex   //nolint:gochecknoglobals // Protects globalLogger
)

// GetLogger returns the initialized logger for use by subcommands.
//
// IMPORTANT: This function MUST only be called after the root command's
// PersistentPreRunE has executed. Calling it before initialization will
// return a zero-value logger that discards all log output.
//
// This function is safe for concurrent use.
func GetLogger() zerolog.Logger {
	globalLoggerMu.RLock()
	defer globalLoggerMu.RUnlock()
	return globalLogger
}

// newRootCmd creates and returns the root command for the pulse CLI.
// This function-based approach avoids package-level globals, making the
// code more testable.
func newRootCmd(flags *GlobalFlags, info BuildInfo) *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "pulse",
		Short: "pulse - personal session, task and review tracker",
		Long: `pulse tracks focused work sessions, todo items and periodic reviews,
all persisted as flat JSON documents on local disk.

Features:
  • Start and stop focused sessions tied to a project
  • Capture tasks into projects or a quick inbox
  • Daily, weekly and monthly reviews grouped by project
  • Project on-start hooks`,
		Version: formatVersion(info),
		// Run displays help when the root command is invoked without
		// subcommands. This ensures PersistentPreRunE runs for flag
		// validation.
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Bind flags to Viper
			if err := BindGlobalFlags(v, cmd); err != nil {
				return fmt.Errorf("failed to bind flags: %w", err)
			}

			// Fill unset flags from config.yaml and PULSE_* environment
			// variables so both take effect without explicit flags.
			cfg, err := config.Load(flags.Home)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			ApplyConfigDefaults(cmd, flags, cfg)

			// Validate output format
			if !IsValidOutputFormat(flags.Output) {
				return fmt.Errorf("%w: %q must be one of %v", errors.ErrInvalidOutputFormat, flags.Output, ValidOutputFormats())
			}

			// Initialize logger based on flags (protected by mutex)
			globalLoggerMu.Lock()
			globalLogger = InitLogger(flags.Verbose, flags.Quiet, flags.Home)
			globalLoggerMu.Unlock()

			return nil
		},
		// SilenceUsage prevents printing usage on error
		// (we handle our own error messages)
		SilenceUsage: true,
		// SilenceErrors lets Execute print the user-facing message and
		// suggested action instead of the raw error chain.
		SilenceErrors: true,
	}

	// Add global flags
	AddGlobalFlags(cmd, flags)

	// Add subcommands
	AddInitCommand(cmd, flags)
	AddStartCommand(cmd, flags)
	AddStopCommand(cmd, flags)
	AddStatusCommand(cmd, flags)
	AddTaskCommand(cmd, flags)
	AddReviewCommand(cmd, flags)
	AddProjectCommand(cmd, flags)

	return cmd
}

// formatVersion creates the version string from build info.
func formatVersion(info BuildInfo) string {
	if info.Version == "" {
		info.Version = "dev"
	}
	if info.Commit == "" {
		info.Commit = "none"
	}
	if info.Date == "" {
		info.Date = "unknown"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", info.Version, info.Commit, info.Date)
}

// Execute runs the root command with the provided context and build info.
// Errors are printed as user-facing messages with a suggested action where
// one exists; the raw error is still returned for exit-code mapping.
func Execute(ctx context.Context, info BuildInfo) error {
	flags := &GlobalFlags{}
	//nolint:contextcheck // Cobra command pattern uses cmd.Context() internally
	cmd := newRootCmd(flags, info)
	defer CloseLogFile()

	err := cmd.ExecuteContext(ctx)
	if err != nil {
		msg, action := errors.Actionable(err)
		fmt.Fprintln(cmd.ErrOrStderr(), tui.StyleError.Render("Error: "+msg))
		if action != "" {
			fmt.Fprintln(cmd.ErrOrStderr(), tui.StyleMuted.Render(action))
		}
	}
	return err
}
