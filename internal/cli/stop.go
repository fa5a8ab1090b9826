package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mrz1836/pulse/internal/errors"
	"github.com/mrz1836/pulse/internal/timeutil"
	"github.com/mrz1836/pulse/internal/tui"
)

// AddStopCommand adds the stop command to the root command.
func AddStopCommand(root *cobra.Command, flags *GlobalFlags) {
	root.AddCommand(newStopCmd(flags))
}

func newStopCmd(flags *GlobalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "stop",
		Short: "End the ongoing session",
		Long: `End the ongoing session and print its duration. Fails when no session
is ongoing.

Examples:
  pulse stop`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runStop(cmd, flags)
		},
	}
}

func runStop(cmd *cobra.Command, flags *GlobalFlags) error {
	ctx := cmd.Context()
	logger := GetLogger()
	tui.CheckNoColor()

	d, err := newDeps(flags)
	if err != nil {
		return err
	}

	// Precondition check before mutating anything.
	ongoing, err := d.repo.OngoingSession(ctx)
	if err != nil {
		return err
	}
	if ongoing == nil {
		return fmt.Errorf("failed to stop: %w", errors.ErrNoOngoingSession)
	}

	session, err := d.repo.EndSession(ctx, ongoing)
	if err != nil {
		return err
	}

	duration := session.Duration(d.clock.Now())
	logger.Info().
		Str("session_id", session.ID).
		Str("project", session.Project).
		Dur("duration", duration).
		Msg("session ended")

	fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
		tui.StyleSuccess.Render("Session on"),
		tui.StyleBold.Render(session.Project),
		fmt.Sprintf("ended after %s", timeutil.FormatDuration(duration)))
	return nil
}
