package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mrz1836/pulse/internal/tui"
)

// AddStatusCommand adds the status command to the root command.
func AddStatusCommand(root *cobra.Command, flags *GlobalFlags) {
	root.AddCommand(newStatusCmd(flags))
}

func newStatusCmd(flags *GlobalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the ongoing session, if any",
		Long: `Show the ongoing session's project, focus and elapsed time.

Examples:
  pulse status
  pulse status --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runStatus(cmd, flags)
		},
	}
}

// statusResponse is the JSON shape of the status command output.
type statusResponse struct {
	Ongoing bool   `json:"ongoing"`
	Session any    `json:"session,omitempty"`
	Elapsed string `json:"elapsed,omitempty"`
}

func runStatus(cmd *cobra.Command, flags *GlobalFlags) error {
	ctx := cmd.Context()
	tui.CheckNoColor()

	d, err := newDeps(flags)
	if err != nil {
		return err
	}

	session, err := d.repo.OngoingSession(ctx)
	if err != nil {
		return err
	}

	now := d.clock.Now()

	if flags.Output == OutputJSON {
		resp := statusResponse{Ongoing: session != nil}
		if session != nil {
			resp.Session = session
			resp.Elapsed = session.Duration(now).String()
		}
		data, err := json.MarshalIndent(resp, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal status: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	fmt.Fprint(cmd.OutOrStdout(), tui.RenderSessionStatus(session, now))
	return nil
}
