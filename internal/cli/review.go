package cli

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mrz1836/pulse/internal/constants"
	"github.com/mrz1836/pulse/internal/errors"
	"github.com/mrz1836/pulse/internal/review"
	"github.com/mrz1836/pulse/internal/timeutil"
	"github.com/mrz1836/pulse/internal/tui"
)

// Review periods.
const (
	periodDay   = "day"
	periodWeek  = "week"
	periodMonth = "month"
)

// AddReviewCommand adds the review command to the root command.
func AddReviewCommand(root *cobra.Command, flags *GlobalFlags) {
	root.AddCommand(newReviewCmd(flags))
}

func newReviewCmd(flags *GlobalFlags) *cobra.Command {
	var (
		project string
		date    string
	)

	cmd := &cobra.Command{
		Use:   "review [day|week|month]",
		Short: "Review sessions and tasks over a period",
		Long: `Summarize the sessions started, tasks created and tasks completed in a
calendar period, grouped by project. Defaults to today; --date moves the
reference day and --project narrows the review to a single project.

Examples:
  pulse review
  pulse review week
  pulse review month --project pulse
  pulse review day --date 2026-08-01 --output json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			period := periodDay
			if len(args) > 0 {
				period = args[0]
			}
			return runReview(cmd, flags, period, project, date)
		},
	}

	cmd.Flags().StringVarP(&project, "project", "p", "", "narrow the review to one project")
	cmd.Flags().StringVar(&date, "date", "", "reference date (YYYY-MM-DD, default today)")

	return cmd
}

func runReview(cmd *cobra.Command, flags *GlobalFlags, period, project, date string) error {
	ctx := cmd.Context()
	tui.CheckNoColor()

	d, err := newDeps(flags)
	if err != nil {
		return err
	}

	now := d.clock.Now()
	reference := now
	if date != "" {
		parsed, err := time.ParseInLocation(constants.DayKeyLayout, date, time.Local)
		if err != nil {
			return fmt.Errorf("%w: %q is not a valid date (expected YYYY-MM-DD)", errors.ErrInvalidDate, date)
		}
		reference = parsed
	}

	var interval timeutil.Interval
	switch period {
	case periodDay:
		interval = timeutil.DayInterval(reference)
	case periodWeek:
		interval = timeutil.WeekInterval(reference)
	case periodMonth:
		interval = timeutil.MonthInterval(reference)
	default:
		return fmt.Errorf("%w: %q must be one of day, week, month", errors.ErrInvalidPeriod, period)
	}

	report, err := d.engine.Build(ctx, interval, project)
	if err != nil {
		return err
	}

	if flags.Output == OutputJSON {
		return writeReportJSON(cmd, report, now)
	}

	fmt.Fprint(cmd.OutOrStdout(), tui.RenderReport(report, now))
	return nil
}

// reviewResponse is the JSON shape of the review command output.
type reviewResponse struct {
	*review.Report
	TotalDuration string `json:"total_duration"`
}

func writeReportJSON(cmd *cobra.Command, report *review.Report, now time.Time) error {
	resp := reviewResponse{
		Report:        report,
		TotalDuration: timeutil.FormatDuration(report.TotalDuration(now)),
	}
	data, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
