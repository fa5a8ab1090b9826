package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/mrz1836/pulse/internal/domain"
	"github.com/mrz1836/pulse/internal/errors"
	"github.com/mrz1836/pulse/internal/hook"
	"github.com/mrz1836/pulse/internal/tui"
)

// AddStartCommand adds the start command to the root command.
func AddStartCommand(root *cobra.Command, flags *GlobalFlags) {
	root.AddCommand(newStartCmd(flags))
}

func newStartCmd(flags *GlobalFlags) *cobra.Command {
	var focus string

	cmd := &cobra.Command{
		Use:   "start [project]",
		Short: "Start a focused session on a project",
		Long: `Start a focused work session tied to a project. Only one session can be
ongoing at a time.

When the project is omitted, a picker over the registered projects is shown.
The session's focus is prompted for unless --focus is given. If the project
defines an on-start command it is executed; a failing hook is logged and the
session starts anyway.

Examples:
  pulse start
  pulse start pulse --focus "ship the review command"`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			project := ""
			if len(args) > 0 {
				project = args[0]
			}
			return runStart(cmd, flags, project, focus)
		},
	}

	cmd.Flags().StringVarP(&focus, "focus", "f", "", "what this session is meant to accomplish")

	return cmd
}

func runStart(cmd *cobra.Command, flags *GlobalFlags, projectName, focus string) error {
	ctx := cmd.Context()
	logger := GetLogger()
	tui.CheckNoColor()

	d, err := newDeps(flags)
	if err != nil {
		return err
	}

	// Caller-side singleton guard: reject before any state is mutated.
	ongoing, err := d.repo.OngoingSession(ctx)
	if err != nil {
		return err
	}
	if ongoing != nil {
		return fmt.Errorf("session on %q already ongoing: %w", ongoing.Project, errors.ErrSessionOngoing)
	}

	project, err := resolveProject(ctx, d, projectName)
	if err != nil {
		return err
	}

	if focus == "" {
		if err := promptFocus(&focus); err != nil {
			return err
		}
	}

	session, err := d.repo.CreateSession(ctx, project.Name, focus)
	if err != nil {
		return err
	}

	logger.Info().
		Str("session_id", session.ID).
		Str("project", session.Project).
		Msg("session started")

	if d.cfg.Hooks.Enabled && project.OnStart != "" {
		runner := hook.NewRunner(logger)
		if err := runner.Run(ctx, project.OnStart, project.WorkingDir); err != nil {
			// Hook failures never affect session state.
			logger.Warn().Err(err).Str("project", project.Name).Msg("on-start hook failed")
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", tui.StyleWarning.Render(errors.UserMessage(err)))
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s %s",
		tui.StyleSuccess.Render("Session started on"), tui.StyleBold.Render(project.Name))
	if session.Focus != "" {
		fmt.Fprintf(cmd.OutOrStdout(), " — %s", session.Focus)
	}
	fmt.Fprintln(cmd.OutOrStdout())
	return nil
}

// resolveProject returns the named project, or prompts the user to pick one
// when name is empty.
func resolveProject(ctx context.Context, d *deps, name string) (*domain.Project, error) {
	if name != "" {
		return d.repo.GetProject(ctx, name)
	}

	projects, err := d.repo.ListProjects(ctx)
	if err != nil {
		return nil, err
	}
	if len(projects) == 0 {
		return nil, fmt.Errorf("no projects registered, add one with `pulse project add`: %w", errors.ErrProjectNotFound)
	}

	options := make([]huh.Option[string], 0, len(projects))
	for _, p := range projects {
		options = append(options, huh.NewOption(p.Name, p.Name))
	}

	var selected string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Which project?").
				Options(options...).
				Value(&selected),
		),
	)
	if err := form.Run(); err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrOperationCanceled, err)
	}

	return d.repo.GetProject(ctx, selected)
}

// promptFocus asks what the session is meant to accomplish.
func promptFocus(focus *string) error {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("What is the focus of this session?").
				Value(focus),
		),
	)
	if err := form.Run(); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrOperationCanceled, err)
	}
	return nil
}
