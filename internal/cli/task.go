package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/mrz1836/pulse/internal/domain"
	"github.com/mrz1836/pulse/internal/errors"
	"github.com/mrz1836/pulse/internal/tui"
)

// AddTaskCommand adds the task command group to the root command.
func AddTaskCommand(root *cobra.Command, flags *GlobalFlags) {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage todo items",
		Long:  `Capture, list and complete todo items. Tasks without a project land in the inbox.`,
	}

	cmd.AddCommand(newTaskAddCmd(flags))
	cmd.AddCommand(newTaskListCmd(flags))
	cmd.AddCommand(newTaskDoneCmd(flags))

	root.AddCommand(cmd)
}

func newTaskAddCmd(flags *GlobalFlags) *cobra.Command {
	var project string

	cmd := &cobra.Command{
		Use:   "add <description...>",
		Short: "Add a task",
		Long: `Add a todo item, optionally assigned to a project. Without --project the
task goes to the inbox.

Examples:
  pulse task add Write release notes
  pulse task add --project pulse Fix the index test`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTaskAdd(cmd, flags, strings.Join(args, " "), project)
		},
	}

	cmd.Flags().StringVarP(&project, "project", "p", "", "project to assign the task to")

	return cmd
}

func runTaskAdd(cmd *cobra.Command, flags *GlobalFlags, description, project string) error {
	ctx := cmd.Context()
	logger := GetLogger()
	tui.CheckNoColor()

	d, err := newDeps(flags)
	if err != nil {
		return err
	}

	// An assigned project must exist; the inbox needs no registration.
	if project != "" {
		if _, err := d.repo.GetProject(ctx, project); err != nil {
			return err
		}
	}

	task, err := d.repo.CreateTask(ctx, description, project)
	if err != nil {
		return err
	}

	logger.Info().Str("task_id", task.ID).Str("group", task.Group()).Msg("task created")
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
		tui.StyleSuccess.Render("Added"), task.Description,
		tui.StyleMuted.Render("→ "+task.Group()))
	return nil
}

func newTaskListCmd(flags *GlobalFlags) *cobra.Command {
	var (
		project string
		inbox   bool
		all     bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long: `List incomplete tasks, newest first. --all includes completed tasks,
--project narrows to one project and --inbox to unassigned tasks.

Examples:
  pulse task list
  pulse task list --project pulse --all
  pulse task list --inbox`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTaskList(cmd, flags, project, inbox, all)
		},
	}

	cmd.Flags().StringVarP(&project, "project", "p", "", "only tasks of this project")
	cmd.Flags().BoolVar(&inbox, "inbox", false, "only tasks without a project")
	cmd.Flags().BoolVarP(&all, "all", "a", false, "include completed tasks")
	cmd.MarkFlagsMutuallyExclusive("project", "inbox")

	return cmd
}

func runTaskList(cmd *cobra.Command, flags *GlobalFlags, project string, inbox, all bool) error {
	ctx := cmd.Context()
	tui.CheckNoColor()

	d, err := newDeps(flags)
	if err != nil {
		return err
	}

	idx, err := d.repo.Index().LoadTaskIndex(ctx)
	if err != nil {
		return err
	}

	// Pick the narrowest index list for the filter, then refine in memory.
	var ids []string
	switch {
	case project != "":
		ids = idx.ByProject[project]
	case inbox:
		ids = idx.Inbox
	case all:
		ids = idx.All
	default:
		ids = idx.Incomplete
	}

	tasks, err := d.repo.HydrateTasks(ctx, ids)
	if err != nil {
		return err
	}

	if !all {
		incomplete := tasks[:0]
		for _, t := range tasks {
			if !t.Done {
				incomplete = append(incomplete, t)
			}
		}
		tasks = incomplete
	}

	fmt.Fprint(cmd.OutOrStdout(), tui.RenderTaskList(tasks))
	return nil
}

func newTaskDoneCmd(flags *GlobalFlags) *cobra.Command {
	var ids []string

	cmd := &cobra.Command{
		Use:   "done",
		Short: "Complete tasks",
		Long: `Toggle completion on tasks. Without flags an interactive multi-select
over the incomplete tasks is shown; --id selects tasks non-interactively and
may be repeated. Toggling a completed task marks it incomplete again.

Examples:
  pulse task done
  pulse task done --id 0d5af4a2-3a53-4e82-9d1b-8f14e78a5f10`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTaskDone(cmd, flags, ids)
		},
	}

	cmd.Flags().StringArrayVar(&ids, "id", nil, "task id to toggle (repeatable)")

	return cmd
}

func runTaskDone(cmd *cobra.Command, flags *GlobalFlags, ids []string) error {
	ctx := cmd.Context()
	logger := GetLogger()
	tui.CheckNoColor()

	d, err := newDeps(flags)
	if err != nil {
		return err
	}

	if len(ids) == 0 {
		ids, err = promptTaskSelection(ctx, d)
		if err != nil {
			return err
		}
		if len(ids) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), tui.StyleMuted.Render("Nothing selected."))
			return nil
		}
	}

	tasks, err := d.repo.HydrateTasks(ctx, ids)
	if err != nil {
		return err
	}

	// Batch toggle: one index load, N reindex operations, one index save.
	if err := d.repo.ToggleTasks(ctx, tasks); err != nil {
		return err
	}

	for _, t := range tasks {
		logger.Info().Str("task_id", t.ID).Bool("done", t.Done).Msg("task toggled")
		mark := tui.StyleSuccess.Render("✓")
		if !t.Done {
			mark = tui.StyleWarning.Render("↺")
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", mark, t.Description)
	}
	return nil
}

// promptTaskSelection shows a multi-select over the incomplete tasks and
// returns the chosen ids. Nothing is preselected.
func promptTaskSelection(ctx context.Context, d *deps) ([]string, error) {
	idx, err := d.repo.Index().LoadTaskIndex(ctx)
	if err != nil {
		return nil, err
	}
	tasks, err := d.repo.HydrateTasks(ctx, idx.Incomplete)
	if err != nil {
		return nil, err
	}
	if len(tasks) == 0 {
		return nil, fmt.Errorf("failed to select tasks: %w", errors.ErrNoTasksFound)
	}

	options := make([]huh.Option[string], 0, len(tasks))
	for _, t := range tasks {
		options = append(options, huh.NewOption(taskLabel(t), t.ID))
	}

	var selected []string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Which tasks are done?").
				Options(options...).
				Value(&selected),
		),
	)
	if err := form.Run(); err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrOperationCanceled, err)
	}

	return selected, nil
}

func taskLabel(t *domain.Task) string {
	if t.InInbox() {
		return t.Description
	}
	return fmt.Sprintf("%s (%s)", t.Description, t.Project)
}
