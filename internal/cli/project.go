package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mrz1836/pulse/internal/domain"
	"github.com/mrz1836/pulse/internal/tui"
)

// AddProjectCommand adds the project command group to the root command.
func AddProjectCommand(root *cobra.Command, flags *GlobalFlags) {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects",
		Long:  `Register and list the projects sessions and tasks attach to.`,
	}

	cmd.AddCommand(newProjectAddCmd(flags))
	cmd.AddCommand(newProjectListCmd(flags))

	root.AddCommand(cmd)
}

func newProjectAddCmd(flags *GlobalFlags) *cobra.Command {
	var (
		workingDir string
		onStart    string
		github     string
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Register a project",
		Long: `Register a project by name. The name "inbox" is reserved for tasks
without a project.

Examples:
  pulse project add pulse --dir ~/code/pulse --on-start "git fetch"
  pulse project add docs --github mrz1836/pulse`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			project := domain.Project{
				Name:       args[0],
				WorkingDir: workingDir,
				OnStart:    onStart,
				GitHub:     github,
			}
			return runProjectAdd(cmd, flags, project)
		},
	}

	cmd.Flags().StringVar(&workingDir, "dir", "", "working directory for the on-start hook")
	cmd.Flags().StringVar(&onStart, "on-start", "", "shell command to run when a session starts")
	cmd.Flags().StringVar(&github, "github", "", "owner/repo reference")

	return cmd
}

func runProjectAdd(cmd *cobra.Command, flags *GlobalFlags, project domain.Project) error {
	ctx := cmd.Context()
	logger := GetLogger()
	tui.CheckNoColor()

	d, err := newDeps(flags)
	if err != nil {
		return err
	}

	if err := d.repo.AddProject(ctx, project); err != nil {
		return err
	}

	logger.Info().Str("project", project.Name).Msg("project registered")
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n",
		tui.StyleSuccess.Render("Registered project"), tui.StyleBold.Render(project.Name))
	return nil
}

func newProjectListCmd(flags *GlobalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered projects",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runProjectList(cmd, flags)
		},
	}
}

func runProjectList(cmd *cobra.Command, flags *GlobalFlags) error {
	ctx := cmd.Context()
	tui.CheckNoColor()

	d, err := newDeps(flags)
	if err != nil {
		return err
	}

	projects, err := d.repo.ListProjects(ctx)
	if err != nil {
		return err
	}
	if len(projects) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), tui.StyleMuted.Render("No projects registered."))
		return nil
	}

	for _, p := range projects {
		line := tui.StyleBold.Render(p.Name)
		if p.WorkingDir != "" {
			line += tui.StyleMuted.Render("  " + p.WorkingDir)
		}
		if p.GitHub != "" {
			line += tui.StyleMuted.Render("  " + p.GitHub)
		}
		fmt.Fprintln(cmd.OutOrStdout(), line)
	}
	return nil
}
