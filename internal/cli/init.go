package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mrz1836/pulse/internal/config"
	"github.com/mrz1836/pulse/internal/constants"
	"github.com/mrz1836/pulse/internal/domain"
	"github.com/mrz1836/pulse/internal/errors"
	"github.com/mrz1836/pulse/internal/tui"
)

// AddInitCommand adds the init command to the root command.
func AddInitCommand(root *cobra.Command, flags *GlobalFlags) {
	root.AddCommand(newInitCmd(flags))
}

func newInitCmd(flags *GlobalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize the pulse home directory",
		Long: `Create the pulse home directory with its configuration and empty
state documents (store, task index, session index).

Running init on an existing home is safe; existing documents are left
untouched.

Examples:
  pulse init
  pulse init --home /tmp/pulse`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd, flags)
		},
	}
}

func runInit(cmd *cobra.Command, flags *GlobalFlags) error {
	ctx := cmd.Context()
	logger := GetLogger()
	tui.CheckNoColor()

	d, err := newDeps(flags)
	if err != nil {
		return err
	}

	// Default config.yaml plus the reserved config.json document.
	if err := config.WriteDefault(d.cfg.Home); err != nil {
		return errors.Wrap(err, "failed to initialize config")
	}
	reservedPath := d.store.Path(constants.ReservedConfigFileName)
	var reserved map[string]any
	if err := d.store.LoadOrInit(ctx, reservedPath, &reserved, func() any { return map[string]any{} }); err != nil {
		return errors.Wrapf(err, "failed to initialize %s", constants.ReservedConfigFileName)
	}

	// Materialize the store document and both indexes.
	if err := d.repo.UpdateStoreDoc(ctx, func(*domain.StoreDoc) {}); err != nil {
		return errors.Wrap(err, "failed to initialize store document")
	}
	if _, err := d.repo.Index().LoadTaskIndex(ctx); err != nil {
		return errors.Wrap(err, "failed to initialize task index")
	}
	if _, err := d.repo.Index().LoadSessionIndex(ctx); err != nil {
		return errors.Wrap(err, "failed to initialize session index")
	}

	logger.Debug().Str("home", d.cfg.Home).Msg("initialized pulse home")
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n",
		tui.StyleSuccess.Render("Initialized pulse home at"), d.cfg.Home)
	if logPath, err := LogFilePath(d.cfg.Home); err == nil {
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", tui.StyleMuted.Render("Logging to "+logPath))
	}
	return nil
}
