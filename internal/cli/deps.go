package cli

import (
	"fmt"

	"github.com/mrz1836/pulse/internal/clock"
	"github.com/mrz1836/pulse/internal/config"
	"github.com/mrz1836/pulse/internal/record"
	"github.com/mrz1836/pulse/internal/review"
	"github.com/mrz1836/pulse/internal/storage"
)

// deps bundles the collaborators every command needs: the resolved
// configuration, the document store and the record repository. Each command
// invocation builds a fresh set; nothing is cached across operations.
type deps struct {
	cfg    *config.Config
	store  *storage.Store
	repo   *record.Repository
	engine *review.Engine
	clock  clock.Clock
}

// newDeps resolves configuration and wires the repository for a command.
func newDeps(flags *GlobalFlags) (*deps, error) {
	cfg, err := config.Load(flags.Home)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	store, err := storage.NewStore(cfg.Home)
	if err != nil {
		return nil, err
	}

	clk := clock.RealClock{}
	repo := record.NewRepository(store, clk)

	return &deps{
		cfg:    cfg,
		store:  store,
		repo:   repo,
		engine: review.NewEngine(repo, clk),
		clock:  clk,
	}, nil
}
