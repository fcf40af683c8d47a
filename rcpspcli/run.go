package rcpspcli

import (
	"context"
	"log/slog"

	"github.com/rs/xid"

	"rcpsp"
)

// GAConfig converts Config's flat env-loaded fields into a rcpsp.Config,
// treating NoImproveStop == 0 as "disabled" per its envDefault.
func (c Config) GAConfig() rcpsp.Config {
	cfg := rcpsp.Config{
		Generations:        c.Generations,
		PopulationSize:     c.PopulationSize,
		TournamentK:        c.TournamentK,
		Elitism:            c.Elitism,
		CrossoverRate:      c.CrossoverRate,
		MutationRate:       c.MutationRate,
		MutationSwapBudget: c.MutationSwapBudget,
		Seed:               c.Seed,
		Workers:            c.Workers,
	}
	if c.NoImproveStop > 0 {
		stop := c.NoImproveStop
		cfg.NoImproveStop = &stop
	}
	return cfg
}

// Run drives one full solver invocation against an already-built
// project index: it builds the initial population, evolves it while
// logging progress through logger, and returns the result tagged with a
// fresh run identifier. logger must not be nil; pass slog.Default() if
// the caller has no preference.
func Run(ctx context.Context, logger *slog.Logger, idx *rcpsp.Index, cfg Config) (runID string, res rcpsp.EvolutionResult, err error) {
	runID = xid.New().String()
	log := logger.With("run_id", runID, "project_path", cfg.ProjectPath)

	gaCfg := cfg.GAConfig()
	if err := gaCfg.Validate(); err != nil {
		log.Error("invalid solver configuration", "error", err)
		return runID, rcpsp.EvolutionResult{}, err
	}

	population := rcpsp.InitialPopulation(idx, gaCfg.PopulationSize, gaCfg.Seed)
	log.Info("starting evolution",
		"generations", gaCfg.Generations,
		"population_size", gaCfg.PopulationSize,
		"workers", gaCfg.Workers,
	)

	res, err = rcpsp.Evolve(ctx, idx, gaCfg, population)
	if err != nil {
		log.Error("evolve failed", "error", err)
		return runID, rcpsp.EvolutionResult{}, err
	}

	for _, h := range res.History {
		log.Debug("generation complete", "generation", h.Generation, "best", h.Best, "worst", h.Worst)
	}
	log.Info("evolution complete",
		"generations_run", res.GenerationsRun,
		"stopped_reason", res.StoppedReason,
		"best_makespan", res.BestMakespan,
	)

	return runID, res, nil
}
