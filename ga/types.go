// Package ga implements the genetic optimizer: precedence-preserving
// crossover and mutation operators, tournament selection with elitism,
// and the evolution loop that drives them, evaluating each generation's
// offspring batch on a bounded worker pool.
package ga

import (
	"fmt"

	"rcpsp/schedule"
)

// Config is the tunable configuration for Evolve.
type Config struct {
	Generations        int
	PopulationSize     int
	TournamentK        int
	Elitism            int
	CrossoverRate      float64
	MutationRate       float64
	MutationSwapBudget int
	NoImproveStop      *int // nil means disabled
	Seed               uint64
	Workers            int
}

// DefaultConfig returns reasonable defaults (elitism 1, tournament k 3)
// for fields left unset by a caller.
func DefaultConfig() Config {
	return Config{
		Generations:        100,
		PopulationSize:     50,
		TournamentK:        3,
		Elitism:            1,
		CrossoverRate:      0.9,
		MutationRate:       0.1,
		MutationSwapBudget: 8,
		Workers:            1,
	}
}

// Validate reports the first configuration violation found, if any.
func (c Config) Validate() error {
	if c.Generations < 0 {
		return fmt.Errorf("generations must be >= 0 (got %d)", c.Generations)
	}
	if c.PopulationSize < 1 {
		return fmt.Errorf("population_size must be >= 1 (got %d)", c.PopulationSize)
	}
	if c.TournamentK < 1 {
		return fmt.Errorf("tournament_k must be >= 1 (got %d)", c.TournamentK)
	}
	if c.Elitism < 0 {
		return fmt.Errorf("elitism must be >= 0 (got %d)", c.Elitism)
	}
	if c.CrossoverRate < 0 || c.CrossoverRate > 1 {
		return fmt.Errorf("crossover_rate must be in [0,1] (got %v)", c.CrossoverRate)
	}
	if c.MutationRate < 0 || c.MutationRate > 1 {
		return fmt.Errorf("mutation_rate must be in [0,1] (got %v)", c.MutationRate)
	}
	if c.MutationSwapBudget < 0 {
		return fmt.Errorf("mutation_swap_budget must be >= 0 (got %d)", c.MutationSwapBudget)
	}
	if c.NoImproveStop != nil && *c.NoImproveStop < 0 {
		return fmt.Errorf("no_improve_stop must be >= 0 when set (got %d)", *c.NoImproveStop)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be >= 1 (got %d)", c.Workers)
	}
	return nil
}

// StopReason names why Evolve stopped.
type StopReason string

const (
	StoppedMaxGenerations StopReason = "max_generations"
	StoppedNoImprovement  StopReason = "no_improvement"
	StoppedCancelled      StopReason = "cancelled"
)

// HistoryEntry records one generation's best and worst makespan in the
// population, enough to plot a best-vs-worst convergence curve.
type HistoryEntry struct {
	Generation int
	Best       int
	Worst      int
}

// EvolutionResult is what Evolve returns: the best individual ever seen,
// its decoded schedule, and a record of how the search proceeded.
type EvolutionResult struct {
	BestPriorityList []int
	BestSchedule     schedule.Schedule
	BestMakespan     int
	History          []HistoryEntry
	GenerationsRun   int
	StoppedReason    StopReason
}
