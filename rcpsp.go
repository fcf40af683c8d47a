// Package rcpsp is the facade over this module's four entry points:
// building a validated project, drawing an initial population, running
// the genetic optimizer, and decoding a single priority list. It is a
// thin re-export layer; all behavior lives in project, ga and schedule.
package rcpsp

import (
	"context"

	"rcpsp/ga"
	"rcpsp/project"
	"rcpsp/schedule"
)

// Index is the validated, read-only project model.
type Index = project.Index

// Raw is the boundary input to BuildProject.
type Raw = project.Raw

// Config tunes Evolve.
type Config = ga.Config

// EvolutionResult is what Evolve returns.
type EvolutionResult = ga.EvolutionResult

// Schedule is a decoded start/finish assignment.
type Schedule = schedule.Schedule

// DefaultConfig returns Evolve's recommended defaults.
func DefaultConfig() Config {
	return ga.DefaultConfig()
}

// BuildProject validates raw and produces a read-only Index, or an
// *project.InvalidProjectError describing the first violation found.
func BuildProject(raw Raw) (*Index, error) {
	return project.BuildProject(raw)
}

// InitialPopulation draws n independent admissible priority lists,
// deterministic given seed.
func InitialPopulation(idx *Index, n int, seed uint64) [][]int {
	return ga.InitialPopulation(idx, n, seed)
}

// Evolve runs the genetic optimizer starting from population and
// returns the best schedule found, or an error if cfg or population is
// malformed. Pass context.Background() to run to completion regardless
// of external cancellation.
func Evolve(ctx context.Context, idx *Index, cfg Config, population [][]int) (EvolutionResult, error) {
	return ga.Evolve(ctx, idx, cfg, population)
}

// Decode runs SSGS over priorityList against idx. It is pure: the same
// arguments always produce the same schedule.
func Decode(idx *Index, priorityList []int) Schedule {
	return schedule.Decode(idx, priorityList)
}
