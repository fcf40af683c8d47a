package ga

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sort"
	"sync"

	"github.com/panjf2000/ants/v2"

	"rcpsp/perm"
	"rcpsp/precedence"
	"rcpsp/project"
	"rcpsp/schedule"
)

// Evolve runs the genetic optimizer starting from population and
// returns the best schedule ever seen.
//
// ctx is checked once per generation: if it is already cancelled, or
// becomes cancelled between generations, Evolve returns immediately with
// StoppedReason == StoppedCancelled and the best result found so far.
// Pass context.Background() for a run that only stops on generations or
// no-improvement.
//
// All random draws needed to build a generation's offspring — tournament
// picks, the crossover point, the two mutation coin flips — happen on
// this call's goroutine before any offspring is dispatched for
// evaluation, so the sequence of operator choices does not depend on
// Config.Workers or worker scheduling.
func Evolve(ctx context.Context, idx *project.Index, cfg Config, population [][]int) (EvolutionResult, error) {
	if err := cfg.Validate(); err != nil {
		return EvolutionResult{}, err
	}
	if len(population) != cfg.PopulationSize {
		return EvolutionResult{}, fmt.Errorf("population has %d individuals, want population_size %d", len(population), cfg.PopulationSize)
	}
	n := cfg.PopulationSize

	pool, err := ants.NewPool(cfg.Workers)
	if err != nil {
		return EvolutionResult{}, fmt.Errorf("creating worker pool: %w", err)
	}
	defer pool.Release()

	curPop := make([][]int, n)
	for i, p := range population {
		curPop[i] = append([]int(nil), p...)
	}
	fitness := make([]int, n)
	evaluateBatch(pool, idx, curPop, fitness, 0)

	bestIdx := 0
	for i := 1; i < n; i++ {
		if fitness[i] < fitness[bestIdx] {
			bestIdx = i
		}
	}
	bestPerm := append([]int(nil), curPop[bestIdx]...)
	bestMakespan := fitness[bestIdx]

	rng := perm.NewRand(cfg.Seed)
	graph := idx.Graph()

	history := make([]HistoryEntry, 0, cfg.Generations)
	stoppedReason := StoppedMaxGenerations
	noImprove := 0
	generationsRun := 0
	order := make([]int, n)

	for gen := 0; gen < cfg.Generations; gen++ {
		select {
		case <-ctx.Done():
			stoppedReason = StoppedCancelled
			generationsRun = gen
			goto done
		default:
		}

		for i := range order {
			order[i] = i
		}
		sort.Slice(order, func(i, j int) bool { return fitness[order[i]] < fitness[order[j]] })

		elite := cfg.Elitism
		if elite > n {
			elite = n
		}

		nextPop := make([][]int, n)
		for e := 0; e < elite; e++ {
			nextPop[e] = append([]int(nil), curPop[order[e]]...)
		}

		buildOffspring(nextPop, elite, n, curPop, fitness, graph, cfg, rng)

		nextFitness := make([]int, n)
		for e := 0; e < elite; e++ {
			nextFitness[e] = fitness[order[e]]
		}
		evaluateBatch(pool, idx, nextPop, nextFitness, elite)

		curPop, fitness = nextPop, nextFitness

		genBest, genWorst := fitness[0], fitness[0]
		bestOfGenIdx := 0
		for i, f := range fitness {
			if f < genBest {
				genBest, bestOfGenIdx = f, i
			}
			if f > genWorst {
				genWorst = f
			}
		}
		if genBest < bestMakespan {
			bestMakespan = genBest
			bestPerm = append([]int(nil), curPop[bestOfGenIdx]...)
			noImprove = 0
		} else {
			noImprove++
		}

		history = append(history, HistoryEntry{Generation: gen, Best: genBest, Worst: genWorst})
		generationsRun = gen + 1

		if cfg.NoImproveStop != nil && noImprove >= *cfg.NoImproveStop {
			stoppedReason = StoppedNoImprovement
			goto done
		}
	}

done:
	return EvolutionResult{
		BestPriorityList: bestPerm,
		BestSchedule:     schedule.Decode(idx, bestPerm),
		BestMakespan:     bestMakespan,
		History:          history,
		GenerationsRun:   generationsRun,
		StoppedReason:    stoppedReason,
	}, nil
}

// buildOffspring fills nextPop[elite:n) with new individuals produced by
// tournament selection, crossover and mutation, drawing every random
// choice from rng on the caller's goroutine.
func buildOffspring(nextPop [][]int, elite, n int, curPop [][]int, fitness []int, graph *precedence.Graph, cfg Config, rng *rand.Rand) {
	write := elite
	for write < n {
		p1 := TournamentSelect(fitness, cfg.TournamentK, rng)
		p2 := TournamentSelect(fitness, cfg.TournamentK, rng)

		var c1, c2 []int
		if rng.Float64() < cfg.CrossoverRate {
			c1, c2 = POX(curPop[p1], curPop[p2], rng)
		} else {
			c1 = append([]int(nil), curPop[p1]...)
			c2 = append([]int(nil), curPop[p2]...)
		}

		if rng.Float64() < cfg.MutationRate {
			c1 = SwapMutate(c1, graph, rng, cfg.MutationSwapBudget)
		}
		nextPop[write] = c1
		write++

		if write < n {
			if rng.Float64() < cfg.MutationRate {
				c2 = SwapMutate(c2, graph, rng, cfg.MutationSwapBudget)
			}
			nextPop[write] = c2
			write++
		}
	}
}

// evaluateBatch decodes pop[from:] against idx on the worker pool and
// writes each individual's makespan into fitness at the matching index.
func evaluateBatch(pool *ants.Pool, idx *project.Index, pop [][]int, fitness []int, from int) {
	var wg sync.WaitGroup
	for i := from; i < len(pop); i++ {
		i := i
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()
			fitness[i] = schedule.Decode(idx, pop[i]).Makespan()
		}); err != nil {
			// ants.NewPool(cfg.Workers) uses the default blocking behavior:
			// Submit waits for a free worker rather than failing, so this
			// branch should not be reached. Fall back to running
			// inline so a transient pool error can never lose an offspring
			// evaluation.
			fitness[i] = schedule.Decode(idx, pop[i]).Makespan()
			wg.Done()
		}
	}
	wg.Wait()
}
