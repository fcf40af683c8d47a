// Command rcpsp is a minimal runnable collaborator around the solver
// core: it loads a Config from the environment, builds a project
// instance, and prints the best schedule found. Project-file parsing is
// out of scope for the core, so this command builds its instance from a
// small embedded example rather than reading ProjectPath; ProjectPath
// is still loaded and logged so the wiring for a real file-backed
// loader is visible.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"rcpsp"
	"rcpsp/rcpspcli"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := rcpspcli.LoadConfig()
	if err != nil {
		logger.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	idx, err := rcpsp.BuildProject(exampleProject())
	if err != nil {
		logger.Error("failed to build project", "error", err)
		os.Exit(1)
	}

	runID, res, err := rcpspcli.Run(context.Background(), logger, idx, *cfg)
	if err != nil {
		logger.Error("run failed", "run_id", runID, "error", err)
		os.Exit(1)
	}

	fmt.Printf("run %s: best makespan %d after %d generations (%s)\n",
		runID, res.BestMakespan, res.GenerationsRun, res.StoppedReason)
	fmt.Printf("priority list: %v\n", res.BestPriorityList)
	fmt.Printf("starts:        %v\n", res.BestSchedule.Start)
	fmt.Printf("finishes:      %v\n", res.BestSchedule.Finish)
}

// exampleProject is the S4-style contention scenario: a source and
// sink, three parallel branches competing for a two-unit resource.
func exampleProject() rcpsp.Raw {
	return rcpsp.Raw{
		Durations:    []int{0, 2, 2, 2, 0},
		Requirements: [][]int{{0}, {1}, {2}, {1}, {0}},
		Capacities:   []int{2},
		Precedences:  [][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 4}, {2, 4}, {3, 4}},
	}
}
