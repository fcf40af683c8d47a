// Package project holds the immutable in-memory representation of an
// RCPSP instance: tasks, their resource requirements, and renewable
// resource capacities. Precedence topology itself lives in package
// precedence; Index wires the two together and is the value every other
// package in this module treats as read-only.
package project

import (
	"fmt"

	"rcpsp/precedence"
)

// Task is a single unit of work. Duration and Requirements never change
// once an Index has been built.
type Task struct {
	ID           int
	Duration     int
	Requirements []int // per-resource requirement, len == number of resources
}

// Resource is a renewable resource with a fixed capacity for the whole
// project horizon.
type Resource struct {
	ID       int
	Capacity int
}

// Raw is the boundary input to BuildProject: plain arrays, no invariants
// checked yet. Precedences are ordered pairs (u, v) meaning u must finish
// at or before v starts.
type Raw struct {
	Durations    []int
	Requirements [][]int
	Capacities   []int
	Precedences  [][2]int
}

// Index is the read-only, validated project model. It is safe for
// concurrent use by multiple goroutines since nothing in it is ever
// mutated after BuildProject returns.
type Index struct {
	tasks     []Task
	resources []Resource
	graph     *precedence.Graph
}

// InvalidProjectError wraps any violation detected while building an
// Index: cycles, dangling ids, negative numbers, a per-task requirement
// exceeding its resource's capacity, or a missing source/sink invariant.
type InvalidProjectError struct {
	Reason string
	Err    error
}

func (e *InvalidProjectError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid project: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("invalid project: %s", e.Reason)
}

func (e *InvalidProjectError) Unwrap() error { return e.Err }

func invalid(reason string, err error) error {
	return &InvalidProjectError{Reason: reason, Err: err}
}

// BuildProject validates raw and, on success, produces a read-only Index.
// It is the sole place resource-capacity and shape violations are
// detected; precedence.Build detects cycles and source/sink violations.
func BuildProject(raw Raw) (*Index, error) {
	n := len(raw.Durations)
	if n < 2 {
		return nil, invalid("a project needs at least a source and a sink task", nil)
	}
	m := len(raw.Capacities)

	if len(raw.Requirements) != n {
		return nil, invalid(fmt.Sprintf("requirements must have %d rows (got %d)", n, len(raw.Requirements)), nil)
	}

	for k, c := range raw.Capacities {
		if c < 0 {
			return nil, invalid(fmt.Sprintf("resource %d has negative capacity %d", k, c), nil)
		}
	}

	tasks := make([]Task, n)
	for i, d := range raw.Durations {
		if d < 0 {
			return nil, invalid(fmt.Sprintf("task %d has negative duration %d", i, d), nil)
		}
		row := raw.Requirements[i]
		if len(row) != m {
			return nil, invalid(fmt.Sprintf("task %d requirement row must have %d entries (got %d)", i, m, len(row)), nil)
		}
		reqs := make([]int, m)
		for k, r := range row {
			if r < 0 {
				return nil, invalid(fmt.Sprintf("task %d has negative requirement %d for resource %d", i, r, k), nil)
			}
			if r > raw.Capacities[k] {
				return nil, invalid(fmt.Sprintf("task %d requires %d of resource %d but capacity is only %d", i, r, k, raw.Capacities[k]), nil)
			}
			reqs[k] = r
		}
		tasks[i] = Task{ID: i, Duration: d, Requirements: reqs}
	}

	if tasks[0].Duration != 0 || !isZero(tasks[0].Requirements) {
		return nil, invalid("task 0 must be a zero-duration, zero-requirement source", nil)
	}
	if tasks[n-1].Duration != 0 || !isZero(tasks[n-1].Requirements) {
		return nil, invalid(fmt.Sprintf("task %d must be a zero-duration, zero-requirement sink", n-1), nil)
	}

	for _, e := range raw.Precedences {
		if e[0] < 0 || e[0] >= n || e[1] < 0 || e[1] >= n {
			return nil, invalid(fmt.Sprintf("precedence (%d, %d) references a task outside [0, %d)", e[0], e[1], n), nil)
		}
	}

	graph, err := precedence.Build(n, raw.Precedences)
	if err != nil {
		return nil, invalid("precedence graph is invalid", err)
	}

	resources := make([]Resource, m)
	for k, c := range raw.Capacities {
		resources[k] = Resource{ID: k, Capacity: c}
	}

	return &Index{tasks: tasks, resources: resources, graph: graph}, nil
}

func isZero(v []int) bool {
	for _, x := range v {
		if x != 0 {
			return false
		}
	}
	return true
}

// NumTasks reports n, the number of tasks including source and sink.
func (idx *Index) NumTasks() int { return len(idx.tasks) }

// NumResources reports m, the number of renewable resources.
func (idx *Index) NumResources() int { return len(idx.resources) }

// Task returns the task with the given id.
func (idx *Index) Task(i int) Task { return idx.tasks[i] }

// Tasks returns every task, ordered by id. The returned slice must not be
// mutated by callers.
func (idx *Index) Tasks() []Task { return idx.tasks }

// Resource returns the resource with the given id.
func (idx *Index) Resource(k int) Resource { return idx.resources[k] }

// Resources returns every resource, ordered by id. The returned slice
// must not be mutated by callers.
func (idx *Index) Resources() []Resource { return idx.resources }

// Graph exposes the precedence index (adjacency, in-degree, reachability)
// underlying this project.
func (idx *Index) Graph() *precedence.Graph { return idx.graph }

// SourceID and SinkID are the fixed sentinel task ids.
func (idx *Index) SourceID() int { return 0 }
func (idx *Index) SinkID() int   { return len(idx.tasks) - 1 }
