// Package metrics computes read-only measures over a decoded schedule:
// makespan, per-resource utilization, average concurrency, and a
// resource's demand-over-time timeline. None of it feeds back into
// decoding or evolution; it exists for reporting.
package metrics

import (
	"sort"

	"rcpsp/project"
	"rcpsp/schedule"
)

// Makespan returns the schedule's overall completion time. It is the
// same value schedule.Schedule.Makespan reports; it exists here too so
// callers that only import metrics don't need the schedule package.
func Makespan(sched schedule.Schedule) int {
	return sched.Makespan()
}

// Utilization returns, for resource k, the fraction of
// capacity*makespan resource-time actually consumed by tasks:
// sum(duration_i * requirement_i,k) / (capacity_k * makespan). Returns 0
// if the makespan is 0 (a project with no non-trivial tasks).
func Utilization(idx *project.Index, sched schedule.Schedule, k int) float64 {
	makespan := sched.Makespan()
	if makespan == 0 {
		return 0
	}
	consumed := 0
	for _, task := range idx.Tasks() {
		consumed += task.Duration * task.Requirements[k]
	}
	capacity := idx.Resource(k).Capacity
	if capacity == 0 {
		return 0
	}
	return float64(consumed) / float64(capacity*makespan)
}

// OverallUtilization returns the mean of Utilization(idx, sched, k) over
// every resource with positive capacity, the single-figure summary a
// caller would otherwise compute by looping over idx.Resources() itself.
// Resources with zero capacity are excluded from the mean rather than
// pulled to 0, since they carry no capacity to utilize. Returns 0 if no
// resource has positive capacity.
func OverallUtilization(idx *project.Index, sched schedule.Schedule) float64 {
	sum := 0.0
	count := 0
	for k, res := range idx.Resources() {
		if res.Capacity <= 0 {
			continue
		}
		sum += Utilization(idx, sched, k)
		count++
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}

// AverageConcurrency returns the mean number of tasks in progress at
// once over [0, makespan): sum of task durations divided by makespan.
// It ignores resource requirements entirely, unlike Utilization.
func AverageConcurrency(idx *project.Index, sched schedule.Schedule) float64 {
	makespan := sched.Makespan()
	if makespan == 0 {
		return 0
	}
	total := 0
	for _, task := range idx.Tasks() {
		total += task.Duration
	}
	return float64(total) / float64(makespan)
}

// Point is one breakpoint of a resource's timeline: at Time, exactly
// Remaining units of the resource's capacity are unused.
type Point struct {
	Time      int
	Remaining int
}

// Timeline returns resource k's remaining-capacity-over-time step
// function as a sorted, deduplicated list of breakpoints, one at every
// start and finish time of a task that has a nonzero duration and a
// nonzero requirement on k. Other tasks add no breakpoints; before the
// first breakpoint the full capacity is unused.
func Timeline(idx *project.Index, sched schedule.Schedule, k int) []Point {
	deltas := map[int]int{}
	for _, task := range idx.Tasks() {
		req := task.Requirements[k]
		if req == 0 {
			continue
		}
		s, f := sched.Start[task.ID], sched.Finish[task.ID]
		if s == f {
			continue
		}
		deltas[s] += req
		deltas[f] -= req
	}

	times := make([]int, 0, len(deltas))
	for t := range deltas {
		times = append(times, t)
	}
	sort.Ints(times)

	capacity := idx.Resource(k).Capacity
	points := make([]Point, 0, len(times))
	demand := 0
	for _, t := range times {
		demand += deltas[t]
		points = append(points, Point{Time: t, Remaining: capacity - demand})
	}
	return points
}
