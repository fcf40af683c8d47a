// Package schedule implements the Serial Schedule Generation Scheme
// (SSGS): the deterministic decoder that turns a topologically
// admissible priority list into a feasible schedule, plus the resource
// profile it uses to resolve contention. Tasks are processed in strict
// priority-list order; each task is placed at the earliest time its
// predecessors have finished and every required resource has enough
// spare capacity for its full duration.
package schedule

import "rcpsp/project"

// Schedule is a start/finish time per task, indexed by task id.
type Schedule struct {
	Start  []int
	Finish []int
}

// Makespan returns the sink's finish time, i.e. max_i f_i.
func (s Schedule) Makespan() int {
	return s.Finish[len(s.Finish)-1]
}

// Decode runs SSGS over priorityList against idx and returns the
// resulting feasible schedule. priorityList must be a topologically
// admissible permutation of [0, idx.NumTasks()) — see perm.IsAdmissible.
// Decode is a pure function of (idx, priorityList): it allocates a fresh
// resource profile per call and mutates no shared state, so concurrent
// calls against the same idx from different goroutines are safe.
func Decode(idx *project.Index, priorityList []int) Schedule {
	n := idx.NumTasks()
	m := idx.NumResources()

	start := make([]int, n)
	finish := make([]int, n)

	profiles := make([]*resourceProfile, m)
	for k := 0; k < m; k++ {
		profiles[k] = newResourceProfile(idx.Resource(k).Capacity)
	}

	graph := idx.Graph()
	for _, i := range priorityList {
		task := idx.Task(i)

		earliest := 0
		for _, u := range graph.Predecessors(i) {
			if finish[u] > earliest {
				earliest = finish[u]
			}
		}

		t := earliest
		if task.Duration > 0 {
			for {
				advanced := false
				for k, req := range task.Requirements {
					if req == 0 {
						continue
					}
					t2 := profiles[k].earliestAvailable(t, task.Duration, req)
					if t2 > t {
						t = t2
						advanced = true
					}
				}
				if !advanced {
					break
				}
			}
			for k, req := range task.Requirements {
				if req == 0 {
					continue
				}
				profiles[k].reserve(t, task.Duration, req)
			}
		}

		start[i] = t
		finish[i] = t + task.Duration
	}

	return Schedule{Start: start, Finish: finish}
}
