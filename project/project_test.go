package project

import (
	"errors"
	"testing"
)

func validRaw() Raw {
	return Raw{
		Durations: []int{0, 3, 5, 0},
		Requirements: [][]int{
			{0}, {1}, {2}, {0},
		},
		Capacities:  []int{2},
		Precedences: [][2]int{{0, 1}, {0, 2}, {1, 3}, {2, 3}},
	}
}

func TestBuildProjectAcceptsValidInstance(t *testing.T) {
	idx, err := BuildProject(validRaw())
	if err != nil {
		t.Fatalf("BuildProject: %v", err)
	}
	if idx.NumTasks() != 4 {
		t.Fatalf("NumTasks() = %d, want 4", idx.NumTasks())
	}
	if idx.NumResources() != 1 {
		t.Fatalf("NumResources() = %d, want 1", idx.NumResources())
	}
	if idx.SourceID() != 0 || idx.SinkID() != 3 {
		t.Fatalf("SourceID/SinkID = %d/%d, want 0/3", idx.SourceID(), idx.SinkID())
	}
}

func TestBuildProjectRejectsCycle(t *testing.T) {
	raw := validRaw()
	raw.Precedences = append(raw.Precedences, [2]int{3, 1})
	_, err := BuildProject(raw)
	if err == nil {
		t.Fatal("expected an error for a cyclic precedence graph")
	}
	var invalid *InvalidProjectError
	if !errors.As(err, &invalid) {
		t.Fatalf("error is not an InvalidProjectError: %v", err)
	}
}

func TestBuildProjectRejectsCapacityExceeded(t *testing.T) {
	raw := validRaw()
	raw.Requirements[1] = []int{3}
	_, err := BuildProject(raw)
	if err == nil {
		t.Fatal("expected an error for a requirement exceeding capacity")
	}
}

func TestBuildProjectRejectsNegativeDuration(t *testing.T) {
	raw := validRaw()
	raw.Durations[1] = -1
	_, err := BuildProject(raw)
	if err == nil {
		t.Fatal("expected an error for a negative duration")
	}
}

func TestBuildProjectRejectsNegativeRequirement(t *testing.T) {
	raw := validRaw()
	raw.Requirements[1] = []int{-1}
	_, err := BuildProject(raw)
	if err == nil {
		t.Fatal("expected an error for a negative requirement")
	}
}

func TestBuildProjectRejectsNegativeCapacity(t *testing.T) {
	raw := validRaw()
	raw.Capacities = []int{-2}
	_, err := BuildProject(raw)
	if err == nil {
		t.Fatal("expected an error for a negative capacity")
	}
}

func TestBuildProjectRejectsNonZeroSource(t *testing.T) {
	raw := validRaw()
	raw.Durations[0] = 1
	_, err := BuildProject(raw)
	if err == nil {
		t.Fatal("expected an error for a source task with nonzero duration")
	}
}

func TestBuildProjectRejectsNonZeroSink(t *testing.T) {
	raw := validRaw()
	raw.Requirements[3] = []int{1}
	_, err := BuildProject(raw)
	if err == nil {
		t.Fatal("expected an error for a sink task with a nonzero requirement")
	}
}

func TestBuildProjectRejectsTooFewTasks(t *testing.T) {
	raw := Raw{
		Durations:    []int{0},
		Requirements: [][]int{{}},
		Capacities:   []int{},
	}
	_, err := BuildProject(raw)
	if err == nil {
		t.Fatal("expected an error for a project with fewer than 2 tasks")
	}
}

func TestBuildProjectRejectsDanglingPrecedence(t *testing.T) {
	raw := validRaw()
	raw.Precedences = append(raw.Precedences, [2]int{0, 99})
	_, err := BuildProject(raw)
	if err == nil {
		t.Fatal("expected an error for a precedence referencing an out-of-range task")
	}
}

func TestBuildProjectRejectsUnreachableTask(t *testing.T) {
	raw := Raw{
		Durations: []int{0, 3, 5, 1, 0},
		Requirements: [][]int{
			{0}, {1}, {2}, {1}, {0},
		},
		Capacities:  []int{2},
		Precedences: [][2]int{{0, 1}, {1, 4}},
	}
	_, err := BuildProject(raw)
	if err == nil {
		t.Fatal("expected an error for a task neither reachable from the source nor reaching the sink")
	}
}
