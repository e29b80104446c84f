package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	s := NoopSortHooks{}
	s.OnSortStart(ctx, "alternate", 3)
	s.OnSortComplete(ctx, "alternate", 3, 3, time.Millisecond)

	e := NoopExperimentHooks{}
	e.OnExperimentStart(ctx, "run", 10)
	e.OnExperimentComplete(ctx, "run", time.Second, nil)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()
	defer Reset()

	if _, ok := Sort().(NoopSortHooks); !ok {
		t.Error("Sort() should return NoopSortHooks by default")
	}
	if _, ok := Experiment().(NoopExperimentHooks); !ok {
		t.Error("Experiment() should return NoopExperimentHooks by default")
	}

	customSort := &testSortHooks{}
	SetSortHooks(customSort)
	if Sort() != customSort {
		t.Error("SetSortHooks should set custom hooks")
	}

	customExperiment := &testExperimentHooks{}
	SetExperimentHooks(customExperiment)
	if Experiment() != customExperiment {
		t.Error("SetExperimentHooks should set custom hooks")
	}

	// nil is ignored
	SetSortHooks(nil)
	if Sort() != customSort {
		t.Error("SetSortHooks(nil) should keep existing hooks")
	}

	Reset()
	if _, ok := Sort().(NoopSortHooks); !ok {
		t.Error("Reset() should restore NoopSortHooks")
	}
}

type testSortHooks struct {
	NoopSortHooks
}

type testExperimentHooks struct {
	NoopExperimentHooks
}
