package analysis

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// kindFromSystem maps the system instruction back to its kind, so stub
// generators can behave per-kind.
func kindFromSystem(t *testing.T, system string) Kind {
	t.Helper()
	for k, instruction := range instructions {
		if instruction == system {
			return k
		}
	}
	t.Fatalf("unknown system instruction")
	return ""
}

func TestRunCompletesAllPerspectivesAndSynthesizes(t *testing.T) {
	gen := &stubGenerator{fn: func(_ context.Context, system, user string) (string, error) {
		kind := kindFromSystem(t, system)
		if kind == KindSynthesis {
			return "final recommendation", nil
		}
		return "analysis from " + string(kind), nil
	}}

	var mu sync.Mutex
	completed := make([]Kind, 0, 5)

	orch := NewOrchestrator(NewExecutor(gen))
	results, synthesis, err := orch.Run(context.Background(), "should we migrate?", func(kind Kind, content string) {
		mu.Lock()
		completed = append(completed, kind)
		mu.Unlock()
		assert.Equal(t, "analysis from "+string(kind), content)
	})

	require.NoError(t, err)
	assert.Equal(t, "final recommendation", synthesis)
	require.Len(t, results, 5)
	assert.ElementsMatch(t, Kinds(), completed)
	for _, k := range Kinds() {
		assert.Equal(t, "analysis from "+string(k), results[k])
	}
}

func TestRunAssemblesSynthesisInputInCanonicalOrder(t *testing.T) {
	var synthesisInput string
	gen := &stubGenerator{fn: func(_ context.Context, system, user string) (string, error) {
		kind := kindFromSystem(t, system)
		if kind == KindSynthesis {
			synthesisInput = user
			return "synthesis", nil
		}
		return string(kind) + " says X", nil
	}}

	orch := NewOrchestrator(NewExecutor(gen))
	_, _, err := orch.Run(context.Background(), "the question", nil)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(synthesisInput, "# Original question:\nthe question"), "got %q", synthesisInput)
	assert.Contains(t, synthesisInput, "# Perspective analyses:")

	// Section headers must appear in canonical order.
	lastIdx := -1
	for _, k := range Kinds() {
		info, _ := Describe(k)
		idx := strings.Index(synthesisInput, "## "+info.Name)
		require.GreaterOrEqual(t, idx, 0, "missing section for %s", k)
		assert.Greater(t, idx, lastIdx, "section %s out of order", k)
		lastIdx = idx
		assert.Contains(t, synthesisInput, string(k)+" says X")
	}
	assert.Contains(t, synthesisInput, "\n\n---\n\n")
}

func TestRunFailureSkipsSynthesisButSiblingsFinish(t *testing.T) {
	cause := errors.New("model unavailable")
	synthesisCalled := false

	gen := &stubGenerator{fn: func(_ context.Context, system, user string) (string, error) {
		switch kindFromSystem(t, system) {
		case KindSynthesis:
			synthesisCalled = true
			return "should never happen", nil
		case KindParadox:
			return "", cause
		default:
			return "ok", nil
		}
	}}

	var mu sync.Mutex
	completed := make([]Kind, 0, 4)

	orch := NewOrchestrator(NewExecutor(gen))
	results, synthesis, err := orch.Run(context.Background(), "q", func(kind Kind, _ string) {
		mu.Lock()
		completed = append(completed, kind)
		mu.Unlock()
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
	assert.Empty(t, synthesis)
	assert.False(t, synthesisCalled)

	// The failing task never reports, the other four still do.
	assert.ElementsMatch(t, []Kind{KindDebate, KindTemporal, KindRedTeam, KindFirstPrinciples}, completed)
	assert.Len(t, results, 4)
}

func TestRunPerspectivesOverlapInTime(t *testing.T) {
	release := make(chan struct{})
	arrived := make(chan Kind, 5)

	gen := &stubGenerator{fn: func(_ context.Context, system, user string) (string, error) {
		kind := kindFromSystem(t, system)
		if kind == KindSynthesis {
			return "done", nil
		}
		arrived <- kind
		<-release
		return "ok", nil
	}}

	orch := NewOrchestrator(NewExecutor(gen))
	done := make(chan error, 1)
	go func() {
		_, _, err := orch.Run(context.Background(), "q", nil)
		done <- err
	}()

	// All five tasks must be in flight at once before any is released.
	seen := make(map[Kind]bool)
	for i := 0; i < 5; i++ {
		seen[<-arrived] = true
	}
	assert.Len(t, seen, 5)

	close(release)
	require.NoError(t, <-done)
}
