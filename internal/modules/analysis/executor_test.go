package analysis

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGenerator struct {
	fn func(ctx context.Context, system, user string) (string, error)
}

func (s *stubGenerator) Generate(ctx context.Context, system, user string) (string, error) {
	return s.fn(ctx, system, user)
}

func TestExecutePassesKindInstruction(t *testing.T) {
	var gotSystem, gotUser string
	exec := NewExecutor(&stubGenerator{fn: func(_ context.Context, system, user string) (string, error) {
		gotSystem, gotUser = system, user
		return "output", nil
	}})

	text, err := exec.Execute(context.Background(), KindRedTeam, "should we rewrite?")
	require.NoError(t, err)
	assert.Equal(t, "output", text)
	assert.Equal(t, Instruction(KindRedTeam), gotSystem)
	assert.Equal(t, "should we rewrite?", gotUser)
}

func TestExecuteFallsBackOnEmptyText(t *testing.T) {
	exec := NewExecutor(&stubGenerator{fn: func(context.Context, string, string) (string, error) {
		return "   \n\t", nil
	}})

	text, err := exec.Execute(context.Background(), KindDebate, "q")
	require.NoError(t, err)
	assert.Equal(t, fallbackAnswer, text)
}

func TestExecuteWrapsProviderError(t *testing.T) {
	cause := errors.New("provider down")
	exec := NewExecutor(&stubGenerator{fn: func(context.Context, string, string) (string, error) {
		return "", cause
	}})

	_, err := exec.Execute(context.Background(), KindTemporal, "q")
	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), string(KindTemporal))
}
