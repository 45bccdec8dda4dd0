package analysis

import (
	"context"
	"fmt"
	"strings"
)

// fallbackAnswer is returned when the provider call succeeds but carries no
// usable text. A malformed or empty response must not abort a whole session,
// so this is a soft success, not a failure.
const fallbackAnswer = "no answer received"

// Generator is the inference seam the executor runs against.
type Generator interface {
	Generate(ctx context.Context, system, user string) (string, error)
}

// Executor runs a single task kind against a user message.
type Executor struct {
	gen Generator
}

func NewExecutor(gen Generator) *Executor { return &Executor{gen: gen} }

// Execute invokes the inference provider with the kind's fixed instruction.
// Only a failed provider call is an error; empty output degrades to the
// fallback answer.
func (e *Executor) Execute(ctx context.Context, kind Kind, userMessage string) (string, error) {
	text, err := e.gen.Generate(ctx, Instruction(kind), userMessage)
	if err != nil {
		return "", fmt.Errorf("%s task: %w", kind, err)
	}
	if strings.TrimSpace(text) == "" {
		return fallbackAnswer, nil
	}
	return text, nil
}
