package analysis

import (
	"context"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"
)

// OnComplete is invoked synchronously as each perspective task finishes, in
// true completion order, before the remaining tasks are awaited. It is the
// seam through which partial progress becomes visible mid-run.
type OnComplete func(kind Kind, content string)

// Orchestrator fans the five perspective tasks out concurrently and fans
// their outputs into one synthesis task.
type Orchestrator struct {
	exec *Executor
}

func NewOrchestrator(exec *Executor) *Orchestrator { return &Orchestrator{exec: exec} }

// Run executes all five perspective tasks concurrently, then the synthesis
// task. The join is all-or-nothing: any task failure fails the whole run and
// no synthesis is attempted. Already-completed siblings are not rolled back,
// and in-flight siblings are left to finish; a plain errgroup (no context
// cancellation) keeps them running after the first failure.
func (o *Orchestrator) Run(ctx context.Context, question string, onComplete OnComplete) (map[Kind]string, string, error) {
	results := make(map[Kind]string, len(perspectiveKinds))
	var mu sync.Mutex

	var g errgroup.Group
	for _, kind := range Kinds() {
		g.Go(func() error {
			content, err := o.exec.Execute(ctx, kind, perspectiveMessage(question))
			if err != nil {
				return err
			}

			mu.Lock()
			defer mu.Unlock()
			results[kind] = content
			if onComplete != nil {
				onComplete(kind, content)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, "", err
	}

	synthesis, err := o.exec.Execute(ctx, KindSynthesis, synthesisMessage(question, results))
	if err != nil {
		return results, "", err
	}
	return results, synthesis, nil
}

// perspectiveMessage is the user message each perspective task receives.
func perspectiveMessage(question string) string {
	return "Analyze the following question or decision from your specific perspective:\n\n" + question
}

// synthesisMessage assembles the composite synthesis input. Sections appear
// in canonical kind order regardless of the order tasks completed in.
func synthesisMessage(question string, results map[Kind]string) string {
	sections := make([]string, 0, len(perspectiveKinds))
	for _, kind := range perspectiveKinds {
		info := kindInfos[kind]
		sections = append(sections, "## "+info.Name+"\n\n"+results[kind])
	}

	var b strings.Builder
	b.WriteString("# Original question:\n")
	b.WriteString(question)
	b.WriteString("\n\n# Perspective analyses:\n\n")
	b.WriteString(strings.Join(sections, "\n\n---\n\n"))
	b.WriteString("\n\nNow produce the meta-synthesis across all 5 perspectives.")
	return b.String()
}
