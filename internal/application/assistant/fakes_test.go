package assistant

import (
	"context"
	"errors"

	"github.com/jhoicas/omie-pedidos-ia/internal/domain/entity"
)

// fakeLLM devuelve respuestas prefijadas por método y registra los prompts.
type fakeLLM struct {
	jsonReply string
	jsonErr   error
	textReply string
	textErr   error

	jsonPrompts []string
	textPrompts []string
	deadlines   []bool
}

func (f *fakeLLM) GenerateJSON(ctx context.Context, prompt string) (string, error) {
	f.jsonPrompts = append(f.jsonPrompts, prompt)
	_, ok := ctx.Deadline()
	f.deadlines = append(f.deadlines, ok)
	return f.jsonReply, f.jsonErr
}

func (f *fakeLLM) GenerateText(ctx context.Context, prompt string) (string, error) {
	f.textPrompts = append(f.textPrompts, prompt)
	_, ok := ctx.Deadline()
	f.deadlines = append(f.deadlines, ok)
	return f.textReply, f.textErr
}

type fakeFinder struct {
	result []entity.OrderSummary
	err    error
	calls  []entity.CustomerQuery
}

func (f *fakeFinder) Execute(_ context.Context, q entity.CustomerQuery) ([]entity.OrderSummary, error) {
	f.calls = append(f.calls, q)
	return f.result, f.err
}

var errBoom = errors.New("boom")
