package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/akolanti/ResumeRAG/internal/rag/llm"
)

// Tool is a single assistant capability. Execute gets the raw argument JSON
// from the model and returns a serialized result for the model to read.
type Tool interface {
	Definition() llm.ToolDef
	Execute(ctx context.Context, args json.RawMessage) (string, error)
}

// ContextRetriever supplies assembled document context for a query. The RAG
// service implements it.
type ContextRetriever interface {
	ContextForQuery(ctx context.Context, query string, limit int, scope []int64) (string, error)
}

// Registry adapts a set of tools to the provider's executor contract.
// Registries are built per request because tools carry request scope.
type Registry struct {
	order []string
	tools map[string]Tool
}

func NewRegistry(tools ...Tool) *Registry {
	r := &Registry{tools: map[string]Tool{}}
	for _, t := range tools {
		name := t.Definition().Name
		r.order = append(r.order, name)
		r.tools[name] = t
	}
	return r
}

func (r *Registry) Definitions() []llm.ToolDef {
	defs := make([]llm.ToolDef, 0, len(r.order))
	for _, name := range r.order {
		defs = append(defs, r.tools[name].Definition())
	}
	return defs
}

func (r *Registry) Execute(ctx context.Context, call llm.ToolCall) (string, error) {
	t, ok := r.tools[call.Name]
	if !ok {
		return "", fmt.Errorf("unknown tool %q", call.Name)
	}
	return t.Execute(ctx, call.Arguments)
}
