package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/akolanti/ResumeRAG/internal/config"
	"github.com/akolanti/ResumeRAG/internal/rag/llm"
)

type getInformation struct {
	retriever ContextRetriever
	scope     []int64
}

// NewGetInformation searches the knowledge base. A non-empty scope restricts
// results to those document ids for the whole conversation.
func NewGetInformation(retriever ContextRetriever, scope []int64) Tool {
	return &getInformation{retriever: retriever, scope: scope}
}

func (t *getInformation) Definition() llm.ToolDef {
	return llm.ToolDef{
		Name:        "get_information",
		Description: "Get information from the database",
		Parameters: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"query": map[string]any{
					"type":        "string",
					"description": "The query to get information from the database",
				},
			},
			"required": []string{"query"},
		},
	}
}

func (t *getInformation) Execute(ctx context.Context, args json.RawMessage) (string, error) {
	var input struct {
		Query string `json:"query"`
	}
	if err := json.Unmarshal(args, &input); err != nil {
		return "", fmt.Errorf("bad get_information arguments: %w", err)
	}

	return t.retriever.ContextForQuery(ctx, input.Query, config.ToolSearchLimit, t.scope)
}
