package llm

import (
	"context"
	"encoding/json"
)

// Exchange is one past question/answer turn fed back as conversation history.
type Exchange struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// ToolDef describes a callable tool to the model. Parameters is a JSON schema
// object, passed to the provider untranslated.
type ToolDef struct {
	Name        string
	Description string
	Parameters  map[string]any
}

type ToolCall struct {
	Id        string
	Name      string
	Arguments json.RawMessage
}

// ToolResult pairs a call with the serialized output handed back to the model.
type ToolResult struct {
	Call    ToolCall
	Content string
}

// Reply is the outcome of a full generation round, including every tool
// result produced along the way so callers can mine them for structured data.
type Reply struct {
	Text        string
	ToolResults []ToolResult
	Steps       int
}

// Executor resolves tool calls requested by the model.
type Executor interface {
	Definitions() []ToolDef
	Execute(ctx context.Context, call ToolCall) (string, error)
}

// Provider runs the model loop: it keeps answering tool calls through the
// Executor until the model produces text or the step budget runs out. A nil
// Executor means a plain completion.
type Provider interface {
	Generate(ctx context.Context, system string, history []Exchange, query string, tools Executor) (Reply, error)
}
