package openaiLLM

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/akolanti/ResumeRAG/internal/config"
	"github.com/akolanti/ResumeRAG/internal/customHttpClient"
	"github.com/akolanti/ResumeRAG/internal/metrics"
	"github.com/akolanti/ResumeRAG/internal/rag/llm"
	"github.com/akolanti/ResumeRAG/pkg/logger_i"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"
)

type llmClient struct {
	client    *openai.Client
	modelName string
}

var logger *logger_i.Logger
var openaiClient *llmClient
var once sync.Once

func GetOpenAIClient(ctx context.Context, modelName string, apikey string) llm.Provider {
	once.Do(func() {
		logger = logger_i.NewLogger("llm_openai")
		newOpenAIClient(modelName, apikey)
	})

	if openaiClient == nil {
		return nil
	}
	return openaiClient
}

func newOpenAIClient(modelName string, apikey string) {
	if apikey == "" {
		logger.Error("OpenAI api key is not set")
		return
	}
	c := openai.NewClient(
		option.WithAPIKey(apikey),
		option.WithHTTPClient(customHttpClient.GetPooledClient()),
	)
	openaiClient = &llmClient{client: &c, modelName: modelName}
	logger.Info("OpenAI client created", "model", modelName)
}

func (c *llmClient) Generate(ctx context.Context, system string, history []llm.Exchange, query string, tools llm.Executor) (llm.Reply, error) {
	loggr := logger.With("traceId", ctx.Value(config.TRACE_ID_KEY))

	messages := []openai.ChatCompletionMessageParamUnion{openai.SystemMessage(system)}
	for _, exchange := range history {
		messages = append(messages, openai.UserMessage(exchange.Question), openai.AssistantMessage(exchange.Answer))
	}
	messages = append(messages, openai.UserMessage(query))

	params := openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(c.modelName),
		Messages: messages,
	}
	if tools != nil {
		params.Tools = toolParams(tools.Definitions())
	}

	var reply llm.Reply
	for step := 0; step < config.MaxToolSteps; step++ {
		message, err := c.complete(ctx, &params)
		if err != nil {
			loggr.Error("OpenAI completion failed", "step", step, "error", err)
			return reply, err
		}
		reply.Steps = step + 1

		if len(message.ToolCalls) == 0 || tools == nil {
			reply.Text = message.Content
			return reply, nil
		}

		params.Messages = append(params.Messages, message.ToParam())
		for _, tc := range message.ToolCalls {
			call := llm.ToolCall{
				Id:        tc.ID,
				Name:      tc.Function.Name,
				Arguments: json.RawMessage(tc.Function.Arguments),
			}
			content := c.runTool(ctx, tools, call)
			reply.ToolResults = append(reply.ToolResults, llm.ToolResult{Call: call, Content: content})
			params.Messages = append(params.Messages, openai.ToolMessage(content, tc.ID))
		}
	}

	// step budget spent: force a final text answer without tools
	loggr.Warn("Tool step budget exhausted", "steps", config.MaxToolSteps)
	params.Tools = nil
	message, err := c.complete(ctx, &params)
	if err != nil {
		return reply, err
	}
	reply.Text = message.Content
	return reply, nil
}

func toolParams(defs []llm.ToolDef) []openai.ChatCompletionToolParam {
	out := make([]openai.ChatCompletionToolParam, 0, len(defs))
	for _, def := range defs {
		out = append(out, openai.ChatCompletionToolParam{
			Function: shared.FunctionDefinitionParam{
				Name:        def.Name,
				Description: openai.String(def.Description),
				Parameters:  shared.FunctionParameters(def.Parameters),
			},
		})
	}
	return out
}

func (c *llmClient) complete(ctx context.Context, params *openai.ChatCompletionNewParams) (*openai.ChatCompletionMessage, error) {
	start := time.Now()
	completion, err := c.client.Chat.Completions.New(ctx, *params)
	metrics.CaptureExecutionMetrics("openai_chat", time.Since(start))
	if err != nil {
		return nil, fmt.Errorf("openai completion failed: %w", err)
	}
	if len(completion.Choices) == 0 {
		return nil, errors.New("openai returned no choices")
	}
	return &completion.Choices[0].Message, nil
}

// runTool never propagates tool failures to the model loop; the model gets an
// error payload and decides how to continue.
func (c *llmClient) runTool(ctx context.Context, tools llm.Executor, call llm.ToolCall) string {
	content, err := tools.Execute(ctx, call)
	metrics.IncrementToolInvocation(call.Name, err)
	if err != nil {
		logger.Warn("Tool execution failed", "tool", call.Name, "error", err)
		payload, _ := json.Marshal(map[string]string{"error": err.Error()})
		return string(payload)
	}
	return content
}
