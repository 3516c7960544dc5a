package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/akolanti/ResumeRAG/internal/config"
	"github.com/akolanti/ResumeRAG/internal/metrics"
	"github.com/akolanti/ResumeRAG/internal/rag/llm"
	"github.com/akolanti/ResumeRAG/pkg/logger_i"
	"google.golang.org/genai"
)

type llmClient struct {
	client    *genai.Client
	modelName string
}

var logger *logger_i.Logger
var geminiClient *llmClient
var once sync.Once

func GetGeminiClient(ctx context.Context, modelName string, apikey string) llm.Provider {
	once.Do(func() {
		logger = logger_i.NewLogger("llm_gemini")
		newGeminiClient(ctx, modelName, apikey)
	})

	if geminiClient == nil {
		return nil
	}
	return geminiClient
}

func newGeminiClient(ctx context.Context, modelName string, apikey string) {
	c, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apikey})
	if err != nil {
		logger.Error("Error creating Gemini client:", "error", err)
		return
	}
	geminiClient = &llmClient{client: c, modelName: modelName}
	logger.Info("Gemini client created", "model", modelName)
}

func (c *llmClient) Generate(ctx context.Context, system string, history []llm.Exchange, query string, tools llm.Executor) (llm.Reply, error) {
	loggr := logger.With("traceId", ctx.Value(config.TRACE_ID_KEY))

	var contents []*genai.Content
	for _, exchange := range history {
		contents = append(contents,
			genai.NewContentFromText(exchange.Question, genai.RoleUser),
			genai.NewContentFromText(exchange.Answer, genai.RoleModel),
		)
	}
	contents = append(contents, genai.NewContentFromText(query, genai.RoleUser))

	contentConfig := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: system}},
		},
	}
	if tools != nil {
		var decls []*genai.FunctionDeclaration
		for _, def := range tools.Definitions() {
			decls = append(decls, &genai.FunctionDeclaration{
				Name:                 def.Name,
				Description:          def.Description,
				ParametersJsonSchema: def.Parameters,
			})
		}
		contentConfig.Tools = []*genai.Tool{{FunctionDeclarations: decls}}
	}

	var reply llm.Reply
	for step := 0; step < config.MaxToolSteps; step++ {
		result, err := c.generate(ctx, contents, contentConfig)
		if err != nil {
			loggr.Error("Gemini generation failed", "step", step, "error", err)
			return reply, err
		}
		reply.Steps = step + 1

		calls := result.FunctionCalls()
		if len(calls) == 0 || tools == nil {
			reply.Text = result.Text()
			return reply, nil
		}

		contents = append(contents, result.Candidates[0].Content)
		for _, fc := range calls {
			args, err := json.Marshal(fc.Args)
			if err != nil {
				args = []byte("{}")
			}
			call := llm.ToolCall{Id: fc.ID, Name: fc.Name, Arguments: args}
			content := runTool(ctx, tools, call)
			reply.ToolResults = append(reply.ToolResults, llm.ToolResult{Call: call, Content: content})

			part := genai.NewPartFromFunctionResponse(fc.Name, map[string]any{"result": content})
			contents = append(contents, genai.NewContentFromParts([]*genai.Part{part}, genai.RoleUser))
		}
	}

	loggr.Warn("Tool step budget exhausted", "steps", config.MaxToolSteps)
	contentConfig.Tools = nil
	result, err := c.generate(ctx, contents, contentConfig)
	if err != nil {
		return reply, err
	}
	reply.Text = result.Text()
	return reply, nil
}

func (c *llmClient) generate(ctx context.Context, contents []*genai.Content, cfg *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	start := time.Now()
	result, err := c.client.Models.GenerateContent(ctx, c.modelName, contents, cfg)
	metrics.CaptureExecutionMetrics("gemini_chat", time.Since(start))
	if err != nil {
		return nil, err
	}
	if len(result.Candidates) == 0 {
		return nil, errors.New("gemini returned no candidates")
	}
	return result, nil
}

func runTool(ctx context.Context, tools llm.Executor, call llm.ToolCall) string {
	content, err := tools.Execute(ctx, call)
	metrics.IncrementToolInvocation(call.Name, err)
	if err != nil {
		logger.Warn("Tool execution failed", "tool", call.Name, "error", err)
		payload, _ := json.Marshal(map[string]string{"error": err.Error()})
		return string(payload)
	}
	return content
}
