package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/akolanti/ResumeRAG/internal/config"
	"github.com/akolanti/ResumeRAG/internal/domain/docModel"
	"github.com/akolanti/ResumeRAG/internal/rag/llm"
	"github.com/akolanti/ResumeRAG/internal/resource"
	"github.com/akolanti/ResumeRAG/pkg/logger_i"
)

const suggestionsSystemPrompt = `You are an expert resume advisor helping users improve their resume.
Your task is to analyze their experience and documentation, then provide specific, actionable suggestions on how to incorporate it into their resume.

Guidelines:
- Review ALL the provided context from their documents and experiences
- Provide specific suggestions on how to format, structure, and present their experience
- Suggest which sections to add experiences to (e.g., Work Experience, Projects, Skills, etc.)
- Recommend action verbs and quantifiable achievements where appropriate
- Suggest how to highlight relevant skills and accomplishments
- Consider the user's specific question or request when providing suggestions
- Be practical and actionable - focus on what they should add, how to phrase it, and where to place it
- If they mention a specific experience, focus on how to incorporate that into their resume`

const suggestionsWithDiffsSystemPrompt = `You are an expert resume advisor and editor helping users improve their resume.

Your task has two parts:
1. Provide human-readable text suggestions explaining how to improve the resume and incorporate experience
2. Generate structured diff operations that represent the precise changes needed

Guidelines for suggestions:
- Review ALL the provided context from their documents and experiences
- Provide specific suggestions on how to format, structure, and present their experience
- Suggest which sections to add experiences to (e.g., Work Experience, Projects, Skills, etc.)
- Recommend action verbs and quantifiable achievements where appropriate
- Be practical and actionable - focus on what they should add, how to phrase it, and where to place it

Guidelines for diff operations:
- Only include operations for content that actually needs to change
- Use "insert" to add new content at a specific location
- Use "delete" to remove existing content
- Use "replace" to modify existing content
- Include line numbers (0-indexed) when possible for precise placement
- Include section names when applicable (e.g., "Work Experience", "Skills", "Education")
- Be conservative - only suggest changes that directly address the user's request
- Maintain the existing structure and format of the resume
- For multi-line changes, use multiple operations
- Ensure oldText in replace/delete operations exactly matches the content in the current resume

Respond with a single JSON object and nothing else, matching this shape:
{"suggestions": "...", "operations": [{"type": "insert|delete|replace", "section": "...", "line": 0, "oldText": "...", "newText": "..."}], "summary": "..."}`

type resumeSuggestions struct {
	retriever  ContextRetriever
	provider   llm.Provider
	resources  resource.Manager
	documentId *int64
	logger     *logger_i.Logger
}

// NewResumeSuggestions advises on resume improvements. With a document id it
// also emits diff operations against that document's current content.
func NewResumeSuggestions(retriever ContextRetriever, provider llm.Provider, resources resource.Manager, documentId *int64) Tool {
	return &resumeSuggestions{
		retriever:  retriever,
		provider:   provider,
		resources:  resources,
		documentId: documentId,
		logger:     logger_i.NewLogger("Resume Suggestions"),
	}
}

func (t *resumeSuggestions) Definition() llm.ToolDef {
	return llm.ToolDef{
		Name:        "provide_resume_suggestions",
		Description: "Provide suggestions on how to improve a resume or incorporate experience into a resume. Use this tool when the user asks for resume advice, suggestions on how to add experience, or how to improve their resume.",
		Parameters: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"query": map[string]any{
					"type":        "string",
					"description": "The user's question or request about resume improvements or incorporating experience",
				},
			},
			"required": []string{"query"},
		},
	}
}

func (t *resumeSuggestions) Execute(ctx context.Context, args json.RawMessage) (string, error) {
	var input struct {
		Query string `json:"query"`
	}
	if err := json.Unmarshal(args, &input); err != nil {
		return "", fmt.Errorf("bad provide_resume_suggestions arguments: %w", err)
	}

	docContext, err := t.retriever.ContextForQuery(ctx, input.Query, config.ToolSearchLimit, nil)
	if err != nil {
		return "", err
	}
	if docContext == "" {
		return marshalResult(map[string]any{
			"suggestions": "I don't have any documents in the database yet. Please upload a document or add an experience first.",
		})
	}

	currentContent := ""
	if t.documentId != nil {
		doc, err := t.resources.Get(ctx, *t.documentId)
		if err != nil {
			t.logger.Warn("Could not load document for diff generation", "documentId", *t.documentId, "error", err)
		} else {
			currentContent = doc.Content
		}
	}

	if currentContent != "" {
		return t.suggestWithDiffs(ctx, input.Query, docContext, currentContent)
	}
	return t.suggestTextOnly(ctx, input.Query, docContext)
}

func (t *resumeSuggestions) suggestTextOnly(ctx context.Context, query, docContext string) (string, error) {
	prompt := fmt.Sprintf(`USER'S DOCUMENTATION AND EXPERIENCE:
%s

USER REQUEST: %s

Based on all the documentation and experiences provided above, please provide specific suggestions on how to improve their resume and incorporate their experience. Be detailed and actionable.`, docContext, query)

	reply, err := t.provider.Generate(ctx, suggestionsSystemPrompt, nil, prompt, nil)
	if err != nil {
		return "", err
	}
	return marshalResult(map[string]any{"suggestions": reply.Text})
}

func (t *resumeSuggestions) suggestWithDiffs(ctx context.Context, query, docContext, currentContent string) (string, error) {
	lineCount := len(strings.Split(currentContent, "\n"))
	prompt := fmt.Sprintf(`CURRENT RESUME (%d lines):
%s

USER'S DOCUMENTATION AND EXPERIENCE:
%s

USER REQUEST: %s

IMPORTANT: You must generate BOTH:
1. Detailed, actionable text suggestions on how to improve the resume
2. Structured diff operations (insert/delete/replace) that represent the precise changes needed

The operations array MUST contain at least one operation representing a concrete change to make. Do not return an empty operations array.`, lineCount, currentContent, docContext, query)

	reply, err := t.provider.Generate(ctx, suggestionsWithDiffsSystemPrompt, nil, prompt, nil)
	if err != nil {
		return "", err
	}

	parsed, err := parseSuggestionsPayload(reply.Text)
	if err != nil {
		t.logger.Warn("Model did not return parseable operations, degrading to text", "error", err)
		return marshalResult(map[string]any{"suggestions": reply.Text})
	}

	operations := parsed.Operations
	if operations == nil {
		operations = []docModel.DiffOperation{}
	}
	return marshalResult(map[string]any{
		"suggestions":       parsed.Suggestions,
		"structuredChanges": operations,
		"documentId":        *t.documentId,
	})
}

type suggestionsPayload struct {
	Suggestions string                   `json:"suggestions"`
	Operations  []docModel.DiffOperation `json:"operations"`
	Summary     string                   `json:"summary"`
}

// parseSuggestionsPayload digs the JSON object out of the model's answer,
// tolerating markdown code fences around it.
func parseSuggestionsPayload(text string) (suggestionsPayload, error) {
	var payload suggestionsPayload

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end <= start {
		return payload, errors.New("no JSON object in model output")
	}

	if err := json.Unmarshal([]byte(text[start:end+1]), &payload); err != nil {
		return payload, err
	}
	if payload.Suggestions == "" {
		return payload, errors.New("missing suggestions field")
	}
	return payload, nil
}
