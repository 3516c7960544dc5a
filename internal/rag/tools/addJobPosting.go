package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/akolanti/ResumeRAG/internal/domain/docModel"
	"github.com/akolanti/ResumeRAG/internal/rag/llm"
	"github.com/akolanti/ResumeRAG/internal/resource"
)

type addJobPosting struct {
	resources resource.Manager
}

// NewAddJobPosting saves a job posting so later searches can match resumes
// against it.
func NewAddJobPosting(resources resource.Manager) Tool {
	return &addJobPosting{resources: resources}
}

func (t *addJobPosting) Definition() llm.ToolDef {
	return llm.ToolDef{
		Name:        "add_job_posting",
		Description: "Save a job posting to the user's document collection. The user will provide the job posting text and optionally a link to the posting.",
		Parameters: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"jobPosting": map[string]any{
					"type":        "string",
					"description": "The full text content of the job posting",
				},
				"link": map[string]any{
					"type":        "string",
					"description": "Optional URL/link to the job posting",
				},
			},
			"required": []string{"jobPosting"},
		},
	}
}

func (t *addJobPosting) Execute(ctx context.Context, args json.RawMessage) (string, error) {
	var input struct {
		JobPosting string `json:"jobPosting"`
		Link       string `json:"link"`
	}
	if err := json.Unmarshal(args, &input); err != nil {
		return "", fmt.Errorf("bad add_job_posting arguments: %w", err)
	}

	content := input.JobPosting
	if input.Link != "" {
		content += "\n\nLink: " + input.Link
	}
	content = strings.TrimSpace(content)

	name := fmt.Sprintf("Job Posting - %s", time.Now().UTC().Format(time.RFC3339))
	doc, chunks, err := t.resources.Create(ctx, content, name, docModel.TypeOther, []string{"job"})
	if err != nil {
		return "", err
	}

	return marshalResult(map[string]any{
		"success":         true,
		"documentId":      doc.Id,
		"chunksProcessed": chunks,
		"message":         "Job posting saved successfully and is now available for RAG queries.",
	})
}
