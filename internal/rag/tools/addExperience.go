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

type addExperience struct {
	resources resource.Manager
}

// NewAddExperience stores a free-form experience entry as a searchable
// document.
func NewAddExperience(resources resource.Manager) Tool {
	return &addExperience{resources: resources}
}

func (t *addExperience) Definition() llm.ToolDef {
	stringProp := func(desc string) map[string]any {
		return map[string]any{"type": "string", "description": desc}
	}
	listProp := func(desc string) map[string]any {
		return map[string]any{"type": "array", "items": map[string]any{"type": "string"}, "description": desc}
	}
	return llm.ToolDef{
		Name:        "add_experience",
		Description: "Add a new experience to your history. Though only date and description are required, prompt the user for more information if their description is vague or unclear.",
		Parameters: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"date":           stringProp("The date of the experience"),
				"description":    stringProp("The description of the experience to add to your history"),
				"title":          stringProp("The title of the experience"),
				"company":        stringProp("The company of the experience"),
				"position":       stringProp("The position of the experience"),
				"location":       stringProp("The location of the experience"),
				"url":            stringProp("The URL of the experience"),
				"tags":           listProp("The tags of the experience"),
				"skills":         listProp("The skills of the experience"),
				"tools":          listProp("The tools of the experience"),
				"technologies":   listProp("The technologies of the experience"),
				"projects":       listProp("The projects of the experience"),
				"education":      listProp("The education of the experience"),
				"certifications": listProp("The certifications of the experience"),
				"awards":         listProp("The awards of the experience"),
				"publications":   listProp("The publications of the experience"),
			},
			"required": []string{"date", "description"},
		},
	}
}

type ExperienceInput struct {
	Date           string   `json:"date"`
	Description    string   `json:"description"`
	Title          string   `json:"title"`
	Company        string   `json:"company"`
	Position       string   `json:"position"`
	Location       string   `json:"location"`
	URL            string   `json:"url"`
	Tags           []string `json:"tags"`
	Skills         []string `json:"skills"`
	Tools          []string `json:"tools"`
	Technologies   []string `json:"technologies"`
	Projects       []string `json:"projects"`
	Education      []string `json:"education"`
	Certifications []string `json:"certifications"`
	Awards         []string `json:"awards"`
	Publications   []string `json:"publications"`
}

func (t *addExperience) Execute(ctx context.Context, args json.RawMessage) (string, error) {
	var input ExperienceInput
	if err := json.Unmarshal(args, &input); err != nil {
		return "", fmt.Errorf("bad add_experience arguments: %w", err)
	}

	doc, chunks, err := StoreExperience(ctx, t.resources, input)
	if err != nil {
		return "", err
	}

	return marshalResult(map[string]any{
		"success":         true,
		"documentId":      doc.Id,
		"chunksProcessed": chunks,
		"message":         "Experience stored successfully and is now available for RAG queries.",
	})
}

// StoreExperience formats the entry and stores it as its own searchable
// document. Shared by the LLM tool, the HTTP endpoint and the MCP tool.
func StoreExperience(ctx context.Context, resources resource.Manager, input ExperienceInput) (docModel.Document, int, error) {
	content := FormatExperience(input)
	name := fmt.Sprintf("Experience - %s", time.Now().UTC().Format(time.RFC3339))
	return resources.Create(ctx, content, name, docModel.TypeOther, nil)
}

// FormatExperience renders the entry as indented "Field: value" lines. Only
// populated fields appear; date and description always lead.
func FormatExperience(input ExperienceInput) string {
	parts := []string{
		fmt.Sprintf("Date: %s", input.Date),
		fmt.Sprintf("Description: %s", input.Description),
	}

	appendField := func(label, value string) {
		if value != "" {
			parts = append(parts, fmt.Sprintf("%s: %s", label, value))
		}
	}
	appendList := func(label string, values []string) {
		if len(values) > 0 {
			parts = append(parts, fmt.Sprintf("%s: %s", label, strings.Join(values, ", ")))
		}
	}

	appendField("Title", input.Title)
	appendField("Company", input.Company)
	appendField("Position", input.Position)
	appendField("Location", input.Location)
	appendField("URL", input.URL)
	appendList("Tags", input.Tags)
	appendList("Skills", input.Skills)
	appendList("Tools", input.Tools)
	appendList("Technologies", input.Technologies)
	appendList("Projects", input.Projects)
	appendList("Education", input.Education)
	appendList("Certifications", input.Certifications)
	appendList("Awards", input.Awards)
	appendList("Publications", input.Publications)

	for i, part := range parts {
		parts[i] = "    " + part
	}
	return strings.TrimSpace(strings.Join(parts, "\n"))
}

func marshalResult(result map[string]any) (string, error) {
	payload, err := json.Marshal(result)
	if err != nil {
		return "", err
	}
	return string(payload), nil
}
