package synthesis

import "github.com/abhisek/bilan/internal/llm"

// SummarySchema defines the JSON schema for the assessment synthesis.
var SummarySchema = &llm.Schema{
	Name:        "assessment-summary",
	Description: "Final synthesis of a skills assessment interview",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"summary_text": map[string]any{
				"type":        "string",
				"description": "Narrative synthesis in French, 3-6 paragraphs, addressed to the person with 'vous'",
			},
			"strengths": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "3-5 specific strengths grounded in the answers (one sentence each)",
			},
			"development_axes": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "2-4 concrete development axes or next steps (one sentence each)",
			},
		},
		"required":             []any{"summary_text", "strengths", "development_axes"},
		"additionalProperties": false,
	},
}
