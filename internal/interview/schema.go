package interview

import "github.com/abhisek/bilan/internal/llm"

// QuestionSchema defines the JSON schema for LLM interview question responses.
var QuestionSchema = &llm.Schema{
	Name:        "interview-question",
	Description: "A single career assessment interview question",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question_text": map[string]any{
				"type":        "string",
				"description": "The question shown to the user, in French, one question only",
			},
			"theme": map[string]any{
				"type":        "string",
				"enum":        []any{"parcours", "competences", "motivations", "valeurs", "projet", "contexte"},
				"description": "What the question explores",
			},
			"complexity": map[string]any{
				"type":        "string",
				"enum":        []any{"simple", "moyen", "complexe"},
				"description": "Self-assessed depth of the question",
			},
		},
		"required":             []any{"question_text", "theme", "complexity"},
		"additionalProperties": false,
	},
}
