package story

import "github.com/Dipin-Adhikari/akshara/internal/llm"

// StorySetSchema defines the JSON schema for generated story sets.
var StorySetSchema = &llm.Schema{
	Name:        "practice-stories",
	Description: "Three short children's stories practicing a set of focus letters",
	Definition: map[string]any{
		"type":     "array",
		"minItems": 3,
		"maxItems": 3,
		"items": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"id": map[string]any{
					"type": "string",
				},
				"title": map[string]any{
					"type": "string",
				},
				"theme": map[string]any{
					"type": "string",
				},
				"language": map[string]any{
					"type":        "string",
					"description": "English or Nepali",
				},
				"cover_image_prompt": map[string]any{
					"type":        "string",
					"description": "Visual description for an AI image generator",
				},
				"focus_letters": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
				"pages": map[string]any{
					"type":     "array",
					"minItems": 3,
					"maxItems": 3,
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"text": map[string]any{
								"type":        "string",
								"description": "2-3 simple sentences",
							},
							"image_prompt": map[string]any{
								"type": "string",
							},
						},
						"required":             []any{"text", "image_prompt"},
						"additionalProperties": false,
					},
				},
			},
			"required":             []any{"id", "title", "theme", "language", "cover_image_prompt", "focus_letters", "pages"},
			"additionalProperties": false,
		},
	},
}
