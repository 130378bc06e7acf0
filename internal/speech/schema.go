package speech

import "github.com/Dipin-Adhikari/akshara/internal/llm"

// AnalysisSchema defines the JSON schema for read-aloud assessment responses.
var AnalysisSchema = &llm.Schema{
	Name:        "reading-analysis",
	Description: "Assessment of a child's recorded attempt at reading a short text aloud",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"transcribed_text": map[string]any{
				"type":        "string",
				"description": "Exact transcription of what the child said",
			},
			"accuracy_score": map[string]any{
				"type":        "integer",
				"minimum":     0,
				"maximum":     100,
				"description": "How closely the reading matched the target text (0-100)",
			},
			"risk_weight": map[string]any{
				"type":        "integer",
				"minimum":     0,
				"maximum":     100,
				"description": "0 near perfect, 20 minor hesitations, 50 mispronounced key words, 100 unable to read",
			},
			"feedback": map[string]any{
				"type":        "string",
				"description": "Short encouraging feedback for the child (max 10 words)",
			},
		},
		"required":             []any{"transcribed_text", "accuracy_score", "risk_weight", "feedback"},
		"additionalProperties": false,
	},
}
