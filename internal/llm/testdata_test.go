package llm

// puzzleSchema mirrors the shape the generation client requests.
func puzzleSchema() *Schema {
	return &Schema{
		Name:        "test-puzzle",
		Description: "A practice puzzle",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"question":    map[string]any{"type": "string"},
				"answer":      map[string]any{"type": "number"},
				"sutraUsed":   map[string]any{"type": "string"},
				"explanation": map[string]any{"type": "string"},
				"steps": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
				"hint": map[string]any{"type": "string"},
			},
			"required":             []any{"question", "answer", "sutraUsed", "explanation", "steps", "hint"},
			"additionalProperties": false,
		},
	}
}

const validPuzzleJSON = `{"question":"What is 45 × 45?","answer":2025,"sutraUsed":"Ekadhikena Purvena","explanation":"Square of a number ending in 5.","steps":["4 × 5 = 20","Append 25","2025"],"hint":"Multiply 4 by one more than itself."}`
