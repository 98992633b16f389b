package generation

import "github.com/abhisek/vedic/internal/llm"

func stringArray(desc string) map[string]any {
	return map[string]any{
		"type":        "array",
		"items":       map[string]any{"type": "string"},
		"description": desc,
	}
}

// PuzzleSchema is the structured output requested for practice puzzles.
var PuzzleSchema = &llm.Schema{
	Name:        "sutra-puzzle",
	Description: "A practice puzzle that exercises one Vedic math sutra",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question": map[string]any{
				"type":        "string",
				"description": "The numerical question, e.g. \"45 × 45\"",
			},
			"answer": map[string]any{
				"type":        "number",
				"description": "The correct numeric answer",
			},
			"sutraUsed": map[string]any{
				"type":        "string",
				"description": "Name of the sutra the solution uses",
			},
			"explanation": map[string]any{
				"type":        "string",
				"description": "Brief summary of the solution",
			},
			"steps": stringArray("3-4 short steps teaching the sutra"),
			"hint": map[string]any{
				"type":        "string",
				"description": "A small hint that does not give away the answer",
			},
		},
		"required":             []any{"question", "answer", "sutraUsed", "explanation", "steps", "hint"},
		"additionalProperties": false,
	},
}

// TutorialSchema is the structured output requested for tutorials.
var TutorialSchema = &llm.Schema{
	Name:        "sutra-tutorial",
	Description: "A step-by-step walkthrough of one Vedic math sutra",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{
				"type":        "string",
				"description": "Short lesson title",
			},
			"concept": map[string]any{
				"type":        "string",
				"description": "The idea behind the sutra in 2-4 sentences",
			},
			"exampleProblem": map[string]any{
				"type":        "string",
				"description": "The worked example, e.g. \"35 × 35\"",
			},
			"steps": stringArray("4-6 steps solving the example with the sutra"),
			"whyItWorks": map[string]any{
				"type":        "string",
				"description": "The algebra that makes the shortcut valid",
			},
		},
		"required":             []any{"title", "concept", "exampleProblem", "steps", "whyItWorks"},
		"additionalProperties": false,
	},
}

// DetailSchema is the structured output requested for technique details.
var DetailSchema = &llm.Schema{
	Name:        "sutra-detail",
	Description: "An expanded description of one Vedic math sutra",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"summary": map[string]any{
				"type":        "string",
				"description": "One or two sentence summary",
			},
			"useCases": stringArray("3-4 situations where the sutra is useful"),
			"deepDive": map[string]any{
				"type":        "string",
				"description": "A short paragraph on how and why the sutra works",
			},
		},
		"required":             []any{"summary", "useCases", "deepDive"},
		"additionalProperties": false,
	},
}
