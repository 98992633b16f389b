// Package generation turns a technique into model-generated practice
// puzzles, tutorials and technique details.
package generation

import (
	"context"

	"github.com/abhisek/vedic/internal/catalog"
)

// Puzzle is one practice question with its worked solution.
type Puzzle struct {
	Question    string   `json:"question"`
	Answer      float64  `json:"answer"`
	SutraUsed   string   `json:"sutraUsed"`
	Explanation string   `json:"explanation"`
	Steps       []string `json:"steps"`
	Hint        string   `json:"hint"`
}

// Tutorial is a step-by-step worked example of a technique.
type Tutorial struct {
	Title          string   `json:"title"`
	Concept        string   `json:"concept"`
	ExampleProblem string   `json:"exampleProblem"`
	Steps          []string `json:"steps"`
	WhyItWorks     string   `json:"whyItWorks"`
}

// Detail is the expanded description shown on a technique card.
type Detail struct {
	Summary  string   `json:"summary"`
	UseCases []string `json:"useCases"`
	DeepDive string   `json:"deepDive"`
}

// Source produces generated content for a technique. Implementations
// report failures as errors; WithPolicy decides what callers see.
type Source interface {
	Puzzle(ctx context.Context, t catalog.Technique) (*Puzzle, error)
	Tutorial(ctx context.Context, t catalog.Technique) (*Tutorial, error)
	Detail(ctx context.Context, t catalog.Technique) (*Detail, error)
}
