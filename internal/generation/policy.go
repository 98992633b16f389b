package generation

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/abhisek/vedic/internal/catalog"
	"github.com/abhisek/vedic/internal/llm"
)

// Policy decides what callers see when generation fails.
type Policy string

const (
	// PolicyFallback replaces every failure with the canned record for
	// that operation. Callers never see an error.
	PolicyFallback Policy = "fallback"

	// PolicySurface passes failures through so the UI can offer a retry.
	PolicySurface Policy = "surface"
)

// ParsePolicy parses a policy name. The empty string selects
// PolicyFallback.
func ParsePolicy(s string) (Policy, error) {
	switch Policy(strings.ToLower(strings.TrimSpace(s))) {
	case "", PolicyFallback:
		return PolicyFallback, nil
	case PolicySurface:
		return PolicySurface, nil
	default:
		return "", fmt.Errorf("unknown failure policy %q (want %q or %q)", s, PolicyFallback, PolicySurface)
	}
}

// WithPolicy wraps src so failures are handled according to p. logger
// may be nil.
func WithPolicy(src Source, p Policy, logger *slog.Logger) Source {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &policySource{
		inner:  src,
		policy: p,
		logger: logger.With("component", "generation", "policy", string(p)),
	}
}

type policySource struct {
	inner  Source
	policy Policy
	logger *slog.Logger
}

func (s *policySource) Puzzle(ctx context.Context, t catalog.Technique) (*Puzzle, error) {
	p, err := s.inner.Puzzle(ctx, t)
	if err == nil {
		return p, nil
	}
	return handle(s, llm.PurposePuzzle, t, err, FallbackPuzzle)
}

func (s *policySource) Tutorial(ctx context.Context, t catalog.Technique) (*Tutorial, error) {
	tut, err := s.inner.Tutorial(ctx, t)
	if err == nil {
		return tut, nil
	}
	return handle(s, llm.PurposeTutorial, t, err, FallbackTutorial)
}

func (s *policySource) Detail(ctx context.Context, t catalog.Technique) (*Detail, error) {
	d, err := s.inner.Detail(ctx, t)
	if err == nil {
		return d, nil
	}
	return handle(s, llm.PurposeDetail, t, err, FallbackDetail)
}

func handle[T any](s *policySource, op string, t catalog.Technique, err error, fallback func() *T) (*T, error) {
	if s.policy == PolicySurface {
		s.logger.Warn("generation failed",
			"op", op, "technique", t.ID, "kind", llm.Kind(err), "err", err)
		return nil, err
	}
	s.logger.Warn("generation failed, serving fallback",
		"op", op, "technique", t.ID, "kind", llm.Kind(err), "err", err)
	return fallback(), nil
}
