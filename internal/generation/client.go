package generation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/abhisek/vedic/internal/catalog"
	"github.com/abhisek/vedic/internal/llm"
)

// ErrEmptyResponse is returned when the model produced no content.
var ErrEmptyResponse = errors.New("no content generated")

// Client generates content through an LLM provider. Every failure is
// returned to the caller; see WithPolicy for fallback behavior.
type Client struct {
	provider llm.Provider
	cfg      Config
}

var _ Source = (*Client)(nil)

// NewClient creates a generation client.
func NewClient(provider llm.Provider, cfg Config) *Client {
	return &Client{provider: provider, cfg: cfg}
}

// Puzzle generates a practice puzzle for t.
func (c *Client) Puzzle(ctx context.Context, t catalog.Technique) (*Puzzle, error) {
	var out Puzzle
	msg := buildPuzzleMessage(t, InstructionFor(t.ID))
	if err := c.generate(ctx, llm.PurposePuzzle, msg, PuzzleSchema, &out); err != nil {
		return nil, fmt.Errorf("puzzle for %s: %w", t.ID, err)
	}
	return &out, nil
}

// Tutorial generates a walkthrough for t.
func (c *Client) Tutorial(ctx context.Context, t catalog.Technique) (*Tutorial, error) {
	var out Tutorial
	msg := buildTutorialMessage(t, InstructionFor(t.ID))
	if err := c.generate(ctx, llm.PurposeTutorial, msg, TutorialSchema, &out); err != nil {
		return nil, fmt.Errorf("tutorial for %s: %w", t.ID, err)
	}
	return &out, nil
}

// Detail generates the expanded card content for t.
func (c *Client) Detail(ctx context.Context, t catalog.Technique) (*Detail, error) {
	var out Detail
	if err := c.generate(ctx, llm.PurposeDetail, buildDetailMessage(t), DetailSchema, &out); err != nil {
		return nil, fmt.Errorf("detail for %s: %w", t.ID, err)
	}
	return &out, nil
}

func (c *Client) generate(ctx context.Context, purpose, msg string, schema *llm.Schema, out any) error {
	ctx = llm.WithPurpose(ctx, purpose)

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: msg},
		},
		Schema:      schema,
		MaxTokens:   c.cfg.MaxTokens,
		Temperature: c.cfg.Temperature,
	}

	resp, err := c.provider.Generate(ctx, req)
	if err != nil {
		return fmt.Errorf("LLM generation failed: %w", err)
	}
	if resp == nil || strings.TrimSpace(string(resp.Content)) == "" {
		return ErrEmptyResponse
	}

	if err := json.Unmarshal(resp.Content, out); err != nil {
		return fmt.Errorf("parse %s response: %w", schema.Name, err)
	}
	return nil
}
