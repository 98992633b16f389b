package store

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a requested event does not exist.
var ErrNotFound = errors.New("not found")

// QueryOpts configures event queries with filtering and pagination.
// Zero values leave the corresponding filter off.
type QueryOpts struct {
	Limit      int       // max results (0 = unlimited)
	After      int64     // id > After
	Before     int64     // id < Before
	From       time.Time // created_at >= From
	To         time.Time // created_at <= To
	Purpose    string    // exact purpose match
	FailedOnly bool      // only unsuccessful requests
}

// LLMRequestEventData captures the data for a single LLM request.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorKind    string
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is a stored LLM request.
type LLMEvent struct {
	ID        int64
	CreatedAt time.Time
	LLMRequestEventData
}

// PurposeUsage aggregates requests sharing a purpose label.
type PurposeUsage struct {
	Purpose      string
	Calls        int
	Failures     int
	InputTokens  int64
	OutputTokens int64
	AvgLatencyMs float64
}

// ModelUsage aggregates token consumption per model.
type ModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int64
	OutputTokens int64
}

// EventRepo records and reads back LLM requests.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns matching events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)

	// GetLLMEvent returns a single event by ID, or ErrNotFound.
	GetLLMEvent(ctx context.Context, id int64) (*LLMEvent, error)

	// LLMUsageByPurpose aggregates calls, failures, tokens and latency per purpose.
	LLMUsageByPurpose(ctx context.Context) ([]PurposeUsage, error)

	// LLMUsageByModel aggregates calls and tokens per model.
	LLMUsageByModel(ctx context.Context) ([]ModelUsage, error)

	// PurgeLLMEvents deletes events recorded before the given time, or
	// every event when before is zero. It returns the number removed.
	PurgeLLMEvents(ctx context.Context, before time.Time) (int64, error)
}
