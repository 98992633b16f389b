package store

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

// eventRepo implements EventRepo with ent's SQL builder.
type eventRepo struct {
	drv *entsql.Driver
}

// now is replaced in tests.
var now = time.Now

func builder() *entsql.DialectBuilder {
	return entsql.Dialect(dialect.SQLite)
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	query, args := builder().Insert(llmRequestEventsTable).
		Columns(
			colCreatedAt, colProvider, colModel, colPurpose,
			colInputTokens, colOutputTokens, colLatencyMs, colSuccess,
			colErrorKind, colErrorMessage, colRequestBody, colResponseBody,
		).
		Values(
			now().UnixMilli(), data.Provider, data.Model, data.Purpose,
			data.InputTokens, data.OutputTokens, data.LatencyMs, data.Success,
			data.ErrorKind, data.ErrorMessage, data.RequestBody, data.ResponseBody,
		).
		Query()

	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}
	return nil
}

// eventRow mirrors one llm_request_events row for scanning.
type eventRow struct {
	ID           int64  `sql:"id"`
	CreatedAt    int64  `sql:"created_at"`
	Provider     string `sql:"provider"`
	Model        string `sql:"model"`
	Purpose      string `sql:"purpose"`
	InputTokens  int    `sql:"input_tokens"`
	OutputTokens int    `sql:"output_tokens"`
	LatencyMs    int64  `sql:"latency_ms"`
	Success      bool   `sql:"success"`
	ErrorKind    string `sql:"error_kind"`
	ErrorMessage string `sql:"error_message"`
	RequestBody  string `sql:"request_body"`
	ResponseBody string `sql:"response_body"`
}

func (row eventRow) event() LLMEvent {
	return LLMEvent{
		ID:        row.ID,
		CreatedAt: time.UnixMilli(row.CreatedAt),
		LLMRequestEventData: LLMRequestEventData{
			Provider:     row.Provider,
			Model:        row.Model,
			Purpose:      row.Purpose,
			InputTokens:  row.InputTokens,
			OutputTokens: row.OutputTokens,
			LatencyMs:    row.LatencyMs,
			Success:      row.Success,
			ErrorKind:    row.ErrorKind,
			ErrorMessage: row.ErrorMessage,
			RequestBody:  row.RequestBody,
			ResponseBody: row.ResponseBody,
		},
	}
}

func (r *eventRepo) QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error) {
	sel := builder().Select(eventColumns...).From(entsql.Table(llmRequestEventsTable))
	if opts.After > 0 {
		sel.Where(entsql.GT(colID, opts.After))
	}
	if opts.Before > 0 {
		sel.Where(entsql.LT(colID, opts.Before))
	}
	if !opts.From.IsZero() {
		sel.Where(entsql.GTE(colCreatedAt, opts.From.UnixMilli()))
	}
	if !opts.To.IsZero() {
		sel.Where(entsql.LTE(colCreatedAt, opts.To.UnixMilli()))
	}
	if opts.Purpose != "" {
		sel.Where(entsql.EQ(colPurpose, opts.Purpose))
	}
	if opts.FailedOnly {
		sel.Where(entsql.EQ(colSuccess, false))
	}
	sel.OrderBy(entsql.Desc(colID))
	if opts.Limit > 0 {
		sel.Limit(opts.Limit)
	}

	var rows []eventRow
	if err := r.scan(ctx, sel, &rows); err != nil {
		return nil, fmt.Errorf("query LLM events: %w", err)
	}

	events := make([]LLMEvent, len(rows))
	for i, row := range rows {
		events[i] = row.event()
	}
	return events, nil
}

func (r *eventRepo) GetLLMEvent(ctx context.Context, id int64) (*LLMEvent, error) {
	sel := builder().Select(eventColumns...).
		From(entsql.Table(llmRequestEventsTable)).
		Where(entsql.EQ(colID, id)).
		Limit(1)

	var rows []eventRow
	if err := r.scan(ctx, sel, &rows); err != nil {
		return nil, fmt.Errorf("get LLM event %d: %w", id, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("LLM event %d: %w", id, ErrNotFound)
	}
	ev := rows[0].event()
	return &ev, nil
}

type purposeRow struct {
	Purpose      string  `sql:"purpose"`
	Calls        int     `sql:"calls"`
	Successes    int     `sql:"successes"`
	InputTokens  int64   `sql:"input_tokens"`
	OutputTokens int64   `sql:"output_tokens"`
	AvgLatencyMs float64 `sql:"avg_latency_ms"`
}

func (r *eventRepo) LLMUsageByPurpose(ctx context.Context) ([]PurposeUsage, error) {
	sel := builder().Select(
		colPurpose,
		entsql.As(entsql.Count("*"), "calls"),
		entsql.As(entsql.Sum(colSuccess), "successes"),
		entsql.As(entsql.Sum(colInputTokens), colInputTokens),
		entsql.As(entsql.Sum(colOutputTokens), colOutputTokens),
		entsql.As(entsql.Avg(colLatencyMs), "avg_latency_ms"),
	).
		From(entsql.Table(llmRequestEventsTable)).
		GroupBy(colPurpose).
		OrderBy(colPurpose)

	var rows []purposeRow
	if err := r.scan(ctx, sel, &rows); err != nil {
		return nil, fmt.Errorf("LLM usage by purpose: %w", err)
	}

	out := make([]PurposeUsage, len(rows))
	for i, row := range rows {
		out[i] = PurposeUsage{
			Purpose:      row.Purpose,
			Calls:        row.Calls,
			Failures:     row.Calls - row.Successes,
			InputTokens:  row.InputTokens,
			OutputTokens: row.OutputTokens,
			AvgLatencyMs: row.AvgLatencyMs,
		}
	}
	return out, nil
}

type modelRow struct {
	Model        string `sql:"model"`
	Calls        int    `sql:"calls"`
	InputTokens  int64  `sql:"input_tokens"`
	OutputTokens int64  `sql:"output_tokens"`
}

func (r *eventRepo) LLMUsageByModel(ctx context.Context) ([]ModelUsage, error) {
	sel := builder().Select(
		colModel,
		entsql.As(entsql.Count("*"), "calls"),
		entsql.As(entsql.Sum(colInputTokens), colInputTokens),
		entsql.As(entsql.Sum(colOutputTokens), colOutputTokens),
	).
		From(entsql.Table(llmRequestEventsTable)).
		GroupBy(colModel).
		OrderBy(colModel)

	var rows []modelRow
	if err := r.scan(ctx, sel, &rows); err != nil {
		return nil, fmt.Errorf("LLM usage by model: %w", err)
	}

	out := make([]ModelUsage, len(rows))
	for i, row := range rows {
		out[i] = ModelUsage(row)
	}
	return out, nil
}

func (r *eventRepo) PurgeLLMEvents(ctx context.Context, before time.Time) (int64, error) {
	del := builder().Delete(llmRequestEventsTable)
	if !before.IsZero() {
		del.Where(entsql.LT(colCreatedAt, before.UnixMilli()))
	}
	query, args := del.Query()

	var res entsql.Result
	if err := r.drv.Exec(ctx, query, args, &res); err != nil {
		return 0, fmt.Errorf("purge LLM events: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("purge LLM events: %w", err)
	}
	return n, nil
}

func (r *eventRepo) scan(ctx context.Context, sel *entsql.Selector, v any) error {
	query, args := sel.Query()
	var rows entsql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return err
	}
	defer rows.Close()
	return entsql.ScanSlice(rows, v)
}
