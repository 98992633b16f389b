package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/vedic/internal/app"
	"github.com/abhisek/vedic/internal/generation"
	"github.com/abhisek/vedic/internal/llm"
	"github.com/abhisek/vedic/internal/store"
)

// runApp builds dependencies and launches the TUI. The request log is
// optional: a database that cannot be opened only disables it.
func runApp(cmd *cobra.Command) error {
	logger, closeLog, err := newLogger(cmd)
	if err != nil {
		return err
	}
	defer closeLog()

	eventRepo, closeStore := openEventLog(cmd, cmd.ErrOrStderr(), logger)
	defer closeStore()

	source, err := newSource(cmd, eventRepo, logger)
	if err != nil {
		return err
	}
	logger.Info("starting", "model", source.model, "request_log", eventRepo != nil)

	return app.Run(app.Options{
		Source: source.Source,
		Logger: logger,
	})
}

// openEventLog opens the request log. On failure it warns on w and returns
// a nil repo, which the logging decorator treats as "do not record".
func openEventLog(cmd *cobra.Command, w io.Writer, logger *slog.Logger) (store.EventRepo, func()) {
	st, err := openStore(cmd)
	if err != nil {
		fmt.Fprintln(w, "Request log disabled:", err)
		logger.Warn("request log disabled", "error", err)
		return nil, func() {}
	}
	return st.EventRepo(), func() { st.Close() }
}

// configuredSource is a generation source plus the model it talks to.
type configuredSource struct {
	generation.Source
	model string
}

// newSource builds the generation pipeline from the environment. A missing
// provider is not fatal: every call fails and the failure policy decides
// what the user sees.
func newSource(cmd *cobra.Command, eventRepo store.EventRepo, logger *slog.Logger) (configuredSource, error) {
	policy, err := generation.ParsePolicy(os.Getenv("VEDIC_ON_FAILURE"))
	if err != nil {
		return configuredSource{}, err
	}

	provider, err := llm.NewProviderFromEnv(cmd.Context(), eventRepo, logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		if policy == generation.PolicyFallback {
			fmt.Fprintln(os.Stderr, "Showing built-in examples instead of generated content.")
		}
		provider = llm.Unavailable(err)
	}

	client := generation.NewClient(provider, generation.DefaultConfig())

	return configuredSource{
		Source: generation.WithPolicy(client, policy, logger),
		model:  provider.ModelID(),
	}, nil
}

// newLogger returns a JSON logger writing to --log-file or VEDIC_LOG_FILE.
// Without either, logs are discarded since the TUI owns the terminal.
func newLogger(cmd *cobra.Command) (*slog.Logger, func(), error) {
	path, _ := cmd.Flags().GetString("log-file")
	if path == "" {
		path = os.Getenv("VEDIC_LOG_FILE")
	}
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, func() { f.Close() }, nil
}
