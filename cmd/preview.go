package cmd

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/vedic/internal/catalog"
	"github.com/abhisek/vedic/internal/generation"
	"github.com/abhisek/vedic/internal/llm"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Preview generated content for a technique (no database)",
	Long: `Generate a puzzle, tutorial or detail card for one technique and print it.

This is a stateless developer tool: no database and no scoring. Generation
errors are reported as-is unless --fallback is given. Puzzles are interactive
unless --json is set.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().StringP("technique", "t", "", "Technique ID (see `vedic catalog`)")
	previewCmd.Flags().StringP("kind", "k", "puzzle", "What to generate: puzzle, tutorial or detail")
	previewCmd.Flags().Bool("json", false, "Print the raw JSON record")
	previewCmd.Flags().Bool("fallback", false, "Show the built-in example when generation fails")
	_ = previewCmd.MarkFlagRequired("technique")
}

func runPreview(cmd *cobra.Command, args []string) error {
	techVal, _ := cmd.Flags().GetString("technique")
	kind, _ := cmd.Flags().GetString("kind")
	asJSON, _ := cmd.Flags().GetBool("json")
	fallback, _ := cmd.Flags().GetBool("fallback")

	t, ok := catalog.Lookup(strings.TrimSpace(techVal))
	if !ok {
		return fmt.Errorf("unknown technique %q (known: %s)", techVal, strings.Join(catalog.IDs(), ", "))
	}

	kind = strings.ToLower(strings.TrimSpace(kind))
	switch kind {
	case "puzzle", "tutorial", "detail":
	default:
		return fmt.Errorf("invalid kind %q: must be puzzle, tutorial or detail", kind)
	}

	ctx := cmd.Context()
	provider, err := llm.NewProviderFromEnv(ctx, nil, nil)
	if err != nil {
		if !fallback {
			return fmt.Errorf("LLM provider: %w", err)
		}
		provider = llm.Unavailable(err)
	}

	var src generation.Source = generation.NewClient(provider, generation.DefaultConfig())
	if fallback {
		src = generation.WithPolicy(src, generation.PolicyFallback, nil)
	}

	out := cmd.OutOrStdout()
	status := cmd.ErrOrStderr()
	fmt.Fprintf(status, "Technique: %s (%s, %s)\n", t.Name, t.ID, t.Difficulty)
	fmt.Fprintf(status, "Generating %s with %s...\n\n", kind, provider.ModelID())

	var record any
	switch kind {
	case "puzzle":
		p, err := src.Puzzle(ctx, t)
		if err != nil {
			return err
		}
		if !asJSON {
			return askPuzzle(out, cmd.InOrStdin(), p)
		}
		record = p
	case "tutorial":
		tut, err := src.Tutorial(ctx, t)
		if err != nil {
			return err
		}
		if !asJSON {
			printTutorial(out, tut)
			return nil
		}
		record = tut
	case "detail":
		d, err := src.Detail(ctx, t)
		if err != nil {
			return err
		}
		if !asJSON {
			printDetail(out, d)
			return nil
		}
		record = d
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(record)
}

// askPuzzle shows the question, reads one answer and reveals the solution.
func askPuzzle(w io.Writer, r io.Reader, p *generation.Puzzle) error {
	fmt.Fprintln(w, p.Question)
	if p.Hint != "" {
		fmt.Fprintf(w, "Hint: %s\n", p.Hint)
	}

	fmt.Fprint(w, "\nYour answer: ")
	scanner := bufio.NewScanner(r)
	answer := ""
	if scanner.Scan() {
		answer = strings.TrimSpace(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read answer: %w", err)
	}

	switch {
	case answer == "":
		fmt.Fprintf(w, "(skipped) Answer: %s\n", generation.FormatAnswer(p.Answer))
	case p.Check(answer):
		fmt.Fprintln(w, "\033[32m✓ Correct!\033[0m")
	default:
		fmt.Fprintf(w, "\033[31m✗ Not quite.\033[0m Answer: %s\n", generation.FormatAnswer(p.Answer))
	}

	fmt.Fprintf(w, "\nSutra: %s\n", p.SutraUsed)
	printSteps(w, p.Steps)
	if p.Explanation != "" {
		fmt.Fprintf(w, "\n%s\n", p.Explanation)
	}
	return nil
}

func printTutorial(w io.Writer, t *generation.Tutorial) {
	fmt.Fprintln(w, t.Title)
	fmt.Fprintln(w, strings.Repeat("─", 60))
	fmt.Fprintf(w, "%s\n\n", t.Concept)
	fmt.Fprintf(w, "Example: %s\n", t.ExampleProblem)
	printSteps(w, t.Steps)
	fmt.Fprintf(w, "\nWhy it works: %s\n", t.WhyItWorks)
}

func printDetail(w io.Writer, d *generation.Detail) {
	fmt.Fprintln(w, d.Summary)
	fmt.Fprintln(w, "\nUse cases:")
	for _, u := range d.UseCases {
		fmt.Fprintf(w, "  • %s\n", u)
	}
	fmt.Fprintf(w, "\n%s\n", d.DeepDive)
}

func printSteps(w io.Writer, steps []string) {
	for i, s := range steps {
		fmt.Fprintf(w, "  %d. %s\n", i+1, s)
	}
}
