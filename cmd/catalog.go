package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/vedic/internal/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the sutras grouped by difficulty",
	RunE: func(cmd *cobra.Command, args []string) error {
		diffVal, _ := cmd.Flags().GetString("difficulty")

		levels := catalog.AllDifficulties()
		if diffVal != "" {
			d, err := parseDifficulty(diffVal)
			if err != nil {
				return err
			}
			levels = []catalog.Difficulty{d}
		}

		printCatalog(cmd.OutOrStdout(), levels)
		return nil
	},
}

func init() {
	catalogCmd.Flags().StringP("difficulty", "d", "", "Only show one tier: beginner, intermediate or advanced")
}

func parseDifficulty(s string) (catalog.Difficulty, error) {
	for _, d := range catalog.AllDifficulties() {
		if strings.EqualFold(string(d), strings.TrimSpace(s)) {
			return d, nil
		}
	}
	return "", fmt.Errorf("invalid difficulty %q: must be beginner, intermediate or advanced", s)
}

func printCatalog(w io.Writer, levels []catalog.Difficulty) {
	for i, d := range levels {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, strings.ToUpper(string(d)))
		fmt.Fprintln(w, strings.Repeat("─", 72))
		for _, t := range catalog.ByDifficulty(d) {
			fmt.Fprintf(w, "%-12s  %s\n", t.ID, t.Name)
			fmt.Fprintf(w, "%-12s  %q\n", "", t.Translation)
			fmt.Fprintf(w, "%-12s  %s\n", "", t.Description)
		}
	}
}
