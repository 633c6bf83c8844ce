package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"bibmerge/internal/bib"
	"bibmerge/internal/config"
	"bibmerge/internal/textutil"
)

type comparison struct {
	Algorithm string  `json:"algorithm"`
	Score     float64 `json:"score"`
	Match     bool    `json:"match"`
}

func newCompareCommand(ctx *commandContext) *cobra.Command {
	var threshold float64
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "compare TITLE_A TITLE_B",
		Short: "Score two titles with every similarity algorithm",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			limit := cfg.Merge.SimilarityThreshold
			if cmd.Flags().Changed("threshold") {
				limit = threshold
			}
			if err := config.ValidateThreshold(limit); err != nil {
				return err
			}

			results := compareTitles(args[0], args[1], limit)
			if asJSON {
				return writeJSON(cmd, results)
			}

			rows := make([][]string, 0, len(results))
			for _, result := range results {
				rows = append(rows, []string{result.Algorithm, fmt.Sprintf("%.4f", result.Score), yesNo(result.Match)})
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(
				[]string{"Algorithm", "Score", fmt.Sprintf("≥ %.2f", limit)},
				rows,
				[]columnAlignment{alignLeft, alignRight, alignLeft},
			))
			return nil
		},
	}
	cmd.Flags().Float64VarP(&threshold, "threshold", "t", 1, "Threshold used to mark matches")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print scores as JSON")
	return cmd
}

// compareTitles scores the verbatim forms of a and b, the same text the
// classifier compares.
func compareTitles(a, b string, threshold float64) []comparison {
	left := bib.Verbatim(strings.TrimSpace(a))
	right := bib.Verbatim(strings.TrimSpace(b))
	results := make([]comparison, 0, len(textutil.Algorithms()))
	for _, alg := range textutil.Algorithms() {
		score := textutil.Score(left, right, alg)
		results = append(results, comparison{
			Algorithm: alg.String(),
			Score:     score,
			Match:     score >= threshold,
		})
	}
	return results
}
