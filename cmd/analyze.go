// Package cmd contains all the CLI commands for the application,
// built using the Cobra library.
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/henrygabriels/llm-literature-explorer/internal/domain"
	"github.com/henrygabriels/llm-literature-explorer/internal/storage"
	"github.com/henrygabriels/llm-literature-explorer/internal/usecase"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Computes statistics over a previously saved result set",
	Long: `Loads a result set saved by the search command and computes its language
distribution, topic frequencies, creation timeline and star statistics,
without touching the network.`,
	Run: func(cmd *cobra.Command, args []string) {
		verbose, _ := cmd.InheritedFlags().GetBool("verbose")
		logger := newLogger(verbose)

		input, _ := cmd.Flags().GetString("input")
		output, _ := cmd.Flags().GetString("output")
		medianOnly, _ := cmd.Flags().GetBool("median")

		logger.Printf("Loading result set from %s", input)
		results, err := storage.LoadResultSet(input)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load result set: %v\n", err)
			os.Exit(1)
		}
		logger.Printf("Loaded %d repositories", len(results.Repositories))

		// The median is the one statistic that is undefined on an empty set,
		// so requesting it alone can fail where the full report cannot.
		if medianOnly {
			median, err := usecase.StarMedian(results)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Failed to compute star median: %v\n", err)
				os.Exit(1)
			}
			fmt.Printf("Star median: %g\n", median)
			return
		}

		report := usecase.Analyze(results)

		if output == "" {
			output = storage.AnalysisPath(input)
		}
		if err := storage.SaveReport(output, report); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to save analysis: %v\n", err)
			os.Exit(1)
		}
		logger.Printf("Analysis written to %s", output)
		fmt.Printf("Analysis saved to %s\n", output)
		printSummary(os.Stdout, report)
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	analyzeCmd.Flags().String("input", "llm_literature_repos.json", "Result set JSON file to analyze")
	analyzeCmd.Flags().String("output", "", "Analysis report filename (default derived from --input)")
	analyzeCmd.Flags().Bool("median", false, "Print only the median star count (fails on an empty result set)")
}

// printSummary mirrors the highlights of the saved report on stdout.
func printSummary(w io.Writer, report *domain.AnalysisReport) {
	fmt.Fprintln(w, "\n=== Analysis Summary ===")
	fmt.Fprintf(w, "Total repositories: %d\n", report.TotalCount)

	fmt.Fprintln(w, "\nTop 5 Programming Languages:")
	for i, language := range top(report.Languages, 5) {
		fmt.Fprintf(w, "  %d. %s: %d\n", i+1, language.Name, language.Count)
	}

	fmt.Fprintln(w, "\nTop 5 Topics:")
	for i, topic := range top(report.Topics, 5) {
		fmt.Fprintf(w, "  %d. %s: %d\n", i+1, topic.Name, topic.Count)
	}

	if report.Stars != nil {
		fmt.Fprintf(w, "\nStars: min %.0f, max %.0f, mean %.1f, median %.1f\n",
			report.Stars.Min, report.Stars.Max, report.Stars.Mean, report.Stars.Median)
	} else {
		fmt.Fprintln(w, "\nStars: no data")
	}

	fmt.Fprintln(w, "\nStars Distribution:")
	for _, bucket := range report.StarBuckets {
		fmt.Fprintf(w, "  %s: %d\n", bucket.Name, bucket.Count)
	}
}

func top(counts []domain.NameCount, n int) []domain.NameCount {
	if len(counts) < n {
		return counts
	}
	return counts[:n]
}
