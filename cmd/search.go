// Package cmd contains all the CLI commands for the application,
// built using the Cobra library.
package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/henrygabriels/llm-literature-explorer/internal/config"
	"github.com/henrygabriels/llm-literature-explorer/internal/gateway"
	"github.com/henrygabriels/llm-literature-explorer/internal/storage"
	"github.com/henrygabriels/llm-literature-explorer/internal/usecase"
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Sweeps the repository search API and saves the results as JSON",
	Long: `Runs every topical search query against the GitHub repository search API,
merges the hits into a single deduplicated result set, and saves it as a JSON
file. With --analyze, an analysis report is computed and saved alongside it.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		verbose, _ := cmd.InheritedFlags().GetBool("verbose")
		logger := newLogger(verbose)

		cfg, err := config.Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
			os.Exit(1)
		}

		page, _ := cmd.Flags().GetInt("page")
		perPage, _ := cmd.Flags().GetInt("per-page")
		output, _ := cmd.Flags().GetString("output")
		analyze, _ := cmd.Flags().GetBool("analyze")
		token, _ := cmd.Flags().GetString("token")
		sortBy, _ := cmd.Flags().GetString("sort")
		order, _ := cmd.Flags().GetString("order")
		queryDelay, _ := cmd.Flags().GetDuration("query-delay")
		waitOnLimit, _ := cmd.Flags().GetBool("wait-on-limit")

		// Flags win; the environment-backed config fills the gaps.
		if token == "" {
			token = cfg.GithubToken
		}
		if output == "" {
			output = cfg.OutputFile
		}
		if !cmd.Flags().Changed("query-delay") {
			queryDelay = cfg.QueryDelay
		}

		githubGateway, err := gateway.NewGitHubGateway(token, waitOnLimit, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create GitHub gateway: %v\n", err)
			os.Exit(1)
		}
		explorer := usecase.NewExplorer(githubGateway, logger, queryDelay)

		results, err := explorer.Explore(ctx, gateway.SearchOptions{
			Page:    page,
			PerPage: perPage,
			Sort:    sortBy,
			Order:   order,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to search repositories: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Found %d repositories\n", len(results.Repositories))

		if err := storage.SaveResultSet(output, results); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to save results: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Results saved to %s\n", output)

		if analyze {
			report := usecase.Analyze(results)
			reportPath := storage.AnalysisPath(output)
			if err := storage.SaveReport(reportPath, report); err != nil {
				fmt.Fprintf(os.Stderr, "Failed to save analysis: %v\n", err)
				os.Exit(1)
			}
			fmt.Printf("Analysis saved to %s\n", reportPath)
			printSummary(os.Stdout, report)
		}
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().Int("page", 1, "Page number to fetch from each query")
	searchCmd.Flags().Int("per-page", 30, "Results per page for each query")
	searchCmd.Flags().String("output", "", "Output JSON filename (default \"llm_literature_repos.json\")")
	searchCmd.Flags().Bool("analyze", false, "Compute and save an analysis report after the search")
	searchCmd.Flags().String("token", "", "GitHub personal access token (falls back to GITHUB_TOKEN)")
	searchCmd.Flags().String("sort", "stars", "Sort criteria (stars, forks, updated)")
	searchCmd.Flags().String("order", "desc", "Sort order (asc, desc)")
	searchCmd.Flags().Duration("query-delay", 2*time.Second, "Pause between consecutive search queries")
	searchCmd.Flags().Bool("wait-on-limit", false, "Sleep through secondary rate limits instead of failing")
}
