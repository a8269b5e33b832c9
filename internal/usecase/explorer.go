// Package usecase contains the business logic of the application.
package usecase

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/henrygabriels/llm-literature-explorer/internal/domain"
	"github.com/henrygabriels/llm-literature-explorer/internal/gateway"
)

// topicalQueries are the fixed search phrases covering the intersection of
// language models and literature.
var topicalQueries = []string{
	"language models literature",
	"llm literature analysis",
	"gpt literary analysis",
	"natural language processing literature",
	"computational literary analysis",
	"llm poetry generation",
	"transformer models literature",
	"literary text generation",
	"nlp literary criticism",
	"ai storytelling",
}

// Explorer is the use case for sweeping the repository search API across the
// topical queries and collecting the merged results.
type Explorer struct {
	searcher   gateway.Searcher
	logger     *log.Logger
	queryDelay time.Duration
}

// NewExplorer creates a new Explorer instance. queryDelay is the pause
// inserted between consecutive queries to stay within the search quota.
func NewExplorer(searcher gateway.Searcher, logger *log.Logger, queryDelay time.Duration) *Explorer {
	return &Explorer{
		searcher:   searcher,
		logger:     logger,
		queryDelay: queryDelay,
	}
}

// Explore runs every topical query for the requested page and merges the
// hits into a single ResultSet, dropping duplicates by repository id while
// keeping the first occurrence's position. The first failing query aborts
// the whole sweep so no partial set escapes.
func (e *Explorer) Explore(ctx context.Context, opts gateway.SearchOptions) (*domain.ResultSet, error) {
	e.logger.Println("Usecase: Starting search sweep...")

	rs := &domain.ResultSet{
		Queries:      append([]string(nil), topicalQueries...),
		Page:         opts.Page,
		PerPage:      opts.PerPage,
		RetrievedAt:  time.Now().UTC(),
		Repositories: []domain.Repository{},
	}

	seen := make(map[int64]struct{})
	var skipped int

	for i, query := range topicalQueries {
		if i > 0 && e.queryDelay > 0 {
			if err := sleep(ctx, e.queryDelay); err != nil {
				return nil, err
			}
		}
		e.logger.Printf("[%d/%d] Searching for: %s", i+1, len(topicalQueries), query)

		result, err := e.searcher.SearchRepositories(ctx, query, opts)
		if err != nil {
			return nil, fmt.Errorf("query %q failed: %w", query, err)
		}

		rs.TotalCount += result.TotalCount
		skipped += result.Skipped
		for _, repo := range result.Repositories {
			if _, ok := seen[repo.ID]; ok {
				continue
			}
			seen[repo.ID] = struct{}{}
			rs.Repositories = append(rs.Repositories, repo)
		}
	}

	e.logger.Printf("Usecase: Sweep complete, %d unique repositories (%d hits skipped).", len(rs.Repositories), skipped)
	return rs, nil
}

// sleep waits for d or until the context is cancelled.
func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
