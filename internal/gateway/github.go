// Package gateway provides a gateway to the GitHub repository search API,
// abstracting away the underlying REST client.
package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/google/go-github/v62/github"
	"golang.org/x/oauth2"

	"github.com/gofri/go-github-ratelimit/github_ratelimit"

	"github.com/henrygabriels/llm-literature-explorer/internal/domain"
)

// SearchOptions select one page of a repository search.
type SearchOptions struct {
	Page    int
	PerPage int
	Sort    string
	Order   string
}

// SearchResult is one page of normalized hits plus the total count the
// provider reported for the query.
type SearchResult struct {
	Repositories []domain.Repository
	TotalCount   int
	Skipped      int
}

// Searcher defines the behavior of a gateway for searching repositories.
type Searcher interface {
	SearchRepositories(ctx context.Context, query string, opts SearchOptions) (*SearchResult, error)
}

// GitHubGateway is the concrete implementation of the Searcher interface.
type GitHubGateway struct {
	client *github.Client
	logger *log.Logger
}

// NewGitHubGateway is a constructor that creates a new instance of GitHubGateway.
// An empty token issues unauthenticated requests under the public rate limit.
// When waitOnLimit is set, the transport sleeps through secondary rate limits
// instead of surfacing them.
func NewGitHubGateway(token string, waitOnLimit bool, logger *log.Logger) (*GitHubGateway, error) {
	var base http.RoundTripper
	if waitOnLimit {
		waiter, err := github_ratelimit.NewRateLimitWaiter(nil, github_ratelimit.WithSingleSleepLimit(1*time.Hour, nil))
		if err != nil {
			return nil, fmt.Errorf("failed to create rate limit waiter: %w", err)
		}
		base = waiter
	}

	httpClient := &http.Client{Transport: base}
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		httpClient.Transport = &oauth2.Transport{
			Base:   base,
			Source: ts,
		}
	}

	return &GitHubGateway{
		client: github.NewClient(httpClient),
		logger: logger,
	}, nil
}

// SearchRepositories fetches exactly one page of search hits for the query
// and normalizes them. It does not paginate on its own and performs no
// retries; errors map onto the RequestError/RateLimitError/ParseError
// taxonomy and propagate to the caller.
func (g *GitHubGateway) SearchRepositories(ctx context.Context, query string, opts SearchOptions) (*SearchResult, error) {
	searchOpts := &github.SearchOptions{
		Sort:  opts.Sort,
		Order: opts.Order,
		ListOptions: github.ListOptions{
			Page:    opts.Page,
			PerPage: opts.PerPage,
		},
	}

	g.logger.Printf("Searching repositories: %q (page %d, per_page %d)", query, opts.Page, opts.PerPage)
	res, _, err := g.client.Search.Repositories(ctx, query, searchOpts)
	if err != nil {
		return nil, mapSearchError(err)
	}

	result := &SearchResult{
		Repositories: []domain.Repository{},
		TotalCount:   res.GetTotal(),
	}
	for _, hit := range res.Repositories {
		repo, ok := normalizeRepository(hit)
		if !ok {
			result.Skipped++
			continue
		}
		result.Repositories = append(result.Repositories, repo)
	}
	if result.Skipped > 0 {
		g.logger.Printf("  Skipped %d hits without a repository id", result.Skipped)
	}
	return result, nil
}

// normalizeRepository maps a raw search hit field-by-field onto a domain
// record. Missing optional fields stay at their zero values; a hit without
// an id cannot be deduplicated and is dropped.
func normalizeRepository(r *github.Repository) (domain.Repository, bool) {
	if r == nil || r.ID == nil {
		return domain.Repository{}, false
	}
	return domain.Repository{
		ID:              r.GetID(),
		Name:            r.GetName(),
		FullName:        r.GetFullName(),
		URL:             r.GetHTMLURL(),
		Description:     r.GetDescription(),
		CreatedAt:       r.GetCreatedAt().Time,
		UpdatedAt:       r.GetUpdatedAt().Time,
		Language:        r.GetLanguage(),
		StargazersCount: r.GetStargazersCount(),
		ForksCount:      r.GetForksCount(),
		Topics:          r.Topics,
	}, true
}

// mapSearchError translates go-github errors into the gateway taxonomy.
func mapSearchError(err error) error {
	var rateErr *github.RateLimitError
	if errors.As(err, &rateErr) {
		return &RateLimitError{ResetAt: rateErr.Rate.Reset.Time}
	}

	var abuseErr *github.AbuseRateLimitError
	if errors.As(err, &abuseErr) {
		reset := time.Now()
		if abuseErr.RetryAfter != nil {
			reset = reset.Add(*abuseErr.RetryAfter)
		}
		return &RateLimitError{ResetAt: reset}
	}

	var respErr *github.ErrorResponse
	if errors.As(err, &respErr) {
		status := 0
		if respErr.Response != nil {
			status = respErr.Response.StatusCode
		}
		// go-github only types the 403 quota variant as RateLimitError; a
		// bare 429 comes through as a generic ErrorResponse.
		if status == http.StatusTooManyRequests {
			return &RateLimitError{ResetAt: rateResetTime(respErr.Response)}
		}
		return &RequestError{Status: status, Message: respErr.Message}
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) || errors.Is(err, io.ErrUnexpectedEOF) {
		return &ParseError{Err: err}
	}

	return fmt.Errorf("failed to search repositories: %w", err)
}

// rateResetTime reads the quota reset instant from the X-RateLimit-Reset
// header, falling back to now when the header is absent or unparseable.
func rateResetTime(resp *http.Response) time.Time {
	if resp != nil {
		if raw := resp.Header.Get("X-RateLimit-Reset"); raw != "" {
			if unix, err := strconv.ParseInt(raw, 10, 64); err == nil {
				return time.Unix(unix, 0)
			}
		}
	}
	return time.Now()
}
