// Package domain contains the core data structures shared by the searcher
// and the analyzer.
package domain

import "time"

// Repository is one normalized repository search hit. Records are immutable
// once produced; the analyzer only folds over them.
type Repository struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	FullName        string    `json:"full_name"`
	URL             string    `json:"url"`
	Description     string    `json:"description,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
	Language        string    `json:"language,omitempty"`
	StargazersCount int       `json:"stargazers_count"`
	ForksCount      int       `json:"forks_count"`
	Topics          []string  `json:"topics"`
}

// ResultSet is the ordered sequence of repositories produced by one search
// sweep, plus the provenance needed to tell later runs apart. TotalCount is
// the sum of the totals the provider reported per query, which can exceed
// the number of records when queries overlap or more pages exist.
type ResultSet struct {
	Queries      []string     `json:"queries"`
	Page         int          `json:"page"`
	PerPage      int          `json:"per_page"`
	RetrievedAt  time.Time    `json:"retrieved_at"`
	TotalCount   int          `json:"total_count"`
	Repositories []Repository `json:"repositories"`
}
