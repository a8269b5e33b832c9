package usecase

import (
	"testing"
	"time"

	"github.com/montanaflynn/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/henrygabriels/llm-literature-explorer/internal/domain"
)

func resultSet(repos ...domain.Repository) *domain.ResultSet {
	return &domain.ResultSet{Repositories: repos}
}

func TestAnalyze_LanguagesAndStars(t *testing.T) {
	rs := resultSet(
		domain.Repository{ID: 1, Language: "Python", StargazersCount: 10},
		domain.Repository{ID: 2, Language: "Python", StargazersCount: 20},
		domain.Repository{ID: 3, StargazersCount: 30},
	)

	report := Analyze(rs)

	assert.Equal(t, 3, report.TotalCount)
	assert.Equal(t, []domain.NameCount{
		{Name: "Python", Count: 2},
		{Name: "unknown", Count: 1},
	}, report.Languages)

	require.NotNil(t, report.Stars)
	assert.Equal(t, 10.0, report.Stars.Min)
	assert.Equal(t, 30.0, report.Stars.Max)
	assert.Equal(t, 20.0, report.Stars.Mean)
	assert.Equal(t, 20.0, report.Stars.Median)
}

func TestAnalyze_TopicFrequency(t *testing.T) {
	rs := resultSet(
		domain.Repository{ID: 1, Topics: []string{"nlp"}},
		domain.Repository{ID: 2, Topics: []string{"nlp", "gpt"}},
	)

	report := Analyze(rs)

	// Descending by count, ties broken lexicographically.
	assert.Equal(t, []domain.NameCount{
		{Name: "nlp", Count: 2},
		{Name: "gpt", Count: 1},
	}, report.Topics)

	// Counts sum to the total number of topic occurrences.
	total := 0
	for _, topic := range report.Topics {
		total += topic.Count
	}
	assert.Equal(t, 3, total)
}

func TestAnalyze_TopicTiesAreLexicographic(t *testing.T) {
	rs := resultSet(
		domain.Repository{ID: 1, Topics: []string{"zeta", "alpha"}},
	)

	report := Analyze(rs)

	assert.Equal(t, []domain.NameCount{
		{Name: "alpha", Count: 1},
		{Name: "zeta", Count: 1},
	}, report.Topics)
}

func TestAnalyze_Timeline(t *testing.T) {
	rs := resultSet(
		domain.Repository{ID: 1, CreatedAt: time.Date(2023, 3, 2, 10, 0, 0, 0, time.UTC)},
		domain.Repository{ID: 2, CreatedAt: time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC)},
		domain.Repository{ID: 3, CreatedAt: time.Date(2023, 1, 20, 23, 59, 0, 0, time.UTC)},
	)

	report := Analyze(rs)

	assert.Equal(t, []domain.NameCount{
		{Name: "2023-01", Count: 2},
		{Name: "2023-03", Count: 1},
	}, report.Timeline)
}

func TestAnalyze_StarBuckets(t *testing.T) {
	rs := resultSet(
		domain.Repository{ID: 1, StargazersCount: 0},
		domain.Repository{ID: 2, StargazersCount: 10},
		domain.Repository{ID: 3, StargazersCount: 11},
		domain.Repository{ID: 4, StargazersCount: 100},
		domain.Repository{ID: 5, StargazersCount: 501},
		domain.Repository{ID: 6, StargazersCount: 1001},
	)

	report := Analyze(rs)

	assert.Equal(t, []domain.NameCount{
		{Name: "0-10", Count: 2},
		{Name: "11-50", Count: 1},
		{Name: "51-100", Count: 1},
		{Name: "101-500", Count: 0},
		{Name: "501-1000", Count: 1},
		{Name: "1001+", Count: 1},
	}, report.StarBuckets)
}

func TestAnalyze_EmptySet(t *testing.T) {
	report := Analyze(&domain.ResultSet{})

	assert.Equal(t, 0, report.TotalCount)
	assert.Empty(t, report.Languages)
	assert.Empty(t, report.Topics)
	assert.Empty(t, report.Timeline)
	assert.Nil(t, report.Stars, "empty set must report no data, not zeros")
	for _, bucket := range report.StarBuckets {
		assert.Equal(t, 0, bucket.Count)
	}
}

func TestStarMedian(t *testing.T) {
	t.Run("odd count", func(t *testing.T) {
		rs := resultSet(
			domain.Repository{ID: 1, StargazersCount: 10},
			domain.Repository{ID: 2, StargazersCount: 20},
			domain.Repository{ID: 3, StargazersCount: 30},
		)
		median, err := StarMedian(rs)
		require.NoError(t, err)
		assert.Equal(t, 20.0, median)
	})

	t.Run("undefined on empty set", func(t *testing.T) {
		_, err := StarMedian(&domain.ResultSet{})
		require.Error(t, err)
		assert.ErrorIs(t, err, stats.ErrEmptyInput)
	})
}
