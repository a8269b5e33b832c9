package usecase

import (
	"sort"

	"github.com/montanaflynn/stats"

	"github.com/henrygabriels/llm-literature-explorer/internal/domain"
)

// unknownLanguage is the bucket for repositories whose primary language the
// provider did not report.
const unknownLanguage = "unknown"

// starBuckets are the fixed histogram ranges for star counts, low to high.
// A negative max marks the unbounded top range.
var starBuckets = []struct {
	label string
	max   int
}{
	{"0-10", 10},
	{"11-50", 50},
	{"51-100", 100},
	{"101-500", 500},
	{"501-1000", 1000},
	{"1001+", -1},
}

// Analyze computes the aggregate report for one result set. It is a pure
// fold over the records: nothing is mutated and no I/O happens. An empty
// set yields a report with empty mappings and a nil star summary.
func Analyze(rs *domain.ResultSet) *domain.AnalysisReport {
	languages := make(map[string]int)
	topics := make(map[string]int)
	months := make(map[string]int)
	bucketCounts := make([]int, len(starBuckets))
	starValues := make(stats.Float64Data, 0, len(rs.Repositories))

	for _, repo := range rs.Repositories {
		language := repo.Language
		if language == "" {
			language = unknownLanguage
		}
		languages[language]++

		for _, topic := range repo.Topics {
			topics[topic]++
		}

		months[repo.CreatedAt.UTC().Format("2006-01")]++

		bucketCounts[bucketIndex(repo.StargazersCount)]++
		starValues = append(starValues, float64(repo.StargazersCount))
	}

	report := &domain.AnalysisReport{
		TotalCount:  len(rs.Repositories),
		Languages:   sortedByCount(languages),
		Topics:      sortedByCount(topics),
		Timeline:    sortedByName(months),
		StarBuckets: make([]domain.NameCount, len(starBuckets)),
	}
	for i, bucket := range starBuckets {
		report.StarBuckets[i] = domain.NameCount{Name: bucket.label, Count: bucketCounts[i]}
	}

	if len(starValues) > 0 {
		// The stats calls only fail on empty input, which is excluded here.
		minStars, _ := starValues.Min()
		maxStars, _ := starValues.Max()
		meanStars, _ := starValues.Mean()
		medianStars, _ := starValues.Median()
		report.Stars = &domain.StarSummary{
			Min:    minStars,
			Max:    maxStars,
			Mean:   meanStars,
			Median: medianStars,
		}
	}

	return report
}

// StarMedian returns the median star count of the set. Unlike Analyze it is
// undefined for an empty set and surfaces stats.ErrEmptyInput in that case.
func StarMedian(rs *domain.ResultSet) (float64, error) {
	values := make(stats.Float64Data, 0, len(rs.Repositories))
	for _, repo := range rs.Repositories {
		values = append(values, float64(repo.StargazersCount))
	}
	return values.Median()
}

func bucketIndex(starCount int) int {
	for i, bucket := range starBuckets {
		if bucket.max >= 0 && starCount <= bucket.max {
			return i
		}
	}
	return len(starBuckets) - 1
}

// sortedByCount orders descending by count, ties ascending by name.
func sortedByCount(counts map[string]int) []domain.NameCount {
	out := make([]domain.NameCount, 0, len(counts))
	for name, count := range counts {
		out = append(out, domain.NameCount{Name: name, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// sortedByName orders ascending by name, which for year-month bucket names
// is chronological order.
func sortedByName(counts map[string]int) []domain.NameCount {
	out := make([]domain.NameCount, 0, len(counts))
	for name, count := range counts {
		out = append(out, domain.NameCount{Name: name, Count: count})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
