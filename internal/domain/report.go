package domain

// NameCount pairs a bucket name with its occurrence count. Reports use
// slices of NameCount instead of maps so the output order is stable.
type NameCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// StarSummary holds descriptive statistics over stargazer counts.
type StarSummary struct {
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
}

// AnalysisReport is the derived summary of one ResultSet. Stars is nil when
// the set is empty, so "no data" never reads as a zero.
type AnalysisReport struct {
	TotalCount  int          `json:"total_count"`
	Languages   []NameCount  `json:"languages"`
	Topics      []NameCount  `json:"topics"`
	Timeline    []NameCount  `json:"timeline"`
	Stars       *StarSummary `json:"stars,omitempty"`
	StarBuckets []NameCount  `json:"stars_distribution"`
}
