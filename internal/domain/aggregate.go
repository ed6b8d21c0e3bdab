package domain

// ComparisonPoint is one user's value for a single compared metric.
type ComparisonPoint struct {
	Login string `json:"login"`
	Value int    `json:"value"`
}

// Comparisons holds the per-metric comparison arrays. Every array has
// exactly one entry per requested login, in request order; users whose
// fetch failed occupy their slot with a zero value.
type Comparisons struct {
	Repositories []ComparisonPoint `json:"repositories"`
	Followers    []ComparisonPoint `json:"followers"`
	Stars        []ComparisonPoint `json:"stars"`
	Forks        []ComparisonPoint `json:"forks"`
}

// SeriesRow is one user's commit counts aligned to a shared date axis.
type SeriesRow struct {
	Login  string `json:"login"`
	Values []int  `json:"values"`
}

// CommitSeries is the unioned commit activity of a batch: Dates is the
// sorted union of all push-event days, and every row's Values slice has
// the same length as Dates, zero-filled where a user had no activity.
type CommitSeries struct {
	Dates  []string    `json:"dates"`
	Series []SeriesRow `json:"series"`
}

// Summary carries derived statistics over the per-user star totals.
type Summary struct {
	MeanStars   float64 `json:"mean_stars"`
	MedianStars float64 `json:"median_stars"`
	MaxStars    float64 `json:"max_stars"`
}

// AggregateResult is the analytics object consumed by the presentation
// layer. It is always fully shaped: every array is aligned and present
// even when the originating batch failed entirely.
type AggregateResult struct {
	TotalEntities        int            `json:"total_entities"`
	TotalRepositories    int            `json:"total_repositories"`
	TotalStars           int            `json:"total_stars"`
	TotalForks           int            `json:"total_forks"`
	TotalFollowers       int            `json:"total_followers"`
	LanguageDistribution map[string]int `json:"language_distribution"`
	Comparisons          Comparisons    `json:"comparisons"`
	CommitSeries         CommitSeries   `json:"commit_series"`
	Summary              Summary        `json:"summary"`
	RateLimitWarning     string         `json:"rate_limit_warning,omitempty"`
}

// FailureKind classifies why a whole batch produced no usable data.
type FailureKind string

const (
	// FailureRateLimited marks a batch where nothing succeeded and the
	// pre-flight budget check had already reported an insufficient quota.
	FailureRateLimited FailureKind = "rate_limited"
	// FailureAllFetchesFailed marks a batch where every user failed for
	// reasons other than quota exhaustion.
	FailureAllFetchesFailed FailureKind = "all_fetches_failed"
)

// BatchResult is the complete outcome of one batch request. Failure is
// encoded here rather than returned as an error: per-user problems live in
// Records, and Failed is set only when no user resolved at all.
type BatchResult struct {
	Logins      []string                 `json:"logins"`
	Records     map[string]*EntityRecord `json:"records"`
	Aggregate   AggregateResult          `json:"aggregate"`
	Colors      []string                 `json:"colors"`
	Failed      bool                     `json:"failed"`
	FailureKind FailureKind              `json:"failure_kind,omitempty"`
	Message     string                   `json:"message,omitempty"`
}
