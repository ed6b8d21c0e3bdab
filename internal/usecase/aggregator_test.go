package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devinvenable/github-stats/internal/domain"
)

func day(value string) time.Time {
	t, err := time.ParseInLocation("2006-01-02 15:04", value, time.Local)
	if err != nil {
		panic(err)
	}
	return t
}

func TestAggregate_PartialFailure(t *testing.T) {
	// "a" succeeds fully, "b" failed its profile fetch. The failed user must
	// still occupy its slot in every comparison array with zero values.
	records := map[string]*domain.EntityRecord{
		"a": {
			Profile:      &domain.Profile{Login: "a", PublicRepos: 1, Followers: 4},
			Repositories: []domain.Repository{{Name: "x", Language: "Go", Stars: 10, Forks: 2}},
		},
		"b": {Err: "user not found: b"},
	}

	result := Aggregate([]string{"a", "b"}, records, "")

	assert.Equal(t, 1, result.TotalEntities)
	assert.Equal(t, 10, result.TotalStars)
	assert.Equal(t, 2, result.TotalForks)
	assert.Equal(t, 4, result.TotalFollowers)
	assert.Equal(t, map[string]int{"Go": 1}, result.LanguageDistribution)
	assert.Equal(t, []domain.ComparisonPoint{{Login: "a", Value: 10}, {Login: "b", Value: 0}}, result.Comparisons.Stars)
	assert.Equal(t, []domain.ComparisonPoint{{Login: "a", Value: 1}, {Login: "b", Value: 0}}, result.Comparisons.Repositories)
	assert.Equal(t, []domain.ComparisonPoint{{Login: "a", Value: 4}, {Login: "b", Value: 0}}, result.Comparisons.Followers)
	assert.Equal(t, []domain.ComparisonPoint{{Login: "a", Value: 2}, {Login: "b", Value: 0}}, result.Comparisons.Forks)
}

func TestAggregate_ComparisonArraysMatchRequestOrder(t *testing.T) {
	logins := []string{"c", "a", "b"}
	records := map[string]*domain.EntityRecord{
		"a": {Profile: &domain.Profile{Login: "a"}},
		"b": {Err: "down"},
		"c": {Profile: &domain.Profile{Login: "c"}},
	}

	result := Aggregate(logins, records, "")

	for _, comparison := range [][]domain.ComparisonPoint{
		result.Comparisons.Repositories,
		result.Comparisons.Followers,
		result.Comparisons.Stars,
		result.Comparisons.Forks,
	} {
		require.Len(t, comparison, len(logins))
		for i, login := range logins {
			assert.Equal(t, login, comparison[i].Login)
		}
	}
}

func TestAggregate_CommitSeries(t *testing.T) {
	records := map[string]*domain.EntityRecord{
		"a": {
			Profile: &domain.Profile{Login: "a"},
			Events: []domain.ActivityEvent{
				{Kind: domain.EventKindPush, CreatedAt: day("2024-03-01 10:00"), CommitCount: 2},
				{Kind: domain.EventKindPush, CreatedAt: day("2024-03-01 18:30"), CommitCount: 1},
				{Kind: domain.EventKindPush, CreatedAt: day("2024-03-03 09:00"), CommitCount: 4},
				{Kind: "watch", CreatedAt: day("2024-03-02 12:00"), CommitCount: 99},
			},
		},
		"b": {
			Profile: &domain.Profile{Login: "b"},
			Events: []domain.ActivityEvent{
				{Kind: domain.EventKindPush, CreatedAt: day("2024-03-02 08:00"), CommitCount: 5},
			},
		},
		"c": {Profile: &domain.Profile{Login: "c"}},
	}

	result := Aggregate([]string{"a", "b", "c"}, records, "")

	series := result.CommitSeries
	assert.Equal(t, []string{"2024-03-01", "2024-03-02", "2024-03-03"}, series.Dates)
	require.Len(t, series.Series, 3)
	assert.Equal(t, domain.SeriesRow{Login: "a", Values: []int{3, 0, 4}}, series.Series[0])
	assert.Equal(t, domain.SeriesRow{Login: "b", Values: []int{0, 5, 0}}, series.Series[1])
	// A user without any push activity still gets a full-length, all-zero row.
	assert.Equal(t, domain.SeriesRow{Login: "c", Values: []int{0, 0, 0}}, series.Series[2])
}

func TestAggregate_DegenerateDateAxis(t *testing.T) {
	records := map[string]*domain.EntityRecord{
		"a": {Profile: &domain.Profile{Login: "a"}},
	}

	result := Aggregate([]string{"a"}, records, "")

	today := time.Now().Format(domain.DateLayout)
	assert.Equal(t, []string{today}, result.CommitSeries.Dates)
	require.Len(t, result.CommitSeries.Series, 1)
	assert.Equal(t, []int{0}, result.CommitSeries.Series[0].Values)
}

func TestAggregate_IsPure(t *testing.T) {
	records := map[string]*domain.EntityRecord{
		"a": {
			Profile:      &domain.Profile{Login: "a", PublicRepos: 3, Followers: 1},
			Repositories: []domain.Repository{{Name: "x", Language: "Rust", Stars: 7}},
			Events: []domain.ActivityEvent{
				{Kind: domain.EventKindPush, CreatedAt: day("2024-01-15 12:00"), CommitCount: 2},
			},
		},
		"b": {Err: "down"},
	}
	logins := []string{"a", "b"}

	first := Aggregate(logins, records, "warn")
	second := Aggregate(logins, records, "warn")

	assert.Equal(t, first, second)
}

func TestAggregate_RateLimitWarning(t *testing.T) {
	result := Aggregate([]string{"a"}, map[string]*domain.EntityRecord{"a": {Err: "rate limited"}}, "budget too low")
	assert.Equal(t, "budget too low", result.RateLimitWarning)
	assert.Zero(t, result.TotalEntities)
}

func TestAggregate_Summary(t *testing.T) {
	records := map[string]*domain.EntityRecord{
		"a": {
			Profile:      &domain.Profile{Login: "a"},
			Repositories: []domain.Repository{{Stars: 10}, {Stars: 2}},
		},
		"b": {
			Profile:      &domain.Profile{Login: "b"},
			Repositories: []domain.Repository{{Stars: 4}},
		},
	}

	result := Aggregate([]string{"a", "b"}, records, "")

	assert.InDelta(t, 8.0, result.Summary.MeanStars, 1e-9)
	assert.InDelta(t, 8.0, result.Summary.MedianStars, 1e-9)
	assert.InDelta(t, 12.0, result.Summary.MaxStars, 1e-9)
}

func TestDeriveCommitSeries(t *testing.T) {
	events := []domain.ActivityEvent{
		{Kind: domain.EventKindPush, CreatedAt: day("2024-02-02 10:00"), CommitCount: 1},
		{Kind: domain.EventKindPush, CreatedAt: day("2024-02-01 10:00"), CommitCount: 2},
		{Kind: domain.EventKindPush, CreatedAt: day("2024-02-02 20:00"), CommitCount: 3},
		{Kind: "fork", CreatedAt: day("2024-02-03 10:00"), CommitCount: 9},
	}

	series := DeriveCommitSeries(events)

	assert.Equal(t, []string{"2024-02-01", "2024-02-02"}, series.Dates)
	assert.Equal(t, []int{2, 4}, series.Values)
}
