package usecase

import (
	"sort"
	"time"

	"github.com/montanaflynn/stats"

	"github.com/devinvenable/github-stats/internal/domain"
)

// Aggregate turns per-user records into the analytics object consumed by
// the presentation layer. It is pure and deterministic: logins fixes the
// iteration order, so every comparison array has exactly one entry per
// requested login, in request order, with failed users occupying their
// slot at zero. rateWarning is attached verbatim when non-empty.
func Aggregate(logins []string, records map[string]*domain.EntityRecord, rateWarning string) domain.AggregateResult {
	result := domain.AggregateResult{
		LanguageDistribution: make(map[string]int),
		Comparisons: domain.Comparisons{
			Repositories: make([]domain.ComparisonPoint, 0, len(logins)),
			Followers:    make([]domain.ComparisonPoint, 0, len(logins)),
			Stars:        make([]domain.ComparisonPoint, 0, len(logins)),
			Forks:        make([]domain.ComparisonPoint, 0, len(logins)),
		},
		RateLimitWarning: rateWarning,
	}

	starTotals := make([]float64, 0, len(logins))
	perUserBuckets := make(map[string]map[string]int, len(logins))
	dateSet := make(map[string]struct{})

	for _, login := range logins {
		var repoCount, followers, starSum, forkSum int

		rec := records[login]
		if rec != nil && rec.Profile != nil {
			result.TotalEntities++
			repoCount = rec.Profile.PublicRepos
			followers = rec.Profile.Followers
			result.TotalRepositories += repoCount
			result.TotalFollowers += followers

			for _, repo := range rec.Repositories {
				starSum += repo.Stars
				forkSum += repo.Forks
				if repo.Language != "" {
					result.LanguageDistribution[repo.Language]++
				}
			}
			result.TotalStars += starSum
			result.TotalForks += forkSum
			starTotals = append(starTotals, float64(starSum))

			buckets := bucketCommits(rec.Events)
			perUserBuckets[login] = buckets
			for date := range buckets {
				dateSet[date] = struct{}{}
			}
		}

		result.Comparisons.Repositories = append(result.Comparisons.Repositories, domain.ComparisonPoint{Login: login, Value: repoCount})
		result.Comparisons.Followers = append(result.Comparisons.Followers, domain.ComparisonPoint{Login: login, Value: followers})
		result.Comparisons.Stars = append(result.Comparisons.Stars, domain.ComparisonPoint{Login: login, Value: starSum})
		result.Comparisons.Forks = append(result.Comparisons.Forks, domain.ComparisonPoint{Login: login, Value: forkSum})
	}

	result.CommitSeries = buildCommitSeries(logins, perUserBuckets, dateSet)
	result.Summary = summarize(starTotals)

	return result
}

// bucketCommits accumulates push-event commit counts per calendar day.
func bucketCommits(events []domain.ActivityEvent) map[string]int {
	buckets := make(map[string]int)
	for _, ev := range events {
		if ev.Kind != domain.EventKindPush {
			continue
		}
		buckets[ev.CreatedAt.Local().Format(domain.DateLayout)] += ev.CommitCount
	}
	return buckets
}

// DeriveCommitSeries reduces a user's events to a sorted per-day commit
// series, the shape retained by the cache in place of raw events.
func DeriveCommitSeries(events []domain.ActivityEvent) domain.DateSeries {
	buckets := bucketCommits(events)
	dates := make([]string, 0, len(buckets))
	for date := range buckets {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	values := make([]int, len(dates))
	for i, date := range dates {
		values[i] = buckets[date]
	}
	return domain.DateSeries{Dates: dates, Values: values}
}

// buildCommitSeries unions all users' push days into one sorted date axis
// and aligns a zero-filled row per login to it. With no push activity at
// all, the axis degenerates to a single "today" entry so the result stays
// chartable; users without event data still get an all-zero row.
func buildCommitSeries(logins []string, perUserBuckets map[string]map[string]int, dateSet map[string]struct{}) domain.CommitSeries {
	dates := make([]string, 0, len(dateSet))
	for date := range dateSet {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	if len(dates) == 0 {
		dates = []string{time.Now().Format(domain.DateLayout)}
	}

	series := make([]domain.SeriesRow, 0, len(logins))
	for _, login := range logins {
		row := domain.SeriesRow{Login: login, Values: make([]int, len(dates))}
		for i, date := range dates {
			row.Values[i] = perUserBuckets[login][date]
		}
		series = append(series, row)
	}
	return domain.CommitSeries{Dates: dates, Series: series}
}

// summarize computes summary statistics over per-user star totals.
func summarize(starTotals []float64) domain.Summary {
	if len(starTotals) == 0 {
		return domain.Summary{}
	}
	mean, _ := stats.Mean(starTotals)
	median, _ := stats.Median(starTotals)
	max, _ := stats.Max(starTotals)
	return domain.Summary{MeanStars: mean, MedianStars: median, MaxStars: max}
}
