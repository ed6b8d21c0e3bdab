package usecase

import (
	"time"

	"github.com/devinvenable/github-stats/internal/domain"
)

// FilterSeriesByDate restricts a commit series to the calendar days between
// start and end, inclusive on both day boundaries (start at 00:00:00.000,
// end at 23:59:59.999 local). An inverted range yields empty output, never
// a swap, and no input ever produces an error.
func FilterSeriesByDate(series domain.DateSeries, start, end time.Time) domain.DateSeries {
	from := startOfDay(start)
	to := endOfDay(end)

	out := domain.DateSeries{Dates: []string{}, Values: []int{}}
	for i, date := range series.Dates {
		if i >= len(series.Values) {
			break
		}
		day, err := time.ParseInLocation(domain.DateLayout, date, time.Local)
		if err != nil {
			continue
		}
		if day.Before(from) || day.After(to) {
			continue
		}
		out.Dates = append(out.Dates, date)
		out.Values = append(out.Values, series.Values[i])
	}
	return out
}

// FilterLanguagesByDate recomputes a language histogram from the
// repositories last updated within the given day range. This filters on a
// repository attribute, not on event dates: a user's push activity has no
// bearing on which repositories survive.
func FilterLanguagesByDate(repos []domain.Repository, start, end time.Time) map[string]int {
	from := startOfDay(start)
	to := endOfDay(end)

	filtered := make([]domain.Repository, 0, len(repos))
	for _, repo := range repos {
		if repo.UpdatedAt.Before(from) || repo.UpdatedAt.After(to) {
			continue
		}
		filtered = append(filtered, repo)
	}
	return LanguageHistogram(filtered)
}

// LanguageHistogram counts repositories per declared primary language,
// one increment per repository, no weighting.
func LanguageHistogram(repos []domain.Repository) map[string]int {
	histogram := make(map[string]int)
	for _, repo := range repos {
		if repo.Language != "" {
			histogram[repo.Language]++
		}
	}
	return histogram
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(999*time.Millisecond), t.Location())
}
