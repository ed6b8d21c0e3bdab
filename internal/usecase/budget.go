// Package usecase contains the business logic of the application.
package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/devinvenable/github-stats/internal/gateway"
)

// callsPerUser is the estimated API cost of resolving one user:
// profile, repository list and event stream.
const callsPerUser = 3

// BudgetStatus is the advisory verdict of a pre-flight rate check.
// Warning is non-empty only when the budget is insufficient.
type BudgetStatus struct {
	Sufficient bool
	Remaining  int
	Limit      int
	ResetAt    time.Time
	Warning    string
}

// RateBudget estimates whether a batch would exceed the remaining API call
// budget. The verdict is advisory: callers attach the warning to their
// result but are never stopped from issuing the batch.
type RateBudget struct {
	fetcher gateway.Fetcher
	logger  *logrus.Entry
}

// NewRateBudget creates a new RateBudget instance.
func NewRateBudget(fetcher gateway.Fetcher, logger *logrus.Logger) *RateBudget {
	return &RateBudget{
		fetcher: fetcher,
		logger:  logger.WithField("component", "budget"),
	}
}

// Check queries the rate status once and compares the remaining budget
// against the estimated batch cost. It fails open: a batch is never blocked
// just because the budget check itself failed.
func (b *RateBudget) Check(ctx context.Context, userCount int) BudgetStatus {
	estimated := userCount * callsPerUser

	status, err := b.fetcher.GetRateStatus(ctx)
	if err != nil {
		b.logger.WithError(err).Warn("rate status query failed, assuming sufficient budget")
		return BudgetStatus{Sufficient: true}
	}

	if status.Remaining < estimated {
		return BudgetStatus{
			Remaining: status.Remaining,
			Limit:     status.Limit,
			ResetAt:   status.ResetAt,
			Warning: fmt.Sprintf("API rate budget too low: %d calls remaining, %d needed; resets at %s",
				status.Remaining, estimated, status.ResetAt.Local().Format(time.RFC1123)),
		}
	}

	return BudgetStatus{
		Sufficient: true,
		Remaining:  status.Remaining,
		Limit:      status.Limit,
		ResetAt:    status.ResetAt,
	}
}
