package usecase

import (
	"context"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/devinvenable/github-stats/internal/domain"
	"github.com/devinvenable/github-stats/internal/gateway"
)

// BatchOutcome is the result of one orchestrated fetch run.
type BatchOutcome struct {
	Records map[string]*domain.EntityRecord
	// Succeeded reports whether at least one user resolved a profile.
	Succeeded bool
}

// Orchestrator fetches a batch of users in three barrier-synchronized
// phases: profiles, then repositories, then events. Each phase fans out
// over all users concurrently and the next phase starts only after every
// fetch of the current phase has settled. A user whose profile fetch fails
// is excluded from later phases; repository and event failures are recorded
// on the user's record but leave it otherwise usable.
type Orchestrator struct {
	fetcher gateway.Fetcher
	logger  *logrus.Entry
}

// NewOrchestrator creates a new Orchestrator instance.
func NewOrchestrator(fetcher gateway.Fetcher, logger *logrus.Logger) *Orchestrator {
	return &Orchestrator{
		fetcher: fetcher,
		logger:  logger.WithField("component", "orchestrator"),
	}
}

// Run resolves every login and returns a record per login. Failures are
// recorded, never returned: a slow or failing user delays its phase barrier
// at most, and cannot abort unrelated users.
func (o *Orchestrator) Run(ctx context.Context, logins []string) *BatchOutcome {
	records := make(map[string]*domain.EntityRecord, len(logins))
	for _, login := range logins {
		records[login] = &domain.EntityRecord{}
	}

	o.logger.WithField("users", len(logins)).Debug("profile phase")
	fanOut(logins, func(login string) {
		profile, err := o.fetcher.FetchProfile(ctx, login)
		if err != nil {
			records[login].Err = err.Error()
			o.logger.WithField("user", login).WithError(err).Debug("profile fetch failed")
			return
		}
		records[login].Profile = profile
	})

	survivors := make([]string, 0, len(logins))
	for _, login := range logins {
		if !records[login].Failed() {
			survivors = append(survivors, login)
		}
	}

	o.logger.WithField("users", len(survivors)).Debug("repository phase")
	fanOut(survivors, func(login string) {
		repos, err := o.fetcher.FetchRepositories(ctx, login)
		if err != nil {
			records[login].ReposErr = err.Error()
			o.logger.WithField("user", login).WithError(err).Debug("repository fetch failed")
			return
		}
		records[login].Repositories = repos
	})

	o.logger.WithField("users", len(survivors)).Debug("event phase")
	fanOut(survivors, func(login string) {
		events, err := o.fetcher.FetchEvents(ctx, login)
		if err != nil {
			records[login].EventsErr = err.Error()
			o.logger.WithField("user", login).WithError(err).Debug("event fetch failed")
			return
		}
		records[login].Events = events
	})

	return &BatchOutcome{
		Records:   records,
		Succeeded: len(survivors) > 0,
	}
}

// fanOut runs fn for every login concurrently and returns once all calls
// have settled. Records are pre-allocated per login, so each goroutine
// writes a disjoint map entry. There is deliberately no shared context
// cancellation: one user's failure must not cancel its siblings, and an
// issued batch always runs to completion.
func fanOut(logins []string, fn func(login string)) {
	var eg errgroup.Group
	for _, login := range logins {
		login := login
		eg.Go(func() error {
			fn(login)
			return nil
		})
	}
	_ = eg.Wait()
}
