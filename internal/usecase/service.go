package usecase

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/devinvenable/github-stats/internal/domain"
	"github.com/devinvenable/github-stats/internal/gateway"
)

// Session owns the per-process cache and runs batch requests against it.
// The cache lives exactly as long as the session; nothing is persisted.
type Session struct {
	fetcher      gateway.Fetcher
	cache        *EntityCache
	budget       *RateBudget
	orchestrator *Orchestrator
	logger       *logrus.Entry
}

// NewSession creates a Session with an empty cache.
func NewSession(fetcher gateway.Fetcher, logger *logrus.Logger) *Session {
	return &Session{
		fetcher:      fetcher,
		cache:        NewEntityCache(),
		budget:       NewRateBudget(fetcher, logger),
		orchestrator: NewOrchestrator(fetcher, logger),
		logger:       logger.WithField("component", "session"),
	}
}

// Cache exposes the session cache for post-hoc lookups such as date-range
// projection over a single user's stored series.
func (s *Session) Cache() *EntityCache { return s.cache }

// RunBatch resolves a batch of logins and aggregates the outcome. It never
// returns an error: per-user failures live in Records, the advisory rate
// warning is attached to the aggregate, and Failed is set only when not a
// single user resolved. Already-cached logins are not re-fetched.
func (s *Session) RunBatch(ctx context.Context, logins []string) *domain.BatchResult {
	var cached, uncached []string
	seen := make(map[string]struct{}, len(logins))
	for _, login := range logins {
		if _, dup := seen[login]; dup {
			continue
		}
		seen[login] = struct{}{}
		if _, ok := s.cache.Get(login); ok {
			cached = append(cached, login)
		} else {
			uncached = append(uncached, login)
		}
	}
	s.logger.WithFields(logrus.Fields{"cached": len(cached), "uncached": len(uncached)}).Debug("starting batch")

	budget := s.budget.Check(ctx, len(uncached))
	if !budget.Sufficient {
		s.logger.Warn(budget.Warning)
	}

	outcome := s.orchestrator.Run(ctx, uncached)

	// Single writer, after all three phases have settled. Only users with a
	// resolved profile are cached; repository or event failures do not block
	// the write.
	for login, rec := range outcome.Records {
		if rec.Profile == nil {
			continue
		}
		s.cache.Put(login, rec.Profile, rec.Repositories, DeriveCommitSeries(rec.Events))
	}

	combined := s.cache.Merge(cached, outcome.Records)
	aggregate := Aggregate(logins, combined, budget.Warning)

	result := &domain.BatchResult{
		Logins:    logins,
		Records:   combined,
		Aggregate: aggregate,
		Colors:    Colors(len(logins)),
	}

	if aggregate.TotalEntities == 0 && len(logins) > 0 {
		result.Failed = true
		if !budget.Sufficient {
			result.FailureKind = domain.FailureRateLimited
			result.Message = "no users could be fetched: API rate budget exhausted"
		} else {
			result.FailureKind = domain.FailureAllFetchesFailed
			result.Message = "no users could be fetched"
		}
	}
	return result
}
