// Package gateway provides a gateway to the GitHub API,
// abstracting away the underlying REST and GraphQL clients.
package gateway

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/go-github/v62/github"
	"github.com/shurcooL/githubv4"
	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"

	"github.com/devinvenable/github-stats/internal/domain"
	"github.com/gofri/go-github-ratelimit/github_ratelimit"
)

// RateStatus is a snapshot of the remaining API call budget.
type RateStatus struct {
	Remaining int
	Limit     int
	ResetAt   time.Time
}

// Fetcher defines the behavior of a gateway for fetching information from GitHub.
// The three resource fetches fail per-user; GetRateStatus reports the shared
// call budget for the authenticated client.
type Fetcher interface {
	FetchProfile(ctx context.Context, login string) (*domain.Profile, error)
	FetchRepositories(ctx context.Context, login string) ([]domain.Repository, error)
	FetchEvents(ctx context.Context, login string) ([]domain.ActivityEvent, error)
	GetRateStatus(ctx context.Context) (*RateStatus, error)
}

// GitHubGateway is the concrete implementation of the Fetcher interface.
type GitHubGateway struct {
	restClient    *github.Client
	graphqlClient *githubv4.Client
	logger        *logrus.Entry
}

// rateLimitQuery fetches the call budget via GraphQL. The query itself does
// not consume REST quota, so the pre-flight check never eats into the budget
// it is measuring.
type rateLimitQuery struct {
	RateLimit struct {
		Limit     githubv4.Int
		Remaining githubv4.Int
		ResetAt   githubv4.DateTime
	}
}

// NewGitHubGateway is a constructor that creates a new instance of GitHubGateway.
// An empty token yields an unauthenticated client (lower quota, same behavior).
// baseURL overrides the API endpoint for GitHub Enterprise; empty means github.com.
func NewGitHubGateway(token, baseURL string, logger *logrus.Logger) (Fetcher, error) {
	rateLimitWaiter, err := github_ratelimit.NewRateLimitWaiter(nil, github_ratelimit.WithSingleSleepLimit(1*time.Hour, nil))
	if err != nil {
		return nil, fmt.Errorf("failed to create rate limit waiter: %w", err)
	}

	var transport http.RoundTripper = rateLimitWaiter
	if token != "" {
		transport = &oauth2.Transport{
			Base:   rateLimitWaiter,
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token}),
		}
	}
	httpClient := &http.Client{Transport: transport}

	restClient := github.NewClient(httpClient)
	var graphqlClient *githubv4.Client
	if baseURL != "" {
		endpoint := strings.TrimSuffix(baseURL, "/")
		restClient, err = restClient.WithEnterpriseURLs(endpoint, endpoint)
		if err != nil {
			return nil, fmt.Errorf("failed to set enterprise base URL: %w", err)
		}
		graphqlClient = githubv4.NewEnterpriseClient(endpoint+"/graphql", httpClient)
	} else {
		graphqlClient = githubv4.NewClient(httpClient)
	}

	return &GitHubGateway{
		restClient:    restClient,
		graphqlClient: graphqlClient,
		logger:        logger.WithField("component", "gateway"),
	}, nil
}

// FetchProfile fetches a single user's profile.
func (g *GitHubGateway) FetchProfile(ctx context.Context, login string) (*domain.Profile, error) {
	g.logger.WithField("user", login).Debug("fetching profile")
	user, _, err := g.restClient.Users.Get(ctx, login)
	if err != nil {
		return nil, classify(err)
	}
	return &domain.Profile{
		Login:       user.GetLogin(),
		Name:        user.GetName(),
		Bio:         user.GetBio(),
		AvatarURL:   user.GetAvatarURL(),
		PublicRepos: user.GetPublicRepos(),
		Followers:   user.GetFollowers(),
		Following:   user.GetFollowing(),
		PublicGists: user.GetPublicGists(),
	}, nil
}

// FetchRepositories fetches all repositories owned by the user, paginated.
func (g *GitHubGateway) FetchRepositories(ctx context.Context, login string) ([]domain.Repository, error) {
	g.logger.WithField("user", login).Debug("fetching repositories")
	opts := &github.RepositoryListByUserOptions{
		Sort:        "updated",
		ListOptions: github.ListOptions{PerPage: 100},
	}
	repos := make([]domain.Repository, 0)
	for {
		page, resp, err := g.restClient.Repositories.ListByUser(ctx, login, opts)
		if err != nil {
			return nil, classify(err)
		}
		for _, r := range page {
			repos = append(repos, domain.Repository{
				Name:        r.GetName(),
				Language:    r.GetLanguage(),
				Stars:       r.GetStargazersCount(),
				Forks:       r.GetForksCount(),
				Watchers:    r.GetWatchersCount(),
				UpdatedAt:   r.GetUpdatedAt().Time,
				Description: r.GetDescription(),
				HTMLURL:     r.GetHTMLURL(),
			})
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
		g.logger.WithField("user", login).Debug("fetching next page of repositories")
	}
	return repos, nil
}

// FetchEvents fetches the user's recent public events, paginated. Event
// kinds are normalized to lowercase short names; push events carry their
// commit count, preferring the payload size over the commit list length.
func (g *GitHubGateway) FetchEvents(ctx context.Context, login string) ([]domain.ActivityEvent, error) {
	g.logger.WithField("user", login).Debug("fetching events")
	opts := &github.ListOptions{PerPage: 100}
	events := make([]domain.ActivityEvent, 0)
	for {
		page, resp, err := g.restClient.Activity.ListEventsPerformedByUser(ctx, login, false, opts)
		if err != nil {
			return nil, classify(err)
		}
		for _, e := range page {
			ev := domain.ActivityEvent{
				Kind:      strings.ToLower(strings.TrimSuffix(e.GetType(), "Event")),
				CreatedAt: e.GetCreatedAt().Time,
			}
			if ev.Kind == domain.EventKindPush {
				if payload, err := e.ParsePayload(); err == nil {
					if push, ok := payload.(*github.PushEvent); ok {
						ev.CommitCount = push.GetSize()
						if ev.CommitCount == 0 {
							ev.CommitCount = len(push.Commits)
						}
					}
				}
			}
			events = append(events, ev)
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
		g.logger.WithField("user", login).Debug("fetching next page of events")
	}
	return events, nil
}

// GetRateStatus queries the remaining call budget.
func (g *GitHubGateway) GetRateStatus(ctx context.Context) (*RateStatus, error) {
	var q rateLimitQuery
	if err := g.graphqlClient.Query(ctx, &q, nil); err != nil {
		return nil, fmt.Errorf("failed to query rate limit: %w", err)
	}
	return &RateStatus{
		Remaining: int(q.RateLimit.Remaining),
		Limit:     int(q.RateLimit.Limit),
		ResetAt:   q.RateLimit.ResetAt.Time,
	}, nil
}
