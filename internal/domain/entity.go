// Package domain contains the core data structures and domain logic for the application.
package domain

import "time"

// EventKindPush marks an activity event that carries pushed commits.
// Other event kinds are retained but ignored by the aggregation logic.
const EventKindPush = "push"

// DateLayout is the calendar-day format used for every date axis.
const DateLayout = "2006-01-02"

// Profile holds the per-user fields consumed from the GitHub user resource.
type Profile struct {
	Login       string `json:"login"`
	Name        string `json:"name"`
	Bio         string `json:"bio,omitempty"`
	AvatarURL   string `json:"avatar_url"`
	PublicRepos int    `json:"public_repos"`
	Followers   int    `json:"followers"`
	Following   int    `json:"following"`
	PublicGists int    `json:"public_gists"`
}

// Repository is a single repository owned by a tracked user.
type Repository struct {
	Name        string    `json:"name"`
	Language    string    `json:"language,omitempty"`
	Stars       int       `json:"stars"`
	Forks       int       `json:"forks"`
	Watchers    int       `json:"watchers"`
	UpdatedAt   time.Time `json:"updated_at"`
	Description string    `json:"description,omitempty"`
	HTMLURL     string    `json:"html_url"`
}

// ActivityEvent is one entry from a user's public event stream.
// CommitCount is only meaningful for push events.
type ActivityEvent struct {
	Kind        string    `json:"kind"`
	CreatedAt   time.Time `json:"created_at"`
	CommitCount int       `json:"commit_count"`
}

// EntityRecord is the per-user outcome of one batch fetch attempt.
//
// Reachable field combinations:
//
//	Err != ""                  profile fetch failed; no other field is set
//	Profile set, no errors     full success
//	Profile set, ReposErr      repositories unavailable, profile/events usable
//	Profile set, EventsErr     events unavailable, profile/repos usable
//
// ReposErr and EventsErr may coexist. A record with Err set never carries
// ReposErr or EventsErr because later phases are skipped for that user.
type EntityRecord struct {
	Profile      *Profile        `json:"profile,omitempty"`
	Repositories []Repository    `json:"repositories,omitempty"`
	Events       []ActivityEvent `json:"events,omitempty"`
	Err          string          `json:"error,omitempty"`
	ReposErr     string          `json:"repositories_error,omitempty"`
	EventsErr    string          `json:"events_error,omitempty"`
}

// Failed reports whether the profile fetch itself failed.
func (r *EntityRecord) Failed() bool { return r.Err != "" }

// DateSeries is a single user's commit activity bucketed by calendar day.
// Dates and Values are index-aligned.
type DateSeries struct {
	Dates  []string `json:"dates"`
	Values []int    `json:"values"`
}

// CacheEntry is a previously resolved user. Raw events are not retained;
// only the derived per-day commit series survives, so a cache hit can serve
// repository and language data but never reconstruct push events.
// CachedAt is advisory staleness metadata; entries are never evicted.
type CacheEntry struct {
	Profile      *Profile
	Repositories []Repository
	CommitSeries DateSeries
	CachedAt     time.Time
}
