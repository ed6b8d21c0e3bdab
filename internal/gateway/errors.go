package gateway

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/go-github/v62/github"
)

// Sentinel errors classifying every failure the gateway can produce.
// Anything that is neither a missing user nor a quota problem wraps
// ErrUnknown so callers can still branch on the taxonomy.
var (
	ErrNotFound    = errors.New("user not found")
	ErrRateLimited = errors.New("rate limited")
	ErrUnknown     = errors.New("github request failed")
)

// classify wraps a go-github error with the matching sentinel.
func classify(err error) error {
	var rateErr *github.RateLimitError
	var abuseErr *github.AbuseRateLimitError
	var respErr *github.ErrorResponse

	switch {
	case errors.As(err, &rateErr) || errors.As(err, &abuseErr):
		return fmt.Errorf("%w: %v", ErrRateLimited, err)
	case errors.As(err, &respErr) && respErr.Response != nil && respErr.Response.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	default:
		return fmt.Errorf("%w: %v", ErrUnknown, err)
	}
}
