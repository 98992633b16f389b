package llm

import (
	"context"
	"errors"
	"fmt"
)

var errNotConfigured = errors.New("no LLM provider configured")

// UnavailableProvider fails every request with the configuration error
// that prevented a real provider from being built. The app keeps running
// and generation falls through to its failure policy.
type UnavailableProvider struct {
	Reason error
}

// Unavailable returns a Provider that always reports reason.
func Unavailable(reason error) *UnavailableProvider {
	return &UnavailableProvider{Reason: reason}
}

func (u *UnavailableProvider) Generate(_ context.Context, _ Request) (*Response, error) {
	if u.Reason == nil {
		return nil, &ErrProviderUnavailable{Err: errNotConfigured}
	}
	return nil, &ErrProviderUnavailable{Err: fmt.Errorf("%w: %w", errNotConfigured, u.Reason)}
}

func (u *UnavailableProvider) ModelID() string {
	return "unconfigured"
}
