package generation

import (
	"context"
	"errors"
	"fmt"
)

// ProviderClient binds one upstream credential to one transport. A client
// that cannot be constructed surfaces as a per-credential failure to the
// dispatcher, never as a process fault.
type ProviderClient interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// ProviderFactory builds ProviderClients for credentials. The concrete
// transport is selected once at startup; the dispatcher only ever sees
// this interface.
type ProviderFactory interface {
	NewProvider(apiKey string) (ProviderClient, error)

	// Transport names the selected variant for health reporting.
	Transport() string

	// Available reports whether the selected transport can construct
	// clients at all. No network call.
	Available() bool
}

// ErrNoCredentials is a configuration fault: the credential list is
// empty. Fatal for the request, never retried.
var ErrNoCredentials = errors.New("generation: no upstream credentials configured")

// ExhaustedError reports that every credential failed across all retry
// rounds, carrying the last underlying cause.
type ExhaustedError struct {
	Rounds int
	Keys   int
	Last   error
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("generation: all %d credential(s) failed after %d round(s): %v", e.Keys, e.Rounds, e.Last)
}

func (e *ExhaustedError) Unwrap() error { return e.Last }
