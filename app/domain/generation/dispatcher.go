package generation

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"abled.ai/abled-api-gateway/app/utils/logger"
)

const (
	// DefaultRetryAttempts is the number of full rounds over the
	// credential list before giving up.
	DefaultRetryAttempts = 2

	// defaultKeyDelay spaces out consecutive credentials so a rate-limited
	// shared backend is not hammered.
	defaultKeyDelay = 500 * time.Millisecond

	// defaultRoundDelay spaces out full retry rounds.
	defaultRoundDelay = time.Second
)

// FallbackDispatcher owns the ordered credential list and tries each
// credential in declaration order, first success wins. The order is fixed
// for the process lifetime so quota consumption stays predictable: the
// primary credential is always tried first.
type FallbackDispatcher struct {
	keys          []string
	factory       ProviderFactory
	retryAttempts int
	keyDelay      time.Duration
	roundDelay    time.Duration
}

func NewFallbackDispatcher(keys []string, factory ProviderFactory) *FallbackDispatcher {
	return &FallbackDispatcher{
		keys:          keys,
		factory:       factory,
		retryAttempts: DefaultRetryAttempts,
		keyDelay:      defaultKeyDelay,
		roundDelay:    defaultRoundDelay,
	}
}

// WithDelays overrides the politeness delays. Used by tests; production
// keeps the defaults.
func (d *FallbackDispatcher) WithDelays(keyDelay, roundDelay time.Duration) *FallbackDispatcher {
	d.keyDelay = keyDelay
	d.roundDelay = roundDelay
	return d
}

func (d *FallbackDispatcher) WithRetryAttempts(attempts int) *FallbackDispatcher {
	d.retryAttempts = attempts
	return d
}

// KeyCount reports the number of configured credentials. No lock needed:
// the list is read-only after construction.
func (d *FallbackDispatcher) KeyCount() int { return len(d.keys) }

// Transport names the active provider variant.
func (d *FallbackDispatcher) Transport() string { return d.factory.Transport() }

// TransportAvailable reports whether the selected transport can build
// clients, without any network call.
func (d *FallbackDispatcher) TransportAvailable() bool { return d.factory.Available() }

// Dispatch sends the prompt upstream, falling back across credentials and
// retry rounds. Returns the first successful text. The inter-attempt
// delays are cancellable through ctx; a cancelled dispatch returns the
// context error, never a partial result.
func (d *FallbackDispatcher) Dispatch(ctx context.Context, prompt string) (string, error) {
	if len(d.keys) == 0 {
		return "", ErrNoCredentials
	}

	log := logger.GetLogger()
	var lastErr error
	start := time.Now()

	for attempt := 0; attempt < d.retryAttempts; attempt++ {
		for keyIndex, key := range d.keys {
			if err := ctx.Err(); err != nil {
				return "", err
			}

			provider, err := d.factory.NewProvider(key)
			if err == nil {
				var text string
				text, err = provider.Generate(ctx, prompt)
				if err == nil {
					log.WithFields(logrus.Fields{
						"key_index": keyIndex + 1,
						"attempt":   attempt + 1,
						"elapsed":   time.Since(start).String(),
					}).Info("generation succeeded")
					return text, nil
				}
			}

			// Key material stays out of the log; the index is enough to
			// identify the failing account.
			lastErr = err
			log.WithFields(logrus.Fields{
				"key_index": keyIndex + 1,
				"attempt":   attempt + 1,
				"error":     err.Error(),
			}).Warn("credential failed")

			if keyIndex < len(d.keys)-1 {
				if err := sleepCtx(ctx, d.keyDelay); err != nil {
					return "", err
				}
			}
		}

		if attempt < d.retryAttempts-1 {
			log.WithFields(logrus.Fields{"attempt": attempt + 1}).Info("all credentials failed, retrying round")
			if err := sleepCtx(ctx, d.roundDelay); err != nil {
				return "", err
			}
		}
	}

	return "", &ExhaustedError{
		Rounds: d.retryAttempts,
		Keys:   len(d.keys),
		Last:   lastErr,
	}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
