package generation

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProvider struct {
	generate func(ctx context.Context, prompt string) (string, error)
}

func (p *fakeProvider) Generate(ctx context.Context, prompt string) (string, error) {
	return p.generate(ctx, prompt)
}

// fakeFactory records which credential each Generate call used.
type fakeFactory struct {
	mu       sync.Mutex
	calls    []string
	failFunc func(apiKey string, call int) (string, error)
}

func (f *fakeFactory) NewProvider(apiKey string) (ProviderClient, error) {
	return &fakeProvider{
		generate: func(ctx context.Context, prompt string) (string, error) {
			f.mu.Lock()
			f.calls = append(f.calls, apiKey)
			call := len(f.calls)
			f.mu.Unlock()
			return f.failFunc(apiKey, call)
		},
	}, nil
}

func (f *fakeFactory) Transport() string { return "fake" }
func (f *fakeFactory) Available() bool   { return true }

func (f *fakeFactory) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func TestDispatch_FirstKeySucceeds(t *testing.T) {
	t.Parallel()
	factory := &fakeFactory{failFunc: func(apiKey string, call int) (string, error) {
		return "ok from " + apiKey, nil
	}}
	d := NewFallbackDispatcher([]string{"k1", "k2"}, factory).WithDelays(0, 0)

	text, err := d.Dispatch(context.Background(), "prompt")
	require.NoError(t, err)
	assert.Equal(t, "ok from k1", text)
	assert.Equal(t, 1, factory.callCount())
}

func TestDispatch_FallsBackAcrossKeys(t *testing.T) {
	t.Parallel()
	factory := &fakeFactory{failFunc: func(apiKey string, call int) (string, error) {
		if apiKey == "k3" {
			return "recovered", nil
		}
		return "", errors.New("quota exceeded")
	}}
	d := NewFallbackDispatcher([]string{"k1", "k2", "k3"}, factory).WithDelays(0, 0)

	text, err := d.Dispatch(context.Background(), "prompt")
	require.NoError(t, err)
	assert.Equal(t, "recovered", text)
	assert.Equal(t, []string{"k1", "k2", "k3"}, factory.calls)
}

func TestDispatch_SecondRoundSucceeds(t *testing.T) {
	t.Parallel()
	factory := &fakeFactory{failFunc: func(apiKey string, call int) (string, error) {
		if call == 3 {
			return "third time lucky", nil
		}
		return "", errors.New("transient")
	}}
	d := NewFallbackDispatcher([]string{"k1", "k2"}, factory).WithDelays(0, 0)

	text, err := d.Dispatch(context.Background(), "prompt")
	require.NoError(t, err)
	assert.Equal(t, "third time lucky", text)
	// Round one exhausted both keys, round two stopped at the first.
	assert.Equal(t, []string{"k1", "k2", "k1"}, factory.calls)
}

func TestDispatch_Exhaustion(t *testing.T) {
	t.Parallel()
	lastCause := errors.New("still down")
	factory := &fakeFactory{failFunc: func(apiKey string, call int) (string, error) {
		return "", lastCause
	}}
	d := NewFallbackDispatcher([]string{"k1", "k2", "k3"}, factory).WithDelays(0, 0)

	_, err := d.Dispatch(context.Background(), "prompt")
	require.Error(t, err)

	var exhausted *ExhaustedError
	require.True(t, errors.As(err, &exhausted))
	assert.Equal(t, DefaultRetryAttempts, exhausted.Rounds)
	assert.Equal(t, 3, exhausted.Keys)
	assert.True(t, errors.Is(err, lastCause))
	// Every key was tried in every round.
	assert.Equal(t, DefaultRetryAttempts*3, factory.callCount())
}

func TestDispatch_NoCredentials(t *testing.T) {
	t.Parallel()
	factory := &fakeFactory{failFunc: func(apiKey string, call int) (string, error) {
		return "never called", nil
	}}
	d := NewFallbackDispatcher(nil, factory)

	_, err := d.Dispatch(context.Background(), "prompt")
	assert.ErrorIs(t, err, ErrNoCredentials)
	assert.Zero(t, factory.callCount())
}

func TestDispatch_ContextCancelled(t *testing.T) {
	t.Parallel()
	factory := &fakeFactory{failFunc: func(apiKey string, call int) (string, error) {
		return "", errors.New("down")
	}}
	// Long delays guarantee the dispatcher is sleeping when cancel hits.
	d := NewFallbackDispatcher([]string{"k1", "k2"}, factory).WithDelays(10*time.Second, 10*time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := d.Dispatch(ctx, "prompt")
		done <- err
	}()
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("dispatch did not return after cancellation")
	}
}

func TestDispatch_PreCancelledContext(t *testing.T) {
	t.Parallel()
	factory := &fakeFactory{failFunc: func(apiKey string, call int) (string, error) {
		return "never", nil
	}}
	d := NewFallbackDispatcher([]string{"k1"}, factory).WithDelays(0, 0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := d.Dispatch(ctx, "prompt")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, factory.callCount())
}

func TestDispatcherAccessors(t *testing.T) {
	t.Parallel()
	factory := &fakeFactory{failFunc: func(apiKey string, call int) (string, error) { return "", nil }}
	d := NewFallbackDispatcher([]string{"a", "b"}, factory)
	assert.Equal(t, 2, d.KeyCount())
	assert.Equal(t, "fake", d.Transport())
	assert.True(t, d.TransportAvailable())
}
