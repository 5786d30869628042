package adaptation

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"abled.ai/abled-api-gateway/app/domain/generation"
	"abled.ai/abled-api-gateway/app/infrastructure/cache"
)

type stubProvider struct {
	generate func(ctx context.Context, prompt string) (string, error)
}

func (p *stubProvider) Generate(ctx context.Context, prompt string) (string, error) {
	return p.generate(ctx, prompt)
}

type stubFactory struct {
	dispatches atomic.Int64
	response   string
	err        error

	mu      sync.Mutex
	prompts []string
}

func (f *stubFactory) NewProvider(apiKey string) (generation.ProviderClient, error) {
	return &stubProvider{
		generate: func(ctx context.Context, prompt string) (string, error) {
			f.dispatches.Add(1)
			f.mu.Lock()
			f.prompts = append(f.prompts, prompt)
			f.mu.Unlock()
			if f.err != nil {
				return "", f.err
			}
			return f.response, nil
		},
	}, nil
}

func (f *stubFactory) Transport() string { return "stub" }
func (f *stubFactory) Available() bool   { return true }

func newTestService(factory *stubFactory, keys ...string) *AdaptationService {
	if keys == nil {
		keys = []string{"test-key"}
	}
	dispatcher := generation.NewFallbackDispatcher(keys, factory).WithDelays(0, 0)
	return NewAdaptationService(dispatcher, cache.NewResponseCache())
}

const testText = "The water cycle moves water between the oceans, the air and the land."

func TestGenerateAdaptiveNotes_StructuredResponse(t *testing.T) {
	t.Parallel()
	factory := &stubFactory{response: `{"content": "Adapted", "tips": "Use bullet points", "studentType": "vision"}`}
	s := newTestService(factory)

	result, err := s.GenerateAdaptiveNotes(context.Background(), testText, "vision")
	require.NoError(t, err)
	assert.Equal(t, "Adapted", result.Content)
	assert.Equal(t, "Use bullet points", result.Tips)
	assert.Equal(t, "vision", result.StudentType)
	assert.Empty(t, result.Answer)
	assert.Empty(t, result.Steps)
	assert.NotZero(t, result.Metadata.GeneratedAt)
}

func TestGenerateAdaptiveNotes_OmitsQnAOnlyFields(t *testing.T) {
	t.Parallel()
	factory := &stubFactory{response: `{"content": "Adapted", "tips": "t", "studentType": "vision"}`}
	s := newTestService(factory)

	result, err := s.GenerateAdaptiveNotes(context.Background(), testText, "vision")
	require.NoError(t, err)

	body, err := json.Marshal(result)
	require.NoError(t, err)
	assert.NotContains(t, string(body), `"steps"`)
	assert.NotContains(t, string(body), `"answer"`)
	assert.Contains(t, string(body), `"content"`)
}

func TestGenerateAdaptiveNotes_RawFallback(t *testing.T) {
	t.Parallel()
	factory := &stubFactory{response: "Plain prose answer without any JSON."}
	s := newTestService(factory)

	result, err := s.GenerateAdaptiveNotes(context.Background(), testText, "hearing")
	require.NoError(t, err)
	assert.Equal(t, "Plain prose answer without any JSON.", result.Content)
	assert.Equal(t, "hearing", result.StudentType)
}

func TestGenerateAdaptiveNotes_AliasEcho(t *testing.T) {
	t.Parallel()
	factory := &stubFactory{response: `{"content": "c", "tips": "", "studentType": "dyslexia"}`}
	s := newTestService(factory)

	result, err := s.GenerateAdaptiveNotes(context.Background(), testText, "dyslexia")
	require.NoError(t, err)
	// The echoed profile is the alias-resolved one, not the model's echo.
	assert.Equal(t, "dyslexie", result.StudentType)
}

func TestGenerateAdaptiveNotes_InvalidInput(t *testing.T) {
	t.Parallel()
	factory := &stubFactory{response: "irrelevant"}
	s := newTestService(factory)

	_, err := s.GenerateAdaptiveNotes(context.Background(), testText, "psychic")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = s.GenerateAdaptiveNotes(context.Background(), "short", "vision")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)

	assert.Zero(t, factory.dispatches.Load())
	assert.Equal(t, int64(2), s.Stats().TotalErrors)
}

func TestGenerateAdaptiveNotes_CacheIdempotence(t *testing.T) {
	t.Parallel()
	factory := &stubFactory{response: `{"content": "cached once", "tips": "", "studentType": "vision"}`}
	s := newTestService(factory)

	first, err := s.GenerateAdaptiveNotes(context.Background(), testText, "vision")
	require.NoError(t, err)
	second, err := s.GenerateAdaptiveNotes(context.Background(), testText, "vision")
	require.NoError(t, err)

	assert.Equal(t, first.Content, second.Content)
	assert.Equal(t, first.Metadata.GeneratedAt, second.Metadata.GeneratedAt)
	assert.Equal(t, int64(1), factory.dispatches.Load())

	stats := s.Stats()
	assert.Equal(t, int64(2), stats.TotalRequests)
	assert.Equal(t, int64(1), stats.CacheHits)
	assert.Equal(t, 1, stats.CacheSize)
}

func TestGenerateAdaptiveNotes_ConcurrentIdenticalRequests(t *testing.T) {
	t.Parallel()
	factory := &stubFactory{response: `{"content": "shared", "tips": "", "studentType": "vision"}`}
	s := newTestService(factory)

	const workers = 8
	var wg sync.WaitGroup
	results := make([]*GenerationResult, workers)
	errs := make([]error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = s.GenerateAdaptiveNotes(context.Background(), testText, "vision")
		}(i)
	}
	wg.Wait()

	for i := 0; i < workers; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, "shared", results[i].Content)
	}
	// Identical in-flight requests share a single upstream dispatch.
	assert.Equal(t, int64(1), factory.dispatches.Load())
}

func TestGenerateAdaptiveQnA(t *testing.T) {
	t.Parallel()
	factory := &stubFactory{response: `{"answer": "Plants need light.", "steps": "1. light 2. water", "tips": "re-read", "studentType": "speech"}`}
	s := newTestService(factory)

	result, err := s.GenerateAdaptiveQnA(context.Background(), testText, "speech", "What do plants need?")
	require.NoError(t, err)
	assert.Equal(t, "Plants need light.", result.Answer)
	assert.Equal(t, "1. light 2. water", result.Steps)
	assert.Equal(t, "re-read", result.Tips)
	assert.Empty(t, result.Content)
}

func TestGenerateAdaptiveQnA_DistinctCacheKeys(t *testing.T) {
	t.Parallel()
	factory := &stubFactory{response: `{"answer": "a", "steps": "", "tips": "", "studentType": "vision"}`}
	s := newTestService(factory)

	_, err := s.GenerateAdaptiveQnA(context.Background(), testText, "vision", "What is rain made of?")
	require.NoError(t, err)
	_, err = s.GenerateAdaptiveQnA(context.Background(), testText, "vision", "Where do rivers end?")
	require.NoError(t, err)
	// Different questions never share a fingerprint.
	assert.Equal(t, int64(2), factory.dispatches.Load())

	// Notes and QnA over the same text are also distinct operations.
	_, err = s.GenerateAdaptiveNotes(context.Background(), testText, "vision")
	require.NoError(t, err)
	assert.Equal(t, int64(3), factory.dispatches.Load())
}

func TestGenerate_UpstreamExhaustion(t *testing.T) {
	t.Parallel()
	factory := &stubFactory{err: errors.New("quota exceeded")}
	s := newTestService(factory, "k1", "k2")

	_, err := s.GenerateAdaptiveNotes(context.Background(), testText, "vision")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUpstreamExhausted)

	// Both keys, both rounds.
	assert.Equal(t, int64(generation.DefaultRetryAttempts*2), factory.dispatches.Load())
	assert.Equal(t, int64(1), s.Stats().TotalErrors)
}

func TestGenerate_ContextCancellationPassthrough(t *testing.T) {
	t.Parallel()
	factory := &stubFactory{response: "never used"}
	s := newTestService(factory)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := s.GenerateAdaptiveNotes(ctx, testText, "vision")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, ErrUpstreamExhausted)
}

func TestStats_ErrorRate(t *testing.T) {
	t.Parallel()
	factory := &stubFactory{response: `{"content": "x", "tips": "", "studentType": "vision"}`}
	s := newTestService(factory)

	stats := s.Stats()
	assert.Zero(t, stats.ErrorRate)

	_, err := s.GenerateAdaptiveNotes(context.Background(), testText, "vision")
	require.NoError(t, err)
	_, _ = s.GenerateAdaptiveNotes(context.Background(), "x", "vision")

	stats = s.Stats()
	assert.Equal(t, int64(2), stats.TotalRequests)
	assert.Equal(t, int64(1), stats.TotalErrors)
	assert.InDelta(t, 0.5, stats.ErrorRate, 0.0001)
}

func TestHealth(t *testing.T) {
	t.Parallel()
	factory := &stubFactory{response: "x"}

	healthy := newTestService(factory, "k1", "k2")
	status := healthy.Health()
	assert.Equal(t, "healthy", status.Status)
	assert.Equal(t, 2, status.AvailableKeys)
	assert.Equal(t, "stub", status.Transport)
	assert.True(t, status.TransportAvailable)
	assert.Empty(t, status.Error)

	noKeys := NewAdaptationService(
		generation.NewFallbackDispatcher(nil, factory).WithDelays(0, 0),
		cache.NewResponseCache(),
	)
	status = noKeys.Health()
	assert.Equal(t, "unhealthy", status.Status)
	assert.Zero(t, status.AvailableKeys)
	assert.NotEmpty(t, status.Error)
}
