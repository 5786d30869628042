package adaptation

import (
	"context"
	"errors"
	"math"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"abled.ai/abled-api-gateway/app/domain/generation"
	"abled.ai/abled-api-gateway/app/infrastructure/cache"
	"abled.ai/abled-api-gateway/app/utils/logger"
	"abled.ai/abled-api-gateway/config/environment_variables"
)

// GenerationMetadata is attached to every result after normalization.
type GenerationMetadata struct {
	GeneratedAt    time.Time `json:"generated_at"`
	ProcessingTime float64   `json:"processing_time"`
	Model          string    `json:"model"`
}

// GenerationResult is the only success shape crossing the service
// boundary. The operation's primary field (content for notes, answer for
// QnA) is always populated, even when the raw model output had to be
// pushed into it verbatim.
type GenerationResult struct {
	Content     string             `json:"content,omitempty"`
	Answer      string             `json:"answer,omitempty"`
	Steps       string             `json:"steps,omitempty"`
	Tips        string             `json:"tips"`
	StudentType string             `json:"studentType"`
	Metadata    GenerationMetadata `json:"_metadata"`
}

// ServiceStats are process-wide counters, reset only on restart.
type ServiceStats struct {
	TotalRequests int64   `json:"total_requests"`
	TotalErrors   int64   `json:"total_errors"`
	CacheHits     int64   `json:"cache_hits"`
	CacheSize     int     `json:"cache_size"`
	ErrorRate     float64 `json:"error_rate"`
}

// HealthStatus reports service health without any network call, even
// when all credentials are exhausted.
type HealthStatus struct {
	Status             string       `json:"status"`
	AvailableKeys      int          `json:"available_keys"`
	Transport          string       `json:"transport"`
	TransportAvailable bool         `json:"transport_available"`
	Error              string       `json:"error,omitempty"`
	Stats              ServiceStats `json:"stats"`
}

// AdaptationService composes validation, caching, prompt construction,
// dispatch, parsing and normalization. Concurrent identical requests are
// collapsed onto a single upstream dispatch.
type AdaptationService struct {
	dispatcher    *generation.FallbackDispatcher
	promptBuilder *PromptBuilder
	responseCache *cache.ResponseCache
	model         string

	group singleflight.Group

	totalRequests atomic.Int64
	totalErrors   atomic.Int64
	cacheHits     atomic.Int64
}

func NewAdaptationService(dispatcher *generation.FallbackDispatcher, responseCache *cache.ResponseCache) *AdaptationService {
	service := &AdaptationService{
		dispatcher:    dispatcher,
		promptBuilder: NewPromptBuilder(),
		responseCache: responseCache,
		model:         environment_variables.EnvironmentVariables.GEMINI_MODEL,
	}
	logger.GetLogger().WithFields(logrus.Fields{"model": service.model}).Info("adaptation service initialized")
	return service
}

// GenerateAdaptiveNotes rewrites source text for the given student type.
func (s *AdaptationService) GenerateAdaptiveNotes(ctx context.Context, text, studentType string) (*GenerationResult, error) {
	s.totalRequests.Add(1)
	start := time.Now()

	profile, err := NormalizeProfile(studentType)
	if err != nil {
		return nil, s.fail(err)
	}
	text, err = ValidateInput(text, "text", MaxTextLength, MinTextLength)
	if err != nil {
		return nil, s.fail(err)
	}

	key := fingerprint(OperationNotes, profile, text)
	if result, ok := s.cached(key); ok {
		return result, nil
	}

	result, err := s.generate(ctx, key, OperationNotes, profile, start, func() (string, error) {
		return s.promptBuilder.NotesPrompt(text, profile)
	})
	if err != nil {
		return nil, s.fail(err)
	}
	return result, nil
}

// GenerateAdaptiveQnA answers a question over previously stored notes.
func (s *AdaptationService) GenerateAdaptiveQnA(ctx context.Context, notes, studentType, question string) (*GenerationResult, error) {
	s.totalRequests.Add(1)
	start := time.Now()

	profile, err := NormalizeProfile(studentType)
	if err != nil {
		return nil, s.fail(err)
	}
	notes, err = ValidateInput(notes, "notes", MaxQnANotesLength, MinTextLength)
	if err != nil {
		return nil, s.fail(err)
	}
	question, err = ValidateInput(question, "question", MaxQuestionLength, MinTextLength)
	if err != nil {
		return nil, s.fail(err)
	}

	key := fingerprint(OperationQnA, profile, notes, question)
	if result, ok := s.cached(key); ok {
		return result, nil
	}

	result, err := s.generate(ctx, key, OperationQnA, profile, start, func() (string, error) {
		return s.promptBuilder.QnAPrompt(notes, profile, question)
	})
	if err != nil {
		return nil, s.fail(err)
	}
	return result, nil
}

// generate runs the miss path. Identical in-flight requests share one
// dispatch through singleflight; the cache is re-checked inside the
// flight because a previous holder may have stored the result already.
func (s *AdaptationService) generate(ctx context.Context, key string, op Operation, profile Profile, start time.Time, buildPrompt func() (string, error)) (*GenerationResult, error) {
	value, err, _ := s.group.Do(key, func() (interface{}, error) {
		if cached, ok := s.responseCache.Get(key); ok {
			return cached, nil
		}

		prompt, err := buildPrompt()
		if err != nil {
			return nil, err
		}

		raw, err := s.dispatcher.Dispatch(ctx, prompt)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil, err
			}
			return nil, &UpstreamError{Err: err}
		}

		extracted := ExtractStructured(raw, op)
		result := s.normalize(op, extracted, raw, profile, start)
		s.responseCache.Put(key, result)
		return result, nil
	})
	if err != nil {
		return nil, err
	}
	result := value.(GenerationResult)
	return &result, nil
}

// normalize enforces the result invariants: the primary field is never
// empty, optional fields default to empty strings, the profile echoes the
// alias-resolved value and metadata is attached.
func (s *AdaptationService) normalize(op Operation, extracted Extracted, raw string, profile Profile, start time.Time) GenerationResult {
	result := GenerationResult{
		Content:     extracted.Content,
		Answer:      extracted.Answer,
		Steps:       extracted.Steps,
		Tips:        extracted.Tips,
		StudentType: string(profile),
		Metadata: GenerationMetadata{
			GeneratedAt:    time.Now().UTC(),
			ProcessingTime: math.Round(time.Since(start).Seconds()*100) / 100,
			Model:          s.model,
		},
	}
	switch op {
	case OperationQnA:
		result.Content = ""
		if result.Answer == "" {
			result.Answer = raw
		}
	default:
		result.Answer = ""
		result.Steps = ""
		if result.Content == "" {
			result.Content = raw
		}
	}
	return result
}

func (s *AdaptationService) cached(key string) (*GenerationResult, bool) {
	value, ok := s.responseCache.Get(key)
	if !ok {
		return nil, false
	}
	s.cacheHits.Add(1)
	result := value.(GenerationResult)
	return &result, true
}

func (s *AdaptationService) fail(err error) error {
	s.totalErrors.Add(1)
	logger.GetLogger().WithFields(logrus.Fields{"error": err.Error()}).Error("adaptation request failed")
	return err
}

// Stats snapshots the process-wide counters.
func (s *AdaptationService) Stats() ServiceStats {
	requests := s.totalRequests.Load()
	errs := s.totalErrors.Load()
	divisor := requests
	if divisor == 0 {
		divisor = 1
	}
	return ServiceStats{
		TotalRequests: requests,
		TotalErrors:   errs,
		CacheHits:     s.cacheHits.Load(),
		CacheSize:     s.responseCache.Len(),
		ErrorRate:     math.Round(float64(errs)/float64(divisor)*1000) / 1000,
	}
}

// Health reports credential count, transport availability and current
// stats. Responds even when all credentials are exhausted.
func (s *AdaptationService) Health() HealthStatus {
	status := HealthStatus{
		AvailableKeys:      s.dispatcher.KeyCount(),
		Transport:          s.dispatcher.Transport(),
		TransportAvailable: s.dispatcher.TransportAvailable(),
		Stats:              s.Stats(),
	}
	switch {
	case status.AvailableKeys == 0:
		status.Status = "unhealthy"
		status.Error = "no API keys configured"
	case !status.TransportAvailable:
		status.Status = "unhealthy"
		status.Error = "no generation transport available"
	default:
		status.Status = "healthy"
	}
	return status
}
