package advisory

import (
	"context"
	"fmt"

	"golang.org/x/exp/slog"

	"github.com/SriNikhita22/biosync-carechain/internal/domain/profile"
	"github.com/SriNikhita22/biosync-carechain/internal/domain/timeline"
)

// Generator produces free text for a prompt. The concrete client lives
// elsewhere so tests and offline runs can swap it out.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Service renders advisory bullets. Its methods never return an error:
// a cache hit, a generated reply, or a locally derived fallback always
// yields displayable text.
type Service struct {
	gen   Generator
	cache *Cache
	retry RetryPolicy
	log   *slog.Logger
}

func NewService(gen Generator, cache *Cache, retry RetryPolicy, log *slog.Logger) *Service {
	return &Service{
		gen:   gen,
		cache: cache,
		retry: retry,
		log:   log.With("component", "advisory_service"),
	}
}

// HealthInsight returns three responder bullets for the profile. The
// cache is consulted before any network traffic, so repeat requests for
// an unchanged profile cost nothing.
func (s *Service) HealthInsight(ctx context.Context, d profile.HealthData) string {
	key := fmt.Sprintf("insight_%s_%s_%s_%s", d.FullName, d.BloodGroup, d.Allergies, d.ChronicDiseases)
	if text, ok := s.cache.Get(key); ok {
		s.log.Debug("insight cache hit")
		return text
	}

	text, err := s.retry.Do(ctx, func(ctx context.Context) (string, error) {
		return s.gen.Generate(ctx, insightPrompt(d))
	})
	if err != nil {
		s.log.Warn("insight generation failed, using local fallback", "error", err)
		text = LocalInsight(d)
	}

	s.cache.Put(key, text)
	return text
}

// TimelineSummary returns a three-line snapshot of the history. An
// empty timeline short-circuits to a fixed message.
func (s *Service) TimelineSummary(ctx context.Context, events []timeline.Event) string {
	if len(events) == 0 {
		return EmptyTimelineSummary
	}

	key := fmt.Sprintf("summary_%d_%s", len(events), events[0].ID)
	if text, ok := s.cache.Get(key); ok {
		s.log.Debug("summary cache hit")
		return text
	}

	text, err := s.retry.Do(ctx, func(ctx context.Context) (string, error) {
		return s.gen.Generate(ctx, summaryPrompt(events))
	})
	if err != nil {
		s.log.Warn("summary generation failed, using local fallback", "error", err)
		text = LocalSummary(events)
	}

	s.cache.Put(key, text)
	return text
}
