package service

import (
	"context"

	"studyenglish/internal/domain"
	"studyenglish/internal/render"
	"studyenglish/internal/ui"

	"go.uber.org/zap"
)

// LookupClient looks a validated word up in the external dictionary
type LookupClient interface {
	Lookup(ctx context.Context, word string) domain.Outcome
}

// EnglishService handles English dictionary lookups
type EnglishService struct {
	client LookupClient
	logger *zap.Logger
}

// NewEnglishService creates a new English lookup service
func NewEnglishService(client LookupClient, logger *zap.Logger) *EnglishService {
	return &EnglishService{
		client: client,
		logger: logger,
	}
}

// Lookup validates raw, looks it up and renders the outcome into region.
// Empty input renders a prompt, issues no request and returns
// domain.ErrEmptyQuery. Lookup failures are rendered into the region and
// reported in the outcome, never as an error.
//
// The loading fragment is only visible on regions that show writes as
// they happen. A region that is flushed once per call, like an HTTP
// response, only ever shows the final fragment.
func (s *EnglishService) Lookup(ctx context.Context, raw string, region ui.Region) (domain.Outcome, error) {
	word, err := domain.LookupRequest{Word: raw}.Normalize()
	if err != nil {
		region.Replace(render.Prompt())
		return domain.Outcome{}, err
	}

	// The ticket is taken before the request so that a slower, older
	// lookup cannot overwrite a newer one under the latest-request policy.
	tk := ui.Begin(region)
	tk.Replace(render.Loading(word))

	outcome := s.client.Lookup(ctx, word)

	switch outcome.Kind {
	case domain.OutcomeFailure:
		s.logger.Error("English lookup failed",
			zap.String("word", word),
			zap.Error(outcome.Err),
		)
	case domain.OutcomeNotFound:
		s.logger.Info("English lookup found nothing", zap.String("word", word))
	default:
		if outcome.Alternates > 0 {
			s.logger.Debug("Discarded alternate entries",
				zap.String("word", word),
				zap.Int("count", outcome.Alternates),
			)
		}
	}

	tk.Replace(render.Outcome(outcome, word))
	return outcome, nil
}
