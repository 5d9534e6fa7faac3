package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/scribeflow/api/internal/ai"
	"github.com/scribeflow/api/pkg/metrics"
)

// ScribeService fronts the AI drafting operations. It holds no state and
// writes nothing: drafts and suggestions go back to the caller for review.
type ScribeService struct {
	ai  ai.Client
	mc  *metrics.Collector
	log *zap.Logger
}

func NewScribeService(client ai.Client, mc *metrics.Collector, log *zap.Logger) *ScribeService {
	return &ScribeService{ai: client, mc: mc, log: log}
}

// GenerateDraft asks the AI scribe for a SOAP note draft. The transcript is
// required; missing vitals fall back to a fixed placeholder inside the client.
func (s *ScribeService) GenerateDraft(ctx context.Context, transcript, vitals string) (string, error) {
	if strings.TrimSpace(transcript) == "" {
		return "", &ValidationError{Fields: []string{"transcript is required"}}
	}

	start := time.Now()
	text, err := s.ai.GenerateSOAPNote(ctx, transcript, vitals)
	s.mc.AIRequestDuration.WithLabelValues("generate_note").Observe(time.Since(start).Seconds())
	if err != nil {
		s.mc.AIErrorsTotal.WithLabelValues("generate_note").Inc()
		return "", wrapAIError(err)
	}

	s.mc.NotesGeneratedTotal.Inc()
	return text, nil
}

// SuggestFollowup asks for one short follow-up question for a partial
// transcript fragment.
func (s *ScribeService) SuggestFollowup(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", &ValidationError{Fields: []string{"text is required"}}
	}

	start := time.Now()
	question, err := s.ai.SuggestFollowupQuestion(ctx, text)
	s.mc.AIRequestDuration.WithLabelValues("analyze").Observe(time.Since(start).Seconds())
	if err != nil {
		s.mc.AIErrorsTotal.WithLabelValues("analyze").Inc()
		return "", wrapAIError(err)
	}

	s.mc.FollowupsTotal.Inc()
	return question, nil
}

// wrapAIError tags provider failures so the handler can map them to an
// upstream error response while keeping the original message intact.
func wrapAIError(err error) error {
	return fmt.Errorf("%w: %w", ErrAIProvider, err)
}
