package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/scribeflow/api/internal/config"
)

// ErrEmptyCompletion is returned when the provider answers successfully but
// with no usable text.
var ErrEmptyCompletion = errors.New("ai provider returned an empty completion")

// Client is the interface services depend on, so tests can substitute a fake
// without a network round trip.
type Client interface {
	// GenerateSOAPNote drafts a SOAP note from a visit transcript and vitals.
	// The returned text is the model output verbatim; nothing is persisted.
	GenerateSOAPNote(ctx context.Context, transcript, vitals string) (string, error)

	// SuggestFollowupQuestion returns one short follow-up question for a
	// partial transcript fragment.
	SuggestFollowupQuestion(ctx context.Context, text string) (string, error)
}

// OpenAIClient wraps the chat-completion API with the two fixed prompts.
// It is stateless aside from the credential and tuning loaded at startup.
type OpenAIClient struct {
	client *openai.Client
	model  string

	noteTemperature     float32
	questionTemperature float32
	timeout             time.Duration

	log *zap.Logger
}

func NewOpenAIClient(cfg config.AIConfig, log *zap.Logger) *OpenAIClient {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	return &OpenAIClient{
		client:              openai.NewClientWithConfig(clientCfg),
		model:               cfg.Model,
		noteTemperature:     cfg.NoteTemperature,
		questionTemperature: cfg.QuestionTemperature,
		timeout:             cfg.RequestTimeout,
		log:                 log,
	}
}

func (c *OpenAIClient) GenerateSOAPNote(ctx context.Context, transcript, vitals string) (string, error) {
	if strings.TrimSpace(vitals) == "" {
		vitals = DefaultVitals
	}

	user := fmt.Sprintf("VITALS: %s\nPATIENT TRANSCRIPT: %q", vitals, transcript)

	text, err := c.complete(ctx, "generate_soap_note", soapSystemPrompt, user, c.noteTemperature)
	if err != nil {
		return "", err
	}

	// The draft is reviewed by a human before saving, so a malformed note is
	// logged rather than rejected.
	if missing := missingSections(text); len(missing) > 0 {
		c.log.Warn("generated note is missing SOAP sections",
			zap.Strings("missing", missing),
		)
	}

	return text, nil
}

func (c *OpenAIClient) SuggestFollowupQuestion(ctx context.Context, text string) (string, error) {
	return c.complete(ctx, "suggest_followup_question", followupSystemPrompt, text, c.questionTemperature)
}

func (c *OpenAIClient) complete(ctx context.Context, op, system, user string, temperature float32) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	ctx, span := otel.Tracer("ai").Start(ctx, op)
	defer span.End()
	span.SetAttributes(
		attribute.String("ai.model", c.model),
		attribute.Float64("ai.temperature", float64(temperature)),
	)

	start := time.Now()
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: temperature,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
	})
	if err != nil {
		c.log.Error("chat completion failed",
			zap.String("operation", op),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err),
		)
		return "", fmt.Errorf("chat completion: %w", err)
	}

	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return "", ErrEmptyCompletion
	}

	c.log.Debug("chat completion succeeded",
		zap.String("operation", op),
		zap.Duration("elapsed", time.Since(start)),
	)

	return resp.Choices[0].Message.Content, nil
}

var sectionMarkers = map[string][]string{
	"S": {"S:", "Subjective"},
	"O": {"O:", "Objective"},
	"A": {"A:", "Assessment"},
	"P": {"P:", "Plan"},
}

// missingSections reports which of the four SOAP sections cannot be found in
// the generated text, in S/O/A/P order.
func missingSections(text string) []string {
	var missing []string
	for _, section := range []string{"S", "O", "A", "P"} {
		found := false
		for _, marker := range sectionMarkers[section] {
			if strings.Contains(text, marker) {
				found = true
				break
			}
		}
		if !found {
			missing = append(missing, section)
		}
	}
	return missing
}
