package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/scribeflow/api/internal/config"
)

type chatRequest struct {
	Model       string  `json:"model"`
	Temperature float64 `json:"temperature"`
	Messages    []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
}

// newTestClient points the client at a fake chat-completions endpoint.
func newTestClient(t *testing.T, handler http.HandlerFunc) (*OpenAIClient, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := NewOpenAIClient(config.AIConfig{
		APIKey:              "test-key",
		BaseURL:             srv.URL + "/v1",
		Model:               "gpt-4o-mini",
		NoteTemperature:     0.1,
		QuestionTemperature: 0.7,
		RequestTimeout:      5 * time.Second,
	}, zap.NewNop())

	return client, srv
}

func completionResponse(content string) string {
	resp := map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"role": "assistant", "content": content}},
		},
	}
	b, _ := json.Marshal(resp)
	return string(b)
}

func TestGenerateSOAPNote_SendsFixedPromptAndLowTemperature(t *testing.T) {
	var got chatRequest
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatalf("decoding request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(completionResponse("S: headache\nO: BP 150/95\nA: migraine\nP: rest, recheck BP")))
	})

	text, err := client.GenerateSOAPNote(context.Background(), "patient reports headache", "BP 150/95")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(text, "P: rest") {
		t.Errorf("expected model text returned verbatim, got %q", text)
	}
	if got.Model != "gpt-4o-mini" {
		t.Errorf("expected model gpt-4o-mini, got %s", got.Model)
	}
	if got.Temperature != 0.1 {
		t.Errorf("expected temperature 0.1, got %v", got.Temperature)
	}
	if len(got.Messages) != 2 {
		t.Fatalf("expected system+user messages, got %d", len(got.Messages))
	}
	if got.Messages[0].Role != "system" || !strings.Contains(got.Messages[0].Content, "medical scribe") {
		t.Errorf("unexpected system prompt: %q", got.Messages[0].Content)
	}
	if !strings.Contains(got.Messages[1].Content, "BP 150/95") ||
		!strings.Contains(got.Messages[1].Content, "patient reports headache") {
		t.Errorf("user message missing transcript or vitals: %q", got.Messages[1].Content)
	}
}

func TestGenerateSOAPNote_DefaultsMissingVitals(t *testing.T) {
	var got chatRequest
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&got)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(completionResponse("S: x\nO: Vitals not taken.\nA: y\nP: z")))
	})

	if _, err := client.GenerateSOAPNote(context.Background(), "transcript", "  "); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(got.Messages[1].Content, DefaultVitals) {
		t.Errorf("expected vitals placeholder %q in user message, got %q", DefaultVitals, got.Messages[1].Content)
	}
}

func TestSuggestFollowupQuestion_UsesHigherTemperature(t *testing.T) {
	var got chatRequest
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&got)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(completionResponse("On a scale of 1-10, how severe is the pain?")))
	})

	q, err := client.SuggestFollowupQuestion(context.Background(), "my back hurts")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if q == "" {
		t.Error("expected a question, got empty string")
	}
	if got.Temperature != 0.7 {
		t.Errorf("expected temperature 0.7, got %v", got.Temperature)
	}
	if !strings.Contains(got.Messages[0].Content, "triage nurse") {
		t.Errorf("unexpected system prompt: %q", got.Messages[0].Content)
	}
	if got.Messages[1].Content != "my back hurts" {
		t.Errorf("expected raw text as user content, got %q", got.Messages[1].Content)
	}
}

func TestComplete_EmptyCompletion(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(completionResponse("   ")))
	})

	_, err := client.GenerateSOAPNote(context.Background(), "transcript", "")
	if err == nil {
		t.Fatal("expected error for blank completion")
	}
	if err != ErrEmptyCompletion {
		t.Errorf("expected ErrEmptyCompletion, got %v", err)
	}
}

func TestComplete_ProviderErrorPropagates(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"message":"rate limit exceeded","type":"rate_limit_error"}}`))
	})

	_, err := client.SuggestFollowupQuestion(context.Background(), "text")
	if err == nil {
		t.Fatal("expected provider error to propagate")
	}
}

func TestMissingSections(t *testing.T) {
	cases := []struct {
		name string
		text string
		want []string
	}{
		{"complete short form", "S: a\nO: b\nA: c\nP: d", nil},
		{"complete long form", "Subjective: a\nObjective: b\nAssessment: c\nPlan: d", nil},
		{"missing plan", "S: a\nO: b\nA: c", []string{"P"}},
		{"free text", "the patient felt unwell", []string{"S", "O", "A", "P"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := missingSections(tc.text)
			if len(got) != len(tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Errorf("expected %v, got %v", tc.want, got)
				}
			}
		})
	}
}
