package synthesis

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/abhisek/bilan/internal/llm"
	"github.com/abhisek/bilan/internal/session"
)

// Service generates the final assessment summary asynchronously.
type Service struct {
	provider llm.Provider
	cfg      Config

	mu      sync.Mutex
	pending *session.Summary
	err     error
	ready   bool
}

// NewService creates a synthesis service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// RequestSummary starts async summary generation. Only one summary is
// in-flight at a time; new requests replace pending ones.
func (s *Service) RequestSummary(ctx context.Context, input Input) {
	go func() {
		sum, err := s.generate(ctx, input)
		s.mu.Lock()
		defer s.mu.Unlock()
		s.pending = sum
		s.err = err
		s.ready = true
	}()
}

// ConsumeSummary returns the pending result once generation finished.
// done is false while generation is still running. On done, either sum
// or err is set and the pending slot is cleared; the caller decides
// whether to fall back on error.
func (s *Service) ConsumeSummary() (sum *session.Summary, done bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ready {
		return nil, false, nil
	}
	sum, err = s.pending, s.err
	s.pending = nil
	s.err = nil
	s.ready = false
	return sum, true, err
}

type summaryOutput struct {
	SummaryText     string   `json:"summary_text"`
	Strengths       []string `json:"strengths"`
	DevelopmentAxes []string `json:"development_axes"`
}

func (s *Service) generate(ctx context.Context, input Input) (*session.Summary, error) {
	if s.provider == nil {
		return nil, fmt.Errorf("no llm provider configured")
	}
	ctx = llm.WithPurpose(ctx, "synthesis")

	userMsg := buildSummaryUserMessage(input, s.cfg)

	req := llm.Request{
		System: summarySystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      SummarySchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("summary generation: %w", err)
	}

	var out summaryOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse summary response: %w", err)
	}

	return &session.Summary{
		Text:      out.SummaryText,
		Strengths: out.Strengths,
		Axes:      out.DevelopmentAxes,
		WrittenAt: time.Now().UTC(),
	}, nil
}
