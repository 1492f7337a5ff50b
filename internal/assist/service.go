// Package assist runs the AI-backed writing helpers: tone detection and
// professional rewriting. Each call discovers (or reuses) a generation-capable
// model, renders the task prompt, and returns the model's JSON reply tagged
// with the model that produced it.
package assist

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/sagr12004/Spell-Checker/internal/llm"
	"github.com/sagr12004/Spell-Checker/internal/prompts"
	"github.com/sagr12004/Spell-Checker/internal/schemas"
	"github.com/sagr12004/Spell-Checker/internal/types"
	schemadocs "github.com/sagr12004/Spell-Checker/schemas"
)

// Task names an AI helper. The value doubles as its prompt key.
type Task string

const (
	TaskToneDetect Task = prompts.KeyToneDetect
	TaskAIImprove  Task = prompts.KeyAIImprove
)

// ModelUsedKey is added to every reply with the name of the model that answered.
const ModelUsedKey = "model_used"

const (
	msgKeyNotSet   = "Gemini API Key not set in server environment"
	msgNoModel     = "No Gemini model available for generateContent"
	msgEmptyReply  = "empty reply from model"
	msgTextMissing = "Text is required"
)

// Options configures a Service.
type Options struct {
	// Timeout bounds one discovery plus generation round; zero disables it.
	Timeout time.Duration
	// CacheModel keeps the discovered model name until a generation call fails.
	CacheModel bool
	// Logger receives a warning when a reply does not match its task's schema.
	// Nil discards them.
	Logger *logrus.Logger
}

// DefaultOptions returns the options used by the server.
func DefaultOptions() Options {
	return Options{
		Timeout:    60 * time.Second,
		CacheModel: true,
	}
}

// Service runs AI tasks against a Provider. A nil provider means no API key
// is configured; every call then fails with a ConfigError.
type Service struct {
	provider llm.Provider
	opts     Options
	schemas  map[Task]*schemas.Schema

	group singleflight.Group
	mu    sync.RWMutex
	model string
}

// NewService creates a Service. provider may be nil.
func NewService(provider llm.Provider, opts Options) *Service {
	if opts.Logger == nil {
		opts.Logger = logrus.New()
		opts.Logger.SetOutput(io.Discard)
	}
	return &Service{
		provider: provider,
		opts:     opts,
		schemas: map[Task]*schemas.Schema{
			TaskToneDetect: schemas.MustCompile("tone_detect", schemadocs.ToneDetect),
			TaskAIImprove:  schemas.MustCompile("ai_improve", schemadocs.AIImprove),
		},
	}
}

// Configured reports whether an API key was supplied.
func (s *Service) Configured() bool {
	return s.provider != nil
}

// DetectTone classifies the tone of text.
// The reply carries tone, confidence, suggestion and model_used.
func (s *Service) DetectTone(ctx context.Context, text string) (map[string]any, error) {
	return s.Run(ctx, TaskToneDetect, text)
}

// Improve rewrites text in a professional register.
// The reply carries professional_version and model_used.
func (s *Service) Improve(ctx context.Context, text string) (map[string]any, error) {
	return s.Run(ctx, TaskAIImprove, text)
}

// Run executes task for text. A reply that parses as a JSON object is returned
// even when its fields do not match the task's schema; the mismatch is logged.
func (s *Service) Run(ctx context.Context, task Task, text string) (map[string]any, error) {
	if s.provider == nil {
		return nil, &types.ConfigError{Message: msgKeyNotSet}
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, &types.ValidationError{Field: "text", Message: msgTextMissing}
	}

	schema, ok := s.schemas[task]
	if !ok {
		return nil, fmt.Errorf("unknown assist task %q", task)
	}

	if s.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.opts.Timeout)
		defer cancel()
	}

	model, err := s.resolveModel(ctx)
	if err != nil {
		return nil, err
	}

	prompt, err := prompts.Render(prompts.AssistFile, string(task), map[string]string{"Text": text})
	if err != nil {
		return nil, fmt.Errorf("failed to build %s prompt: %w", task, err)
	}

	raw, err := s.provider.Generate(ctx, model, prompt)
	if err != nil {
		s.forgetModel(model)
		return nil, &types.UpstreamError{Message: err.Error(), Cause: err}
	}

	reply, err := parseReply(raw)
	if err != nil {
		return nil, err
	}

	if err := schema.Validate(reply); err != nil {
		s.opts.Logger.WithFields(logrus.Fields{
			"task":  task,
			"model": model,
		}).WithError(err).Warn("AI reply does not match expected shape")
	}

	reply[ModelUsedKey] = model
	return reply, nil
}

// parseReply decodes the model's text into a JSON object.
func parseReply(raw string) (map[string]any, error) {
	cleaned := llm.CleanJSONBlock(raw)

	var reply map[string]any
	if err := json.Unmarshal([]byte(cleaned), &reply); err != nil {
		return nil, &types.UpstreamError{Message: err.Error(), Cause: err}
	}
	if reply == nil {
		return nil, &types.UpstreamError{Message: msgEmptyReply}
	}
	return reply, nil
}

// resolveModel returns the cached model or discovers one. Concurrent
// discoveries share a single listing call.
func (s *Service) resolveModel(ctx context.Context) (string, error) {
	if s.opts.CacheModel {
		s.mu.RLock()
		cached := s.model
		s.mu.RUnlock()
		if cached != "" {
			return cached, nil
		}
	}

	v, err, _ := s.group.Do("model", func() (interface{}, error) {
		models, err := s.provider.ListModels(ctx)
		if err != nil {
			return "", &types.UnavailableError{Message: msgNoModel, Cause: err}
		}

		name, ok := llm.SelectModel(models, llm.MethodGenerateContent)
		if !ok {
			return "", &types.UnavailableError{Message: msgNoModel}
		}

		if s.opts.CacheModel {
			s.mu.Lock()
			s.model = name
			s.mu.Unlock()
		}
		return name, nil
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

// forgetModel drops the cached model if it is still model.
func (s *Service) forgetModel(model string) {
	s.mu.Lock()
	if s.model == model {
		s.model = ""
	}
	s.mu.Unlock()
}

// CachedModel returns the cached model name, or "" when none is cached.
func (s *Service) CachedModel() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.model
}

// Close releases the provider.
func (s *Service) Close() error {
	if s.provider == nil {
		return nil
	}
	return s.provider.Close()
}
