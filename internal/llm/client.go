package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

// ModelInfo describes a model advertised by the provider
type ModelInfo struct {
	Name                       string
	SupportedGenerationMethods []string
}

// Supports reports whether the model advertises the given generation method
func (m ModelInfo) Supports(method string) bool {
	for _, supported := range m.SupportedGenerationMethods {
		if supported == method {
			return true
		}
	}
	return false
}

// Provider is an abstraction over LLM backends
type Provider interface {
	// ListModels returns the models available to the configured credential
	ListModels(ctx context.Context) ([]ModelInfo, error)
	// Generate sends prompt to model and returns the text of the first candidate.
	// It returns "" without error when the response carries no text.
	Generate(ctx context.Context, model, prompt string) (string, error)
	// Close releases any resources held by the provider
	Close() error
}

// SelectModel returns the name of the first model supporting method.
func SelectModel(models []ModelInfo, method string) (string, bool) {
	for _, m := range models {
		if m.Name != "" && m.Supports(method) {
			return m.Name, true
		}
	}
	return "", false
}

// NewProvider creates a provider based on configuration
func NewProvider(ctx context.Context, config *Config, apiKey string) (Provider, error) {
	if config == nil {
		config = DefaultConfig()
	}

	switch config.Provider {
	case ProviderGemini:
		return NewGeminiProvider(ctx, config, apiKey)
	default:
		return nil, fmt.Errorf("unsupported LLM provider %q", config.Provider)
	}
}

// GeminiProvider implements Provider for Google Gemini
type GeminiProvider struct {
	client *genai.Client
	config *Config
}

// NewGeminiProvider creates a new Gemini provider
func NewGeminiProvider(ctx context.Context, config *Config, apiKey string) (*GeminiProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if config == nil {
		config = DefaultGeminiConfig()
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiProvider{
		client: client,
		config: config,
	}, nil
}

// ListModels lists the models visible to the API key. A pinned model in the
// config is returned on its own without calling the API.
func (p *GeminiProvider) ListModels(ctx context.Context) ([]ModelInfo, error) {
	if p.config.Model != "" {
		return []ModelInfo{{
			Name:                       p.config.Model,
			SupportedGenerationMethods: []string{MethodGenerateContent},
		}}, nil
	}

	var models []ModelInfo
	it := p.client.ListModels(ctx)
	for {
		info, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list models: %w", err)
		}
		models = append(models, ModelInfo{
			Name:                       info.Name,
			SupportedGenerationMethods: info.SupportedGenerationMethods,
		})
	}
	return models, nil
}

// Generate generates text content with the named model
func (p *GeminiProvider) Generate(ctx context.Context, modelName, prompt string) (string, error) {
	if modelName == "" {
		return "", fmt.Errorf("model name is required")
	}

	model := p.client.GenerativeModel(modelName)
	model.SetTemperature(p.config.Temperature)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	return extractTextFromResponse(resp), nil
}

// Close releases resources held by the provider
func (p *GeminiProvider) Close() error {
	if p.client != nil {
		return p.client.Close()
	}
	return nil
}

// extractTextFromResponse joins the text parts of the first candidate
func extractTextFromResponse(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}

	candidate := resp.Candidates[0]
	if candidate == nil || candidate.Content == nil {
		return ""
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}

	return strings.Join(parts, "")
}
