// Package llm provides the generative model provider used by the AI routes.
// Models are discovered at runtime; a model can also be pinned in configuration.
package llm

// ProviderName identifies an LLM backend
type ProviderName string

// ProviderGemini is the Google Gemini provider
const ProviderGemini ProviderName = "gemini"

// MethodGenerateContent is the generation method a model must advertise to be selected
const MethodGenerateContent = "generateContent"

// DefaultTemperature keeps tone labels and rewrites stable between calls
const DefaultTemperature float32 = 0.2

// Config holds the provider configuration
type Config struct {
	Provider ProviderName
	// Model pins a model name and skips discovery when set
	Model       string
	Temperature float32
}

// DefaultConfig returns the default configuration (currently Gemini)
func DefaultConfig() *Config {
	return DefaultGeminiConfig()
}

// DefaultGeminiConfig returns the default Gemini configuration
func DefaultGeminiConfig() *Config {
	return &Config{
		Provider:    ProviderGemini,
		Temperature: DefaultTemperature,
	}
}

// WithModel returns a copy of the config pinned to model
func (c *Config) WithModel(model string) *Config {
	newConfig := *c
	newConfig.Model = model
	return &newConfig
}

// WithTemperature returns a copy of the config using temperature
func (c *Config) WithTemperature(temperature float32) *Config {
	newConfig := *c
	newConfig.Temperature = temperature
	return &newConfig
}
