// Package llm provides the text-completion client abstraction and the
// CV-writing operations layered on top of it.
package llm

// DefaultBaseURL is the chat-completions endpoint used when none is configured.
const DefaultBaseURL = "https://api.perplexity.ai"

// DefaultModel is the model identifier used when none is configured.
const DefaultModel = "llama-3.1-sonar-small-128k-online"

// Config holds the provider configuration for the application.
type Config struct {
	BaseURL string
	Model   string
}

// DefaultConfig returns the default provider configuration.
func DefaultConfig() *Config {
	return &Config{
		BaseURL: DefaultBaseURL,
		Model:   DefaultModel,
	}
}

// Options are the per-request completion parameters.
type Options struct {
	Temperature float32 // response variance, in [0, 1]
	MaxTokens   int     // upper bound on response length
}

// Per-operation option presets. Lookups that should be stable run cooler
// than creative drafting.
var (
	AchievementOptions   = Options{Temperature: 0.7, MaxTokens: 500}
	SkillOptions         = Options{Temperature: 0.5, MaxTokens: 300}
	CertificationOptions = Options{Temperature: 0.3, MaxTokens: 150}
	TextOptions          = Options{Temperature: 0.7, MaxTokens: 300}
)
