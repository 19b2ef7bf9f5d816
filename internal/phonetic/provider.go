package phonetic

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sony/gobreaker"
)

// Provider defines the interface for IPA transcription providers
type Provider interface {
	// Transcribe returns the IPA transcription for a word
	Transcribe(ctx context.Context, word string) (string, error)

	// Name returns the provider name
	Name() string

	// IsAvailable checks if the provider is properly configured and available
	IsAvailable() error
}

// Config holds common configuration for transcription providers
type Config struct {
	Provider string // Provider name: "openai" or "gemini"

	// OpenAI-specific settings
	OpenAIKey   string
	OpenAIModel string // e.g. "gpt-4o-mini"

	// Gemini-specific settings
	GeminiKey   string
	GeminiModel string // e.g. "gemini-2.0-flash"
}

// DefaultProviderConfig returns default configuration
func DefaultProviderConfig() *Config {
	return &Config{
		Provider:    "openai",
		OpenAIModel: "gpt-4o-mini",
		GeminiModel: "gemini-2.0-flash",
	}
}

// NewProvider creates the appropriate transcription provider based on configuration
func NewProvider(config *Config) (Provider, error) {
	if config == nil {
		config = DefaultProviderConfig()
	}

	switch config.Provider {
	case "openai":
		return NewOpenAIProvider(config)

	case "gemini":
		return NewGeminiProvider(config)

	default:
		return nil, fmt.Errorf("unknown transcription provider: %s", config.Provider)
	}
}

// transcriptionPrompt restricts the model to the symbol inventory the parser
// accepts. Stress marks and enclosing slashes are stripped afterwards anyway.
const transcriptionPrompt = `Give the IPA transcription of the word '%s'.
Use only these symbols: vowels u ɯ ʉ ɨ y i o ɤ ɵ ɘ ø e ə ʊ ʏ ɪ æ ɑ a ʌ,
consonants n m j p b t d k g f v s z ʃ ʒ x h r l w, the length mark ː and
the palatalization mark ʲ. Respond with only the transcription, nothing else.`

// cleanTranscription strips decoration the models like to add: enclosing
// slashes or brackets and stress marks, none of which the parser accepts.
func cleanTranscription(s string) string {
	s = strings.TrimSpace(s)
	for _, decoration := range []string{"/", "[", "]", "ˈ", "ˌ"} {
		s = strings.ReplaceAll(s, decoration, "")
	}
	return strings.TrimSpace(s)
}

// BreakerProvider wraps a provider with a circuit breaker so repeated API
// failures during a batch run fail fast instead of waiting out every call
type BreakerProvider struct {
	inner   Provider
	breaker *gobreaker.CircuitBreaker
}

// NewBreakerProvider wraps a provider with a circuit breaker that opens
// after three consecutive failures
func NewBreakerProvider(inner Provider) *BreakerProvider {
	settings := gobreaker.Settings{
		Name:    inner.Name() + "-transcription",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
	}

	return &BreakerProvider{
		inner:   inner,
		breaker: gobreaker.NewCircuitBreaker(settings),
	}
}

// Transcribe delegates to the wrapped provider through the breaker
func (p *BreakerProvider) Transcribe(ctx context.Context, word string) (string, error) {
	result, err := p.breaker.Execute(func() (interface{}, error) {
		return p.inner.Transcribe(ctx, word)
	})
	if err != nil {
		return "", err
	}
	return result.(string), nil
}

// Name returns the provider name
func (p *BreakerProvider) Name() string {
	return p.inner.Name()
}

// IsAvailable checks the wrapped provider
func (p *BreakerProvider) IsAvailable() error {
	return p.inner.IsAvailable()
}
