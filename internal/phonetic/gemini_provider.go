package phonetic

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// GeminiProvider implements Provider using the Gemini API
type GeminiProvider struct {
	config *Config
}

// NewGeminiProvider creates a new Gemini transcription provider
func NewGeminiProvider(config *Config) (Provider, error) {
	if config.GeminiKey == "" {
		return nil, fmt.Errorf("Gemini API key is required")
	}

	return &GeminiProvider{config: config}, nil
}

// Transcribe asks the Gemini model for the IPA transcription of a word
func (p *GeminiProvider) Transcribe(ctx context.Context, word string) (string, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  p.config.GeminiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create Gemini client: %w", err)
	}

	resp, err := client.Models.GenerateContent(
		ctx,
		p.config.GeminiModel,
		genai.Text(fmt.Sprintf(transcriptionPrompt, word)),
		nil,
	)
	if err != nil {
		return "", fmt.Errorf("Gemini API error: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("no transcription returned")
	}

	return cleanTranscription(text), nil
}

// Name returns the provider name
func (p *GeminiProvider) Name() string {
	return "gemini"
}

// IsAvailable checks if the Gemini API is accessible
func (p *GeminiProvider) IsAvailable() error {
	if p.config.GeminiKey == "" {
		return fmt.Errorf("Gemini API key not configured")
	}
	return nil
}
