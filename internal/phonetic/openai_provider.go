package phonetic

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"
)

// OpenAIProvider implements Provider using OpenAI chat completions
type OpenAIProvider struct {
	client *openai.Client
	config *Config
}

// NewOpenAIProvider creates a new OpenAI transcription provider
func NewOpenAIProvider(config *Config) (Provider, error) {
	if config.OpenAIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}

	return &OpenAIProvider{
		client: openai.NewClient(config.OpenAIKey),
		config: config,
	}, nil
}

// Transcribe asks the chat model for the IPA transcription of a word
func (p *OpenAIProvider) Transcribe(ctx context.Context, word string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: p.config.OpenAIModel,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You are a phonetics expert producing IPA transcriptions.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: fmt.Sprintf(transcriptionPrompt, word),
			},
		},
		Temperature: 0.2,
		MaxTokens:   100,
	}

	resp, err := p.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("no transcription returned")
	}

	return cleanTranscription(resp.Choices[0].Message.Content), nil
}

// Name returns the provider name
func (p *OpenAIProvider) Name() string {
	return "openai"
}

// IsAvailable checks if the OpenAI API is accessible
func (p *OpenAIProvider) IsAvailable() error {
	if p.config.OpenAIKey == "" {
		return fmt.Errorf("OpenAI API key not configured")
	}

	// We could make a test API call here, but that would use credits
	// For now, just check that we have a key
	return nil
}
