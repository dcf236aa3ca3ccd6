package debate

import (
	"context"
	"errors"
	"fmt"

	"github.com/saulo-duarte/debate-friend/internal/config"
	"google.golang.org/genai"
)

// Provider turns one prompt into one text completion.
type Provider interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type geminiProvider struct {
	client      *genai.Client
	model       string
	temperature float32
}

func NewGeminiProvider(ctx context.Context, apiKey string, gen config.Generation) (Provider, error) {
	if apiKey == "" {
		return nil, errors.New("gemini api key is empty")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      apiKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{BaseURL: gen.BaseURL},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &geminiProvider{
		client:      client,
		model:       gen.Model,
		temperature: gen.Temperature,
	}, nil
}

func (p *geminiProvider) Generate(ctx context.Context, prompt string) (string, error) {
	log := config.WithContext(ctx).WithField("model", p.model)

	temperature := p.temperature
	result, err := p.client.Models.GenerateContent(
		ctx,
		p.model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{Temperature: &temperature},
	)
	if err != nil {
		log.WithError(err).Error("Gemini GenerateContent failed")
		return "", fmt.Errorf("failed to generate content: %w", err)
	}
	if len(result.Candidates) == 0 {
		return "", errors.New("gemini returned no candidates")
	}

	text := result.Text()
	log.Debugf("[DEBATE] raw completion (%d bytes)", len(text))
	return text, nil
}
