package debate

import (
	"context"
	"fmt"

	"github.com/saulo-duarte/debate-friend/internal/config"
)

type Service interface {
	Dispatch(ctx context.Context, req Request) (string, error)
}

type service struct {
	provider Provider
}

func NewService(provider Provider) Service {
	return &service{provider: provider}
}

// Dispatch validates req, builds its prompt and returns the provider's
// completion unmodified. Validation failures never reach the provider.
func (s *service) Dispatch(ctx context.Context, req Request) (string, error) {
	log := config.WithContext(ctx).WithField("action", req.Action)

	prompt, err := BuildPrompt(req)
	if err != nil {
		log.WithError(err).Warn("Rejected debate request")
		return "", err
	}
	log.Debugf("[DEBATE] prompt:\n%s", prompt)

	result, err := s.provider.Generate(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}

	log.Info("Debate completion generated")
	return result, nil
}
