package container

import (
	"context"
	"fmt"

	"github.com/saulo-duarte/debate-friend/internal/config"
	"github.com/saulo-duarte/debate-friend/internal/debate"
)

type Container struct {
	Config          *config.Config
	DebateContainer *debate.DebateContainer
}

func New(ctx context.Context) (*Container, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	config.InitLogger(cfg.LogLevel)

	provider, err := debate.NewGeminiProvider(ctx, cfg.GeminiAPIKey, cfg.Generation)
	if err != nil {
		return nil, err
	}

	return &Container{
		Config:          cfg,
		DebateContainer: debate.NewDebateContainer(provider),
	}, nil
}
