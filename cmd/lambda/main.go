package main

import (
	"context"
	"log"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"

	"github.com/saulo-duarte/debate-friend/internal/container"
	"github.com/saulo-duarte/debate-friend/internal/router"
)

func main() {
	c, err := container.New(context.Background())
	if err != nil {
		log.Fatalf("failed to build container: %v", err)
	}

	handler := router.New(router.RouterConfig{
		DebateHandler: c.DebateContainer.Handler,
		AllowedOrigin: c.Config.AllowedOrigin,
	})

	lambda.Start(httpadapter.New(handler).ProxyWithContext)
}
