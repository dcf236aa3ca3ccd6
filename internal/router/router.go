package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/saulo-duarte/debate-friend/internal/debate"
	"github.com/saulo-duarte/debate-friend/internal/middlewares"
)

type RouterConfig struct {
	DebateHandler *debate.Handler
	AllowedOrigin string
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middlewares.RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.Cors(cfg.AllowedOrigin))

	r.MethodNotAllowed(cfg.DebateHandler.MethodNotAllowed)

	r.Mount("/api/generate-debate", debate.Routes(cfg.DebateHandler))
	return r
}
