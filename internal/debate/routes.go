package debate

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.MethodNotAllowed(h.MethodNotAllowed)
	r.Post("/", h.Dispatch)
	return r
}
