package debate

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/saulo-duarte/debate-friend/internal/config"
)

// MaxRequestBytes caps the JSON body, and with it the size of the prompt.
const MaxRequestBytes = 64 << 10

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) Dispatch(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, MaxRequestBytes)

	// An empty body is a request without an action, not a malformed one.
	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		log.WithError(err).Warn("Invalid request body")
		config.Error(w, http.StatusBadRequest, MsgInvalidRequestBody)
		return
	}

	result, err := h.service.Dispatch(r.Context(), req)
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			config.Error(w, http.StatusBadRequest, verr.Error())
			return
		}
		log.WithError(err).Errorf("Failed to dispatch %q", req.Action)
		config.Error(w, http.StatusInternalServerError, MsgInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, Response{Result: result})
}

func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Allow", http.MethodPost)
	config.Error(w, http.StatusMethodNotAllowed, MsgMethodNotAllowed)
}
