package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"compound-interest/domain"
	"compound-interest/service"
)

type CompoundInterestHandler struct {
	service *service.ProjectionService
	log     zerolog.Logger
}

func NewCompoundInterestHandler(service *service.ProjectionService, log zerolog.Logger) *CompoundInterestHandler {
	return &CompoundInterestHandler{
		service: service,
		log:     log.With().Str("handler", "compound_interest").Logger(),
	}
}

// Calculate handles POST /compound-interests. Fields missing from the body
// take their request defaults.
func (h *CompoundInterestHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	params := domain.DefaultRequestParams()
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		h.log.Debug().Err(err).Str("request_id", middleware.GetReqID(r.Context())).Msg("Rejected request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	investment, err := params.Investment()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	summary, err := h.service.Project(r.Context(), investment)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, domain.ErrInvalidInput) {
			status = http.StatusBadRequest
		}
		http.Error(w, err.Error(), status)
		return
	}

	// Encode into a buffer first so a failure can still change the status.
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(summary); err != nil {
		h.log.Error().Err(err).Msg("Error encoding response")
		http.Error(w, domain.ErrSerialization.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if _, err := buf.WriteTo(w); err != nil {
		h.log.Warn().Err(err).Msg("Error writing response")
	}
}

// Health handles GET /health.
func Health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}` + "\n"))
}
