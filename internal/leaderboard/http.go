package leaderboard

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	httperrors "github.com/quizzfoot/platform/pkg/http/errors"
)

// HTTPHandler exposes REST endpoints for ranking queries.
type HTTPHandler struct {
	svc    *Service
	logger zerolog.Logger
}

func NewHTTPHandler(svc *Service, logger zerolog.Logger) *HTTPHandler {
	return &HTTPHandler{
		svc:    svc,
		logger: logger.With().Str("component", "leaderboard_http").Logger(),
	}
}

// HandleGet serves GET /v1/leaderboards/{window}?limit=10.
func (h *HTTPHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httperrors.RespondError(w, http.StatusMethodNotAllowed, httperrors.ErrCodeInvalidRequest, "method not allowed")
		return
	}

	window := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/v1/leaderboards/"), "/")
	if window == "" {
		window = WindowAllTime
	}
	if !ValidWindow(window) {
		httperrors.RespondNotFound(w, httperrors.ErrCodeUnknownWindow, "unknown ranking window")
		return
	}

	limit := 10
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 && parsed <= 100 {
			limit = parsed
		}
	}

	entries, err := h.svc.Top(r.Context(), window, limit)
	if err != nil {
		h.logger.Error().Err(err).Str("window", window).Msg("fetch rankings")
		httperrors.RespondInternalError(w, "failed to fetch rankings")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"window":  window,
		"entries": entries,
	})
}
