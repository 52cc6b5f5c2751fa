package profile

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/quizzfoot/platform/internal/auth"
	"github.com/quizzfoot/platform/internal/scoring"
	httperrors "github.com/quizzfoot/platform/pkg/http/errors"
)

// HTTPHandler exposes REST endpoints for player profiles.
type HTTPHandler struct {
	svc    *Service
	logger zerolog.Logger
}

func NewHTTPHandler(svc *Service, logger zerolog.Logger) *HTTPHandler {
	return &HTTPHandler{
		svc:    svc,
		logger: logger.With().Str("component", "profile_http").Logger(),
	}
}

// HandleGet serves GET /v1/profile for the authenticated user.
func (h *HTTPHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httperrors.RespondError(w, http.StatusMethodNotAllowed, httperrors.ErrCodeInvalidRequest, "method not allowed")
		return
	}
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		httperrors.RespondUnauthorized(w, httperrors.ErrCodeAuthenticationRequired, "authentication required")
		return
	}

	p, err := h.svc.Get(r.Context(), claims.UserID())
	if errors.Is(err, ErrNotFound) {
		httperrors.RespondNotFound(w, httperrors.ErrCodeNotFound, "profile not found")
		return
	}
	if err != nil {
		h.logger.Error().Err(err).Str("user_id", claims.UserID()).Msg("fetch profile")
		httperrors.RespondError(w, http.StatusInternalServerError, httperrors.ErrCodeProfileFetchFailed, "failed to fetch profile")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(p)
}

// HandleHistory serves GET /v1/profile/history?limit=20.
func (h *HTTPHandler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httperrors.RespondError(w, http.StatusMethodNotAllowed, httperrors.ErrCodeInvalidRequest, "method not allowed")
		return
	}
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		httperrors.RespondUnauthorized(w, httperrors.ErrCodeAuthenticationRequired, "authentication required")
		return
	}

	limit := int32(0)
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 && parsed <= 100 {
			limit = int32(parsed)
		}
	}

	attempts, err := h.svc.History(r.Context(), claims.UserID(), limit)
	if err != nil {
		h.logger.Error().Err(err).Str("user_id", claims.UserID()).Msg("fetch history")
		httperrors.RespondError(w, http.StatusInternalServerError, httperrors.ErrCodeProfileFetchFailed, "failed to fetch history")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"attempts": attempts,
	})
}

// HandleBadges serves GET /v1/badges, the static badge catalog.
func (h *HTTPHandler) HandleBadges(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httperrors.RespondError(w, http.StatusMethodNotAllowed, httperrors.ErrCodeInvalidRequest, "method not allowed")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"badges": scoring.Badges,
	})
}
