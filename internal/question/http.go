package question

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	httperrors "github.com/quizzfoot/platform/pkg/http/errors"
)

// HTTPHandler exposes sanitized question packs over REST. Answers and
// explanations never leave the process through this endpoint.
type HTTPHandler struct {
	svc    *Service
	logger zerolog.Logger
}

func NewHTTPHandler(svc *Service, logger zerolog.Logger) *HTTPHandler {
	return &HTTPHandler{
		svc:    svc,
		logger: logger.With().Str("component", "question_http").Logger(),
	}
}

// HandleGetPack serves GET /v1/questions?category=&count=&daily=true.
func (h *HTTPHandler) HandleGetPack(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httperrors.RespondError(w, http.StatusMethodNotAllowed, httperrors.ErrCodeInvalidRequest, "method not allowed")
		return
	}

	req := PackRequest{Category: r.URL.Query().Get("category")}
	if raw := r.URL.Query().Get("count"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 || parsed > 50 {
			httperrors.RespondValidationError(w, httperrors.ErrCodeValidationFailed, "count must be between 1 and 50", "count")
			return
		}
		req.Count = parsed
	}
	if r.URL.Query().Get("daily") == "true" {
		req.DayID = time.Now().UTC().Format("2006-01-02")
	}

	pack, err := h.svc.FetchPack(r.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInsufficientPool) {
			httperrors.RespondError(w, http.StatusConflict, httperrors.ErrCodeInsufficientPool, "not enough questions for this category")
			return
		}
		h.logger.Error().Err(err).Str("category", req.Category).Msg("fetch pack")
		httperrors.RespondError(w, http.StatusInternalServerError, httperrors.ErrCodePackFetchFailed, "failed to fetch question pack")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(PackResponse{
		Questions: Sanitize(pack.Questions),
		DayID:     pack.DayID,
	})
}
