package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"post-studio/internal/core/domain"
)

type errorResponse struct {
	Error string `json:"error"`
}

// handleGenerateAPI runs a generation from a JSON domain.CampaignRequest
// and writes the domain.GeneratedContent as JSON. Omitted length and
// variant count take the form defaults. Validation errors produce HTTP 400,
// a missing credential HTTP 503 and provider failures HTTP 502.
func (h *Handler) handleGenerateAPI(w http.ResponseWriter, r *http.Request) {
	var req domain.CampaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	content, err := h.svc.Generate(r.Context(), req.WithDefaults())
	if err != nil {
		h.logger.Warn("generation failed", slog.Any("error", err))
		status, msg := userError(err)
		h.writeJSON(w, status, errorResponse{Error: msg})
		return
	}
	h.writeJSON(w, http.StatusOK, content)
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
