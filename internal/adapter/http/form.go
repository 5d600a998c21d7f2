package httpadapter

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"post-studio/internal/core/domain"
)

// handleIndex renders the empty form with default selections.
func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	form := domain.CampaignRequest{
		Platform: domain.PlatformInstagram,
		Tone:     domain.ToneViral,
	}.WithDefaults()
	h.render(w, http.StatusOK, newView(r.URL.Query().Get("theme"), form))
}

// handleGenerateForm runs a generation from the submitted form and renders
// the page with either the result panels or the error message. The form
// values are echoed back so the user can adjust and resubmit.
func (h *Handler) handleGenerateForm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	req, err := parseCampaignForm(r)
	v := newView(r.PostForm.Get("theme"), req)
	if err != nil {
		status, msg := userError(err)
		v.Error = msg
		h.render(w, status, v)
		return
	}

	content, err := h.svc.Generate(r.Context(), req)
	if err != nil {
		h.logger.Warn("generation failed", slog.Any("error", err))
		status, msg := userError(err)
		v.Error = msg
		h.render(w, status, v)
		return
	}

	if v.Result, err = h.resultFor(content); err != nil {
		h.logger.Error("render markdown error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.render(w, http.StatusOK, v)
}

// parseCampaignForm builds a request from form fields. The returned request
// is usable for echoing the form even when an error is returned.
func parseCampaignForm(r *http.Request) (domain.CampaignRequest, error) {
	req := domain.CampaignRequest{
		Topic:      r.PostForm.Get("topic"),
		Platform:   domain.Platform(r.PostForm.Get("platform")),
		Tone:       domain.Tone(r.PostForm.Get("tone")),
		Length:     domain.Length(r.PostForm.Get("length")),
		LiveSearch: r.PostForm.Get("live_search") == "on",
	}
	if s := r.PostForm.Get("variants"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return req.WithDefaults(), &domain.ValidationError{
				Field: "variant_count",
				Err:   fmt.Errorf("invalid number %q", s),
			}
		}
		req.VariantCount = n
	}
	return req.WithDefaults(), nil
}
