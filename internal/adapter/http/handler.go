package httpadapter

import (
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"post-studio/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// It holds a use case to execute business logic, a logger for structured
// logging, the page template and the Markdown renderer used for result
// panels. Routes are registered on a chi.Router.
type Handler struct {
	svc      port.CampaignUseCase
	logger   *slog.Logger
	router   chi.Router
	page     *template.Template
	markdown goldmark.Markdown
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc port.CampaignUseCase, logger *slog.Logger) *Handler {
	h := &Handler{
		svc:      svc,
		logger:   logger,
		page:     template.Must(template.ParseFS(templateFS, "templates/index.html")),
		markdown: goldmark.New(goldmark.WithExtensions(extension.GFM)),
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(h.logRequests)

	r.Get("/", h.handleIndex)
	r.Post("/", h.handleGenerateForm)
	r.Post("/export", h.handleExport)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/campaigns/generate", h.handleGenerateAPI)
		r.Post("/campaigns/export", h.handleExportAPI)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		h.logger.Info("http request",
			slog.String("request_id", middleware.GetReqID(r.Context())),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			slog.Duration("duration", time.Since(start)),
		)
	})
}
