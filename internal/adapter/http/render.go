package httpadapter

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strings"

	"post-studio/internal/adapter/usecase"
	"post-studio/internal/core/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

// view is everything the page template needs. Theme and form state are
// request-scoped and passed explicitly.
type view struct {
	Theme     Theme
	Themes    []string
	Platforms []domain.Platform
	Tones     []domain.Tone
	Lengths   []domain.Length
	Variants  []int

	Form  domain.CampaignRequest
	Error string

	Result *resultView
}

type resultView struct {
	Platform domain.Platform
	Insight  string
	Panels   []panelView
	// Payload is the base64 raw text posted back by the export form so
	// line endings survive form encoding.
	Payload string
}

type panelView struct {
	Label string
	Body  template.HTML
}

func newView(theme string, form domain.CampaignRequest) view {
	variants := make([]int, 0, domain.MaxVariants)
	for i := domain.MinVariants; i <= domain.MaxVariants; i++ {
		variants = append(variants, i)
	}
	return view{
		Theme:     themeByName(theme),
		Themes:    themeNames(),
		Platforms: domain.Platforms,
		Tones:     domain.Tones,
		Lengths:   domain.Lengths,
		Variants:  variants,
		Form:      form,
	}
}

// resultFor renders the segments of content into panels. Output without a
// variant delimiter is shown as a single unlabelled panel.
func (h *Handler) resultFor(content *domain.GeneratedContent) (*resultView, error) {
	labelled := strings.Contains(content.RawText, usecase.VariantDelimiter)

	res := &resultView{
		Platform: content.Request.Platform,
		Panels:   make([]panelView, 0, len(content.Segments)),
		Payload:  encodePayload(content.RawText),
	}
	if content.Research != nil {
		res.Insight = fmt.Sprintf("Analyzed verified social trends for %s as of %s",
			content.Request.Topic, content.GeneratedAt.Format("2006-01-02"))
	}

	for _, seg := range content.Segments {
		var buf bytes.Buffer
		if err := h.markdown.Convert([]byte(seg.Text), &buf); err != nil {
			return nil, err
		}
		p := panelView{Body: template.HTML(buf.String())}
		if labelled {
			p.Label = fmt.Sprintf("VERIFIED STRATEGY %d | %s", seg.Index, seg.CapturedAt.Format("15:04"))
		}
		res.Panels = append(res.Panels, p)
	}
	return res, nil
}

func (h *Handler) render(w http.ResponseWriter, status int, v view) {
	var buf bytes.Buffer
	if err := h.page.ExecuteTemplate(&buf, "index.html", v); err != nil {
		h.logger.Error("render page error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Error("write page error", slog.Any("error", err))
	}
}
