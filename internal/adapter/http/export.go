package httpadapter

import (
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"mime"
	"net/http"
	"regexp"
)

// exportSuffix completes the download name "{platform}_campaign.txt".
const exportSuffix = "_campaign.txt"

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9._-]`)

// exportFilename returns the attachment name for platform. Characters that
// could split the name into path components are replaced with '_'.
func exportFilename(platform string) string {
	return unsafeFilenameChars.ReplaceAllString(platform, "_") + exportSuffix
}

func encodePayload(raw string) string {
	return base64.URLEncoding.EncodeToString([]byte(raw))
}

// handleExport serves the raw model output posted back by the result page.
// The body is exactly the unsegmented text.
func (h *Handler) handleExport(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	platform := r.PostForm.Get("platform")
	if platform == "" {
		http.Error(w, "missing platform", http.StatusBadRequest)
		return
	}
	raw, err := base64.URLEncoding.DecodeString(r.PostForm.Get("payload"))
	if err != nil {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}
	h.writeAttachment(w, platform, raw)
}

type exportRequest struct {
	Platform string `json:"platform"`
	RawText  string `json:"raw_text"`
}

// handleExportAPI is the JSON counterpart of handleExport.
func (h *Handler) handleExportAPI(w http.ResponseWriter, r *http.Request) {
	var req exportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if req.Platform == "" {
		http.Error(w, "missing platform", http.StatusBadRequest)
		return
	}
	h.writeAttachment(w, req.Platform, []byte(req.RawText))
}

func (h *Handler) writeAttachment(w http.ResponseWriter, platform string, body []byte) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition",
		mime.FormatMediaType("attachment", map[string]string{"filename": exportFilename(platform)}))
	if _, err := w.Write(body); err != nil {
		h.logger.Error("write export error", slog.Any("error", err))
	}
}
