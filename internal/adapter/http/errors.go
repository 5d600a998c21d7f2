package httpadapter

import (
	"errors"
	"net/http"

	"post-studio/internal/core/domain"
)

// userError maps a generation error to a status code and the message shown
// to the user. Provider messages are passed through verbatim.
func userError(err error) (int, string) {
	var (
		verr *domain.ValidationError
		cerr *domain.ConfigurationError
		perr *domain.ProviderError
	)
	switch {
	case errors.Is(err, domain.ErrEmptyTopic):
		return http.StatusBadRequest, "Briefing is required for generation."
	case errors.As(err, &verr):
		return http.StatusBadRequest, verr.Error()
	case errors.Is(err, domain.ErrMissingAPIKey):
		return http.StatusServiceUnavailable, "API configuration missing."
	case errors.As(err, &cerr):
		return http.StatusInternalServerError, cerr.Error()
	case errors.As(err, &perr):
		return http.StatusBadGateway, "Operational Error: " + perr.Error()
	default:
		return http.StatusInternalServerError, "Operational Error: " + err.Error()
	}
}
