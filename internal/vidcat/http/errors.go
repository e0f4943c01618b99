package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/vidcat/internal/vidcat/service"
	"github.com/aussiebroadwan/vidcat/pkg/slogx"
	"github.com/aussiebroadwan/vidcat/pkg/vidsdk"
)

// writeServiceError maps a service error onto its API error. Anything not
// recognised is logged and reported as a server error.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *service.ValidationError
	if errors.As(err, &verr) {
		vidsdk.ErrValidationFailed.WithErrors(verr.Messages...).WriteError(w)
		return
	}

	switch {
	case errors.Is(err, service.ErrUnauthorized):
		vidsdk.ErrUnauthorized.WriteError(w)
	case errors.Is(err, service.ErrEmailTaken):
		vidsdk.ErrEmailTaken.WriteError(w)
	case errors.Is(err, service.ErrInvalidCredentials):
		vidsdk.ErrInvalidCredentials.WriteError(w)
	case errors.Is(err, service.ErrInvalidRefresh):
		vidsdk.ErrInvalidRefreshToken.WriteError(w)
	case errors.Is(err, service.ErrUserNotFound):
		vidsdk.ErrUserNotFound.WriteError(w)
	case errors.Is(err, service.ErrVideoNotFound):
		vidsdk.ErrVideoNotFound.WriteError(w)
	case errors.Is(err, service.ErrInvalidPlaybackToken):
		vidsdk.ErrInvalidPlaybackToken.WriteError(w)
	case errors.Is(err, service.ErrInvalidPagination),
		errors.Is(err, service.ErrVideoIDRequired),
		errors.Is(err, service.ErrInvalidProgress):
		vidsdk.ErrValidationFailed.WithErrors(err.Error()).WriteError(w)
	default:
		slogx.FromContext(r.Context()).Error("request failed", "err", err)
		vidsdk.ErrServerError.WriteError(w)
	}
}
