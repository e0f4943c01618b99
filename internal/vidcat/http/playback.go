package http

import (
	"net/http"
	"strings"

	"github.com/aussiebroadwan/vidcat/internal/vidcat/service"
	"github.com/aussiebroadwan/vidcat/pkg/httpx"
	"github.com/aussiebroadwan/vidcat/pkg/vidsdk"
)

type PlaybackHandler struct {
	PlaybackService *service.PlaybackService
}

// HandleStream godoc
//
//	@Summary		Request Playback
//	@Description	Issue a short-lived playback token for an active video. The returned
//	@Description	stream_endpoint can be redeemed by anyone holding it until expires_at.
//	@Tags			Playback
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string	true	"video id"
//	@Success		200	{object}	httpx.Envelope{data=vidsdk.StreamResponse}
//	@Failure		401	{object}	httpx.Envelope	"unauthorized"
//	@Failure		404	{object}	httpx.Envelope	"video_not_found"
//	@Router			/api/video/{id}/stream [get].
func (h *PlaybackHandler) HandleStream(w http.ResponseWriter, r *http.Request) {
	grant, err := h.PlaybackService.RequestPlayback(r.Context(), r.PathValue("id"), httpx.UserIDFromContext(r.Context()))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteData(w, http.StatusOK, "", vidsdk.StreamResponse{
		VideoID:        grant.VideoID,
		PlaybackToken:  grant.Token,
		StreamEndpoint: grant.StreamEndpoint,
		ExpiresAt:      grant.ExpiresAt,
	})
}

// HandlePlay godoc
//
//	@Summary		Redeem Playback Token
//	@Description	Resolve a playback token to the embed destination. No bearer token is
//	@Description	needed; every token problem yields the same invalid_playback_token error.
//	@Tags			Playback
//	@Produce		json
//	@Param			token	query		string	true	"playback token"
//	@Success		200		{object}	httpx.Envelope{data=vidsdk.PlayResponse}
//	@Failure		400		{object}	httpx.Envelope	"missing_playback_token or invalid_playback_token"
//	@Failure		404		{object}	httpx.Envelope	"video_not_found"
//	@Router			/api/video/play [get].
func (h *PlaybackHandler) HandlePlay(w http.ResponseWriter, r *http.Request) {
	token := strings.TrimSpace(r.URL.Query().Get("token"))
	if token == "" {
		vidsdk.ErrMissingPlaybackToken.WriteError(w)
		return
	}

	dest, err := h.PlaybackService.RedeemPlayback(r.Context(), token)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteData(w, http.StatusOK, "", vidsdk.PlayResponse{
		EmbedURL: dest.EmbedURL,
		Title:    dest.Title,
	})
}
