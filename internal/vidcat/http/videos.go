package http

import (
	"crypto/subtle"
	"fmt"
	"net/http"

	"github.com/aussiebroadwan/vidcat/internal/vidcat/service"
	"github.com/aussiebroadwan/vidcat/pkg/httpx"
	"github.com/aussiebroadwan/vidcat/pkg/vidsdk"
)

type VideoHandler struct {
	CatalogService  *service.CatalogService
	ProgressService *service.ProgressService
	SeedService     *service.SeedService

	// SeedToken, when non-empty, guards HandleSeed.
	SeedToken string
}

// HandleDashboard godoc
//
//	@Summary		List Videos
//	@Description	One page of active videos, oldest first. Provider ids are never included.
//	@Tags			Videos
//	@Produce		json
//	@Security		BearerAuth
//	@Param			page	query		int	false	"page number (default 1)"
//	@Param			limit	query		int	false	"page size, 1-100 (default 10)"
//	@Success		200		{object}	httpx.Envelope{data=vidsdk.DashboardResponse}
//	@Failure		400		{object}	httpx.Envelope	"validation_failed"
//	@Failure		401		{object}	httpx.Envelope	"unauthorized"
//	@Router			/api/video/dashboard [get].
func (h *VideoHandler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, err := service.ParsePagination(q.Get("page"), q.Get("limit"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	videos, pg, err := h.CatalogService.ListActive(r.Context(), page)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := vidsdk.DashboardResponse{
		Videos: make([]vidsdk.Video, 0, len(videos)),
		Pagination: vidsdk.Pagination{
			Page:  pg.Page,
			Limit: pg.Limit,
			Total: pg.Total,
			Pages: pg.Pages,
		},
	}
	for _, v := range videos {
		out.Videos = append(out.Videos, toVideo(v))
	}

	httpx.WriteData(w, http.StatusOK, "", out)
}

// HandleTrack godoc
//
//	@Summary		Track Progress
//	@Description	Record the caller's position in a video, replacing any earlier report.
//	@Tags			Videos
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			body	body		vidsdk.TrackRequest	true	"video_id, progress_seconds"
//	@Success		200		{object}	httpx.Envelope
//	@Failure		400		{object}	httpx.Envelope	"validation_failed"
//	@Failure		404		{object}	httpx.Envelope	"video_not_found"
//	@Router			/api/video/track [post].
func (h *VideoHandler) HandleTrack(w http.ResponseWriter, r *http.Request) {
	var req vidsdk.TrackRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		vidsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	userID := httpx.UserIDFromContext(r.Context())
	if _, err := h.ProgressService.Track(r.Context(), userID, req.VideoID, int64(req.ProgressSeconds)); err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteData(w, http.StatusOK, "Progress tracked", nil)
}

// HandleSeed godoc
//
//	@Summary		Seed Catalog
//	@Description	Insert the sample videos that are not in the catalog yet. Requires X-Seed-Token when the server has one configured.
//	@Tags			Videos
//	@Produce		json
//	@Param			X-Seed-Token	header		string	false	"seed token"
//	@Success		201				{object}	httpx.Envelope{data=vidsdk.SeedResponse}
//	@Failure		403				{object}	httpx.Envelope	"seed token missing or wrong"
//	@Router			/api/video/seed [post].
func (h *VideoHandler) HandleSeed(w http.ResponseWriter, r *http.Request) {
	if h.SeedToken != "" {
		got := r.Header.Get(vidsdk.SeedTokenHeader)
		if subtle.ConstantTimeCompare([]byte(got), []byte(h.SeedToken)) != 1 {
			vidsdk.ErrSeedForbidden.WriteError(w)
			return
		}
	}

	n, err := h.SeedService.Seed(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteData(w, http.StatusCreated, fmt.Sprintf("Seeded %d new videos", n), vidsdk.SeedResponse{InsertedCount: n})
}
