package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/aussiebroadwan/vidcat/internal/vidcat/store"
	"github.com/aussiebroadwan/vidcat/pkg/httpx"
	"github.com/aussiebroadwan/vidcat/pkg/vidsdk"
)

// RootHandler godoc
//
//	@Summary		Liveness Banner
//	@Tags			Health
//	@Produce		plain
//	@Success		200	{string}	string	"Backend is Live - Version x"
//	@Router			/ [get].
func RootHandler(version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		fmt.Fprintf(w, "Backend is Live - Version %s", version)
	}
}

// HealthHandler godoc
//
//	@Summary		API Health
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	vidsdk.HealthResponse
//	@Router			/api/health [get].
func HealthHandler(version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, vidsdk.HealthResponse{
			Status:  "healthy",
			Message: "API is running",
			Version: version,
		})
	}
}

// LivezHandler godoc
//
//	@Summary		Health Check Endpoint
//	@Description	Liveness probe endpoint returning basic service health status, uptime, and version information
//	@Description	This endpoint always returns 200 OK if the service is running
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	vidsdk.ProbeResponse	"status, uptime, version"
//	@Router			/livez [get].
func LivezHandler(startTime time.Time, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, vidsdk.ProbeResponse{
			Status:  "ok",
			Uptime:  time.Since(startTime).String(),
			Version: version,
		})
	}
}

// ReadyzHandler godoc
//
//	@Summary		Readiness Check Endpoint
//	@Description	Readiness probe endpoint; fails while the database is unreachable
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	vidsdk.ProbeResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	vidsdk.ProbeResponse	"status, uptime, version, checks - service not ready"
//	@Router			/readyz [get].
func ReadyzHandler(startTime time.Time, version string, st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &vidsdk.ProbeChecks{Database: "ok"}
		status, code := "ok", http.StatusOK

		if err := st.Ping(r.Context()); err != nil {
			checks.Database = "error: " + err.Error()
			status, code = "degraded", http.StatusServiceUnavailable
		}

		httpx.WriteJSON(w, code, vidsdk.ProbeResponse{
			Status:  status,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		})
	}
}
