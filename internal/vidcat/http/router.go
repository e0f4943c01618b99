package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/vidcat/internal/vidcat/metrics"
	"github.com/aussiebroadwan/vidcat/internal/vidcat/service"
	"github.com/aussiebroadwan/vidcat/internal/vidcat/store"
	"github.com/aussiebroadwan/vidcat/pkg/httpx"
	"github.com/aussiebroadwan/vidcat/pkg/jwtx"
	"github.com/aussiebroadwan/vidcat/pkg/slogx"

	_ "github.com/aussiebroadwan/vidcat/api/vidcat" // Swagger docs
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	store        store.Store

	AuthService     *service.AuthService
	CatalogService  *service.CatalogService
	ProgressService *service.ProgressService
	PlaybackService *service.PlaybackService
	SeedService     *service.SeedService

	// SeedToken, when set, must be presented in X-Seed-Token to seed.
	SeedToken string

	// MetricsEnabled exposes /metrics.
	MetricsEnabled bool
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
	corsOrigins []string,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// metrics.HTTPMiddleware reads the matched pattern, so it stays last.
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.CORS(corsOrigins...),
		metrics.HTTPMiddleware,
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerVideos()
	r.registerPlayback()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
	if r.MetricsEnabled {
		r.Mux.Handle("GET /metrics", promhttp.Handler())
	}
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			vidcat Video Catalog API
//	@version		1.0.5
//	@description	Curated video catalog. Signed-in viewers browse active videos and request
//	@description	short-lived playback tokens; a playback token alone is redeemed for the
//	@description	embed destination, so the provider id never appears in catalog responses.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/vidcat
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				HS256 JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	h := &AuthHandler{AuthService: r.AuthService}

	// Credential endpoints - strict rate limit by IP (brute force)
	r.Mux.Handle("POST /api/auth/signup",
		httpx.Chain(http.HandlerFunc(h.HandleSignup),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /api/auth/login",
		httpx.Chain(http.HandlerFunc(h.HandleLogin),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /api/auth/refresh",
		httpx.Chain(http.HandlerFunc(h.HandleRefresh),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	r.Mux.Handle("GET /api/auth/me",
		httpx.Chain(http.HandlerFunc(h.HandleMe),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireAnyScope(jwtx.ScopeProfileRead),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("POST /api/auth/logout",
		httpx.Chain(http.HandlerFunc(h.HandleLogout),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerVideos() {
	h := &VideoHandler{
		CatalogService:  r.CatalogService,
		ProgressService: r.ProgressService,
		SeedService:     r.SeedService,
		SeedToken:       r.SeedToken,
	}

	r.Mux.Handle("GET /api/video/dashboard",
		httpx.Chain(http.HandlerFunc(h.HandleDashboard),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireAnyScope(jwtx.ScopeVideoRead),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)

	// Players report progress every few seconds.
	r.Mux.Handle("POST /api/video/track",
		httpx.Chain(http.HandlerFunc(h.HandleTrack),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireAnyScope(jwtx.ScopeVideoWrite),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)

	r.Mux.Handle("POST /api/video/seed",
		httpx.Chain(http.HandlerFunc(h.HandleSeed),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerPlayback() {
	h := &PlaybackHandler{PlaybackService: r.PlaybackService}

	r.Mux.Handle("GET /api/video/{id}/stream",
		httpx.Chain(http.HandlerFunc(h.HandleStream),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireAnyScope(jwtx.ScopeVideoRead),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	// The token is the credential, so redemption is limited per IP.
	r.Mux.Handle("GET /api/video/play",
		httpx.Chain(http.HandlerFunc(h.HandlePlay),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /{$}", RootHandler(r.buildVersion))
	r.Mux.Handle("GET /api/health",
		httpx.Chain(HealthHandler(r.buildVersion),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)

	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
