// Local web surface for the vault: the rescue page the QR code points
// at, plus a JSON API over the same data the CLI works with.
//
// GET    /rescue                   # Emergency card page (public)
// GET    /api/v1/health            # Liveness
// GET    /api/v1/profile           # Registered profile
// PUT    /api/v1/profile           # Register / replace profile
// DELETE /api/v1/profile           # Wipe profile and timeline
// GET    /api/v1/timeline          # List events (filter/search/sort)
// POST   /api/v1/timeline          # Add event
// PUT    /api/v1/timeline/{id}     # Update event
// DELETE /api/v1/timeline/{id}     # Delete event
// GET    /api/v1/advisory/insight  # Responder bullets
// GET    /api/v1/advisory/summary  # Timeline snapshot
// GET    /api/v1/settings/theme    # Stored theme
// PUT    /api/v1/settings/theme    # Store theme

package api

import (
	advisoryAPI "github.com/SriNikhita22/biosync-carechain/internal/app/web/api/http/advisory"
	healthAPI "github.com/SriNikhita22/biosync-carechain/internal/app/web/api/http/health"
	"github.com/SriNikhita22/biosync-carechain/internal/app/web/api/http/middleware"
	"github.com/SriNikhita22/biosync-carechain/internal/app/web/api/http/middleware/logger"
	profileAPI "github.com/SriNikhita22/biosync-carechain/internal/app/web/api/http/profile"
	settingsAPI "github.com/SriNikhita22/biosync-carechain/internal/app/web/api/http/settings"
	timelineAPI "github.com/SriNikhita22/biosync-carechain/internal/app/web/api/http/timeline"
	"github.com/SriNikhita22/biosync-carechain/internal/app/web/rescue"
	"github.com/SriNikhita22/biosync-carechain/internal/domain/advisory"
	"github.com/SriNikhita22/biosync-carechain/internal/domain/profile"
	"github.com/SriNikhita22/biosync-carechain/internal/domain/timeline"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"
)

// Services holds the domain services the web surface exposes.
type Services struct {
	Profile  *profile.Service
	Timeline *timeline.Store
	Advisory *advisory.Service
	Settings settingsAPI.Store
}

type Handlers struct {
	Health   *healthAPI.Handler
	Profile  *profileAPI.Handler
	Timeline *timelineAPI.Handler
	Advisory *advisoryAPI.Handler
	Settings *settingsAPI.Handler
}

// New builds a *chi.Mux with all operations registered through
// huma.Register, plus the plain HTML rescue route.
func New(services Services, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()
	mux.Get("/rescue", rescue.NewHandler(log).ServeHTTP)

	config := huma.DefaultConfig("BioSync CareChain API", healthAPI.Version)
	API := humachi.New(mux, config)

	h := handlers(services, log)
	h.Health.SetupRoutes(API)
	h.Profile.SetupRoutes(API)
	h.Timeline.SetupRoutes(API)
	h.Advisory.SetupRoutes(API)
	h.Settings.SetupRoutes(API)

	return mux
}

func handlers(services Services, log *slog.Logger) *Handlers {
	loggerMW := logger.New(log)
	middlewares := middleware.NewContainer()

	middlewares.Add(loggerMW.Middleware())
	healthHandler := healthAPI.NewHandler(services.Timeline, log, middlewares.GetAllAndClear())

	middlewares.Add(loggerMW.Middleware())
	profileHandler := profileAPI.NewHandler(services.Profile, log, middlewares.GetAllAndClear())

	middlewares.Add(loggerMW.Middleware())
	timelineHandler := timelineAPI.NewHandler(services.Timeline, log, middlewares.GetAllAndClear())

	middlewares.Add(loggerMW.Middleware())
	advisoryHandler := advisoryAPI.NewHandler(services.Advisory, services.Profile, services.Timeline, log, middlewares.GetAllAndClear())

	middlewares.Add(loggerMW.Middleware())
	settingsHandler := settingsAPI.NewHandler(services.Settings, log, middlewares.GetAllAndClear())

	return &Handlers{
		Health:   healthHandler,
		Profile:  profileHandler,
		Timeline: timelineHandler,
		Advisory: advisoryHandler,
		Settings: settingsHandler,
	}
}
