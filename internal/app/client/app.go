// Package client wires the vault together: local SQLite persistence,
// the timeline store, the profile service and the advisory surface.
package client

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/exp/slog"

	"github.com/SriNikhita22/biosync-carechain/internal/app/client/config"
	"github.com/SriNikhita22/biosync-carechain/internal/app/web/api"
	"github.com/SriNikhita22/biosync-carechain/internal/domain/advisory"
	"github.com/SriNikhita22/biosync-carechain/internal/domain/profile"
	"github.com/SriNikhita22/biosync-carechain/internal/domain/timeline"
	"github.com/SriNikhita22/biosync-carechain/internal/genai"
	"github.com/SriNikhita22/biosync-carechain/internal/infrastructure/migration"
	"github.com/SriNikhita22/biosync-carechain/internal/infrastructure/storage/sqlite"
)

type App struct {
	Config   *config.Config
	Log      *slog.Logger
	Profile  *profile.Service
	Timeline *timeline.Store
	Advisory *advisory.Service
	Settings *sqlite.SettingsRepository

	storage *sqlite.Storage
}

func New(cfg *config.Config, log *slog.Logger) (*App, error) {
	mg := migration.NewMigration("sqlite3://"+cfg.DataPath, migration.DefaultEngine)
	if err := mg.Up(); err != nil {
		return nil, fmt.Errorf("apply migrations: %w", err)
	}

	storage, err := sqlite.New(cfg.DataPath)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}

	timelineStore := timeline.NewStore(sqlite.NewTimelineRepository(storage, log), log)
	timelineStore.Load(context.Background())
	timelineStore.Subscribe(func(events []timeline.Event) {
		log.Debug("timeline changed", "events", len(events))
	})

	profileService := profile.NewService(sqlite.NewProfileRepository(storage), log)

	generator := genai.NewClient(cfg.AdvisoryURL, cfg.AdvisoryModel, cfg.AdvisoryAPIKey, log)
	retry := advisory.NewRetryPolicy(cfg.MaxRetries, time.Duration(cfg.RetryDelayMS)*time.Millisecond)
	advisoryService := advisory.NewService(generator, advisory.NewCache(cfg.AdvisoryCache), retry, log)

	return &App{
		Config:   cfg,
		Log:      log,
		Profile:  profileService,
		Timeline: timelineStore,
		Advisory: advisoryService,
		Settings: sqlite.NewSettingsRepository(storage),
		storage:  storage,
	}, nil
}

// ClearProfile wipes the profile and cascades to the timeline, keeping
// the in-memory store in step with the database.
func (a *App) ClearProfile(ctx context.Context) error {
	if err := a.Profile.Clear(ctx); err != nil {
		return err
	}
	a.Timeline.Load(ctx)
	return nil
}

// RescueURL builds the emergency card URL for the registered profile.
func (a *App) RescueURL(ctx context.Context) (string, error) {
	data, err := a.Profile.Load(ctx)
	if err != nil {
		return "", err
	}
	return profile.RescueURL(a.Config.RescueBaseURL, data), nil
}

// Serve runs the local web surface until ctx is cancelled.
func (a *App) Serve(ctx context.Context) error {
	mux := api.New(api.Services{
		Profile:  a.Profile,
		Timeline: a.Timeline,
		Advisory: a.Advisory,
		Settings: a.Settings,
	}, a.Log)

	server := &http.Server{
		Addr:              a.Config.ListenAddress,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.Log.Info("web surface listening", "address", a.Config.ListenAddress)
		errCh <- server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	}
}

func (a *App) Close() error {
	return a.storage.Close()
}
