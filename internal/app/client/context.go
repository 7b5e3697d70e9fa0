package client

import (
	"context"
	"errors"
)

type ctxKey struct{}

// ErrNotWired signals that no application was placed in the context.
var ErrNotWired = errors.New("application not initialized")

// IntoContext attaches the wired application to ctx for command use.
func IntoContext(ctx context.Context, app *App) context.Context {
	return context.WithValue(ctx, ctxKey{}, app)
}

// FromContext extracts the wired application.
func FromContext(ctx context.Context) (*App, error) {
	app, ok := ctx.Value(ctxKey{}).(*App)
	if !ok || app == nil {
		return nil, ErrNotWired
	}
	return app, nil
}
