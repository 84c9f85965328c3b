package notification

import (
	"context"
	"log/slog"

	"muslimapp/config"
	"muslimapp/internal/domain/service"

	"go.uber.org/fx"
)

// NotifierParams holds dependencies for the Notifier, injected by Fx
type NotifierParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewNotifier returns the Firebase notifier when configured, otherwise a logging notifier.
func NewNotifier(params NotifierParams) (service.Notifier, error) {
	cfg := params.Config.Firebase
	if cfg == nil {
		params.Logger.Warn("Firebase not configured, push messages will only be logged")

		return NewLogNotifier(params.Logger), nil
	}

	params.Logger.Info("Using Firebase Cloud Messaging notifier",
		slog.String("project_id", cfg.ProjectID),
	)

	return NewFirebaseService(params.Ctx, cfg.ProjectID, cfg.CredentialsPath)
}
