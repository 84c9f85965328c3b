package notification

import (
	"context"
	"log/slog"

	"muslimapp/internal/domain/entity"
	"muslimapp/internal/domain/service"
)

type logNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier returns a Notifier that only logs the message. It stands in for
// Firebase in development.
func NewLogNotifier(logger *slog.Logger) service.Notifier {
	return &logNotifier{logger: logger}
}

func (n *logNotifier) Send(ctx context.Context, token string, message *entity.PushMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	n.logger.InfoContext(ctx, "[LogNotifier] Push suppressed",
		slog.String("token", maskToken(token)),
		slog.String("title", message.Title),
		slog.String("body", message.Body),
		slog.Any("data", message.Data),
	)

	return nil
}

func maskToken(token string) string {
	if len(token) <= 8 {
		return "****"
	}

	return token[:4] + "…" + token[len(token)-4:]
}
