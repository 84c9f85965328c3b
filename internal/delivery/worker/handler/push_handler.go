package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"muslimapp/config"
	deliverycontext "muslimapp/internal/delivery/context"
	"muslimapp/internal/domain/constants"
	"muslimapp/internal/domain/entity"
	domainerrors "muslimapp/internal/domain/errors"
	"muslimapp/internal/infra/pubsub"
	"muslimapp/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// tokenValidator checks a Google-signed OIDC token for the given audience.
type tokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler turns Pub/Sub push deliveries into dispatcher calls
type PushHandler struct {
	verifyPushAuth bool
	validateToken  tokenValidator
	dispatchUC     usecase.DispatchUsecase
	logger         *slog.Logger
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config     *config.Config
	DispatchUC usecase.DispatchUsecase
	Logger     *slog.Logger
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Only Google push requests carry an OIDC token, and not in develop
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		validateToken:  idtoken.Validate,
		dispatchUC:     params.DispatchUC,
		logger:         params.Logger,
	}
}

// HandlePush dispatches one due event. It answers 503 when a retry may succeed and 200
// otherwise, including for events that can never be delivered.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verifyPushToken(c); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg pubsub.PushEnvelope
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	event, err := pushMsg.DecodeDueEvent()
	if err != nil {
		// Redelivering an undecodable payload cannot help, so it is acknowledged.
		h.logger.Error("[Worker] Dropping undecodable due event",
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusOK)
	}

	requestID := extractRequestID(ctx, &pushMsg, event)
	ctx, reqLogger := deliverycontext.Scope(ctx, h.logger, requestID)

	reqLogger = reqLogger.With(
		slog.String("message_id", pushMsg.Message.MessageID),
		slog.String("device_id", event.DeviceID.String()),
		slog.String("kind", string(event.Kind)),
		slog.String("date", event.Date),
	)
	reqLogger.Debug("[Worker] Processing due event")

	record, err := h.dispatchUC.Dispatch(ctx, event)
	if err != nil {
		retryable := isRetryable(err)
		reqLogger.Error("[Worker] Failed to dispatch due event",
			slog.Any("error", err),
			slog.Bool("retryable", retryable),
		)
		if retryable {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Due event processed", slog.String("outcome", string(record.Outcome)))

	return c.NoContent(http.StatusOK)
}

// isRetryable reports whether Pub/Sub should redeliver. Malformed events never succeed.
func isRetryable(err error) bool {
	return !errors.Is(err, domainerrors.ErrValidationFailed)
}

// extractRequestID prefers message attributes, then the event, then the X-Request-Id
// of the push request, and finally generates one.
func extractRequestID(ctx context.Context, pushMsg *pubsub.PushEnvelope, event *entity.DueEvent) string {
	if requestID := pushMsg.Message.Attributes[pubsub.AttrRequestID]; requestID != "" {
		return requestID
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	if requestID := deliverycontext.RequestID(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// verifyPushToken verifies the OIDC token Google attaches to authenticated push requests.
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func (h *PushHandler) verifyPushToken(c echo.Context) error {
	req := c.Request()

	authHeader := req.Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	token, ok := strings.CutPrefix(authHeader, "Bearer ")
	if !ok || token == "" {
		return errors.New("invalid authorization header format")
	}

	// The audience is the push endpoint URL. Scheme honours X-Forwarded-Proto behind a proxy.
	audience := c.Scheme() + "://" + req.Host + req.URL.Path

	payload, err := h.validateToken(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
