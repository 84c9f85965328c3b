package notification

import (
	"context"

	"muslimapp/internal/domain/entity"
	domainerrors "muslimapp/internal/domain/errors"
	"muslimapp/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

const reasonUnregistered = "unregistered"

type firebaseService struct {
	client *messaging.Client
}

// NewFirebaseService creates a Notifier backed by Firebase Cloud Messaging.
// An empty credentialsPath falls back to application default credentials.
func NewFirebaseService(ctx context.Context, projectID, credentialsPath string) (service.Notifier, error) {
	var opts []option.ClientOption
	if credentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsPath))
	}

	var appConfig *firebase.Config
	if projectID != "" {
		appConfig = &firebase.Config{ProjectID: projectID}
	}

	app, err := firebase.NewApp(ctx, appConfig, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &firebaseService{
		client: client,
	}, nil
}

// Send pushes a single message to one device token
func (s *firebaseService) Send(ctx context.Context, token string, message *entity.PushMessage) error {
	msg := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: message.Title,
			Body:  message.Body,
		},
		Data: message.Data,
		Android: &messaging.AndroidConfig{
			Priority: "high",
		},
		APNS: &messaging.APNSConfig{
			Payload: &messaging.APNSPayload{
				Aps: &messaging.Aps{Sound: "default"},
			},
		},
	}

	if _, err := s.client.Send(ctx, msg); err != nil {
		return classifySendError(err)
	}

	return nil
}

type sendErrorKind struct {
	match     func(error) bool
	reason    string
	permanent bool
}

// sendErrorKinds is matched in order. Only token rejections are permanent:
// INVALID_ARGUMENT is also returned for malformed payloads such as oversized data.
var sendErrorKinds = []sendErrorKind{
	{match: messaging.IsUnregistered, reason: reasonUnregistered, permanent: true},
	{match: messaging.IsSenderIDMismatch, reason: "sender-id-mismatch", permanent: true},
	{match: messaging.IsInvalidArgument, reason: "invalid-argument"},
	{match: messaging.IsQuotaExceeded, reason: "quota-exceeded"},
	{match: messaging.IsUnavailable, reason: "unavailable"},
	{match: messaging.IsInternal, reason: "unavailable"},
}

// classifySendError separates tokens that will never work again from transient faults.
func classifySendError(err error) error {
	return classify(sendErrorKinds, err)
}

func classify(kinds []sendErrorKind, err error) error {
	for _, kind := range kinds {
		if !kind.match(err) {
			continue
		}
		if kind.permanent {
			return domainerrors.NewPermanentTransportError(kind.reason, err)
		}

		return domainerrors.NewTransientTransportError(kind.reason, err)
	}

	return domainerrors.NewTransientTransportError("send-failed", err)
}
