package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"muslimapp/config"
	"muslimapp/internal/domain/constants"
	"muslimapp/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testDueEvent() *entity.DueEvent {
	trigger := time.Date(2024, time.March, 11, 4, 25, 0, 0, time.UTC)

	return &entity.DueEvent{
		RequestID: "req-1",
		DeviceID:  uuid.New(),
		Token:     "token-1",
		Kind:      entity.PrayerEventKind(entity.PrayerFajr),
		Date:      "2024-03-11",
		TriggerAt: trigger,
		Deadline:  trigger.Add(30 * time.Minute),
		Prayer:    &entity.DuePrayer{Name: entity.PrayerFajr, Clock: "04:30", LeadMinutes: 5},
	}
}

func TestLocalHTTPPublisher_PublishDueEvent(t *testing.T) {
	event := testDueEvent()

	var received PushEnvelope
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newDiscardLogger())
	require.NoError(t, publisher.PublishDueEvent(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, string(event.Kind), received.Message.Attributes["kind"])
	assert.Equal(t, event.DeviceID.String(), received.Message.Attributes["device_id"])
	assert.NotEmpty(t, received.Message.MessageID)

	decoded, err := received.DecodeDueEvent()
	require.NoError(t, err)
	assert.Equal(t, event.Key(), decoded.Key())
	assert.True(t, event.Deadline.Equal(decoded.Deadline))
	assert.Equal(t, "04:30", decoded.Prayer.Clock)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newDiscardLogger())
	err := publisher.PublishDueEvent(context.Background(), testDueEvent())

	assert.ErrorContains(t, err, "503")
}

func TestNewEventPublisher(t *testing.T) {
	t.Run("not configured", func(t *testing.T) {
		_, err := NewEventPublisher(PublisherParams{
			Lc:     fxtest.NewLifecycle(t),
			Ctx:    context.Background(),
			Config: &config.Config{},
			Logger: newDiscardLogger(),
		})
		assert.Error(t, err)
	})

	t.Run("local provider closes on stop", func(t *testing.T) {
		lc := fxtest.NewLifecycle(t)
		cfg := &config.Config{PubSub: &config.PubSubConfig{
			Provider:      constants.PubSubProviderLocal,
			LocalEndpoint: "http://localhost:3001/push",
		}}

		publisher, err := NewEventPublisher(PublisherParams{
			Lc:     lc,
			Ctx:    context.Background(),
			Config: cfg,
			Logger: newDiscardLogger(),
		})
		require.NoError(t, err)
		assert.NotNil(t, publisher)

		lc.RequireStart().RequireStop()
	})

	t.Run("local without endpoint", func(t *testing.T) {
		cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}}

		_, err := NewEventPublisher(PublisherParams{
			Lc:     fxtest.NewLifecycle(t),
			Ctx:    context.Background(),
			Config: cfg,
			Logger: newDiscardLogger(),
		})
		assert.Error(t, err)
	})

	t.Run("unknown provider", func(t *testing.T) {
		cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: "kafka"}}

		_, err := NewEventPublisher(PublisherParams{
			Lc:     fxtest.NewLifecycle(t),
			Ctx:    context.Background(),
			Config: cfg,
			Logger: newDiscardLogger(),
		})
		assert.ErrorContains(t, err, "unknown pubsub provider")
	})
}

func TestPushEnvelope_DecodeDueEvent(t *testing.T) {
	var envelope PushEnvelope

	envelope.Message.Data = "%%%"
	_, err := envelope.DecodeDueEvent()
	assert.Error(t, err)

	envelope.Message.Data = base64.StdEncoding.EncodeToString([]byte(`{"device_id":"not-a-uuid"}`))
	_, err = envelope.DecodeDueEvent()
	assert.Error(t, err)
}
