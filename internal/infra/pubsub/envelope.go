package pubsub

import (
	"encoding/base64"
	"encoding/json"

	"muslimapp/internal/domain/entity"

	"github.com/pkg/errors"
)

// PushEnvelope is the JSON body Pub/Sub POSTs to a push subscription endpoint.
// The local publisher produces the same shape so the dispatcher cannot tell them apart.
type PushEnvelope struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// Attribute names set on every due-event message.
const (
	AttrRequestID = "request_id"
	AttrDeviceID  = "device_id"
	AttrKind      = "kind"
	AttrDate      = "date"
)

func eventAttributes(event *entity.DueEvent) map[string]string {
	attributes := map[string]string{
		AttrDeviceID: event.DeviceID.String(),
		AttrKind:     string(event.Kind),
		AttrDate:     event.Date,
	}
	if event.RequestID != "" {
		attributes[AttrRequestID] = event.RequestID
	}

	return attributes
}

// DecodeDueEvent reads the due event carried in the envelope's data field.
func (e *PushEnvelope) DecodeDueEvent() (*entity.DueEvent, error) {
	raw, err := base64.StdEncoding.DecodeString(e.Message.Data)
	if err != nil {
		return nil, errors.Wrap(err, "decode message data")
	}

	var event entity.DueEvent
	if err := json.Unmarshal(raw, &event); err != nil {
		return nil, errors.Wrap(err, "unmarshal due event")
	}

	return &event, nil
}
