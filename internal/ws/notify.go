package ws

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type RequestEvent struct {
	Type      string `json:"type"`
	RequestID string `json:"request_id"`
	Timestamp string `json:"timestamp"`
}

// Notifier satisfies the usecase notification port on top of the hub.
type Notifier struct {
	hub *Hub
}

func NewNotifier(hub *Hub) *Notifier {
	return &Notifier{hub: hub}
}

func (n *Notifier) RequestCreated(id uuid.UUID) { n.publish("request_created", id) }
func (n *Notifier) RequestUpdated(id uuid.UUID) { n.publish("request_updated", id) }
func (n *Notifier) RequestDeleted(id uuid.UUID) { n.publish("request_deleted", id) }

func (n *Notifier) publish(eventType string, id uuid.UUID) {
	if n == nil || n.hub == nil {
		return
	}

	evt := RequestEvent{
		Type:      eventType,
		RequestID: id.String(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}
	n.hub.Broadcast(b)
}
