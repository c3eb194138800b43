package messaging

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"

	"taskboard/domain/ports"
)

// NATSTaskEventPublisher implements TaskEventPublisherPort over plain NATS
// Pub/Sub. Events are advisory; nothing in the request path waits on them.
type NATSTaskEventPublisher struct {
	conn *nats.Conn
}

func NewNATSTaskEventPublisher(conn *nats.Conn) ports.TaskEventPublisherPort {
	return &NATSTaskEventPublisher{
		conn: conn,
	}
}

// PublishTaskEvent sends the event to subject tasks.{type}.
func (p *NATSTaskEventPublisher) PublishTaskEvent(ctx context.Context, event *ports.TaskEvent) error {
	if event == nil {
		return fmt.Errorf("event cannot be nil")
	}
	if event.TaskID == "" {
		return fmt.Errorf("taskId is required")
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal task event: %w", err)
	}

	subject := fmt.Sprintf("tasks.%s", event.Type)
	return p.conn.Publish(subject, data)
}
