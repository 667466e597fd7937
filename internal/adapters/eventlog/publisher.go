package eventlog

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rafaelleal24/onlineshop/internal/core/domain"
	"github.com/rafaelleal24/onlineshop/internal/core/logger"
	"github.com/rafaelleal24/onlineshop/internal/core/port"
)

// Publisher writes domain events to the log instead of a broker.
type Publisher struct{}

func NewPublisher() port.EventPublisher {
	return &Publisher{}
}

func (p *Publisher) Publish(ctx context.Context, event domain.Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event %s: %w", event.GetName(), err)
	}

	logger.Info(ctx, "Event published", map[string]any{
		"event_name":  event.GetName(),
		"entity_name": event.GetEntityName(),
		"payload":     string(payload),
	})
	return nil
}
