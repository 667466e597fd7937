package port

import (
	"context"

	"github.com/rafaelleal24/onlineshop/internal/core/domain"
)

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

type EventPublisher interface {
	Publish(ctx context.Context, event domain.Event) error
}
