package trigger

import (
	"context"

	"github.com/shenikar/geo_content_engine/internal/models"
)

//go:generate mockgen -source=sinks.go -destination=mocks/mock_sinks.go -package=mocks

// Presenter принимает событие срабатывания для показа контента
type Presenter interface {
	Present(ctx context.Context, event models.TriggerEvent) error
}

// VisitLogger записывает факт срабатывания в журнал посещений
type VisitLogger interface {
	LogVisit(ctx context.Context, event models.TriggerEvent) error
}
