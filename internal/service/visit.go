package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/shenikar/geo_content_engine/internal/models"
	"github.com/shenikar/geo_content_engine/internal/trigger"
	"github.com/shenikar/geo_content_engine/internal/webhook"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=visit.go -destination=mocks/mock_visit.go -package=mocks

// VisitRepository журнал посещений
type VisitRepository interface {
	SaveVisit(ctx context.Context, visit *models.Visit) error
	GetVisitStats(ctx context.Context, placeID string, minutes int) (*models.PlaceStats, error)
}

type visitLogger struct {
	repo      VisitRepository
	publisher webhook.WebhookPublisher
	logger    *logrus.Logger
}

// NewVisitLogger пишет посещение в бд и ставит вебхук в очередь
func NewVisitLogger(repo VisitRepository, publisher webhook.WebhookPublisher, logger *logrus.Logger) trigger.VisitLogger {
	return &visitLogger{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
	}
}

// LogVisit обе записи выполняются независимо, ошибки объединяются
func (l *visitLogger) LogVisit(ctx context.Context, event models.TriggerEvent) error {
	log := l.logger.WithFields(logrus.Fields{
		"service":   "visit",
		"method":    "LogVisit",
		"device_id": event.DeviceID,
		"place_id":  event.Place.ID,
	})

	var saveErr, publishErr error
	visit := models.VisitFromEvent(event)
	if err := l.repo.SaveVisit(ctx, visit); err != nil {
		saveErr = fmt.Errorf("service: could not save visit: %w", err)
	}

	if l.publisher != nil {
		if err := l.publisher.Publish(ctx, webhook.NewVisitEvent(event)); err != nil {
			publishErr = fmt.Errorf("service: could not publish visit webhook: %w", err)
		}
	}

	if err := errors.Join(saveErr, publishErr); err != nil {
		return err
	}
	log.WithField("distance_m", visit.DistanceM).Debug("Visit logged")
	return nil
}
