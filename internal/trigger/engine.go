// Package trigger принимает решение о срабатывании геозон: окно времени, подавление повторов
// и выбор единственного места на каждое обновление позиции.
package trigger

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/geo_content_engine/internal/geo"
	"github.com/shenikar/geo_content_engine/internal/models"
	"github.com/sirupsen/logrus"
)

// Engine оценивает кандидатов при каждом обновлении позиции.
//
// Политика приоритета: кандидаты перебираются в порядке каталога, срабатывает первое
// подходящее место, остальные на этом обновлении не рассматриваются. Если когда-нибудь
// понадобится несколько срабатываний за раз, менять нужно только Evaluate.
//
// Engine не потокобезопасен, обновления одного устройства должны приходить последовательно.
type Engine struct {
	cooldowns *CooldownTracker
	presenter Presenter
	visits    VisitLogger
	logger    *logrus.Entry
}

// NewEngine создает движок. presenter и visits могут быть nil.
func NewEngine(cooldowns *CooldownTracker, presenter Presenter, visits VisitLogger, logger *logrus.Logger) *Engine {
	if cooldowns == nil {
		cooldowns = NewCooldownTracker(nil, nil)
	}
	return &Engine{
		cooldowns: cooldowns,
		presenter: presenter,
		visits:    visits,
		logger:    logger.WithField("component", "trigger_engine"),
	}
}

// Cooldowns трекер подавления повторов, которым владеет движок
func (e *Engine) Cooldowns() *CooldownTracker {
	return e.cooldowns
}

// Select находит первое место, условие которого выполнено, без побочных эффектов
func (e *Engine) Select(position models.Coordinate, candidates []models.Place, now time.Time) (models.Place, float64, bool) {
	nowMs := now.UnixMilli()
	for _, p := range candidates {
		if !eligible(p) {
			continue
		}
		d := geo.DistanceMeters(position, p.Center)
		if d > p.RadiusM {
			continue
		}
		if !e.cooldowns.IsCooled(p.ID, nowMs, p.CooldownMs()) {
			continue
		}
		if !IsWithinWindow(p, now) {
			continue
		}
		return p, d, true
	}
	return models.Place{}, 0, false
}

// Evaluate обрабатывает один отсчет позиции. При срабатывании ставит отметку в трекер,
// отправляет событие в слой показа и журнал и возвращает его.
// Ошибки получателей не влияют на результат. Отсчет с ошибкой источника пропускается.
func (e *Engine) Evaluate(ctx context.Context, position models.DevicePosition, candidates []models.Place, now time.Time) (*models.TriggerEvent, bool) {
	log := e.logger.WithField("device_id", position.DeviceID)

	if position.Failed() {
		log.WithError(position.Err).Debug("Position source reported an error, skipping tick")
		return nil, false
	}

	place, distance, ok := e.Select(position.Coordinate, candidates, now)
	if !ok {
		return nil, false
	}

	e.cooldowns.Stamp(place.ID, now.UnixMilli())

	event := models.TriggerEvent{
		ID:        uuid.New(),
		DeviceID:  position.DeviceID,
		Place:     place,
		Position:  position.Coordinate,
		DistanceM: distance,
		FiredAt:   now,
	}

	log = log.WithFields(logrus.Fields{
		"place_id":   place.ID,
		"distance_m": math.Round(distance),
		"event_id":   event.ID,
	})
	log.Info("Place triggered")

	if e.presenter != nil {
		if err := e.presenter.Present(ctx, event); err != nil {
			log.WithError(err).Warn("Failed to deliver trigger event to presentation sink")
		}
	}
	if e.visits != nil {
		if err := e.visits.LogVisit(ctx, event); err != nil {
			log.WithError(err).Warn("Failed to log visit")
		}
	}

	return &event, true
}

// eligible отсекает некорректные места: без радиуса или с координатами вне диапазона
func eligible(p models.Place) bool {
	if p.ID == "" || !(p.RadiusM > 0) || math.IsInf(p.RadiusM, 0) {
		return false
	}
	lat, lng := p.Center.Latitude, p.Center.Longitude
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}
