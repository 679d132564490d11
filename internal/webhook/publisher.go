package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/geo_content_engine/internal/models"
)

//go:generate mockgen -source=publisher.go -destination=mocks/mock_publisher.go -package=mocks

const (
	webhookQueueKey = "webhook_events"
)

// WebhookEvent - структура для данных вебхука о посещении места
type WebhookEvent struct {
	EventID    uuid.UUID `json:"event_id"`
	DeviceID   string    `json:"device_id"`
	PlaceID    string    `json:"place_id"`
	PlaceTitle string    `json:"place_title,omitempty"`
	DistanceM  int       `json:"distance_m"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	Timestamp  time.Time `json:"timestamp"`
}

// NewVisitEvent собирает событие вебхука из срабатывания
func NewVisitEvent(event models.TriggerEvent) WebhookEvent {
	return WebhookEvent{
		EventID:    event.ID,
		DeviceID:   event.DeviceID,
		PlaceID:    event.Place.ID,
		PlaceTitle: event.Place.Content.Title,
		DistanceM:  int(math.Round(event.DistanceM)),
		Latitude:   event.Position.Latitude,
		Longitude:  event.Position.Longitude,
		Timestamp:  event.FiredAt,
	}
}

// WebhookPublisher - интерфейс для публикации вебхуков
type WebhookPublisher interface {
	Publish(ctx context.Context, event WebhookEvent) error
}

// RedisWebhookPublisher - реализация WebhookPublisher, использующая Redis
type RedisWebhookPublisher struct {
	redisClient *redis.Client
}

// NewRedisWebhookPublisher создает новый RedisWebhookPublisher
func NewRedisWebhookPublisher(client *redis.Client) *RedisWebhookPublisher {
	return &RedisWebhookPublisher{
		redisClient: client,
	}
}

// Publish публикует событие вебхука в очередь Redis
func (p *RedisWebhookPublisher) Publish(ctx context.Context, event WebhookEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal webhook event: %w", err)
	}

	// LPUSH в голову списка, воркер забирает с хвоста через BRPOP
	if err := p.redisClient.LPush(ctx, webhookQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish webhook event to Redis: %w", err)
	}
	return nil
}
