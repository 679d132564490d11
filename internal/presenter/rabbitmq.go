package presenter

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/shenikar/geo_content_engine/internal/models"
	"github.com/shenikar/geo_content_engine/internal/service"
	"github.com/sirupsen/logrus"
)

const (
	MessagePresentation = "presentation"
	MessageUnavailable  = "unavailable"
)

// channel часть *amqp.Channel, нужная для публикации
type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

var _ service.PresentationSink = (*RabbitPresenter)(nil)

// RabbitPresenter публикует карточки контента в fanout-обменник.
// Ключ маршрутизации равен идентификатору устройства.
type RabbitPresenter struct {
	mu       sync.Mutex
	ch       channel
	exchange string
	logger   *logrus.Logger
}

func NewRabbitPresenter(conn *amqp.Connection, exchange string, logger *logrus.Logger) (*RabbitPresenter, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("rabbitmq channel: %w", err)
	}

	if err := ch.ExchangeDeclare(exchange, "fanout", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	return newRabbitPresenter(ch, exchange, logger), nil
}

func newRabbitPresenter(ch channel, exchange string, logger *logrus.Logger) *RabbitPresenter {
	return &RabbitPresenter{
		ch:       ch,
		exchange: exchange,
		logger:   logger,
	}
}

type presentationMessage struct {
	Type      string    `json:"type"`
	EventID   string    `json:"event_id"`
	DeviceID  string    `json:"device_id"`
	PlaceID   string    `json:"place_id"`
	Title     string    `json:"title"`
	Body      string    `json:"body,omitempty"`
	MediaURL  string    `json:"media_url,omitempty"`
	CTALabel  string    `json:"cta_label,omitempty"`
	CTAURL    string    `json:"cta_url,omitempty"`
	Narrate   bool      `json:"narrate"`
	DistanceM float64   `json:"distance_m"`
	FiredAt   time.Time `json:"fired_at"`
}

type unavailableMessage struct {
	Type     string    `json:"type"`
	DeviceID string    `json:"device_id"`
	Reason   string    `json:"reason"`
	SentAt   time.Time `json:"sent_at"`
}

func newPresentationMessage(event models.TriggerEvent) presentationMessage {
	content := event.Place.Content
	return presentationMessage{
		Type:      MessagePresentation,
		EventID:   event.ID.String(),
		DeviceID:  event.DeviceID,
		PlaceID:   event.Place.ID,
		Title:     content.Title,
		Body:      content.Body,
		MediaURL:  content.MediaURL,
		CTALabel:  content.CTALabel(),
		CTAURL:    content.CTAURL,
		Narrate:   content.Narrate,
		DistanceM: event.DistanceM,
		FiredAt:   event.FiredAt,
	}
}

// Present публикует карточку сработавшего места
func (p *RabbitPresenter) Present(ctx context.Context, event models.TriggerEvent) error {
	if err := p.publish(ctx, event.DeviceID, newPresentationMessage(event)); err != nil {
		return fmt.Errorf("present place %s: %w", event.Place.ID, err)
	}
	p.logger.WithFields(logrus.Fields{
		"device_id": event.DeviceID,
		"place_id":  event.Place.ID,
	}).Debug("Presentation published")
	return nil
}

// NotifyUnavailable сообщает устройству, что позиция недоступна
func (p *RabbitPresenter) NotifyUnavailable(ctx context.Context, deviceID, reason string) error {
	msg := unavailableMessage{
		Type:     MessageUnavailable,
		DeviceID: deviceID,
		Reason:   reason,
		SentAt:   time.Now().UTC(),
	}
	if err := p.publish(ctx, deviceID, msg); err != nil {
		return fmt.Errorf("notify unavailable: %w", err)
	}
	return nil
}

func (p *RabbitPresenter) publish(ctx context.Context, deviceID string, msg any) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	// amqp.Channel не допускает конкурентную публикацию
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ch.PublishWithContext(ctx, p.exchange, deviceID, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	})
}

func (p *RabbitPresenter) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ch.Close()
}
