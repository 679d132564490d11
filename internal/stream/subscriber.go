package stream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/shenikar/geo_content_engine/internal/models"
	"github.com/sirupsen/logrus"
)

const (
	positionTopic  = "devices/+/position"
	lifecycleTopic = "devices/+/lifecycle"

	LifecycleHidden  = "hidden"
	LifecycleVisible = "visible"
)

// DeviceHandler получатель событий устройства
type DeviceHandler interface {
	HandlePosition(ctx context.Context, pos models.DevicePosition) (*models.TriggerEvent, error)
	SetVisibility(ctx context.Context, deviceID string, visible bool) error
}

// positionMessage полезная нагрузка devices/<id>/position, timestamp в миллисекундах
type positionMessage struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Accuracy  float64 `json:"accuracy"`
	Timestamp int64   `json:"timestamp"`
	Error     string  `json:"error,omitempty"`
}

type lifecycleMessage struct {
	State string `json:"state"`
}

// Subscriber читает позиции и события жизненного цикла устройств из MQTT.
// Сообщения одного клиента обрабатываются последовательно в порядке поступления.
type Subscriber struct {
	client         mqtt.Client
	devices        DeviceHandler
	qos            byte
	handlerTimeout time.Duration
	logger         *logrus.Entry
	now            func() time.Time
}

func NewSubscriber(client mqtt.Client, devices DeviceHandler, qos byte, handlerTimeout time.Duration, logger *logrus.Logger) *Subscriber {
	return &Subscriber{
		client:         client,
		devices:        devices,
		qos:            qos,
		handlerTimeout: handlerTimeout,
		logger:         logger.WithField("component", "mqtt_subscriber"),
		now:            time.Now,
	}
}

// Start подписывается на топики позиций и жизненного цикла
func (s *Subscriber) Start() error {
	for topic, handler := range map[string]mqtt.MessageHandler{
		positionTopic:  s.handlePosition,
		lifecycleTopic: s.handleLifecycle,
	} {
		token := s.client.Subscribe(topic, s.qos, handler)
		token.Wait()
		if err := token.Error(); err != nil {
			return fmt.Errorf("mqtt subscribe %s: %w", topic, err)
		}
		s.logger.WithField("topic", topic).Info("Subscribed to device topic")
	}
	return nil
}

// Stop отписывается от топиков
func (s *Subscriber) Stop() error {
	token := s.client.Unsubscribe(positionTopic, lifecycleTopic)
	token.Wait()
	return token.Error()
}

func (s *Subscriber) handlePosition(_ mqtt.Client, msg mqtt.Message) {
	deviceID, err := deviceIDFromTopic(msg.Topic())
	if err != nil {
		s.logger.WithError(err).Warn("Ignoring message on unexpected topic")
		return
	}
	log := s.logger.WithField("device_id", deviceID)

	var raw positionMessage
	if err := json.Unmarshal(msg.Payload(), &raw); err != nil {
		log.WithError(err).Warn("Invalid position message")
		return
	}
	if err := validatePositionMessage(&raw); err != nil {
		log.WithError(err).Warn("Position message failed validation")
		return
	}

	ctx, cancel := s.context()
	defer cancel()

	if _, err := s.devices.HandlePosition(ctx, toDevicePosition(deviceID, raw, s.now())); err != nil {
		log.WithError(err).Debug("Position sample not processed")
	}
}

func (s *Subscriber) handleLifecycle(_ mqtt.Client, msg mqtt.Message) {
	deviceID, err := deviceIDFromTopic(msg.Topic())
	if err != nil {
		s.logger.WithError(err).Warn("Ignoring message on unexpected topic")
		return
	}
	log := s.logger.WithField("device_id", deviceID)

	var raw lifecycleMessage
	if err := json.Unmarshal(msg.Payload(), &raw); err != nil {
		log.WithError(err).Warn("Invalid lifecycle message")
		return
	}

	var visible bool
	switch raw.State {
	case LifecycleHidden:
	case LifecycleVisible:
		visible = true
	default:
		log.WithField("state", raw.State).Warn("Unknown lifecycle state")
		return
	}

	ctx, cancel := s.context()
	defer cancel()

	if err := s.devices.SetVisibility(ctx, deviceID, visible); err != nil {
		log.WithError(err).Debug("Lifecycle change not applied")
	}
}

func (s *Subscriber) context() (context.Context, context.CancelFunc) {
	if s.handlerTimeout <= 0 {
		return context.WithCancel(context.Background())
	}
	return context.WithTimeout(context.Background(), s.handlerTimeout)
}

func toDevicePosition(deviceID string, raw positionMessage, received time.Time) models.DevicePosition {
	pos := models.DevicePosition{
		DeviceID:   deviceID,
		Coordinate: models.Coordinate{Latitude: raw.Latitude, Longitude: raw.Longitude},
		AccuracyM:  raw.Accuracy,
		Timestamp:  received,
	}
	if raw.Timestamp > 0 {
		pos.Timestamp = time.UnixMilli(raw.Timestamp)
	}
	if raw.Error != "" {
		pos.Err = errors.New(raw.Error)
	}
	return pos
}

func validatePositionMessage(msg *positionMessage) error {
	if msg.Error != "" {
		return nil
	}
	if msg.Latitude < -90 || msg.Latitude > 90 {
		return fmt.Errorf("latitude: must be between -90 and 90")
	}
	if msg.Longitude < -180 || msg.Longitude > 180 {
		return fmt.Errorf("longitude: must be between -180 and 180")
	}
	if msg.Accuracy < 0 {
		return fmt.Errorf("accuracy: must not be negative")
	}
	if msg.Timestamp < 0 {
		return fmt.Errorf("timestamp: must not be negative")
	}
	return nil
}

// deviceIDFromTopic извлекает идентификатор из devices/<id>/<kind>
func deviceIDFromTopic(topic string) (string, error) {
	parts := strings.Split(topic, "/")
	if len(parts) != 3 || parts[0] != "devices" || parts[1] == "" {
		return "", fmt.Errorf("unexpected topic %q", topic)
	}
	return parts[1], nil
}
