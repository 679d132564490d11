package narration

import (
	"encoding/json"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/sirupsen/logrus"
)

const narrationTopicFormat = "devices/%s/narration"

// command сообщение, которое устройство получает в топике озвучивания
type command struct {
	Command string    `json:"command"`
	Text    string    `json:"text,omitempty"`
	Lang    string    `json:"lang,omitempty"`
	Rate    float64   `json:"rate,omitempty"`
	Pitch   float64   `json:"pitch,omitempty"`
	SentAt  time.Time `json:"sent_at"`
}

// MQTTAudio отправляет команды озвучивания на устройство через MQTT
type MQTTAudio struct {
	client    mqtt.Client
	topic     string
	qos       byte
	supported bool
	logger    *logrus.Entry
}

// NewMQTTAudio создает вывод звука для одного устройства
func NewMQTTAudio(client mqtt.Client, deviceID string, qos byte, supported bool, logger *logrus.Logger) *MQTTAudio {
	return &MQTTAudio{
		client:    client,
		topic:     fmt.Sprintf(narrationTopicFormat, deviceID),
		qos:       qos,
		supported: supported,
		logger:    logger.WithField("device_id", deviceID),
	}
}

func (a *MQTTAudio) Supported() bool {
	return a.supported
}

func (a *MQTTAudio) Play(text string, voice Voice) error {
	return a.publish(command{Command: "play", Text: text, Lang: voice.Lang, Rate: voice.Rate, Pitch: voice.Pitch})
}

func (a *MQTTAudio) Pause() error {
	return a.publish(command{Command: "pause"})
}

func (a *MQTTAudio) Resume() error {
	return a.publish(command{Command: "resume"})
}

func (a *MQTTAudio) Stop() error {
	return a.publish(command{Command: "stop"})
}

// publish не ждет доставки, ошибка брокера только логируется
func (a *MQTTAudio) publish(cmd command) error {
	if !a.client.IsConnected() {
		return fmt.Errorf("mqtt client is not connected")
	}
	cmd.SentAt = time.Now().UTC()
	payload, err := json.Marshal(cmd)
	if err != nil {
		return fmt.Errorf("failed to marshal narration command: %w", err)
	}

	token := a.client.Publish(a.topic, a.qos, false, payload)
	go func() {
		<-token.Done()
		if err := token.Error(); err != nil {
			a.logger.WithError(err).WithField("command", cmd.Command).Warn("Failed to publish narration command")
		}
	}()
	return nil
}
