// Package narration управляет озвучиванием контента сработавшего места.
package narration

import (
	"strings"

	"github.com/sirupsen/logrus"
)

// State логическое состояние озвучивания
type State string

const (
	StateIdle     State = "idle"
	StateSpeaking State = "speaking"
	StatePaused   State = "paused"
)

// Session текущая фраза контроллера
type Session struct {
	Text  string `json:"text"`
	Voice Voice  `json:"voice"`
}

// Controller конечный автомат idle -> speaking -> {paused <-> speaking} -> idle.
// Одновременно активна не более одной фразы: новый Play отменяет предыдущую.
// Контроллер отслеживает логическое состояние, а не подтверждения от устройства.
type Controller struct {
	audio   Audio
	logger  *logrus.Entry
	state   State
	session *Session
}

// NewController создает контроллер в состоянии idle
func NewController(audio Audio, logger *logrus.Logger) *Controller {
	return &Controller{
		audio:  audio,
		logger: logger.WithField("component", "narration"),
		state:  StateIdle,
	}
}

// Supported флаг возможности озвучивания
func (c *Controller) Supported() bool {
	return c.audio != nil && c.audio.Supported()
}

// State текущее состояние
func (c *Controller) State() State {
	return c.state
}

// Session текущая фраза, если контроллер не в idle
func (c *Controller) Session() (Session, bool) {
	if c.session == nil {
		return Session{}, false
	}
	return *c.session, true
}

// Play отменяет текущую фразу и начинает новую. Допустим из любого состояния.
// Возвращает false, если озвучивание не поддерживается или текст пуст.
func (c *Controller) Play(text string, voice Voice) bool {
	text = strings.TrimSpace(text)
	if !c.Supported() || text == "" {
		return false
	}

	if c.state != StateIdle {
		c.send("stop", c.audio.Stop)
	}
	c.send("play", func() error { return c.audio.Play(text, voice) })

	c.session = &Session{Text: text, Voice: voice}
	c.state = StateSpeaking
	return true
}

// Pause действует только из speaking
func (c *Controller) Pause() {
	if c.state != StateSpeaking {
		return
	}
	c.send("pause", c.audio.Pause)
	c.state = StatePaused
}

// Resume действует только из paused
func (c *Controller) Resume() {
	if c.state != StatePaused {
		return
	}
	c.send("resume", c.audio.Resume)
	c.state = StateSpeaking
}

// Stop переводит в idle из любого состояния, повторный вызов ничего не делает
func (c *Controller) Stop() {
	if c.state == StateIdle {
		return
	}
	c.send("stop", c.audio.Stop)
	c.session = nil
	c.state = StateIdle
}

func (c *Controller) send(command string, fn func() error) {
	if err := fn(); err != nil {
		c.logger.WithError(err).WithField("command", command).Warn("Audio output rejected narration command")
	}
}
