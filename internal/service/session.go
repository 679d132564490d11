package service

import (
	"context"
	"fmt"
	"math"
	"sync"

	"github.com/shenikar/geo_content_engine/internal/geo"
	"github.com/shenikar/geo_content_engine/internal/models"
	"github.com/shenikar/geo_content_engine/internal/narration"
	"github.com/shenikar/geo_content_engine/internal/trigger"
	"github.com/sirupsen/logrus"
)

const unavailableTimeoutReason = "position stream timed out"

type closeReason int

const (
	reasonShutdown closeReason = iota
	reasonTimeout
)

// session обслуживает одно устройство. Все изменения состояния выполняются
// в горутине run, остальные методы только ставят задачи в очередь.
type session struct {
	deviceID string
	manager  *deviceManager
	engine   *trigger.Engine
	narrator *narration.Controller
	logger   *logrus.Entry

	// принадлежит горутине run
	active      *models.TriggerEvent
	hidden      bool
	unavailable bool

	mailbox   chan func()
	quit      chan struct{}
	done      chan struct{}
	closeOnce sync.Once
	reason    closeReason
}

func newSession(deviceID string, snapshot map[string]int64, m *deviceManager) *session {
	var audio narration.Audio
	if m.deps.Audio != nil {
		audio = m.deps.Audio(deviceID)
	}

	cooldowns := trigger.NewCooldownTracker(snapshot, m.stampHook(deviceID))
	return &session{
		deviceID: deviceID,
		manager:  m,
		engine:   trigger.NewEngine(cooldowns, m.deps.Presenter, m.deps.Visits, m.deps.Logger),
		narrator: narration.NewController(audio, m.deps.Logger),
		logger:   m.logger.WithField("device_id", deviceID),
		mailbox:  make(chan func(), m.opts.MailboxSize),
		quit:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

func (s *session) run() {
	defer close(s.done)
	for {
		select {
		case <-s.quit:
			s.teardown()
			return
		case fn := <-s.mailbox:
			fn()
		}
	}
}

// close неблокирующий и идемпотентный, причина берется из первого вызова
func (s *session) close(reason closeReason) {
	s.closeOnce.Do(func() {
		s.reason = reason
		close(s.quit)
	})
}

func (s *session) isClosed() bool {
	select {
	case <-s.quit:
		return true
	default:
		return false
	}
}

// outcome результат задачи, переданный из горутины сессии
type outcome[T any] struct {
	value T
	err   error
}

// ask выполняет fn в горутине сессии и возвращает ее результат.
// Если ожидание прервано контекстом, поставленная задача все равно будет выполнена,
// а ее результат отброшен.
func ask[T any](ctx context.Context, s *session, fn func() (T, error)) (T, error) {
	var zero T
	result := make(chan outcome[T], 1)
	task := func() {
		value, err := fn()
		result <- outcome[T]{value: value, err: err}
	}

	select {
	case <-s.quit:
		return zero, ErrSessionClosed
	case <-ctx.Done():
		return zero, ctx.Err()
	case s.mailbox <- task:
	}

	select {
	case out := <-result:
		return out.value, out.err
	case <-s.done:
		select {
		case out := <-result:
			return out.value, out.err
		default:
			return zero, ErrSessionClosed
		}
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}

// do выполняет fn в горутине сессии и ждет завершения
func (s *session) do(ctx context.Context, fn func()) error {
	_, err := ask(ctx, s, func() (struct{}, error) {
		fn()
		return struct{}{}, nil
	})
	return err
}

// taskContext контекст для работы внутри сессии, не зависящий от отмены вызывающего
func (s *session) taskContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(ctx), s.manager.opts.IOTimeout)
}

func (s *session) handlePosition(ctx context.Context, pos models.DevicePosition) (*models.TriggerEvent, error) {
	return ask(ctx, s, func() (*models.TriggerEvent, error) {
		taskCtx, cancel := s.taskContext(ctx)
		defer cancel()

		if pos.Failed() {
			s.reportUnavailable(taskCtx, pos.Err.Error())
			return nil, nil
		}
		s.unavailable = false

		current := s.manager.deps.Catalog.Current()
		candidates := current.Places()
		if radius := s.manager.opts.PrefilterRadiusM; radius > 0 {
			candidates = geo.Nearby(pos.Coordinate, candidates, math.Max(radius, current.MaxRadius()))
		}

		now := s.manager.now()
		event, ok := s.engine.Evaluate(taskCtx, pos, candidates, now)
		if !ok {
			return nil, nil
		}
		s.present(event)
		return event, nil
	})
}

// present делает событие активным. Новое срабатывание прерывает текущее озвучивание.
func (s *session) present(event *models.TriggerEvent) {
	s.active = event
	s.manager.deps.Metrics.TriggersFired.WithLabelValues(event.Place.ID).Inc()

	content := event.Place.Content
	if content.Narrate && !s.hidden && s.play(content) {
		return
	}
	s.stopNarration()
}

func (s *session) play(content models.Content) bool {
	voice := s.manager.opts.Voice.Override(content.NarrationLang, content.NarrationRate, content.NarrationPitch)
	if !s.narrator.Play(content.Utterance(), voice) {
		return false
	}
	s.countNarration(NarrationPlay)
	return true
}

func (s *session) stopNarration() {
	if s.narrator.State() == narration.StateIdle {
		return
	}
	s.narrator.Stop()
	s.countNarration(NarrationStop)
}

func (s *session) countNarration(action NarrationAction) {
	s.manager.deps.Metrics.NarrationCommands.WithLabelValues(string(action)).Inc()
}

// reportUnavailable уведомляет слой показа один раз до следующего корректного отсчета
func (s *session) reportUnavailable(ctx context.Context, reason string) {
	if s.unavailable {
		return
	}
	s.unavailable = true
	s.logger.WithField("reason", reason).Warn("Position source unavailable")

	if s.manager.deps.Presenter == nil {
		return
	}
	if err := s.manager.deps.Presenter.NotifyUnavailable(ctx, s.deviceID, reason); err != nil {
		s.logger.WithError(err).Warn("Failed to deliver unavailability notice")
	}
}

func (s *session) dismiss(ctx context.Context) error {
	_, err := ask(ctx, s, func() (struct{}, error) {
		if s.active == nil {
			return struct{}{}, ErrNoPresentation
		}
		s.logger.WithField("place_id", s.active.Place.ID).Info("Presentation dismissed")
		s.active = nil
		s.stopNarration()
		return struct{}{}, nil
	})
	return err
}

func (s *session) setVisibility(ctx context.Context, visible bool) error {
	return s.do(ctx, func() {
		s.hidden = !visible
		if s.hidden {
			s.stopNarration()
		}
	})
}

func (s *session) narrationStatus(ctx context.Context) (*NarrationStatus, error) {
	return ask(ctx, s, func() (*NarrationStatus, error) {
		return s.status(), nil
	})
}

func (s *session) controlNarration(ctx context.Context, action NarrationAction) (*NarrationStatus, error) {
	return ask(ctx, s, func() (*NarrationStatus, error) {
		result := s.applyNarration(action)
		return s.status(), result
	})
}

// applyNarration выполняет команду озвучивания, вызывается только из горутины сессии
func (s *session) applyNarration(action NarrationAction) error {
	if !s.narrator.Supported() {
		return ErrNarrationUnsupported
	}

	switch action {
	case NarrationPlay:
		if s.active == nil {
			return ErrNoPresentation
		}
		if !s.play(s.active.Place.Content) {
			return fmt.Errorf("%w: place %s has nothing to narrate", ErrNoPresentation, s.active.Place.ID)
		}
	case NarrationPause:
		if s.narrator.State() == narration.StateSpeaking {
			s.narrator.Pause()
			s.countNarration(action)
		}
	case NarrationResume:
		if s.narrator.State() == narration.StatePaused {
			s.narrator.Resume()
			s.countNarration(action)
		}
	case NarrationStop:
		s.stopNarration()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownNarrationAction, action)
	}
	return nil
}

// status снимок состояния, вызывается только из горутины сессии
func (s *session) status() *NarrationStatus {
	status := &NarrationStatus{
		DeviceID:  s.deviceID,
		State:     s.narrator.State(),
		Supported: s.narrator.Supported(),
	}
	if s.active != nil {
		status.PlaceID = s.active.Place.ID
	}
	if current, ok := s.narrator.Session(); ok {
		status.Text = current.Text
		voice := current.Voice
		status.Voice = &voice
	}
	return status
}

func (s *session) teardown() {
	s.stopNarration()
	s.active = nil

	log := s.logger
	if s.reason == reasonTimeout {
		log = log.WithField("reason", unavailableTimeoutReason)
		if s.manager.deps.Presenter != nil {
			ctx, cancel := s.taskContext(context.Background())
			defer cancel()
			if err := s.manager.deps.Presenter.NotifyUnavailable(ctx, s.deviceID, unavailableTimeoutReason); err != nil {
				log.WithError(err).Warn("Failed to deliver unavailability notice")
			}
		}
	}
	log.Info("Device session closed")
}
