package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/shenikar/geo_content_engine/internal/metrics"
	"github.com/shenikar/geo_content_engine/internal/models"
	"github.com/shenikar/geo_content_engine/internal/trigger"
	"github.com/sirupsen/logrus"
)

const minCleanupInterval = 10 * time.Millisecond

type cooldownWrite struct {
	deviceID  string
	placeID   string
	firedAtMs int64
	cooldown  time.Duration
}

// deviceManager держит сессии устройств в кеше с истечением по STREAM_TIMEOUT.
// Устройство без новых позиций дольше этого срока считается недоступным:
// его сессия закрывается, слой показа получает уведомление.
type deviceManager struct {
	deps   DeviceDeps
	opts   DeviceOptions
	logger *logrus.Entry

	mu       sync.Mutex
	closed   bool
	sessions *cache.Cache
	actors   sync.WaitGroup
	open     atomic.Int64

	persist     chan cooldownWrite
	persistDone chan struct{}
}

// NewDeviceService запускает менеджер сессий и фоновое сохранение отметок срабатывания
func NewDeviceService(deps DeviceDeps, opts DeviceOptions) DeviceService {
	if deps.Clock == nil {
		deps.Clock = time.Now
	}
	if deps.Metrics == nil {
		deps.Metrics = metrics.New()
	}
	if opts.Location == nil {
		opts.Location = time.Local
	}
	if opts.MailboxSize < 1 {
		opts.MailboxSize = 1
	}
	if opts.CooldownQueueSize < 1 {
		opts.CooldownQueueSize = 1
	}
	if opts.IOTimeout <= 0 {
		opts.IOTimeout = 5 * time.Second
	}

	cleanup := opts.StreamTimeout / 4
	if cleanup < minCleanupInterval {
		cleanup = minCleanupInterval
	}

	m := &deviceManager{
		deps:     deps,
		opts:     opts,
		logger:   deps.Logger.WithField("service", "device"),
		sessions: cache.New(opts.StreamTimeout, cleanup),
	}
	m.sessions.OnEvicted(func(_ string, v interface{}) {
		if s, ok := v.(*session); ok {
			s.close(reasonTimeout)
		}
	})

	if deps.Cooldowns != nil {
		m.persist = make(chan cooldownWrite, opts.CooldownQueueSize)
		m.persistDone = make(chan struct{})
		go m.runPersistence()
	}
	return m
}

func (m *deviceManager) now() time.Time {
	return m.deps.Clock().In(m.opts.Location)
}

// HandlePosition проверяет отсчет и передает его в сессию устройства.
// Сессия создается при первом отсчете и продлевается каждым следующим.
func (m *deviceManager) HandlePosition(ctx context.Context, pos models.DevicePosition) (*models.TriggerEvent, error) {
	if pos.DeviceID == "" {
		return nil, fmt.Errorf("%w: device id is required", ErrPositionRejected)
	}
	if err := m.opts.Gate.Check(pos, m.deps.Clock()); err != nil {
		m.deps.Metrics.PositionsProcessed.WithLabelValues(metrics.ResultRejected).Inc()
		m.logger.WithError(err).WithField("device_id", pos.DeviceID).Debug("Position sample rejected")
		return nil, fmt.Errorf("%w: %w", ErrPositionRejected, err)
	}

	// одна повторная попытка на случай, если сессия истекла между поиском и постановкой в очередь
	for attempt := 0; attempt < 2; attempt++ {
		s, err := m.sessionFor(ctx, pos.DeviceID, true)
		if err != nil {
			return nil, err
		}

		event, err := s.handlePosition(ctx, pos)
		if errors.Is(err, ErrSessionClosed) {
			continue
		}
		if err == nil {
			result := metrics.ResultEvaluated
			if pos.Failed() {
				result = metrics.ResultFailed
			}
			m.deps.Metrics.PositionsProcessed.WithLabelValues(result).Inc()
		}
		return event, err
	}
	return nil, ErrSessionClosed
}

func (m *deviceManager) Dismiss(ctx context.Context, deviceID string) error {
	s, err := m.sessionFor(ctx, deviceID, false)
	if err != nil {
		return err
	}
	return s.dismiss(ctx)
}

func (m *deviceManager) SetVisibility(ctx context.Context, deviceID string, visible bool) error {
	s, err := m.sessionFor(ctx, deviceID, false)
	if err != nil {
		return err
	}
	return s.setVisibility(ctx, visible)
}

func (m *deviceManager) Narration(ctx context.Context, deviceID string) (*NarrationStatus, error) {
	s, err := m.sessionFor(ctx, deviceID, false)
	if err != nil {
		return nil, err
	}
	return s.narrationStatus(ctx)
}

func (m *deviceManager) ControlNarration(ctx context.Context, deviceID string, action NarrationAction) (*NarrationStatus, error) {
	s, err := m.sessionFor(ctx, deviceID, false)
	if err != nil {
		return nil, err
	}
	return s.controlNarration(ctx, action)
}

func (m *deviceManager) ActiveSessions() int {
	return int(m.open.Load())
}

// Close закрывает все сессии без уведомлений и дожидается записи отметок
func (m *deviceManager) Close() {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return
	}
	m.closed = true
	m.sessions.DeleteExpired()
	items := m.sessions.Items()
	m.mu.Unlock()

	for _, item := range items {
		if s, ok := item.Object.(*session); ok {
			s.close(reasonShutdown)
		}
	}
	m.sessions.Flush()
	m.actors.Wait()

	if m.persist != nil {
		close(m.persist)
		<-m.persistDone
	}
	m.logger.Info("Device service stopped")
}

// sessionFor находит открытую сессию. Позиции (create) продлевают срок жизни
// сессии и создают ее при отсутствии, остальные события сессию не продлевают.
func (m *deviceManager) sessionFor(ctx context.Context, deviceID string, create bool) (*session, error) {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return nil, ErrServiceClosed
	}
	if s := m.lookup(deviceID); s != nil {
		if create {
			m.sessions.SetDefault(deviceID, s)
		}
		m.mu.Unlock()
		return s, nil
	}
	m.mu.Unlock()

	if !create {
		return nil, ErrSessionNotFound
	}

	snapshot := m.loadSnapshot(ctx, deviceID)

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return nil, ErrServiceClosed
	}
	if s := m.lookup(deviceID); s != nil {
		m.sessions.SetDefault(deviceID, s)
		return s, nil
	}

	// истекшая, но еще не вычищенная запись закрывается через OnEvicted
	m.sessions.Delete(deviceID)

	s := newSession(deviceID, snapshot, m)
	m.start(s)
	m.sessions.SetDefault(deviceID, s)
	return s, nil
}

func (m *deviceManager) lookup(deviceID string) *session {
	v, ok := m.sessions.Get(deviceID)
	if !ok {
		return nil
	}
	s, ok := v.(*session)
	if !ok || s.isClosed() {
		return nil
	}
	return s
}

func (m *deviceManager) start(s *session) {
	m.actors.Add(1)
	m.deps.Metrics.ActiveSessions.Set(float64(m.open.Add(1)))
	s.logger.Info("Device session opened")

	go func() {
		defer m.actors.Done()
		s.run()
		m.deps.Metrics.ActiveSessions.Set(float64(m.open.Add(-1)))
	}()
}

func (m *deviceManager) loadSnapshot(ctx context.Context, deviceID string) map[string]int64 {
	if m.deps.Cooldowns == nil {
		return nil
	}
	loadCtx, cancel := context.WithTimeout(ctx, m.opts.IOTimeout)
	defer cancel()

	snapshot, err := m.deps.Cooldowns.Load(loadCtx, deviceID)
	if err != nil {
		m.logger.WithError(err).WithField("device_id", deviceID).Warn("Failed to load cooldown snapshot, starting empty")
		return nil
	}
	return snapshot
}

// stampHook ставит отметку в очередь сохранения, не блокируя сессию
func (m *deviceManager) stampHook(deviceID string) trigger.StampHook {
	if m.persist == nil {
		return nil
	}
	return func(placeID string, firedAtMs int64) {
		write := cooldownWrite{
			deviceID:  deviceID,
			placeID:   placeID,
			firedAtMs: firedAtMs,
			cooldown:  m.placeCooldown(placeID),
		}
		select {
		case m.persist <- write:
		default:
			m.deps.Metrics.CooldownWrites.WithLabelValues("dropped").Inc()
			m.logger.WithFields(logrus.Fields{
				"device_id": deviceID,
				"place_id":  placeID,
			}).Warn("Cooldown persistence queue is full, stamp kept in memory only")
		}
	}
}

// placeCooldown период подавления места из текущего каталога, насыщается на максимуме time.Duration
func (m *deviceManager) placeCooldown(placeID string) time.Duration {
	place, ok := m.deps.Catalog.Current().Get(placeID)
	if !ok {
		return 0
	}
	ms := place.CooldownMs()
	if ms >= math.MaxInt64/int64(time.Millisecond) {
		return time.Duration(math.MaxInt64)
	}
	return time.Duration(ms) * time.Millisecond
}

func (m *deviceManager) runPersistence() {
	defer close(m.persistDone)
	for w := range m.persist {
		ctx, cancel := context.WithTimeout(context.Background(), m.opts.IOTimeout)
		err := m.deps.Cooldowns.Save(ctx, w.deviceID, w.placeID, w.firedAtMs, w.cooldown)
		cancel()

		if err != nil {
			m.deps.Metrics.CooldownWrites.WithLabelValues("failed").Inc()
			m.logger.WithError(err).WithFields(logrus.Fields{
				"device_id": w.deviceID,
				"place_id":  w.placeID,
			}).Warn("Failed to persist cooldown stamp")
			continue
		}
		m.deps.Metrics.CooldownWrites.WithLabelValues("saved").Inc()
	}
}
