package service

import (
	"context"
	"errors"
	"time"

	"github.com/shenikar/geo_content_engine/internal/catalog"
	"github.com/shenikar/geo_content_engine/internal/config"
	"github.com/shenikar/geo_content_engine/internal/metrics"
	"github.com/shenikar/geo_content_engine/internal/models"
	"github.com/shenikar/geo_content_engine/internal/narration"
	"github.com/shenikar/geo_content_engine/internal/stream"
	"github.com/shenikar/geo_content_engine/internal/trigger"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=device.go -destination=mocks/mock_device.go -package=mocks

var (
	ErrPositionRejected       = errors.New("position sample rejected")
	ErrSessionNotFound        = errors.New("device session not found")
	ErrSessionClosed          = errors.New("device session closed")
	ErrServiceClosed          = errors.New("device service closed")
	ErrNoPresentation         = errors.New("no content is presented")
	ErrNarrationUnsupported   = errors.New("narration is not supported")
	ErrUnknownNarrationAction = errors.New("unknown narration action")
)

// NarrationAction команда управления озвучиванием
type NarrationAction string

const (
	NarrationPlay   NarrationAction = "play"
	NarrationPause  NarrationAction = "pause"
	NarrationResume NarrationAction = "resume"
	NarrationStop   NarrationAction = "stop"
)

// NarrationStatus состояние озвучивания на устройстве
type NarrationStatus struct {
	DeviceID  string           `json:"device_id"`
	State     narration.State  `json:"state"`
	Supported bool             `json:"supported"`
	PlaceID   string           `json:"place_id,omitempty"`
	Text      string           `json:"text,omitempty"`
	Voice     *narration.Voice `json:"voice,omitempty"`
}

// PresentationSink слой показа: события срабатывания и уведомление о потере позиции
type PresentationSink interface {
	trigger.Presenter
	NotifyUnavailable(ctx context.Context, deviceID, reason string) error
}

// CooldownStore хранит отметки срабатываний устройства между сессиями.
// Save получает период подавления места, отметка должна храниться не меньше него.
type CooldownStore interface {
	Load(ctx context.Context, deviceID string) (map[string]int64, error)
	Save(ctx context.Context, deviceID, placeID string, firedAtMs int64, cooldown time.Duration) error
}

// CatalogProvider источник текущего снимка каталога
type CatalogProvider interface {
	Current() *catalog.Catalog
}

// AudioFactory создает вывод звука для устройства
type AudioFactory func(deviceID string) narration.Audio

// DeviceService обрабатывает события устройств. События одного устройства
// выполняются строго по очереди в его сессии.
type DeviceService interface {
	HandlePosition(ctx context.Context, pos models.DevicePosition) (*models.TriggerEvent, error)
	Dismiss(ctx context.Context, deviceID string) error
	SetVisibility(ctx context.Context, deviceID string, visible bool) error
	Narration(ctx context.Context, deviceID string) (*NarrationStatus, error)
	ControlNarration(ctx context.Context, deviceID string, action NarrationAction) (*NarrationStatus, error)
	ActiveSessions() int
	Close()
}

// DeviceDeps внешние зависимости сессий. Presenter, Visits, Cooldowns и Audio могут быть nil.
type DeviceDeps struct {
	Catalog   CatalogProvider
	Presenter PresentationSink
	Visits    trigger.VisitLogger
	Cooldowns CooldownStore
	Audio     AudioFactory
	Metrics   *metrics.Metrics
	Logger    *logrus.Logger
	Clock     func() time.Time
}

// DeviceOptions параметры обработки потока позиций
type DeviceOptions struct {
	Gate              stream.Gate
	StreamTimeout     time.Duration
	PrefilterRadiusM  float64
	Location          *time.Location
	Voice             narration.Voice
	MailboxSize       int
	CooldownQueueSize int
	IOTimeout         time.Duration
}

// DeviceOptionsFromConfig собирает параметры из конфигурации.
// Предфильтр кандидатов выключается нулевым радиусом.
func DeviceOptionsFromConfig(cfg *config.Config) DeviceOptions {
	opts := DeviceOptions{
		Gate: stream.Gate{
			MaxAge:       cfg.PositionMaxAge,
			MaxAccuracyM: cfg.PositionMaxAccuracyM,
		},
		StreamTimeout:     cfg.StreamTimeout,
		Location:          cfg.Location(),
		Voice:             narration.DefaultVoice().Override(cfg.NarrationLang, &cfg.NarrationRate, &cfg.NarrationPitch),
		MailboxSize:       cfg.SessionMailboxSize,
		CooldownQueueSize: cfg.CooldownQueueSize,
		IOTimeout:         5 * time.Second,
	}
	if cfg.TriggerPrefilter {
		opts.PrefilterRadiusM = cfg.NearbyRadiusM
	}
	return opts
}
