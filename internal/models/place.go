package models

import (
	"errors"
	"math"
	"strings"
	"time"
)

var (
	// ErrPlaceNotFound место отсутствует в хранилище
	ErrPlaceNotFound = errors.New("place not found")
	// ErrPlaceExists место с таким идентификатором уже создано
	ErrPlaceExists = errors.New("place already exists")
)

const (
	// DefaultCooldownMinutes применяется, если у места не задан cooldown_min
	DefaultCooldownMinutes = 15

	// MaxCooldownMinutes верхняя граница cooldown_min, принимаемая API (один год)
	MaxCooldownMinutes = 525600

	// DefaultCTAText подпись кнопки, если задан только cta_url
	DefaultCTAText = "Abrir"

	PlaceStatusActive   = "active"
	PlaceStatusInactive = "inactive"
)

// Coordinate точка на сфере в десятичных градусах
type Coordinate struct {
	Latitude  float64 `json:"latitude" validate:"latitude"`
	Longitude float64 `json:"longitude" validate:"longitude"`
}

// Place описывает геозону и контент, который показывается при входе в нее.
// После загрузки в каталог место не изменяется.
type Place struct {
	ID          string     `json:"id" validate:"required,max=64"`
	Center      Coordinate `json:"center"`
	RadiusM     float64    `json:"radius_m" validate:"gt=0"`
	CooldownMin *float64   `json:"cooldown_min,omitempty"`
	StartAt     string     `json:"start_at,omitempty"`
	EndAt       string     `json:"end_at,omitempty"`
	Priority    int        `json:"priority"`
	Status      string     `json:"status"`
	Content     Content    `json:"content"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Content полезная нагрузка для показа пользователю
type Content struct {
	Title          string   `json:"title"`
	Body           string   `json:"body,omitempty"`
	MediaURL       string   `json:"media_url,omitempty"`
	CTAText        string   `json:"cta_text,omitempty"`
	CTAURL         string   `json:"cta_url,omitempty"`
	Narrate        bool     `json:"narrate"`
	NarrationText  string   `json:"narration_text,omitempty"`
	NarrationLang  string   `json:"narration_lang,omitempty"`
	NarrationRate  *float64 `json:"narration_rate,omitempty"`
	NarrationPitch *float64 `json:"narration_pitch,omitempty"`
}

// CooldownMs возвращает период подавления повторов в миллисекундах.
// Отрицательное значение считается ошибкой конфигурации и заменяется значением по умолчанию.
// Слишком большие значения насыщаются до math.MaxInt64, место тогда срабатывает один раз.
func (p Place) CooldownMs() int64 {
	minutes := float64(DefaultCooldownMinutes)
	if p.CooldownMin != nil && *p.CooldownMin >= 0 {
		minutes = *p.CooldownMin
	}
	ms := minutes * 60000
	if ms >= math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(ms)
}

// HasWindow сообщает, ограничено ли место суточным окном
func (p Place) HasWindow() bool {
	return strings.TrimSpace(p.StartAt) != "" && strings.TrimSpace(p.EndAt) != ""
}

// CTALabel подпись кнопки действия, пустая строка если ссылки нет
func (c Content) CTALabel() string {
	if c.CTAURL == "" {
		return ""
	}
	if c.CTAText == "" {
		return DefaultCTAText
	}
	return c.CTAText
}

// Utterance текст для озвучивания
func (c Content) Utterance() string {
	if text := strings.TrimSpace(c.NarrationText); text != "" {
		return text
	}
	parts := make([]string, 0, 2)
	if title := strings.TrimSpace(c.Title); title != "" {
		parts = append(parts, title)
	}
	if body := strings.TrimSpace(c.Body); body != "" {
		parts = append(parts, body)
	}
	return strings.Join(parts, ". ")
}

// PlaceStats агрегированная статистика посещений места
type PlaceStats struct {
	PlaceID       string `json:"place_id"`
	Visits        int    `json:"visits"`
	UniqueDevices int    `json:"unique_devices"`
	WindowMinutes int    `json:"window_minutes"`
}
