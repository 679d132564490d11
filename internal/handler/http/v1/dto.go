package v1

import (
	"time"
)

// ContentDTO контент места
// @Description Контент, который показывается и озвучивается при срабатывании
type ContentDTO struct {
	Title          string   `json:"title" validate:"required,max=255"`
	Body           string   `json:"body,omitempty" validate:"max=4000"`
	MediaURL       string   `json:"media_url,omitempty" validate:"omitempty,url"`
	CTAText        string   `json:"cta_text,omitempty" validate:"max=64"`
	CTAURL         string   `json:"cta_url,omitempty" validate:"omitempty,url"`
	Narrate        bool     `json:"narrate"`
	NarrationText  string   `json:"narration_text,omitempty" validate:"max=4000"`
	NarrationLang  string   `json:"narration_lang,omitempty" validate:"omitempty,bcp47_language_tag"`
	NarrationRate  *float64 `json:"narration_rate,omitempty" validate:"omitempty,gt=0,lte=10"`
	NarrationPitch *float64 `json:"narration_pitch,omitempty" validate:"omitempty,gte=0,lte=2"`
}

// CreatePlaceRequest DTO для создания места
// @Description DTO для создания места. Пустой id генерируется сервером.
type CreatePlaceRequest struct {
	ID          string     `json:"id,omitempty" validate:"omitempty,max=64"`
	Latitude    float64    `json:"latitude" validate:"latitude"`
	Longitude   float64    `json:"longitude" validate:"longitude"`
	RadiusM     float64    `json:"radius_m" validate:"required,gt=0"`
	CooldownMin *float64   `json:"cooldown_min,omitempty" validate:"omitempty,gte=0,lte=525600"`
	StartAt     string     `json:"start_at,omitempty" validate:"required_with=EndAt,omitempty,clock"`
	EndAt       string     `json:"end_at,omitempty" validate:"required_with=StartAt,omitempty,clock"`
	Priority    int        `json:"priority" validate:"gte=0"`
	Content     ContentDTO `json:"content"`
}

// UpdatePlaceRequest DTO для обновления места
// @Description DTO для обновления места
type UpdatePlaceRequest struct {
	Latitude    float64    `json:"latitude" validate:"latitude"`
	Longitude   float64    `json:"longitude" validate:"longitude"`
	RadiusM     float64    `json:"radius_m" validate:"required,gt=0"`
	CooldownMin *float64   `json:"cooldown_min,omitempty" validate:"omitempty,gte=0,lte=525600"`
	StartAt     string     `json:"start_at,omitempty" validate:"required_with=EndAt,omitempty,clock"`
	EndAt       string     `json:"end_at,omitempty" validate:"required_with=StartAt,omitempty,clock"`
	Priority    int        `json:"priority" validate:"gte=0"`
	Status      string     `json:"status" validate:"required,oneof=active inactive"`
	Content     ContentDTO `json:"content"`
}

// PlaceResponse DTO для ответа с информацией о месте
// @Description DTO для ответа с информацией о месте
type PlaceResponse struct {
	ID          string     `json:"id"`
	Latitude    float64    `json:"latitude"`
	Longitude   float64    `json:"longitude"`
	RadiusM     float64    `json:"radius_m"`
	CooldownMin *float64   `json:"cooldown_min,omitempty"`
	StartAt     string     `json:"start_at,omitempty"`
	EndAt       string     `json:"end_at,omitempty"`
	Priority    int        `json:"priority"`
	Status      string     `json:"status"`
	Content     ContentDTO `json:"content"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// NearbyQuery параметры поиска мест рядом с точкой
type NearbyQuery struct {
	Latitude  *float64 `form:"lat" validate:"required,latitude"`
	Longitude *float64 `form:"lon" validate:"required,longitude"`
	RadiusM   float64  `form:"radius" validate:"gte=0,lte=50000"`
}

// NearbyPlaceResponse место рядом с точкой и расстояние до его центра
// @Description Место в радиусе поиска
type NearbyPlaceResponse struct {
	PlaceResponse
	DistanceM float64 `json:"distance_m"`
}

// StatsResponse DTO для ответа со статистикой
// @Description Посещения места за окно статистики
type StatsResponse struct {
	PlaceID       string `json:"place_id"`
	Visits        int    `json:"visits"`
	UniqueDevices int    `json:"unique_devices"`
	WindowMinutes int    `json:"window_minutes"`
}

// PositionRequest отсчет позиции устройства. timestamp в миллисекундах.
// @Description Отсчет позиции. Поле error передается вместо координат, если источник недоступен.
type PositionRequest struct {
	Latitude  float64 `json:"latitude" validate:"latitude"`
	Longitude float64 `json:"longitude" validate:"longitude"`
	Accuracy  float64 `json:"accuracy" validate:"gte=0"`
	Timestamp int64   `json:"timestamp" validate:"gte=0"`
	Error     string  `json:"error,omitempty" validate:"max=255"`
}

// TriggerEventResponse сработавшее место
// @Description Событие срабатывания
type TriggerEventResponse struct {
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

// LifecycleRequest видимость клиента
type LifecycleRequest struct {
	State string `json:"state" validate:"required,oneof=hidden visible"`
}

// VoiceResponse параметры голоса
type VoiceResponse struct {
	Lang  string  `json:"lang"`
	Rate  float64 `json:"rate"`
	Pitch float64 `json:"pitch"`
}

// NarrationResponse состояние озвучивания устройства
// @Description Состояние озвучивания
type NarrationResponse struct {
	DeviceID  string         `json:"device_id"`
	State     string         `json:"state"`
	Supported bool           `json:"supported"`
	PlaceID   string         `json:"place_id,omitempty"`
	Text      string         `json:"text,omitempty"`
	Voice     *VoiceResponse `json:"voice,omitempty"`
}
