package models

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// TriggerEvent срабатывание геозоны, передается в слой показа и в журнал посещений
type TriggerEvent struct {
	ID        uuid.UUID  `json:"id"`
	DeviceID  string     `json:"device_id"`
	Place     Place      `json:"place"`
	Position  Coordinate `json:"position"`
	DistanceM float64    `json:"distance_m"`
	FiredAt   time.Time  `json:"fired_at"`
}

// Visit запись журнала посещений
type Visit struct {
	ID        int64      `json:"id"`
	EventID   uuid.UUID  `json:"event_id"`
	DeviceID  string     `json:"device_id"`
	PlaceID   string     `json:"place_id"`
	DistanceM int        `json:"distance_m"`
	Position  Coordinate `json:"position"`
	VisitedAt time.Time  `json:"visited_at"`
}

// VisitFromEvent строит запись журнала, расстояние округляется до метра
func VisitFromEvent(event TriggerEvent) *Visit {
	return &Visit{
		EventID:   event.ID,
		DeviceID:  event.DeviceID,
		PlaceID:   event.Place.ID,
		DistanceM: int(math.Round(event.DistanceM)),
		Position:  event.Position,
		VisitedAt: event.FiredAt,
	}
}
