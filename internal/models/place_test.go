package models

import (
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func minutes(v float64) *float64 { return &v }

func TestPlace_CooldownMs(t *testing.T) {
	tests := []struct {
		name     string
		cooldown *float64
		want     int64
	}{
		{"default when unset", nil, 15 * 60000},
		{"explicit zero", minutes(0), 0},
		{"fractional minutes", minutes(0.5), 30000},
		{"negative falls back to default", minutes(-3), 15 * 60000},
		{"one year", minutes(MaxCooldownMinutes), MaxCooldownMinutes * 60000},
		{"huge value saturates", minutes(1e15), math.MaxInt64},
		{"infinity saturates", minutes(math.Inf(1)), math.MaxInt64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Place{CooldownMin: tt.cooldown}.CooldownMs())
		})
	}
}

func TestPlace_HasWindow(t *testing.T) {
	assert.True(t, Place{StartAt: "09:00", EndAt: "18:00"}.HasWindow())
	assert.False(t, Place{StartAt: "09:00"}.HasWindow())
	assert.False(t, Place{StartAt: " ", EndAt: "18:00"}.HasWindow())
	assert.False(t, Place{}.HasWindow())
}

func TestContent_CTALabel(t *testing.T) {
	assert.Empty(t, Content{CTAText: "Comprar"}.CTALabel())
	assert.Equal(t, DefaultCTAText, Content{CTAURL: "https://example.org"}.CTALabel())
	assert.Equal(t, "Comprar", Content{CTAText: "Comprar", CTAURL: "https://example.org"}.CTALabel())
}

func TestContent_Utterance(t *testing.T) {
	assert.Equal(t, "Texto propio", Content{Title: "Museo", NarrationText: " Texto propio "}.Utterance())
	assert.Equal(t, "Museo. Abierto hoy", Content{Title: "Museo", Body: "Abierto hoy"}.Utterance())
	assert.Equal(t, "Museo", Content{Title: "Museo", Body: "  "}.Utterance())
	assert.Empty(t, Content{}.Utterance())
}

func TestVisitFromEvent(t *testing.T) {
	firedAt := time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)
	event := TriggerEvent{
		ID:        uuid.New(),
		DeviceID:  "phone-1",
		Place:     Place{ID: "museo"},
		Position:  Coordinate{Latitude: 4.6, Longitude: -74.08},
		DistanceM: 12.6,
		FiredAt:   firedAt,
	}

	visit := VisitFromEvent(event)

	assert.Equal(t, event.ID, visit.EventID)
	assert.Equal(t, "phone-1", visit.DeviceID)
	assert.Equal(t, "museo", visit.PlaceID)
	assert.Equal(t, 13, visit.DistanceM)
	assert.Equal(t, event.Position, visit.Position)
	assert.Equal(t, firedAt, visit.VisitedAt)
	assert.Zero(t, visit.ID)
}

func TestDevicePosition_Failed(t *testing.T) {
	assert.False(t, DevicePosition{DeviceID: "a"}.Failed())
	assert.True(t, DevicePosition{DeviceID: "a", Err: assert.AnError}.Failed())
}
