package geo

import (
	"testing"

	"github.com/shenikar/geo_content_engine/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestNearby_KeepsCatalogOrder(t *testing.T) {
	me := models.Coordinate{Latitude: 4.65, Longitude: -74.06}
	places := []models.Place{
		{ID: "far", Center: models.Coordinate{Latitude: 4.75, Longitude: -74.06}, RadiusM: 50},
		{ID: "b", Center: models.Coordinate{Latitude: 4.655, Longitude: -74.06}, RadiusM: 50},
		{ID: "a", Center: models.Coordinate{Latitude: 4.651, Longitude: -74.06}, RadiusM: 50},
	}

	got := Nearby(me, places, 1000)

	if assert.Len(t, got, 2) {
		assert.Equal(t, "b", got[0].ID)
		assert.Equal(t, "a", got[1].ID)
	}
	assert.Len(t, places, 3, "catalog must stay untouched")
	assert.Equal(t, "far", places[0].ID)
}

func TestNearby_EmptyCatalog(t *testing.T) {
	got := Nearby(models.Coordinate{}, nil, 1000)

	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestNearby_IgnoresTriggerRadius(t *testing.T) {
	me := models.Coordinate{Latitude: 4.65, Longitude: -74.06}
	// геозона огромная, но центр дальше радиуса отбора
	places := []models.Place{
		{ID: "huge", Center: models.Coordinate{Latitude: 4.70, Longitude: -74.06}, RadiusM: 100000},
	}

	assert.Empty(t, Nearby(me, places, 1000))
}
