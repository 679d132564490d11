package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/shenikar/geo_content_engine/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCatalog = `[
  {"id": 1, "lat": 4.6097, "lng": -74.0817, "radius_m": 120, "title": "Plaza", "body": "Centro", "cta_url": "https://example.com"},
  {"id": "museo", "lat": 4.6019, "lng": -74.0721, "radius_m": 80, "cooldown_min": "5", "start_at": " 09:00 ", "end_at": "17:30", "narrate": true, "narration_lang": "en-US", "narration_rate": 1.2},
  {"id": "no-center", "radius_m": 50},
  {"id": "weird-cooldown", "lat": 1, "lng": 1, "radius_m": 10, "cooldown_min": "soon"}
]`

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "places.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestFileSource_Load(t *testing.T) {
	source := NewFileSource(writeCatalog(t, sampleCatalog), testLogger())

	places, err := source.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, places, 3)

	plaza := places[0]
	assert.Equal(t, "1", plaza.ID)
	assert.Equal(t, models.Coordinate{Latitude: 4.6097, Longitude: -74.0817}, plaza.Center)
	assert.Equal(t, 120.0, plaza.RadiusM)
	assert.Nil(t, plaza.CooldownMin)
	assert.Equal(t, 0, plaza.Priority)
	assert.Equal(t, models.PlaceStatusActive, plaza.Status)
	assert.Equal(t, models.DefaultCTAText, plaza.Content.CTALabel())

	museo := places[1]
	assert.Equal(t, "museo", museo.ID)
	require.NotNil(t, museo.CooldownMin)
	assert.Equal(t, 5.0, *museo.CooldownMin)
	assert.Equal(t, "09:00", museo.StartAt)
	assert.Equal(t, "17:30", museo.EndAt)
	assert.True(t, museo.Content.Narrate)
	assert.Equal(t, "en-US", museo.Content.NarrationLang)
	assert.Equal(t, 1, museo.Priority)

	weird := places[2]
	assert.Equal(t, "weird-cooldown", weird.ID)
	assert.Nil(t, weird.CooldownMin)
	assert.Equal(t, int64(models.DefaultCooldownMinutes*60000), weird.CooldownMs())
	assert.Equal(t, 3, weird.Priority)
}

func TestFileSource_WrappedObject(t *testing.T) {
	source := NewFileSource(writeCatalog(t, `{"places": [{"id": "a", "lat": 0, "lng": 0, "radius_m": 5}]}`), testLogger())

	places, err := source.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, places, 1)
	assert.Equal(t, "a", places[0].ID)
}

func TestFileSource_Errors(t *testing.T) {
	_, err := NewFileSource(filepath.Join(t.TempDir(), "missing.json"), testLogger()).Load(context.Background())
	assert.Error(t, err)

	_, err = NewFileSource(writeCatalog(t, `not json`), testLogger()).Load(context.Background())
	assert.Error(t, err)
}

func TestFileSource_ThroughHolder(t *testing.T) {
	h := NewHolder(NewFileSource(writeCatalog(t, sampleCatalog), testLogger()), testLogger())

	c, err := h.Reload(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, c.Len())
	assert.Equal(t, 120.0, c.MaxRadius())
}
