package trigger

import (
	"testing"

	"github.com/shenikar/geo_content_engine/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestCooldownTracker_EmptyIsCooled(t *testing.T) {
	tracker := NewCooldownTracker(nil, nil)

	assert.True(t, tracker.IsCooled("p1", 1000, 60000))
}

func TestCooldownTracker_Boundary(t *testing.T) {
	const cooldown = int64(15 * 60000)
	const stampedAt = int64(1_700_000_000_000)
	tracker := NewCooldownTracker(nil, nil)

	tracker.Stamp("p1", stampedAt)

	assert.False(t, tracker.IsCooled("p1", stampedAt+cooldown-1, cooldown))
	assert.False(t, tracker.IsCooled("p1", stampedAt+cooldown, cooldown), "exact boundary is still cooling")
	assert.True(t, tracker.IsCooled("p1", stampedAt+cooldown+1, cooldown))
	assert.True(t, tracker.IsCooled("p2", stampedAt, cooldown), "other places are unaffected")
}

func TestCooldownTracker_ZeroCooldownNeverBlocks(t *testing.T) {
	tracker := NewCooldownTracker(nil, nil)
	tracker.Stamp("p1", 5000)

	assert.True(t, tracker.IsCooled("p1", 5000, 0))
}

func TestCooldownTracker_SeededFromSnapshot(t *testing.T) {
	snapshot := map[string]int64{"p1": 1000}
	tracker := NewCooldownTracker(snapshot, nil)

	assert.False(t, tracker.IsCooled("p1", 2000, 60000))

	// трекер не должен разделять карту с вызывающим кодом
	snapshot["p1"] = 0
	last, ok := tracker.LastFired("p1")
	assert.True(t, ok)
	assert.Equal(t, int64(1000), last)
}

func TestCooldownTracker_StampOverwritesAndNotifies(t *testing.T) {
	var stamped []int64
	tracker := NewCooldownTracker(nil, func(placeID string, firedAtMs int64) {
		assert.Equal(t, "p1", placeID)
		stamped = append(stamped, firedAtMs)
	})

	tracker.Stamp("p1", 10)
	tracker.Stamp("p1", 20)

	assert.Equal(t, []int64{10, 20}, stamped)
	assert.Equal(t, map[string]int64{"p1": 20}, tracker.Snapshot())
}

func TestCooldownTracker_HugeCooldownBlocks(t *testing.T) {
	place := models.Place{ID: "p1", CooldownMin: func(v float64) *float64 { return &v }(1e15)}
	tracker := NewCooldownTracker(nil, nil)
	tracker.Stamp("p1", 5000)

	assert.False(t, tracker.IsCooled("p1", 5001, place.CooldownMs()))
	assert.False(t, tracker.IsCooled("p1", 5000+365*24*60*60000, place.CooldownMs()))
}
