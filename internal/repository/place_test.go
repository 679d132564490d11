package repository

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shenikar/geo_content_engine/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var placeRowColumns = []string{
	"id", "latitude", "longitude", "radius_m", "cooldown_min", "start_at", "end_at",
	"priority", "status", "content", "created_at", "updated_at",
}

func newMockPool(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func placeRow(t *testing.T, id string, priority int, content models.Content, at time.Time) []any {
	t.Helper()
	raw, err := json.Marshal(content)
	require.NoError(t, err)
	cooldown := 5.0
	return []any{id, 4.65, -74.06, 100.0, &cooldown, "09:00", "18:00", priority, models.PlaceStatusActive, raw, at, at}
}

func TestPlaceRepository_Create(t *testing.T) {
	mock := newMockPool(t)
	repo := NewPlaceRepository(mock, nil)
	now := time.Now()
	place := &models.Place{
		ID:      "plaza",
		Center:  models.Coordinate{Latitude: 4.65, Longitude: -74.06},
		RadiusM: 80,
		Status:  models.PlaceStatusActive,
		Content: models.Content{Title: "Plaza"},
	}

	mock.ExpectQuery("INSERT INTO places").
		WithArgs("plaza", -74.06, 4.65, 80.0, pgxmock.AnyArg(), "", "", 0, models.PlaceStatusActive, pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	require.NoError(t, repo.Create(context.Background(), place))
	assert.Equal(t, now, place.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPlaceRepository_CreateDuplicate(t *testing.T) {
	mock := newMockPool(t)
	repo := NewPlaceRepository(mock, nil)

	mock.ExpectQuery("INSERT INTO places").
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})

	err := repo.Create(context.Background(), &models.Place{ID: "plaza"})
	assert.ErrorIs(t, err, models.ErrPlaceExists)
}

func TestPlaceRepository_GetByID(t *testing.T) {
	mock := newMockPool(t)
	repo := NewPlaceRepository(mock, nil)
	now := time.Now()

	mock.ExpectQuery("SELECT (.+) FROM places WHERE id").
		WithArgs("plaza").
		WillReturnRows(pgxmock.NewRows(placeRowColumns).AddRow(placeRow(t, "plaza", 2, models.Content{Title: "Plaza", Narrate: true}, now)...))

	place, err := repo.GetByID(context.Background(), "plaza")
	require.NoError(t, err)
	assert.Equal(t, "plaza", place.ID)
	assert.Equal(t, models.Coordinate{Latitude: 4.65, Longitude: -74.06}, place.Center)
	require.NotNil(t, place.CooldownMin)
	assert.Equal(t, 5.0, *place.CooldownMin)
	assert.Equal(t, "Plaza", place.Content.Title)
	assert.True(t, place.Content.Narrate)
	assert.Equal(t, 2, place.Priority)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPlaceRepository_GetByIDNotFound(t *testing.T) {
	mock := newMockPool(t)
	repo := NewPlaceRepository(mock, nil)

	mock.ExpectQuery("SELECT (.+) FROM places WHERE id").
		WithArgs("missing").
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, models.ErrPlaceNotFound)
}

func TestPlaceRepository_UpdateNotFound(t *testing.T) {
	mock := newMockPool(t)
	repo := NewPlaceRepository(mock, nil)

	mock.ExpectExec("UPDATE places SET").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.Update(context.Background(), &models.Place{ID: "missing", RadiusM: 10})
	assert.ErrorIs(t, err, models.ErrPlaceNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPlaceRepository_Delete(t *testing.T) {
	mock := newMockPool(t)
	repo := NewPlaceRepository(mock, nil)

	mock.ExpectExec("UPDATE places SET").
		WithArgs("plaza").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	require.NoError(t, repo.Delete(context.Background(), "plaza"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPlaceRepository_Load(t *testing.T) {
	mock := newMockPool(t)
	repo := NewPlaceRepository(mock, nil)
	now := time.Now()

	mock.ExpectQuery("SELECT (.+) FROM places WHERE status = 'active'").
		WillReturnRows(pgxmock.NewRows(placeRowColumns).
			AddRow(placeRow(t, "first", 0, models.Content{Title: "A"}, now)...).
			AddRow(placeRow(t, "second", 1, models.Content{Title: "B"}, now)...))

	places, err := repo.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, places, 2)
	assert.Equal(t, "first", places[0].ID)
	assert.Equal(t, "second", places[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPlaceRepository_ListPlaces(t *testing.T) {
	mock := newMockPool(t)
	repo := NewPlaceRepository(mock, nil)
	now := time.Now()

	mock.ExpectQuery("SELECT (.+) FROM places").
		WithArgs(10, 10).
		WillReturnRows(pgxmock.NewRows(placeRowColumns).AddRow(placeRow(t, "p11", 11, models.Content{}, now)...))

	places, err := repo.ListPlaces(context.Background(), 2, 10)
	require.NoError(t, err)
	require.Len(t, places, 1)
	assert.Equal(t, "p11", places[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
