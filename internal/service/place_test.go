package service_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shenikar/geo_content_engine/internal/catalog"
	"github.com/shenikar/geo_content_engine/internal/config"
	"github.com/shenikar/geo_content_engine/internal/models"
	"github.com/shenikar/geo_content_engine/internal/service"
	"github.com/shenikar/geo_content_engine/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type placeServiceDeps struct {
	repo    *mocks.MockPlaceRepository
	visits  *mocks.MockVisitRepository
	catalog *mocks.MockCatalogReloader
}

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	return logger
}

func newTestPlaceService(t *testing.T) (service.PlaceService, placeServiceDeps) {
	ctrl := gomock.NewController(t)
	deps := placeServiceDeps{
		repo:    mocks.NewMockPlaceRepository(ctrl),
		visits:  mocks.NewMockVisitRepository(ctrl),
		catalog: mocks.NewMockCatalogReloader(ctrl),
	}
	cfg := &config.Config{
		StatsTimeWindowMinutes: 60,
		NearbyRadiusM:          1000,
	}
	svc := service.NewPlaceService(deps.repo, deps.visits, deps.catalog, newTestLogger(), cfg)
	return svc, deps
}

func TestPlaceService_CreatePlace(t *testing.T) {
	svc, deps := newTestPlaceService(t)
	ctx := context.Background()

	t.Run("assigns id and reloads catalog", func(t *testing.T) {
		place := &models.Place{RadiusM: 50, Status: models.PlaceStatusInactive}

		deps.repo.EXPECT().Create(ctx, place).Return(nil)
		deps.repo.EXPECT().InvalidatePlaceCache(ctx, gomock.Any()).Return(nil)
		deps.catalog.EXPECT().Reload(ctx).Return(catalog.New(nil, time.Now()), nil)

		require.NoError(t, svc.CreatePlace(ctx, place))
		assert.NotEmpty(t, place.ID)
		assert.Equal(t, models.PlaceStatusActive, place.Status)
	})

	t.Run("repository error", func(t *testing.T) {
		place := &models.Place{ID: "plaza", RadiusM: 50}
		deps.repo.EXPECT().Create(ctx, place).Return(models.ErrPlaceExists)

		err := svc.CreatePlace(ctx, place)
		assert.ErrorIs(t, err, models.ErrPlaceExists)
	})

	t.Run("catalog reload failure keeps result", func(t *testing.T) {
		place := &models.Place{ID: "museo", RadiusM: 50}
		deps.repo.EXPECT().Create(ctx, place).Return(nil)
		deps.repo.EXPECT().InvalidatePlaceCache(ctx, "museo").Return(errors.New("redis down"))
		deps.catalog.EXPECT().Reload(ctx).Return(nil, errors.New("db down"))

		assert.NoError(t, svc.CreatePlace(ctx, place))
	})
}

func TestPlaceService_GetPlace(t *testing.T) {
	svc, deps := newTestPlaceService(t)
	ctx := context.Background()
	expected := &models.Place{ID: "plaza", RadiusM: 50}

	t.Run("from cache", func(t *testing.T) {
		deps.repo.EXPECT().GetPlaceFromCache(ctx, "plaza").Return(expected, nil)

		place, err := svc.GetPlace(ctx, "plaza")
		require.NoError(t, err)
		assert.Equal(t, expected, place)
	})

	t.Run("from db and cache it", func(t *testing.T) {
		deps.repo.EXPECT().GetPlaceFromCache(ctx, "plaza").Return(nil, nil)
		deps.repo.EXPECT().GetByID(ctx, "plaza").Return(expected, nil)
		deps.repo.EXPECT().SetPlaceCache(ctx, expected).Return(nil)

		place, err := svc.GetPlace(ctx, "plaza")
		require.NoError(t, err)
		assert.Equal(t, expected, place)
	})

	t.Run("cache error falls back to db", func(t *testing.T) {
		deps.repo.EXPECT().GetPlaceFromCache(ctx, "plaza").Return(nil, errors.New("redis down"))
		deps.repo.EXPECT().GetByID(ctx, "plaza").Return(expected, nil)
		deps.repo.EXPECT().SetPlaceCache(ctx, expected).Return(errors.New("redis down"))

		place, err := svc.GetPlace(ctx, "plaza")
		require.NoError(t, err)
		assert.Equal(t, expected, place)
	})

	t.Run("not found", func(t *testing.T) {
		deps.repo.EXPECT().GetPlaceFromCache(ctx, "missing").Return(nil, nil)
		deps.repo.EXPECT().GetByID(ctx, "missing").Return(nil, models.ErrPlaceNotFound)

		_, err := svc.GetPlace(ctx, "missing")
		assert.True(t, service.IsNotFound(err))
	})
}

func TestPlaceService_UpdatePlace(t *testing.T) {
	svc, deps := newTestPlaceService(t)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		existing := &models.Place{ID: "plaza", RadiusM: 50, Status: models.PlaceStatusActive}
		update := &models.Place{ID: "plaza", RadiusM: 120, Priority: 3, Content: models.Content{Title: "Nueva"}}

		deps.repo.EXPECT().GetByID(ctx, "plaza").Return(existing, nil)
		deps.repo.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, p *models.Place) error {
			assert.Equal(t, 120.0, p.RadiusM)
			assert.Equal(t, 3, p.Priority)
			assert.Equal(t, "Nueva", p.Content.Title)
			assert.Equal(t, models.PlaceStatusActive, p.Status)
			return nil
		})
		deps.repo.EXPECT().InvalidatePlaceCache(ctx, "plaza").Return(nil)
		deps.catalog.EXPECT().Reload(ctx).Return(catalog.New(nil, time.Now()), nil)

		assert.NoError(t, svc.UpdatePlace(ctx, update))
	})

	t.Run("not found", func(t *testing.T) {
		deps.repo.EXPECT().GetByID(ctx, "missing").Return(nil, models.ErrPlaceNotFound)

		err := svc.UpdatePlace(ctx, &models.Place{ID: "missing"})
		assert.True(t, service.IsNotFound(err))
	})
}

func TestPlaceService_DeactivatePlace(t *testing.T) {
	svc, deps := newTestPlaceService(t)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		deps.repo.EXPECT().GetByID(ctx, "plaza").Return(&models.Place{ID: "plaza"}, nil)
		deps.repo.EXPECT().Delete(ctx, "plaza").Return(nil)
		deps.repo.EXPECT().InvalidatePlaceCache(ctx, "plaza").Return(nil)
		deps.catalog.EXPECT().Reload(ctx).Return(catalog.New(nil, time.Now()), nil)

		assert.NoError(t, svc.DeactivatePlace(ctx, "plaza"))
	})

	t.Run("not found", func(t *testing.T) {
		deps.repo.EXPECT().GetByID(ctx, "missing").Return(nil, models.ErrPlaceNotFound)

		assert.True(t, service.IsNotFound(svc.DeactivatePlace(ctx, "missing")))
	})
}

func TestPlaceService_ListPlaces(t *testing.T) {
	svc, deps := newTestPlaceService(t)
	ctx := context.Background()
	expected := []*models.Place{{ID: "a"}, {ID: "b"}}

	deps.repo.EXPECT().ListPlaces(ctx, 1, 20).Return(expected, nil)

	places, err := svc.ListPlaces(ctx, 0, 500)
	require.NoError(t, err)
	assert.Equal(t, expected, places)
}

func TestPlaceService_NearbyPlaces(t *testing.T) {
	svc, deps := newTestPlaceService(t)
	ctx := context.Background()
	origin := models.Coordinate{Latitude: 4.6, Longitude: -74.08}
	current := catalog.New([]models.Place{
		{ID: "close", Center: models.Coordinate{Latitude: 4.6009, Longitude: -74.08}, RadiusM: 50},
		{ID: "far", Center: models.Coordinate{Latitude: 4.7, Longitude: -74.08}, RadiusM: 50},
		{ID: "mid", Center: models.Coordinate{Latitude: 4.6045, Longitude: -74.08}, RadiusM: 50},
	}, time.Now())
	deps.catalog.EXPECT().Current().Return(current).Times(2)

	places, err := svc.NearbyPlaces(ctx, origin, 200)
	require.NoError(t, err)
	require.Len(t, places, 1)
	assert.Equal(t, "close", places[0].ID)

	// нулевой радиус заменяется NEARBY_RADIUS_M
	places, err = svc.NearbyPlaces(ctx, origin, 0)
	require.NoError(t, err)
	require.Len(t, places, 2)
	assert.Equal(t, "close", places[0].ID)
	assert.Equal(t, "mid", places[1].ID)
}

func TestPlaceService_GetStats(t *testing.T) {
	svc, deps := newTestPlaceService(t)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		expected := &models.PlaceStats{PlaceID: "plaza", Visits: 4, UniqueDevices: 2, WindowMinutes: 60}
		deps.repo.EXPECT().GetPlaceFromCache(ctx, "plaza").Return(&models.Place{ID: "plaza"}, nil)
		deps.visits.EXPECT().GetVisitStats(ctx, "plaza", 60).Return(expected, nil)

		stats, err := svc.GetStats(ctx, "plaza")
		require.NoError(t, err)
		assert.Equal(t, expected, stats)
	})

	t.Run("unknown place", func(t *testing.T) {
		deps.repo.EXPECT().GetPlaceFromCache(ctx, "missing").Return(nil, nil)
		deps.repo.EXPECT().GetByID(ctx, "missing").Return(nil, models.ErrPlaceNotFound)

		_, err := svc.GetStats(ctx, "missing")
		assert.True(t, service.IsNotFound(err))
	})
}
