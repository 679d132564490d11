package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/geo_content_engine/internal/models"
	"github.com/shenikar/geo_content_engine/internal/service"
	"github.com/shenikar/geo_content_engine/internal/service/mocks"
	"github.com/shenikar/geo_content_engine/internal/webhook"
	webhookmocks "github.com/shenikar/geo_content_engine/internal/webhook/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func testTriggerEvent() models.TriggerEvent {
	return models.TriggerEvent{
		ID:        uuid.New(),
		DeviceID:  "phone-1",
		Place:     models.Place{ID: "plaza", Content: models.Content{Title: "Plaza"}},
		Position:  models.Coordinate{Latitude: 4.6, Longitude: -74.08},
		DistanceM: 12.6,
		FiredAt:   time.Now(),
	}
}

func TestVisitLogger_LogVisit(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockVisitRepository(ctrl)
	publisher := webhookmocks.NewMockWebhookPublisher(ctrl)
	logger := service.NewVisitLogger(repo, publisher, newTestLogger())
	ctx := context.Background()
	event := testTriggerEvent()

	repo.EXPECT().SaveVisit(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, v *models.Visit) error {
		assert.Equal(t, event.ID, v.EventID)
		assert.Equal(t, "plaza", v.PlaceID)
		assert.Equal(t, 13, v.DistanceM)
		return nil
	})
	publisher.EXPECT().Publish(ctx, webhook.NewVisitEvent(event)).Return(nil)

	assert.NoError(t, logger.LogVisit(ctx, event))
}

func TestVisitLogger_JoinsErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockVisitRepository(ctrl)
	publisher := webhookmocks.NewMockWebhookPublisher(ctrl)
	logger := service.NewVisitLogger(repo, publisher, newTestLogger())
	ctx := context.Background()

	dbErr := errors.New("db down")
	redisErr := errors.New("redis down")
	repo.EXPECT().SaveVisit(ctx, gomock.Any()).Return(dbErr)
	publisher.EXPECT().Publish(ctx, gomock.Any()).Return(redisErr)

	err := logger.LogVisit(ctx, testTriggerEvent())
	assert.ErrorIs(t, err, dbErr)
	assert.ErrorIs(t, err, redisErr)
}

func TestVisitLogger_WithoutPublisher(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockVisitRepository(ctrl)
	logger := service.NewVisitLogger(repo, nil, newTestLogger())

	repo.EXPECT().SaveVisit(gomock.Any(), gomock.Any()).Return(nil)

	assert.NoError(t, logger.LogVisit(context.Background(), testTriggerEvent()))
}
