package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/geo_content_engine/internal/models"
	"github.com/shenikar/geo_content_engine/internal/narration"
	"github.com/shenikar/geo_content_engine/internal/service"
	"github.com/shenikar/geo_content_engine/internal/stream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSubmitPosition_Triggered(t *testing.T) {
	_, services, router := newTestHandler(t)
	sampledAt := time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)
	event := &models.TriggerEvent{
		ID:       uuid.New(),
		DeviceID: "phone-1",
		Place: models.Place{
			ID:      "museo",
			Content: models.Content{Title: "Museo", CTAURL: "https://example.org", Narrate: true},
		},
		DistanceM: 12.5,
		FiredAt:   sampledAt,
	}

	services.devices.EXPECT().
		HandlePosition(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, pos models.DevicePosition) (*models.TriggerEvent, error) {
			assert.Equal(t, "phone-1", pos.DeviceID)
			assert.Equal(t, 4.6, pos.Coordinate.Latitude)
			assert.Equal(t, 8.0, pos.AccuracyM)
			assert.True(t, pos.Timestamp.Equal(sampledAt))
			assert.False(t, pos.Failed())
			return event, nil
		})

	reqBody := PositionRequest{Latitude: 4.6, Longitude: -74.08, Accuracy: 8, Timestamp: sampledAt.UnixMilli()}
	w := makeRequest(router, "POST", "/api/v1/devices/phone-1/positions", jsonBody(t, reqBody), authHeader)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp TriggerEventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, event.ID.String(), resp.EventID)
	assert.Equal(t, "museo", resp.PlaceID)
	assert.Equal(t, models.DefaultCTAText, resp.CTALabel)
	assert.True(t, resp.Narrate)
}

func TestSubmitPosition_NothingTriggered(t *testing.T) {
	_, services, router := newTestHandler(t)

	services.devices.EXPECT().HandlePosition(gomock.Any(), gomock.Any()).Return(nil, nil)

	reqBody := PositionRequest{Latitude: 4.6, Longitude: -74.08}
	w := makeRequest(router, "POST", "/api/v1/devices/phone-1/positions", jsonBody(t, reqBody), authHeader)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestSubmitPosition_SourceError(t *testing.T) {
	_, services, router := newTestHandler(t)

	services.devices.EXPECT().
		HandlePosition(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, pos models.DevicePosition) (*models.TriggerEvent, error) {
			require.True(t, pos.Failed())
			assert.Equal(t, "permission denied", pos.Err.Error())
			return nil, nil
		})

	w := makeRequest(router, "POST", "/api/v1/devices/phone-1/positions", bytes.NewBufferString(`{"error":"permission denied"}`), authHeader)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestSubmitPosition_Rejected(t *testing.T) {
	_, services, router := newTestHandler(t)

	services.devices.EXPECT().
		HandlePosition(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("%w: %w", service.ErrPositionRejected, stream.ErrStaleSample))

	reqBody := PositionRequest{Latitude: 4.6, Longitude: -74.08, Timestamp: 1}
	w := makeRequest(router, "POST", "/api/v1/devices/phone-1/positions", jsonBody(t, reqBody), authHeader)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "too old")
}

func TestSubmitPosition_ValidationError(t *testing.T) {
	_, services, router := newTestHandler(t)

	services.devices.EXPECT().HandlePosition(gomock.Any(), gomock.Any()).Times(0)

	reqBody := PositionRequest{Latitude: 4.6, Longitude: -200}
	w := makeRequest(router, "POST", "/api/v1/devices/phone-1/positions", jsonBody(t, reqBody), authHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "'Longitude'")
}

func TestSubmitPosition_ServiceClosed(t *testing.T) {
	_, services, router := newTestHandler(t)

	services.devices.EXPECT().HandlePosition(gomock.Any(), gomock.Any()).Return(nil, service.ErrServiceClosed)

	reqBody := PositionRequest{Latitude: 4.6, Longitude: -74.08}
	w := makeRequest(router, "POST", "/api/v1/devices/phone-1/positions", jsonBody(t, reqBody), authHeader)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestDismiss(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"success", nil, http.StatusNoContent},
		{"no session", service.ErrSessionNotFound, http.StatusNotFound},
		{"nothing presented", service.ErrNoPresentation, http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, services, router := newTestHandler(t)

			services.devices.EXPECT().Dismiss(gomock.Any(), "phone-1").Return(tt.err)

			w := makeRequest(router, "POST", "/api/v1/devices/phone-1/dismiss", nil, authHeader)

			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestLifecycle(t *testing.T) {
	_, services, router := newTestHandler(t)

	gomock.InOrder(
		services.devices.EXPECT().SetVisibility(gomock.Any(), "phone-1", false).Return(nil),
		services.devices.EXPECT().SetVisibility(gomock.Any(), "phone-1", true).Return(nil),
	)

	w := makeRequest(router, "POST", "/api/v1/devices/phone-1/lifecycle", jsonBody(t, LifecycleRequest{State: "hidden"}), authHeader)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = makeRequest(router, "POST", "/api/v1/devices/phone-1/lifecycle", jsonBody(t, LifecycleRequest{State: "visible"}), authHeader)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestLifecycle_InvalidState(t *testing.T) {
	_, services, router := newTestHandler(t)

	services.devices.EXPECT().SetVisibility(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "POST", "/api/v1/devices/phone-1/lifecycle", jsonBody(t, LifecycleRequest{State: "minimized"}), authHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetNarration(t *testing.T) {
	_, services, router := newTestHandler(t)
	voice := narration.Voice{Lang: "es-ES", Rate: 1, Pitch: 1}
	status := &service.NarrationStatus{
		DeviceID:  "phone-1",
		State:     narration.StateSpeaking,
		Supported: true,
		PlaceID:   "museo",
		Text:      "Museo",
		Voice:     &voice,
	}

	services.devices.EXPECT().Narration(gomock.Any(), "phone-1").Return(status, nil)

	w := makeRequest(router, "GET", "/api/v1/devices/phone-1/narration", nil, authHeader)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp NarrationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "speaking", resp.State)
	require.NotNil(t, resp.Voice)
	assert.Equal(t, "es-ES", resp.Voice.Lang)
}

func TestControlNarration(t *testing.T) {
	tests := []struct {
		name   string
		action string
		err    error
		status int
	}{
		{"pause", "pause", nil, http.StatusOK},
		{"unsupported", "play", service.ErrNarrationUnsupported, http.StatusConflict},
		{"nothing to play", "play", service.ErrNoPresentation, http.StatusConflict},
		{"unknown action", "rewind", service.ErrUnknownNarrationAction, http.StatusBadRequest},
		{"no session", "stop", service.ErrSessionNotFound, http.StatusNotFound},
		{"busy session", "stop", context.DeadlineExceeded, http.StatusGatewayTimeout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, services, router := newTestHandler(t)
			status := &service.NarrationStatus{DeviceID: "phone-1", State: narration.StatePaused, Supported: true}

			services.devices.EXPECT().
				ControlNarration(gomock.Any(), "phone-1", service.NarrationAction(tt.action)).
				Return(status, tt.err)

			w := makeRequest(router, "POST", "/api/v1/devices/phone-1/narration/"+tt.action, nil, authHeader)

			assert.Equal(t, tt.status, w.Code)
			if tt.err == nil {
				assert.Contains(t, w.Body.String(), `"state":"paused"`)
			}
		})
	}
}
