package v1

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/geo_content_engine/internal/service"
	"github.com/shenikar/geo_content_engine/internal/stream"
	"github.com/sirupsen/logrus"
)

// @Summary Submit a position sample
// @Description Feeds one position sample into the device session. Returns the triggered place or 204 when nothing fired. Requires API key.
// @Tags Devices
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Device ID"
// @Param position body PositionRequest true "Position sample"
// @Success 200 {object} TriggerEventResponse
// @Success 204 "Nothing triggered"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 422 {object} map[string]string "Sample rejected by freshness or accuracy gate"
// @Router /devices/{id}/positions [post]
func (h *Handler) submitPosition(c *gin.Context) {
	deviceID := c.Param("id")
	log := h.logger.WithField("method", "submitPosition").WithField("device_id", deviceID)

	var input PositionRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pos := DTOToDevicePosition(deviceID, input, time.Now())
	event, err := h.deviceService.HandlePosition(c.Request.Context(), pos)
	if err != nil {
		h.deviceError(c, log, err)
		return
	}
	if event == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, ModelToTriggerEventResponse(event))
}

// @Summary Dismiss the presented content
// @Description Clears the active presentation and stops narration. Requires API key.
// @Tags Devices
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Device ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Device session not found"
// @Failure 409 {object} map[string]string "Nothing is presented"
// @Router /devices/{id}/dismiss [post]
func (h *Handler) dismiss(c *gin.Context) {
	deviceID := c.Param("id")
	log := h.logger.WithField("method", "dismiss").WithField("device_id", deviceID)

	if err := h.deviceService.Dismiss(c.Request.Context(), deviceID); err != nil {
		h.deviceError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Report client visibility
// @Description A hidden client keeps triggering but its narration is stopped. Requires API key.
// @Tags Devices
// @Accept json
// @Security ApiKeyAuth
// @Param id path string true "Device ID"
// @Param lifecycle body LifecycleRequest true "Visibility state"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Device session not found"
// @Router /devices/{id}/lifecycle [post]
func (h *Handler) lifecycle(c *gin.Context) {
	deviceID := c.Param("id")
	log := h.logger.WithField("method", "lifecycle").WithField("device_id", deviceID)

	var input LifecycleRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	visible := input.State == stream.LifecycleVisible
	if err := h.deviceService.SetVisibility(c.Request.Context(), deviceID, visible); err != nil {
		h.deviceError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Get narration state
// @Tags Devices
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Device ID"
// @Success 200 {object} NarrationResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Device session not found"
// @Router /devices/{id}/narration [get]
func (h *Handler) getNarration(c *gin.Context) {
	deviceID := c.Param("id")
	log := h.logger.WithField("method", "getNarration").WithField("device_id", deviceID)

	status, err := h.deviceService.Narration(c.Request.Context(), deviceID)
	if err != nil {
		h.deviceError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, StatusToNarrationResponse(status))
}

// @Summary Control narration
// @Description Applies play, pause, resume or stop to the device narration. Requires API key.
// @Tags Devices
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Device ID"
// @Param action path string true "Narration action" Enums(play, pause, resume, stop)
// @Success 200 {object} NarrationResponse
// @Failure 400 {object} map[string]string "Unknown action"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Device session not found"
// @Failure 409 {object} map[string]string "Narration unsupported or nothing to narrate"
// @Router /devices/{id}/narration/{action} [post]
func (h *Handler) controlNarration(c *gin.Context) {
	deviceID := c.Param("id")
	action := service.NarrationAction(c.Param("action"))
	log := h.logger.WithFields(logrus.Fields{
		"method":    "controlNarration",
		"device_id": deviceID,
		"action":    action,
	})

	status, err := h.deviceService.ControlNarration(c.Request.Context(), deviceID, action)
	if err != nil {
		h.deviceError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, StatusToNarrationResponse(status))
}

func (h *Handler) deviceError(c *gin.Context, log *logrus.Entry, err error) {
	status, message := deviceErrorStatus(err)
	if status >= http.StatusInternalServerError {
		log.WithError(err).Error("Device service failed")
	} else {
		log.WithError(err).Debug("Device request refused")
	}
	c.JSON(status, gin.H{"error": message})
}

func deviceErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, service.ErrPositionRejected):
		return http.StatusUnprocessableEntity, err.Error()
	case errors.Is(err, service.ErrSessionNotFound):
		return http.StatusNotFound, "device session not found"
	case errors.Is(err, service.ErrNarrationUnsupported):
		return http.StatusConflict, "narration is not supported"
	case errors.Is(err, service.ErrNoPresentation):
		return http.StatusConflict, err.Error()
	case errors.Is(err, service.ErrUnknownNarrationAction):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, service.ErrServiceClosed), errors.Is(err, service.ErrSessionClosed):
		return http.StatusServiceUnavailable, "service is shutting down"
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "device session is busy"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}
