package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/geo_content_engine/internal/config"
	"github.com/shenikar/geo_content_engine/internal/models"
	"github.com/shenikar/geo_content_engine/internal/service"
	"github.com/shenikar/geo_content_engine/internal/trigger"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	placeService  service.PlaceService
	deviceService service.DeviceService
	logger        *logrus.Logger
	validate      *validator.Validate
	cfg           *config.Config
}

func NewHandler(placeService service.PlaceService, deviceService service.DeviceService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		placeService:  placeService,
		deviceService: deviceService,
		logger:        logger,
		validate:      newValidator(),
		cfg:           cfg,
	}
}

// newValidator добавляет правило clock для суточных окон "HH:MM"
func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("clock", func(fl validator.FieldLevel) bool {
		_, _, err := trigger.ParseClock(fl.Field().String())
		return err == nil
	})
	return v
}

// @Summary Create a new place
// @Description Create a new place and reload the active catalog. Requires API key.
// @Tags Places
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param place body CreatePlaceRequest true "Place creation request"
// @Success 201 {object} PlaceResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Place already exists"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /places [post]
func (h *Handler) createPlace(c *gin.Context) {
	var input CreatePlaceRequest
	log := h.logger.WithField("method", "createPlace")

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

	model := DTOToPlaceModel(input)
	if err := h.placeService.CreatePlace(c.Request.Context(), model); err != nil {
		if errors.Is(err, models.ErrPlaceExists) {
			c.JSON(http.StatusConflict, gin.H{"error": "place already exists"})
			return
		}
		log.WithError(err).Error("Failed to create place in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, ModelToPlaceResponse(model))
}

// @Summary Get a list of places
// @Description Get a paginated list of places in priority order. Requires API key.
// @Tags Places
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(10)
// @Success 200 {array} PlaceResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /places [get]
func (h *Handler) listPlaces(c *gin.Context) {
	log := h.logger.WithField("method", "listPlaces")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))

	places, err := h.placeService.ListPlaces(c.Request.Context(), page, pageSize)
	if err != nil {
		log.WithError(err).Error("Failed to list places from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToPlaceResponses(places))
}

// @Summary Get place by ID
// @Description Get a single place by its ID. Requires API key.
// @Tags Places
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Place ID"
// @Success 200 {object} PlaceResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Place not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /places/{id} [get]
func (h *Handler) getPlace(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "getPlace").WithField("id", id)

	place, err := h.placeService.GetPlace(c.Request.Context(), id)
	if err != nil {
		h.placeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToPlaceResponse(place))
}

// @Summary Update an existing place
// @Description Update an existing place by ID and reload the active catalog. Requires API key.
// @Tags Places
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Place ID"
// @Param place body UpdatePlaceRequest true "Place update request"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Place not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /places/{id} [put]
func (h *Handler) updatePlace(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "updatePlace").WithField("id", id)

	var input UpdatePlaceRequest
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

	model := DTOToPlaceModel(input)
	model.ID = id

	if err := h.placeService.UpdatePlace(c.Request.Context(), model); err != nil {
		h.placeError(c, log, err)
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Deactivate a place
// @Description Deactivate a place by its ID. It stops triggering after the catalog reload. Requires API key.
// @Tags Places
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Place ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Place not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /places/{id} [delete]
func (h *Handler) deletePlace(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "deletePlace").WithField("id", id)

	if err := h.placeService.DeactivatePlace(c.Request.Context(), id); err != nil {
		h.placeError(c, log, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Find places near a point
// @Description Active catalog places whose center lies within the radius, in catalog order. Time windows and cooldowns are ignored. Requires API key.
// @Tags Places
// @Produce json
// @Security ApiKeyAuth
// @Param lat query number true "Latitude"
// @Param lon query number true "Longitude"
// @Param radius query number false "Search radius in meters, NEARBY_RADIUS_M when omitted"
// @Success 200 {array} NearbyPlaceResponse
// @Failure 400 {object} map[string]string "Invalid query"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /places/nearby [get]
func (h *Handler) nearbyPlaces(c *gin.Context) {
	var query NearbyQuery
	log := h.logger.WithField("method", "nearbyPlaces")

	if err := c.ShouldBindQuery(&query); err != nil {
		log.WithError(err).Warn("Failed to bind query")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query"})
		return
	}

	if err := h.validate.Struct(query); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	origin := models.Coordinate{Latitude: *query.Latitude, Longitude: *query.Longitude}
	places, err := h.placeService.NearbyPlaces(c.Request.Context(), origin, query.RadiusM)
	if err != nil {
		log.WithError(err).Error("Failed to find nearby places")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToNearbyResponses(origin, places))
}

// @Summary Get place statistics
// @Description Visits and unique devices for the place within STATS_TIME_WINDOW_MINUTES. Requires API key.
// @Tags Places
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Place ID"
// @Success 200 {object} StatsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Place not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /places/{id}/stats [get]
func (h *Handler) getStats(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "getStats").WithField("id", id)

	stats, err := h.placeService.GetStats(c.Request.Context(), id)
	if err != nil {
		h.placeError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, StatsToResponse(stats))
}

// @Summary Get application health status
// @Description Liveness check
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) placeError(c *gin.Context, log *logrus.Entry, err error) {
	if service.IsNotFound(err) {
		log.WithError(err).Warn("Place not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "place not found"})
		return
	}
	log.WithError(err).Error("Place service failed")
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
