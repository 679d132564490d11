package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shenikar/geo_content_engine/internal/catalog"
	"github.com/shenikar/geo_content_engine/internal/config"
	"github.com/shenikar/geo_content_engine/internal/geo"
	"github.com/shenikar/geo_content_engine/internal/models"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=place.go -destination=mocks/mock_place.go -package=mocks

// PlaceRepository определяет контракт для работы с бд мест
type PlaceRepository interface {
	Create(ctx context.Context, place *models.Place) error
	GetByID(ctx context.Context, id string) (*models.Place, error)
	Update(ctx context.Context, place *models.Place) error
	Delete(ctx context.Context, id string) error
	ListPlaces(ctx context.Context, page, pageSize int) ([]*models.Place, error)
	GetPlaceFromCache(ctx context.Context, id string) (*models.Place, error)
	SetPlaceCache(ctx context.Context, place *models.Place) error
	InvalidatePlaceCache(ctx context.Context, id string) error
}

// CatalogReloader активный каталог, который перечитывается после изменений
type CatalogReloader interface {
	Current() *catalog.Catalog
	Reload(ctx context.Context) (*catalog.Catalog, error)
}

// PlaceService определяет контракт для бизнес-логики управления местами
type PlaceService interface {
	CreatePlace(ctx context.Context, place *models.Place) error
	GetPlace(ctx context.Context, id string) (*models.Place, error)
	UpdatePlace(ctx context.Context, place *models.Place) error
	DeactivatePlace(ctx context.Context, id string) error
	ListPlaces(ctx context.Context, page, pageSize int) ([]*models.Place, error)
	NearbyPlaces(ctx context.Context, position models.Coordinate, radiusM float64) ([]models.Place, error)
	GetStats(ctx context.Context, placeID string) (*models.PlaceStats, error)
}

type placeService struct {
	repo    PlaceRepository
	visits  VisitRepository
	catalog CatalogReloader
	logger  *logrus.Logger
	cfg     *config.Config
}

func NewPlaceService(repo PlaceRepository, visits VisitRepository, catalog CatalogReloader, logger *logrus.Logger, cfg *config.Config) PlaceService {
	return &placeService{
		repo:    repo,
		visits:  visits,
		catalog: catalog,
		logger:  logger,
		cfg:     cfg,
	}
}

// CreatePlace создает место и перечитывает каталог
func (s *placeService) CreatePlace(ctx context.Context, place *models.Place) error {
	if strings.TrimSpace(place.ID) == "" {
		place.ID = uuid.NewString()
	}
	log := s.logger.WithFields(logrus.Fields{
		"service":  "place",
		"method":   "CreatePlace",
		"place_id": place.ID,
	})
	log.Info("Attempting to create a new place")

	place.Status = models.PlaceStatusActive
	if err := s.repo.Create(ctx, place); err != nil {
		log.WithError(err).Error("Failed to create place in repository")
		return fmt.Errorf("service: could not create place: %w", err)
	}

	if err := s.repo.InvalidatePlaceCache(ctx, place.ID); err != nil {
		log.WithError(err).Warn("Failed to invalidate place cache")
	}
	s.reloadCatalog(ctx, log)

	log.Info("Place created successfully")
	return nil
}

// GetPlace получает место по ID, сначала из кеша
func (s *placeService) GetPlace(ctx context.Context, id string) (*models.Place, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "place",
		"method":   "GetPlace",
		"place_id": id,
	})
	log.Info("Fetching place by ID")

	cached, err := s.repo.GetPlaceFromCache(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to read place from cache")
	}
	if cached != nil {
		log.Debug("Place served from cache")
		return cached, nil
	}

	place, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Error("Failed to get place in repository")
		return nil, fmt.Errorf("service: could not get place: %w", err)
	}

	if err := s.repo.SetPlaceCache(ctx, place); err != nil {
		log.WithError(err).Warn("Failed to cache place")
	}

	log.Info("Place fetched successfully")
	return place, nil
}

// UpdatePlace обновляет существующее место
func (s *placeService) UpdatePlace(ctx context.Context, place *models.Place) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "place",
		"method":   "UpdatePlace",
		"place_id": place.ID,
	})
	log.Info("Attempting to update place")

	existing, err := s.repo.GetByID(ctx, place.ID)
	if err != nil {
		log.WithError(err).Warn("Attempted to update a non-existent place")
		return fmt.Errorf("service: place with id %s not found for update: %w", place.ID, err)
	}

	existing.Center = place.Center
	existing.RadiusM = place.RadiusM
	existing.CooldownMin = place.CooldownMin
	existing.StartAt = place.StartAt
	existing.EndAt = place.EndAt
	existing.Priority = place.Priority
	existing.Content = place.Content
	if place.Status != "" {
		existing.Status = place.Status
	}

	if err := s.repo.Update(ctx, existing); err != nil {
		log.WithError(err).Error("Failed to update place in repository")
		return fmt.Errorf("service: could not update place: %w", err)
	}

	if err := s.repo.InvalidatePlaceCache(ctx, place.ID); err != nil {
		log.WithError(err).Warn("Failed to invalidate place cache")
	}
	s.reloadCatalog(ctx, log)

	log.Info("Place updated successfully")
	return nil
}

// DeactivatePlace деактивирует место, оно перестает срабатывать после перезагрузки каталога
func (s *placeService) DeactivatePlace(ctx context.Context, id string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "place",
		"method":   "DeactivatePlace",
		"place_id": id,
	})
	log.Info("Attempting to deactivate place")

	if _, err := s.repo.GetByID(ctx, id); err != nil {
		log.WithError(err).Warn("Attempted to deactivate a non-existent place")
		return fmt.Errorf("service: place with id %s not found for deactivate: %w", id, err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		log.WithError(err).Error("Failed to deactivate place in repository")
		return fmt.Errorf("service: could not deactivate place: %w", err)
	}

	if err := s.repo.InvalidatePlaceCache(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to invalidate place cache")
	}
	s.reloadCatalog(ctx, log)

	log.Info("Place deactivated successfully")
	return nil
}

// ListPlaces возвращает список мест с пагинацией
func (s *placeService) ListPlaces(ctx context.Context, page, pageSize int) ([]*models.Place, error) {
	if page < 1 {
		page = 1
	}

	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	log := s.logger.WithFields(logrus.Fields{
		"service":   "place",
		"method":    "ListPlaces",
		"page":      page,
		"page_size": pageSize,
	})
	log.Info("Listing places")

	places, err := s.repo.ListPlaces(ctx, page, pageSize)
	if err != nil {
		log.WithError(err).Error("Failed to list places from repository")
		return nil, fmt.Errorf("service: could not list places: %w", err)
	}

	log.WithField("count", len(places)).Info("Places listed successfully")
	return places, nil
}

// NearbyPlaces места активного каталога в радиусе от точки, без учета окна и подавления
func (s *placeService) NearbyPlaces(_ context.Context, position models.Coordinate, radiusM float64) ([]models.Place, error) {
	if radiusM <= 0 {
		radiusM = s.cfg.NearbyRadiusM
	}
	places := geo.Nearby(position, s.catalog.Current().Places(), radiusM)

	s.logger.WithFields(logrus.Fields{
		"service":  "place",
		"method":   "NearbyPlaces",
		"radius_m": radiusM,
		"count":    len(places),
	}).Debug("Nearby places computed")
	return places, nil
}

// GetStats статистика посещений места за окно STATS_TIME_WINDOW_MINUTES
func (s *placeService) GetStats(ctx context.Context, placeID string) (*models.PlaceStats, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "place",
		"method":   "GetStats",
		"place_id": placeID,
	})

	if _, err := s.GetPlace(ctx, placeID); err != nil {
		return nil, err
	}

	stats, err := s.visits.GetVisitStats(ctx, placeID, s.cfg.StatsTimeWindowMinutes)
	if err != nil {
		log.WithError(err).Error("Failed to get visit stats from repository")
		return nil, fmt.Errorf("service: could not get place stats: %w", err)
	}
	return stats, nil
}

// reloadCatalog ошибка перезагрузки не отменяет уже выполненное изменение
func (s *placeService) reloadCatalog(ctx context.Context, log *logrus.Entry) {
	if s.catalog == nil {
		return
	}
	if _, err := s.catalog.Reload(ctx); err != nil {
		log.WithError(err).Warn("Place saved but catalog reload failed")
	}
}

// IsNotFound сообщает, что ошибка означает отсутствие места
func IsNotFound(err error) bool {
	return errors.Is(err, models.ErrPlaceNotFound)
}
