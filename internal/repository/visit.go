package repository

import (
	"context"
	"fmt"

	"github.com/shenikar/geo_content_engine/internal/models"
	"github.com/shenikar/geo_content_engine/internal/service"
)

type VisitRepository struct {
	db DB
}

func NewVisitRepository(db DB) *VisitRepository {
	return &VisitRepository{db: db}
}

var _ service.VisitRepository = (*VisitRepository)(nil)

// SaveVisit сохраняет запись о посещении места в бд
func (r *VisitRepository) SaveVisit(ctx context.Context, visit *models.Visit) error {
	query := `
		INSERT INTO visits (event_id, device_id, place_id, distance_m, location, visited_at)
		VALUES ($1, $2, $3, $4, ST_SetSRID(ST_MakePoint($5, $6), 4326), $7)
		RETURNING id;
	`
	err := r.db.QueryRow(ctx, query,
		visit.EventID,
		visit.DeviceID,
		visit.PlaceID,
		visit.DistanceM,
		visit.Position.Longitude,
		visit.Position.Latitude,
		visit.VisitedAt,
	).Scan(&visit.ID)
	if err != nil {
		return fmt.Errorf("failed to save visit: %w", err)
	}
	return nil
}

// GetVisitStats возвращает число посещений места и уникальных устройств за последние minutes минут
func (r *VisitRepository) GetVisitStats(ctx context.Context, placeID string, minutes int) (*models.PlaceStats, error) {
	query := `
		SELECT COUNT(*), COUNT(DISTINCT device_id)
		FROM visits
		WHERE place_id = $1
			AND visited_at >= NOW() - ($2 * INTERVAL '1 minute');
	`
	stats := &models.PlaceStats{
		PlaceID:       placeID,
		WindowMinutes: minutes,
	}
	if err := r.db.QueryRow(ctx, query, placeID, minutes).Scan(&stats.Visits, &stats.UniqueDevices); err != nil {
		return nil, fmt.Errorf("failed to get visit stats: %w", err)
	}
	return stats, nil
}
