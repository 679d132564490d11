package geo

import (
	"github.com/shenikar/geo_content_engine/internal/models"
)

// Nearby возвращает места, центр которых не дальше radiusM от позиции.
// Порядок каталога сохраняется, исходный срез не изменяется.
func Nearby(position models.Coordinate, places []models.Place, radiusM float64) []models.Place {
	result := make([]models.Place, 0, len(places))
	for _, p := range places {
		if DistanceMeters(position, p.Center) <= radiusM {
			result = append(result, p)
		}
	}
	return result
}
