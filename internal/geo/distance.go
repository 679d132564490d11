// Package geo содержит геометрию на сфере: расстояние по Хаверсину и отбор ближайших мест.
package geo

import (
	"math"

	"github.com/shenikar/geo_content_engine/internal/models"
)

// EarthRadiusMeters средний радиус Земли
const EarthRadiusMeters = 6371000.0

// DistanceMeters расстояние по большому кругу между двумя точками (формула Хаверсина).
// Результат неотрицателен и симметричен, для совпадающих точек равен 0.
func DistanceMeters(a, b models.Coordinate) float64 {
	lat1 := toRad(a.Latitude)
	lat2 := toRad(b.Latitude)
	dLat := toRad(b.Latitude - a.Latitude)
	dLng := toRad(b.Longitude - a.Longitude)

	sinLat := math.Sin(dLat / 2)
	sinLng := math.Sin(dLng / 2)
	x := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLng*sinLng

	// погрешность округления может вывести x за [0, 1]
	x = math.Min(1, math.Max(0, x))
	return 2 * EarthRadiusMeters * math.Asin(math.Sqrt(x))
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}
