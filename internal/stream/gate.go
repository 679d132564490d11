// Package stream принимает поток позиций устройств и отсеивает непригодные отсчеты.
package stream

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/shenikar/geo_content_engine/internal/models"
)

var (
	ErrStaleSample      = errors.New("position sample is too old")
	ErrInaccurateSample = errors.New("position sample is not accurate enough")
	ErrInvalidSample    = errors.New("position sample is out of range")
)

// Gate пропускает только свежие и достаточно точные отсчеты.
// Нулевое значение MaxAge или MaxAccuracyM отключает соответствующую проверку.
type Gate struct {
	MaxAge       time.Duration
	MaxAccuracyM float64
}

// Check проверяет отсчет относительно момента now. Отсчеты с ошибкой источника
// пропускаются без проверки: их обрабатывает сессия устройства.
func (g Gate) Check(pos models.DevicePosition, now time.Time) error {
	if pos.Failed() {
		return nil
	}
	lat, lon := pos.Coordinate.Latitude, pos.Coordinate.Longitude
	if math.IsNaN(lat) || math.IsNaN(lon) || lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return fmt.Errorf("%w: lat=%f lon=%f", ErrInvalidSample, lat, lon)
	}
	if g.MaxAge > 0 && !pos.Timestamp.IsZero() {
		if age := now.Sub(pos.Timestamp); age > g.MaxAge {
			return fmt.Errorf("%w: age %s exceeds %s", ErrStaleSample, age, g.MaxAge)
		}
	}
	if g.MaxAccuracyM > 0 && pos.AccuracyM > g.MaxAccuracyM {
		return fmt.Errorf("%w: accuracy %.1fm exceeds %.1fm", ErrInaccurateSample, pos.AccuracyM, g.MaxAccuracyM)
	}
	return nil
}
