// Package catalog хранит активный набор мест и подменяет его целиком при перезагрузке.
package catalog

import (
	"context"
	"time"

	"github.com/shenikar/geo_content_engine/internal/models"
)

// Source источник мест: база данных или файл
type Source interface {
	Load(ctx context.Context) ([]models.Place, error)
}

// Catalog неизменяемый упорядоченный набор мест.
// Порядок задает приоритет срабатывания: побеждает первое подходящее место.
type Catalog struct {
	places    []models.Place
	index     map[string]int
	maxRadius float64
	loadedAt  time.Time
}

// New создает каталог из уже проверенных мест
func New(places []models.Place, loadedAt time.Time) *Catalog {
	c := &Catalog{
		places:   make([]models.Place, len(places)),
		index:    make(map[string]int, len(places)),
		loadedAt: loadedAt,
	}
	copy(c.places, places)
	for i, p := range c.places {
		c.index[p.ID] = i
		if p.RadiusM > c.maxRadius {
			c.maxRadius = p.RadiusM
		}
	}
	return c
}

// Places места в порядке приоритета. Срез нельзя изменять.
func (c *Catalog) Places() []models.Place {
	return c.places
}

func (c *Catalog) Len() int {
	return len(c.places)
}

// Get ищет место по идентификатору
func (c *Catalog) Get(id string) (models.Place, bool) {
	i, ok := c.index[id]
	if !ok {
		return models.Place{}, false
	}
	return c.places[i], true
}

// MaxRadius наибольший радиус срабатывания в каталоге
func (c *Catalog) MaxRadius() float64 {
	return c.maxRadius
}

func (c *Catalog) LoadedAt() time.Time {
	return c.loadedAt
}
