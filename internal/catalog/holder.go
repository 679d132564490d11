package catalog

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync/atomic"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shenikar/geo_content_engine/internal/models"
	"github.com/sirupsen/logrus"
)

// Holder держит текущий каталог. Читатели получают снимок без блокировок,
// перезагрузка атомарно подменяет его новым.
type Holder struct {
	source   Source
	validate *validator.Validate
	logger   *logrus.Entry
	current  atomic.Pointer[Catalog]
	now      func() time.Time
	onReload func(*Catalog)
}

// NewHolder создает хранилище с пустым каталогом до первой загрузки
func NewHolder(source Source, logger *logrus.Logger) *Holder {
	h := &Holder{
		source:   source,
		validate: validator.New(),
		logger:   logger.WithField("component", "catalog"),
		now:      time.Now,
	}
	h.current.Store(New(nil, time.Time{}))
	return h
}

// OnReload задает обработчик, вызываемый после каждой успешной перезагрузки.
// Вызывается до запуска Run.
func (h *Holder) OnReload(fn func(*Catalog)) {
	h.onReload = fn
}

// Current текущий снимок каталога
func (h *Holder) Current() *Catalog {
	return h.current.Load()
}

// Reload загружает места из источника и заменяет каталог.
// При ошибке источника остается предыдущий каталог.
func (h *Holder) Reload(ctx context.Context) (*Catalog, error) {
	places, err := h.source.Load(ctx)
	if err != nil {
		h.logger.WithError(err).Error("Failed to load places from source")
		return h.Current(), fmt.Errorf("catalog: could not load places: %w", err)
	}

	next := New(h.sanitize(places), h.now())
	h.current.Store(next)
	h.logger.WithFields(logrus.Fields{
		"loaded":     len(places),
		"active":     next.Len(),
		"max_radius": next.MaxRadius(),
	}).Info("Catalog reloaded")
	if h.onReload != nil {
		h.onReload(next)
	}
	return next, nil
}

// Run перезагружает каталог по таймеру до отмены контекста
func (h *Holder) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		<-ctx.Done()
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			h.logger.Info("Stopping catalog reloader.")
			return
		case <-ticker.C:
			_, _ = h.Reload(ctx)
		}
	}
}

// sanitize отбрасывает неактивные, некорректные и повторяющиеся места
// и упорядочивает по приоритету, сохраняя порядок источника при равенстве
func (h *Holder) sanitize(places []models.Place) []models.Place {
	seen := make(map[string]struct{}, len(places))
	valid := make([]models.Place, 0, len(places))

	for _, p := range places {
		log := h.logger.WithField("place_id", p.ID)
		if p.Status == models.PlaceStatusInactive {
			continue
		}
		if err := h.validate.Struct(p); err != nil {
			log.WithError(err).Warn("Skipping invalid place")
			continue
		}
		if _, dup := seen[p.ID]; dup {
			log.Warn("Skipping duplicate place id")
			continue
		}
		seen[p.ID] = struct{}{}
		valid = append(valid, p)
	}

	slices.SortStableFunc(valid, func(a, b models.Place) int {
		return cmp.Compare(a.Priority, b.Priority)
	})
	return valid
}
