package trigger

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shenikar/geo_content_engine/internal/models"
)

// IsWithinWindow проверяет, попадает ли now в суточное окно места.
// Без start_at или end_at место доступно всегда. Границы строятся в дне и часовом поясе now.
// Окно с end < start считается переходящим через полночь. Нечитаемые границы не ограничивают показ.
func IsWithinWindow(place models.Place, now time.Time) bool {
	if !place.HasWindow() {
		return true
	}

	sh, sm, err := ParseClock(place.StartAt)
	if err != nil {
		return true
	}
	eh, em, err := ParseClock(place.EndAt)
	if err != nil {
		return true
	}

	y, mo, d := now.Date()
	start := time.Date(y, mo, d, sh, sm, 0, 0, now.Location())
	end := time.Date(y, mo, d, eh, em, 0, 0, now.Location())

	if end.Before(start) {
		return !now.Before(start) || !now.After(end)
	}
	return !now.Before(start) && !now.After(end)
}

// ParseClock разбирает "HH:MM" (минуты можно опустить: "9" означает 09:00)
func ParseClock(value string) (hour, minute int, err error) {
	parts := strings.SplitN(strings.TrimSpace(value), ":", 2)

	hour, err = strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("invalid hour in %q", value)
	}

	if len(parts) == 2 {
		minute, err = strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil || minute < 0 || minute > 59 {
			return 0, 0, fmt.Errorf("invalid minute in %q", value)
		}
	}
	return hour, minute, nil
}
