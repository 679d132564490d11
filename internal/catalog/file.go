package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/shenikar/geo_content_engine/internal/models"
	"github.com/sirupsen/logrus"
)

// fileRecord плоская запись места в JSON файле
type fileRecord struct {
	ID             json.RawMessage `json:"id"`
	Lat            *float64        `json:"lat"`
	Lng            *float64        `json:"lng"`
	RadiusM        *float64        `json:"radius_m"`
	CooldownMin    json.RawMessage `json:"cooldown_min"`
	StartAt        string          `json:"start_at"`
	EndAt          string          `json:"end_at"`
	Title          string          `json:"title"`
	Body           string          `json:"body"`
	MediaURL       string          `json:"media_url"`
	CTAText        string          `json:"cta_text"`
	CTAURL         string          `json:"cta_url"`
	Narrate        bool            `json:"narrate"`
	NarrationText  string          `json:"narration_text"`
	NarrationLang  string          `json:"narration_lang"`
	NarrationRate  *float64        `json:"narration_rate"`
	NarrationPitch *float64        `json:"narration_pitch"`
}

// FileSource читает каталог из JSON файла: массив записей или объект {"places": [...]}.
// Приоритет места равен его позиции в файле.
type FileSource struct {
	path   string
	logger *logrus.Entry
}

func NewFileSource(path string, logger *logrus.Logger) *FileSource {
	return &FileSource{
		path:   path,
		logger: logger.WithFields(logrus.Fields{"component": "catalog", "source": "file"}),
	}
}

// Load читает файл заново при каждом вызове
func (s *FileSource) Load(_ context.Context) ([]models.Place, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", s.path, err)
	}
	return s.parse(data)
}

func (s *FileSource) parse(data []byte) ([]models.Place, error) {
	var records []fileRecord
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var wrapper struct {
			Places []fileRecord `json:"places"`
		}
		if err := json.Unmarshal(trimmed, &wrapper); err != nil {
			return nil, fmt.Errorf("failed to decode catalog file: %w", err)
		}
		records = wrapper.Places
	} else if err := json.Unmarshal(trimmed, &records); err != nil {
		return nil, fmt.Errorf("failed to decode catalog file: %w", err)
	}

	places := make([]models.Place, 0, len(records))
	for i, r := range records {
		id := parseID(r.ID)
		if id == "" || r.Lat == nil || r.Lng == nil || r.RadiusM == nil {
			s.logger.WithField("index", i).Warn("Skipping place without id, center or radius")
			continue
		}
		places = append(places, models.Place{
			ID:          id,
			Center:      models.Coordinate{Latitude: *r.Lat, Longitude: *r.Lng},
			RadiusM:     *r.RadiusM,
			CooldownMin: parseMinutes(r.CooldownMin),
			StartAt:     strings.TrimSpace(r.StartAt),
			EndAt:       strings.TrimSpace(r.EndAt),
			Priority:    i,
			Status:      models.PlaceStatusActive,
			Content: models.Content{
				Title:          r.Title,
				Body:           r.Body,
				MediaURL:       r.MediaURL,
				CTAText:        r.CTAText,
				CTAURL:         r.CTAURL,
				Narrate:        r.Narrate,
				NarrationText:  r.NarrationText,
				NarrationLang:  r.NarrationLang,
				NarrationRate:  r.NarrationRate,
				NarrationPitch: r.NarrationPitch,
			},
		})
	}
	return places, nil
}

// parseID принимает как строку, так и число
func parseID(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.TrimSpace(s)
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	return ""
}

// parseMinutes принимает число или числовую строку, иначе nil (значение по умолчанию)
func parseMinutes(raw json.RawMessage) *float64 {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return &f
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			return &f
		}
	}
	return nil
}
