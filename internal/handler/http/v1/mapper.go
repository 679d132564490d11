package v1

import (
	"errors"
	"math"
	"time"

	"github.com/shenikar/geo_content_engine/internal/geo"
	"github.com/shenikar/geo_content_engine/internal/models"
	"github.com/shenikar/geo_content_engine/internal/service"
)

func dtoToContent(dto ContentDTO) models.Content {
	return models.Content{
		Title:          dto.Title,
		Body:           dto.Body,
		MediaURL:       dto.MediaURL,
		CTAText:        dto.CTAText,
		CTAURL:         dto.CTAURL,
		Narrate:        dto.Narrate,
		NarrationText:  dto.NarrationText,
		NarrationLang:  dto.NarrationLang,
		NarrationRate:  dto.NarrationRate,
		NarrationPitch: dto.NarrationPitch,
	}
}

func contentToDTO(content models.Content) ContentDTO {
	return ContentDTO{
		Title:          content.Title,
		Body:           content.Body,
		MediaURL:       content.MediaURL,
		CTAText:        content.CTAText,
		CTAURL:         content.CTAURL,
		Narrate:        content.Narrate,
		NarrationText:  content.NarrationText,
		NarrationLang:  content.NarrationLang,
		NarrationRate:  content.NarrationRate,
		NarrationPitch: content.NarrationPitch,
	}
}

// DTOToPlaceModel преобразует DTO создания/обновления в доменную модель
func DTOToPlaceModel(dto any) *models.Place {
	switch v := dto.(type) {
	case CreatePlaceRequest:
		return &models.Place{
			ID:          v.ID,
			Center:      models.Coordinate{Latitude: v.Latitude, Longitude: v.Longitude},
			RadiusM:     v.RadiusM,
			CooldownMin: v.CooldownMin,
			StartAt:     v.StartAt,
			EndAt:       v.EndAt,
			Priority:    v.Priority,
			Content:     dtoToContent(v.Content),
		}
	case UpdatePlaceRequest:
		return &models.Place{
			Center:      models.Coordinate{Latitude: v.Latitude, Longitude: v.Longitude},
			RadiusM:     v.RadiusM,
			CooldownMin: v.CooldownMin,
			StartAt:     v.StartAt,
			EndAt:       v.EndAt,
			Priority:    v.Priority,
			Status:      v.Status,
			Content:     dtoToContent(v.Content),
		}
	}
	return nil
}

// ModelToPlaceResponse преобразует доменную модель в DTO для ответа
func ModelToPlaceResponse(model *models.Place) *PlaceResponse {
	return &PlaceResponse{
		ID:          model.ID,
		Latitude:    model.Center.Latitude,
		Longitude:   model.Center.Longitude,
		RadiusM:     model.RadiusM,
		CooldownMin: model.CooldownMin,
		StartAt:     model.StartAt,
		EndAt:       model.EndAt,
		Priority:    model.Priority,
		Status:      model.Status,
		Content:     contentToDTO(model.Content),
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}

// ModelsToPlaceResponses преобразует слайс моделей в слайс DTO
func ModelsToPlaceResponses(models []*models.Place) []*PlaceResponse {
	responses := make([]*PlaceResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToPlaceResponse(model)
	}
	return responses
}

// ModelsToNearbyResponses добавляет к местам расстояние от точки поиска, округленное до метра
func ModelsToNearbyResponses(origin models.Coordinate, places []models.Place) []*NearbyPlaceResponse {
	responses := make([]*NearbyPlaceResponse, len(places))
	for i := range places {
		responses[i] = &NearbyPlaceResponse{
			PlaceResponse: *ModelToPlaceResponse(&places[i]),
			DistanceM:     math.Round(geo.DistanceMeters(origin, places[i].Center)),
		}
	}
	return responses
}

// DTOToDevicePosition строит отсчет позиции. Без timestamp отсчет датируется моментом приема.
func DTOToDevicePosition(deviceID string, dto PositionRequest, received time.Time) models.DevicePosition {
	pos := models.DevicePosition{
		DeviceID:   deviceID,
		Coordinate: models.Coordinate{Latitude: dto.Latitude, Longitude: dto.Longitude},
		AccuracyM:  dto.Accuracy,
		Timestamp:  received,
	}
	if dto.Timestamp > 0 {
		pos.Timestamp = time.UnixMilli(dto.Timestamp)
	}
	if dto.Error != "" {
		pos.Err = errors.New(dto.Error)
	}
	return pos
}

// ModelToTriggerEventResponse преобразует событие срабатывания в DTO
func ModelToTriggerEventResponse(event *models.TriggerEvent) *TriggerEventResponse {
	content := event.Place.Content
	return &TriggerEventResponse{
		EventID:   event.ID.String(),
		DeviceID:  event.DeviceID,
		PlaceID:   event.Place.ID,
		Title:     content.Title,
		Body:      content.Body,
		MediaURL:  content.MediaURL,
		CTALabel:  content.CTALabel(),
		CTAURL:    content.CTAURL,
		Narrate:   content.Narrate,
		DistanceM: event.DistanceM,
		FiredAt:   event.FiredAt,
	}
}

// StatusToNarrationResponse преобразует состояние озвучивания в DTO
func StatusToNarrationResponse(status *service.NarrationStatus) *NarrationResponse {
	resp := &NarrationResponse{
		DeviceID:  status.DeviceID,
		State:     string(status.State),
		Supported: status.Supported,
		PlaceID:   status.PlaceID,
		Text:      status.Text,
	}
	if status.Voice != nil {
		resp.Voice = &VoiceResponse{
			Lang:  status.Voice.Lang,
			Rate:  status.Voice.Rate,
			Pitch: status.Voice.Pitch,
		}
	}
	return resp
}

func StatsToResponse(stats *models.PlaceStats) StatsResponse {
	return StatsResponse{
		PlaceID:       stats.PlaceID,
		Visits:        stats.Visits,
		UniqueDevices: stats.UniqueDevices,
		WindowMinutes: stats.WindowMinutes,
	}
}
