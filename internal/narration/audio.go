package narration

// Voice параметры синтеза речи
type Voice struct {
	Lang  string  `json:"lang"`
	Rate  float64 `json:"rate"`
	Pitch float64 `json:"pitch"`
}

// DefaultVoice голос по умолчанию
func DefaultVoice() Voice {
	return Voice{Lang: "es-ES", Rate: 1, Pitch: 1}
}

// Override накладывает поверх голоса непустые параметры места
func (v Voice) Override(lang string, rate, pitch *float64) Voice {
	if lang != "" {
		v.Lang = lang
	}
	if rate != nil && *rate > 0 {
		v.Rate = *rate
	}
	if pitch != nil && *pitch >= 0 {
		v.Pitch = *pitch
	}
	return v
}

// Audio внешний вывод звука. Команды отправляются без ожидания подтверждения.
// Supported сообщает, умеет ли устройство озвучивать текст вообще.
type Audio interface {
	Supported() bool
	Play(text string, voice Voice) error
	Pause() error
	Resume() error
	Stop() error
}
