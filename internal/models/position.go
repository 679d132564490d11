package models

import (
	"time"
)

// DevicePosition очередной отсчет позиции устройства.
// Err заполняется, если источник позиции сообщил об ошибке вместо координат.
type DevicePosition struct {
	DeviceID   string     `json:"device_id"`
	Coordinate Coordinate `json:"coordinate"`
	AccuracyM  float64    `json:"accuracy_m,omitempty"`
	Timestamp  time.Time  `json:"timestamp"`
	Err        error      `json:"-"`
}

// Failed сообщает, что отсчет несет ошибку источника
func (p DevicePosition) Failed() bool {
	return p.Err != nil
}
