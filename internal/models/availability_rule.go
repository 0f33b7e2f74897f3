package models

import "time"

// AvailabilityRule é o horário recorrente de um dia da semana, do salão
// (EmployeeID nulo) ou de um funcionário específico. Weekday já chega
// canonizado (0=domingo..6=sábado) — a tradução das representações
// legadas fica na borda HTTP/storage.
type AvailabilityRule struct {
	ID             uint  `gorm:"primaryKey" json:"id"`
	ProfessionalID uint  `gorm:"index;not null" json:"professional_id"`
	EmployeeID     *uint `gorm:"index" json:"employee_id"`

	Weekday   int    `gorm:"not null" json:"weekday"`
	Working   bool   `json:"working"`
	StartTime string `gorm:"size:8" json:"start_time"`
	EndTime   string `gorm:"size:8" json:"end_time"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
