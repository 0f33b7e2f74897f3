package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Reference é o identificador público usado no e-mail de confirmação.
	Reference string `gorm:"size:36;uniqueIndex;not null" json:"reference"`

	ProfessionalID uint `gorm:"index;not null" json:"professional_id"`

	// ServiceID fica nulo quando o serviço é apagado depois; o histórico
	// continua legível com os snapshots abaixo.
	ServiceID *uint    `json:"service_id"`
	Service   *Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service,omitempty"`

	// EmployeeID nulo = cliente sem preferência de profissional.
	EmployeeID *uint     `json:"employee_id"`
	Employee   *Employee `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"employee,omitempty"`

	ClientName  string `gorm:"size:100;not null" json:"client_name"`
	ClientEmail string `gorm:"size:100" json:"client_email"`
	ClientPhone string `gorm:"size:20" json:"client_phone"`

	Date string `gorm:"size:10;index;not null" json:"date"` // YYYY-MM-DD
	Time string `gorm:"size:5;not null" json:"time"`        // HH:MM

	// Snapshots copiados do serviço no momento da criação; nunca
	// recalculados a partir de um Service possivelmente alterado.
	DurationMin int     `gorm:"not null" json:"duration_min"`
	Price       float64 `json:"price"`

	Status string `gorm:"size:20;default:'confirmed'" json:"status"`
	Notes  string `gorm:"size:255" json:"notes"`

	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
