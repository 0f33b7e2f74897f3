package models

import "time"

// Professional é o dono do salão: concentra login, perfil e o slug da
// página pública de agendamento.
type Professional struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name         string `gorm:"size:100;not null" json:"name"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`

	SalonName string `gorm:"size:100;not null" json:"salon_name"`
	Slug      string `gorm:"size:100;uniqueIndex;not null" json:"slug"`
	Phone     string `gorm:"size:20" json:"phone"`
	City      string `gorm:"size:100" json:"city"`
	Timezone  string `gorm:"size:50" json:"timezone"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
