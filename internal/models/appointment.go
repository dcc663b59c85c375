package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Agendamento de atendimento. CustomerID e PackageID são referências
// fracas: não há constraint nem cascade, a resolução acontece na leitura.
type Appointment struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	CustomerID string `gorm:"size:36;index" json:"customer_id"`
	PackageID  string `gorm:"size:36;index" json:"package_id"`

	Date string `gorm:"size:10;index" json:"date"`
	Time string `gorm:"size:5" json:"time"`

	ServiceType string `gorm:"size:50" json:"service_type"`
	Instructor  string `gorm:"size:100" json:"instructor"`

	Status string `gorm:"size:20;default:'scheduled'" json:"status"`
	Notes  string `gorm:"size:255" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (m *Appointment) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
