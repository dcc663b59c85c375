package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Aluno/cliente do estúdio. O cadastro não valida o formato do CPF,
// apenas exige presença.
type Customer struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	Name      string `gorm:"size:100;not null" json:"name"`
	CPF       string `gorm:"size:20;not null" json:"cpf"`
	Email     string `gorm:"size:100;not null" json:"email"`
	Phone     string `gorm:"size:20;not null" json:"phone"`
	Address   string `gorm:"size:255;not null" json:"address"`
	BirthDate string `gorm:"size:10;not null" json:"birth_date"`

	// Foto em base64 (pode chegar como data-URI). Quando o offload S3 está
	// configurado, Photo fica vazio e PhotoURL aponta para o objeto.
	Photo      string `gorm:"type:text" json:"photo,omitempty"`
	PhotoThumb string `gorm:"type:text" json:"photo_thumb,omitempty"`
	PhotoURL   string `gorm:"size:255" json:"photo_url,omitempty"`

	MedicalNotes string `gorm:"type:text" json:"medical_notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (m *Customer) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
