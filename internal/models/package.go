package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	PackageTypeMonthly    = "monthly"
	PackageTypePerSession = "per_session"
	PackageTypeProcedure  = "procedure"
)

// Pacote de serviços vendável (mensalidade, pacote de sessões ou
// procedimento avulso). DurationDays só faz sentido para monthly e
// SessionsIncluded para per_session; a API não rejeita combinações
// cruzadas, apenas o formulário nunca as produz.
type Package struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	Name        string  `gorm:"size:100;not null" json:"name"`
	Type        string  `gorm:"size:20;default:'monthly'" json:"type"`
	Price       float64 `json:"price"`
	Description string  `gorm:"size:255;not null" json:"description"`

	DurationDays     *int `json:"duration_days"`
	SessionsIncluded *int `json:"sessions_included"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (m *Package) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
