package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Pagamento registrado pelo faturamento. Esta API só grava e lê; nenhuma
// integração com gateway acontece aqui.
type Payment struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	CustomerPackageID string `gorm:"size:36;index" json:"customer_package_id"`

	Amount        float64 `json:"amount"`
	PaymentDate   string  `gorm:"size:10;index" json:"payment_date"`
	PaymentMethod string  `gorm:"size:50" json:"payment_method"`
	Notes         string  `gorm:"size:255" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (m *Payment) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
