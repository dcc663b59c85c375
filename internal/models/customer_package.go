package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const CustomerPackageStatusActive = "active"

// Vínculo cliente ↔ pacote (compra). Referências fracas: a exclusão do
// cliente ou do pacote não remove o vínculo.
type CustomerPackage struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	CustomerID string `gorm:"size:36;index" json:"customer_id"`
	PackageID  string `gorm:"size:36;index" json:"package_id"`

	PurchaseDate  string  `gorm:"size:10" json:"purchase_date"`
	AmountPaid    float64 `json:"amount_paid"`
	PaymentMethod string  `gorm:"size:50" json:"payment_method"`

	Status            string `gorm:"size:20;default:'active'" json:"status"`
	RemainingSessions *int   `json:"remaining_sessions"`
	ExpiryDate        string `gorm:"size:10" json:"expiry_date,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (m *CustomerPackage) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
