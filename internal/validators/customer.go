package validators

import (
	"strings"
	"time"

	"github.com/StudioVitaBR/studio-manager/internal/httperr"
	"github.com/StudioVitaBR/studio-manager/internal/models"
)

// Regras puras aplicadas antes de qualquer escrita chegar ao banco.
// Uma rejeição aqui deixa o banco intocado.

func Customer(m *models.Customer) error {
	required := map[string]string{
		"missing_name":       m.Name,
		"missing_cpf":        m.CPF,
		"missing_email":      m.Email,
		"missing_phone":      m.Phone,
		"missing_address":    m.Address,
		"missing_birth_date": m.BirthDate,
	}

	for code, value := range required {
		if strings.TrimSpace(value) == "" {
			return httperr.ErrBusiness(code)
		}
	}

	if !ValidDate(m.BirthDate) {
		return httperr.ErrBusiness("invalid_birth_date")
	}

	return nil
}

func ValidDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

func ValidTimeOfDay(s string) bool {
	_, err := time.Parse("15:04", s)
	return err == nil
}
