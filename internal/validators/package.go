package validators

import (
	"strings"

	"github.com/StudioVitaBR/studio-manager/internal/httperr"
	"github.com/StudioVitaBR/studio-manager/internal/models"
)

// Package normaliza e valida um pacote antes da escrita. Tipo ausente
// vira monthly; tipo fora do vocabulário é rejeitado.
func Package(m *models.Package) error {
	if strings.TrimSpace(m.Name) == "" {
		return httperr.ErrBusiness("missing_name")
	}

	if strings.TrimSpace(m.Description) == "" {
		return httperr.ErrBusiness("missing_description")
	}

	if m.Type == "" {
		m.Type = models.PackageTypeMonthly
	}

	switch m.Type {
	case models.PackageTypeMonthly, models.PackageTypePerSession, models.PackageTypeProcedure:
	default:
		return httperr.ErrBusiness("invalid_package_type")
	}

	if m.Price < 0 {
		return httperr.ErrBusiness("invalid_price")
	}

	return nil
}
