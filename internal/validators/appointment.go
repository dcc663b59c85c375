package validators

import (
	"strings"

	domain "github.com/StudioVitaBR/studio-manager/internal/domain/appointment"
	"github.com/StudioVitaBR/studio-manager/internal/httperr"
	"github.com/StudioVitaBR/studio-manager/internal/models"
)

// Appointment valida os campos obrigatórios de um agendamento. A
// existência de customer_id/package_id NÃO é checada na escrita: a
// exclusão dos referenciados é livre, então a resolução fica para a
// leitura (ver usecase/appointment/list.go).
func Appointment(m *models.Appointment) error {
	if strings.TrimSpace(m.CustomerID) == "" {
		return httperr.ErrBusiness("missing_customer_id")
	}

	if strings.TrimSpace(m.PackageID) == "" {
		return httperr.ErrBusiness("missing_package_id")
	}

	if !ValidDate(m.Date) {
		return httperr.ErrBusiness("invalid_date")
	}

	if !ValidTimeOfDay(m.Time) {
		return httperr.ErrBusiness("invalid_time")
	}

	if !domain.IsServiceType(m.ServiceType) {
		return httperr.ErrBusiness("invalid_service_type")
	}

	if m.Status != "" && !domain.Status(m.Status).Valid() {
		return httperr.ErrBusiness("invalid_status")
	}

	return nil
}
