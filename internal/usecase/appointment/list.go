package appointment

import (
	"context"

	"github.com/StudioVitaBR/studio-manager/internal/domain/store"
	"github.com/StudioVitaBR/studio-manager/internal/dto"
)

// Rótulos exibidos quando a referência fraca aponta para um registro
// apagado. Os textos são os mesmos que o frontend usava.
const (
	FallbackCustomerName = "Cliente não encontrado"
	FallbackPackageName  = "Pacote não encontrado"
)

type ListAppointments struct {
	repo store.AppointmentRepository
}

func NewListAppointments(repo store.AppointmentRepository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

// Execute lista agendamentos (todos, ou de um dia quando date != "") com
// os nomes de cliente e pacote resolvidos no instante da leitura.
func (uc *ListAppointments) Execute(
	ctx context.Context,
	date string,
) ([]dto.AppointmentListDTO, error) {

	appointments, err := uc.repo.List(ctx, date)
	if err != nil {
		return nil, err
	}

	customerIDs := make([]string, 0, len(appointments))
	packageIDs := make([]string, 0, len(appointments))
	for _, ap := range appointments {
		customerIDs = append(customerIDs, ap.CustomerID)
		packageIDs = append(packageIDs, ap.PackageID)
	}

	customerNames, err := uc.repo.CustomerNames(ctx, customerIDs)
	if err != nil {
		return nil, err
	}

	packageNames, err := uc.repo.PackageNames(ctx, packageIDs)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for _, ap := range appointments {
		customerName, ok := customerNames[ap.CustomerID]
		if !ok {
			customerName = FallbackCustomerName
		}

		packageName, ok := packageNames[ap.PackageID]
		if !ok {
			packageName = FallbackPackageName
		}

		out = append(out, dto.AppointmentListDTO{
			ID:           ap.ID,
			CustomerID:   ap.CustomerID,
			PackageID:    ap.PackageID,
			CustomerName: customerName,
			PackageName:  packageName,
			Date:         ap.Date,
			Time:         ap.Time,
			ServiceType:  ap.ServiceType,
			Instructor:   ap.Instructor,
			Status:       ap.Status,
			Notes:        ap.Notes,
		})
	}

	return out, nil
}
