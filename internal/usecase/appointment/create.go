package appointment

import (
	"context"

	"github.com/StudioVitaBR/studio-manager/internal/audit"
	domain "github.com/StudioVitaBR/studio-manager/internal/domain/appointment"
	"github.com/StudioVitaBR/studio-manager/internal/domain/store"
	"github.com/StudioVitaBR/studio-manager/internal/models"
	"github.com/StudioVitaBR/studio-manager/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	CustomerID string
	PackageID  string

	Date string
	Time string

	ServiceType string
	Instructor  string
	Notes       string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  store.AppointmentRepository
	audit *audit.Dispatcher
}

func NewCreateAppointment(
	repo store.AppointmentRepository,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
	}
}

// Execute cria o agendamento sempre com status scheduled, ignorando
// qualquer status que o chamador tenha mandado no payload.
func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	ap := &models.Appointment{
		CustomerID:  in.CustomerID,
		PackageID:   in.PackageID,
		Date:        in.Date,
		Time:        in.Time,
		ServiceType: in.ServiceType,
		Instructor:  in.Instructor,
		Notes:       in.Notes,
		Status:      string(domain.InitialStatus()),
	}

	if err := validators.Appointment(ap); err != nil {
		return nil, err
	}

	if err := uc.repo.Create(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: ap.ID,
	})

	return ap, nil
}
