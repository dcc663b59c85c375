package appointment

import (
	"context"

	"github.com/StudioVitaBR/studio-manager/internal/audit"
	"github.com/StudioVitaBR/studio-manager/internal/domain/store"
	"github.com/StudioVitaBR/studio-manager/internal/models"
	"github.com/StudioVitaBR/studio-manager/internal/validators"
)

type UpdateAppointmentInput struct {
	CustomerID string
	PackageID  string

	Date string
	Time string

	ServiceType string
	Instructor  string
	Notes       string

	// Status vazio mantém o atual. Qualquer um dos três valores é aceito
	// em qualquer direção: o contrato não restringe transições.
	Status string
}

type UpdateAppointment struct {
	repo  store.AppointmentRepository
	audit *audit.Dispatcher
}

func NewUpdateAppointment(
	repo store.AppointmentRepository,
	audit *audit.Dispatcher,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:  repo,
		audit: audit,
	}
}

// Execute substitui todos os campos mutáveis do agendamento (full
// replace). Id e created_at nunca mudam.
func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	id string,
	in UpdateAppointmentInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	previousStatus := ap.Status

	ap.CustomerID = in.CustomerID
	ap.PackageID = in.PackageID
	ap.Date = in.Date
	ap.Time = in.Time
	ap.ServiceType = in.ServiceType
	ap.Instructor = in.Instructor
	ap.Notes = in.Notes

	if in.Status != "" {
		ap.Status = in.Status
	}

	if err := validators.Appointment(ap); err != nil {
		return nil, err
	}

	if err := uc.repo.Update(ctx, ap); err != nil {
		return nil, err
	}

	action := "appointment_updated"
	if ap.Status != previousStatus {
		action = "appointment_status_changed"
	}

	uc.audit.Dispatch(audit.Event{
		Action:   action,
		Entity:   "appointment",
		EntityID: ap.ID,
		Metadata: map[string]string{
			"from": previousStatus,
			"to":   ap.Status,
		},
	})

	return ap, nil
}
