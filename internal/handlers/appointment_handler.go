package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/StudioVitaBR/studio-manager/internal/cache"
	"github.com/StudioVitaBR/studio-manager/internal/domain/store"
	"github.com/StudioVitaBR/studio-manager/internal/httperr"
	"github.com/StudioVitaBR/studio-manager/internal/httpresp"
	"github.com/StudioVitaBR/studio-manager/internal/jsontypes"
	ucAppointment "github.com/StudioVitaBR/studio-manager/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	createUC *ucAppointment.CreateAppointment
	updateUC *ucAppointment.UpdateAppointment
	listUC   *ucAppointment.ListAppointments

	repo  store.AppointmentRepository
	stats *cache.StatsCache
}

func NewAppointmentHandler(
	createUC *ucAppointment.CreateAppointment,
	updateUC *ucAppointment.UpdateAppointment,
	listUC *ucAppointment.ListAppointments,
	repo store.AppointmentRepository,
	stats *cache.StatsCache,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC: createUC,
		updateUC: updateUC,
		listUC:   listUC,
		repo:     repo,
		stats:    stats,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type AppointmentRequest struct {
	CustomerID string `json:"customer_id"`
	PackageID  string `json:"package_id"`

	Date jsontypes.Date      `json:"date"`
	Time jsontypes.TimeOfDay `json:"time"`

	ServiceType string `json:"service_type"`
	Instructor  string `json:"instructor"`
	Notes       string `json:"notes"`

	// Ignorado no create (status é sempre scheduled); no update, vazio
	// mantém o status atual.
	Status string `json:"status"`
}

func (req *AppointmentRequest) date() string {
	if req.Date.IsZero() {
		return ""
	}
	return req.Date.String()
}

func (req *AppointmentRequest) timeOfDay() string {
	if req.Time.IsZero() {
		return ""
	}
	return req.Time.String()
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req AppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		CustomerID:  req.CustomerID,
		PackageID:   req.PackageID,
		Date:        req.date(),
		Time:        req.timeOfDay(),
		ServiceType: req.ServiceType,
		Instructor:  req.Instructor,
		Notes:       req.Notes,
	})
	if err != nil {
		var be httperr.BusinessError
		if errors.As(err, &be) {
			httperr.BadRequest(c, be.Code, "Dados inválidos.")
			return
		}

		httperr.Internal(c, "failed_to_create_appointment", "Erro ao criar agendamento.")
		return
	}

	h.stats.Invalidate(c.Request.Context())

	httpresp.Created(c, ap)
}

// ======================================================
// LIST / GET
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	h.list(c, c.Query("date"))
}

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	date := c.Param("date")
	if date == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	h.list(c, date)
}

func (h *AppointmentHandler) list(c *gin.Context, date string) {
	appointments, err := h.listUC.Execute(c.Request.Context(), date)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}

	httpresp.OK(c, appointments)
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	id := c.Param("id")

	ap, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// UPDATE
// ======================================================

func (h *AppointmentHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var req AppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.updateUC.Execute(c.Request.Context(), id, ucAppointment.UpdateAppointmentInput{
		CustomerID:  req.CustomerID,
		PackageID:   req.PackageID,
		Date:        req.date(),
		Time:        req.timeOfDay(),
		ServiceType: req.ServiceType,
		Instructor:  req.Instructor,
		Notes:       req.Notes,
		Status:      req.Status,
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
			return
		}

		var be httperr.BusinessError
		if errors.As(err, &be) {
			httperr.BadRequest(c, be.Code, "Dados inválidos.")
			return
		}

		httperr.Internal(c, "failed_to_update_appointment", "Erro ao atualizar agendamento.")
		return
	}

	h.stats.Invalidate(c.Request.Context())

	httpresp.OK(c, ap)
}
