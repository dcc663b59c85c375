package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/StudioVitaBR/studio-manager/internal/audit"
	"github.com/StudioVitaBR/studio-manager/internal/cache"
	"github.com/StudioVitaBR/studio-manager/internal/httperr"
	"github.com/StudioVitaBR/studio-manager/internal/httpresp"
	"github.com/StudioVitaBR/studio-manager/internal/jsontypes"
	"github.com/StudioVitaBR/studio-manager/internal/models"
)

// Registro de pagamentos feitos pelo faturamento. Nenhuma cobrança é
// disparada por aqui; o dashboard só agrega o que foi registrado.
type PaymentHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
	stats *cache.StatsCache
}

func NewPaymentHandler(
	db *gorm.DB,
	audit *audit.Dispatcher,
	stats *cache.StatsCache,
) *PaymentHandler {
	return &PaymentHandler{
		db:    db,
		audit: audit,
		stats: stats,
	}
}

type PaymentRequest struct {
	CustomerPackageID string             `json:"customer_package_id"`
	Amount            *jsontypes.Decimal `json:"amount"`
	PaymentDate       jsontypes.Date     `json:"payment_date"`
	PaymentMethod     string             `json:"payment_method"`
	Notes             string             `json:"notes"`
}

func (h *PaymentHandler) Create(c *gin.Context) {
	var req PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	switch {
	case req.CustomerPackageID == "":
		httperr.BadRequest(c, "missing_customer_package_id", "Dados inválidos.")
		return
	case req.Amount == nil:
		httperr.BadRequest(c, "missing_amount", "Dados inválidos.")
		return
	case req.PaymentDate.IsZero():
		httperr.BadRequest(c, "missing_payment_date", "Dados inválidos.")
		return
	case req.PaymentMethod == "":
		httperr.BadRequest(c, "missing_payment_method", "Dados inválidos.")
		return
	}

	payment := models.Payment{
		CustomerPackageID: req.CustomerPackageID,
		Amount:            req.Amount.Float64(),
		PaymentDate:       req.PaymentDate.String(),
		PaymentMethod:     req.PaymentMethod,
		Notes:             req.Notes,
	}

	if err := h.db.Create(&payment).Error; err != nil {
		httperr.Internal(c, "failed_to_create_payment", "Erro ao registrar pagamento.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "payment_recorded",
		Entity:   "payment",
		EntityID: payment.ID,
	})
	h.stats.Invalidate(c.Request.Context())

	httpresp.Created(c, payment)
}

func (h *PaymentHandler) List(c *gin.Context) {
	var payments []models.Payment
	if err := h.db.
		Order("payment_date DESC, created_at DESC").
		Find(&payments).Error; err != nil {

		httperr.Internal(c, "failed_to_list_payments", "Erro ao listar pagamentos.")
		return
	}

	httpresp.OK(c, payments)
}
