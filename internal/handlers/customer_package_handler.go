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

type CustomerPackageHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
	stats *cache.StatsCache
}

func NewCustomerPackageHandler(
	db *gorm.DB,
	audit *audit.Dispatcher,
	stats *cache.StatsCache,
) *CustomerPackageHandler {
	return &CustomerPackageHandler{
		db:    db,
		audit: audit,
		stats: stats,
	}
}

// ======================================================
// REQUEST
// ======================================================

// O payload não carrega status: toda venda nasce active, sem exceção.
type CustomerPackageRequest struct {
	CustomerID string `json:"customer_id"`
	PackageID  string `json:"package_id"`

	PurchaseDate  jsontypes.Date     `json:"purchase_date"`
	AmountPaid    *jsontypes.Decimal `json:"amount_paid"`
	PaymentMethod string             `json:"payment_method"`

	RemainingSessions *jsontypes.Integer `json:"remaining_sessions"`
	ExpiryDate        jsontypes.Date     `json:"expiry_date"`
}

func (req *CustomerPackageRequest) validate() error {
	if req.CustomerID == "" {
		return httperr.ErrBusiness("missing_customer_id")
	}
	if req.PackageID == "" {
		return httperr.ErrBusiness("missing_package_id")
	}
	if req.PurchaseDate.IsZero() {
		return httperr.ErrBusiness("missing_purchase_date")
	}
	if req.AmountPaid == nil {
		return httperr.ErrBusiness("missing_amount_paid")
	}
	if req.PaymentMethod == "" {
		return httperr.ErrBusiness("missing_payment_method")
	}
	return nil
}

// ======================================================
// CREATE
// ======================================================

func (h *CustomerPackageHandler) Create(c *gin.Context) {
	var req CustomerPackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if err := req.validate(); err != nil {
		httperr.BadRequest(c, httperr.CodeOf(err, "validation_error"), "Dados inválidos.")
		return
	}

	cp := models.CustomerPackage{
		CustomerID:        req.CustomerID,
		PackageID:         req.PackageID,
		PurchaseDate:      req.PurchaseDate.String(),
		AmountPaid:        req.AmountPaid.Float64(),
		PaymentMethod:     req.PaymentMethod,
		Status:            models.CustomerPackageStatusActive,
		RemainingSessions: jsontypes.IntPtr(req.RemainingSessions),
	}

	if !req.ExpiryDate.IsZero() {
		cp.ExpiryDate = req.ExpiryDate.String()
	}

	if err := h.db.Create(&cp).Error; err != nil {
		httperr.Internal(c, "failed_to_create_customer_package", "Erro ao registrar venda.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "customer_package_created",
		Entity:   "customer_package",
		EntityID: cp.ID,
	})
	h.stats.Invalidate(c.Request.Context())

	httpresp.Created(c, cp)
}

// ======================================================
// LIST
// ======================================================

func (h *CustomerPackageHandler) List(c *gin.Context) {
	var cps []models.CustomerPackage
	if err := h.db.
		Order("created_at DESC").
		Find(&cps).Error; err != nil {

		httperr.Internal(c, "failed_to_list_customer_packages", "Erro ao listar vendas.")
		return
	}

	httpresp.OK(c, cps)
}

func (h *CustomerPackageHandler) ListByCustomer(c *gin.Context) {
	customerID := c.Param("customerID")

	var cps []models.CustomerPackage
	if err := h.db.
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&cps).Error; err != nil {

		httperr.Internal(c, "failed_to_list_customer_packages", "Erro ao listar vendas.")
		return
	}

	httpresp.OK(c, cps)
}
