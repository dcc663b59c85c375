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
	"github.com/StudioVitaBR/studio-manager/internal/validators"
)

type PackageHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
	stats *cache.StatsCache
}

func NewPackageHandler(
	db *gorm.DB,
	audit *audit.Dispatcher,
	stats *cache.StatsCache,
) *PackageHandler {
	return &PackageHandler{
		db:    db,
		audit: audit,
		stats: stats,
	}
}

// ======================================================
// REQUEST
// ======================================================

// Price/DurationDays/SessionsIncluded aceitam número ou string numérica;
// valor não parseável é rejeitado no unmarshal, nunca vira zero.
type PackageRequest struct {
	Name        string             `json:"name"`
	Type        string             `json:"type"`
	Price       *jsontypes.Decimal `json:"price"`
	Description string             `json:"description"`

	DurationDays     *jsontypes.Integer `json:"duration_days"`
	SessionsIncluded *jsontypes.Integer `json:"sessions_included"`
}

func (req *PackageRequest) apply(pkg *models.Package) {
	pkg.Name = req.Name
	pkg.Type = req.Type
	pkg.Description = req.Description
	pkg.DurationDays = jsontypes.IntPtr(req.DurationDays)
	pkg.SessionsIncluded = jsontypes.IntPtr(req.SessionsIncluded)

	if req.Price != nil {
		pkg.Price = req.Price.Float64()
	}
}

// ======================================================
// CREATE
// ======================================================

func (h *PackageHandler) Create(c *gin.Context) {
	var req PackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Price == nil {
		httperr.BadRequest(c, "missing_price", "Preço é obrigatório.")
		return
	}

	var pkg models.Package
	req.apply(&pkg)

	if err := validators.Package(&pkg); err != nil {
		httperr.BadRequest(c, httperr.CodeOf(err, "validation_error"), "Dados inválidos.")
		return
	}

	if err := h.db.Create(&pkg).Error; err != nil {
		httperr.Internal(c, "failed_to_create_package", "Erro ao criar pacote.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "package_created",
		Entity:   "package",
		EntityID: pkg.ID,
	})
	h.stats.Invalidate(c.Request.Context())

	httpresp.Created(c, pkg)
}

// ======================================================
// LIST / GET
// ======================================================

func (h *PackageHandler) List(c *gin.Context) {
	var packages []models.Package
	if err := h.db.
		Order("created_at DESC").
		Find(&packages).Error; err != nil {

		httperr.Internal(c, "failed_to_list_packages", "Erro ao listar pacotes.")
		return
	}

	httpresp.OK(c, packages)
}

func (h *PackageHandler) Get(c *gin.Context) {
	id := c.Param("id")

	var pkg models.Package
	if err := h.db.Where("id = ?", id).First(&pkg).Error; err != nil {
		httperr.NotFound(c, "package_not_found", "Pacote não encontrado.")
		return
	}

	httpresp.OK(c, pkg)
}

// ======================================================
// UPDATE (full replace dos campos mutáveis)
// ======================================================

func (h *PackageHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var pkg models.Package
	if err := h.db.Where("id = ?", id).First(&pkg).Error; err != nil {
		httperr.NotFound(c, "package_not_found", "Pacote não encontrado.")
		return
	}

	var req PackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Price == nil {
		httperr.BadRequest(c, "missing_price", "Preço é obrigatório.")
		return
	}

	req.apply(&pkg)

	if err := validators.Package(&pkg); err != nil {
		httperr.BadRequest(c, httperr.CodeOf(err, "validation_error"), "Dados inválidos.")
		return
	}

	if err := h.db.Save(&pkg).Error; err != nil {
		httperr.Internal(c, "failed_to_update_package", "Erro ao atualizar pacote.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "package_updated",
		Entity:   "package",
		EntityID: pkg.ID,
	})
	h.stats.Invalidate(c.Request.Context())

	httpresp.OK(c, pkg)
}

// ======================================================
// DELETE
// ======================================================

func (h *PackageHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	res := h.db.Where("id = ?", id).Delete(&models.Package{})
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_package", "Erro ao remover pacote.")
		return
	}

	if res.RowsAffected == 0 {
		httperr.NotFound(c, "package_not_found", "Pacote não encontrado.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "package_deleted",
		Entity:   "package",
		EntityID: id,
	})
	h.stats.Invalidate(c.Request.Context())

	httpresp.OK(c, gin.H{"message": "Pacote removido."})
}
