package handlers

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/StudioVitaBR/studio-manager/internal/audit"
	"github.com/StudioVitaBR/studio-manager/internal/cache"
	"github.com/StudioVitaBR/studio-manager/internal/httperr"
	"github.com/StudioVitaBR/studio-manager/internal/httpresp"
	"github.com/StudioVitaBR/studio-manager/internal/images"
	"github.com/StudioVitaBR/studio-manager/internal/jsontypes"
	"github.com/StudioVitaBR/studio-manager/internal/models"
	"github.com/StudioVitaBR/studio-manager/internal/storage"
	"github.com/StudioVitaBR/studio-manager/internal/validators"
)

type CustomerHandler struct {
	db     *gorm.DB
	audit  *audit.Dispatcher
	stats  *cache.StatsCache
	photos *storage.PhotoStore
}

func NewCustomerHandler(
	db *gorm.DB,
	audit *audit.Dispatcher,
	stats *cache.StatsCache,
	photos *storage.PhotoStore,
) *CustomerHandler {
	return &CustomerHandler{
		db:     db,
		audit:  audit,
		stats:  stats,
		photos: photos,
	}
}

// ======================================================
// REQUEST
// ======================================================

type CustomerRequest struct {
	Name      string         `json:"name"`
	CPF       string         `json:"cpf"`
	Email     string         `json:"email"`
	Phone     string         `json:"phone"`
	Address   string         `json:"address"`
	BirthDate jsontypes.Date `json:"birth_date"`

	Photo        string `json:"photo"`
	MedicalNotes string `json:"medical_notes"`
}

func (req *CustomerRequest) apply(cst *models.Customer) {
	cst.Name = req.Name
	cst.CPF = req.CPF
	cst.Email = req.Email
	cst.Phone = req.Phone
	cst.Address = req.Address
	cst.MedicalNotes = req.MedicalNotes

	if req.BirthDate.IsZero() {
		cst.BirthDate = ""
	} else {
		cst.BirthDate = req.BirthDate.String()
	}
}

// ======================================================
// CREATE
// ======================================================

func (h *CustomerHandler) Create(c *gin.Context) {
	var req CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	var cst models.Customer
	req.apply(&cst)

	if err := validators.Customer(&cst); err != nil {
		httperr.BadRequest(c, httperr.CodeOf(err, "validation_error"), "Dados inválidos.")
		return
	}

	// Id antes do Create: a chave da foto no S3 usa o id.
	cst.ID = uuid.NewString()
	h.attachPhoto(c.Request.Context(), &cst, req.Photo)

	if err := h.db.Create(&cst).Error; err != nil {
		httperr.Internal(c, "failed_to_create_customer", "Erro ao criar cliente.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "customer_created",
		Entity:   "customer",
		EntityID: cst.ID,
	})
	h.stats.Invalidate(c.Request.Context())

	httpresp.Created(c, cst)
}

// ======================================================
// LIST / GET
// ======================================================

func (h *CustomerHandler) List(c *gin.Context) {
	var customers []models.Customer
	if err := h.db.
		Order("created_at DESC").
		Find(&customers).Error; err != nil {

		httperr.Internal(c, "failed_to_list_customers", "Erro ao listar clientes.")
		return
	}

	httpresp.OK(c, customers)
}

func (h *CustomerHandler) Get(c *gin.Context) {
	id := c.Param("id")

	var cst models.Customer
	if err := h.db.Where("id = ?", id).First(&cst).Error; err != nil {
		httperr.NotFound(c, "customer_not_found", "Cliente não encontrado.")
		return
	}

	httpresp.OK(c, cst)
}

// ======================================================
// UPDATE (full replace dos campos mutáveis)
// ======================================================

func (h *CustomerHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var cst models.Customer
	if err := h.db.Where("id = ?", id).First(&cst).Error; err != nil {
		httperr.NotFound(c, "customer_not_found", "Cliente não encontrado.")
		return
	}

	var req CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	req.apply(&cst)

	if err := validators.Customer(&cst); err != nil {
		httperr.BadRequest(c, httperr.CodeOf(err, "validation_error"), "Dados inválidos.")
		return
	}

	h.attachPhoto(c.Request.Context(), &cst, req.Photo)

	if err := h.db.Save(&cst).Error; err != nil {
		httperr.Internal(c, "failed_to_update_customer", "Erro ao atualizar cliente.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "customer_updated",
		Entity:   "customer",
		EntityID: cst.ID,
	})
	h.stats.Invalidate(c.Request.Context())

	httpresp.OK(c, cst)
}

// ======================================================
// DELETE
// ======================================================

// Delete não é bloqueado por agendamentos que referenciam o cliente; a
// listagem de agendamentos passa a exibir o rótulo de fallback.
func (h *CustomerHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	res := h.db.Where("id = ?", id).Delete(&models.Customer{})
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_customer", "Erro ao remover cliente.")
		return
	}

	if res.RowsAffected == 0 {
		httperr.NotFound(c, "customer_not_found", "Cliente não encontrado.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "customer_deleted",
		Entity:   "customer",
		EntityID: id,
	})
	h.stats.Invalidate(c.Request.Context())

	httpresp.OK(c, gin.H{"message": "Cliente removido."})
}

// ======================================================
// PHOTO PIPELINE
// ======================================================

// attachPhoto substitui o conjunto foto/miniatura/url do registro. Blob
// que não decodifica como imagem fica inline sem miniatura.
func (h *CustomerHandler) attachPhoto(ctx context.Context, cst *models.Customer, photo string) {
	cst.Photo = ""
	cst.PhotoThumb = ""
	cst.PhotoURL = ""

	if photo == "" {
		return
	}

	cst.Photo = photo

	if thumb, err := images.Thumbnail(photo); err == nil {
		cst.PhotoThumb = thumb
	}

	if !h.photos.Enabled() {
		return
	}

	raw, err := images.DecodeBase64(photo)
	if err != nil {
		return
	}

	url, err := h.photos.Upload(ctx, "customers/"+cst.ID, raw, images.ContentType(raw))
	if err != nil {
		log.Println("photo upload:", err)
		return
	}

	cst.PhotoURL = url
	cst.Photo = ""
}
