package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/gleamhub/carwash-booking/internal/audit"
	"github.com/gleamhub/carwash-booking/internal/httperr"
	"github.com/gleamhub/carwash-booking/internal/httpresp"
	"github.com/gleamhub/carwash-booking/internal/images"
	"github.com/gleamhub/carwash-booking/internal/models"
)

type BrandHandler struct {
	db    *gorm.DB
	store *images.Store
	audit *audit.Dispatcher
}

func NewBrandHandler(db *gorm.DB, store *images.Store, audit *audit.Dispatcher) *BrandHandler {
	return &BrandHandler{db: db, store: store, audit: audit}
}

// --------- Handlers ---------

func (h *BrandHandler) List(c *gin.Context) {
	var brands []models.Brand
	if err := h.db.Order("name ASC").Find(&brands).Error; err != nil {
		httperr.Internal(c, "failed_to_list_brands", "Could not load brands.")
		return
	}
	httpresp.OK(c, brands)
}

// Create accepts a multipart form: "name" plus an optional "logo" file.
func (h *BrandHandler) Create(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("name"))
	if name == "" {
		httperr.BadRequest(c, "missing_name", "Brand name is required.")
		return
	}

	var count int64
	h.db.Model(&models.Brand{}).Where("name = ?", name).Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "brand_already_exists", "A brand with this name already exists.")
		return
	}

	brand := models.Brand{Name: name}

	if fh, err := c.FormFile("logo"); err == nil {
		stored, err := h.store.Save(fh, name)
		if err != nil {
			httperr.Internal(c, "failed_to_save_logo", "Could not store the logo file.")
			return
		}
		brand.Logo = stored
	}

	if err := h.db.Create(&brand).Error; err != nil {
		httperr.Internal(c, "failed_to_create_brand", "Could not create the brand.")
		return
	}

	h.audit.Dispatch(audit.Event{
		ActorEmail: actorEmail(c),
		Action:     "brand_created",
		Entity:     "brand",
		EntityID:   &brand.ID,
	})

	c.JSON(http.StatusCreated, brand)
}

func (h *BrandHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var brand models.Brand
	if err := h.db.First(&brand, "id = ?", id).Error; err != nil {
		httperr.NotFound(c, "brand_not_found", "Brand not found.")
		return
	}

	if name := strings.TrimSpace(c.PostForm("name")); name != "" && name != brand.Name {
		var count int64
		h.db.Model(&models.Brand{}).
			Where("name = ? AND id <> ?", name, brand.ID).
			Count(&count)
		if count > 0 {
			httperr.BadRequest(c, "brand_already_exists", "A brand with this name already exists.")
			return
		}
		brand.Name = name
	}

	if fh, err := c.FormFile("logo"); err == nil {
		stored, err := h.store.Save(fh, brand.Name)
		if err != nil {
			httperr.Internal(c, "failed_to_save_logo", "Could not store the logo file.")
			return
		}
		brand.Logo = stored
	}

	if err := h.db.Save(&brand).Error; err != nil {
		httperr.Internal(c, "failed_to_update_brand", "Could not update the brand.")
		return
	}

	h.audit.Dispatch(audit.Event{
		ActorEmail: actorEmail(c),
		Action:     "brand_updated",
		Entity:     "brand",
		EntityID:   &brand.ID,
	})

	c.JSON(http.StatusOK, brand)
}

// Delete removes the brand and its models in one transaction. The cascade is
// a documented behavior change: orphaned models could never be rendered.
func (h *BrandHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	var brand models.Brand
	if err := h.db.First(&brand, "id = ?", id).Error; err != nil {
		httperr.NotFound(c, "brand_not_found", "Brand not found.")
		return
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("brand_id = ?", brand.ID).Delete(&models.CarModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&brand).Error
	})
	if err != nil {
		httperr.Internal(c, "failed_to_delete_brand", "Could not delete the brand.")
		return
	}

	h.audit.Dispatch(audit.Event{
		ActorEmail: actorEmail(c),
		Action:     "brand_deleted",
		Entity:     "brand",
		EntityID:   &brand.ID,
	})

	c.JSON(http.StatusOK, gin.H{"deleted": brand.ID})
}
