package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/gleamhub/carwash-booking/internal/audit"
	"github.com/gleamhub/carwash-booking/internal/httperr"
	"github.com/gleamhub/carwash-booking/internal/images"
	"github.com/gleamhub/carwash-booking/internal/models"
)

type CarModelHandler struct {
	db    *gorm.DB
	store *images.Store
	audit *audit.Dispatcher
}

func NewCarModelHandler(db *gorm.DB, store *images.Store, audit *audit.Dispatcher) *CarModelHandler {
	return &CarModelHandler{db: db, store: store, audit: audit}
}

// --------- Handlers ---------

func (h *CarModelHandler) ListByBrand(c *gin.Context) {
	brandID, err := strconv.ParseUint(c.Param("brandId"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_brand_id", "Brand id must be numeric.")
		return
	}

	var list []models.CarModel
	if err := h.db.
		Where("brand_id = ?", brandID).
		Order("name ASC").
		Find(&list).Error; err != nil {
		httperr.Internal(c, "failed_to_list_models", "Could not load car models.")
		return
	}

	c.JSON(http.StatusOK, list)
}

// Create accepts a multipart form: name, brand, type, segment plus an
// optional "image" file. Segment labels must exist in the vocabulary so a
// typo cannot silently disable dynamic pricing.
func (h *CarModelHandler) Create(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("name"))
	brandStr := strings.TrimSpace(c.PostForm("brand"))
	carType := strings.TrimSpace(c.PostForm("type"))
	segment := strings.TrimSpace(c.PostForm("segment"))

	if name == "" || brandStr == "" || carType == "" || segment == "" {
		httperr.BadRequest(c, "missing_fields", "name, brand, type and segment are required.")
		return
	}

	brandID, err := strconv.ParseUint(brandStr, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_brand_id", "Brand id must be numeric.")
		return
	}

	if !models.IsValidCarType(carType) {
		httperr.BadRequest(c, "invalid_car_type", "Type must be one of hatchback, sedan, suv, luxury.")
		return
	}

	var brand models.Brand
	if err := h.db.First(&brand, brandID).Error; err != nil {
		httperr.NotFound(c, "brand_not_found", "Brand not found.")
		return
	}

	if !h.segmentRegistered(segment) {
		httperr.BadRequest(c, "unknown_segment", "Segment is not registered in the vocabulary.")
		return
	}

	cm := models.CarModel{
		Name:    name,
		BrandID: brand.ID,
		Type:    carType,
		Segment: segment,
	}

	if fh, err := c.FormFile("image"); err == nil {
		stored, err := h.store.Save(fh, name)
		if err != nil {
			httperr.Internal(c, "failed_to_save_image", "Could not store the image file.")
			return
		}
		cm.Image = stored
	}

	if err := h.db.Create(&cm).Error; err != nil {
		httperr.Internal(c, "failed_to_create_model", "Could not create the car model.")
		return
	}

	h.audit.Dispatch(audit.Event{
		ActorEmail: actorEmail(c),
		Action:     "car_model_created",
		Entity:     "car_model",
		EntityID:   &cm.ID,
	})

	c.JSON(http.StatusCreated, cm)
}

func (h *CarModelHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var cm models.CarModel
	if err := h.db.First(&cm, "id = ?", id).Error; err != nil {
		httperr.NotFound(c, "car_model_not_found", "Car model not found.")
		return
	}

	if name := strings.TrimSpace(c.PostForm("name")); name != "" {
		cm.Name = name
	}

	if brandStr := strings.TrimSpace(c.PostForm("brand")); brandStr != "" {
		brandID, err := strconv.ParseUint(brandStr, 10, 64)
		if err != nil {
			httperr.BadRequest(c, "invalid_brand_id", "Brand id must be numeric.")
			return
		}
		var brand models.Brand
		if err := h.db.First(&brand, brandID).Error; err != nil {
			httperr.NotFound(c, "brand_not_found", "Brand not found.")
			return
		}
		cm.BrandID = brand.ID
	}

	if carType := strings.TrimSpace(c.PostForm("type")); carType != "" {
		if !models.IsValidCarType(carType) {
			httperr.BadRequest(c, "invalid_car_type", "Type must be one of hatchback, sedan, suv, luxury.")
			return
		}
		cm.Type = carType
	}

	if segment := strings.TrimSpace(c.PostForm("segment")); segment != "" {
		if !h.segmentRegistered(segment) {
			httperr.BadRequest(c, "unknown_segment", "Segment is not registered in the vocabulary.")
			return
		}
		cm.Segment = segment
	}

	if fh, err := c.FormFile("image"); err == nil {
		stored, err := h.store.Save(fh, cm.Name)
		if err != nil {
			httperr.Internal(c, "failed_to_save_image", "Could not store the image file.")
			return
		}
		cm.Image = stored
	}

	if err := h.db.Save(&cm).Error; err != nil {
		httperr.Internal(c, "failed_to_update_model", "Could not update the car model.")
		return
	}

	h.audit.Dispatch(audit.Event{
		ActorEmail: actorEmail(c),
		Action:     "car_model_updated",
		Entity:     "car_model",
		EntityID:   &cm.ID,
	})

	c.JSON(http.StatusOK, cm)
}

func (h *CarModelHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	var cm models.CarModel
	if err := h.db.First(&cm, "id = ?", id).Error; err != nil {
		httperr.NotFound(c, "car_model_not_found", "Car model not found.")
		return
	}

	if err := h.db.Delete(&cm).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_model", "Could not delete the car model.")
		return
	}

	h.audit.Dispatch(audit.Event{
		ActorEmail: actorEmail(c),
		Action:     "car_model_deleted",
		Entity:     "car_model",
		EntityID:   &cm.ID,
	})

	c.JSON(http.StatusOK, gin.H{"deleted": cm.ID})
}

func (h *CarModelHandler) segmentRegistered(name string) bool {
	var count int64
	h.db.Model(&models.Segment{}).Where("name = ?", name).Count(&count)
	return count > 0
}
