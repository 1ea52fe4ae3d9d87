package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/gleamhub/carwash-booking/internal/audit"
	"github.com/gleamhub/carwash-booking/internal/httperr"
	"github.com/gleamhub/carwash-booking/internal/httpresp"
	"github.com/gleamhub/carwash-booking/internal/models"
)

type LocationHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewLocationHandler(db *gorm.DB, audit *audit.Dispatcher) *LocationHandler {
	return &LocationHandler{db: db, audit: audit}
}

// --------- Requests ---------

type CreateLocationRequest struct {
	City     string   `json:"city" binding:"required"`
	Areas    []string `json:"areas"`
	IsActive *bool    `json:"is_active"`
}

// --------- Handlers ---------

// List returns only active locations; customers never see disabled cities.
func (h *LocationHandler) List(c *gin.Context) {
	var locations []models.Location
	if err := h.db.
		Where("is_active = ?", true).
		Order("city ASC").
		Find(&locations).Error; err != nil {
		httperr.Internal(c, "failed_to_list_locations", "Could not load locations.")
		return
	}
	httpresp.OK(c, locations)
}

// ListAll is the admin view, inactive locations included.
func (h *LocationHandler) ListAll(c *gin.Context) {
	var locations []models.Location
	if err := h.db.Order("city ASC").Find(&locations).Error; err != nil {
		httperr.Internal(c, "failed_to_list_locations", "Could not load locations.")
		return
	}
	httpresp.OK(c, locations)
}

func (h *LocationHandler) Create(c *gin.Context) {
	var req CreateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "City is required.")
		return
	}

	city := strings.TrimSpace(req.City)

	var count int64
	h.db.Model(&models.Location{}).Where("city = ?", city).Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "city_already_exists", "This city has already been added.")
		return
	}

	loc := models.Location{
		City:     city,
		Areas:    models.StringList(req.Areas),
		IsActive: true,
	}
	if req.IsActive != nil {
		loc.IsActive = *req.IsActive
	}

	if err := h.db.Create(&loc).Error; err != nil {
		httperr.Internal(c, "failed_to_create_location", "Could not create the location.")
		return
	}

	h.audit.Dispatch(audit.Event{
		ActorEmail: actorEmail(c),
		Action:     "location_created",
		Entity:     "location",
		EntityID:   &loc.ID,
	})

	c.JSON(http.StatusCreated, loc)
}

func (h *LocationHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	var loc models.Location
	if err := h.db.First(&loc, "id = ?", id).Error; err != nil {
		httperr.NotFound(c, "location_not_found", "Location not found.")
		return
	}

	if err := h.db.Delete(&loc).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_location", "Could not delete the location.")
		return
	}

	h.audit.Dispatch(audit.Event{
		ActorEmail: actorEmail(c),
		Action:     "location_deleted",
		Entity:     "location",
		EntityID:   &loc.ID,
	})

	c.JSON(http.StatusOK, gin.H{"deleted": loc.ID})
}
