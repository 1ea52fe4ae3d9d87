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

type SegmentHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewSegmentHandler(db *gorm.DB, audit *audit.Dispatcher) *SegmentHandler {
	return &SegmentHandler{db: db, audit: audit}
}

// --------- Requests ---------

type CreateSegmentRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// --------- Handlers ---------

func (h *SegmentHandler) List(c *gin.Context) {
	var segments []models.Segment
	if err := h.db.Order("name ASC").Find(&segments).Error; err != nil {
		httperr.Internal(c, "failed_to_list_segments", "Could not load segments.")
		return
	}
	httpresp.OK(c, segments)
}

func (h *SegmentHandler) Create(c *gin.Context) {
	var req CreateSegmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Segment name is required.")
		return
	}

	name := strings.TrimSpace(req.Name)

	var count int64
	h.db.Model(&models.Segment{}).Where("name = ?", name).Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "segment_already_exists", "This segment is already registered.")
		return
	}

	seg := models.Segment{Name: name, Description: req.Description}
	if err := h.db.Create(&seg).Error; err != nil {
		httperr.Internal(c, "failed_to_create_segment", "Could not create the segment.")
		return
	}

	h.audit.Dispatch(audit.Event{
		ActorEmail: actorEmail(c),
		Action:     "segment_created",
		Entity:     "segment",
		EntityID:   &seg.ID,
	})

	c.JSON(http.StatusCreated, seg)
}

// Delete refuses while car models still use the label, otherwise pricing
// for those models would silently fall back to base price.
func (h *SegmentHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	var seg models.Segment
	if err := h.db.First(&seg, "id = ?", id).Error; err != nil {
		httperr.NotFound(c, "segment_not_found", "Segment not found.")
		return
	}

	var inUse int64
	h.db.Model(&models.CarModel{}).Where("segment = ?", seg.Name).Count(&inUse)
	if inUse > 0 {
		httperr.BadRequest(c, "segment_in_use", "Car models still reference this segment.")
		return
	}

	if err := h.db.Delete(&seg).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_segment", "Could not delete the segment.")
		return
	}

	h.audit.Dispatch(audit.Event{
		ActorEmail: actorEmail(c),
		Action:     "segment_deleted",
		Entity:     "segment",
		EntityID:   &seg.ID,
	})

	c.JSON(http.StatusOK, gin.H{"deleted": seg.ID})
}
