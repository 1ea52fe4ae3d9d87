package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/gleamhub/carwash-booking/internal/audit"
	"github.com/gleamhub/carwash-booking/internal/domain/pricing"
	"github.com/gleamhub/carwash-booking/internal/httperr"
	"github.com/gleamhub/carwash-booking/internal/httpresp"
	"github.com/gleamhub/carwash-booking/internal/models"
)

type SettingsHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewSettingsHandler(db *gorm.DB, audit *audit.Dispatcher) *SettingsHandler {
	return &SettingsHandler{db: db, audit: audit}
}

// --------- Requests ---------

type UpdateSettingRequest struct {
	Value string `json:"value" binding:"required"`
}

// --------- Handlers ---------

func (h *SettingsHandler) List(c *gin.Context) {
	var rows []models.Setting
	if err := h.db.Order("key ASC").Find(&rows).Error; err != nil {
		httperr.Internal(c, "failed_to_list_settings", "Could not load settings.")
		return
	}

	out := make(map[string]string, len(rows))
	for _, row := range rows {
		out[row.Key] = row.Value
	}
	httpresp.OK(c, out)
}

func (h *SettingsHandler) Update(c *gin.Context) {
	key := strings.TrimSpace(c.Param("key"))
	if key == "" {
		httperr.BadRequest(c, "missing_key", "Setting key is required.")
		return
	}

	var req UpdateSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Value is required.")
		return
	}

	row := models.Setting{Key: key, Value: req.Value}
	if err := h.db.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&row).Error; err != nil {
		httperr.Internal(c, "failed_to_update_setting", "Could not save the setting.")
		return
	}

	h.audit.Dispatch(audit.Event{
		ActorEmail: actorEmail(c),
		Action:     "setting_updated",
		Entity:     "setting",
		Metadata:   map[string]string{"key": key},
	})

	c.JSON(http.StatusOK, gin.H{"key": key, "value": req.Value})
}

// Seed installs the historical per-type surcharge rows. Existing values are
// left alone so a re-seed never clobbers tuned charges.
func (h *SettingsHandler) Seed(c *gin.Context) {
	for key, value := range pricing.DefaultSurcharges {
		row := models.Setting{Key: key, Value: value}
		if err := h.db.
			Clauses(clause.OnConflict{DoNothing: true}).
			Create(&row).Error; err != nil {
			httperr.Internal(c, "failed_to_seed_settings", "Could not seed settings.")
			return
		}
	}

	h.audit.Dispatch(audit.Event{
		ActorEmail: actorEmail(c),
		Action:     "settings_seeded",
		Entity:     "setting",
	})

	c.JSON(http.StatusOK, gin.H{"seeded": true})
}
