package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/gleamhub/carwash-booking/internal/audit"
	"github.com/gleamhub/carwash-booking/internal/httperr"
	"github.com/gleamhub/carwash-booking/internal/httpresp"
	"github.com/gleamhub/carwash-booking/internal/images"
	"github.com/gleamhub/carwash-booking/internal/models"
)

type ServiceHandler struct {
	db    *gorm.DB
	store *images.Store
	audit *audit.Dispatcher
}

func NewServiceHandler(db *gorm.DB, store *images.Store, audit *audit.Dispatcher) *ServiceHandler {
	return &ServiceHandler{db: db, store: store, audit: audit}
}

// --------- Handlers ---------

func (h *ServiceHandler) List(c *gin.Context) {
	var services []models.Service
	if err := h.db.Order("id ASC").Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Could not load services.")
		return
	}

	// The location filter is present-but-optional; services with an empty
	// list are offered everywhere.
	if locStr := strings.TrimSpace(c.Query("location")); locStr != "" {
		locID, err := strconv.ParseUint(locStr, 10, 64)
		if err != nil {
			httperr.BadRequest(c, "invalid_location_id", "Location id must be numeric.")
			return
		}
		filtered := make([]models.Service, 0, len(services))
		for _, s := range services {
			if s.AvailableAt(uint(locID)) {
				filtered = append(filtered, s)
			}
		}
		services = filtered
	}

	httpresp.OK(c, services)
}

// Create accepts a multipart form. pricingRules arrives as a JSON object,
// features and availableLocations as JSON arrays or comma-separated strings.
func (h *ServiceHandler) Create(c *gin.Context) {
	title := strings.TrimSpace(c.PostForm("title"))
	if title == "" {
		httperr.BadRequest(c, "missing_title", "Service title is required.")
		return
	}

	basePrice, err := parseBasePrice(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_base_price", "basePrice must be a number.")
		return
	}

	rules, err := parsePricingRules(c.PostForm("pricingRules"))
	if err != nil {
		httperr.BadRequest(c, "invalid_pricing_rules", "pricingRules must be a JSON object of segment to price.")
		return
	}
	if code := h.validateRuleKeys(rules); code != "" {
		httperr.BadRequest(c, code, "Pricing rule keys must be registered segments.")
		return
	}

	locations, err := parseUintList(c.PostForm("availableLocations"))
	if err != nil {
		httperr.BadRequest(c, "invalid_available_locations", "availableLocations must be a list of location ids.")
		return
	}

	svc := models.Service{
		Title:              title,
		Description:        c.PostForm("description"),
		BasePrice:          basePrice,
		PricingRules:       rules,
		Features:           parseStringList(c.PostForm("features")),
		AvailableLocations: locations,
	}

	if fh, err := c.FormFile("image"); err == nil {
		stored, err := h.store.Save(fh, title)
		if err != nil {
			httperr.Internal(c, "failed_to_save_image", "Could not store the image file.")
			return
		}
		svc.Image = stored
	}

	if err := h.db.Create(&svc).Error; err != nil {
		httperr.Internal(c, "failed_to_create_service", "Could not create the service.")
		return
	}

	h.audit.Dispatch(audit.Event{
		ActorEmail: actorEmail(c),
		Action:     "service_created",
		Entity:     "service",
		EntityID:   &svc.ID,
	})

	c.JSON(http.StatusCreated, svc)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var svc models.Service
	if err := h.db.First(&svc, "id = ?", id).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Service not found.")
		return
	}

	if title := strings.TrimSpace(c.PostForm("title")); title != "" {
		svc.Title = title
	}
	if _, ok := c.GetPostForm("description"); ok {
		svc.Description = c.PostForm("description")
	}

	if _, ok := firstPostForm(c, "basePrice", "price"); ok {
		basePrice, err := parseBasePrice(c)
		if err != nil {
			httperr.BadRequest(c, "invalid_base_price", "basePrice must be a number.")
			return
		}
		svc.BasePrice = basePrice
	}

	if raw, ok := c.GetPostForm("pricingRules"); ok {
		rules, err := parsePricingRules(raw)
		if err != nil {
			httperr.BadRequest(c, "invalid_pricing_rules", "pricingRules must be a JSON object of segment to price.")
			return
		}
		if code := h.validateRuleKeys(rules); code != "" {
			httperr.BadRequest(c, code, "Pricing rule keys must be registered segments.")
			return
		}
		svc.PricingRules = rules
	}

	if raw, ok := c.GetPostForm("features"); ok {
		svc.Features = parseStringList(raw)
	}

	if raw, ok := c.GetPostForm("availableLocations"); ok {
		locations, err := parseUintList(raw)
		if err != nil {
			httperr.BadRequest(c, "invalid_available_locations", "availableLocations must be a list of location ids.")
			return
		}
		svc.AvailableLocations = locations
	}

	if fh, err := c.FormFile("image"); err == nil {
		stored, err := h.store.Save(fh, svc.Title)
		if err != nil {
			httperr.Internal(c, "failed_to_save_image", "Could not store the image file.")
			return
		}
		svc.Image = stored
	}

	if err := h.db.Save(&svc).Error; err != nil {
		httperr.Internal(c, "failed_to_update_service", "Could not update the service.")
		return
	}

	h.audit.Dispatch(audit.Event{
		ActorEmail: actorEmail(c),
		Action:     "service_updated",
		Entity:     "service",
		EntityID:   &svc.ID,
	})

	c.JSON(http.StatusOK, svc)
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	var svc models.Service
	if err := h.db.First(&svc, "id = ?", id).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Service not found.")
		return
	}

	if err := h.db.Delete(&svc).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_service", "Could not delete the service.")
		return
	}

	h.audit.Dispatch(audit.Event{
		ActorEmail: actorEmail(c),
		Action:     "service_deleted",
		Entity:     "service",
		EntityID:   &svc.ID,
	})

	c.JSON(http.StatusOK, gin.H{"deleted": svc.ID})
}

// --------- Form parsing ---------

// parseBasePrice reads "basePrice" with "price" as the legacy field name.
func parseBasePrice(c *gin.Context) (float64, error) {
	raw, _ := firstPostForm(c, "basePrice", "price")
	return strconv.ParseFloat(strings.TrimSpace(raw), 64)
}

func firstPostForm(c *gin.Context, keys ...string) (string, bool) {
	for _, k := range keys {
		if v, ok := c.GetPostForm(k); ok {
			return v, true
		}
	}
	return "", false
}

func parsePricingRules(raw string) (models.PricingRules, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return models.PricingRules{}, nil
	}

	var rules models.PricingRules
	if err := json.Unmarshal([]byte(raw), &rules); err != nil {
		return nil, err
	}
	return rules, nil
}

func parseStringList(raw string) models.StringList {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return models.StringList{}
	}

	var list models.StringList
	if err := json.Unmarshal([]byte(raw), &list); err == nil {
		return list
	}

	// legacy comma-separated form
	parts := strings.Split(raw, ",")
	list = make(models.StringList, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			list = append(list, p)
		}
	}
	return list
}

func parseUintList(raw string) (models.UintList, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return models.UintList{}, nil
	}

	var list models.UintList
	if err := json.Unmarshal([]byte(raw), &list); err == nil {
		return list, nil
	}

	parts := strings.Split(raw, ",")
	list = make(models.UintList, 0, len(parts))
	for _, p := range parts {
		id, err := strconv.ParseUint(strings.TrimSpace(p), 10, 64)
		if err != nil {
			return nil, err
		}
		list = append(list, uint(id))
	}
	return list, nil
}

func (h *ServiceHandler) validateRuleKeys(rules models.PricingRules) string {
	if len(rules) == 0 {
		return ""
	}

	names := make([]string, 0, len(rules))
	for k := range rules {
		names = append(names, k)
	}

	var count int64
	h.db.Model(&models.Segment{}).Where("name IN ?", names).Count(&count)
	if count != int64(len(names)) {
		return "unknown_segment_in_rules"
	}
	return ""
}
