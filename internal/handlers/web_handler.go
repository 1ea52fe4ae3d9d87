package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/gleamhub/carwash-booking/internal/domain/order"
	"github.com/gleamhub/carwash-booking/internal/models"
)

type WebHandler struct {
	db *gorm.DB
}

func NewWebHandler(db *gorm.DB) *WebHandler {
	return &WebHandler{db: db}
}

// BookingPage renders the customer flow: pick a location, pick a car, pick a
// service and a free slot. The page keeps the location/car selection in
// localStorage and talks to the JSON API for everything dynamic.
func (h *WebHandler) BookingPage(c *gin.Context) {
	var locations []models.Location
	h.db.Where("is_active = ?", true).Order("city ASC").Find(&locations)

	var brands []models.Brand
	h.db.Order("name ASC").Find(&brands)

	var services []models.Service
	h.db.Order("id ASC").Find(&services)

	c.HTML(http.StatusOK, "booking.html", gin.H{
		"Locations": locations,
		"Brands":    brands,
		"Services":  services,
		"Slots":     domain.TimeSlots,
	})
}

// AdminPage renders the dashboard shell; data loads through the API with the
// bearer token from the login form.
func (h *WebHandler) AdminPage(c *gin.Context) {
	c.HTML(http.StatusOK, "admin.html", gin.H{})
}
