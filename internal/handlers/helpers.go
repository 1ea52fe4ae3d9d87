package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/gleamhub/carwash-booking/internal/middleware"
)

// actorEmail returns the authenticated admin's email for audit entries.
func actorEmail(c *gin.Context) string {
	if v, ok := c.Get(middleware.ContextAdminEmail); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
