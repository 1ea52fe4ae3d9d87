package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/gleamhub/carwash-booking/internal/httperr"
	"github.com/gleamhub/carwash-booking/internal/images"
)

type ImageHandler struct {
	resolver *images.Resolver
}

func NewImageHandler(resolver *images.Resolver) *ImageHandler {
	return &ImageHandler{resolver: resolver}
}

// Get serves an image by logical name. Stored references carry no file
// extension, so the resolver walks uploads first, then the seeded model and
// brand image sets.
func (h *ImageHandler) Get(c *gin.Context) {
	path, ok := h.resolver.Resolve(c.Param("name"))
	if !ok {
		httperr.NotFound(c, "image_not_found", "No image matches this name.")
		return
	}

	c.File(path)
}
