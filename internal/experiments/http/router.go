package http

import "github.com/gin-gonic/gin"

// Register attaches experiment routes to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("", h.create)
	rg.GET("", h.listByUser)
	rg.GET("/:id", h.get)
	rg.PATCH("/:id", h.update)
	if h.events != nil {
		rg.GET("/:id/events", h.streamEvents)
	}
}
