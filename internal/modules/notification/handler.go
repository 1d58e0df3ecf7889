package notification

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the endpoint at its fixed path. The response
// shape here is the endpoint's own contract, not the API envelope:
// {"success":true,"id":...} or a non-2xx {"error":...}.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.POST("/api/send-notification", h.Send)
}

// Send handles POST /api/send-notification. Callers treat this as
// fire-and-forget; a failure here must never block lead persistence,
// which already happened.
func (h *Handler) Send(c *gin.Context) {
	var payload LeadPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	id, err := h.service.Dispatch(payload)
	if err != nil {
		log.Printf("notification dispatch failed for %s: %v", payload.Email, err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to send notification"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "id": id})
}
