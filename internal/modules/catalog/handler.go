package catalog

import (
	"errors"
	"net/http"

	"aerotours/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/destinations", h.ListDestinations)
	r.GET("/destinations/:slug", h.GetDestination)
	r.GET("/tours", h.ListTours)
	r.GET("/tours/:slug", h.GetTour)
	r.GET("/services", h.ListServices)
	r.GET("/images", h.ListImages)
	r.GET("/contact-info", h.GetContactInfo)
}

// ListDestinations handles GET /api/v1/destinations
func (h *Handler) ListDestinations(c *gin.Context) {
	destinations, err := h.service.ListDestinations(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to load destinations")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"destinations": destinations})
}

// GetDestination handles GET /api/v1/destinations/:slug
func (h *Handler) GetDestination(c *gin.Context) {
	view, err := h.service.GetDestination(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Destination not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to load destination")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"destination": view})
}

// ListTours handles GET /api/v1/tours
func (h *Handler) ListTours(c *gin.Context) {
	tours, err := h.service.ListTours(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to load tours")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"tours": tours})
}

// GetTour handles GET /api/v1/tours/:slug
func (h *Handler) GetTour(c *gin.Context) {
	view, err := h.service.GetTour(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Tour not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to load tour")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"tour": view})
}

// ListServices handles GET /api/v1/services
func (h *Handler) ListServices(c *gin.Context) {
	services, err := h.service.ListServices(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to load services")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"services": services})
}

// ListImages handles GET /api/v1/images?section=
func (h *Handler) ListImages(c *gin.Context) {
	images, err := h.service.ListImages(c.Request.Context(), c.Query("section"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to load images")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"images": images})
}

// GetContactInfo handles GET /api/v1/contact-info
func (h *Handler) GetContactInfo(c *gin.Context) {
	info, err := h.service.GetContactInfo(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to load contact info")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"contact_info": info})
}
