package admin

import (
	"errors"
	"net/http"
	"strconv"

	"aerotours/internal/pkg/response"
	"aerotours/internal/pkg/validator"
	"aerotours/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the back-office API; the group must already carry
// the JWT + admin-role middleware.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	destinations := r.Group("/destinations")
	{
		destinations.GET("", h.ListDestinations)
		destinations.POST("", h.CreateDestination)
		destinations.PUT("/:id", h.UpdateDestination)
		destinations.PATCH("/:id/active", h.SetDestinationActive)
		destinations.PATCH("/:id/reorder", h.ReorderDestination)
		destinations.DELETE("/:id", h.DeleteDestination)
	}

	tours := r.Group("/tours")
	{
		tours.GET("", h.ListTours)
		tours.POST("", h.CreateTour)
		tours.PUT("/:id", h.UpdateTour)
		tours.PATCH("/:id/active", h.SetTourActive)
		tours.PATCH("/:id/reorder", h.ReorderTour)
		tours.DELETE("/:id", h.DeleteTour)
	}

	services := r.Group("/services")
	{
		services.GET("", h.ListServices)
		services.POST("", h.CreateService)
		services.PUT("/:id", h.UpdateService)
		services.PATCH("/:id/reorder", h.ReorderService)
		services.DELETE("/:id", h.DeleteService)
	}

	images := r.Group("/images")
	{
		images.GET("", h.ListImages)
		images.POST("", h.CreateImage)
		images.PUT("/:id", h.UpdateImage)
		images.DELETE("/:id", h.DeleteImage)
	}

	messages := r.Group("/messages")
	{
		messages.GET("", h.ListLeads)
		messages.GET("/:id", h.GetLead)
		messages.PATCH("/:id/status", h.UpdateLeadStatus)
		messages.DELETE("/:id", h.DeleteLead)
	}

	r.GET("/contact-info", h.GetContactInfo)
	r.PUT("/contact-info", h.UpdateContactInfo)
	r.GET("/settings", h.ListSettings)
	r.PUT("/settings", h.SetSetting)
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid id")
		return 0, false
	}
	return id, true
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Resource not found")
	case errors.Is(err, ErrSlugTaken):
		response.Error(c, http.StatusConflict, "SLUG_TAKEN", "A record with this slug already exists")
	case errors.Is(err, ErrInvalidStatus):
		response.Error(c, http.StatusBadRequest, "INVALID_STATUS", "Status must be pending, contacted or completed")
	case errors.Is(err, ErrInvalidDirection):
		response.Error(c, http.StatusBadRequest, "INVALID_DIRECTION", "Direction must be up or down")
	case errors.Is(err, ErrReorderIncomplete):
		response.Error(c, http.StatusInternalServerError, "REORDER_INCOMPLETE",
			"Reorder was only partially applied; reload to see the backend state")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
	}
}

/* ---------- DESTINATIONS ---------- */

func (h *Handler) ListDestinations(c *gin.Context) {
	items, err := h.service.ListDestinations(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"destinations": items})
}

func (h *Handler) CreateDestination(c *gin.Context) {
	var req CreateDestinationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_FAILED", "Missing required fields", fields)
		return
	}

	d, err := h.service.CreateDestination(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"destination": d})
}

func (h *Handler) UpdateDestination(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateDestinationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}

	d, err := h.service.UpdateDestination(c.Request.Context(), id, req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"destination": d})
}

func (h *Handler) SetDestinationActive(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req SetActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.IsActive == nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "is_active is required")
		return
	}

	if err := h.service.SetDestinationActive(c.Request.Context(), id, *req.IsActive); err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"is_active": *req.IsActive})
}

func (h *Handler) ReorderDestination(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "direction is required")
		return
	}

	items, err := h.service.ReorderDestination(c.Request.Context(), id, req.Direction)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"destinations": items})
}

func (h *Handler) DeleteDestination(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteDestination(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": id})
}

/* ---------- TOURS ---------- */

func (h *Handler) ListTours(c *gin.Context) {
	items, err := h.service.ListTours(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"tours": items})
}

func (h *Handler) CreateTour(c *gin.Context) {
	var req CreateTourRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_FAILED", "Missing required fields", fields)
		return
	}

	t, err := h.service.CreateTour(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"tour": t})
}

func (h *Handler) UpdateTour(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateTourRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}

	t, err := h.service.UpdateTour(c.Request.Context(), id, req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"tour": t})
}

func (h *Handler) SetTourActive(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req SetActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.IsActive == nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "is_active is required")
		return
	}

	if err := h.service.SetTourActive(c.Request.Context(), id, *req.IsActive); err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"is_active": *req.IsActive})
}

func (h *Handler) ReorderTour(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "direction is required")
		return
	}

	items, err := h.service.ReorderTour(c.Request.Context(), id, req.Direction)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"tours": items})
}

func (h *Handler) DeleteTour(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteTour(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": id})
}

/* ---------- SERVICES ---------- */

func (h *Handler) ListServices(c *gin.Context) {
	items, err := h.service.ListServices(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"services": items})
}

func (h *Handler) CreateService(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_FAILED", "Missing required fields", fields)
		return
	}

	svc, err := h.service.CreateService(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"service": svc})
}

func (h *Handler) UpdateService(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}

	svc, err := h.service.UpdateService(c.Request.Context(), id, req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"service": svc})
}

func (h *Handler) ReorderService(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "direction is required")
		return
	}

	items, err := h.service.ReorderService(c.Request.Context(), id, req.Direction)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"services": items})
}

func (h *Handler) DeleteService(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteService(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": id})
}

/* ---------- IMAGES ---------- */

func (h *Handler) ListImages(c *gin.Context) {
	items, err := h.service.ListImages(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"images": items})
}

func (h *Handler) CreateImage(c *gin.Context) {
	var req CreateImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_FAILED", "Missing required fields", fields)
		return
	}

	img, err := h.service.CreateImage(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"image": img})
}

func (h *Handler) UpdateImage(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}

	img, err := h.service.UpdateImage(c.Request.Context(), id, req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"image": img})
}

func (h *Handler) DeleteImage(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteImage(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": id})
}

/* ---------- MESSAGES ---------- */

// ListLeads handles GET /admin/messages?status=&limit=&page=
func (h *Handler) ListLeads(c *gin.Context) {
	var f repository.LeadFilters
	f.Status = c.Query("status")

	f.Limit = 50
	if s := c.Query("limit"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v > 0 && v <= 200 {
			f.Limit = v
		}
	}
	if s := c.Query("page"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v > 0 {
			f.Offset = (v - 1) * f.Limit
		}
	}

	leads, total, err := h.service.ListLeads(c.Request.Context(), f)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"messages": leads, "total": total})
}

func (h *Handler) GetLead(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	lead, err := h.service.GetLead(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, lead)
}

func (h *Handler) UpdateLeadStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateLeadStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "status is required")
		return
	}

	if err := h.service.UpdateLeadStatus(c.Request.Context(), id, req.Status); err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"status": req.Status})
}

func (h *Handler) DeleteLead(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteLead(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": id})
}

/* ---------- CONTACT INFO / SETTINGS ---------- */

func (h *Handler) GetContactInfo(c *gin.Context) {
	info, err := h.service.GetContactInfo(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"contact_info": info})
}

func (h *Handler) UpdateContactInfo(c *gin.Context) {
	var req UpdateContactInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}

	info, err := h.service.UpdateContactInfo(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"contact_info": info})
}

func (h *Handler) ListSettings(c *gin.Context) {
	settings, err := h.service.ListSettings(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"settings": settings})
}

func (h *Handler) SetSetting(c *gin.Context) {
	var req SetSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_FAILED", "Missing required fields", fields)
		return
	}

	if err := h.service.SetSetting(c.Request.Context(), req.Key, req.Value); err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"key": req.Key, "value": req.Value})
}
