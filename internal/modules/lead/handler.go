package lead

import (
	"errors"
	"net/http"

	"aerotours/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	leads := r.Group("/leads")
	{
		leads.POST("", h.Submit)
		leads.GET("/prefill", h.Prefill)
		leads.GET("/form-options", h.FormOptions)
	}
}

// Submit handles POST /api/v1/leads
func (h *Handler) Submit(c *gin.Context) {
	var req SubmitLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}

	lead, err := h.service.Submit(c.Request.Context(), req.FormState, req.PreSelectedPrice)
	if err != nil {
		var ve *ValidationError
		if errors.As(err, &ve) {
			response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_FAILED",
				"Some required fields are missing or invalid", ve.Fields)
			return
		}
		if errors.Is(err, ErrPersistence) {
			response.Error(c, http.StatusInternalServerError, "SUBMISSION_FAILED",
				"No pudimos enviar tu solicitud. Por favor intenta de nuevo.")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"lead":      lead,
		"form_type": req.FormState.FormType(),
	})
}

// Prefill handles GET /api/v1/leads/prefill?destination=&tour=&aircraft=&price=
func (h *Handler) Prefill(c *gin.Context) {
	pc, err := h.service.BuildPrefill(
		c.Request.Context(),
		c.Query("destination"),
		c.Query("tour"),
		c.Query("aircraft"),
		c.Query("price"),
	)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to resolve prefill context")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"prefill": pc})
}

// FormOptions handles GET /api/v1/leads/form-options
func (h *Handler) FormOptions(c *gin.Context) {
	opts, err := h.service.GetFormOptions(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to load form options")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"options": opts})
}
