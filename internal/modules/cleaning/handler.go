package cleaning

import (
	"net/http"
	"strconv"

	"aparthotel/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/assignments", h.List)
	rg.GET("/assignments/:id", h.Get)
	rg.GET("/assignments/eligible-apartments", h.EligibleApartments)
	rg.POST("/assignments", h.Create)
	rg.POST("/assignments/:id/complete", h.Complete)
	rg.POST("/assignments/:id/reassign", h.Reassign)
	rg.DELETE("/assignments/:id", h.Delete)
}

// RegisterSupervisorRoutes holds the transitions only a supervisor may make.
func (h *Handler) RegisterSupervisorRoutes(rg *gin.RouterGroup) {
	rg.POST("/assignments/:id/verify", h.Verify)
	rg.POST("/assignments/:id/reopen", h.Reopen)
}

func (h *Handler) List(c *gin.Context) {
	if date := c.Query("date"); date != "" {
		assignments, err := h.service.ListByDate(c.Request.Context(), date)
		if err != nil {
			h.renderError(c, err)
			return
		}
		response.Success(c, http.StatusOK, gin.H{"assignments": assignments})
		return
	}

	assignments, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list assignments")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"assignments": assignments})
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	a, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.renderError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"assignment": a})
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	a, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.renderError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"assignment": a})
}

func (h *Handler) Complete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req CompleteAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	a, err := h.service.Complete(c.Request.Context(), id, req)
	if err != nil {
		h.renderError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"assignment": a})
}

func (h *Handler) Reassign(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req ReassignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	a, err := h.service.Reassign(c.Request.Context(), id, req)
	if err != nil {
		h.renderError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"assignment": a})
}

func (h *Handler) Verify(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	a, err := h.service.Verify(c.Request.Context(), id)
	if err != nil {
		h.renderError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"assignment": a})
}

func (h *Handler) Reopen(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	a, err := h.service.Reopen(c.Request.Context(), id)
	if err != nil {
		h.renderError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"assignment": a})
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.renderError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) EligibleApartments(c *gin.Context) {
	apartments, err := h.service.EligibleApartments(c.Request.Context(), c.Query("date"))
	if err != nil {
		h.renderError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"apartments": apartments})
}

func (h *Handler) renderError(c *gin.Context, err error) {
	switch err {
	case ErrValidation:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid assignment data")
	case ErrInvalidTransition:
		response.Error(c, http.StatusConflict, "INVALID_TRANSITION", "Assignment status does not allow this operation")
	case ErrSuspended:
		response.Error(c, http.StatusConflict, "SERVICES_SUSPENDED", "Apartment services are suspended")
	case ErrNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Assignment not found")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Assignment operation failed")
	}
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid assignment ID")
		return 0, false
	}
	return id, true
}
