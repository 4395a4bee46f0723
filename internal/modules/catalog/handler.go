package catalog

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

func (h *Handler) RegisterReadRoutes(rg *gin.RouterGroup) {
	rg.GET("/apartments", h.ListApartments)
	rg.GET("/apartments/:id", h.GetApartment)
	rg.GET("/task-types", h.ListTaskTypes)
}

// RegisterWriteRoutes holds the catalog mutations. The router gates them
// behind the supervisor role.
func (h *Handler) RegisterWriteRoutes(rg *gin.RouterGroup) {
	rg.POST("/apartments", h.CreateApartment)
	rg.PUT("/apartments/:id", h.UpdateApartment)
	rg.DELETE("/apartments/:id", h.DeleteApartment)

	rg.POST("/task-types", h.CreateTaskType)
	rg.PUT("/task-types/:id", h.UpdateTaskType)
	rg.DELETE("/task-types/:id", h.DeleteTaskType)
}

func (h *Handler) ListApartments(c *gin.Context) {
	apartments, err := h.service.ListApartments(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list apartments")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"apartments": apartments})
}

func (h *Handler) GetApartment(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	ap, err := h.service.GetApartment(c.Request.Context(), id)
	if err != nil {
		h.renderError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"apartment": ap})
}

func (h *Handler) CreateApartment(c *gin.Context) {
	var req ApartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	ap, err := h.service.CreateApartment(c.Request.Context(), req)
	if err != nil {
		h.renderError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"apartment": ap})
}

func (h *Handler) UpdateApartment(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req ApartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	ap, err := h.service.UpdateApartment(c.Request.Context(), id, req)
	if err != nil {
		h.renderError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"apartment": ap})
}

func (h *Handler) DeleteApartment(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteApartment(c.Request.Context(), id); err != nil {
		h.renderError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) ListTaskTypes(c *gin.Context) {
	taskTypes, err := h.service.ListTaskTypes(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list task types")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"task_types": taskTypes})
}

func (h *Handler) CreateTaskType(c *gin.Context) {
	var req TaskTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	t, err := h.service.CreateTaskType(c.Request.Context(), req)
	if err != nil {
		h.renderError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"task_type": t})
}

func (h *Handler) UpdateTaskType(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req TaskTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	t, err := h.service.UpdateTaskType(c.Request.Context(), id, req)
	if err != nil {
		h.renderError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"task_type": t})
}

func (h *Handler) DeleteTaskType(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteTaskType(c.Request.Context(), id); err != nil {
		h.renderError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) renderError(c *gin.Context, err error) {
	switch err {
	case ErrValidation:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid catalog data")
	case ErrReferenced:
		response.Error(c, http.StatusConflict, "STILL_REFERENCED", "Apartment is referenced by existing records")
	case ErrNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Record not found")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Catalog operation failed")
	}
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid ID")
		return 0, false
	}
	return id, true
}
