package maintenance

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
	rg.GET("/work-orders", h.List)
	rg.GET("/work-orders/:id", h.Get)
	rg.POST("/work-orders", h.Create)
	rg.POST("/work-orders/:id/done", h.LogWorkDone)
	rg.POST("/work-orders/:id/approve", h.LogApproval)
	rg.DELETE("/work-orders/:id", h.Delete)
}

func (h *Handler) List(c *gin.Context) {
	if apt := c.Query("apartment_id"); apt != "" {
		apartmentID, err := strconv.ParseInt(apt, 10, 64)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid apartment ID")
			return
		}
		orders, err := h.service.ListByApartment(c.Request.Context(), apartmentID)
		if err != nil {
			h.renderError(c, err)
			return
		}
		response.Success(c, http.StatusOK, gin.H{"work_orders": orders})
		return
	}

	orders, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list work orders")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"work_orders": orders})
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	w, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.renderError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"work_order": w})
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateWorkOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	w, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.renderError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"work_order": w})
}

func (h *Handler) LogWorkDone(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req LogWorkDoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	w, err := h.service.LogWorkDone(c.Request.Context(), id, req)
	if err != nil {
		h.renderError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"work_order": w})
}

func (h *Handler) LogApproval(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req LogApprovalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	w, err := h.service.LogApproval(c.Request.Context(), id, req)
	if err != nil {
		h.renderError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"work_order": w})
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

func (h *Handler) renderError(c *gin.Context, err error) {
	switch err {
	case ErrValidation:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid work order data")
	case ErrDateOrder:
		response.Error(c, http.StatusBadRequest, "DATE_ORDER", "Work order dates must be non-decreasing")
	case ErrInvalidTransition:
		response.Error(c, http.StatusConflict, "INVALID_TRANSITION", "Work order status does not allow this operation")
	case ErrNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Work order not found")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Work order operation failed")
	}
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid work order ID")
		return 0, false
	}
	return id, true
}
