package report

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
	rg.GET("/reports/daily-progress", h.DailyProgress)
	rg.GET("/reports/workload", h.Workload)
}

func (h *Handler) DailyProgress(c *gin.Context) {
	workerID, err := strconv.ParseInt(c.Query("worker_id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid worker ID")
		return
	}

	p, err := h.service.DailyProgress(c.Request.Context(), workerID, c.Query("date"))
	if err != nil {
		h.renderError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"progress": p})
}

func (h *Handler) Workload(c *gin.Context) {
	var workerID int64
	if raw := c.Query("worker_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid worker ID")
			return
		}
		workerID = id
	}

	rows, err := h.service.Workload(c.Request.Context(), c.Query("from"), c.Query("to"), workerID)
	if err != nil {
		h.renderError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"workload": rows})
}

func (h *Handler) renderError(c *gin.Context, err error) {
	switch err {
	case ErrValidation:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid report parameters")
	case ErrNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Worker not found")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Report generation failed")
	}
}
