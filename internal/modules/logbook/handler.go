package logbook

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
	rg.GET("/logbook", h.ListEntries)
	rg.POST("/logbook", h.CreateEntry)
	rg.PUT("/logbook/:id", h.UpdateEntry)
	rg.DELETE("/logbook/:id", h.DeleteEntry)

	rg.GET("/post-its", h.ListPostIts)
	rg.POST("/post-its", h.CreatePostIt)
	rg.DELETE("/post-its/:id", h.DeletePostIt)
	rg.POST("/post-its/:id/comments", h.AddComment)

	rg.GET("/settings/building-name", h.BuildingName)
}

// RegisterSupervisorRoutes gates the building-name change behind the
// supervisor role.
func (h *Handler) RegisterSupervisorRoutes(rg *gin.RouterGroup) {
	rg.PUT("/settings/building-name", h.SetBuildingName)
}

func (h *Handler) ListEntries(c *gin.Context) {
	entries, err := h.service.ListEntries(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list logbook entries")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"entries": entries})
}

func (h *Handler) CreateEntry(c *gin.Context) {
	var req EntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	e, err := h.service.CreateEntry(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		h.renderError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"entry": e})
}

func (h *Handler) UpdateEntry(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req EntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	e, err := h.service.UpdateEntry(c.Request.Context(), id, req)
	if err != nil {
		h.renderError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"entry": e})
}

func (h *Handler) DeleteEntry(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteEntry(c.Request.Context(), id); err != nil {
		h.renderError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) ListPostIts(c *gin.Context) {
	postIts, err := h.service.ListPostIts(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list post-its")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"post_its": postIts})
}

func (h *Handler) CreatePostIt(c *gin.Context) {
	var req PostItRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	p, err := h.service.CreatePostIt(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		h.renderError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"post_it": p})
}

func (h *Handler) DeletePostIt(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.DeletePostIt(c.Request.Context(), id); err != nil {
		h.renderError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) AddComment(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	p, err := h.service.AddComment(c.Request.Context(), id, c.GetInt64("user_id"), req)
	if err != nil {
		h.renderError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"post_it": p})
}

func (h *Handler) BuildingName(c *gin.Context) {
	name, err := h.service.BuildingName(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load building name")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"name": name})
}

func (h *Handler) SetBuildingName(c *gin.Context) {
	var req BuildingNameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if err := h.service.SetBuildingName(c.Request.Context(), req.Name); err != nil {
		h.renderError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"name": req.Name})
}

func (h *Handler) renderError(c *gin.Context, err error) {
	switch err {
	case ErrValidation:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid logbook data")
	case ErrNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Record not found")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Logbook operation failed")
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
