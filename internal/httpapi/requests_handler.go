package httpapi

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/udalba/campusmarket/internal/requests"
)

type RequestsHandler struct {
	requests *requests.Service
}

func NewRequestsHandler(requests *requests.Service) *RequestsHandler {
	return &RequestsHandler{requests: requests}
}

func (h *RequestsHandler) RegisterRoutes(rg *gin.RouterGroup, authRequired gin.HandlerFunc) {
	rg.GET("/board", h.Board)

	rg.GET("/requests", authRequired, h.ListOwn)
	rg.POST("/requests", authRequired, h.Post)
	rg.PUT("/requests/:id", authRequired, h.Edit)
	rg.DELETE("/requests/:id", authRequired, h.Delete)
}

// Board is the public wanted board, newest first.
func (h *RequestsHandler) Board(c *gin.Context) {
	items, err := h.requests.ListAll(c.Request.Context())
	if err != nil {
		mapError(c, err)
		return
	}

	result := make([]gin.H, 0, len(items))
	for _, item := range items {
		result = append(result, gin.H{
			"id":                item.ID,
			"title":             item.Title,
			"budget":            item.Budget,
			"description":       item.Description,
			"requester_email":   item.RequesterEmail,
			"requester_name":    item.RequesterName,
			"requester_contact": item.RequesterContact,
			"created_at":        formatDate(item.CreatedAt),
		})
	}

	c.JSON(http.StatusOK, result)
}

func (h *RequestsHandler) ListOwn(c *gin.Context) {
	own, err := h.requests.ListByRequester(c.Request.Context(), currentEmail(c))
	if err != nil {
		mapError(c, err)
		return
	}

	result := make([]gin.H, 0, len(own))
	for _, request := range own {
		result = append(result, gin.H{
			"id":          request.ID,
			"title":       request.Title,
			"budget":      request.Budget,
			"description": request.Description,
			"created_at":  formatDate(request.CreatedAt),
		})
	}

	c.JSON(http.StatusOK, result)
}

type postRequestDTO struct {
	Title       string `json:"title" binding:"required"`
	Budget      *int64 `json:"budget" binding:"required"`
	Description string `json:"description"`
}

func (h *RequestsHandler) Post(c *gin.Context) {
	var req postRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	id, err := h.requests.Post(c.Request.Context(), currentEmail(c), req.Title, *req.Budget, req.Description)
	if err != nil {
		mapError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (h *RequestsHandler) Edit(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequest(c)
		return
	}

	var req postRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	err = h.requests.Edit(c.Request.Context(), id, currentEmail(c), req.Title, *req.Budget, req.Description)
	if err != nil {
		mapError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "request updated"})
}

func (h *RequestsHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequest(c)
		return
	}

	err = h.requests.Delete(c.Request.Context(), id, currentEmail(c))
	if err != nil {
		mapError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "request deleted"})
}
