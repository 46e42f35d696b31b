package httpapi

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/udalba/campusmarket/internal/listings"
)

type ListingsHandler struct {
	listings *listings.Service
}

func NewListingsHandler(listings *listings.Service) *ListingsHandler {
	return &ListingsHandler{listings: listings}
}

func (h *ListingsHandler) RegisterRoutes(rg *gin.RouterGroup, authRequired gin.HandlerFunc) {
	rg.GET("/catalog", h.Catalog)
	rg.GET("/listings/:id", h.Get)

	rg.GET("/listings", authRequired, h.ListOwn)
	rg.POST("/listings", authRequired, h.Publish)
	rg.PUT("/listings/:id", authRequired, h.Edit)
	rg.PUT("/listings/:id/state", authRequired, h.SetState)
	rg.DELETE("/listings/:id", authRequired, h.Delete)
}

// Catalog is the public storefront: available listings only, newest first.
func (h *ListingsHandler) Catalog(c *gin.Context) {
	items, err := h.listings.ListAvailable(c.Request.Context())
	if err != nil {
		mapError(c, err)
		return
	}

	result := make([]gin.H, 0, len(items))
	for _, item := range items {
		entry := gin.H{
			"id":            item.ID,
			"name":          item.Name,
			"description":   item.Description,
			"price":         item.Price,
			"owner_email":   item.OwnerEmail,
			"owner_name":    item.OwnerName,
			"owner_contact": item.OwnerContact,
			"created_at":    formatDate(item.CreatedAt),
		}
		if item.PhotoURL != "" {
			entry["photo_url"] = item.PhotoURL
		} else if item.Photo != nil {
			entry["photo"] = item.Photo
		}
		result = append(result, entry)
	}

	c.JSON(http.StatusOK, result)
}

func (h *ListingsHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequest(c)
		return
	}

	listing, err := h.listings.Get(c.Request.Context(), id)
	if err != nil {
		mapError(c, err)
		return
	}

	c.JSON(http.StatusOK, renderListing(listing))
}

func (h *ListingsHandler) ListOwn(c *gin.Context) {
	own, err := h.listings.ListByOwner(c.Request.Context(), currentEmail(c))
	if err != nil {
		mapError(c, err)
		return
	}

	result := make([]gin.H, 0, len(own))
	for _, listing := range own {
		result = append(result, renderListing(listing))
	}

	c.JSON(http.StatusOK, result)
}

type publishListingDTO struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Price       *int64 `json:"price" binding:"required"`
	Photo       []byte `json:"photo"`
}

func (h *ListingsHandler) Publish(c *gin.Context) {
	var req publishListingDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	id, err := h.listings.Publish(c.Request.Context(), currentEmail(c), req.Name,
		req.Description, *req.Price, req.Photo)
	if err != nil {
		mapError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

type editListingDTO struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Price       *int64 `json:"price" binding:"required"`
}

func (h *ListingsHandler) Edit(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequest(c)
		return
	}

	var req editListingDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	err = h.listings.Edit(c.Request.Context(), id, currentEmail(c), req.Name, req.Description, *req.Price)
	if err != nil {
		mapError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "listing updated"})
}

type setStateDTO struct {
	State string `json:"state" binding:"required"`
}

func (h *ListingsHandler) SetState(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequest(c)
		return
	}

	var req setStateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	err = h.listings.SetState(c.Request.Context(), id, currentEmail(c), listings.State(req.State))
	if err != nil {
		mapError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "state updated"})
}

func (h *ListingsHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequest(c)
		return
	}

	err = h.listings.Delete(c.Request.Context(), id, currentEmail(c))
	if err != nil {
		mapError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "listing deleted"})
}

func renderListing(listing *listings.Listing) gin.H {
	entry := gin.H{
		"id":          listing.ID,
		"name":        listing.Name,
		"description": listing.Description,
		"price":       listing.Price,
		"state":       listing.State,
		"owner_email": listing.OwnerEmail,
		"created_at":  formatDate(listing.CreatedAt),
	}
	if listing.Photo != nil {
		entry["photo"] = listing.Photo
	}
	return entry
}
