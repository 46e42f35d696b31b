package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/udalba/campusmarket/internal/accounts"
	"github.com/udalba/campusmarket/internal/follows"
	"github.com/udalba/campusmarket/internal/reviews"
)

// SocialHandler covers the follow graph and the reputation ledger.
type SocialHandler struct {
	follows *follows.Service
	reviews *reviews.Service
}

func NewSocialHandler(follows *follows.Service, reviews *reviews.Service) *SocialHandler {
	return &SocialHandler{follows: follows, reviews: reviews}
}

func (h *SocialHandler) RegisterRoutes(rg *gin.RouterGroup, authRequired gin.HandlerFunc) {
	rg.POST("/follows/:email", authRequired, h.Follow)
	rg.DELETE("/follows/:email", authRequired, h.Unfollow)
	rg.GET("/users/:email/followers", h.Followers)
	rg.GET("/users/:email/following", h.Following)

	rg.POST("/reviews", authRequired, h.SubmitReview)
	rg.GET("/users/:email/reputation", h.Reputation)
	rg.GET("/users/:email/reviews", h.Reviews)
}

func (h *SocialHandler) Follow(c *gin.Context) {
	err := h.follows.Follow(c.Request.Context(), currentEmail(c), c.Param("email"))
	if err != nil {
		mapError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "following"})
}

func (h *SocialHandler) Unfollow(c *gin.Context) {
	err := h.follows.Unfollow(c.Request.Context(), currentEmail(c), c.Param("email"))
	if err != nil {
		mapError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "unfollowed"})
}

func (h *SocialHandler) Followers(c *gin.Context) {
	profiles, err := h.follows.ListFollowers(c.Request.Context(), c.Param("email"))
	if err != nil {
		mapError(c, err)
		return
	}

	c.JSON(http.StatusOK, renderProfiles(profiles))
}

func (h *SocialHandler) Following(c *gin.Context) {
	profiles, err := h.follows.ListFollowing(c.Request.Context(), c.Param("email"))
	if err != nil {
		mapError(c, err)
		return
	}

	c.JSON(http.StatusOK, renderProfiles(profiles))
}

type submitReviewDTO struct {
	RatedEmail string `json:"rated_email" binding:"required"`
	Stars      int    `json:"stars" binding:"required"`
	Comment    string `json:"comment"`
}

func (h *SocialHandler) SubmitReview(c *gin.Context) {
	var req submitReviewDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	review, err := h.reviews.Submit(c.Request.Context(), currentEmail(c), req.RatedEmail, req.Stars, req.Comment)
	if err != nil {
		mapError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": review.ID})
}

func (h *SocialHandler) Reputation(c *gin.Context) {
	rep, err := h.reviews.Reputation(c.Request.Context(), c.Param("email"))
	if err != nil {
		mapError(c, err)
		return
	}

	c.JSON(http.StatusOK, rep)
}

func (h *SocialHandler) Reviews(c *gin.Context) {
	list, err := h.reviews.ListFor(c.Request.Context(), c.Param("email"))
	if err != nil {
		mapError(c, err)
		return
	}

	result := make([]gin.H, 0, len(list))
	for _, review := range list {
		result = append(result, gin.H{
			"rater_email": review.RaterEmail,
			"stars":       review.Stars,
			"comment":     review.Comment,
			"created_at":  formatDate(review.CreatedAt),
		})
	}

	c.JSON(http.StatusOK, result)
}

func renderProfiles(profiles []*accounts.Profile) []gin.H {
	result := make([]gin.H, 0, len(profiles))
	for _, profile := range profiles {
		result = append(result, gin.H{
			"email":   profile.Email,
			"name":    profile.Name,
			"contact": profile.Contact,
			"program": profile.Program,
		})
	}
	return result
}
