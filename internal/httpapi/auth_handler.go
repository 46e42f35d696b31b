package httpapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/udalba/campusmarket/internal/accounts"
	"github.com/udalba/campusmarket/internal/auth"
)

// AuthHandler covers registration, login, security-question recovery, and
// the caller's own profile.
type AuthHandler struct {
	accounts      *accounts.Service
	secretKey     []byte
	tokenValidity time.Duration
	emailDomain   string
}

func NewAuthHandler(accounts *accounts.Service, secretKey []byte, tokenValidity time.Duration, emailDomain string) *AuthHandler {
	return &AuthHandler{
		accounts:      accounts,
		secretKey:     secretKey,
		tokenValidity: tokenValidity,
		emailDomain:   emailDomain,
	}
}

func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup, authRequired gin.HandlerFunc) {
	rg.POST("/auth/register", h.Register)
	rg.POST("/auth/login", h.Login)
	rg.GET("/auth/recovery/:email", h.RecoveryQuestion)
	rg.POST("/auth/recovery", h.ResetPassword)

	rg.GET("/profile", authRequired, h.GetProfile)
	rg.PUT("/profile", authRequired, h.UpdateProfile)
	rg.GET("/users/:email", h.GetPublicProfile)
}

type registerDTO struct {
	Email            string  `json:"email" binding:"required"`
	Name             string  `json:"name" binding:"required"`
	Password         string  `json:"password" binding:"required"`
	Contact          string  `json:"contact"`
	Program          string  `json:"program"`
	SecurityQuestion *string `json:"security_question"`
	SecurityAnswer   *string `json:"security_answer"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req registerDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	// only institutional addresses may register
	if !strings.HasSuffix(req.Email, h.emailDomain) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email must belong to " + h.emailDomain})
		return
	}

	account, err := h.accounts.Register(c.Request.Context(), req.Email, req.Name, req.Password,
		req.Contact, req.Program, req.SecurityQuestion, req.SecurityAnswer)
	if err != nil {
		mapError(c, err)
		return
	}

	token, err := auth.GenerateToken(account.Email, h.secretKey, h.tokenValidity)
	if err != nil {
		mapError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"token": token})
}

type loginDTO struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	account, err := h.accounts.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		mapError(c, err)
		return
	}

	token, err := auth.GenerateToken(account.Email, h.secretKey, h.tokenValidity)
	if err != nil {
		mapError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

func (h *AuthHandler) RecoveryQuestion(c *gin.Context) {
	question, err := h.accounts.BeginRecovery(c.Request.Context(), c.Param("email"))
	if err != nil {
		mapError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"question": question})
}

type resetPasswordDTO struct {
	Email              string `json:"email" binding:"required"`
	Answer             string `json:"answer" binding:"required"`
	NewPassword        string `json:"new_password" binding:"required"`
	NewPasswordConfirm string `json:"new_password_confirm" binding:"required"`
}

func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req resetPasswordDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	err := h.accounts.CompleteRecovery(c.Request.Context(), req.Email, req.Answer,
		req.NewPassword, req.NewPasswordConfirm)
	if err != nil {
		mapError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "password updated"})
}

func (h *AuthHandler) GetProfile(c *gin.Context) {
	account, err := h.accounts.Get(c.Request.Context(), currentEmail(c))
	if err != nil {
		mapError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"email":      account.Email,
		"name":       account.Name,
		"contact":    account.Contact,
		"program":    account.Program,
		"created_at": formatDate(account.CreatedAt),
	})
}

type updateProfileDTO struct {
	Name    string `json:"name" binding:"required"`
	Contact string `json:"contact"`
	Program string `json:"program"`
}

func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	var req updateProfileDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	err := h.accounts.UpdateProfile(c.Request.Context(), currentEmail(c), req.Name, req.Contact, req.Program)
	if err != nil {
		mapError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "profile updated"})
}

func (h *AuthHandler) GetPublicProfile(c *gin.Context) {
	account, err := h.accounts.Get(c.Request.Context(), c.Param("email"))
	if err != nil {
		mapError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"email":   account.Email,
		"name":    account.Name,
		"contact": account.Contact,
		"program": account.Program,
	})
}
