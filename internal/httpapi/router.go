// Package httpapi is the HTTP presentation layer: gin router, JSON handlers,
// and the bearer-token middleware. Handlers bind a payload, call one service
// method with the caller's email, and map sentinel errors to status codes.
package httpapi

import (
	"github.com/gin-gonic/gin"
)

// NewRouter assembles the /api/v1 surface.
func NewRouter(secretKey []byte, authH *AuthHandler, listingsH *ListingsHandler,
	requestsH *RequestsHandler, messagesH *MessagesHandler, socialH *SocialHandler) *gin.Engine {

	router := gin.New()
	router.Use(gin.Recovery())

	authRequired := RequireAuth(secretKey)

	v1 := router.Group("/api/v1")
	authH.RegisterRoutes(v1, authRequired)
	listingsH.RegisterRoutes(v1, authRequired)
	requestsH.RegisterRoutes(v1, authRequired)
	messagesH.RegisterRoutes(v1, authRequired)
	socialH.RegisterRoutes(v1, authRequired)

	return router
}
