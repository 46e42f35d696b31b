package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/udalba/campusmarket/internal/messages"
)

type MessagesHandler struct {
	messages *messages.Service
}

func NewMessagesHandler(messages *messages.Service) *MessagesHandler {
	return &MessagesHandler{messages: messages}
}

func (h *MessagesHandler) RegisterRoutes(rg *gin.RouterGroup, authRequired gin.HandlerFunc) {
	rg.GET("/conversations", authRequired, h.Conversations)
	rg.GET("/threads/:email", authRequired, h.Thread)
	rg.POST("/messages", authRequired, h.Send)
	rg.GET("/messages/unread-count", authRequired, h.UnreadCount)
}

func (h *MessagesHandler) Conversations(c *gin.Context) {
	counterparts, err := h.messages.ListConversations(c.Request.Context(), currentEmail(c))
	if err != nil {
		mapError(c, err)
		return
	}
	if counterparts == nil {
		counterparts = []string{}
	}

	c.JSON(http.StatusOK, counterparts)
}

// Thread returns the full history with the counterpart and marks their
// unread messages read. Opening the thread is the read trigger.
func (h *MessagesHandler) Thread(c *gin.Context) {
	email := currentEmail(c)
	counterpart := c.Param("email")

	if _, err := h.messages.OpenThread(c.Request.Context(), email, counterpart); err != nil {
		mapError(c, err)
		return
	}

	thread, err := h.messages.GetThread(c.Request.Context(), email, counterpart)
	if err != nil {
		mapError(c, err)
		return
	}

	result := make([]gin.H, 0, len(thread))
	for _, m := range thread {
		result = append(result, gin.H{
			"id":        m.ID,
			"sender":    m.SenderEmail,
			"recipient": m.RecipientEmail,
			"body":      m.Body,
			"read":      m.Read,
			"sent_at":   formatDateTime(m.SentAt),
		})
	}

	c.JSON(http.StatusOK, result)
}

type sendMessageDTO struct {
	Recipient string `json:"recipient" binding:"required"`
	Body      string `json:"body"`
}

func (h *MessagesHandler) Send(c *gin.Context) {
	var req sendMessageDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	id, err := h.messages.Send(c.Request.Context(), currentEmail(c), req.Recipient, req.Body)
	if err != nil {
		mapError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (h *MessagesHandler) UnreadCount(c *gin.Context) {
	count, err := h.messages.CountUnread(c.Request.Context(), currentEmail(c))
	if err != nil {
		mapError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"unread": count})
}
