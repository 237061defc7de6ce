package handlers

import (
	"errors"
	"log"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"telemedicine-platform-server/internal/guard"
	"telemedicine-platform-server/internal/middleware"
	"telemedicine-platform-server/internal/models"
	"telemedicine-platform-server/internal/store"
	"telemedicine-platform-server/internal/utils"
)

// MessageHandler handles messaging related requests.
type MessageHandler struct {
	Store *store.Store
}

// NewMessageHandler creates a new MessageHandler.
func NewMessageHandler(s *store.Store) *MessageHandler {
	return &MessageHandler{Store: s}
}

// SendMessageRequest represents the request body for sending a message.
// The sender is always the authenticated user.
type SendMessageRequest struct {
	ReceiverID string `json:"receiverId" binding:"required,uuid"`
	Content    string `json:"content" binding:"required"`
}

// SendMessage handles sending a new message.
func (h *MessageHandler) SendMessage(c *gin.Context) {
	var req SendMessageRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	identity, exists := middleware.CurrentIdentity(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	if identity.UserID == req.ReceiverID {
		utils.BadRequest(c, "Cannot send a message to yourself")
		return
	}

	// Verify receiver exists
	if _, err := h.Store.GetUser(req.ReceiverID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, "Receiver not found")
		} else {
			log.Printf("send message: verifying receiver: %v", err)
			utils.InternalServerError(c, "Failed to send message")
		}
		return
	}

	message := models.Message{
		SenderID:   identity.UserID,
		ReceiverID: req.ReceiverID,
		Content:    req.Content,
	}

	if err := h.Store.CreateMessage(&message); err != nil {
		log.Printf("send message: %v", err)
		utils.InternalServerError(c, "Failed to send message")
		return
	}

	utils.Created(c, "Message sent successfully", message)
}

// GetMessages handles fetching every message the user sent or received.
func (h *MessageHandler) GetMessages(c *gin.Context) {
	identity, exists := middleware.CurrentIdentity(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	messages, err := h.Store.MessagesByUser(identity.UserID)
	if err != nil {
		log.Printf("messages listing: %v", err)
		utils.InternalServerError(c, "Failed to fetch messages")
		return
	}

	utils.Success(c, "Messages fetched successfully", messages)
}

// GetConversation handles fetching the full exchange between the
// caller and another user, ordered by send time.
func (h *MessageHandler) GetConversation(c *gin.Context) {
	identity, exists := middleware.CurrentIdentity(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	messages, err := h.Store.Conversation(identity.UserID, c.Param("userId"))
	if err != nil {
		log.Printf("conversation: %v", err)
		utils.InternalServerError(c, "Failed to fetch conversation")
		return
	}

	utils.Success(c, "Conversation fetched successfully", messages)
}

// MarkMessageAsRead handles flipping a message's read flag. Only the
// receiver may do this.
func (h *MessageHandler) MarkMessageAsRead(c *gin.Context) {
	identity, exists := middleware.CurrentIdentity(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	message, err := h.Store.GetMessage(c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, "Message not found")
		} else {
			log.Printf("mark read: fetching: %v", err)
			utils.InternalServerError(c, "Failed to mark message as read")
		}
		return
	}

	if err := guard.CanMarkMessageRead(identity, message); err != nil {
		utils.Forbidden(c, err.Error())
		return
	}

	if err := h.Store.MarkMessageRead(message.ID); err != nil {
		log.Printf("mark read: %v", err)
		utils.InternalServerError(c, "Failed to mark message as read")
		return
	}

	utils.NoContent(c)
}
