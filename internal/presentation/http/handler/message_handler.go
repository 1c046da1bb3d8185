package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/uav-siberia/leads-api/internal/application/service"
	"github.com/uav-siberia/leads-api/internal/presentation/http/dto/request"
	"github.com/uav-siberia/leads-api/internal/presentation/http/dto/response"
)

// MessageHandler handles conversation HTTP requests
type MessageHandler struct {
	messageService *service.MessageService
}

// NewMessageHandler creates a new message handler
func NewMessageHandler(messageService *service.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

// List handles listing the conversation of a request
func (h *MessageHandler) List(c *gin.Context) {
	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid request ID")
		return
	}

	messages, err := h.messageService.ListMessages(c.Request.Context(), requestID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Messages retrieved successfully", messages)
}

// Create handles appending a message to a request's conversation
func (h *MessageHandler) Create(c *gin.Context) {
	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid request ID")
		return
	}

	var req request.AddMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	message, err := h.messageService.AddMessage(c.Request.Context(), &service.AddMessageInput{
		RequestID:     requestID,
		Content:       req.Content,
		IsFromManager: req.IsFromManager,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Message added successfully", message)
}
