package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/uav-siberia/leads-api/internal/application/service"
	"github.com/uav-siberia/leads-api/internal/presentation/http/dto/request"
	"github.com/uav-siberia/leads-api/internal/presentation/http/dto/response"
)

// AssistantHandler handles AI-consultant HTTP requests
type AssistantHandler struct {
	assistantService *service.AssistantService
}

// NewAssistantHandler creates a new assistant handler
func NewAssistantHandler(assistantService *service.AssistantService) *AssistantHandler {
	return &AssistantHandler{assistantService: assistantService}
}

// Classify maps a customer's free-text need description to catalog tags
// and a display reply.
func (h *AssistantHandler) Classify(c *gin.Context) {
	var req request.ClassifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.assistantService.Classify(c.Request.Context(), req.Input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Classification completed", result)
}
