package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/uav-siberia/leads-api/internal/application/service"
	"github.com/uav-siberia/leads-api/internal/presentation/http/dto/request"
	"github.com/uav-siberia/leads-api/internal/presentation/http/dto/response"
)

// ContactHandler handles public contact-form submissions
type ContactHandler struct {
	contactService *service.ContactService
}

// NewContactHandler creates a new contact handler
func NewContactHandler(contactService *service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// Submit stores a contact-form submission as a new lead
func (h *ContactHandler) Submit(c *gin.Context) {
	var req request.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	lead, err := h.contactService.SubmitContact(c.Request.Context(), &service.ContactInput{
		Name:     req.Name,
		Phone:    req.Phone,
		Email:    req.Email,
		Message:  req.Message,
		Products: req.Products,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Request submitted successfully", gin.H{
		"id": lead.ID,
	})
}
