package handler

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/uav-siberia/leads-api/internal/application/service"
	"github.com/uav-siberia/leads-api/internal/presentation/http/dto/request"
	"github.com/uav-siberia/leads-api/internal/presentation/http/dto/response"
)

// ProposalHandler handles commercial-proposal HTTP requests
type ProposalHandler struct {
	proposalService *service.ProposalService
}

// NewProposalHandler creates a new proposal handler
func NewProposalHandler(proposalService *service.ProposalService) *ProposalHandler {
	return &ProposalHandler{proposalService: proposalService}
}

// Preview builds the proposal without sending or changing the request.
func (h *ProposalHandler) Preview(c *gin.Context) {
	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid request ID")
		return
	}

	// The body is optional; an absent one means no comment.
	var req request.ProposalRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		response.BadRequest(c, "Invalid request body")
		return
	}

	proposal, err := h.proposalService.BuildProposal(c.Request.Context(), requestID, req.Products, req.Comment)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Proposal built successfully", proposal)
}

// Send builds and delivers the proposal, then marks the request.
func (h *ProposalHandler) Send(c *gin.Context) {
	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid request ID")
		return
	}

	var req request.ProposalRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		response.BadRequest(c, "Invalid request body")
		return
	}

	proposal, err := h.proposalService.SendProposal(c.Request.Context(), requestID, req.Products, req.Comment)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Proposal sent successfully", proposal)
}
