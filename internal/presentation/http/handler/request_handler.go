package handler

import (
	"io"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/uav-siberia/leads-api/internal/application/service"
	"github.com/uav-siberia/leads-api/internal/domain/enum"
	"github.com/uav-siberia/leads-api/internal/presentation/http/dto/request"
	"github.com/uav-siberia/leads-api/internal/presentation/http/dto/response"
	"github.com/uav-siberia/leads-api/pkg/pagination"
)

// RequestHandler handles customer-request HTTP requests
type RequestHandler struct {
	requestService *service.RequestService
}

// NewRequestHandler creates a new request handler
func NewRequestHandler(requestService *service.RequestService) *RequestHandler {
	return &RequestHandler{requestService: requestService}
}

// List handles listing requests with optional search and status filter
func (h *RequestHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))
	search := c.Query("search")
	status := enum.RequestStatus(c.Query("status"))

	params := &pagination.PaginationParams{
		Page:    page,
		PerPage: perPage,
	}

	result, err := h.requestService.ListRequests(c.Request.Context(), params, search, status)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Requests retrieved successfully", result)
}

// Create handles creating a single request
func (h *RequestHandler) Create(c *gin.Context) {
	var req request.CreateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	created, err := h.requestService.CreateRequest(c.Request.Context(), &service.CreateRequestInput{
		FullName:    req.FullName,
		PhoneNumber: req.PhoneNumber,
		Email:       req.Email,
		Products:    req.Products,
		Comments:    req.Comments,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Request created successfully", created)
}

// Get handles getting a single request
func (h *RequestHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid request ID")
		return
	}

	req, err := h.requestService.GetRequest(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Request retrieved successfully", req)
}

// Update handles updating a request
func (h *RequestHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid request ID")
		return
	}

	var req request.UpdateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.UpdateRequestInput{
		ID:          id,
		FullName:    req.FullName,
		PhoneNumber: req.PhoneNumber,
		Email:       req.Email,
		Products:    req.Products,
		Comments:    req.Comments,
	}
	if req.Status != nil {
		status := enum.RequestStatus(*req.Status)
		input.Status = &status
	}

	updated, err := h.requestService.UpdateRequest(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Request updated successfully", updated)
}

// Delete handles deleting a request
func (h *RequestHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid request ID")
		return
	}

	if err := h.requestService.DeleteRequest(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// Import handles CSV import. The request body is the raw CSV text;
// malformed lines are dropped and the stored subset is returned.
func (h *RequestHandler) Import(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		response.BadRequest(c, "Failed to read request body")
		return
	}
	if len(body) == 0 {
		response.BadRequest(c, "CSV body is required")
		return
	}

	imported, err := h.requestService.ImportCSV(c.Request.Context(), string(body))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "CSV imported successfully", gin.H{
		"imported": len(imported),
		"requests": imported,
	})
}

// Export handles CSV export of the whole working set
func (h *RequestHandler) Export(c *gin.Context) {
	csvText, err := h.requestService.ExportCSV(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="requests.csv"`)
	c.Data(200, "text/csv; charset=utf-8", []byte(csvText))
}
