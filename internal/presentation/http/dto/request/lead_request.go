package request

// CreateLeadRequest represents a manually entered lead
type CreateLeadRequest struct {
	FullName    string   `json:"fullName" binding:"required"`
	PhoneNumber string   `json:"phoneNumber"`
	Email       string   `json:"email" binding:"omitempty,email"`
	Products    []string `json:"products"`
	Comments    string   `json:"comments"`
}

// UpdateLeadRequest represents a partial lead update
type UpdateLeadRequest struct {
	FullName    *string  `json:"fullName"`
	PhoneNumber *string  `json:"phoneNumber"`
	Email       *string  `json:"email" binding:"omitempty,email"`
	Products    []string `json:"products"`
	Status      *string  `json:"status"`
	Comments    *string  `json:"comments"`
}

// AddMessageRequest represents a new conversation entry
type AddMessageRequest struct {
	Content       string `json:"content" binding:"required"`
	IsFromManager bool   `json:"isFromManager"`
}

// ProposalRequest carries the manager's optional product selection and
// comment for a commercial proposal. An empty product list means the
// lead's stored list.
type ProposalRequest struct {
	Products []string `json:"products"`
	Comment  string   `json:"comment"`
}

// ClassifyRequest represents an assistant classification call
type ClassifyRequest struct {
	Input string `json:"input" binding:"required"`
}

// ContactRequest represents a public contact-form submission
type ContactRequest struct {
	Name     string   `json:"name" binding:"required"`
	Phone    string   `json:"phone"`
	Email    string   `json:"email" binding:"omitempty,email"`
	Message  string   `json:"message"`
	Products []string `json:"products"`
}
