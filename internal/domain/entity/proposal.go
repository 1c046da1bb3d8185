package entity

import (
	"time"

	"github.com/google/uuid"
)

// CommercialProposal is a derived price quotation for a request.
// It is constructed on demand from the catalog and never persisted.
type CommercialProposal struct {
	RequestID    uuid.UUID `json:"requestId"`
	CustomerName string    `json:"customerName"`
	Products     []Product `json:"products"`
	TotalPrice   int64     `json:"totalPrice"`
	Date         time.Time `json:"date"`
	Comment      string    `json:"comment"`
}
