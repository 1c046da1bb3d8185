package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Message represents a single communication entry tied to a request.
// Messages are append-only and immutable once created.
type Message struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	RequestID     uuid.UUID `gorm:"type:uuid;not null;index" json:"requestId"`
	Content       string    `gorm:"type:text;not null" json:"content"`
	IsFromManager bool      `gorm:"default:false" json:"isFromManager"`
	CreatedAt     time.Time `json:"timestamp"`

	// Relationships
	Request CustomerRequest `gorm:"foreignKey:RequestID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new message
func (m *Message) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Message model
func (Message) TableName() string {
	return "messages"
}
