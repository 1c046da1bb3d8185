package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/uav-siberia/leads-api/internal/domain/enum"
	"gorm.io/gorm"
)

// CustomerRequest represents a sales lead.
type CustomerRequest struct {
	ID          uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	FullName    string             `gorm:"size:255;not null" json:"fullName"`
	PhoneNumber string             `gorm:"size:50" json:"phoneNumber"`
	Email       string             `gorm:"size:255" json:"email"`
	Products    []string           `gorm:"serializer:json" json:"products"`
	Timestamp   string             `gorm:"size:100" json:"timestamp"`
	Status      enum.RequestStatus `gorm:"size:50;default:'Новая'" json:"status"`
	Comments    string             `gorm:"type:text" json:"comments"`
	LastUpdated *time.Time         `json:"lastUpdated,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
	DeletedAt   gorm.DeletedAt     `gorm:"index" json:"-"`

	QuestionnaireAnswers *QuestionnaireAnswers `gorm:"serializer:json" json:"questionnaireAnswers,omitempty"`

	// Relationships
	Messages []Message `gorm:"foreignKey:RequestID;constraint:OnDelete:CASCADE" json:"messages,omitempty"`
}

// BeforeCreate generates a UUID before creating a new request
func (r *CustomerRequest) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the CustomerRequest model
func (CustomerRequest) TableName() string {
	return "customer_requests"
}

// Touch records a mutation time. Every edit path goes through this so
// the expiry sweep sees when the lead was last worked on.
func (r *CustomerRequest) Touch(now time.Time) {
	r.LastUpdated = &now
}

// ReferenceTime returns the instant the expiry rule measures against:
// LastUpdated when set, otherwise the parsed fill time, otherwise the
// row creation time.
func (r *CustomerRequest) ReferenceTime() time.Time {
	if r.LastUpdated != nil {
		return *r.LastUpdated
	}
	if ts, err := time.ParseInLocation("2006-01-02 15:04:05", r.Timestamp, time.Local); err == nil {
		return ts
	}
	if ts, err := time.Parse(time.RFC3339, r.Timestamp); err == nil {
		return ts
	}
	return r.CreatedAt
}

// QuestionnaireAnswers is the fixed-shape survey block optionally
// attached to a request. It is embedded as a JSON column, never
// normalized; the CSV codec fills it when a line carries the extended
// field block.
type QuestionnaireAnswers struct {
	EquipmentType         string   `json:"equipmentType"`
	MainTasks             []string `json:"mainTasks"`
	FlightDuration        string   `json:"flightDuration"`
	ControlRange          string   `json:"controlRange"`
	Payload               string   `json:"payload"`
	VTOL                  bool     `json:"vtol"`
	DataTypes             []string `json:"dataTypes"`
	Stabilization         bool     `json:"stabilization"`
	RealtimeVideo         bool     `json:"realtimeVideo"`
	RealtimeHeavyData     bool     `json:"realtimeHeavyData"`
	Automation            []string `json:"automation"`
	QuickPreparation      bool     `json:"quickPreparation"`
	TemperatureMode       string   `json:"temperatureMode"`
	WindSpeed             string   `json:"windSpeed"`
	NightFlights          bool     `json:"nightFlights"`
	NoInfrastructure      bool     `json:"noInfrastructure"`
	Components            []string `json:"components"`
	RemoteControlFeatures []string `json:"remoteControlFeatures"`
	Equipment             []string `json:"equipment"`
	CountryOfOrigin       string   `json:"countryOfOrigin"`
}
