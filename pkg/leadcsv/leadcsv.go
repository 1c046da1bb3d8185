// Package leadcsv implements the CSV interchange format for customer
// requests: a header line followed by one record per line, with 7 core
// fields and an optional 20-field questionnaire block.
//
// The serializer emits only the 7 core fields, so questionnaire data
// does not survive a serialize-parse round trip.
package leadcsv

import (
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/uav-siberia/leads-api/internal/domain/entity"
	"github.com/uav-siberia/leads-api/internal/domain/enum"
)

// Header is the fixed header line of the 7-field core format.
const Header = "ФИО,Номер,Почта,Список товаров,Время заполнения заявки,Статус,Комментарии"

// affirmative is the token that maps to true in boolean-coded fields.
const affirmative = "Да"

// coreFieldCount is the number of positional core fields; anything
// beyond it is the questionnaire block.
const coreFieldCount = 7

// Parse converts a CSV blob into customer requests, one per non-blank
// data line, preserving line order. The first line is a header and is
// discarded. Lines that fail field derivation are logged and dropped
// from the result: the parser substitutes an empty-name placeholder
// which the final non-empty-name filter removes.
func Parse(csv string) []entity.CustomerRequest {
	lines := strings.Split(csv, "\n")
	if len(lines) <= 1 {
		return []entity.CustomerRequest{}
	}

	requests := make([]entity.CustomerRequest, 0, len(lines)-1)
	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		req := parseLine(line)
		if req.FullName == "" {
			continue
		}
		requests = append(requests, req)
	}
	return requests
}

// parseLine derives one record from one data line. A derivation fault
// yields the error placeholder instead of aborting the whole import.
func parseLine(line string) (req entity.CustomerRequest) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("leadcsv: error parsing line %q: %v", line, r)
			now := time.Now()
			req = entity.CustomerRequest{
				ID:          uuid.New(),
				FullName:    "",
				Timestamp:   now.Format(time.RFC3339),
				Status:      enum.RequestStatusNew,
				Comments:    "Error occurred while parsing this record",
				LastUpdated: &now,
			}
		}
	}()

	parts := SplitFields(line)
	now := time.Now()

	req = entity.CustomerRequest{
		ID:          uuid.New(),
		FullName:    field(parts, 0),
		PhoneNumber: field(parts, 1),
		Email:       field(parts, 2),
		Products:    parseProducts(field(parts, 3)),
		Timestamp:   field(parts, 4),
		Status:      enum.ParseRequestStatus(field(parts, 5)),
		Comments:    field(parts, 6),
		LastUpdated: &now,
	}
	if req.Timestamp == "" {
		req.Timestamp = now.Format(time.RFC3339)
	}
	if len(parts) > coreFieldCount {
		req.QuestionnaireAnswers = parseQuestionnaire(parts)
	}
	return req
}

// SplitFields splits one line into fields with quote-aware comma
// handling: a double quote toggles the in-quotes flag (quotes are never
// emitted and there is no escaped-quote form), and a comma splits only
// while outside quotes. The trailing accumulator always becomes the
// final field.
func SplitFields(line string) []string {
	var parts []string
	var current strings.Builder
	inQuotes := false

	for _, char := range line {
		switch {
		case char == '"':
			inQuotes = !inQuotes
		case char == ',' && !inQuotes:
			parts = append(parts, current.String())
			current.Reset()
		default:
			current.WriteRune(char)
		}
	}
	parts = append(parts, current.String())
	return parts
}

// parseProducts derives the product-name list from the raw field:
// embedded commas mean a multi-product list, otherwise the whole
// trimmed field is a single entry. Empty results are dropped.
func parseProducts(raw string) []string {
	products := []string{}
	if strings.Contains(raw, ",") {
		for _, p := range strings.Split(raw, ",") {
			if p = strings.TrimSpace(p); p != "" {
				products = append(products, p)
			}
		}
		return products
	}
	if p := strings.TrimSpace(raw); p != "" {
		products = append(products, p)
	}
	return products
}

// parseQuestionnaire maps the extended field block. Positions are fixed;
// missing trailing fields degrade to zero values.
func parseQuestionnaire(parts []string) *entity.QuestionnaireAnswers {
	return &entity.QuestionnaireAnswers{
		EquipmentType:         field(parts, 7),
		MainTasks:             semicolonList(parts, 8),
		FlightDuration:        field(parts, 9),
		ControlRange:          field(parts, 10),
		Payload:               field(parts, 11),
		VTOL:                  field(parts, 12) == affirmative,
		DataTypes:             semicolonList(parts, 13),
		Stabilization:         field(parts, 14) == affirmative,
		RealtimeVideo:         field(parts, 15) == affirmative,
		RealtimeHeavyData:     field(parts, 16) == affirmative,
		Automation:            semicolonList(parts, 17),
		QuickPreparation:      field(parts, 18) == affirmative,
		TemperatureMode:       field(parts, 19),
		WindSpeed:             field(parts, 20),
		NightFlights:          field(parts, 21) == affirmative,
		NoInfrastructure:      field(parts, 22) == affirmative,
		Components:            semicolonList(parts, 23),
		RemoteControlFeatures: semicolonList(parts, 24),
		Equipment:             semicolonList(parts, 25),
		CountryOfOrigin:       field(parts, 26),
	}
}

// field returns the positional field or "" when the line is short.
func field(parts []string, i int) string {
	if i >= len(parts) {
		return ""
	}
	return parts[i]
}

// semicolonList splits a sub-list field on semicolons. An absent field
// yields an empty slice, never nil.
func semicolonList(parts []string, i int) []string {
	if i >= len(parts) {
		return []string{}
	}
	return strings.Split(parts[i], ";")
}

// Serialize emits the header plus one 7-field line per request. The
// product list is always quoted and comma-joined. Questionnaire data is
// never re-emitted.
func Serialize(requests []entity.CustomerRequest) string {
	lines := make([]string, 0, len(requests)+1)
	lines = append(lines, Header)

	for _, req := range requests {
		productList := `"` + strings.Join(req.Products, ", ") + `"`
		lines = append(lines, strings.Join([]string{
			req.FullName,
			req.PhoneNumber,
			req.Email,
			productList,
			req.Timestamp,
			req.Status.String(),
			req.Comments,
		}, ","))
	}
	return strings.Join(lines, "\n")
}
