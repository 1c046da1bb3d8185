package ai

import (
	"regexp"
	"strings"
)

// FallbackMessage is returned when the model reply carries no
// recognizable answer marker.
const FallbackMessage = "Не удалось обработать ваш запрос."

var (
	searchParamPattern = regexp.MustCompile(`searchParamIDs:\s*\[(.*?)\]`)
	messagePattern     = regexp.MustCompile(`(?is)Ответ пользователю:(.*)$`)
)

// Response is the parsed result of one classification reply: the tag
// identifiers the model selected and the text shown to the customer.
type Response struct {
	SearchParamIDs []string `json:"searchParamIDs"`
	Message        string   `json:"message"`
}

// ParseResponse extracts tags and the display message from raw model
// output. Extraction is purely syntactic: tags are not validated
// against the taxonomy, and a missing tag marker is an empty list, not
// an error. A missing answer marker substitutes FallbackMessage.
func ParseResponse(raw string) Response {
	resp := Response{
		SearchParamIDs: []string{},
		Message:        FallbackMessage,
	}

	if m := searchParamPattern.FindStringSubmatch(raw); m != nil {
		for _, tag := range strings.Split(m[1], ",") {
			tag = strings.TrimSpace(tag)
			tag = strings.ReplaceAll(tag, `"`, "")
			tag = strings.ReplaceAll(tag, "'", "")
			if tag != "" {
				resp.SearchParamIDs = append(resp.SearchParamIDs, tag)
			}
		}
	}

	if m := messagePattern.FindStringSubmatch(raw); m != nil {
		resp.Message = strings.TrimSpace(m[1])
	}

	return resp
}
