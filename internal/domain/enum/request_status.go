package enum

// RequestStatus represents the status of a customer request.
// Values are the literal tokens carried in the CSV interchange format,
// so the type is string-backed rather than numeric.
type RequestStatus string

const (
	RequestStatusNew          RequestStatus = "Новая"
	RequestStatusInProgress   RequestStatus = "В работе"
	RequestStatusProposalSent RequestStatus = "Отправлено КП"
	RequestStatusClosed       RequestStatus = "Закрыто"
	RequestStatusCancelled    RequestStatus = "Отменено"
	RequestStatusExpired      RequestStatus = "Просрочено"
)

// AllRequestStatuses lists every recognized status.
var AllRequestStatuses = []RequestStatus{
	RequestStatusNew,
	RequestStatusInProgress,
	RequestStatusProposalSent,
	RequestStatusClosed,
	RequestStatusCancelled,
	RequestStatusExpired,
}

func (s RequestStatus) String() string {
	return string(s)
}

// IsValid reports whether the status is one of the recognized values.
func (s RequestStatus) IsValid() bool {
	for _, v := range AllRequestStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// ParseRequestStatus returns the status for a raw CSV token.
// An empty token defaults to RequestStatusNew; any other value is
// used verbatim, matching the interchange contract.
func ParseRequestStatus(raw string) RequestStatus {
	if raw == "" {
		return RequestStatusNew
	}
	return RequestStatus(raw)
}
