package types

// ErrorEnvelope is the failure body sent to clients. Code is omitted for
// internal failures.
type ErrorEnvelope struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// DeleteEnvelope confirms a delete and carries the record's prior state under
// the entity key ("tenant", "customer", ...).
type DeleteEnvelope map[string]any

func NewDeleteEnvelope(entity, message string, record any) DeleteEnvelope {
	return DeleteEnvelope{"message": message, entity: record}
}
