// Package request holds the input checks shared by the HTTP features.
package request

import (
	"bytes"
	"encoding/json"
	"errors"
	"regexp"
	"strings"
)

const (
	MsgContentType = "Content-Type must be application/json"
	MsgInvalidJSON = "Invalid JSON in request body"
)

// Reason classifies a rejected request.
type Reason string

const (
	ReasonMalformedContentType Reason = "MalformedContentType"
	ReasonMalformedBody        Reason = "MalformedBody"
	ReasonMissingSensorData    Reason = "MissingSensorData"
	ReasonInvalidIdentifier    Reason = "InvalidIdentifier"
	ReasonMissingField         Reason = "MissingField"
	ReasonInvalidField         Reason = "InvalidField"
)

// ValidationError is returned for input the caller must fix. Message is
// safe to show to clients.
type ValidationError struct {
	Reason  Reason
	Message string
}

func (e *ValidationError) Error() string {
	return string(e.Reason) + ": " + e.Message
}

func NewValidationError(reason Reason, msg string) *ValidationError {
	return &ValidationError{Reason: reason, Message: msg}
}

// AsValidationError unwraps err into a *ValidationError if it is one.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

var uuidPattern = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)

// IsUUID reports whether s has the 8-4-4-4-12 hex shape.
func IsUUID(s string) bool {
	return uuidPattern.MatchString(s)
}

// IsJSONContentType reports whether the Content-Type header declares JSON.
func IsJSONContentType(contentType string) bool {
	return strings.Contains(strings.ToLower(contentType), "application/json")
}

// DecodeObject parses body as a single JSON object. A field of the wrong
// type is reported as an invalid field naming it.
func DecodeObject(body []byte, dst any) error {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return NewValidationError(ReasonMalformedBody, MsgInvalidJSON)
	}

	if err := json.Unmarshal(trimmed, dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return NewValidationError(ReasonInvalidField, typeErr.Field+" must be a number")
		}
		return NewValidationError(ReasonMalformedBody, MsgInvalidJSON)
	}
	return nil
}
