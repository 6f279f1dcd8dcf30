package users

import (
	"strings"

	"github.com/GoSim-25-26J-441/aqualab-backend/internal/request"
)

const (
	MsgEmailRequired = "Email is required"
	MsgInvalidID     = "Invalid UUID format for user id"
)

type createPayload struct {
	ID    any `json:"id"`
	Email any `json:"email"`
}

// ValidateCreate checks a create-user request. An absent id is allowed and
// left empty for the repository to generate.
func ValidateCreate(contentType string, body []byte) (CreateRequest, error) {
	if !request.IsJSONContentType(contentType) {
		return CreateRequest{}, request.NewValidationError(request.ReasonMalformedContentType, request.MsgContentType)
	}

	var p createPayload
	if err := request.DecodeObject(body, &p); err != nil {
		return CreateRequest{}, err
	}

	email, ok := p.Email.(string)
	if !ok || strings.TrimSpace(email) == "" {
		return CreateRequest{}, request.NewValidationError(request.ReasonMissingField, MsgEmailRequired)
	}

	req := CreateRequest{Email: strings.TrimSpace(email)}
	switch id := p.ID.(type) {
	case nil:
	case string:
		if id != "" && !request.IsUUID(id) {
			return CreateRequest{}, request.NewValidationError(request.ReasonInvalidIdentifier, MsgInvalidID)
		}
		req.ID = id
	default:
		return CreateRequest{}, request.NewValidationError(request.ReasonInvalidIdentifier, MsgInvalidID)
	}
	return req, nil
}
