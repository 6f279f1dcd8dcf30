package validation

import (
	"github.com/GoSim-25-26J-441/aqualab-backend/internal/experiments/domain"
	"github.com/GoSim-25-26J-441/aqualab-backend/internal/request"
)

const (
	MsgContentType       = request.MsgContentType
	MsgInvalidJSON       = request.MsgInvalidJSON
	MsgMissingSensorData = "At least one sensor value (ph, tds, turbidity) is required"
	MsgInvalidExpID      = "Invalid UUID format for experiment ID"
	MsgMissingUserIDQ    = "Missing userId query parameter"
	MsgInvalidUserID     = "Invalid UUID format for userId"
	MsgUserIDRequired    = "Valid userId (Supabase auth UID) is required"
	MsgNameRequired      = "Valid experiment name is required"
)

// ValidateExperimentID rejects identifiers that are not UUID-shaped.
func ValidateExperimentID(id string) error {
	if !request.IsUUID(id) {
		return request.NewValidationError(request.ReasonInvalidIdentifier, MsgInvalidExpID)
	}
	return nil
}

type sensorPayload struct {
	PH        *float64 `json:"ph"`
	TDS       *float64 `json:"tds"`
	Turbidity *float64 `json:"turbidity"`
}

// ValidateUpdate checks an experiment update request and returns the
// sensor readings it carries. Checks run in order: content type, body,
// sensor presence, identifier.
func ValidateUpdate(contentType string, body []byte, id string) (domain.SensorReadings, error) {
	if !request.IsJSONContentType(contentType) {
		return domain.SensorReadings{}, request.NewValidationError(request.ReasonMalformedContentType, MsgContentType)
	}

	var p sensorPayload
	if err := request.DecodeObject(body, &p); err != nil {
		return domain.SensorReadings{}, err
	}

	readings := domain.SensorReadings{PH: p.PH, TDS: p.TDS, Turbidity: p.Turbidity}
	if readings.Empty() {
		return domain.SensorReadings{}, request.NewValidationError(request.ReasonMissingSensorData, MsgMissingSensorData)
	}

	if err := ValidateExperimentID(id); err != nil {
		return domain.SensorReadings{}, err
	}

	return readings, nil
}

type createExperimentPayload struct {
	UserID      any `json:"userId"`
	Name        any `json:"name"`
	Description any `json:"description"`
}

// ValidateCreateExperiment checks a create-experiment request.
func ValidateCreateExperiment(contentType string, body []byte) (domain.CreateExperimentRequest, error) {
	if !request.IsJSONContentType(contentType) {
		return domain.CreateExperimentRequest{}, request.NewValidationError(request.ReasonMalformedContentType, MsgContentType)
	}

	var p createExperimentPayload
	if err := request.DecodeObject(body, &p); err != nil {
		return domain.CreateExperimentRequest{}, err
	}

	userID, ok := p.UserID.(string)
	if !ok || userID == "" {
		return domain.CreateExperimentRequest{}, request.NewValidationError(request.ReasonMissingField, MsgUserIDRequired)
	}

	name, ok := p.Name.(string)
	if !ok || name == "" {
		return domain.CreateExperimentRequest{}, request.NewValidationError(request.ReasonMissingField, MsgNameRequired)
	}

	if !request.IsUUID(userID) {
		return domain.CreateExperimentRequest{}, request.NewValidationError(request.ReasonInvalidIdentifier, MsgInvalidUserID)
	}

	req := domain.CreateExperimentRequest{UserID: userID, Name: name}
	if desc, ok := p.Description.(string); ok && desc != "" {
		req.Description = &desc
	}
	return req, nil
}

// ValidateUserIDQuery checks the userId query parameter of a list request.
func ValidateUserIDQuery(userID string) error {
	if userID == "" {
		return request.NewValidationError(request.ReasonMissingField, MsgMissingUserIDQ)
	}
	if !request.IsUUID(userID) {
		return request.NewValidationError(request.ReasonInvalidIdentifier, MsgInvalidUserID)
	}
	return nil
}
