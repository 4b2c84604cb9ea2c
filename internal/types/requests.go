package types

import (
	"github.com/go-playground/validator/v10"
)

// validate is shared; validator caches struct metadata per instance.
var validate = validator.New()

// AnalyzeRequest asks the server to run the full pipeline for a previously
// extracted session.
type AnalyzeRequest struct {
	SessionID string `json:"session_id" validate:"required,uuid4"`
}

// ExtractResponse is returned by the extract-text endpoint.
type ExtractResponse struct {
	SessionID string `json:"session_id"`
	Text      string `json:"text"`
	Links     []Link `json:"links"`
}

// Validate validates the AnalyzeRequest using the validator.
func (r *AnalyzeRequest) Validate() error {
	return validate.Struct(r)
}
