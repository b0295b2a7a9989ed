package dto

import "errors"

// Custom errors
var (
	ErrNoFileProvided = errors.New("no file provided")
	ErrFileTooLarge   = errors.New("file exceeds maximum allowed size")
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// HighestValueResponse is the final response structure. Value and
// MultiplierApplied are decimal strings so large normalized magnitudes
// survive JSON without float rounding. Found is false when the document
// held no numeric token anywhere; that is a result, not an error, and the
// value fields are omitted rather than reported as zero.
type HighestValueResponse struct {
	Found             bool   `json:"found"`
	Value             string `json:"value,omitempty"`
	Page              int    `json:"page"`
	Row               int    `json:"row"`
	RawText           string `json:"raw_text,omitempty"`
	MultiplierApplied string `json:"multiplier_applied,omitempty"`
	Filename          string `json:"filename"`
	PagesScanned      int    `json:"pages_scanned"`
	ProcessedAt       string `json:"processed_at"`
}
