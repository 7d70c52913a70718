package models

import "errors"

var (
	// ErrMalformedInput is returned when a batch cannot be decoded into notes.
	ErrMalformedInput = errors.New("malformed input")

	// ErrInvalidTopN is returned for a negative keyword limit.
	ErrInvalidTopN = errors.New("invalid top_n")
)

// ErrorInfo provides structured error information.
type ErrorInfo struct {
	Type             string   `json:"error_type" yaml:"error_type"`
	Message          string   `json:"message" yaml:"message"`
	SuggestedActions []string `json:"suggested_actions,omitempty" yaml:"suggested_actions,omitempty"`
}

// NewErrorInfo classifies err into a structured error for CLI output.
func NewErrorInfo(err error) ErrorInfo {
	switch {
	case errors.Is(err, ErrMalformedInput):
		return ErrorInfo{
			Type:    "malformed_input",
			Message: err.Error(),
			SuggestedActions: []string{
				"Provide a JSON array of {\"id\", \"content\", \"project\"} records",
				"Use --input-format yaml for YAML batches",
			},
		}
	case errors.Is(err, ErrInvalidTopN):
		return ErrorInfo{
			Type:             "invalid_parameter",
			Message:          err.Error(),
			SuggestedActions: []string{"Pass --top with a value >= 0"},
		}
	default:
		return ErrorInfo{Type: "internal_error", Message: err.Error()}
	}
}
