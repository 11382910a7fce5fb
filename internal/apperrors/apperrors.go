package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind categorizes application errors so transports can map them to responses.
type Kind string

const (
	KindImageProcessing Kind = "image_processing"
	KindAIService       Kind = "ai_service"
	KindAnalysisService Kind = "analysis_service"
	KindValidation      Kind = "validation"
	KindNotFound        Kind = "not_found"
)

// AppError is the single error contract callers branch on.
type AppError struct {
	Kind       Kind   `json:"kind"`
	Message    string `json:"message"`
	Details    string `json:"details,omitempty"`
	StatusCode int    `json:"status_code"`
	Cause      error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewImageProcessing reports a bad input image. User-correctable.
func NewImageProcessing(message string, cause error) *AppError {
	return &AppError{
		Kind:       KindImageProcessing,
		Message:    message,
		StatusCode: http.StatusBadRequest,
		Cause:      cause,
	}
}

// NewAIService reports an external model failure or unparseable model output.
func NewAIService(message string, cause error) *AppError {
	return &AppError{
		Kind:       KindAIService,
		Message:    message,
		StatusCode: http.StatusBadGateway,
		Cause:      cause,
	}
}

// NewAnalysisService reports a pipeline-level failure, usually wrapping another error.
func NewAnalysisService(message string, cause error) *AppError {
	return &AppError{
		Kind:       KindAnalysisService,
		Message:    message,
		StatusCode: http.StatusInternalServerError,
		Cause:      cause,
	}
}

// NewValidation reports invalid caller input such as unknown location codes.
func NewValidation(message string, cause error) *AppError {
	return &AppError{
		Kind:       KindValidation,
		Message:    message,
		StatusCode: http.StatusBadRequest,
		Cause:      cause,
	}
}

// NewNotFound reports a missing resource.
func NewNotFound(message string) *AppError {
	return &AppError{
		Kind:       KindNotFound,
		Message:    message,
		StatusCode: http.StatusNotFound,
	}
}

// WithDetails attaches diagnostic text, e.g. the raw model response that failed to parse.
func (e *AppError) WithDetails(details string) *AppError {
	e.Details = details
	return e
}

// IsKind reports whether err (or anything it wraps) is an AppError of the given kind.
func IsKind(err error, kind Kind) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind == kind
	}
	return false
}

// StatusCode extracts the HTTP status for an error, defaulting to 500.
func StatusCode(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}
