package internal

import (
	"encoding/json"
	"fmt"
	"strings"
)

type ErrorType string

const (
	ErrorTypeValidation    ErrorType = "VALIDATION_ERROR"
	ErrorTypeNotFound      ErrorType = "NOT_FOUND"
	ErrorTypeInvalidPeriod ErrorType = "INVALID_PERIOD"
	ErrorTypeStorage       ErrorType = "STORAGE_ERROR"
	ErrorTypeImportFormat  ErrorType = "IMPORT_FORMAT_ERROR"
	ErrorTypeInternal      ErrorType = "INTERNAL_ERROR"
)

type ErrorCode string

const (
	ErrCodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	ErrCodeEmptyFullName    ErrorCode = "EMPTY_FULL_NAME"
	ErrCodeNegativeSalary   ErrorCode = "NEGATIVE_SALARY"
	ErrCodeInvalidTaxRate   ErrorCode = "INVALID_TAX_RATE"

	ErrCodeEmployeeNotFound ErrorCode = "EMPLOYEE_NOT_FOUND"

	ErrCodeInvalidTotalDays    ErrorCode = "INVALID_TOTAL_DAYS"
	ErrCodeNegativeWorkedDays  ErrorCode = "NEGATIVE_WORKED_DAYS"
	ErrCodeInvalidPeriodParams ErrorCode = "INVALID_PERIOD_PARAMS"

	ErrCodeStorageUnavailable ErrorCode = "STORAGE_UNAVAILABLE"

	ErrCodeUnsupportedFormat ErrorCode = "UNSUPPORTED_FORMAT"
	ErrCodeMalformedDocument ErrorCode = "MALFORMED_DOCUMENT"
)

type AppError struct {
	Type    ErrorType   `json:"type"`
	Code    ErrorCode   `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
	Cause   error       `json:"-"`
}

func (e *AppError) Error() string {
	if e.Details != nil {
		if validationErrors, ok := e.Details.(ValidationErrors); ok && len(validationErrors.Errors) > 0 {
			return validationErrors.Errors[0].Message
		}
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) GetDetailedMessage() string {
	if e.Details != nil {
		if validationErrors, ok := e.Details.(ValidationErrors); ok {
			if len(validationErrors.Errors) == 1 {
				return validationErrors.Errors[0].Message
			} else if len(validationErrors.Errors) > 1 {
				messages := make([]string, len(validationErrors.Errors))
				for i, err := range validationErrors.Errors {
					messages[i] = err.Message
				}
				return strings.Join(messages, "; ")
			}
		}
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

func (e *AppError) WithDetails(details interface{}) *AppError {
	e.Details = details
	return e
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

func NewValidationError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:    ErrorTypeValidation,
		Code:    code,
		Message: message,
	}
}

func NewValidationFieldError(field, message string, code ErrorCode) *AppError {
	return &AppError{
		Type:    ErrorTypeValidation,
		Code:    ErrCodeValidationFailed,
		Message: "Validation failed",
		Details: ValidationErrors{
			Errors: []ValidationError{
				{Field: field, Message: message, Code: string(code)},
			},
		},
	}
}

func NewNotFoundError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:    ErrorTypeNotFound,
		Code:    code,
		Message: message,
	}
}

func NewInvalidPeriodError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:    ErrorTypeInvalidPeriod,
		Code:    code,
		Message: message,
	}
}

func NewStorageError(message string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeStorage,
		Code:    ErrCodeStorageUnavailable,
		Message: message,
		Cause:   cause,
	}
}

func NewImportFormatError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:    ErrorTypeImportFormat,
		Code:    code,
		Message: message,
	}
}

func NewInternalError(message string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeInternal,
		Code:    "INTERNAL_ERROR",
		Message: message,
		Cause:   cause,
	}
}

var (
	ErrEmployeeNotFound = NewNotFoundError("Employee not found", ErrCodeEmployeeNotFound)
	ErrEmptyFullName    = NewValidationError("full_name must not be empty", ErrCodeEmptyFullName)
	ErrNegativeSalary   = NewValidationError("base_salary must not be negative", ErrCodeNegativeSalary)
	ErrInvalidTaxRate   = NewValidationError("tax rate must be between 0 and 1", ErrCodeInvalidTaxRate)
)

func IsAppError(err error) (*AppError, bool) {
	if appErr, ok := err.(*AppError); ok {
		return appErr, true
	}
	return nil, false
}

func IsNotFound(err error) bool {
	if appErr, ok := IsAppError(err); ok {
		return appErr.Type == ErrorTypeNotFound
	}
	return false
}

func (e *AppError) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type    ErrorType   `json:"type"`
		Code    ErrorCode   `json:"code"`
		Message string      `json:"message"`
		Details interface{} `json:"details,omitempty"`
	}{
		Type:    e.Type,
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
	})
}
