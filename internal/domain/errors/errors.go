package errors

import (
	"fmt"
	"net/http"

	"vehiclee/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Authentication-related errors
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Authentication required",
		"",
	)

	ErrTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_INVALID",
		"Invalid or expired token",
		"",
	)

	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	// Profile-related errors
	ErrClientProfileNotFound = NewBaseError(
		http.StatusNotFound,
		"CLIENT_PROFILE_NOT_FOUND",
		"Client profile not found",
		"",
	)

	ErrDriverProfileNotFound = NewBaseError(
		http.StatusNotFound,
		"DRIVER_PROFILE_NOT_FOUND",
		"Driver profile not found",
		"",
	)

	// Campaign-related errors
	ErrCampaignNotFound = NewBaseError(
		http.StatusNotFound,
		"CAMPAIGN_NOT_FOUND",
		"Campaign not found",
		"",
	)

	ErrCampaignOwnership = NewBaseError(
		http.StatusForbidden,
		"CAMPAIGN_OWNERSHIP_VIOLATION",
		"You do not have access to this campaign",
		"",
	)

	ErrCampaignStatusTransition = NewBaseError(
		http.StatusConflict,
		"CAMPAIGN_STATUS_TRANSITION",
		"Campaign is not in a valid state for this action",
		"",
	)

	ErrCampaignNotReviewable = NewBaseError(
		http.StatusConflict,
		"CAMPAIGN_NOT_REVIEWABLE",
		"Campaign is not awaiting approval",
		"",
	)

	// Creative-related errors
	ErrCreativeNotFound = NewBaseError(
		http.StatusNotFound,
		"CREATIVE_NOT_FOUND",
		"Creative not found",
		"",
	)

	ErrCreativeNotClientApproved = NewBaseError(
		http.StatusConflict,
		"CREATIVE_NOT_CLIENT_APPROVED",
		"Creative must be approved by the client before submission",
		"",
	)

	ErrCreativeAssetInvalid = NewBaseError(
		http.StatusBadRequest,
		"CREATIVE_ASSET_INVALID",
		"Creative asset payload is not valid",
		"",
	)

	// Compliance-related errors
	ErrReviewEntryNotFound = NewBaseError(
		http.StatusNotFound,
		"REVIEW_ENTRY_NOT_FOUND",
		"Review entry not found",
		"",
	)

	ErrReviewAlreadyDecided = NewBaseError(
		http.StatusConflict,
		"REVIEW_ALREADY_DECIDED",
		"Review entry has already been decided",
		"",
	)

	ErrRejectionReasonRequired = NewBaseError(
		http.StatusBadRequest,
		"REJECTION_REASON_REQUIRED",
		"A rejection reason is required",
		"",
	)

	// Fleet-related errors
	ErrDeviceNotFound = NewBaseError(
		http.StatusNotFound,
		"DEVICE_NOT_FOUND",
		"Device not found",
		"",
	)

	ErrDeviceSecretInvalid = NewBaseError(
		http.StatusUnauthorized,
		"DEVICE_SECRET_INVALID",
		"Device credentials are not valid",
		"",
	)

	ErrNoActiveAllocation = NewBaseError(
		http.StatusNotFound,
		"NO_ACTIVE_ALLOCATION",
		"No active allocation found for this device",
		"",
	)

	ErrVehicleNotFound = NewBaseError(
		http.StatusNotFound,
		"VEHICLE_NOT_FOUND",
		"Vehicle not found",
		"",
	)

	ErrZoneNotFound = NewBaseError(
		http.StatusNotFound,
		"ZONE_NOT_FOUND",
		"Zone not found",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Database transaction failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Resource conflict",
		"",
	)
)

// NewRoleRequiredError builds the forbidden error returned when a route
// is called by a user whose role does not match the required one.
func NewRoleRequiredError(role string) *BaseError {
	return NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		fmt.Sprintf("This action requires %s role", role),
		"",
	)
}

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
