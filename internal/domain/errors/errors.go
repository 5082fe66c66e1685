// Package errors defines the application error taxonomy: typed errors with an
// HTTP status, a business code and a user-facing message. The conversation
// layer turns these into chat replies; raw internal errors never reach users.
package errors

import (
	"net/http"

	"shipnotify/internal/errors"
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
	// Notification-related errors
	ErrNotificationNotFound = NewBaseError(
		http.StatusNotFound,
		"NOTIFICATION_NOT_FOUND",
		"لم يتم العثور على الإشعار المطلوب",
		"",
	)

	ErrNotificationCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"NOTIFICATION_CREATION_FAILED",
		"حدث خطأ أثناء تسجيل الإشعار",
		"",
	)

	ErrInvalidReminderDays = NewBaseError(
		http.StatusBadRequest,
		"INVALID_REMINDER_DAYS",
		"يجب أن يكون عدد الأيام أكبر من أو يساوي 1",
		"",
	)

	// Admin-related errors
	ErrAdminOnly = NewBaseError(
		http.StatusForbidden,
		"ADMIN_ONLY",
		"عذراً، هذا الإجراء متاح للمسؤولين فقط",
		"",
	)

	ErrInvalidAdminID = NewBaseError(
		http.StatusBadRequest,
		"INVALID_ADMIN_ID",
		"معرّف المسؤول يجب أن يكون رقماً صحيحاً",
		"",
	)

	// Template-related errors
	ErrUnknownTemplate = NewBaseError(
		http.StatusNotFound,
		"UNKNOWN_TEMPLATE",
		"اسم القالب غير معروف",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"البيانات المدخلة غير صالحة",
		"",
	)

	// Dispatch-related errors
	ErrReminderDispatchFailed = NewBaseError(
		http.StatusBadGateway,
		"REMINDER_DISPATCH_FAILED",
		"حدث خطأ أثناء إرسال التذكير",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"فشلت عملية قاعدة البيانات",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"حدث خطأ داخلي في النظام",
		"",
	)
)

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

// Unwrap exposes the underlying database error.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
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
	return "فشلت عملية قاعدة البيانات"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
