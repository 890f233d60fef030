package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Appointment errors
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrInvalidAppointment  = errors.New("invalid appointment")

	// Workshop errors
	ErrWorkshopNotFound   = errors.New("workshop not found")
	ErrEmailAlreadyInUse  = errors.New("email already in use")
	ErrWorkshopNameInUse  = errors.New("workshop name already in use")
	ErrOperatorNotFound   = errors.New("operator not found")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
