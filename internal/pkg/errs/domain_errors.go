package errs

import "errors"

// Domain-specific sentinel errors for CQRS usecase layers
var (
	// Lot errors
	ErrLotNotFound            = errors.New("parking lot not found")
	ErrDuplicateLotCode       = errors.New("duplicate lot code")
	ErrCapacityBelowOccupancy = errors.New("capacity below current occupancy")
	ErrLotFull                = errors.New("no available spaces in lot")

	// Entry errors
	ErrEntryNotFound        = errors.New("car entry not found")
	ErrVehicleAlreadyParked = errors.New("vehicle already has an open entry")
	ErrEntryAlreadyClosed   = errors.New("car entry already closed")

	// Ticket errors
	ErrTicketNotFound = errors.New("ticket not found")

	// Validation errors
	ErrInvalidPlate     = errors.New("invalid plate number")
	ErrInvalidDateRange = errors.New("invalid date range")
	ErrDomainValidation = errors.New("domain validation error")

	// Auth errors
	ErrUserNotFound         = errors.New("user not found")
	ErrAuthenticationFailed = errors.New("authentication failed")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
