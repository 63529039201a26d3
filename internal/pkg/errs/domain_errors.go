package errs

import "errors"

// Sentinel errors shared by the usecase and handler layers
var (
	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Catalog errors
	ErrCatalogUnavailable = errors.New("vehicle model catalog unavailable")
	ErrCatalogRejected    = errors.New("vehicle model rejected by catalog")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
