package vehicle

import (
	"errors"
	"fmt"
)

// ErrValidation marks every range error that is raised before the catalog is called.
var ErrValidation = errors.New("invalid vehicle range")

var (
	ErrBrandRequired    = fmt.Errorf("%w: brand is required", ErrValidation)
	ErrModelRequired    = fmt.Errorf("%w: model is required", ErrValidation)
	ErrYearOutOfRange   = fmt.Errorf("%w: year must be between %d and %d", ErrValidation, MinYear, MaxYear)
	ErrInvalidYearRange = fmt.Errorf("%w: end year cannot be before start year", ErrValidation)
)
