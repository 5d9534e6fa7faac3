package patient

import "errors"

var (
	ErrPatientNotFound = errors.New("patient not found")
	ErrInvalidStatus   = errors.New("invalid patient status")
)
