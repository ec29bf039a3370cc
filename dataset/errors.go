package dataset

import "errors"

var (
	// ErrDecode is returned when the input is not a well-formed data file.
	ErrDecode = errors.New("dataset: decode failed")

	// ErrInvalid is returned when a well-formed file breaks a validation rule.
	ErrInvalid = errors.New("dataset: invalid data")

	// ErrUnknownModule is returned by Module for a name the file does not define.
	ErrUnknownModule = errors.New("dataset: unknown module")

	// ErrUnknownFuel is returned by Fuel for a name the file does not define.
	ErrUnknownFuel = errors.New("dataset: unknown fuel")
)
