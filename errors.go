package utm

import "errors"

var (
	ErrInvalidDatum     = errors.New("utm: invalid datum")
	ErrOutOfRange       = errors.New("utm: coordinate out of range")
	ErrInvalidZone      = errors.New("utm: invalid grid zone")
	ErrSyntax           = errors.New("utm: invalid syntax")
	ErrMissingData      = errors.New("utm: missing data")
	ErrDataSizeMismatch = errors.New("utm: data size mismatch")
)
