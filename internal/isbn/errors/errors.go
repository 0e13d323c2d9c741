package errors

import (
	"errors"

	"isbnsplit/pkg/model"
)

var (
	ErrInvalidCharacter = errors.New("invalid character in ISBN group")

	ErrInvalidChecksum = errors.New("ISBN checksum mismatch")

	ErrInputTooLong = errors.New("ISBN input too long")

	ErrReadFailed = errors.New("could not read ISBN input")
)

// Kind maps a validation sentinel to its result kind.
func Kind(err error) model.ErrorKind {
	switch {
	case err == nil:
		return model.ErrorNone
	case errors.Is(err, ErrInvalidChecksum):
		return model.ErrorInvalidChecksum
	default:
		return model.ErrorInvalidCharacter
	}
}
