package apperrors

import "errors"

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrNotFound            = errors.New("not found")
	ErrNoActiveSession     = errors.New("no active session")
	ErrActiveSessionExists = errors.New("active session already exists")
	ErrTermTooShort        = errors.New("lookup term too short")
	ErrNoDefinition        = errors.New("no definition found")
	ErrNoSelection         = errors.New("no text under selection point")
	ErrProviderDisabled    = errors.New("provider is disabled")
	ErrProviderTimeout     = errors.New("provider timeout")
	ErrChecksumMismatch    = errors.New("provider checksum mismatch")
)
