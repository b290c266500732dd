package service

import "errors"

// Sentinel errors shared across services. Handlers map these onto the
// HTTP error taxonomy; raw storage errors never cross this boundary.
var (
	ErrNotFound              = errors.New("record not found")
	ErrUsernameAlreadyExists = errors.New("username already exists")
	ErrEmailAlreadyExists    = errors.New("email already exists")
	ErrNameAlreadyExists     = errors.New("name already exists")
	ErrUniqueIDAlreadyExists = errors.New("unique_id already exists")
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrValidation            = errors.New("invalid input")
	ErrInvalidRole           = errors.New("invalid role")
	ErrInvalidAction         = errors.New("invalid transaction action")
	ErrInvalidState          = errors.New("invalid item state")
)

// validationError carries a human-readable message while still matching
// ErrValidation under errors.Is.
type validationError string

func (e validationError) Error() string { return string(e) }

func (validationError) Is(target error) bool { return target == ErrValidation }

func invalidInput(msg string) error { return validationError(msg) }
