package entity

import (
	"errors"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidArgument    = errors.New("invalid argument")
	ErrInvalidReference   = errors.New("invalid service reference")
	ErrForbidden          = errors.New("forbidden")
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrChangePending      = errors.New("change request already pending")
	ErrNoChangePending    = errors.New("no pending change request")
	ErrVersionConflict    = errors.New("record version conflict")
	ErrStorageUnavailable = errors.New("storage unavailable")
)
