package record

import (
	"errors"
)

var (
	ErrNotFound    = errors.New("record not found")
	ErrInvalidData = errors.New("invalid record data")
	ErrDecode      = errors.New("stored collection could not be decoded")
	ErrLoad        = errors.New("stored collection could not be read")
	ErrPersist     = errors.New("collection could not be persisted")
)
