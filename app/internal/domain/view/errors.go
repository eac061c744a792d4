package view

import "errors"

var (
	ErrViewNotFound      = errors.New("view not found")
	ErrInvalidKind       = errors.New("invalid view kind")
	ErrInvalidShareToken = errors.New("invalid share token")
)
