package category

import "errors"

var (
	ErrCategoryNotFound      = errors.New("category not found")
	ErrCategoryInvalidStatus = errors.New("invalid category status")
)
