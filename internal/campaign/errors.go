package campaign

import "errors"

var (
	ErrNotFound  = errors.New("campaign not found")
	ErrInvalidID = errors.New("invalid campaign id")
)
