package inventory

import "errors"

var (
	ErrMaterialNotFound    = errors.New("material not found")
	ErrMaterialNameExists  = errors.New("material name already exists")
	ErrInsufficientStock   = errors.New("insufficient stock for movement")
	ErrInvalidMovementType = errors.New("invalid movement type")
)
