package user

import "errors"

var (
	ErrUserNotFound             = errors.New("user not found")
	ErrEmailExists              = errors.New("email already registered")
	ErrRUTExists                = errors.New("RUT already registered")
	ErrAdminAccessRequired      = errors.New("admin access required")
	ErrSupervisorAccessRequired = errors.New("supervisor access required")
	ErrWarehouseAccessRequired  = errors.New("warehouse access required")
)
