package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyName        = errors.New("name is required")
	ErrEmptyEmail       = errors.New("email is required")
	ErrEmptyPassword    = errors.New("password is required")
	ErrPasswordTooShort = errors.New("password must be at least 6 characters")
	ErrEmptyItems       = errors.New("invoice must contain at least one item")
	ErrEmptyDescription = errors.New("description is required")
	ErrInvalidQuantity  = errors.New("quantity must be at least 1")
	ErrInvalidPrice     = errors.New("price must be a non-negative number")
	ErrInvalidStatus    = errors.New("status must be one of Pending, Paid, Overdue, Cancelled")
)
