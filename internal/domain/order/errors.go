package order

import "errors"

var (
	ErrEmptyCart        = errors.New("cart is empty")
	ErrMissingAddress   = errors.New("delivery address is missing")
	ErrAlreadyConfirmed = errors.New("order already confirmed")
)
