package model

import "errors"

var (
	ErrDuplicateAccount  = errors.New("account already exists in category")
	ErrAccountNotFound   = errors.New("account not found")
	ErrProtectedAccount  = errors.New("account is protected and cannot be deleted")
	ErrEmptyLineItems    = errors.New("at least one line item is required")
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrInvalidCategory   = errors.New("invalid category")
	ErrInsufficientFunds = errors.New("insufficient funds")
)
