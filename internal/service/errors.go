package service

import (
	"errors"
	"fmt"
)

var (
	ErrEmailTaken          = errors.New("Email already registered")
	ErrInvalidCredentials  = errors.New("Invalid email or password")
	ErrWrongPassword       = errors.New("Incorrect old password")
	ErrDuplicateReview     = errors.New("You have already reviewed this product")
	ErrOrderNotCancellable = errors.New("Only pending orders can be cancelled")
)

// NotFoundError covers unknown ids and cross-owner access alike, so a
// caller cannot distinguish "does not exist" from "not yours".
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return e.Resource + " not found"
}

// ValidationError carries a message about malformed or missing input.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

type InsufficientStockError struct {
	ProductName string
	Available   int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("Insufficient stock for %s. Available: %d", e.ProductName, e.Available)
}
