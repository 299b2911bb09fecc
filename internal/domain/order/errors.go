package order

import (
	"errors"
	"fmt"
)

// Error strings below are part of the API contract and are rendered
// verbatim in response bodies.

var (
	ErrInvalidStatus    = errors.New("Order must have a status of pending, preparing, out-for-delivery, delivered")
	ErrDeliveredLocked  = errors.New("A delivered order cannot be changed")
	ErrDeleteNotPending = errors.New("An order cannot be deleted unless it is pending")
)

type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Order id not found: %s", e.ID)
}

type IDMismatchError struct {
	Found    string
	Supplied string
}

func (e *IDMismatchError) Error() string {
	return fmt.Sprintf("Order id does not match route id. Order: %s, Route: %s", e.Found, e.Supplied)
}

// QuantityError reports the zero-based position of the first line item
// whose quantity is missing, non-integer, or less than 1.
type QuantityError struct {
	Index int
}

func (e *QuantityError) Error() string {
	return fmt.Sprintf("Dish %d must have a quantity that is an integer greater than 0", e.Index)
}
