package dish

import "fmt"

// Error strings below are part of the API contract and are rendered
// verbatim in response bodies.

type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Dish id not found: %s", e.ID)
}

type IDMismatchError struct {
	Found    string
	Supplied string
}

func (e *IDMismatchError) Error() string {
	return fmt.Sprintf("Dish id does not match route id. Dish: %s, Route: %s", e.Found, e.Supplied)
}
