package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrValidation indicates malformed input, such as a duplicate product id.
	ErrValidation = errors.New("validation failed")
	// ErrPrecondition indicates the operation is not allowed in the current
	// session state, e.g. placing an order with an empty cart or no identity.
	ErrPrecondition = errors.New("precondition failed")
	// ErrInvalidState indicates a lifecycle transition on an entity that has
	// already left the state the transition requires.
	ErrInvalidState = errors.New("invalid state")
)
