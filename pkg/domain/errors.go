package domain

import "errors"

// ErrInvalidModel is returned when protocol parameters cannot describe a valid run.
var ErrInvalidModel = errors.New("invalid model")

// ErrInvariant is returned when the enumeration reaches a state the protocol rules forbid.
var ErrInvariant = errors.New("enumeration invariant violated")

// ErrHorizonExceeded is returned when a branch runs past Model.MaxSlots without terminating.
var ErrHorizonExceeded = errors.New("slot horizon exceeded")

// ErrResultNotFound is returned when a result cannot be found in the store.
var ErrResultNotFound = errors.New("result not found")
