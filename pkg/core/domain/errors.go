package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound signals a missing collection or slot.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists signals a duplicate collection name.
	ErrAlreadyExists = errors.New("already exists")
	// ErrInvalidName signals an empty or reserved collection name.
	ErrInvalidName = errors.New("invalid collection name")
	// ErrInvalidParameters signals slot parameters that cannot be populated.
	ErrInvalidParameters = errors.New("invalid slot parameters")
	// ErrInvalidIndex signals a slot ordinal outside the collection.
	ErrInvalidIndex = errors.New("invalid slot index")
	// ErrUnknownSeries signals a coin type index missing from the catalog.
	ErrUnknownSeries = errors.New("unknown series")
	// ErrUnsupportedVersion signals an interchange document from a newer database version.
	ErrUnsupportedVersion = errors.New("unsupported database version")
	// ErrInvalidOrder signals a reorder request that is not a permutation of the collections.
	ErrInvalidOrder = errors.New("invalid collection order")
)

// UnknownSeriesError wraps ErrUnknownSeries with the offending index.
type UnknownSeriesError struct {
	Index int
}

func (e *UnknownSeriesError) Error() string {
	return fmt.Sprintf("%s: %d", ErrUnknownSeries.Error(), e.Index)
}

func (e *UnknownSeriesError) Unwrap() error { return ErrUnknownSeries }

// NewUnknownSeries creates an unknown series error.
func NewUnknownSeries(index int) error {
	return &UnknownSeriesError{Index: index}
}
