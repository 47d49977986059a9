package store

import (
	"errors"
	"fmt"
)

var (
	// ErrRead indicates the config directory or file could not be read.
	ErrRead = errors.New("config read failed")

	// ErrWrite indicates the config file could not be written.
	ErrWrite = errors.New("config write failed")

	// ErrParse indicates the config file does not match the schema.
	ErrParse = errors.New("config parse failed")

	// ErrSerialize indicates the store could not be encoded.
	ErrSerialize = errors.New("config serialize failed")

	// ErrValidation indicates a name constraint was violated.
	ErrValidation = errors.New("validation failed")

	// ErrExists indicates an item with the same name is already present.
	ErrExists = errors.New("item already exists")

	// ErrNotFound indicates no item with the given name is present.
	ErrNotFound = errors.New("item not found")
)

// wrapName tags a sentinel error with the item name it concerns.
func wrapName(sentinel error, name string) error {
	return fmt.Errorf("%w: %s", sentinel, name)
}
