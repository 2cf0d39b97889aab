package domain

import "errors"

var (
	// ErrAccountNotFound is returned when an account does not exist
	ErrAccountNotFound = errors.New("account not found")

	// ErrEntityNotFound is returned when a weighted entity does not exist
	ErrEntityNotFound = errors.New("entity not found")

	// ErrUnknownEntityType is returned for entity types outside EntityTypes
	ErrUnknownEntityType = errors.New("unknown entity type")

	// ErrAllocationConflict is returned when concurrent writers kept an allocation from committing
	ErrAllocationConflict = errors.New("allocation conflict")
)
