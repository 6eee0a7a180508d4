package service

import "errors"

var (
	// ErrNotFound is returned when the addressed record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrCategoryInUse refuses deletion of a category still referenced by
	// prompts. The caller should tell the user to reassign or delete the
	// prompts first; no cascade or reassignment happens.
	ErrCategoryInUse = errors.New("category is still in use by existing prompts")

	// ErrValidation marks input rejected before reaching the store.
	ErrValidation = errors.New("validation failed")
)
