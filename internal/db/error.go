package db

import "errors"

// DuplicateKeyError reports an insert that collided with an existing
// document. Event recording treats it as success to stay idempotent.
type DuplicateKeyError struct {
	Key     string
	Message string
}

func (e *DuplicateKeyError) Error() string {
	return e.Message
}

func (e *DuplicateKeyError) Is(target error) bool {
	_, ok := target.(*DuplicateKeyError)
	return ok
}

func IsDuplicateKeyError(err error) bool {
	return errors.Is(err, &DuplicateKeyError{})
}

// NotFoundError reports a lookup or qualified state transition that matched
// no document.
type NotFoundError struct {
	Key     string
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func (e *NotFoundError) Is(target error) bool {
	_, ok := target.(*NotFoundError)
	return ok
}

func IsNotFoundError(err error) bool {
	return errors.Is(err, &NotFoundError{})
}
