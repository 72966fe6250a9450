package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrPrecondition indicates that a required reference record is missing, so the
// requested billing action cannot start (e.g. the lab's own account row).
var ErrPrecondition = errors.New("precondition not met")

// ErrSequenceExhausted indicates an invoice number allocation would run past
// the 4-digit sequence capacity of the category's numbering format.
var ErrSequenceExhausted = errors.New("invoice sequence exhausted")

// ErrSnapshotExpired indicates the billing run snapshot is no longer available
// and the period must be fetched again.
var ErrSnapshotExpired = errors.New("billing run snapshot expired")
