// Package apperrors holds the business errors shared by the storage, service and transport layers.
// Each error carries a stable machine-readable code that the HTTP layer puts on the wire.
package apperrors

import (
	"errors"
	"fmt"
)

const (
	CodeNotFound    = "NOT_FOUND"
	CodePRExists    = "PR_EXISTS"
	CodePRMerged    = "PR_MERGED"
	CodeNotAssigned = "NOT_ASSIGNED"
	CodeNoCandidate = "NO_CANDIDATE"
	CodeValidation  = "VALIDATION"
	CodeInternal    = "INTERNAL"
)

var (
	ErrNotFound      = errors.New("resource not found")
	ErrAlreadyExists = errors.New("resource already exists")

	ErrInvalidRequest = errors.New("invalid request body")
	ErrValidation     = errors.New("validation failed")

	ErrPRMerged            = errors.New("cannot modify merged pull request")
	ErrReviewerNotAssigned = errors.New("reviewer is not assigned to this PR")
	ErrNoCandidate         = errors.New("no active replacement candidate found in team")
)

type PRAlreadyExistsError struct{ PRID string }

func (e *PRAlreadyExistsError) Error() string {
	return fmt.Sprintf("pull request '%s' already exists", e.PRID)
}
func (e *PRAlreadyExistsError) Is(target error) bool { return target == ErrAlreadyExists }

// Code returns the wire code for err, or CodeInternal when err is not a business error.
func Code(err error) string {
	var prExists *PRAlreadyExistsError

	switch {
	case errors.Is(err, ErrInvalidRequest), errors.Is(err, ErrValidation):
		return CodeValidation
	case errors.Is(err, ErrNotFound):
		return CodeNotFound
	case errors.As(err, &prExists):
		return CodePRExists
	case errors.Is(err, ErrPRMerged):
		return CodePRMerged
	case errors.Is(err, ErrReviewerNotAssigned):
		return CodeNotAssigned
	case errors.Is(err, ErrNoCandidate):
		return CodeNoCandidate
	default:
		return CodeInternal
	}
}
