package store

import (
	"errors"
	"fmt"

	"hangar-next/mxops/internal/constants"
)

// ValidationError rejects a create/update with a missing or malformed
// field. The store is left unchanged; the caller may re-submit.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Reason)
}

// NotFoundError rejects an operation referencing an unknown id.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

// InvalidTransitionError rejects a lifecycle move that would go backward in
// the ordered stage list.
type InvalidTransitionError struct {
	From constants.Stage
	To   constants.Stage
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid lifecycle transition %s -> %s", e.From, e.To)
}

// InvalidStageError rejects an approval decision made at the wrong stage of
// the chain, or against a terminal request.
type InvalidStageError struct {
	Stage  constants.ApprovalStage
	Status constants.RequestStatus
}

func (e *InvalidStageError) Error() string {
	return fmt.Sprintf("%s decision not allowed while request is %s", e.Stage, e.Status)
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

func IsInvalidTransition(err error) bool {
	var it *InvalidTransitionError
	return errors.As(err, &it)
}

func IsInvalidStage(err error) bool {
	var is *InvalidStageError
	return errors.As(err, &is)
}
