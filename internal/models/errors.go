package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
	ErrReference        = errors.New("there is no resource for the ID you specified in the reference to another resource")
)

// Constraint violations reported by the database.
var (
	ErrAmountNotPositive      = errors.New("the amount must be positive")
	ErrAmountPrecision        = errors.New("the amount must be a whole number of cents that fits into 64 bits")
	ErrStepDatesOrder         = errors.New("the start date of a step must not be after its end date")
	ErrTransferSameAccount    = errors.New("source and destination accounts of a transfer must be different")
	ErrBudgetShareNotUnique   = errors.New("the user already has a share for this budget")
	ErrBudgetShareRoleUnknown = errors.New("the role of a budget share must be 'viewer' or 'editor'")
)
