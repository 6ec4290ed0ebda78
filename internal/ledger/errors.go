package ledger

import (
	"errors"
	"fmt"

	"github.com/budget-steps/backend/internal/models"
)

// Failure kinds reported by the ledger. Every error returned by a ledger
// operation wraps exactly one of these or models.ErrGeneral.
var (
	ErrNotFound             = errors.New("not found")
	ErrInvalidRange         = errors.New("invalid range")
	ErrCrossBudgetReference = errors.New("cross-budget reference")
	ErrInvalidOperation     = errors.New("invalid operation")
)

func notFound(entity string, id uint) error {
	return fmt.Errorf("there is no %s with ID %d: %w", entity, id, ErrNotFound)
}

func crossBudget(entity string, id, budgetID uint) error {
	return fmt.Errorf("%s %d does not belong to budget %d: %w", entity, id, budgetID, ErrCrossBudgetReference)
}

func invalid(format string, a ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, a...), ErrInvalidOperation)
}

// lookupError translates errors from resolving a referenced row by ID.
func lookupError(err error, entity string, id uint) error {
	if errors.Is(err, models.ErrResourceNotFound) {
		return notFound(entity, id)
	}

	return err
}

// writeError translates constraint violations reported by the database on
// insert. The ledger checks all of them before writing, so these only occur
// when a row changed between the check and the insert.
func writeError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, models.ErrAmountNotPositive), errors.Is(err, models.ErrAmountPrecision), errors.Is(err, models.ErrTransferSameAccount):
		return fmt.Errorf("%w: %w", ErrInvalidOperation, err)
	case errors.Is(err, models.ErrStepDatesOrder):
		return fmt.Errorf("%w: %w", ErrInvalidRange, err)
	case errors.Is(err, models.ErrBudgetShareRoleUnknown), errors.Is(err, models.ErrBudgetShareNotUnique):
		return fmt.Errorf("%w: %w", ErrInvalidOperation, err)
	case errors.Is(err, models.ErrReference):
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}

	return err
}
