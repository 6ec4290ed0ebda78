package ledger

import (
	"context"
	"fmt"
	"strings"

	"github.com/budget-steps/backend/internal/models"
	"github.com/budget-steps/backend/internal/types"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// StepCreate contains the values for a new step.
type StepCreate struct {
	BudgetID    uint
	Granularity models.Granularity
	Name        string
	DateStart   types.Date
	DateEnd     types.Date
}

func (s StepCreate) validate() error {
	if !s.Granularity.Valid() {
		return invalid("granularity %q is not one of day, week, month, year", s.Granularity)
	}

	if strings.TrimSpace(s.Name) == "" {
		return invalid("the step name must not be empty")
	}

	if s.DateStart.IsZero() || s.DateEnd.IsZero() {
		return fmt.Errorf("dateStart and dateEnd must both be set: %w", ErrInvalidRange)
	}

	if s.DateStart.After(s.DateEnd) {
		return fmt.Errorf("dateStart %s is after dateEnd %s: %w", s.DateStart, s.DateEnd, ErrInvalidRange)
	}

	return nil
}

// CreateStep creates a new step for a budget.
func (l *Ledger) CreateStep(ctx context.Context, create StepCreate) (models.Step, error) {
	err := create.validate()
	if err != nil {
		return models.Step{}, err
	}

	step := models.Step{
		BudgetID:    create.BudgetID,
		Granularity: create.Granularity,
		Name:        create.Name,
		DateStart:   create.DateStart,
		DateEnd:     create.DateEnd,
	}

	err = l.transaction(ctx, func(tx *gorm.DB) error {
		_, err := l.lockBudget(tx, create.BudgetID)
		if err != nil {
			return err
		}

		return writeError(tx.Omit(clause.Associations).Create(&step).Error)
	})
	if err != nil {
		return models.Step{}, err
	}

	l.steps.set(step)
	log.Debug().Uint("budget", step.BudgetID).Uint("step", step.ID).Str("granularity", string(step.Granularity)).Msg("step created")

	return step, nil
}

// GetStep returns the step with the given ID.
func (l *Ledger) GetStep(ctx context.Context, id uint) (models.Step, error) {
	if step, ok := l.steps.get(id); ok {
		return step, nil
	}

	var step models.Step
	err := l.db.WithContext(ctx).First(&step, id).Error
	if err != nil {
		return models.Step{}, lookupError(err, "step", id)
	}

	l.steps.set(step)
	return step, nil
}

// ListSteps returns all steps of a budget, the step starting last first.
// Steps starting on the same day are ordered by descending ID.
func (l *Ledger) ListSteps(ctx context.Context, budgetID uint) ([]models.Step, error) {
	_, err := l.GetBudget(ctx, budgetID)
	if err != nil {
		return nil, err
	}

	steps := make([]models.Step, 0)
	err = l.db.WithContext(ctx).
		Where(&models.Step{BudgetID: budgetID}).
		Order("date_start DESC, id DESC").
		Find(&steps).Error
	if err != nil {
		return nil, err
	}

	return steps, nil
}
