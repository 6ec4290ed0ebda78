package ledger

import (
	"context"

	"github.com/budget-steps/backend/internal/models"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// copyBatchSize is the number of operations written per INSERT statement
// when copying. It stays well below the SQLite limit of bound parameters.
const copyBatchSize = 100

// CopyPlanned copies all planned operations of the source step to the
// target step and returns the number of copies.
//
// Copies are planned operations dated on the start of the target step.
// They do not reference a planned operation and have no creator. Either
// all operations are copied or none.
func (l *Ledger) CopyPlanned(ctx context.Context, sourceStepID, targetStepID uint) (int, error) {
	if sourceStepID == targetStepID {
		return 0, invalid("source and target step are both step %d", sourceStepID)
	}

	var copies []models.Operation
	err := l.transaction(ctx, func(tx *gorm.DB) error {
		source, err := l.lockStep(tx, sourceStepID)
		if err != nil {
			return err
		}

		target, err := l.lockStep(tx, targetStepID)
		if err != nil {
			return err
		}

		if source.BudgetID != target.BudgetID {
			return crossBudget("step", target.ID, source.BudgetID)
		}

		var planned []models.Operation
		err = tx.
			Where(&models.Operation{StepID: source.ID, Kind: models.KindPlanned}).
			Order("id ASC").
			Find(&planned).Error
		if err != nil {
			return err
		}

		if len(planned) == 0 {
			return nil
		}

		// Accounts may have been archived since the source operations
		// were recorded, so every copy is validated like a new operation.
		refs := l.references(tx, target.BudgetID)
		copies = make([]models.Operation, 0, len(planned))
		for _, o := range planned {
			err = refs.movement(o.AccountID, o.AccountIDTo)
			if err != nil {
				return err
			}

			err = refs.category(o.CategoryID)
			if err != nil {
				return err
			}

			copies = append(copies, models.Operation{
				BudgetID:    target.BudgetID,
				StepID:      target.ID,
				Kind:        models.KindPlanned,
				Sign:        o.Sign,
				Amount:      o.Amount,
				Currency:    o.Currency,
				Date:        target.DateStart.Time(),
				AccountID:   o.AccountID,
				AccountIDTo: o.AccountIDTo,
				CategoryID:  o.CategoryID,
				Comment:     o.Comment,
			})
		}

		return writeError(tx.Omit(clause.Associations).CreateInBatches(&copies, copyBatchSize).Error)
	})
	if err != nil {
		return 0, err
	}

	plannedCopied.Add(float64(len(copies)))
	log.Info().Uint("source", sourceStepID).Uint("target", targetStepID).Int("count", len(copies)).Msg("planned operations copied")

	return len(copies), nil
}
