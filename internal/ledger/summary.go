package ledger

import (
	"context"

	"github.com/budget-steps/backend/internal/models"
	"github.com/shopspring/decimal"
)

// Summary contains the totals of the actual operations of a step.
// Transfers are neither income nor expense and are not counted.
type Summary struct {
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
	Net          decimal.Decimal
}

// Summarize computes the totals of the actual operations of a step.
func (l *Ledger) Summarize(ctx context.Context, stepID uint) (Summary, error) {
	_, err := l.GetStep(ctx, stepID)
	if err != nil {
		return Summary{}, err
	}

	// Totals are added with decimal to stay exact
	var operations []models.Operation
	err = l.db.WithContext(ctx).
		Select("sign", "amount").
		Where(&models.Operation{StepID: stepID, Kind: models.KindActual}).
		Where("sign IN ?", []models.Sign{models.SignIncome, models.SignExpense}).
		Find(&operations).Error
	if err != nil {
		return Summary{}, err
	}

	income, expense := decimal.Zero, decimal.Zero
	for _, o := range operations {
		if o.Sign == models.SignIncome {
			income = income.Add(o.Amount)
		} else {
			expense = expense.Add(o.Amount)
		}
	}

	return Summary{
		TotalIncome:  income,
		TotalExpense: expense,
		Net:          income.Sub(expense),
	}, nil
}
