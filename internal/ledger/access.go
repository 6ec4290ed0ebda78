package ledger

import (
	"context"
	"errors"

	"github.com/budget-steps/backend/internal/models"
)

// Role returns the role a user holds on a budget. Owners hold the editor
// role. ok is false when the user has no access at all.
func (l *Ledger) Role(ctx context.Context, budgetID, userID uint) (role models.Role, ok bool, err error) {
	budget, err := l.GetBudget(ctx, budgetID)
	if err != nil {
		return "", false, err
	}

	if budget.OwnerUserID == userID {
		return models.RoleEditor, true, nil
	}

	var share models.BudgetShare
	err = l.db.WithContext(ctx).Where(&models.BudgetShare{BudgetID: budgetID, UserID: userID}).First(&share).Error
	if errors.Is(err, models.ErrResourceNotFound) {
		return "", false, nil
	} else if err != nil {
		return "", false, err
	}

	return share.Role, true, nil
}

// VisibleBudgets returns the IDs of all budgets a user owns or has been
// granted a share on, in ascending order.
func (l *Ledger) VisibleBudgets(ctx context.Context, userID uint) ([]uint, error) {
	ids := make([]uint, 0)
	err := l.db.WithContext(ctx).
		Model(&models.Budget{}).
		Where("owner_user_id = ?", userID).
		Or("id IN (?)", l.db.Model(&models.BudgetShare{}).Select("budget_id").Where("user_id = ?", userID)).
		Order("id ASC").
		Pluck("id", &ids).Error
	if err != nil {
		return nil, err
	}

	return ids, nil
}
