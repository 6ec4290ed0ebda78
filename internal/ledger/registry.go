package ledger

import (
	"context"
	"errors"
	"strings"

	"github.com/budget-steps/backend/internal/models"
	"github.com/rs/zerolog/log"
	"github.com/ryanuber/go-glob"
	"golang.org/x/text/currency"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// normalizeCurrency returns the upper case ISO 4217 code for s.
func normalizeCurrency(s string) (string, error) {
	code := strings.ToUpper(strings.TrimSpace(s))

	unit, err := currency.ParseISO(code)
	if err != nil {
		return "", invalid("%q is not an ISO 4217 currency code", s)
	}

	return unit.String(), nil
}

func validName(entity, name string) error {
	if strings.TrimSpace(name) == "" {
		return invalid("the %s name must not be empty", entity)
	}

	return nil
}

// BudgetCreate contains the values for a new budget.
type BudgetCreate struct {
	OwnerUserID uint
	Name        string
	Currency    string
}

// CreateBudget creates a new budget.
func (l *Ledger) CreateBudget(ctx context.Context, create BudgetCreate) (models.Budget, error) {
	err := validName("budget", create.Name)
	if err != nil {
		return models.Budget{}, err
	}

	code, err := normalizeCurrency(create.Currency)
	if err != nil {
		return models.Budget{}, err
	}

	budget := models.Budget{
		OwnerUserID: create.OwnerUserID,
		Name:        create.Name,
		Currency:    code,
	}

	err = l.db.WithContext(ctx).Create(&budget).Error
	if err != nil {
		return models.Budget{}, writeError(err)
	}

	log.Debug().Uint("budget", budget.ID).Uint("owner", budget.OwnerUserID).Msg("budget created")
	return budget, nil
}

// GetBudget returns the budget with the given ID.
func (l *Ledger) GetBudget(ctx context.Context, id uint) (models.Budget, error) {
	var budget models.Budget
	err := l.db.WithContext(ctx).First(&budget, id).Error
	if err != nil {
		return models.Budget{}, lookupError(err, "budget", id)
	}

	return budget, nil
}

// ReferenceFilter restricts the resources returned by list queries.
type ReferenceFilter struct {
	// BudgetID only returns resources of this budget
	BudgetID *uint

	// VisibleBudgets only returns resources of these budgets. A nil
	// slice does not restrict the result, an empty one returns nothing.
	VisibleBudgets []uint

	// Name is a glob pattern matched against the name, "*" is the wildcard
	Name string
}

// scope applies the budget restrictions of the filter. The column holding
// the budget ID is passed in since budgets filter on their own ID.
func (f ReferenceFilter) scope(column string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if f.BudgetID != nil {
			db = db.Where(clause.Eq{Column: clause.Column{Name: column}, Value: *f.BudgetID})
		}

		if f.VisibleBudgets != nil {
			db = db.Where(clause.IN{Column: clause.Column{Name: column}, Values: toAny(f.VisibleBudgets)})
		}

		return db.Order("id DESC")
	}
}

func (f ReferenceFilter) matches(name string) bool {
	return f.Name == "" || glob.Glob(f.Name, name)
}

// empty reports whether the filter can never match anything.
func (f ReferenceFilter) empty() bool {
	return f.VisibleBudgets != nil && len(f.VisibleBudgets) == 0
}

func toAny(ids []uint) []any {
	values := make([]any, 0, len(ids))
	for _, id := range ids {
		values = append(values, id)
	}

	return values
}

// filterNames drops all resources whose name does not match the filter.
func filterNames[R any](resources []R, filter ReferenceFilter, name func(R) string) []R {
	if filter.Name == "" {
		return resources
	}

	matching := make([]R, 0, len(resources))
	for _, r := range resources {
		if filter.matches(name(r)) {
			matching = append(matching, r)
		}
	}

	return matching
}

// ListBudgets returns budgets ordered by descending ID.
func (l *Ledger) ListBudgets(ctx context.Context, filter ReferenceFilter) ([]models.Budget, error) {
	budgets := make([]models.Budget, 0)
	if filter.empty() {
		return budgets, nil
	}

	err := l.db.WithContext(ctx).Scopes(filter.scope("id")).Find(&budgets).Error
	if err != nil {
		return nil, err
	}

	return filterNames(budgets, filter, func(b models.Budget) string { return b.Name }), nil
}

// ShareBudget grants a user a role on a budget. An existing share of the
// user is updated to the new role.
func (l *Ledger) ShareBudget(ctx context.Context, budgetID, userID uint, role models.Role) (models.BudgetShare, error) {
	if !role.Valid() {
		return models.BudgetShare{}, invalid("role %q is not one of viewer, editor", role)
	}

	var share models.BudgetShare
	err := l.transaction(ctx, func(tx *gorm.DB) error {
		budget, err := l.lockBudget(tx, budgetID)
		if err != nil {
			return err
		}

		if budget.OwnerUserID == userID {
			return invalid("user %d owns budget %d and cannot be granted a share", userID, budgetID)
		}

		err = tx.Where(&models.BudgetShare{BudgetID: budgetID, UserID: userID}).First(&share).Error
		if err != nil && !errors.Is(err, models.ErrResourceNotFound) {
			return err
		}

		if share.ID != 0 {
			share.Role = role
			return writeError(tx.Model(&share).Update("role", role).Error)
		}

		share = models.BudgetShare{
			BudgetID: budgetID,
			UserID:   userID,
			Role:     role,
		}
		return writeError(tx.Omit(clause.Associations).Create(&share).Error)
	})
	if err != nil {
		return models.BudgetShare{}, err
	}

	return share, nil
}

// AccountCreate contains the values for a new account.
//
// An empty currency defaults to the currency of the budget.
type AccountCreate struct {
	BudgetID uint
	Name     string
	Currency string
}

// CreateAccount creates a new account for a budget.
func (l *Ledger) CreateAccount(ctx context.Context, create AccountCreate) (models.Account, error) {
	err := validName("account", create.Name)
	if err != nil {
		return models.Account{}, err
	}

	var code string
	if create.Currency != "" {
		code, err = normalizeCurrency(create.Currency)
		if err != nil {
			return models.Account{}, err
		}
	}

	account := models.Account{
		BudgetID: create.BudgetID,
		Name:     create.Name,
		Currency: code,
	}

	err = l.transaction(ctx, func(tx *gorm.DB) error {
		budget, err := l.lockBudget(tx, create.BudgetID)
		if err != nil {
			return err
		}

		if account.Currency == "" {
			account.Currency = budget.Currency
		}

		return writeError(tx.Omit(clause.Associations).Create(&account).Error)
	})
	if err != nil {
		return models.Account{}, err
	}

	return account, nil
}

// GetAccount returns the account with the given ID.
func (l *Ledger) GetAccount(ctx context.Context, id uint) (models.Account, error) {
	var account models.Account
	err := l.db.WithContext(ctx).First(&account, id).Error
	if err != nil {
		return models.Account{}, lookupError(err, "account", id)
	}

	return account, nil
}

// ListAccounts returns accounts ordered by descending ID.
func (l *Ledger) ListAccounts(ctx context.Context, filter ReferenceFilter) ([]models.Account, error) {
	accounts := make([]models.Account, 0)
	if filter.empty() {
		return accounts, nil
	}

	err := l.db.WithContext(ctx).Scopes(filter.scope("budget_id")).Find(&accounts).Error
	if err != nil {
		return nil, err
	}

	return filterNames(accounts, filter, func(a models.Account) string { return a.Name }), nil
}

// SetAccountArchived archives or unarchives an account.
//
// Operations already recorded for the account are not touched.
// Archived accounts cannot be used for new operations.
func (l *Ledger) SetAccountArchived(ctx context.Context, id uint, archived bool) (models.Account, error) {
	var account models.Account
	err := l.transaction(ctx, func(tx *gorm.DB) error {
		err := tx.First(&account, id).Error
		if err != nil {
			return lookupError(err, "account", id)
		}

		account.Archived = archived
		return tx.Model(&account).Update("archived", archived).Error
	})
	if err != nil {
		return models.Account{}, err
	}

	log.Debug().Uint("account", id).Bool("archived", archived).Msg("account archive state changed")
	return account, nil
}

// CategoryCreate contains the values for a new category.
type CategoryCreate struct {
	BudgetID uint
	Name     string
}

// CreateCategory creates a new category for a budget.
func (l *Ledger) CreateCategory(ctx context.Context, create CategoryCreate) (models.Category, error) {
	err := validName("category", create.Name)
	if err != nil {
		return models.Category{}, err
	}

	category := models.Category{
		BudgetID: create.BudgetID,
		Name:     create.Name,
	}

	err = l.transaction(ctx, func(tx *gorm.DB) error {
		_, err := l.lockBudget(tx, create.BudgetID)
		if err != nil {
			return err
		}

		return writeError(tx.Omit(clause.Associations).Create(&category).Error)
	})
	if err != nil {
		return models.Category{}, err
	}

	return category, nil
}

// GetCategory returns the category with the given ID.
func (l *Ledger) GetCategory(ctx context.Context, id uint) (models.Category, error) {
	var category models.Category
	err := l.db.WithContext(ctx).First(&category, id).Error
	if err != nil {
		return models.Category{}, lookupError(err, "category", id)
	}

	return category, nil
}

// ListCategories returns categories ordered by descending ID.
func (l *Ledger) ListCategories(ctx context.Context, filter ReferenceFilter) ([]models.Category, error) {
	categories := make([]models.Category, 0)
	if filter.empty() {
		return categories, nil
	}

	err := l.db.WithContext(ctx).Scopes(filter.scope("budget_id")).Find(&categories).Error
	if err != nil {
		return nil, err
	}

	return filterNames(categories, filter, func(c models.Category) string { return c.Name }), nil
}
