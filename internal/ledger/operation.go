package ledger

import (
	"context"
	"time"

	"github.com/budget-steps/backend/internal/models"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// maxAmount is the smallest amount with more than 16 integer digits.
var maxAmount = decimal.New(1, 16)

// OperationCreate contains the values for a new operation.
//
// The budget of the operation is always the budget of its step.
type OperationCreate struct {
	StepID       uint
	Kind         models.Kind
	Movement     Movement
	Amount       decimal.Decimal
	Currency     string
	Date         *time.Time // defaults to the current time
	CategoryID   *uint
	Comment      *string
	PlannedRefID *uint // the planned operation this realizes, ignored for planned operations
	CreatedBy    *uint
}

// ValidateAmount checks an amount of a new operation. It is the only check
// that runs before the step of the operation is resolved.
func ValidateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return invalid("the amount must be positive, got %s", amount)
	}

	if !amount.Equal(amount.Round(2)) {
		return invalid("the amount %s has more than two fractional digits", amount)
	}

	if amount.GreaterThanOrEqual(maxAmount) {
		return invalid("the amount %s is too large", amount)
	}

	return nil
}

// model validates the remaining input and builds the row for the step.
func (o OperationCreate) model(step models.Step) (models.Operation, error) {
	if !o.Kind.Valid() {
		return models.Operation{}, invalid("kind %q is not one of planned, actual", o.Kind)
	}

	code, err := normalizeCurrency(o.Currency)
	if err != nil {
		return models.Operation{}, err
	}

	err = validateMovement(o.Movement)
	if err != nil {
		return models.Operation{}, err
	}

	accountID, accountIDTo := o.Movement.accounts()

	operation := models.Operation{
		BudgetID:     step.BudgetID,
		StepID:       step.ID,
		Kind:         o.Kind,
		Sign:         o.Movement.Sign(),
		Amount:       o.Amount,
		Currency:     code,
		AccountID:    accountID,
		AccountIDTo:  accountIDTo,
		CategoryID:   o.CategoryID,
		Comment:      o.Comment,
		PlannedRefID: o.PlannedRefID,
		CreatedBy:    o.CreatedBy,
	}

	// Only actual operations realize a planned one
	if o.Kind == models.KindPlanned {
		operation.PlannedRefID = nil
	}

	if o.Date != nil {
		operation.Date = *o.Date
	}

	return operation, nil
}

// references resolves the rows an operation points to inside a
// transaction and checks that they belong to the budget.
//
// Rows that were already checked are not read again.
type references struct {
	l          *Ledger
	tx         *gorm.DB
	budgetID   uint
	accounts   map[uint]bool
	categories map[uint]bool
}

func (l *Ledger) references(tx *gorm.DB, budgetID uint) *references {
	return &references{
		l:          l,
		tx:         tx,
		budgetID:   budgetID,
		accounts:   make(map[uint]bool),
		categories: make(map[uint]bool),
	}
}

// account checks that an account exists, belongs to the budget and is
// not archived.
func (r *references) account(id uint) error {
	if r.accounts[id] {
		return nil
	}

	var account models.Account
	err := r.l.lock(r.tx).First(&account, id).Error
	if err != nil {
		return lookupError(err, "account", id)
	}

	if account.BudgetID != r.budgetID {
		return crossBudget("account", id, r.budgetID)
	}

	if account.Archived {
		return invalid("account %d is archived", id)
	}

	r.accounts[id] = true
	return nil
}

// movement checks all accounts of an operation.
func (r *references) movement(accountID uint, accountIDTo *uint) error {
	err := r.account(accountID)
	if err != nil {
		return err
	}

	if accountIDTo == nil {
		return nil
	}

	return r.account(*accountIDTo)
}

// category checks that a category exists and belongs to the budget.
func (r *references) category(id *uint) error {
	if id == nil || r.categories[*id] {
		return nil
	}

	var category models.Category
	err := r.l.lock(r.tx).First(&category, *id).Error
	if err != nil {
		return lookupError(err, "category", *id)
	}

	if category.BudgetID != r.budgetID {
		return crossBudget("category", *id, r.budgetID)
	}

	r.categories[*id] = true
	return nil
}

// plannedRef checks that the operation an actual operation realizes is
// a planned operation of the same step.
func (r *references) plannedRef(id *uint, stepID uint) error {
	if id == nil {
		return nil
	}

	var planned models.Operation
	err := r.l.lock(r.tx).First(&planned, *id).Error
	if err != nil {
		return lookupError(err, "planned operation", *id)
	}

	if planned.Kind != models.KindPlanned {
		return invalid("operation %d is %s, not planned", *id, planned.Kind)
	}

	if planned.StepID != stepID {
		return invalid("planned operation %d belongs to step %d, not step %d", *id, planned.StepID, stepID)
	}

	return nil
}

// CreateOperation validates and records a single operation.
func (l *Ledger) CreateOperation(ctx context.Context, create OperationCreate) (models.Operation, error) {
	err := ValidateAmount(create.Amount)
	if err != nil {
		return models.Operation{}, err
	}

	var operation models.Operation
	err = l.transaction(ctx, func(tx *gorm.DB) error {
		step, err := l.lockStep(tx, create.StepID)
		if err != nil {
			return err
		}

		operation, err = create.model(step)
		if err != nil {
			return err
		}

		refs := l.references(tx, step.BudgetID)

		err = refs.movement(operation.AccountID, operation.AccountIDTo)
		if err != nil {
			return err
		}

		err = refs.category(operation.CategoryID)
		if err != nil {
			return err
		}

		err = refs.plannedRef(operation.PlannedRefID, step.ID)
		if err != nil {
			return err
		}

		return writeError(tx.Omit(clause.Associations).Create(&operation).Error)
	})
	if err != nil {
		return models.Operation{}, err
	}

	operationsCreated.WithLabelValues(string(operation.Kind), string(operation.Sign)).Inc()
	log.Debug().
		Uint("operation", operation.ID).
		Uint("step", operation.StepID).
		Str("kind", string(operation.Kind)).
		Str("sign", string(operation.Sign)).
		Str("amount", operation.Amount.StringFixed(2)).
		Msg("operation created")

	return operation, nil
}

// GetOperation returns the operation with the given ID.
func (l *Ledger) GetOperation(ctx context.Context, id uint) (models.Operation, error) {
	var operation models.Operation
	err := l.db.WithContext(ctx).First(&operation, id).Error
	if err != nil {
		return models.Operation{}, lookupError(err, "operation", id)
	}

	return operation, nil
}

// OperationFilter selects the operations of a step.
type OperationFilter struct {
	StepID uint
	Kind   *models.Kind
}

func (l *Ledger) operations(ctx context.Context, filter OperationFilter, order string) ([]models.Operation, error) {
	if filter.Kind != nil && !filter.Kind.Valid() {
		return nil, invalid("kind %q is not one of planned, actual", *filter.Kind)
	}

	_, err := l.GetStep(ctx, filter.StepID)
	if err != nil {
		return nil, err
	}

	query := l.db.WithContext(ctx).Where(&models.Operation{StepID: filter.StepID})
	if filter.Kind != nil {
		query = query.Where(&models.Operation{Kind: *filter.Kind})
	}

	operations := make([]models.Operation, 0)
	err = query.Order(order).Find(&operations).Error
	if err != nil {
		return nil, err
	}

	return operations, nil
}

// ListOperations returns the operations of a step in the order they were
// created.
func (l *Ledger) ListOperations(ctx context.Context, filter OperationFilter) ([]models.Operation, error) {
	return l.operations(ctx, filter, "id ASC")
}

// Feed returns the operations of a step, the most recently created first.
func (l *Ledger) Feed(ctx context.Context, filter OperationFilter) ([]models.Operation, error) {
	return l.operations(ctx, filter, "created_at DESC, id DESC")
}
