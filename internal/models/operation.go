package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Kind distinguishes budgeted from realized operations.
type Kind string

const (
	KindPlanned Kind = "planned"
	KindActual  Kind = "actual"
)

// Valid reports whether the kind is known.
func (k Kind) Valid() bool {
	return k == KindPlanned || k == KindActual
}

// Sign is the direction of an operation.
type Sign string

const (
	SignIncome   Sign = "income"
	SignExpense  Sign = "expense"
	SignTransfer Sign = "transfer"
)

// Valid reports whether the sign is known.
func (s Sign) Valid() bool {
	switch s {
	case SignIncome, SignExpense, SignTransfer:
		return true
	}

	return false
}

// Operation is a single planned or actual monetary movement within a step.
//
// BudgetID is always the budget of the step. Operations are never updated
// after creation.
type Operation struct {
	DefaultModel
	BudgetID     uint            `gorm:"index;not null"`
	Budget       Budget          `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	StepID       uint            `gorm:"index:operation_step_kind;not null"`
	Step         Step            `json:"-" gorm:"constraint:OnDelete:RESTRICT"`
	Kind         Kind            `gorm:"index:operation_step_kind;size:7;not null"`
	Sign         Sign            `gorm:"size:8;not null"`
	Amount       decimal.Decimal `gorm:"type:BIGINT;serializer:cents;not null;check:amount_positive,amount > 0"`
	Currency     string          `gorm:"size:3;not null"`
	Date         time.Time       `gorm:"not null"`
	AccountID    uint            `gorm:"index;not null"`
	Account      Account         `json:"-" gorm:"constraint:OnDelete:RESTRICT"`
	AccountIDTo  *uint           `gorm:"index;check:transfer_accounts_different,account_id_to IS NULL OR account_id <> account_id_to"`
	AccountTo    *Account        `json:"-" gorm:"foreignKey:AccountIDTo;constraint:OnDelete:RESTRICT"`
	CategoryID   *uint           `gorm:"index"`
	Category     *Category       `json:"-" gorm:"constraint:OnDelete:SET NULL"`
	Comment      *string
	PlannedRefID *uint      `gorm:"index"`
	PlannedRef   *Operation `json:"-" gorm:"foreignKey:PlannedRefID;constraint:OnDelete:RESTRICT"`
	CreatedBy    *uint
}

// AfterFind updates the timestamps to use UTC as
// timezone, not +0000.
func (o *Operation) AfterFind(tx *gorm.DB) (err error) {
	err = o.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	o.Date = o.Date.In(time.UTC)
	return nil
}

// BeforeSave
//   - defaults the date to the current time and sets its timezone to UTC
//   - trims whitespace from the comment, an empty comment is stored as NULL
//   - normalizes the currency code
func (o *Operation) BeforeSave(_ *gorm.DB) (err error) {
	if o.Date.IsZero() {
		o.Date = time.Now().In(time.UTC)
	} else {
		o.Date = o.Date.In(time.UTC)
	}

	if o.Comment != nil {
		comment := strings.TrimSpace(*o.Comment)
		if comment == "" {
			o.Comment = nil
		} else {
			o.Comment = &comment
		}
	}

	o.Currency = strings.ToUpper(strings.TrimSpace(o.Currency))

	return nil
}
