package models

import (
	"strings"

	"gorm.io/gorm"
)

// Account represents a monetary container of a budget, e.g. a bank account.
type Account struct {
	DefaultModel
	BudgetID uint   `gorm:"index;not null"`
	Budget   Budget `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Name     string `gorm:"size:100;not null"`
	Currency string `gorm:"size:3;not null"`
	Archived bool   `gorm:"not null;default:false"`
}

// BeforeSave trims whitespace from all strings and normalizes the currency code.
func (a *Account) BeforeSave(_ *gorm.DB) error {
	a.Name = strings.TrimSpace(a.Name)
	a.Currency = strings.ToUpper(strings.TrimSpace(a.Currency))
	return nil
}
