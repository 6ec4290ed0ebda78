package models

import (
	"strings"

	"gorm.io/gorm"
)

// Budget represents a budget
//
// A budget is the highest level of organization, all other
// resources reference it directly or transitively.
type Budget struct {
	DefaultModel
	OwnerUserID uint   `gorm:"index;not null"`
	Name        string `gorm:"size:200;not null"`
	Currency    string `gorm:"size:3;not null"`
}

// BeforeSave trims whitespace from the name and normalizes the currency code.
func (b *Budget) BeforeSave(_ *gorm.DB) error {
	b.Name = strings.TrimSpace(b.Name)
	b.Currency = strings.ToUpper(strings.TrimSpace(b.Currency))
	return nil
}

// Role is the access level a user holds on a budget.
type Role string

const (
	RoleViewer Role = "viewer"
	RoleEditor Role = "editor"
)

// Valid reports whether the role is known.
func (r Role) Valid() bool {
	return r == RoleViewer || r == RoleEditor
}

// Allows reports whether a user holding role r may act with role required.
func (r Role) Allows(required Role) bool {
	if required == RoleViewer {
		return r.Valid()
	}

	return r == RoleEditor
}

// BudgetShare grants a user other than the owner access to a budget.
type BudgetShare struct {
	DefaultModel
	BudgetID uint   `gorm:"uniqueIndex:budget_share_budget_user;not null"`
	Budget   Budget `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	UserID   uint   `gorm:"uniqueIndex:budget_share_budget_user;not null"`
	Role     Role   `gorm:"size:10;not null;check:budget_share_role_valid,role IN ('viewer', 'editor')"`
}
