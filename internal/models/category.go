package models

import (
	"strings"

	"gorm.io/gorm"
)

// Category is a classification label for operations.
type Category struct {
	DefaultModel
	BudgetID uint   `gorm:"index;not null"`
	Budget   Budget `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Name     string `gorm:"size:100;not null"`
}

func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	return nil
}
