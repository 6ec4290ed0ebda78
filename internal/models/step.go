package models

import (
	"strings"

	"github.com/budget-steps/backend/internal/types"
	"gorm.io/gorm"
)

// Granularity is the nominal length of a step.
type Granularity string

const (
	GranularityDay   Granularity = "day"
	GranularityWeek  Granularity = "week"
	GranularityMonth Granularity = "month"
	GranularityYear  Granularity = "year"
)

// Valid reports whether the granularity is known.
func (g Granularity) Valid() bool {
	switch g {
	case GranularityDay, GranularityWeek, GranularityMonth, GranularityYear:
		return true
	}

	return false
}

// Step is a named, dated period of a budget.
//
// Steps are never updated after creation.
type Step struct {
	DefaultModel
	BudgetID    uint        `gorm:"index;not null"`
	Budget      Budget      `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Granularity Granularity `gorm:"size:5;not null"`
	Name        string      `gorm:"size:100;not null"`
	DateStart   types.Date  `gorm:"not null;check:step_dates_ordered,date_start <= date_end"`
	DateEnd     types.Date  `gorm:"not null"`
}

// BeforeSave trims whitespace from the name.
func (s *Step) BeforeSave(_ *gorm.DB) error {
	s.Name = strings.TrimSpace(s.Name)
	return nil
}
