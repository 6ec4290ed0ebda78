package v1

import (
	"fmt"

	"github.com/budget-steps/backend/internal/ledger"
	"github.com/budget-steps/backend/internal/models"
	"github.com/budget-steps/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// StepEditable represents all user configurable parameters
type StepEditable struct {
	BudgetID    uint               `json:"budgetId" example:"3" binding:"required"`           // ID of the budget the step belongs to
	Granularity models.Granularity `json:"granularity" example:"month"`                       // One of day, week, month, year
	Name        string             `json:"name" example:"January" binding:"required,max=100"` // Name of the step
	DateStart   types.Date         `json:"dateStart" example:"2025-01-01"`                    // First day of the step
	DateEnd     types.Date         `json:"dateEnd" example:"2025-01-31"`                      // Last day of the step
}

func (editable StepEditable) model() ledger.StepCreate {
	return ledger.StepCreate{
		BudgetID:    editable.BudgetID,
		Granularity: editable.Granularity,
		Name:        editable.Name,
		DateStart:   editable.DateStart,
		DateEnd:     editable.DateEnd,
	}
}

type StepLinks struct {
	Self        string `json:"self" example:"https://example.com/api/v1/steps/5"`                     // The step itself
	Operations  string `json:"operations" example:"https://example.com/api/v1/operations?step=5"`     // Operations of this step
	Feed        string `json:"feed" example:"https://example.com/api/v1/steps/5/feed"`                // Operations of this step, the most recent first
	Summary     string `json:"summary" example:"https://example.com/api/v1/steps/5/summary"`          // Totals of the actual operations of this step
	CopyPlanned string `json:"copyPlanned" example:"https://example.com/api/v1/steps/5/copy-planned"` // Endpoint to copy the planned operations to another step
}

type Step struct {
	models.DefaultModel
	StepEditable
	Links StepLinks `json:"links"`
}

func newStep(c *gin.Context, model models.Step) Step {
	url := baseURL(c)

	return Step{
		DefaultModel: model.DefaultModel,
		StepEditable: StepEditable{
			BudgetID:    model.BudgetID,
			Granularity: model.Granularity,
			Name:        model.Name,
			DateStart:   model.DateStart,
			DateEnd:     model.DateEnd,
		},
		Links: StepLinks{
			Self:        fmt.Sprintf("%s/v1/steps/%d", url, model.ID),
			Operations:  fmt.Sprintf("%s/v1/operations?step=%d", url, model.ID),
			Feed:        fmt.Sprintf("%s/v1/steps/%d/feed", url, model.ID),
			Summary:     fmt.Sprintf("%s/v1/steps/%d/summary", url, model.ID),
			CopyPlanned: fmt.Sprintf("%s/v1/steps/%d/copy-planned", url, model.ID),
		},
	}
}

type StepListResponse struct {
	Data  []Step  `json:"data"`                                                    // List of steps
	Error *string `json:"error" example:"there is no budget with ID 4: not found"` // The error, if any occurred
}

type StepResponse struct {
	Data  *Step   `json:"data"`                                                  // Data for the step
	Error *string `json:"error" example:"there is no step with ID 4: not found"` // The error, if any occurred
}

type StepQueryFilter struct {
	BudgetID uint `form:"budget"` // By ID of the budget. Required
}

type StepSummary struct {
	TotalIncome  decimal.Decimal `json:"totalIncome" example:"2500.3"`  // Sum of all actual income
	TotalExpense decimal.Decimal `json:"totalExpense" example:"100.15"` // Sum of all actual expenses
	Net          decimal.Decimal `json:"net" example:"2400.15"`         // Income minus expenses
}

type StepSummaryResponse struct {
	Data  *StepSummary `json:"data"`                                                  // Totals of the step
	Error *string      `json:"error" example:"there is no step with ID 4: not found"` // The error, if any occurred
}

type CopyPlannedEditable struct {
	TargetStepID uint `json:"targetStepId" example:"6" binding:"required"` // ID of the step to copy the planned operations to
}

type CopyPlanned struct {
	Copied int `json:"copied" example:"12"` // Number of copied operations
}

type CopyPlannedResponse struct {
	Data  *CopyPlanned `json:"data"`                                                  // Result of the copy
	Error *string      `json:"error" example:"there is no step with ID 4: not found"` // The error, if any occurred
}
