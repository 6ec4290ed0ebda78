package v1

import (
	"fmt"

	"github.com/budget-steps/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// BudgetEditable represents all user configurable parameters
type BudgetEditable struct {
	Name        string `json:"name" example:"Household" binding:"required,max=200"` // Name of the budget
	Currency    string `json:"currency" example:"EUR" binding:"required,len=3"`     // ISO 4217 code of the currency of the budget
	OwnerUserID uint   `json:"ownerUserId" example:"7"`                             // Owner of the budget. Only used when the request does not identify a user
}

type BudgetLinks struct {
	Self       string `json:"self" example:"https://example.com/api/v1/budgets/3"`                 // The budget itself
	Steps      string `json:"steps" example:"https://example.com/api/v1/steps?budget=3"`           // Steps of this budget
	Accounts   string `json:"accounts" example:"https://example.com/api/v1/accounts?budget=3"`     // Accounts of this budget
	Categories string `json:"categories" example:"https://example.com/api/v1/categories?budget=3"` // Categories of this budget
	Shares     string `json:"shares" example:"https://example.com/api/v1/budgets/3/shares"`        // Endpoint to share this budget
}

type Budget struct {
	models.DefaultModel
	BudgetEditable
	Links BudgetLinks `json:"links"`
}

func newBudget(c *gin.Context, model models.Budget) Budget {
	url := baseURL(c)

	return Budget{
		DefaultModel: model.DefaultModel,
		BudgetEditable: BudgetEditable{
			Name:        model.Name,
			Currency:    model.Currency,
			OwnerUserID: model.OwnerUserID,
		},
		Links: BudgetLinks{
			Self:       fmt.Sprintf("%s/v1/budgets/%d", url, model.ID),
			Steps:      fmt.Sprintf("%s/v1/steps?budget=%d", url, model.ID),
			Accounts:   fmt.Sprintf("%s/v1/accounts?budget=%d", url, model.ID),
			Categories: fmt.Sprintf("%s/v1/categories?budget=%d", url, model.ID),
			Shares:     fmt.Sprintf("%s/v1/budgets/%d/shares", url, model.ID),
		},
	}
}

type BudgetListResponse struct {
	Data  []Budget `json:"data"`                                                                                // List of budgets
	Error *string  `json:"error" example:"the query string contains unparseable data. Please check the values"` // The error, if any occurred
}

type BudgetResponse struct {
	Data  *Budget `json:"data"`                                                    // Data for the budget
	Error *string `json:"error" example:"there is no budget with ID 4: not found"` // The error, if any occurred
}

type BudgetQueryFilter struct {
	Name string `form:"name"` // By name, "*" matches any text
}

// BudgetShareEditable represents all user configurable parameters
type BudgetShareEditable struct {
	UserID uint        `json:"userId" example:"9" binding:"required"`                        // User the budget is shared with
	Role   models.Role `json:"role" example:"viewer" binding:"required,oneof=viewer editor"` // Role of the user
}

type BudgetShare struct {
	models.DefaultModel
	BudgetShareEditable
	BudgetID uint `json:"budgetId" example:"3"` // ID of the shared budget
}

type BudgetShareResponse struct {
	Data  *BudgetShare `json:"data"`                                                    // Data for the budget share
	Error *string      `json:"error" example:"there is no budget with ID 4: not found"` // The error, if any occurred
}
