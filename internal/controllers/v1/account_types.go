package v1

import (
	"fmt"

	"github.com/budget-steps/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// AccountEditable represents all user configurable parameters
type AccountEditable struct {
	BudgetID uint   `json:"budgetId" example:"3" binding:"required"`            // ID of the budget the account belongs to
	Name     string `json:"name" example:"Checking" binding:"required,max=100"` // Name of the account
	Currency string `json:"currency" example:"EUR" binding:"omitempty,len=3"`   // ISO 4217 code of the currency. Defaults to the currency of the budget
}

type AccountLinks struct {
	Self   string `json:"self" example:"https://example.com/api/v1/accounts/2"`  // The account itself
	Budget string `json:"budget" example:"https://example.com/api/v1/budgets/3"` // The budget of the account
}

type Account struct {
	models.DefaultModel
	AccountEditable
	Archived bool         `json:"archived" example:"false"` // Archived accounts cannot be used for new operations
	Links    AccountLinks `json:"links"`
}

func newAccount(c *gin.Context, model models.Account) Account {
	url := baseURL(c)

	return Account{
		DefaultModel: model.DefaultModel,
		AccountEditable: AccountEditable{
			BudgetID: model.BudgetID,
			Name:     model.Name,
			Currency: model.Currency,
		},
		Archived: model.Archived,
		Links: AccountLinks{
			Self:   fmt.Sprintf("%s/v1/accounts/%d", url, model.ID),
			Budget: fmt.Sprintf("%s/v1/budgets/%d", url, model.BudgetID),
		},
	}
}

// AccountArchivedEditable is the only part of an account that can be updated.
type AccountArchivedEditable struct {
	Archived *bool `json:"archived" example:"true"` // Archive state of the account
}

type AccountListResponse struct {
	Data  []Account `json:"data"`                                                    // List of accounts
	Error *string   `json:"error" example:"there is no budget with ID 4: not found"` // The error, if any occurred
}

type AccountResponse struct {
	Data  *Account `json:"data"`                                                     // Data for the account
	Error *string  `json:"error" example:"there is no account with ID 2: not found"` // The error, if any occurred
}

type ReferenceQueryFilter struct {
	BudgetID uint   `form:"budget"` // By ID of the budget
	Name     string `form:"name"`   // By name, "*" matches any text
}

// budget returns the budget ID to filter by, nil when none is set.
func (f ReferenceQueryFilter) budget() *uint {
	if f.BudgetID == 0 {
		return nil
	}

	return &f.BudgetID
}
