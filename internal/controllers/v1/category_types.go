package v1

import (
	"fmt"

	"github.com/budget-steps/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// CategoryEditable represents all user configurable parameters
type CategoryEditable struct {
	BudgetID uint   `json:"budgetId" example:"3" binding:"required"`             // ID of the budget the category belongs to
	Name     string `json:"name" example:"Groceries" binding:"required,max=100"` // Name of the category
}

type CategoryLinks struct {
	Self   string `json:"self" example:"https://example.com/api/v1/categories/8"` // The category itself
	Budget string `json:"budget" example:"https://example.com/api/v1/budgets/3"`  // The budget of the category
}

type Category struct {
	models.DefaultModel
	CategoryEditable
	Links CategoryLinks `json:"links"`
}

func newCategory(c *gin.Context, model models.Category) Category {
	url := baseURL(c)

	return Category{
		DefaultModel: model.DefaultModel,
		CategoryEditable: CategoryEditable{
			BudgetID: model.BudgetID,
			Name:     model.Name,
		},
		Links: CategoryLinks{
			Self:   fmt.Sprintf("%s/v1/categories/%d", url, model.ID),
			Budget: fmt.Sprintf("%s/v1/budgets/%d", url, model.BudgetID),
		},
	}
}

type CategoryListResponse struct {
	Data  []Category `json:"data"`                                                    // List of categories
	Error *string    `json:"error" example:"there is no budget with ID 4: not found"` // The error, if any occurred
}

type CategoryResponse struct {
	Data  *Category `json:"data"`                                                      // Data for the category
	Error *string   `json:"error" example:"there is no category with ID 8: not found"` // The error, if any occurred
}
