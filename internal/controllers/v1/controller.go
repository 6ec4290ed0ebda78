// Package v1 implements the v1 HTTP API of the ledger.
package v1

import (
	"github.com/budget-steps/backend/internal/httputil"
	"github.com/budget-steps/backend/internal/identity"
	"github.com/budget-steps/backend/internal/ledger"
	"github.com/budget-steps/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// Controller holds the dependencies of all handlers.
type Controller struct {
	ledger *ledger.Ledger
	auth   *identity.Authorizer
}

func New(l *ledger.Ledger, auth *identity.Authorizer) Controller {
	return Controller{
		ledger: l,
		auth:   auth,
	}
}

// RegisterRoutes registers the routes for all resources with
// the RouterGroup that is passed.
func (co Controller) RegisterRoutes(r *gin.RouterGroup) {
	co.RegisterBudgetRoutes(r.Group("/budgets"))
	co.RegisterStepRoutes(r.Group("/steps"))
	co.RegisterAccountRoutes(r.Group("/accounts"))
	co.RegisterCategoryRoutes(r.Group("/categories"))
	co.RegisterOperationRoutes(r.Group("/operations"))
}

// require checks that the user of the request holds role on the budget.
func (co Controller) require(c *gin.Context, budgetID uint, role models.Role) error {
	return co.auth.Require(c.Request.Context(), identity.User(c), budgetID, role)
}

// filter returns the reference filter for list requests of the user.
func (co Controller) filter(c *gin.Context, budgetID *uint, name string) (ledger.ReferenceFilter, error) {
	visible, err := co.auth.Visible(c.Request.Context(), identity.User(c))
	if err != nil {
		return ledger.ReferenceFilter{}, err
	}

	return ledger.ReferenceFilter{
		BudgetID:       budgetID,
		VisibleBudgets: visible,
		Name:           name,
	}, nil
}

func baseURL(c *gin.Context) string {
	return c.GetString(httputil.ContextURL)
}
