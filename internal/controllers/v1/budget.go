package v1

import (
	"net/http"

	"github.com/budget-steps/backend/internal/httputil"
	"github.com/budget-steps/backend/internal/identity"
	"github.com/budget-steps/backend/internal/ledger"
	"github.com/budget-steps/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterBudgetRoutes registers the routes for budgets with
// the RouterGroup that is passed.
func (co Controller) RegisterBudgetRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", co.OptionsBudgetList)
		r.GET("", co.GetBudgets)
		r.POST("", co.CreateBudget)
	}

	// Budget with ID
	{
		r.OPTIONS("/:id", co.OptionsBudgetDetail)
		r.GET("/:id", co.GetBudget)
		r.OPTIONS("/:id/shares", co.OptionsBudgetShares)
		r.POST("/:id/shares", co.ShareBudget)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Router			/v1/budgets [options]
func (co Controller) OptionsBudgetList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		uint	true	"ID of the budget"
// @Router			/v1/budgets/{id} [options]
func (co Controller) OptionsBudgetDetail(c *gin.Context) {
	id, err := bindID(c)
	if err != nil {
		code, e := failure(c, err)
		c.JSON(code, httpError{Error: *e})
		return
	}

	_, err = co.ledger.GetBudget(c.Request.Context(), id)
	if err != nil {
		code, e := failure(c, err)
		c.JSON(code, httpError{Error: *e})
		return
	}

	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Param			id	path	uint	true	"ID of the budget"
// @Router			/v1/budgets/{id}/shares [options]
func (co Controller) OptionsBudgetShares(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Create budget
// @Description	Creates a new budget. The user of the request owns it.
// @Tags			Budgets
// @Accept			json
// @Produce		json
// @Success		201		{object}	BudgetResponse
// @Failure		400		{object}	BudgetResponse
// @Failure		500		{object}	BudgetResponse
// @Param			budget	body		BudgetEditable	true	"Budget"
// @Router			/v1/budgets [post]
func (co Controller) CreateBudget(c *gin.Context) {
	var editable BudgetEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		code, e := failure(c, err)
		c.JSON(code, BudgetResponse{Error: e})
		return
	}

	owner := editable.OwnerUserID
	if user := identity.User(c); user != nil {
		owner = *user
	}

	if owner == 0 {
		code, e := failure(c, errOwnerNotSet)
		c.JSON(code, BudgetResponse{Error: e})
		return
	}

	budget, err := co.ledger.CreateBudget(c.Request.Context(), ledger.BudgetCreate{
		OwnerUserID: owner,
		Name:        editable.Name,
		Currency:    editable.Currency,
	})
	if err != nil {
		code, e := failure(c, err)
		c.JSON(code, BudgetResponse{Error: e})
		return
	}

	data := newBudget(c, budget)
	c.JSON(http.StatusCreated, BudgetResponse{Data: &data})
}

// @Summary		List budgets
// @Description	Returns all budgets the user can read, the newest first
// @Tags			Budgets
// @Produce		json
// @Success		200		{object}	BudgetListResponse
// @Failure		400		{object}	BudgetListResponse
// @Failure		500		{object}	BudgetListResponse
// @Param			name	query		string	false	"Filter by name, * matches any text"
// @Router			/v1/budgets [get]
func (co Controller) GetBudgets(c *gin.Context) {
	var query BudgetQueryFilter
	err := httputil.BindQuery(c, &query)
	if err != nil {
		code, e := failure(c, err)
		c.JSON(code, BudgetListResponse{Error: e})
		return
	}

	filter, err := co.filter(c, nil, query.Name)
	if err != nil {
		code, e := failure(c, err)
		c.JSON(code, BudgetListResponse{Error: e})
		return
	}

	budgets, err := co.ledger.ListBudgets(c.Request.Context(), filter)
	if err != nil {
		code, e := failure(c, err)
		c.JSON(code, BudgetListResponse{Error: e})
		return
	}

	data := make([]Budget, 0, len(budgets))
	for _, b := range budgets {
		data = append(data, newBudget(c, b))
	}

	c.JSON(http.StatusOK, BudgetListResponse{Data: data})
}

// @Summary		Get budget
// @Description	Returns a specific budget
// @Tags			Budgets
// @Produce		json
// @Success		200	{object}	BudgetResponse
// @Failure		400	{object}	BudgetResponse
// @Failure		403	{object}	BudgetResponse
// @Failure		404	{object}	BudgetResponse
// @Failure		500	{object}	BudgetResponse
// @Param			id	path		uint	true	"ID of the budget"
// @Router			/v1/budgets/{id} [get]
func (co Controller) GetBudget(c *gin.Context) {
	id, err := bindID(c)
	if err != nil {
		code, e := failure(c, err)
		c.JSON(code, BudgetResponse{Error: e})
		return
	}

	budget, err := co.ledger.GetBudget(c.Request.Context(), id)
	if err != nil {
		code, e := failure(c, err)
		c.JSON(code, BudgetResponse{Error: e})
		return
	}

	err = co.require(c, budget.ID, models.RoleViewer)
	if err != nil {
		code, e := failure(c, err)
		c.JSON(code, BudgetResponse{Error: e})
		return
	}

	data := newBudget(c, budget)
	c.JSON(http.StatusOK, BudgetResponse{Data: &data})
}

// @Summary		Share budget
// @Description	Grants a user a role on the budget. An existing share of the user is updated.
// @Tags			Budgets
// @Accept			json
// @Produce		json
// @Success		200		{object}	BudgetShareResponse
// @Failure		400		{object}	BudgetShareResponse
// @Failure		403		{object}	BudgetShareResponse
// @Failure		404		{object}	BudgetShareResponse
// @Failure		500		{object}	BudgetShareResponse
// @Param			id		path		uint				true	"ID of the budget"
// @Param			share	body		BudgetShareEditable	true	"Share"
// @Router			/v1/budgets/{id}/shares [post]
func (co Controller) ShareBudget(c *gin.Context) {
	id, err := bindID(c)
	if err != nil {
		code, e := failure(c, err)
		c.JSON(code, BudgetShareResponse{Error: e})
		return
	}

	var editable BudgetShareEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		code, e := failure(c, err)
		c.JSON(code, BudgetShareResponse{Error: e})
		return
	}

	err = co.require(c, id, models.RoleEditor)
	if err != nil {
		code, e := failure(c, err)
		c.JSON(code, BudgetShareResponse{Error: e})
		return
	}

	share, err := co.ledger.ShareBudget(c.Request.Context(), id, editable.UserID, editable.Role)
	if err != nil {
		code, e := failure(c, err)
		c.JSON(code, BudgetShareResponse{Error: e})
		return
	}

	c.JSON(http.StatusOK, BudgetShareResponse{Data: &BudgetShare{
		DefaultModel: share.DefaultModel,
		BudgetID:     share.BudgetID,
		BudgetShareEditable: BudgetShareEditable{
			UserID: share.UserID,
			Role:   share.Role,
		},
	}})
}
