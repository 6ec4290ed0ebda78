package v1

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/budget-steps/backend/internal/httputil"
	"github.com/budget-steps/backend/internal/ledger"
	"github.com/budget-steps/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterAccountRoutes registers the routes for accounts with
// the RouterGroup that is passed.
func (co Controller) RegisterAccountRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", co.OptionsAccountList)
		r.GET("", co.GetAccounts)
		r.POST("", co.CreateAccount)
	}

	// Account with ID
	{
		r.OPTIONS("/:id", co.OptionsAccountDetail)
		r.GET("/:id", co.GetAccount)
		r.PATCH("/:id", co.UpdateAccount)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Accounts
// @Success		204
// @Router			/v1/accounts [options]
func (co Controller) OptionsAccountList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Accounts
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		uint	true	"ID of the account"
// @Router			/v1/accounts/{id} [options]
func (co Controller) OptionsAccountDetail(c *gin.Context) {
	id, err := bindID(c)
	if err != nil {
		code, e := failure(c, err)
		c.JSON(code, httpError{Error: *e})
		return
	}

	_, err = co.ledger.GetAccount(c.Request.Context(), id)
	if err != nil {
		code, e := failure(c, err)
		c.JSON(code, httpError{Error: *e})
		return
	}

	httputil.OptionsGetPatch(c)
}

// @Summary		Create account
// @Description	Creates a new account for a budget
// @Tags			Accounts
// @Accept			json
// @Produce		json
// @Success		201		{object}	AccountResponse
// @Failure		400		{object}	AccountResponse
// @Failure		403		{object}	AccountResponse
// @Failure		404		{object}	AccountResponse
// @Failure		500		{object}	AccountResponse
// @Param			account	body		AccountEditable	true	"Account"
// @Router			/v1/accounts [post]
func (co Controller) CreateAccount(c *gin.Context) {
	var editable AccountEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		code, e := failure(c, err)
		c.JSON(code, AccountResponse{Error: e})
		return
	}

	err = co.require(c, editable.BudgetID, models.RoleEditor)
	if err != nil {
		code, e := failure(c, err)
		c.JSON(code, AccountResponse{Error: e})
		return
	}

	account, err := co.ledger.CreateAccount(c.Request.Context(), ledger.AccountCreate{
		BudgetID: editable.BudgetID,
		Name:     editable.Name,
		Currency: editable.Currency,
	})
	if err != nil {
		code, e := failure(c, err)
		c.JSON(code, AccountResponse{Error: e})
		return
	}

	data := newAccount(c, account)
	c.JSON(http.StatusCreated, AccountResponse{Data: &data})
}

// @Summary		List accounts
// @Description	Returns a list of accounts, the newest first
// @Tags			Accounts
// @Produce		json
// @Success		200		{object}	AccountListResponse
// @Failure		400		{object}	AccountListResponse
// @Failure		500		{object}	AccountListResponse
// @Param			budget	query		uint	false	"Filter by budget ID"
// @Param			name	query		string	false	"Filter by name, * matches any text"
// @Router			/v1/accounts [get]
func (co Controller) GetAccounts(c *gin.Context) {
	var query ReferenceQueryFilter
	err := httputil.BindQuery(c, &query)
	if err != nil {
		code, e := failure(c, err)
		c.JSON(code, AccountListResponse{Error: e})
		return
	}

	filter, err := co.filter(c, query.budget(), query.Name)
	if err != nil {
		code, e := failure(c, err)
		c.JSON(code, AccountListResponse{Error: e})
		return
	}

	accounts, err := co.ledger.ListAccounts(c.Request.Context(), filter)
	if err != nil {
		code, e := failure(c, err)
		c.JSON(code, AccountListResponse{Error: e})
		return
	}

	data := make([]Account, 0, len(accounts))
	for _, a := range accounts {
		data = append(data, newAccount(c, a))
	}

	c.JSON(http.StatusOK, AccountListResponse{Data: data})
}

// @Summary		Get account
// @Description	Returns a specific account
// @Tags			Accounts
// @Produce		json
// @Success		200	{object}	AccountResponse
// @Failure		400	{object}	AccountResponse
// @Failure		403	{object}	AccountResponse
// @Failure		404	{object}	AccountResponse
// @Failure		500	{object}	AccountResponse
// @Param			id	path		uint	true	"ID of the account"
// @Router			/v1/accounts/{id} [get]
func (co Controller) GetAccount(c *gin.Context) {
	id, err := bindID(c)
	if err != nil {
		code, e := failure(c, err)
		c.JSON(code, AccountResponse{Error: e})
		return
	}

	account, err := co.ledger.GetAccount(c.Request.Context(), id)
	if err != nil {
		code, e := failure(c, err)
		c.JSON(code, AccountResponse{Error: e})
		return
	}

	err = co.require(c, account.BudgetID, models.RoleViewer)
	if err != nil {
		code, e := failure(c, err)
		c.JSON(code, AccountResponse{Error: e})
		return
	}

	data := newAccount(c, account)
	c.JSON(http.StatusOK, AccountResponse{Data: &data})
}

// @Summary		Archive or unarchive account
// @Description	Updates the archive state of an account. No other field of an account can be changed.
// @Tags			Accounts
// @Accept			json
// @Produce		json
// @Success		200		{object}	AccountResponse
// @Failure		400		{object}	AccountResponse
// @Failure		403		{object}	AccountResponse
// @Failure		404		{object}	AccountResponse
// @Failure		500		{object}	AccountResponse
// @Param			id		path		uint					true	"ID of the account"
// @Param			account	body		AccountArchivedEditable	true	"Archive state"
// @Router			/v1/accounts/{id} [patch]
func (co Controller) UpdateAccount(c *gin.Context) {
	id, err := bindID(c)
	if err != nil {
		code, e := failure(c, err)
		c.JSON(code, AccountResponse{Error: e})
		return
	}

	account, err := co.ledger.GetAccount(c.Request.Context(), id)
	if err != nil {
		code, e := failure(c, err)
		c.JSON(code, AccountResponse{Error: e})
		return
	}

	err = co.require(c, account.BudgetID, models.RoleEditor)
	if err != nil {
		code, e := failure(c, err)
		c.JSON(code, AccountResponse{Error: e})
		return
	}

	immutable, err := httputil.GetBodyFields(c, AccountEditable{})
	if err != nil {
		code, e := failure(c, err)
		c.JSON(code, AccountResponse{Error: e})
		return
	}

	var editable AccountArchivedEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		code, e := failure(c, err)
		c.JSON(code, AccountResponse{Error: e})
		return
	}

	if len(immutable) > 0 {
		code, e := failure(c, fmt.Errorf("%w, got %s", errAccountFieldImmutable, strings.Join(immutable, ", ")))
		c.JSON(code, AccountResponse{Error: e})
		return
	}

	if editable.Archived == nil {
		code, e := failure(c, errArchivedNotSet)
		c.JSON(code, AccountResponse{Error: e})
		return
	}

	account, err = co.ledger.SetAccountArchived(c.Request.Context(), id, *editable.Archived)
	if err != nil {
		code, e := failure(c, err)
		c.JSON(code, AccountResponse{Error: e})
		return
	}

	data := newAccount(c, account)
	c.JSON(http.StatusOK, AccountResponse{Data: &data})
}
