package v1

import (
	"net/http"

	"github.com/budget-steps/backend/internal/httputil"
	"github.com/budget-steps/backend/internal/identity"
	"github.com/budget-steps/backend/internal/ledger"
	"github.com/budget-steps/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterOperationRoutes registers the routes for operations with
// the RouterGroup that is passed.
func (co Controller) RegisterOperationRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", co.OptionsOperationList)
		r.GET("", co.GetOperations)
		r.POST("", co.CreateOperation)
	}

	// Operation with ID
	{
		r.OPTIONS("/:id", co.OptionsOperationDetail)
		r.GET("/:id", co.GetOperation)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Operations
// @Success		204
// @Router			/v1/operations [options]
func (co Controller) OptionsOperationList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Operations
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		uint	true	"ID of the operation"
// @Router			/v1/operations/{id} [options]
func (co Controller) OptionsOperationDetail(c *gin.Context) {
	id, err := bindID(c)
	if err != nil {
		code, e := failure(c, err)
		c.JSON(code, httpError{Error: *e})
		return
	}

	_, err = co.ledger.GetOperation(c.Request.Context(), id)
	if err != nil {
		code, e := failure(c, err)
		c.JSON(code, httpError{Error: *e})
		return
	}

	httputil.OptionsGet(c)
}

// @Summary		Create operation
// @Description	Records a planned or actual operation in a step. The budget of the operation is the budget of the step.
// @Tags			Operations
// @Accept			json
// @Produce		json
// @Success		201			{object}	OperationResponse
// @Failure		400			{object}	OperationResponse
// @Failure		403			{object}	OperationResponse
// @Failure		404			{object}	OperationResponse
// @Failure		500			{object}	OperationResponse
// @Param			operation	body		OperationEditable	true	"Operation"
// @Router			/v1/operations [post]
func (co Controller) CreateOperation(c *gin.Context) {
	var editable OperationEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		code, e := failure(c, err)
		c.JSON(code, OperationResponse{Error: e})
		return
	}

	err = ledger.ValidateAmount(editable.Amount)
	if err != nil {
		code, e := failure(c, err)
		c.JSON(code, OperationResponse{Error: e})
		return
	}

	step, err := co.ledger.GetStep(c.Request.Context(), editable.StepID)
	if err != nil {
		code, e := failure(c, err)
		c.JSON(code, OperationResponse{Error: e})
		return
	}

	err = co.require(c, step.BudgetID, models.RoleEditor)
	if err != nil {
		code, e := failure(c, err)
		c.JSON(code, OperationResponse{Error: e})
		return
	}

	create, err := editable.model(identity.User(c))
	if err != nil {
		code, e := failure(c, err)
		c.JSON(code, OperationResponse{Error: e})
		return
	}

	operation, err := co.ledger.CreateOperation(c.Request.Context(), create)
	if err != nil {
		code, e := failure(c, err)
		c.JSON(code, OperationResponse{Error: e})
		return
	}

	data := newOperation(c, operation)
	c.JSON(http.StatusCreated, OperationResponse{Data: &data})
}

// @Summary		List operations
// @Description	Returns the operations of a step in the order they were created
// @Tags			Operations
// @Produce		json
// @Success		200		{object}	OperationListResponse
// @Failure		400		{object}	OperationListResponse
// @Failure		403		{object}	OperationListResponse
// @Failure		404		{object}	OperationListResponse
// @Failure		500		{object}	OperationListResponse
// @Param			step	query		uint	true	"ID of the step"
// @Param			kind	query		string	false	"Filter by kind, planned or actual"
// @Router			/v1/operations [get]
func (co Controller) GetOperations(c *gin.Context) {
	var query OperationQueryFilter
	err := httputil.BindQuery(c, &query)
	if err != nil {
		code, e := failure(c, err)
		c.JSON(code, OperationListResponse{Error: e})
		return
	}

	if query.StepID == 0 {
		code, e := failure(c, errStepNotSet)
		c.JSON(code, OperationListResponse{Error: e})
		return
	}

	step, err := co.ledger.GetStep(c.Request.Context(), query.StepID)
	if err != nil {
		code, e := failure(c, err)
		c.JSON(code, OperationListResponse{Error: e})
		return
	}

	err = co.require(c, step.BudgetID, models.RoleViewer)
	if err != nil {
		code, e := failure(c, err)
		c.JSON(code, OperationListResponse{Error: e})
		return
	}

	filter, err := query.model(c.Request.URL, step.ID)
	if err != nil {
		code, e := failure(c, err)
		c.JSON(code, OperationListResponse{Error: e})
		return
	}

	operations, err := co.ledger.ListOperations(c.Request.Context(), filter)
	if err != nil {
		code, e := failure(c, err)
		c.JSON(code, OperationListResponse{Error: e})
		return
	}

	c.JSON(http.StatusOK, OperationListResponse{Data: newOperations(c, operations)})
}

// @Summary		Get operation
// @Description	Returns a specific operation
// @Tags			Operations
// @Produce		json
// @Success		200	{object}	OperationResponse
// @Failure		400	{object}	OperationResponse
// @Failure		403	{object}	OperationResponse
// @Failure		404	{object}	OperationResponse
// @Failure		500	{object}	OperationResponse
// @Param			id	path		uint	true	"ID of the operation"
// @Router			/v1/operations/{id} [get]
func (co Controller) GetOperation(c *gin.Context) {
	id, err := bindID(c)
	if err != nil {
		code, e := failure(c, err)
		c.JSON(code, OperationResponse{Error: e})
		return
	}

	operation, err := co.ledger.GetOperation(c.Request.Context(), id)
	if err != nil {
		code, e := failure(c, err)
		c.JSON(code, OperationResponse{Error: e})
		return
	}

	err = co.require(c, operation.BudgetID, models.RoleViewer)
	if err != nil {
		code, e := failure(c, err)
		c.JSON(code, OperationResponse{Error: e})
		return
	}

	data := newOperation(c, operation)
	c.JSON(http.StatusOK, OperationResponse{Data: &data})
}
