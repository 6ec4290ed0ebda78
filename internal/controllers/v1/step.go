package v1

import (
	"net/http"

	"github.com/budget-steps/backend/internal/httputil"
	"github.com/budget-steps/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterStepRoutes registers the routes for steps with
// the RouterGroup that is passed.
func (co Controller) RegisterStepRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", co.OptionsStepList)
		r.GET("", co.GetSteps)
		r.POST("", co.CreateStep)
	}

	// Step with ID
	{
		r.OPTIONS("/:id", co.OptionsStepDetail)
		r.GET("/:id", co.GetStep)
		r.OPTIONS("/:id/feed", co.OptionsStepDetail)
		r.GET("/:id/feed", co.GetStepFeed)
		r.OPTIONS("/:id/summary", co.OptionsStepDetail)
		r.GET("/:id/summary", co.GetStepSummary)
		r.OPTIONS("/:id/copy-planned", co.OptionsCopyPlanned)
		r.POST("/:id/copy-planned", co.CopyPlanned)
	}
}

// step reads the step with the ID from the URL and checks that the user
// holds role on its budget.
func (co Controller) step(c *gin.Context, role models.Role) (models.Step, error) {
	id, err := bindID(c)
	if err != nil {
		return models.Step{}, err
	}

	step, err := co.ledger.GetStep(c.Request.Context(), id)
	if err != nil {
		return models.Step{}, err
	}

	err = co.require(c, step.BudgetID, role)
	if err != nil {
		return models.Step{}, err
	}

	return step, nil
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Steps
// @Success		204
// @Router			/v1/steps [options]
func (co Controller) OptionsStepList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Steps
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		uint	true	"ID of the step"
// @Router			/v1/steps/{id} [options]
func (co Controller) OptionsStepDetail(c *gin.Context) {
	id, err := bindID(c)
	if err != nil {
		code, e := failure(c, err)
		c.JSON(code, httpError{Error: *e})
		return
	}

	_, err = co.ledger.GetStep(c.Request.Context(), id)
	if err != nil {
		code, e := failure(c, err)
		c.JSON(code, httpError{Error: *e})
		return
	}

	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Steps
// @Success		204
// @Param			id	path	uint	true	"ID of the step"
// @Router			/v1/steps/{id}/copy-planned [options]
func (co Controller) OptionsCopyPlanned(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Create step
// @Description	Creates a new step for a budget
// @Tags			Steps
// @Accept			json
// @Produce		json
// @Success		201		{object}	StepResponse
// @Failure		400		{object}	StepResponse
// @Failure		403		{object}	StepResponse
// @Failure		404		{object}	StepResponse
// @Failure		500		{object}	StepResponse
// @Param			step	body		StepEditable	true	"Step"
// @Router			/v1/steps [post]
func (co Controller) CreateStep(c *gin.Context) {
	var editable StepEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		code, e := failure(c, err)
		c.JSON(code, StepResponse{Error: e})
		return
	}

	err = co.require(c, editable.BudgetID, models.RoleEditor)
	if err != nil {
		code, e := failure(c, err)
		c.JSON(code, StepResponse{Error: e})
		return
	}

	step, err := co.ledger.CreateStep(c.Request.Context(), editable.model())
	if err != nil {
		code, e := failure(c, err)
		c.JSON(code, StepResponse{Error: e})
		return
	}

	data := newStep(c, step)
	c.JSON(http.StatusCreated, StepResponse{Data: &data})
}

// @Summary		List steps
// @Description	Returns the steps of a budget, the latest start date first
// @Tags			Steps
// @Produce		json
// @Success		200		{object}	StepListResponse
// @Failure		400		{object}	StepListResponse
// @Failure		403		{object}	StepListResponse
// @Failure		404		{object}	StepListResponse
// @Failure		500		{object}	StepListResponse
// @Param			budget	query		uint	true	"ID of the budget"
// @Router			/v1/steps [get]
func (co Controller) GetSteps(c *gin.Context) {
	var query StepQueryFilter
	err := httputil.BindQuery(c, &query)
	if err != nil {
		code, e := failure(c, err)
		c.JSON(code, StepListResponse{Error: e})
		return
	}

	if query.BudgetID == 0 {
		code, e := failure(c, errBudgetNotSet)
		c.JSON(code, StepListResponse{Error: e})
		return
	}

	steps, err := co.ledger.ListSteps(c.Request.Context(), query.BudgetID)
	if err != nil {
		code, e := failure(c, err)
		c.JSON(code, StepListResponse{Error: e})
		return
	}

	err = co.require(c, query.BudgetID, models.RoleViewer)
	if err != nil {
		code, e := failure(c, err)
		c.JSON(code, StepListResponse{Error: e})
		return
	}

	data := make([]Step, 0, len(steps))
	for _, s := range steps {
		data = append(data, newStep(c, s))
	}

	c.JSON(http.StatusOK, StepListResponse{Data: data})
}

// @Summary		Get step
// @Description	Returns a specific step
// @Tags			Steps
// @Produce		json
// @Success		200	{object}	StepResponse
// @Failure		400	{object}	StepResponse
// @Failure		403	{object}	StepResponse
// @Failure		404	{object}	StepResponse
// @Failure		500	{object}	StepResponse
// @Param			id	path		uint	true	"ID of the step"
// @Router			/v1/steps/{id} [get]
func (co Controller) GetStep(c *gin.Context) {
	step, err := co.step(c, models.RoleViewer)
	if err != nil {
		code, e := failure(c, err)
		c.JSON(code, StepResponse{Error: e})
		return
	}

	data := newStep(c, step)
	c.JSON(http.StatusOK, StepResponse{Data: &data})
}

// @Summary		Step feed
// @Description	Returns the operations of a step, the most recently created first
// @Tags			Steps
// @Produce		json
// @Success		200		{object}	OperationListResponse
// @Failure		400		{object}	OperationListResponse
// @Failure		403		{object}	OperationListResponse
// @Failure		404		{object}	OperationListResponse
// @Failure		500		{object}	OperationListResponse
// @Param			id		path		uint	true	"ID of the step"
// @Param			kind	query		string	false	"Filter by kind, planned or actual"
// @Router			/v1/steps/{id}/feed [get]
func (co Controller) GetStepFeed(c *gin.Context) {
	step, err := co.step(c, models.RoleViewer)
	if err != nil {
		code, e := failure(c, err)
		c.JSON(code, OperationListResponse{Error: e})
		return
	}

	var query OperationQueryFilter
	err = httputil.BindQuery(c, &query)
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

	operations, err := co.ledger.Feed(c.Request.Context(), filter)
	if err != nil {
		code, e := failure(c, err)
		c.JSON(code, OperationListResponse{Error: e})
		return
	}

	c.JSON(http.StatusOK, OperationListResponse{Data: newOperations(c, operations)})
}

// @Summary		Step summary
// @Description	Returns the totals of the actual operations of a step. Transfers are not included.
// @Tags			Steps
// @Produce		json
// @Success		200	{object}	StepSummaryResponse
// @Failure		400	{object}	StepSummaryResponse
// @Failure		403	{object}	StepSummaryResponse
// @Failure		404	{object}	StepSummaryResponse
// @Failure		500	{object}	StepSummaryResponse
// @Param			id	path		uint	true	"ID of the step"
// @Router			/v1/steps/{id}/summary [get]
func (co Controller) GetStepSummary(c *gin.Context) {
	step, err := co.step(c, models.RoleViewer)
	if err != nil {
		code, e := failure(c, err)
		c.JSON(code, StepSummaryResponse{Error: e})
		return
	}

	summary, err := co.ledger.Summarize(c.Request.Context(), step.ID)
	if err != nil {
		code, e := failure(c, err)
		c.JSON(code, StepSummaryResponse{Error: e})
		return
	}

	c.JSON(http.StatusOK, StepSummaryResponse{Data: &StepSummary{
		TotalIncome:  summary.TotalIncome,
		TotalExpense: summary.TotalExpense,
		Net:          summary.Net,
	}})
}

// @Summary		Copy planned operations
// @Description	Copies all planned operations of the step to another step of the same budget. Either all operations are copied or none.
// @Tags			Steps
// @Accept			json
// @Produce		json
// @Success		201		{object}	CopyPlannedResponse
// @Failure		400		{object}	CopyPlannedResponse
// @Failure		403		{object}	CopyPlannedResponse
// @Failure		404		{object}	CopyPlannedResponse
// @Failure		500		{object}	CopyPlannedResponse
// @Param			id		path		uint				true	"ID of the source step"
// @Param			target	body		CopyPlannedEditable	true	"Target step"
// @Router			/v1/steps/{id}/copy-planned [post]
func (co Controller) CopyPlanned(c *gin.Context) {
	source, err := co.step(c, models.RoleViewer)
	if err != nil {
		code, e := failure(c, err)
		c.JSON(code, CopyPlannedResponse{Error: e})
		return
	}

	var editable CopyPlannedEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		code, e := failure(c, err)
		c.JSON(code, CopyPlannedResponse{Error: e})
		return
	}

	// The target must be in the same budget, which the ledger checks. The
	// user needs to be allowed to write to it.
	err = co.require(c, source.BudgetID, models.RoleEditor)
	if err != nil {
		code, e := failure(c, err)
		c.JSON(code, CopyPlannedResponse{Error: e})
		return
	}

	copied, err := co.ledger.CopyPlanned(c.Request.Context(), source.ID, editable.TargetStepID)
	if err != nil {
		code, e := failure(c, err)
		c.JSON(code, CopyPlannedResponse{Error: e})
		return
	}

	c.JSON(http.StatusCreated, CopyPlannedResponse{Data: &CopyPlanned{Copied: copied}})
}
