package v1

import (
	"net/http"

	"github.com/budget-steps/backend/internal/httputil"
	"github.com/budget-steps/backend/internal/ledger"
	"github.com/budget-steps/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterCategoryRoutes registers the routes for categories with
// the RouterGroup that is passed.
func (co Controller) RegisterCategoryRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", co.OptionsCategoryList)
		r.GET("", co.GetCategories)
		r.POST("", co.CreateCategory)
	}

	// Category with ID
	{
		r.OPTIONS("/:id", co.OptionsCategoryDetail)
		r.GET("/:id", co.GetCategory)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Router			/v1/categories [options]
func (co Controller) OptionsCategoryList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		uint	true	"ID of the category"
// @Router			/v1/categories/{id} [options]
func (co Controller) OptionsCategoryDetail(c *gin.Context) {
	id, err := bindID(c)
	if err != nil {
		code, e := failure(c, err)
		c.JSON(code, httpError{Error: *e})
		return
	}

	_, err = co.ledger.GetCategory(c.Request.Context(), id)
	if err != nil {
		code, e := failure(c, err)
		c.JSON(code, httpError{Error: *e})
		return
	}

	httputil.OptionsGet(c)
}

// @Summary		Create category
// @Description	Creates a new category for a budget
// @Tags			Categories
// @Accept			json
// @Produce		json
// @Success		201			{object}	CategoryResponse
// @Failure		400			{object}	CategoryResponse
// @Failure		403			{object}	CategoryResponse
// @Failure		404			{object}	CategoryResponse
// @Failure		500			{object}	CategoryResponse
// @Param			category	body		CategoryEditable	true	"Category"
// @Router			/v1/categories [post]
func (co Controller) CreateCategory(c *gin.Context) {
	var editable CategoryEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		code, e := failure(c, err)
		c.JSON(code, CategoryResponse{Error: e})
		return
	}

	err = co.require(c, editable.BudgetID, models.RoleEditor)
	if err != nil {
		code, e := failure(c, err)
		c.JSON(code, CategoryResponse{Error: e})
		return
	}

	category, err := co.ledger.CreateCategory(c.Request.Context(), ledger.CategoryCreate{
		BudgetID: editable.BudgetID,
		Name:     editable.Name,
	})
	if err != nil {
		code, e := failure(c, err)
		c.JSON(code, CategoryResponse{Error: e})
		return
	}

	data := newCategory(c, category)
	c.JSON(http.StatusCreated, CategoryResponse{Data: &data})
}

// @Summary		List categories
// @Description	Returns a list of categories, the newest first
// @Tags			Categories
// @Produce		json
// @Success		200		{object}	CategoryListResponse
// @Failure		400		{object}	CategoryListResponse
// @Failure		500		{object}	CategoryListResponse
// @Param			budget	query		uint	false	"Filter by budget ID"
// @Param			name	query		string	false	"Filter by name, * matches any text"
// @Router			/v1/categories [get]
func (co Controller) GetCategories(c *gin.Context) {
	var query ReferenceQueryFilter
	err := httputil.BindQuery(c, &query)
	if err != nil {
		code, e := failure(c, err)
		c.JSON(code, CategoryListResponse{Error: e})
		return
	}

	filter, err := co.filter(c, query.budget(), query.Name)
	if err != nil {
		code, e := failure(c, err)
		c.JSON(code, CategoryListResponse{Error: e})
		return
	}

	categories, err := co.ledger.ListCategories(c.Request.Context(), filter)
	if err != nil {
		code, e := failure(c, err)
		c.JSON(code, CategoryListResponse{Error: e})
		return
	}

	data := make([]Category, 0, len(categories))
	for _, cat := range categories {
		data = append(data, newCategory(c, cat))
	}

	c.JSON(http.StatusOK, CategoryListResponse{Data: data})
}

// @Summary		Get category
// @Description	Returns a specific category
// @Tags			Categories
// @Produce		json
// @Success		200	{object}	CategoryResponse
// @Failure		400	{object}	CategoryResponse
// @Failure		403	{object}	CategoryResponse
// @Failure		404	{object}	CategoryResponse
// @Failure		500	{object}	CategoryResponse
// @Param			id	path		uint	true	"ID of the category"
// @Router			/v1/categories/{id} [get]
func (co Controller) GetCategory(c *gin.Context) {
	id, err := bindID(c)
	if err != nil {
		code, e := failure(c, err)
		c.JSON(code, CategoryResponse{Error: e})
		return
	}

	category, err := co.ledger.GetCategory(c.Request.Context(), id)
	if err != nil {
		code, e := failure(c, err)
		c.JSON(code, CategoryResponse{Error: e})
		return
	}

	err = co.require(c, category.BudgetID, models.RoleViewer)
	if err != nil {
		code, e := failure(c, err)
		c.JSON(code, CategoryResponse{Error: e})
		return
	}

	data := newCategory(c, category)
	c.JSON(http.StatusOK, CategoryResponse{Data: &data})
}
