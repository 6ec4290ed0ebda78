package v1

import (
	"fmt"
	"net/url"
	"time"

	"github.com/budget-steps/backend/internal/httputil"
	"github.com/budget-steps/backend/internal/ledger"
	"github.com/budget-steps/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// OperationEditable represents all user configurable parameters
type OperationEditable struct {
	StepID       uint            `json:"stepId" example:"5" binding:"required"`                                   // ID of the step the operation belongs to
	Kind         models.Kind     `json:"kind" example:"planned" binding:"required,oneof=planned actual"`          // Planned or actual
	Sign         models.Sign     `json:"sign" example:"expense" binding:"required,oneof=income expense transfer"` // Direction of the operation
	Amount       decimal.Decimal `json:"amount" example:"14.03" swaggertype:"string"`                             // Amount of the operation, must be positive
	Currency     string          `json:"currency" example:"EUR" binding:"required,len=3"`                         // ISO 4217 code of the currency
	Date         *time.Time      `json:"date" example:"2025-01-17T00:00:00Z"`                                     // Date of the operation. Defaults to the current time
	AccountID    *uint           `json:"accountId" example:"2"`                                                   // Account the money is booked on. For transfers, the source account
	AccountIDTo  *uint           `json:"accountIdTo" example:"3"`                                                 // Destination account, only for transfers
	CategoryID   *uint           `json:"categoryId" example:"8"`                                                  // Category of the operation
	Comment      *string         `json:"comment" example:"Groceries"`                                             // A comment
	PlannedRefID *uint           `json:"plannedRefId" example:"11"`                                               // Planned operation this actual operation realizes
}

// model converts the editable to the ledger's input for a new operation.
func (editable OperationEditable) model(createdBy *uint) (ledger.OperationCreate, error) {
	movement, err := ledger.NewMovement(editable.Sign, editable.AccountID, editable.AccountIDTo)
	if err != nil {
		return ledger.OperationCreate{}, err
	}

	return ledger.OperationCreate{
		StepID:       editable.StepID,
		Kind:         editable.Kind,
		Movement:     movement,
		Amount:       editable.Amount,
		Currency:     editable.Currency,
		Date:         editable.Date,
		CategoryID:   editable.CategoryID,
		Comment:      editable.Comment,
		PlannedRefID: editable.PlannedRefID,
		CreatedBy:    createdBy,
	}, nil
}

type OperationLinks struct {
	Self       string `json:"self" example:"https://example.com/api/v1/operations/14"` // The operation itself
	Step       string `json:"step" example:"https://example.com/api/v1/steps/5"`       // The step of the operation
	PlannedRef string `json:"plannedRef" example:""`                                   // The planned operation this operation realizes, empty when there is none
}

type Operation struct {
	models.DefaultModel
	OperationEditable
	BudgetID  uint           `json:"budgetId" example:"3"`  // ID of the budget, always the budget of the step
	CreatedBy *uint          `json:"createdBy" example:"7"` // ID of the user that created the operation
	Links     OperationLinks `json:"links"`
}

func newOperation(c *gin.Context, model models.Operation) Operation {
	url := baseURL(c)
	date := model.Date

	operation := Operation{
		DefaultModel: model.DefaultModel,
		OperationEditable: OperationEditable{
			StepID:       model.StepID,
			Kind:         model.Kind,
			Sign:         model.Sign,
			Amount:       model.Amount,
			Currency:     model.Currency,
			Date:         &date,
			AccountID:    &model.AccountID,
			AccountIDTo:  model.AccountIDTo,
			CategoryID:   model.CategoryID,
			Comment:      model.Comment,
			PlannedRefID: model.PlannedRefID,
		},
		BudgetID:  model.BudgetID,
		CreatedBy: model.CreatedBy,
		Links: OperationLinks{
			Self: fmt.Sprintf("%s/v1/operations/%d", url, model.ID),
			Step: fmt.Sprintf("%s/v1/steps/%d", url, model.StepID),
		},
	}

	if model.PlannedRefID != nil {
		operation.Links.PlannedRef = fmt.Sprintf("%s/v1/operations/%d", url, *model.PlannedRefID)
	}

	return operation
}

func newOperations(c *gin.Context, operations []models.Operation) []Operation {
	data := make([]Operation, 0, len(operations))
	for _, o := range operations {
		data = append(data, newOperation(c, o))
	}

	return data
}

type OperationListResponse struct {
	Data  []Operation `json:"data"`                                                  // List of operations
	Error *string     `json:"error" example:"there is no step with ID 4: not found"` // The error, if any occurred
}

type OperationResponse struct {
	Data  *Operation `json:"data"`                                                       // Data for the operation
	Error *string    `json:"error" example:"there is no operation with ID 4: not found"` // The error, if any occurred
}

type OperationQueryFilter struct {
	StepID uint   `form:"step"` // By ID of the step. Required for the operation list
	Kind   string `form:"kind"` // By kind, planned or actual
}

// model converts the query to the ledger's filter. A kind parameter that
// is present without a value is rejected instead of matching all kinds.
func (f OperationQueryFilter) model(u *url.URL, stepID uint) (ledger.OperationFilter, error) {
	filter := ledger.OperationFilter{StepID: stepID}

	if !slices.Contains(httputil.GetURLFields(u, f), "Kind") {
		return filter, nil
	}

	if f.Kind == "" {
		return ledger.OperationFilter{}, errKindEmpty
	}

	kind := models.Kind(f.Kind)
	filter.Kind = &kind

	return filter, nil
}
