package v1_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	v1 "github.com/budget-steps/backend/internal/controllers/v1"
	"github.com/budget-steps/backend/internal/ledger"
	"github.com/budget-steps/backend/internal/models"
	"github.com/budget-steps/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestOperationsCreate() {
	f := suite.createFixture(suite.T())
	savings := suite.createTestAccount(suite.T(), v1.AccountEditable{BudgetID: f.budget.ID, Name: "Savings"})
	date := time.Date(2025, 1, 17, 12, 0, 0, 0, time.UTC)

	operation := suite.createTestOperation(suite.T(), v1.OperationEditable{
		StepID:     f.step.ID,
		Kind:       models.KindActual,
		Sign:       models.SignExpense,
		Amount:     amount("14.03"),
		Currency:   "eur",
		Date:       &date,
		AccountID:  &f.account.ID,
		CategoryID: &f.category.ID,
		Comment:    ptr(" Groceries "),
	})

	suite.Assert().Equal(f.budget.ID, operation.BudgetID, "The budget of an operation must be the budget of its step")
	suite.Assert().Equal(models.KindActual, operation.Kind)
	suite.Assert().True(operation.Amount.Equal(amount("14.03")))
	suite.Assert().Equal("EUR", operation.Currency)
	suite.Assert().True(date.Equal(*operation.Date))
	suite.Assert().Equal("Groceries", *operation.Comment)
	suite.Assert().Nil(operation.AccountIDTo)
	suite.Assert().Nil(operation.CreatedBy)
	suite.Assert().Equal(fmt.Sprintf("http://example.com/v1/operations/%d", operation.ID), operation.Links.Self)
	suite.Assert().Equal("", operation.Links.PlannedRef)

	transfer := suite.createTestOperation(suite.T(), v1.OperationEditable{
		StepID:      f.step.ID,
		Sign:        models.SignTransfer,
		Amount:      amount("200"),
		AccountID:   &f.account.ID,
		AccountIDTo: &savings.ID,
	})
	suite.Assert().Equal(savings.ID, *transfer.AccountIDTo)
	suite.Assert().NotNil(transfer.Date, "The date must default to the current time")
}

func (suite *TestSuiteStandard) TestOperationsCreatedBy() {
	budget := suite.createTestBudget(suite.T(), v1.BudgetEditable{OwnerUserID: 7})
	step := suite.createTestStep(suite.T(), v1.StepEditable{BudgetID: budget.ID})
	account := suite.createTestAccount(suite.T(), v1.AccountEditable{BudgetID: budget.ID})

	body := v1.OperationEditable{StepID: step.ID, Kind: models.KindPlanned, Sign: models.SignIncome, Amount: amount("1"), Currency: "EUR", AccountID: &account.ID}

	r := test.Request(suite.controllers, suite.T(), http.MethodPost, "http://example.com/v1/operations", body, user(7))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.OperationResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal(uint(7), *response.Data.CreatedBy)

	r = test.Request(suite.controllers, suite.T(), http.MethodPost, "http://example.com/v1/operations", body, user(8))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusForbidden)
}

func (suite *TestSuiteStandard) TestOperationsPlannedReference() {
	f := suite.createFixture(suite.T())
	planned := suite.createTestOperation(suite.T(), v1.OperationEditable{StepID: f.step.ID, AccountID: &f.account.ID, Amount: amount("50")})

	actual := suite.createTestOperation(suite.T(), v1.OperationEditable{
		StepID:       f.step.ID,
		Kind:         models.KindActual,
		AccountID:    &f.account.ID,
		Amount:       amount("48.99"),
		PlannedRefID: &planned.ID,
	})
	suite.Assert().Equal(planned.ID, *actual.PlannedRefID)
	suite.Assert().Equal(planned.Links.Self, actual.Links.PlannedRef)

	// The reference of a planned operation is ignored
	another := suite.createTestOperation(suite.T(), v1.OperationEditable{
		StepID:       f.step.ID,
		AccountID:    &f.account.ID,
		Amount:       amount("50"),
		PlannedRefID: &planned.ID,
	})
	suite.Assert().Nil(another.PlannedRefID)
	suite.Assert().Equal("", another.Links.PlannedRef)

	// Actual operations can only reference planned ones
	_ = suite.createTestOperation(suite.T(), v1.OperationEditable{
		StepID:       f.step.ID,
		Kind:         models.KindActual,
		AccountID:    &f.account.ID,
		Amount:       amount("1"),
		PlannedRefID: &actual.ID,
	}, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestOperationsCreateFails() {
	f := suite.createFixture(suite.T())
	other := suite.createFixture(suite.T())

	tests := []struct {
		name      string
		operation v1.OperationEditable
		status    int
		expected  string
	}{
		{"Zero amount", v1.OperationEditable{StepID: f.step.ID, AccountID: &f.account.ID, Amount: amount("0")}, http.StatusBadRequest, "the amount must be positive"},
		{"Negative amount", v1.OperationEditable{StepID: f.step.ID, AccountID: &f.account.ID, Amount: amount("-5")}, http.StatusBadRequest, "the amount must be positive"},
		{"Too many digits", v1.OperationEditable{StepID: f.step.ID, AccountID: &f.account.ID, Amount: amount("1.001")}, http.StatusBadRequest, "more than two fractional digits"},
		{"No account", v1.OperationEditable{StepID: f.step.ID, Amount: amount("1")}, http.StatusBadRequest, "invalid operation"},
		{"Expense with destination", v1.OperationEditable{StepID: f.step.ID, AccountID: &f.account.ID, AccountIDTo: &f.account.ID, Amount: amount("1")}, http.StatusBadRequest, "invalid operation"},
		{"Transfer without destination", v1.OperationEditable{StepID: f.step.ID, Sign: models.SignTransfer, AccountID: &f.account.ID, Amount: amount("1")}, http.StatusBadRequest, "invalid operation"},
		{"Transfer to same account", v1.OperationEditable{StepID: f.step.ID, Sign: models.SignTransfer, AccountID: &f.account.ID, AccountIDTo: &f.account.ID, Amount: amount("1")}, http.StatusBadRequest, "invalid operation"},
		{"Unknown currency", v1.OperationEditable{StepID: f.step.ID, AccountID: &f.account.ID, Amount: amount("1"), Currency: "ABC"}, http.StatusBadRequest, "ISO 4217"},
		{"Account of other budget", v1.OperationEditable{StepID: f.step.ID, AccountID: &other.account.ID, Amount: amount("1")}, http.StatusBadRequest, "cross-budget reference"},
		{"Category of other budget", v1.OperationEditable{StepID: f.step.ID, AccountID: &f.account.ID, CategoryID: &other.category.ID, Amount: amount("1")}, http.StatusBadRequest, "cross-budget reference"},
		{"Unknown account", v1.OperationEditable{StepID: f.step.ID, AccountID: ptr(uint(4711)), Amount: amount("1")}, http.StatusNotFound, "there is no account with ID 4711"},
		{"Unknown step", v1.OperationEditable{StepID: 4711, AccountID: &f.account.ID, Amount: amount("1")}, http.StatusNotFound, "there is no step with ID 4711"},
		{"Unknown step and same account", v1.OperationEditable{StepID: 4711, Sign: models.SignTransfer, AccountID: &f.account.ID, AccountIDTo: &f.account.ID, Amount: amount("1")}, http.StatusNotFound, "there is no step with ID 4711"},
		{"Unknown step and currency", v1.OperationEditable{StepID: 4711, AccountID: &f.account.ID, Amount: amount("1"), Currency: "ABC"}, http.StatusNotFound, "there is no step with ID 4711"},
		{"Unknown step and no account", v1.OperationEditable{StepID: 4711, Amount: amount("1")}, http.StatusNotFound, "there is no step with ID 4711"},
		{"Unknown step and zero amount", v1.OperationEditable{StepID: 4711, AccountID: &f.account.ID, Amount: amount("0")}, http.StatusBadRequest, "the amount must be positive"},
		{"Unknown sign", v1.OperationEditable{StepID: f.step.ID, Sign: "refund", AccountID: &f.account.ID, Amount: amount("1")}, http.StatusBadRequest, "Sign must be one of"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			o := tt.operation
			if o.Kind == "" {
				o.Kind = models.KindPlanned
			}

			if o.Sign == "" {
				o.Sign = models.SignExpense
			}

			if o.Currency == "" {
				o.Currency = "EUR"
			}

			r := test.Request(suite.controllers, t, http.MethodPost, "http://example.com/v1/operations", o)
			test.AssertHTTPStatus(t, &r, tt.status)
			assert.Contains(t, test.DecodeError(t, r.Body.Bytes()), tt.expected)
		})
	}

	// Nothing was written
	operations, err := suite.ledger.ListOperations(suite.T().Context(), ledger.OperationFilter{StepID: f.step.ID})
	suite.Require().Nil(err)
	suite.Assert().Len(operations, 0)
}

func (suite *TestSuiteStandard) TestOperationsArchivedAccount() {
	f := suite.createFixture(suite.T())

	r := test.Request(suite.controllers, suite.T(), http.MethodPatch, f.account.Links.Self, `{ "archived": true }`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	_ = suite.createTestOperation(suite.T(), v1.OperationEditable{StepID: f.step.ID, AccountID: &f.account.ID, Amount: amount("1")}, http.StatusBadRequest)

	r = test.Request(suite.controllers, suite.T(), http.MethodPatch, f.account.Links.Self, `{ "archived": false }`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	_ = suite.createTestOperation(suite.T(), v1.OperationEditable{StepID: f.step.ID, AccountID: &f.account.ID, Amount: amount("1")})
}

func (suite *TestSuiteStandard) TestOperationsGet() {
	budget := suite.createTestBudget(suite.T(), v1.BudgetEditable{OwnerUserID: 1})
	step := suite.createTestStep(suite.T(), v1.StepEditable{BudgetID: budget.ID})
	account := suite.createTestAccount(suite.T(), v1.AccountEditable{BudgetID: budget.ID})
	operation := suite.createTestOperation(suite.T(), v1.OperationEditable{StepID: step.ID, AccountID: &account.ID, Amount: amount("3.50")})

	tests := []struct {
		name    string
		url     string
		headers []map[string]string
		status  int
	}{
		{"Without user", operation.Links.Self, nil, http.StatusOK},
		{"Owner", operation.Links.Self, []map[string]string{user(1)}, http.StatusOK},
		{"Other user", operation.Links.Self, []map[string]string{user(2)}, http.StatusForbidden},
		{"Not found", "http://example.com/v1/operations/4711", nil, http.StatusNotFound},
		{"Invalid ID", "http://example.com/v1/operations/-1", nil, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(suite.controllers, t, http.MethodGet, tt.url, nil, tt.headers...)
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusOK {
				var response v1.OperationResponse
				test.DecodeResponse(t, &r, &response)
				assert.Equal(t, operation.ID, response.Data.ID)
				assert.True(t, response.Data.Amount.Equal(amount("3.50")))
			}
		})
	}
}

func (suite *TestSuiteStandard) TestOperationsList() {
	tests := []struct {
		name   string
		url    string
		status int
	}{
		{"No step", "http://example.com/v1/operations", http.StatusBadRequest},
		{"Invalid step", "http://example.com/v1/operations?step=january", http.StatusBadRequest},
		{"Unknown step", "http://example.com/v1/operations?step=4711", http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(suite.controllers, t, http.MethodGet, tt.url, nil)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}

	step := suite.createTestStep(suite.T(), v1.StepEditable{})
	r := test.Request(suite.controllers, suite.T(), http.MethodGet, step.Links.Operations, nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	suite.Assert().JSONEq(`{ "data": [], "error": null }`, r.Body.String())

	r = test.Request(suite.controllers, suite.T(), http.MethodGet, step.Links.Operations+"&kind=", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	suite.Assert().Contains(test.DecodeError(suite.T(), r.Body.Bytes()), "the kind query parameter must be planned or actual")
}

func (suite *TestSuiteStandard) TestOperationsOptions() {
	f := suite.createFixture(suite.T())
	operation := suite.createTestOperation(suite.T(), v1.OperationEditable{StepID: f.step.ID, AccountID: &f.account.ID, Amount: amount("1")})

	tests := []struct {
		url    string
		status int
		allow  string
	}{
		{"http://example.com/v1/operations", http.StatusNoContent, "OPTIONS, GET, POST"},
		{operation.Links.Self, http.StatusNoContent, "OPTIONS, GET"},
		{"http://example.com/v1/operations/4711", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		suite.T().Run(tt.url, func(t *testing.T) {
			r := test.Request(suite.controllers, t, http.MethodOptions, tt.url, nil)
			test.AssertHTTPStatus(t, &r, tt.status)
			assert.Equal(t, tt.allow, r.Header().Get("allow"))
		})
	}
}

func (suite *TestSuiteStandard) TestOperationsDBClosed() {
	f := suite.createFixture(suite.T())
	suite.CloseDB()

	r := test.Request(suite.controllers, suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/operations?step=%d", f.step.ID), nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
	suite.Assert().NotEmpty(r.Header().Get("x-request-id"))
	suite.Assert().Contains(test.DecodeError(suite.T(), r.Body.Bytes()), r.Header().Get("x-request-id"))
}
