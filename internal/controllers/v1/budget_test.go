package v1_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/budget-steps/backend/internal/controllers/v1"
	"github.com/budget-steps/backend/internal/models"
	"github.com/budget-steps/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestBudgetsCreate() {
	budget := suite.createTestBudget(suite.T(), v1.BudgetEditable{Name: "Household", Currency: "eur", OwnerUserID: 3})

	suite.Assert().Equal("Household", budget.Name)
	suite.Assert().Equal("EUR", budget.Currency)
	suite.Assert().Equal(uint(3), budget.OwnerUserID)
	suite.Assert().Equal(fmt.Sprintf("http://example.com/v1/budgets/%d", budget.ID), budget.Links.Self)
	suite.Assert().Equal(fmt.Sprintf("http://example.com/v1/steps?budget=%d", budget.ID), budget.Links.Steps)
}

func (suite *TestSuiteStandard) TestBudgetsCreateOwnerFromHeader() {
	r := test.Request(suite.controllers, suite.T(), http.MethodPost, "http://example.com/v1/budgets", v1.BudgetEditable{Name: "Household", Currency: "EUR", OwnerUserID: 3}, user(5))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var budget v1.BudgetResponse
	test.DecodeResponse(suite.T(), &r, &budget)
	suite.Assert().Equal(uint(5), budget.Data.OwnerUserID, "The user of the request must own the budget")
}

func (suite *TestSuiteStandard) TestBudgetsCreateFails() {
	tests := []struct {
		name     string
		body     any
		status   int
		expected string
	}{
		{"No owner", `{ "name": "Household", "currency": "EUR" }`, http.StatusBadRequest, "ownerUserId must be set"},
		{"No name", `{ "currency": "EUR", "ownerUserId": 1 }`, http.StatusBadRequest, "Name is required"},
		{"Currency too long", `{ "name": "Household", "currency": "EURO", "ownerUserId": 1 }`, http.StatusBadRequest, "Currency must be 3 characters long"},
		{"Unknown currency", `{ "name": "Household", "currency": "ABC", "ownerUserId": 1 }`, http.StatusBadRequest, "is not an ISO 4217 currency code"},
		{"Blank name", `{ "name": "   ", "currency": "EUR", "ownerUserId": 1 }`, http.StatusBadRequest, "must not be empty"},
		{"Broken body", `{ "name": 2 }`, http.StatusBadRequest, "cannot unmarshal number"},
		{"Invalid JSON", `{ "name": "Household"`, http.StatusBadRequest, "invalid or un-parseable data"},
		{"Empty body", "", http.StatusBadRequest, "the request body must not be empty"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(suite.controllers, t, http.MethodPost, "http://example.com/v1/budgets", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)
			assert.Contains(t, test.DecodeError(t, r.Body.Bytes()), tt.expected)
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetsList() {
	household := suite.createTestBudget(suite.T(), v1.BudgetEditable{Name: "Household", OwnerUserID: 1})
	holiday := suite.createTestBudget(suite.T(), v1.BudgetEditable{Name: "Holiday", OwnerUserID: 2})
	_ = suite.createTestBudget(suite.T(), v1.BudgetEditable{Name: "Work", OwnerUserID: 2})

	_, err := suite.ledger.ShareBudget(context.Background(), holiday.ID, 1, models.RoleViewer)
	suite.Require().Nil(err)

	tests := []struct {
		name     string
		query    string
		headers  []map[string]string
		expected []uint
	}{
		{"Owned and shared", "", []map[string]string{user(1)}, []uint{holiday.ID, household.ID}},
		{"Unknown user", "", []map[string]string{user(4711)}, []uint{}},
		{"Without user", "", nil, []uint{holiday.ID + 1, holiday.ID, household.ID}},
		{"Name filter", "?name=Ho*", nil, []uint{holiday.ID, household.ID}},
		{"Exact name", "?name=Work", []map[string]string{user(1)}, []uint{}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(suite.controllers, t, http.MethodGet, "http://example.com/v1/budgets"+tt.query, nil, tt.headers...)
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.BudgetListResponse
			test.DecodeResponse(t, &r, &response)

			ids := make([]uint, 0, len(response.Data))
			for _, b := range response.Data {
				ids = append(ids, b.ID)
			}
			assert.Equal(t, tt.expected, ids)
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetsGet() {
	budget := suite.createTestBudget(suite.T(), v1.BudgetEditable{OwnerUserID: 1})
	url := fmt.Sprintf("http://example.com/v1/budgets/%d", budget.ID)

	tests := []struct {
		name    string
		url     string
		headers []map[string]string
		status  int
	}{
		{"Without user", url, nil, http.StatusOK},
		{"Owner", url, []map[string]string{user(1)}, http.StatusOK},
		{"Other user", url, []map[string]string{user(2)}, http.StatusForbidden},
		{"Not found", "http://example.com/v1/budgets/4711", nil, http.StatusNotFound},
		{"Invalid ID", "http://example.com/v1/budgets/household", nil, http.StatusBadRequest},
		{"Zero ID", "http://example.com/v1/budgets/0", nil, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(suite.controllers, t, http.MethodGet, tt.url, nil, tt.headers...)
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusOK {
				var response v1.BudgetResponse
				test.DecodeResponse(t, &r, &response)
				assert.Equal(t, budget.ID, response.Data.ID)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetsShare() {
	budget := suite.createTestBudget(suite.T(), v1.BudgetEditable{OwnerUserID: 1})
	url := fmt.Sprintf("http://example.com/v1/budgets/%d/shares", budget.ID)

	// Share as viewer
	r := test.Request(suite.controllers, suite.T(), http.MethodPost, url, v1.BudgetShareEditable{UserID: 2, Role: models.RoleViewer}, user(1))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var share v1.BudgetShareResponse
	test.DecodeResponse(suite.T(), &r, &share)
	suite.Assert().Equal(budget.ID, share.Data.BudgetID)
	suite.Assert().Equal(models.RoleViewer, share.Data.Role)

	// Viewers can read, but not write
	r = test.Request(suite.controllers, suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/budgets/%d", budget.ID), nil, user(2))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	step := v1.StepEditable{BudgetID: budget.ID, Granularity: models.GranularityMonth, Name: "January"}
	r = test.Request(suite.controllers, suite.T(), http.MethodPost, "http://example.com/v1/steps", step, user(2))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusForbidden)

	r = test.Request(suite.controllers, suite.T(), http.MethodPost, url, v1.BudgetShareEditable{UserID: 3, Role: models.RoleViewer}, user(2))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusForbidden)

	// Upgrading the share updates the role
	r = test.Request(suite.controllers, suite.T(), http.MethodPost, url, v1.BudgetShareEditable{UserID: 2, Role: models.RoleEditor}, user(1))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &share)
	suite.Assert().Equal(models.RoleEditor, share.Data.Role)

	r = test.Request(suite.controllers, suite.T(), http.MethodPost, url, v1.BudgetShareEditable{UserID: 3, Role: models.RoleViewer}, user(2))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
}

func (suite *TestSuiteStandard) TestBudgetsShareFails() {
	budget := suite.createTestBudget(suite.T(), v1.BudgetEditable{OwnerUserID: 1})

	tests := []struct {
		name   string
		url    string
		body   any
		status int
	}{
		{"Unknown role", fmt.Sprintf("http://example.com/v1/budgets/%d/shares", budget.ID), `{ "userId": 2, "role": "admin" }`, http.StatusBadRequest},
		{"No user", fmt.Sprintf("http://example.com/v1/budgets/%d/shares", budget.ID), `{ "role": "viewer" }`, http.StatusBadRequest},
		{"Unknown budget", "http://example.com/v1/budgets/4711/shares", `{ "userId": 2, "role": "viewer" }`, http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(suite.controllers, t, http.MethodPost, tt.url, tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetsOptions() {
	budget := suite.createTestBudget(suite.T(), v1.BudgetEditable{})

	tests := []struct {
		url    string
		status int
		allow  string
	}{
		{"http://example.com/v1/budgets", http.StatusNoContent, "OPTIONS, GET, POST"},
		{fmt.Sprintf("http://example.com/v1/budgets/%d", budget.ID), http.StatusNoContent, "OPTIONS, GET"},
		{fmt.Sprintf("http://example.com/v1/budgets/%d/shares", budget.ID), http.StatusNoContent, "OPTIONS, POST"},
		{"http://example.com/v1/budgets/4711", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		suite.T().Run(tt.url, func(t *testing.T) {
			r := test.Request(suite.controllers, t, http.MethodOptions, tt.url, nil)
			test.AssertHTTPStatus(t, &r, tt.status)
			assert.Equal(t, tt.allow, r.Header().Get("allow"))
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetsDBClosed() {
	suite.CloseDB()

	r := test.Request(suite.controllers, suite.T(), http.MethodGet, "http://example.com/v1/budgets", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
	suite.Assert().Contains(test.DecodeError(suite.T(), r.Body.Bytes()), "an error occurred on the server")
}
