package ledger_test

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/budget-steps/backend/internal/ledger"
	"github.com/budget-steps/backend/internal/models"
	"github.com/budget-steps/backend/internal/types"
)

// TestPlannedAndActual records a planned expense and the actual expense
// realizing it. Only the actual expense counts for the summary.
func (suite *TestSuiteStandard) TestPlannedAndActual() {
	f := suite.createFixture()

	planned, err := suite.ledger.CreateOperation(context.Background(), ledger.OperationCreate{
		StepID:     f.step.ID,
		Kind:       models.KindPlanned,
		Movement:   ledger.Expense{AccountID: f.account.ID},
		Amount:     amount("10.00"),
		Currency:   "EUR",
		CategoryID: &f.category.ID,
	})
	suite.Require().Nil(err)
	suite.Assert().Equal(f.budget.ID, planned.BudgetID)
	suite.Assert().Equal(models.SignExpense, planned.Sign)

	actual, err := suite.ledger.CreateOperation(context.Background(), ledger.OperationCreate{
		StepID:       f.step.ID,
		Kind:         models.KindActual,
		Movement:     ledger.Expense{AccountID: f.account.ID},
		Amount:       amount("5.00"),
		Currency:     "EUR",
		PlannedRefID: &planned.ID,
	})
	suite.Require().Nil(err)
	suite.Assert().Greater(actual.ID, planned.ID)
	suite.Assert().Equal(planned.ID, *actual.PlannedRefID)

	summary, err := suite.ledger.Summarize(context.Background(), f.step.ID)
	suite.Require().Nil(err)
	suite.Assert().True(summary.TotalIncome.IsZero(), summary.TotalIncome.String())
	suite.Assert().True(summary.TotalExpense.Equal(amount("5.00")), summary.TotalExpense.String())
	suite.Assert().True(summary.Net.Equal(amount("-5.00")), summary.Net.String())
}

func (suite *TestSuiteStandard) TestCreateOperationAmountNotPositive() {
	f := suite.createFixture()
	other := suite.createTestAccount(ledger.AccountCreate{BudgetID: f.budget.ID, Name: "Savings"})

	movements := []ledger.Movement{
		ledger.Income{AccountID: f.account.ID},
		ledger.Expense{AccountID: f.account.ID},
		ledger.Transfer{From: f.account.ID, To: other.ID},
	}

	for _, kind := range []models.Kind{models.KindPlanned, models.KindActual} {
		for _, movement := range movements {
			for _, a := range []string{"0", "0.00", "-1", "-0.01"} {
				suite.Run(fmt.Sprintf("%s %s %s", kind, movement.Sign(), a), func() {
					_, err := suite.ledger.CreateOperation(context.Background(), ledger.OperationCreate{
						StepID:   f.step.ID,
						Kind:     kind,
						Movement: movement,
						Amount:   amount(a),
						Currency: "EUR",
					})
					suite.Assert().ErrorIs(err, ledger.ErrInvalidOperation)
				})
			}
		}
	}

	operations, err := suite.ledger.ListOperations(context.Background(), ledger.OperationFilter{StepID: f.step.ID})
	suite.Require().Nil(err)
	suite.Assert().Len(operations, 0)
}

func (suite *TestSuiteStandard) TestCreateOperationAmountValidationBeforeLookup() {
	_, err := suite.ledger.CreateOperation(context.Background(), ledger.OperationCreate{
		StepID:   4711,
		Kind:     models.KindActual,
		Movement: ledger.Income{AccountID: 4711},
		Amount:   amount("0"),
		Currency: "EUR",
	})

	suite.Assert().ErrorIs(err, ledger.ErrInvalidOperation)
	suite.Assert().NotErrorIs(err, ledger.ErrNotFound)
}

func (suite *TestSuiteStandard) TestCreateOperationInvalidInput() {
	f := suite.createFixture()

	tests := []struct {
		name       string
		create     ledger.OperationCreate
		noMovement bool
	}{
		{"Three fractional digits", ledger.OperationCreate{Amount: amount("1.005")}, false},
		{"Too large", ledger.OperationCreate{Amount: amount("10000000000000000")}, false},
		{"Unknown kind", ledger.OperationCreate{Kind: "forecast"}, false},
		{"Unknown currency", ledger.OperationCreate{Currency: "ABC"}, false},
		{"No movement", ledger.OperationCreate{}, true},
		{"Transfer to self", ledger.OperationCreate{Movement: ledger.Transfer{From: f.account.ID, To: f.account.ID}}, false},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			create := tt.create
			create.StepID = f.step.ID

			if create.Kind == "" {
				create.Kind = models.KindActual
			}

			if create.Currency == "" {
				create.Currency = "EUR"
			}

			if create.Amount.IsZero() {
				create.Amount = amount("1.00")
			}

			if create.Movement == nil && !tt.noMovement {
				create.Movement = ledger.Income{AccountID: f.account.ID}
			}

			_, err := suite.ledger.CreateOperation(context.Background(), create)
			suite.Assert().ErrorIs(err, ledger.ErrInvalidOperation)
		})
	}
}

func (suite *TestSuiteStandard) TestCreateOperationTransferToSelf() {
	f := suite.createFixture()

	movement, err := ledger.NewMovement(models.SignTransfer, &f.account.ID, &f.account.ID)
	suite.Require().Nil(err)

	_, err = suite.ledger.CreateOperation(context.Background(), ledger.OperationCreate{
		StepID:   f.step.ID,
		Kind:     models.KindActual,
		Movement: movement,
		Amount:   amount("1.00"),
		Currency: "EUR",
	})
	suite.Assert().ErrorIs(err, ledger.ErrInvalidOperation)
	suite.Assert().Contains(err.Error(), "to the same account")
}

// TestCreateOperationStepResolvedFirst verifies that a missing step is
// reported before any other input error except the amount.
func (suite *TestSuiteStandard) TestCreateOperationStepResolvedFirst() {
	f := suite.createFixture()

	tests := []struct {
		name   string
		create ledger.OperationCreate
	}{
		{"Transfer to self", ledger.OperationCreate{Movement: ledger.Transfer{From: f.account.ID, To: f.account.ID}}},
		{"Unknown currency", ledger.OperationCreate{Currency: "ABC"}},
		{"Unknown kind", ledger.OperationCreate{Kind: "forecast"}},
		{"No movement", ledger.OperationCreate{}},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			create := tt.create
			create.StepID = 4711
			create.Amount = amount("1.00")

			if create.Kind == "" {
				create.Kind = models.KindActual
			}

			if create.Currency == "" {
				create.Currency = "EUR"
			}

			if create.Movement == nil && tt.name != "No movement" {
				create.Movement = ledger.Income{AccountID: f.account.ID}
			}

			_, err := suite.ledger.CreateOperation(context.Background(), create)
			suite.Assert().ErrorIs(err, ledger.ErrNotFound)
			suite.Assert().EqualError(err, "there is no step with ID 4711: not found")
		})
	}
}

func (suite *TestSuiteStandard) TestCreateOperationTransfer() {
	f := suite.createFixture()
	savings := suite.createTestAccount(ledger.AccountCreate{BudgetID: f.budget.ID, Name: "Savings"})

	operation := suite.createTestOperation(ledger.OperationCreate{
		StepID:   f.step.ID,
		Kind:     models.KindActual,
		Movement: ledger.Transfer{From: f.account.ID, To: savings.ID},
		Amount:   amount("250"),
	})

	suite.Assert().Equal(models.SignTransfer, operation.Sign)
	suite.Assert().Equal(f.account.ID, operation.AccountID)
	suite.Require().NotNil(operation.AccountIDTo)
	suite.Assert().Equal(savings.ID, *operation.AccountIDTo)
}

// TestCrossBudgetRejection verifies that an operation of a step can only
// reference accounts and categories of the same budget.
func (suite *TestSuiteStandard) TestCrossBudgetRejection() {
	f := suite.createFixture()
	other := suite.createFixture()

	tests := []struct {
		name   string
		create ledger.OperationCreate
	}{
		{"Income account", ledger.OperationCreate{Movement: ledger.Income{AccountID: other.account.ID}}},
		{"Expense account", ledger.OperationCreate{Movement: ledger.Expense{AccountID: other.account.ID}}},
		{"Transfer source", ledger.OperationCreate{Movement: ledger.Transfer{From: other.account.ID, To: f.account.ID}}},
		{"Transfer destination", ledger.OperationCreate{Movement: ledger.Transfer{From: f.account.ID, To: other.account.ID}}},
		{"Category", ledger.OperationCreate{Movement: ledger.Expense{AccountID: f.account.ID}, CategoryID: &other.category.ID}},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			create := tt.create
			create.StepID = f.step.ID
			create.Kind = models.KindActual
			create.Amount = amount("1.00")
			create.Currency = "EUR"

			_, err := suite.ledger.CreateOperation(context.Background(), create)
			suite.Assert().ErrorIs(err, ledger.ErrCrossBudgetReference)
		})
	}

	operations, err := suite.ledger.ListOperations(context.Background(), ledger.OperationFilter{StepID: f.step.ID})
	suite.Require().Nil(err)
	suite.Assert().Len(operations, 0, "A rejected operation was committed")
}

func (suite *TestSuiteStandard) TestCreateOperationNotFound() {
	f := suite.createFixture()

	tests := []struct {
		name   string
		create ledger.OperationCreate
		msg    string
	}{
		{"Step", ledger.OperationCreate{StepID: 4711}, "there is no step with ID 4711: not found"},
		{"Account", ledger.OperationCreate{Movement: ledger.Expense{AccountID: 4711}}, "there is no account with ID 4711: not found"},
		{"Transfer destination", ledger.OperationCreate{Movement: ledger.Transfer{From: f.account.ID, To: 4711}}, "there is no account with ID 4711: not found"},
		{"Category", ledger.OperationCreate{CategoryID: ptr(uint(4711))}, "there is no category with ID 4711: not found"},
		{"Planned reference", ledger.OperationCreate{PlannedRefID: ptr(uint(4711))}, "there is no planned operation with ID 4711: not found"},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			create := tt.create
			if create.StepID == 0 {
				create.StepID = f.step.ID
			}

			if create.Movement == nil {
				create.Movement = ledger.Expense{AccountID: f.account.ID}
			}

			create.Kind = models.KindActual
			create.Amount = amount("1.00")
			create.Currency = "EUR"

			_, err := suite.ledger.CreateOperation(context.Background(), create)
			suite.Assert().ErrorIs(err, ledger.ErrNotFound)
			suite.Assert().EqualError(err, tt.msg)
		})
	}
}

func (suite *TestSuiteStandard) TestCreateOperationPlannedReference() {
	f := suite.createFixture()
	otherStep := suite.createTestStep(ledger.StepCreate{
		BudgetID:  f.budget.ID,
		Name:      "February",
		DateStart: types.NewDate(2025, 2, 1),
		DateEnd:   types.NewDate(2025, 2, 28),
	})

	actual := suite.createTestOperation(ledger.OperationCreate{
		StepID:   f.step.ID,
		Kind:     models.KindActual,
		Movement: ledger.Expense{AccountID: f.account.ID},
		Amount:   amount("3"),
	})

	plannedElsewhere := suite.createTestOperation(ledger.OperationCreate{
		StepID:   otherStep.ID,
		Kind:     models.KindPlanned,
		Movement: ledger.Expense{AccountID: f.account.ID},
		Amount:   amount("3"),
	})

	tests := []struct {
		name string
		ref  uint
	}{
		{"Reference to actual operation", actual.ID},
		{"Reference to planned operation of another step", plannedElsewhere.ID},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			_, err := suite.ledger.CreateOperation(context.Background(), ledger.OperationCreate{
				StepID:       f.step.ID,
				Kind:         models.KindActual,
				Movement:     ledger.Expense{AccountID: f.account.ID},
				Amount:       amount("1"),
				Currency:     "EUR",
				PlannedRefID: &tt.ref,
			})
			suite.Assert().ErrorIs(err, ledger.ErrInvalidOperation)
		})
	}
}

func (suite *TestSuiteStandard) TestCreateOperationPlannedReferenceIgnored() {
	f := suite.createFixture()

	planned := suite.createTestOperation(ledger.OperationCreate{
		StepID:   f.step.ID,
		Kind:     models.KindPlanned,
		Movement: ledger.Expense{AccountID: f.account.ID},
		Amount:   amount("20"),
	})

	for _, ref := range []uint{planned.ID, 4711} {
		operation := suite.createTestOperation(ledger.OperationCreate{
			StepID:       f.step.ID,
			Kind:         models.KindPlanned,
			Movement:     ledger.Expense{AccountID: f.account.ID},
			Amount:       amount("20"),
			PlannedRefID: &ref,
		})
		suite.Assert().Nil(operation.PlannedRefID)

		read, err := suite.ledger.GetOperation(context.Background(), operation.ID)
		suite.Require().Nil(err)
		suite.Assert().Nil(read.PlannedRefID)
	}
}

// TestCreateOperationLargestAmount stores amounts with all 16 integer digits
// and reads them back unchanged.
func (suite *TestSuiteStandard) TestCreateOperationLargestAmount() {
	f := suite.createFixture()

	for _, a := range []string{"9999999999999999.99", "1234567890123456.78", "123456789012345.67", "0.01"} {
		suite.Run(a, func() {
			operation := suite.createTestOperation(ledger.OperationCreate{
				StepID:   f.step.ID,
				Kind:     models.KindActual,
				Movement: ledger.Income{AccountID: f.account.ID},
				Amount:   amount(a),
			})

			read, err := suite.ledger.GetOperation(context.Background(), operation.ID)
			suite.Require().Nil(err)
			suite.Assert().True(read.Amount.Equal(amount(a)), "stored %s, read %s", a, read.Amount)
			suite.Assert().Equal(a, read.Amount.StringFixed(2))
		})
	}
}

func (suite *TestSuiteStandard) TestCreateOperationArchivedAccount() {
	f := suite.createFixture()

	historic := suite.createTestOperation(ledger.OperationCreate{
		StepID:   f.step.ID,
		Kind:     models.KindActual,
		Movement: ledger.Income{AccountID: f.account.ID},
		Amount:   amount("100"),
	})

	account, err := suite.ledger.SetAccountArchived(context.Background(), f.account.ID, true)
	suite.Require().Nil(err)
	suite.Assert().True(account.Archived)

	_, err = suite.ledger.CreateOperation(context.Background(), ledger.OperationCreate{
		StepID:   f.step.ID,
		Kind:     models.KindActual,
		Movement: ledger.Income{AccountID: f.account.ID},
		Amount:   amount("1"),
		Currency: "EUR",
	})
	suite.Assert().ErrorIs(err, ledger.ErrInvalidOperation)

	// History stays readable
	read, err := suite.ledger.GetOperation(context.Background(), historic.ID)
	suite.Require().Nil(err)
	suite.Assert().Equal(historic.ID, read.ID)

	_, err = suite.ledger.SetAccountArchived(context.Background(), f.account.ID, false)
	suite.Require().Nil(err)

	_ = suite.createTestOperation(ledger.OperationCreate{
		StepID:   f.step.ID,
		Kind:     models.KindActual,
		Movement: ledger.Income{AccountID: f.account.ID},
		Amount:   amount("1"),
	})
}

func (suite *TestSuiteStandard) TestCreateOperationDefaults() {
	f := suite.createFixture()
	before := time.Now().Add(-time.Minute)

	comment := "  Weekly shopping "
	operation := suite.createTestOperation(ledger.OperationCreate{
		StepID:    f.step.ID,
		Movement:  ledger.Expense{AccountID: f.account.ID},
		Amount:    amount("12.5"),
		Currency:  "eur",
		Comment:   &comment,
		CreatedBy: ptr(uint(7)),
	})

	suite.Assert().Equal("EUR", operation.Currency)
	suite.Assert().True(operation.Date.After(before), "Date was not defaulted to the current time: %s", operation.Date)
	suite.Assert().Equal("Weekly shopping", *operation.Comment)
	suite.Assert().Equal(uint(7), *operation.CreatedBy)

	date := time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)
	operation = suite.createTestOperation(ledger.OperationCreate{
		StepID:   f.step.ID,
		Movement: ledger.Expense{AccountID: f.account.ID},
		Amount:   amount("1"),
		Date:     &date,
	})

	read, err := suite.ledger.GetOperation(context.Background(), operation.ID)
	suite.Require().Nil(err)
	suite.Assert().True(date.Equal(read.Date), "Date was not stored: %s", read.Date)
	suite.Assert().True(read.Amount.Equal(amount("1")))
}

func (suite *TestSuiteStandard) TestGetOperationNotFound() {
	_, err := suite.ledger.GetOperation(context.Background(), 4711)
	suite.Assert().ErrorIs(err, ledger.ErrNotFound)
}

func (suite *TestSuiteStandard) TestListOperations() {
	f := suite.createFixture()

	var created []models.Operation
	for i, kind := range []models.Kind{models.KindPlanned, models.KindActual, models.KindPlanned, models.KindActual} {
		created = append(created, suite.createTestOperation(ledger.OperationCreate{
			StepID:   f.step.ID,
			Kind:     kind,
			Movement: ledger.Expense{AccountID: f.account.ID},
			Amount:   amount(fmt.Sprintf("%d", i+1)),
		}))
	}

	all, err := suite.ledger.ListOperations(context.Background(), ledger.OperationFilter{StepID: f.step.ID})
	suite.Require().Nil(err)
	suite.Require().Len(all, 4)
	for i := range all {
		suite.Assert().Equal(created[i].ID, all[i].ID, "Operations are not in creation order")
	}

	planned, err := suite.ledger.ListOperations(context.Background(), ledger.OperationFilter{StepID: f.step.ID, Kind: ptr(models.KindPlanned)})
	suite.Require().Nil(err)
	suite.Require().Len(planned, 2)
	suite.Assert().Equal(created[0].ID, planned[0].ID)
	suite.Assert().Equal(created[2].ID, planned[1].ID)

	feed, err := suite.ledger.Feed(context.Background(), ledger.OperationFilter{StepID: f.step.ID})
	suite.Require().Nil(err)
	suite.Require().Len(feed, 4)
	suite.Assert().Equal(created[3].ID, feed[0].ID, "Feed does not start with the newest operation")
	suite.Assert().Equal(created[0].ID, feed[3].ID)

	_, err = suite.ledger.ListOperations(context.Background(), ledger.OperationFilter{StepID: f.step.ID, Kind: ptr(models.Kind("forecast"))})
	suite.Assert().ErrorIs(err, ledger.ErrInvalidOperation)

	_, err = suite.ledger.ListOperations(context.Background(), ledger.OperationFilter{StepID: 4711})
	suite.Assert().ErrorIs(err, ledger.ErrNotFound)

	_, err = suite.ledger.Feed(context.Background(), ledger.OperationFilter{StepID: 4711})
	suite.Assert().ErrorIs(err, ledger.ErrNotFound)
}

func (suite *TestSuiteStandard) TestListOperationsEmpty() {
	f := suite.createFixture()

	operations, err := suite.ledger.ListOperations(context.Background(), ledger.OperationFilter{StepID: f.step.ID})
	suite.Require().Nil(err)
	suite.Assert().NotNil(operations)
	suite.Assert().Len(operations, 0)
}

// TestCreateOperationConcurrent creates operations for the same step from
// many goroutines. All of them are recorded with distinct IDs.
func (suite *TestSuiteStandard) TestCreateOperationConcurrent() {
	f := suite.createFixture()

	const workers = 20
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	ids := make(chan uint, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			operation, err := suite.ledger.CreateOperation(context.Background(), ledger.OperationCreate{
				StepID:   f.step.ID,
				Kind:     models.KindActual,
				Movement: ledger.Income{AccountID: f.account.ID},
				Amount:   amount("1.00"),
				Currency: "EUR",
			})
			if err != nil {
				errs <- err
				return
			}
			ids <- operation.ID
		}()
	}

	wg.Wait()
	close(errs)
	close(ids)

	for err := range errs {
		suite.Assert().Nil(err)
	}

	seen := make(map[uint]bool)
	for id := range ids {
		suite.Assert().False(seen[id], "ID %d was allocated twice", id)
		seen[id] = true
	}
	suite.Assert().Len(seen, workers)

	summary, err := suite.ledger.Summarize(context.Background(), f.step.ID)
	suite.Require().Nil(err)
	suite.Assert().True(summary.TotalIncome.Equal(amount("20")), summary.TotalIncome.String())
}

func (suite *TestSuiteStandard) TestCreateOperationCanceled() {
	f := suite.createFixture()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := suite.ledger.CreateOperation(ctx, ledger.OperationCreate{
		StepID:   f.step.ID,
		Kind:     models.KindActual,
		Movement: ledger.Income{AccountID: f.account.ID},
		Amount:   amount("1.00"),
		Currency: "EUR",
	})
	suite.Assert().ErrorIs(err, context.Canceled)

	operations, err := suite.ledger.ListOperations(context.Background(), ledger.OperationFilter{StepID: f.step.ID})
	suite.Require().Nil(err)
	suite.Assert().Len(operations, 0)
}

func (suite *TestSuiteStandard) TestListOperationsDBClosed() {
	f := suite.createFixture()
	suite.CloseDB()

	_, err := suite.ledger.ListOperations(context.Background(), ledger.OperationFilter{StepID: f.step.ID})
	suite.Assert().ErrorIs(err, models.ErrGeneral)
}
