package ledger

import (
	"github.com/budget-steps/backend/internal/models"
)

// Movement describes the direction of an operation and the accounts it
// touches. It is one of Income, Expense or Transfer.
type Movement interface {
	Sign() models.Sign

	// accounts returns the account of the operation and, for transfers,
	// the receiving account.
	accounts() (uint, *uint)
}

// Income is money received into an account.
type Income struct {
	AccountID uint
}

func (Income) Sign() models.Sign { return models.SignIncome }

func (i Income) accounts() (uint, *uint) { return i.AccountID, nil }

// Expense is money paid from an account.
type Expense struct {
	AccountID uint
}

func (Expense) Sign() models.Sign { return models.SignExpense }

func (e Expense) accounts() (uint, *uint) { return e.AccountID, nil }

// Transfer moves money between two accounts of the same budget.
type Transfer struct {
	From uint
	To   uint
}

func (Transfer) Sign() models.Sign { return models.SignTransfer }

func (t Transfer) accounts() (uint, *uint) { return t.From, &t.To }

// NewMovement builds the movement for a sign from the account references
// as they are sent by clients. Which references must be present depends
// on the sign.
//
// A transfer to the same account is built and rejected by CreateOperation.
func NewMovement(sign models.Sign, accountID, accountIDTo *uint) (Movement, error) {
	switch sign {
	case models.SignIncome, models.SignExpense:
		if accountID == nil {
			return nil, invalid("accountId must be set for %s operations", sign)
		}

		if accountIDTo != nil {
			return nil, invalid("accountIdTo must not be set for %s operations", sign)
		}

		if sign == models.SignIncome {
			return Income{AccountID: *accountID}, nil
		}
		return Expense{AccountID: *accountID}, nil

	case models.SignTransfer:
		if accountID == nil || accountIDTo == nil {
			return nil, invalid("accountId and accountIdTo must both be set for transfers")
		}

		return Transfer{From: *accountID, To: *accountIDTo}, nil
	}

	return nil, invalid("sign %q is not one of income, expense, transfer", sign)
}

func validateMovement(m Movement) error {
	if m == nil {
		return invalid("the operation has no sign")
	}

	if t, ok := m.(Transfer); ok && t.From == t.To {
		return invalid("transfer from account %d to the same account", t.From)
	}

	return nil
}
