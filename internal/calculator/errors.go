package calculator

import (
	"errors"
	"fmt"

	"github.com/mmynk/tripsplit/internal/money"
)

var (
	ErrInvalidReference = errors.New("expense references unknown member")
	ErrShareMismatch    = errors.New("shares do not sum to expense amount")
	ErrUnbalancedLedger = errors.New("ledger does not balance")
	ErrInvalidExpense   = errors.New("invalid expense")
	ErrDuplicateMember  = errors.New("duplicate member")
)

// InvalidReferenceError reports a userId that is not part of the roster.
// Field is one of "paidBy", "splitAmong", "shares", "from" or "to".
type InvalidReferenceError struct {
	ExpenseID string
	Field     string
	UserID    string
}

func (e *InvalidReferenceError) Error() string {
	if e.ExpenseID == "" {
		return fmt.Sprintf("%s %q is not a member", e.Field, e.UserID)
	}
	return fmt.Sprintf("expense %s: %s %q is not a member", e.ExpenseID, e.Field, e.UserID)
}

func (e *InvalidReferenceError) Unwrap() error { return ErrInvalidReference }

// ShareMismatchError reports explicit shares that do not add up to the amount.
type ShareMismatchError struct {
	ExpenseID   string
	Amount      float64
	SharesTotal float64
}

func (e *ShareMismatchError) Error() string {
	return fmt.Sprintf("expense %s: shares total %.2f, amount is %.2f", e.ExpenseID, e.SharesTotal, e.Amount)
}

func (e *ShareMismatchError) Unwrap() error { return ErrShareMismatch }

// UnbalancedLedgerError is returned when balances do not net to zero.
// It always points at a bug upstream of the settlement step.
type UnbalancedLedgerError struct {
	Residual float64
}

func (e *UnbalancedLedgerError) Error() string {
	return fmt.Sprintf("ledger does not balance: %s left unsettled", money.Format(money.FromFloat(e.Residual)))
}

func (e *UnbalancedLedgerError) Unwrap() error { return ErrUnbalancedLedger }

// InvalidExpenseError reports a structurally malformed expense or payment.
type InvalidExpenseError struct {
	ExpenseID string
	Reason    string
}

func (e *InvalidExpenseError) Error() string {
	if e.ExpenseID == "" {
		return "invalid expense: " + e.Reason
	}
	return fmt.Sprintf("invalid expense %s: %s", e.ExpenseID, e.Reason)
}

func (e *InvalidExpenseError) Unwrap() error { return ErrInvalidExpense }

// DuplicateMemberError reports a userId listed more than once in the roster.
type DuplicateMemberError struct {
	UserID string
}

func (e *DuplicateMemberError) Error() string {
	return fmt.Sprintf("member %q listed more than once", e.UserID)
}

func (e *DuplicateMemberError) Unwrap() error { return ErrDuplicateMember }
