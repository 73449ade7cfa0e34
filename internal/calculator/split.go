package calculator

import (
	"fmt"
	"slices"

	"github.com/mmynk/tripsplit/internal/money"
)

// shareTolerance is how far, in cents, explicit shares may drift from the amount.
const shareTolerance = 1

// centShare is a participant's share of one expense, in cents.
type centShare struct {
	userID string
	cents  int64
}

// SplitShares computes how much each participant owes for one expense,
// ordered by userId. It does not check participants against a roster.
func SplitShares(expense Expense) ([]Share, error) {
	shares, err := splitCents(expense)
	if err != nil {
		return nil, err
	}
	out := make([]Share, len(shares))
	for i, s := range shares {
		out[i] = Share{UserID: s.userID, Amount: money.ToFloat(s.cents)}
	}
	return out, nil
}

// splitCents dispatches on the expense strategy. The returned shares always
// sum exactly to the expense amount in cents.
func splitCents(expense Expense) ([]centShare, error) {
	total, err := money.Parse(expense.Amount)
	if err != nil {
		return nil, &InvalidExpenseError{ExpenseID: expense.ID, Reason: err.Error()}
	}
	if total <= 0 {
		return nil, &InvalidExpenseError{ExpenseID: expense.ID, Reason: fmt.Sprintf("amount must be positive, got %.2f", expense.Amount)}
	}

	switch expense.Strategy {
	case "", SplitEqual:
		return splitEqual(expense, total)
	case SplitExact:
		return splitExact(expense, total)
	default:
		return nil, &InvalidExpenseError{ExpenseID: expense.ID, Reason: fmt.Sprintf("unknown split strategy %q", expense.Strategy)}
	}
}

// splitEqual gives every participant total/n cents. The remainder goes to
// the last participant so no cent is lost or duplicated.
func splitEqual(expense Expense, total int64) ([]centShare, error) {
	ids := sortedUnique(expense.SplitAmong)
	if len(ids) == 0 {
		return nil, &InvalidExpenseError{ExpenseID: expense.ID, Reason: "splitAmong is empty"}
	}

	n := int64(len(ids))
	base := total / n
	shares := make([]centShare, len(ids))
	for i, id := range ids {
		shares[i] = centShare{userID: id, cents: base}
	}
	shares[len(shares)-1].cents += total - base*n
	return shares, nil
}

// splitExact uses the explicit share map. Participants listed in SplitAmong
// without an entry owe nothing. A drift of up to one cent is absorbed by the
// last participant holding a share.
func splitExact(expense Expense, total int64) ([]centShare, error) {
	if len(expense.Shares) == 0 {
		return nil, &InvalidExpenseError{ExpenseID: expense.ID, Reason: "exact split needs shares"}
	}

	all := make([]string, 0, len(expense.Shares)+len(expense.SplitAmong))
	for id := range expense.Shares {
		all = append(all, id)
	}
	all = append(all, expense.SplitAmong...)
	ids := sortedUnique(all)

	shares := make([]centShare, len(ids))
	var sum int64
	absorber := len(ids) - 1
	for i, id := range ids {
		c, err := money.Parse(expense.Shares[id])
		if err != nil {
			return nil, &InvalidExpenseError{ExpenseID: expense.ID, Reason: fmt.Sprintf("share for %q: %v", id, err)}
		}
		if c < 0 {
			return nil, &InvalidExpenseError{ExpenseID: expense.ID, Reason: fmt.Sprintf("share for %q is negative", id)}
		}
		if c > 0 {
			absorber = i
		}
		shares[i] = centShare{userID: id, cents: c}
		if sum, err = money.Add(sum, c); err != nil {
			return nil, &InvalidExpenseError{ExpenseID: expense.ID, Reason: "shares: " + err.Error()}
		}
	}

	diff := total - sum
	if money.Abs(diff) > shareTolerance {
		return nil, &ShareMismatchError{
			ExpenseID:   expense.ID,
			Amount:      money.ToFloat(total),
			SharesTotal: money.ToFloat(sum),
		}
	}
	shares[absorber].cents += diff
	return shares, nil
}

func sortedUnique(ids []string) []string {
	out := slices.Clone(ids)
	slices.Sort(out)
	return slices.Compact(out)
}
