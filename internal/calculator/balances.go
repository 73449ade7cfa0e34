package calculator

import (
	"github.com/mmynk/tripsplit/internal/money"
)

// ledger accumulates paid and owed cents per member, in roster order.
type ledger struct {
	members []Member
	index   map[string]int
	paid    []int64
	owed    []int64
}

func newLedger(members []Member) (*ledger, error) {
	l := &ledger{
		members: members,
		index:   make(map[string]int, len(members)),
		paid:    make([]int64, len(members)),
		owed:    make([]int64, len(members)),
	}
	for i, m := range members {
		if _, exists := l.index[m.UserID]; exists {
			return nil, &DuplicateMemberError{UserID: m.UserID}
		}
		l.index[m.UserID] = i
	}
	return l, nil
}

func (l *ledger) lookup(expenseID, field, userID string) (int, error) {
	i, ok := l.index[userID]
	if !ok {
		return 0, &InvalidReferenceError{ExpenseID: expenseID, Field: field, UserID: userID}
	}
	return i, nil
}

func (l *ledger) addExpense(expense Expense) error {
	payer, err := l.lookup(expense.ID, "paidBy", expense.PaidBy)
	if err != nil {
		return err
	}
	// Roster check before splitting so an unknown participant is reported
	// as a reference problem rather than a share problem.
	for _, id := range expense.SplitAmong {
		if _, err := l.lookup(expense.ID, "splitAmong", id); err != nil {
			return err
		}
	}
	if expense.Strategy == SplitExact {
		for id := range expense.Shares {
			if _, err := l.lookup(expense.ID, "shares", id); err != nil {
				return err
			}
		}
	}

	shares, err := splitCents(expense)
	if err != nil {
		return err
	}

	// Shares sum to the amount, which Parse already bounded.
	var total int64
	for _, s := range shares {
		if err := accumulate(l.owed, l.index[s.userID], s.cents); err != nil {
			return &InvalidExpenseError{ExpenseID: expense.ID, Reason: "owed total: " + err.Error()}
		}
		total += s.cents
	}
	if err := accumulate(l.paid, payer, total); err != nil {
		return &InvalidExpenseError{ExpenseID: expense.ID, Reason: "paid total: " + err.Error()}
	}
	return nil
}

// accumulate adds cents to sums[i] unless that leaves the supported range.
func accumulate(sums []int64, i int, cents int64) error {
	sum, err := money.Add(sums[i], cents)
	if err != nil {
		return err
	}
	sums[i] = sum
	return nil
}

func (l *ledger) addPayment(p Payment) error {
	from, err := l.lookup("", "from", p.From)
	if err != nil {
		return err
	}
	to, err := l.lookup("", "to", p.To)
	if err != nil {
		return err
	}
	if from == to {
		return &InvalidExpenseError{Reason: "payment from a member to themselves"}
	}
	cents, err := money.Parse(p.Amount)
	if err != nil {
		return &InvalidExpenseError{Reason: "payment " + err.Error()}
	}
	if cents <= 0 {
		return &InvalidExpenseError{Reason: "payment amount must be positive"}
	}
	// The payer has effectively paid more, the receiver has consumed more.
	if err := accumulate(l.paid, from, cents); err != nil {
		return &InvalidExpenseError{Reason: "paid total: " + err.Error()}
	}
	if err := accumulate(l.owed, to, cents); err != nil {
		return &InvalidExpenseError{Reason: "owed total: " + err.Error()}
	}
	return nil
}

func (l *ledger) balances() []MemberBalance {
	out := make([]MemberBalance, len(l.members))
	for i, m := range l.members {
		out[i] = MemberBalance{
			UserID:    m.UserID,
			UserName:  m.UserName,
			TotalPaid: money.ToFloat(l.paid[i]),
			TotalOwed: money.ToFloat(l.owed[i]),
			Balance:   money.ToFloat(l.paid[i] - l.owed[i]),
		}
	}
	return out
}

// ComputeBalances computes every member's paid, owed and net balance.
//
// Algorithm:
//   - Start everyone at zero
//   - For each expense: the payer paid the full amount, each participant owes their share
//   - net balance = total paid - total owed, kept in cents so it is exact to two decimals
//
// The result is in the same order as members. Any unknown userId or malformed
// expense aborts the computation.
func ComputeBalances(members []Member, expenses []Expense) ([]MemberBalance, error) {
	return ComputeBalancesWithPayments(members, expenses, nil)
}

// ComputeBalancesWithPayments is ComputeBalances with recorded payments applied
// on top: the payer's TotalPaid and the receiver's TotalOwed grow by the amount.
func ComputeBalancesWithPayments(members []Member, expenses []Expense, payments []Payment) ([]MemberBalance, error) {
	l, err := newLedger(members)
	if err != nil {
		return nil, err
	}
	for _, e := range expenses {
		if err := l.addExpense(e); err != nil {
			return nil, err
		}
	}
	for _, p := range payments {
		if err := l.addPayment(p); err != nil {
			return nil, err
		}
	}
	return l.balances(), nil
}
