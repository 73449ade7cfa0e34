package calculator

import (
	"github.com/mmynk/tripsplit/internal/money"
)

// BuildSummary computes balances and settlements for a trip and the
// totals shown above them. myBalance is nil when currentUserID is not a member.
func BuildSummary(members []Member, expenses []Expense, currentUserID string) (ExpensesSummary, error) {
	return BuildSummaryWithPayments(members, expenses, nil, currentUserID)
}

// BuildSummaryWithPayments is BuildSummary with recorded payments applied to
// the balances before settling. Payments do not count towards TotalExpenses.
func BuildSummaryWithPayments(members []Member, expenses []Expense, payments []Payment, currentUserID string) (ExpensesSummary, error) {
	balances, err := ComputeBalancesWithPayments(members, expenses, payments)
	if err != nil {
		return ExpensesSummary{}, err
	}

	settlements, err := ComputeSettlements(balances)
	if err != nil {
		return ExpensesSummary{}, err
	}

	// Every amount passed money.Parse inside ComputeBalancesWithPayments.
	var total int64
	for _, e := range expenses {
		if total, err = money.Add(total, money.FromFloat(e.Amount)); err != nil {
			return ExpensesSummary{}, &InvalidExpenseError{Reason: "total expenses: " + err.Error()}
		}
	}

	summary := ExpensesSummary{
		TotalExpenses:    money.ToFloat(total),
		AveragePerPerson: money.ToFloat(money.DivideBankers(total, max(1, len(members)))),
		MemberBalances:   balances,
		Settlements:      settlements,
	}
	for i := range balances {
		if balances[i].UserID == currentUserID {
			mine := balances[i]
			summary.MyBalance = &mine
			break
		}
	}
	return summary, nil
}
