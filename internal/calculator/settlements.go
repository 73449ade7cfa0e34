package calculator

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/mmynk/tripsplit/internal/money"
)

// ledgerTolerance is the residual, in cents, accepted after all transfers.
const ledgerTolerance = 1

// party is a working copy of a creditor's or debtor's remaining amount.
// Once partitioned, remaining is positive: for debtors it is what they still owe.
type party struct {
	userID    string
	userName  string
	remaining int64
}

// byLargest orders parties by remaining amount descending, then userId ascending.
func byLargest(a, b *party) int {
	if c := cmp.Compare(b.remaining, a.remaining); c != 0 {
		return c
	}
	return cmp.Compare(a.userID, b.userID)
}

// ComputeSettlements turns net balances into a short list of transfers that
// zeroes everyone out.
//
// Algorithm (greedy, largest first):
//   - Drop balances that round to zero cents, they are already settled
//   - Each round, match the largest remaining debtor with the largest remaining creditor
//   - Transfer min(debt, credit), then drop whichever side reached zero
//
// Ties on amount go to the smaller userId, so the output is deterministic.
// At most #debtors + #creditors - 1 transfers are produced. If more than a
// cent is left over once one side is exhausted the balances did not net to
// zero and an *UnbalancedLedgerError is returned.
func ComputeSettlements(balances []MemberBalance) ([]DebtSettlement, error) {
	// Entries sharing a userId are merged so a member never pays themselves.
	net := make([]party, 0, len(balances))
	seen := make(map[string]int, len(balances))
	for _, b := range balances {
		cents, err := money.ParseTotal(b.Balance)
		if err != nil {
			return nil, &InvalidExpenseError{Reason: fmt.Sprintf("balance of %q: %v", b.UserID, err)}
		}
		if i, ok := seen[b.UserID]; ok {
			if net[i].remaining, err = money.Add(net[i].remaining, cents); err != nil {
				return nil, &InvalidExpenseError{Reason: fmt.Sprintf("balance of %q: %v", b.UserID, err)}
			}
			continue
		}
		seen[b.UserID] = len(net)
		net = append(net, party{userID: b.UserID, userName: b.UserName, remaining: cents})
	}

	var creditors, debtors []*party
	for i := range net {
		p := &net[i]
		switch {
		case p.remaining > 0:
			creditors = append(creditors, p)
		case p.remaining < 0:
			p.remaining = -p.remaining
			debtors = append(debtors, p)
		}
	}

	settlements := make([]DebtSettlement, 0, max(0, len(creditors)+len(debtors)-1))
	for len(creditors) > 0 && len(debtors) > 0 {
		slices.SortFunc(creditors, byLargest)
		slices.SortFunc(debtors, byLargest)

		debtor, creditor := debtors[0], creditors[0]
		amount := min(debtor.remaining, creditor.remaining)
		settlements = append(settlements, DebtSettlement{
			From:     debtor.userID,
			FromName: debtor.userName,
			To:       creditor.userID,
			ToName:   creditor.userName,
			Amount:   money.ToFloat(amount),
		})

		debtor.remaining -= amount
		creditor.remaining -= amount
		if debtor.remaining == 0 {
			debtors = debtors[1:]
		}
		if creditor.remaining == 0 {
			creditors = creditors[1:]
		}
	}

	// At most one side is left, so the residual is a one-signed sum.
	var residual int64
	var err error
	for _, c := range creditors {
		if residual, err = money.Add(residual, c.remaining); err != nil {
			return nil, &UnbalancedLedgerError{Residual: money.ToFloat(money.MaxCents)}
		}
	}
	for _, d := range debtors {
		if residual, err = money.Add(residual, -d.remaining); err != nil {
			return nil, &UnbalancedLedgerError{Residual: money.ToFloat(-money.MaxCents)}
		}
	}
	if money.Abs(residual) > ledgerTolerance {
		return nil, &UnbalancedLedgerError{Residual: money.ToFloat(residual)}
	}

	return settlements, nil
}
