package calculator

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"reflect"
	"testing"

	"github.com/mmynk/tripsplit/internal/money"
)

func TestBuildSummary(t *testing.T) {
	t.Run("simple pair", func(t *testing.T) {
		summary, err := BuildSummary(
			[]Member{alice, bob},
			[]Expense{{ID: "e1", PaidBy: "A", Amount: 100, SplitAmong: []string{"A", "B"}}},
			"B",
		)
		if err != nil {
			t.Fatalf("BuildSummary() error = %v", err)
		}
		if summary.TotalExpenses != 100 {
			t.Errorf("TotalExpenses = %v, want 100", summary.TotalExpenses)
		}
		if summary.AveragePerPerson != 50 {
			t.Errorf("AveragePerPerson = %v, want 50", summary.AveragePerPerson)
		}
		if len(summary.Settlements) != 1 {
			t.Fatalf("expected 1 settlement, got %d", len(summary.Settlements))
		}
		s := summary.Settlements[0]
		if s.From != "B" || s.To != "A" || s.Amount != 50 {
			t.Errorf("settlement = %+v, want B -> A 50", s)
		}
		if summary.MyBalance == nil || summary.MyBalance.UserID != "B" || summary.MyBalance.Balance != -50 {
			t.Errorf("MyBalance = %+v, want Bob at -50", summary.MyBalance)
		}
	})

	t.Run("three-way", func(t *testing.T) {
		summary, err := BuildSummary(
			[]Member{alice, bob, charlie},
			[]Expense{{ID: "e1", PaidBy: "A", Amount: 90, SplitAmong: []string{"A", "B", "C"}}},
			"A",
		)
		if err != nil {
			t.Fatalf("BuildSummary() error = %v", err)
		}
		if summary.AveragePerPerson != 30 {
			t.Errorf("AveragePerPerson = %v, want 30", summary.AveragePerPerson)
		}
		var transferred float64
		for _, s := range summary.Settlements {
			if s.To != "A" {
				t.Errorf("unexpected creditor in %+v", s)
			}
			transferred += s.Amount
		}
		if len(summary.Settlements) != 2 || transferred != 60 {
			t.Errorf("settlements = %+v, want two transfers totalling 60", summary.Settlements)
		}
		if summary.MyBalance == nil || summary.MyBalance.Balance != 60 {
			t.Errorf("MyBalance = %+v, want +60", summary.MyBalance)
		}
	})

	t.Run("already settled", func(t *testing.T) {
		summary, err := BuildSummary(
			[]Member{alice, bob},
			[]Expense{
				{ID: "e1", PaidBy: "A", Amount: 40, SplitAmong: []string{"A", "B"}},
				{ID: "e2", PaidBy: "B", Amount: 40, SplitAmong: []string{"A", "B"}},
			},
			"A",
		)
		if err != nil {
			t.Fatalf("BuildSummary() error = %v", err)
		}
		if summary.Settlements == nil || len(summary.Settlements) != 0 {
			t.Errorf("Settlements = %#v, want empty", summary.Settlements)
		}
	})

	t.Run("empty group", func(t *testing.T) {
		summary, err := BuildSummary(nil, nil, "A")
		if err != nil {
			t.Fatalf("BuildSummary() error = %v", err)
		}
		if summary.TotalExpenses != 0 || summary.AveragePerPerson != 0 {
			t.Errorf("totals = %v/%v, want 0/0", summary.TotalExpenses, summary.AveragePerPerson)
		}
		if summary.MyBalance != nil {
			t.Errorf("MyBalance = %+v, want nil", summary.MyBalance)
		}
		if len(summary.MemberBalances) != 0 || len(summary.Settlements) != 0 {
			t.Errorf("expected no balances or settlements, got %+v", summary)
		}
	})

	t.Run("viewer outside the trip", func(t *testing.T) {
		summary, err := BuildSummary([]Member{alice}, nil, "stranger")
		if err != nil {
			t.Fatalf("BuildSummary() error = %v", err)
		}
		if summary.MyBalance != nil {
			t.Errorf("MyBalance = %+v, want nil", summary.MyBalance)
		}
	})

	t.Run("average rounds half to even", func(t *testing.T) {
		summary, err := BuildSummary(
			[]Member{alice, bob, charlie},
			[]Expense{{ID: "e1", PaidBy: "A", Amount: 10, SplitAmong: []string{"A", "B", "C"}}},
			"",
		)
		if err != nil {
			t.Fatalf("BuildSummary() error = %v", err)
		}
		if summary.AveragePerPerson != 3.33 {
			t.Errorf("AveragePerPerson = %v, want 3.33", summary.AveragePerPerson)
		}
	})

	t.Run("myBalance is a copy", func(t *testing.T) {
		summary, err := BuildSummary(
			[]Member{alice, bob},
			[]Expense{{ID: "e1", PaidBy: "A", Amount: 10, SplitAmong: []string{"A", "B"}}},
			"A",
		)
		if err != nil {
			t.Fatalf("BuildSummary() error = %v", err)
		}
		summary.MyBalance.Balance = 999
		if summary.MemberBalances[0].Balance != 5 {
			t.Errorf("MemberBalances mutated through MyBalance: %+v", summary.MemberBalances[0])
		}
	})

	t.Run("invalid reference aborts", func(t *testing.T) {
		_, err := BuildSummary(
			[]Member{alice, bob},
			[]Expense{{ID: "e1", PaidBy: "Z", Amount: 10, SplitAmong: []string{"A", "B"}}},
			"A",
		)
		if !errors.Is(err, ErrInvalidReference) {
			t.Errorf("error = %v, want ErrInvalidReference", err)
		}
	})

	t.Run("payments reduce suggested settlements", func(t *testing.T) {
		summary, err := BuildSummaryWithPayments(
			[]Member{alice, bob, charlie},
			[]Expense{{ID: "e1", PaidBy: "A", Amount: 90, SplitAmong: []string{"A", "B", "C"}}},
			[]Payment{{From: "B", To: "A", Amount: 30}},
			"C",
		)
		if err != nil {
			t.Fatalf("BuildSummaryWithPayments() error = %v", err)
		}
		if summary.TotalExpenses != 90 {
			t.Errorf("TotalExpenses = %v, want 90 (payments are not expenses)", summary.TotalExpenses)
		}
		if len(summary.Settlements) != 1 {
			t.Fatalf("settlements = %+v, want only C -> A", summary.Settlements)
		}
		if s := summary.Settlements[0]; s.From != "C" || s.To != "A" || s.Amount != 30 {
			t.Errorf("settlement = %+v, want C -> A 30", s)
		}
	})
}

func TestBuildSummary_Idempotent(t *testing.T) {
	members := []Member{alice, bob, charlie, diana}
	expenses := []Expense{
		{ID: "e1", PaidBy: "A", Amount: 123.45, SplitAmong: []string{"A", "B", "C", "D"}},
		{ID: "e2", PaidBy: "C", Amount: 60, Strategy: SplitExact, Shares: map[string]float64{"B": 35, "D": 25}},
		{ID: "e3", PaidBy: "D", Amount: 9.99, SplitAmong: []string{"A", "C"}},
	}

	first, err := BuildSummary(members, expenses, "B")
	if err != nil {
		t.Fatalf("BuildSummary() error = %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := BuildSummary(members, expenses, "B")
		if err != nil {
			t.Fatalf("BuildSummary() error = %v", err)
		}
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d differs:\n%+v\n%+v", i, first, again)
		}
	}
}

func TestBuildSummary_Concurrent(t *testing.T) {
	members := []Member{alice, bob, charlie}
	expenses := []Expense{
		{ID: "e1", PaidBy: "A", Amount: 100, SplitAmong: []string{"A", "B", "C"}},
		{ID: "e2", PaidBy: "B", Amount: 45.5, SplitAmong: []string{"A", "C"}},
	}
	want, err := BuildSummary(members, expenses, "A")
	if err != nil {
		t.Fatalf("BuildSummary() error = %v", err)
	}

	for i := 0; i < 8; i++ {
		t.Run(fmt.Sprintf("worker-%d", i), func(t *testing.T) {
			t.Parallel()
			got, err := BuildSummary(members, expenses, "A")
			if err != nil {
				t.Fatalf("BuildSummary() error = %v", err)
			}
			if !reflect.DeepEqual(want, got) {
				t.Errorf("concurrent result differs")
			}
		})
	}
}

// TestBuildSummary_Properties checks the ledger invariants on generated trips.
func TestBuildSummary_Properties(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 42))

	for run := 0; run < 300; run++ {
		members, expenses := randomTrip(rng)

		summary, err := BuildSummary(members, expenses, members[0].UserID)
		if err != nil {
			t.Fatalf("run %d: BuildSummary() error = %v", run, err)
		}

		// Zero-sum, exact in cents.
		var sum, positive int64
		remaining := make(map[string]int64, len(members))
		for _, b := range summary.MemberBalances {
			c := money.FromFloat(b.Balance)
			sum += c
			if c > 0 {
				positive += c
			}
			remaining[b.UserID] = c
		}
		if sum != 0 {
			t.Fatalf("run %d: balances sum to %d cents", run, sum)
		}

		var debtors, creditors int
		for _, c := range remaining {
			if c > 0 {
				creditors++
			} else if c < 0 {
				debtors++
			}
		}
		if n := len(summary.Settlements); n > 0 && n > debtors+creditors-1 {
			t.Fatalf("run %d: %d transfers for %d debtors and %d creditors", run, n, debtors, creditors)
		}

		var transferred int64
		for _, s := range summary.Settlements {
			c := money.FromFloat(s.Amount)
			if c <= 0 {
				t.Fatalf("run %d: non-positive transfer %+v", run, s)
			}
			if s.From == s.To {
				t.Fatalf("run %d: self transfer %+v", run, s)
			}
			transferred += c
			remaining[s.From] += c
			remaining[s.To] -= c
		}
		if transferred != positive {
			t.Fatalf("run %d: transferred %d cents, total credit is %d", run, transferred, positive)
		}
		for id, c := range remaining {
			if c != 0 {
				t.Fatalf("run %d: %s left with %d cents after settling", run, id, c)
			}
		}

		if math.Abs(summary.TotalExpenses-sumAmounts(expenses)) > 0.001 {
			t.Fatalf("run %d: TotalExpenses = %v", run, summary.TotalExpenses)
		}
	}
}

func randomTrip(rng *rand.Rand) ([]Member, []Expense) {
	members := make([]Member, 1+rng.IntN(6))
	for i := range members {
		members[i] = Member{UserID: fmt.Sprintf("u%02d", i), UserName: fmt.Sprintf("User %d", i)}
	}

	expenses := make([]Expense, rng.IntN(12))
	for i := range expenses {
		cents := 1 + rng.Int64N(100000)
		payer := members[rng.IntN(len(members))].UserID

		var among []string
		for _, m := range members {
			if rng.IntN(2) == 0 {
				among = append(among, m.UserID)
			}
		}
		if len(among) == 0 {
			among = []string{payer}
		}

		e := Expense{ID: fmt.Sprintf("e%d", i), PaidBy: payer, Amount: money.ToFloat(cents)}
		if rng.IntN(3) == 0 {
			e.Strategy = SplitExact
			e.Shares = randomShares(rng, cents, among)
		} else {
			e.SplitAmong = among
		}
		expenses[i] = e
	}
	return members, expenses
}

func randomShares(rng *rand.Rand, cents int64, ids []string) map[string]float64 {
	shares := make(map[string]float64, len(ids))
	left := cents
	for i, id := range ids {
		part := left
		if i < len(ids)-1 {
			part = rng.Int64N(left + 1)
		}
		shares[id] = money.ToFloat(part)
		left -= part
	}
	return shares
}

func sumAmounts(expenses []Expense) float64 {
	var cents int64
	for _, e := range expenses {
		cents += money.FromFloat(e.Amount)
	}
	return money.ToFloat(cents)
}
