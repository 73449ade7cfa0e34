package calculator

import (
	"errors"
	"math"
	"testing"
)

func TestSplitShares(t *testing.T) {
	tests := []struct {
		name         string
		expense      Expense
		wantErr      error
		validateFunc func(t *testing.T, shares []Share)
	}{
		{
			name:    "equal split of 10.00 among three keeps every cent",
			expense: Expense{ID: "e1", PaidBy: "A", Amount: 10, SplitAmong: []string{"C", "A", "B"}},
			validateFunc: func(t *testing.T, shares []Share) {
				// Sorted by userId, the last one absorbs the remainder
				want := []Share{{"A", 3.33}, {"B", 3.33}, {"C", 3.34}}
				assertShares(t, shares, want)
			},
		},
		{
			name:    "equal split ignores duplicate participants",
			expense: Expense{ID: "e2", PaidBy: "A", Amount: 10, Strategy: SplitEqual, SplitAmong: []string{"A", "B", "A"}},
			validateFunc: func(t *testing.T, shares []Share) {
				assertShares(t, shares, []Share{{"A", 5}, {"B", 5}})
			},
		},
		{
			name:    "single participant owes everything",
			expense: Expense{ID: "e3", PaidBy: "A", Amount: 7.5, SplitAmong: []string{"A"}},
			validateFunc: func(t *testing.T, shares []Share) {
				assertShares(t, shares, []Share{{"A", 7.5}})
			},
		},
		{
			name: "exact shares are used as given",
			expense: Expense{ID: "e4", PaidBy: "A", Amount: 100, Strategy: SplitExact,
				Shares: map[string]float64{"B": 40, "A": 60}},
			validateFunc: func(t *testing.T, shares []Share) {
				assertShares(t, shares, []Share{{"A", 60}, {"B", 40}})
			},
		},
		{
			name: "exact shares within a cent are reconciled on the last holder",
			expense: Expense{ID: "e5", PaidBy: "A", Amount: 100, Strategy: SplitExact,
				Shares: map[string]float64{"A": 33.33, "B": 33.33, "C": 33.33}},
			validateFunc: func(t *testing.T, shares []Share) {
				assertShares(t, shares, []Share{{"A", 33.33}, {"B", 33.33}, {"C", 33.34}})
			},
		},
		{
			name: "listed participant without a share owes nothing",
			expense: Expense{ID: "e6", PaidBy: "A", Amount: 20, Strategy: SplitExact,
				SplitAmong: []string{"A", "B"}, Shares: map[string]float64{"A": 20}},
			validateFunc: func(t *testing.T, shares []Share) {
				assertShares(t, shares, []Share{{"A", 20}, {"B", 0}})
			},
		},
		{
			name: "exact shares that do not add up are rejected",
			expense: Expense{ID: "e7", PaidBy: "A", Amount: 100, Strategy: SplitExact,
				Shares: map[string]float64{"A": 50, "B": 40}},
			wantErr: ErrShareMismatch,
		},
		{
			name: "negative share is rejected",
			expense: Expense{ID: "e8", PaidBy: "A", Amount: 20, Strategy: SplitExact,
				Shares: map[string]float64{"A": -10, "B": 30}},
			wantErr: ErrInvalidExpense,
		},
		{
			name:    "exact split without shares is rejected",
			expense: Expense{ID: "e9", PaidBy: "A", Amount: 20, Strategy: SplitExact, SplitAmong: []string{"A"}},
			wantErr: ErrInvalidExpense,
		},
		{
			name:    "zero amount is rejected",
			expense: Expense{ID: "e10", PaidBy: "A", Amount: 0, SplitAmong: []string{"A"}},
			wantErr: ErrInvalidExpense,
		},
		{
			name:    "amount below a cent is rejected",
			expense: Expense{ID: "e11", PaidBy: "A", Amount: 0.004, SplitAmong: []string{"A"}},
			wantErr: ErrInvalidExpense,
		},
		{
			name:    "empty participant list is rejected",
			expense: Expense{ID: "e12", PaidBy: "A", Amount: 10},
			wantErr: ErrInvalidExpense,
		},
		{
			name:    "unknown strategy is rejected",
			expense: Expense{ID: "e13", PaidBy: "A", Amount: 10, Strategy: "percent", SplitAmong: []string{"A"}},
			wantErr: ErrInvalidExpense,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shares, err := SplitShares(tt.expense)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("SplitShares() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("SplitShares() unexpected error: %v", err)
			}
			if tt.validateFunc != nil {
				tt.validateFunc(t, shares)
			}
		})
	}
}

func TestSplitShares_MismatchDetails(t *testing.T) {
	_, err := SplitShares(Expense{ID: "dinner", PaidBy: "A", Amount: 100, Strategy: SplitExact,
		Shares: map[string]float64{"A": 50, "B": 40}})

	var mismatch *ShareMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("expected *ShareMismatchError, got %T (%v)", err, err)
	}
	if mismatch.ExpenseID != "dinner" {
		t.Errorf("ExpenseID = %q, want dinner", mismatch.ExpenseID)
	}
	if mismatch.Amount != 100 || mismatch.SharesTotal != 90 {
		t.Errorf("Amount/SharesTotal = %v/%v, want 100/90", mismatch.Amount, mismatch.SharesTotal)
	}
}

func TestSplitShares_SumsExactly(t *testing.T) {
	amounts := []float64{0.01, 0.02, 1, 10, 33.33, 99.99, 100, 1234.56}
	for _, amount := range amounts {
		for n := 1; n <= 7; n++ {
			ids := make([]string, n)
			for i := range ids {
				ids[i] = string(rune('A' + i))
			}
			shares, err := SplitShares(Expense{ID: "x", PaidBy: "A", Amount: amount, SplitAmong: ids})
			if err != nil {
				t.Fatalf("amount %v among %d: %v", amount, n, err)
			}
			var sum int64
			for _, s := range shares {
				sum += int64(math.Round(s.Amount * 100))
			}
			if want := int64(math.Round(amount * 100)); sum != want {
				t.Errorf("amount %v among %d: shares sum to %d cents, want %d", amount, n, sum, want)
			}
		}
	}
}

func assertShares(t *testing.T, got, want []Share) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d shares %v, want %d %v", len(got), got, len(want), want)
	}
	for i := range want {
		if got[i].UserID != want[i].UserID {
			t.Errorf("share %d: user = %s, want %s", i, got[i].UserID, want[i].UserID)
		}
		if math.Abs(got[i].Amount-want[i].Amount) > 0.001 {
			t.Errorf("share %d (%s): amount = %v, want %v", i, want[i].UserID, got[i].Amount, want[i].Amount)
		}
	}
}
