package service

import (
	"context"
	"testing"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/mmynk/tripsplit/internal/metrics"
	"github.com/mmynk/tripsplit/internal/middleware"
	"github.com/mmynk/tripsplit/internal/models"
	"github.com/mmynk/tripsplit/internal/money"
	tripv1 "github.com/mmynk/tripsplit/pkg/tripv1"
)

func TestCreateTrip(t *testing.T) {
	env := setupTestServer(t)

	trip := env.createTrip(t)

	if trip.ID == "" {
		t.Error("expected non-empty trip ID")
	}
	if trip.Name != "Lisbon" {
		t.Errorf("name: expected 'Lisbon', got '%s'", trip.Name)
	}
	if len(trip.Members) != 3 {
		t.Errorf("members: expected 3, got %d", len(trip.Members))
	}
	if trip.CreatedAt == 0 {
		t.Error("expected non-zero CreatedAt")
	}
}

func TestCreateTrip_Invalid(t *testing.T) {
	env := setupTestServer(t)

	tests := []struct {
		name string
		req  *tripv1.CreateTripRequest
	}{
		{"no members", &tripv1.CreateTripRequest{Name: "Empty"}},
		{"blank member name", &tripv1.CreateTripRequest{Members: []tripv1.Member{{UserID: "A", UserName: "  "}}}},
		{"duplicate userId", &tripv1.CreateTripRequest{Members: []tripv1.Member{
			{UserID: "A", UserName: "Alice"},
			{UserID: "A", UserName: "Alice again"},
		}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.trips.CreateTrip(context.Background(), connect.NewRequest(tt.req))
			expectCode(t, err, connect.CodeInvalidArgument)
		})
	}
}

func TestCreateTrip_GeneratesNameAndIDs(t *testing.T) {
	env := setupTestServer(t)

	resp, err := env.trips.CreateTrip(context.Background(), connect.NewRequest(&tripv1.CreateTripRequest{
		Members: []tripv1.Member{{UserName: "Diana"}, {UserName: "Eve"}},
	}))
	if err != nil {
		t.Fatalf("CreateTrip failed: %v", err)
	}

	if resp.Msg.Trip.Name != "Trip with Diana, Eve" {
		t.Errorf("unexpected generated name %q", resp.Msg.Trip.Name)
	}
	for _, m := range resp.Msg.Trip.Members {
		if m.UserID == "" {
			t.Errorf("member %s has no userId", m.UserName)
		}
	}
}

func TestGetTrip_NotFound(t *testing.T) {
	env := setupTestServer(t)

	_, err := env.trips.GetTrip(context.Background(), connect.NewRequest(&tripv1.GetTripRequest{
		TripID: "nonexistent-id",
	}))
	expectCode(t, err, connect.CodeNotFound)
}

func TestListTrips(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()

	empty, err := env.trips.ListTrips(ctx, connect.NewRequest(&tripv1.ListTripsRequest{}))
	if err != nil {
		t.Fatalf("ListTrips failed: %v", err)
	}
	if len(empty.Msg.Trips) != 0 {
		t.Errorf("expected 0 trips, got %d", len(empty.Msg.Trips))
	}

	env.createTrip(t)
	env.createTrip(t)

	listResp, err := env.trips.ListTrips(ctx, connect.NewRequest(&tripv1.ListTripsRequest{}))
	if err != nil {
		t.Fatalf("ListTrips failed: %v", err)
	}
	if len(listResp.Msg.Trips) != 2 {
		t.Errorf("expected 2 trips, got %d", len(listResp.Msg.Trips))
	}
	for _, trip := range listResp.Msg.Trips {
		if len(trip.Members) == 0 {
			t.Errorf("trip %s has no members", trip.Name)
		}
	}
}

func TestUpdateTrip(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()
	trip := env.createTrip(t)

	updateResp, err := env.trips.UpdateTrip(ctx, connect.NewRequest(&tripv1.UpdateTripRequest{
		TripID: trip.ID,
		Name:   "Porto",
	}))
	if err != nil {
		t.Fatalf("UpdateTrip failed: %v", err)
	}
	if updateResp.Msg.Trip.Name != "Porto" {
		t.Errorf("name not updated: got '%s'", updateResp.Msg.Trip.Name)
	}
	if len(updateResp.Msg.Trip.Members) != 3 {
		t.Errorf("members changed on rename: got %d", len(updateResp.Msg.Trip.Members))
	}

	_, err = env.trips.UpdateTrip(ctx, connect.NewRequest(&tripv1.UpdateTripRequest{TripID: "nonexistent-id", Name: "x"}))
	expectCode(t, err, connect.CodeNotFound)

	_, err = env.trips.UpdateTrip(ctx, connect.NewRequest(&tripv1.UpdateTripRequest{TripID: trip.ID, Name: " "}))
	expectCode(t, err, connect.CodeInvalidArgument)
}

func TestDeleteTrip(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()
	trip := env.createTrip(t)

	if _, err := env.trips.DeleteTrip(ctx, connect.NewRequest(&tripv1.DeleteTripRequest{TripID: trip.ID})); err != nil {
		t.Fatalf("DeleteTrip failed: %v", err)
	}

	_, err := env.trips.GetTrip(ctx, connect.NewRequest(&tripv1.GetTripRequest{TripID: trip.ID}))
	expectCode(t, err, connect.CodeNotFound)

	_, err = env.trips.DeleteTrip(ctx, connect.NewRequest(&tripv1.DeleteTripRequest{TripID: trip.ID}))
	expectCode(t, err, connect.CodeNotFound)
}

func TestAddMembers(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()
	trip := env.createTrip(t)

	resp, err := env.trips.AddMembers(ctx, connect.NewRequest(&tripv1.AddMembersRequest{
		TripID:  trip.ID,
		Members: []tripv1.Member{{UserID: "A", UserName: "Alice"}, {UserID: "D", UserName: "Diana"}},
	}))
	if err != nil {
		t.Fatalf("AddMembers failed: %v", err)
	}

	if len(resp.Msg.Added) != 1 || resp.Msg.Added[0].UserID != "D" {
		t.Errorf("expected only D to be added, got %+v", resp.Msg.Added)
	}
	if len(resp.Msg.Trip.Members) != 4 || resp.Msg.Trip.Members[3].UserID != "D" {
		t.Errorf("expected D appended to roster, got %+v", resp.Msg.Trip.Members)
	}

	_, err = env.trips.AddMembers(ctx, connect.NewRequest(&tripv1.AddMembersRequest{
		TripID:  "nonexistent-id",
		Members: []tripv1.Member{{UserName: "Eve"}},
	}))
	expectCode(t, err, connect.CodeNotFound)
}

func TestGetTripSummary(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()
	trip := env.createTrip(t)

	env.addExpense(t, &tripv1.CreateExpenseRequest{
		TripID:      trip.ID,
		Description: "Hotel",
		PaidBy:      "A",
		Amount:      90,
		SplitAmong:  []string{"A", "B", "C"},
	})

	req := connect.NewRequest(&tripv1.GetTripSummaryRequest{TripID: trip.ID})
	req.Header().Set(middleware.ViewerHeader, "B")
	resp, err := env.trips.GetTripSummary(ctx, req)
	if err != nil {
		t.Fatalf("GetTripSummary failed: %v", err)
	}
	summary := resp.Msg.Summary

	if !approxEqual(summary.TotalExpenses, 90) || !approxEqual(summary.AveragePerPerson, 30) {
		t.Errorf("totals: got %v / %v, want 90 / 30", summary.TotalExpenses, summary.AveragePerPerson)
	}

	wantBalances := map[string]float64{"A": 60, "B": -30, "C": -30}
	if len(summary.MemberBalances) != 3 {
		t.Fatalf("expected 3 balances, got %d", len(summary.MemberBalances))
	}
	for i, id := range []string{"A", "B", "C"} {
		b := summary.MemberBalances[i]
		if b.UserID != id || !approxEqual(b.Balance, wantBalances[id]) {
			t.Errorf("balance %d: got %s %.2f, want %s %.2f", i, b.UserID, b.Balance, id, wantBalances[id])
		}
	}

	if len(summary.Settlements) != 2 {
		t.Fatalf("expected 2 settlements, got %+v", summary.Settlements)
	}
	first := summary.Settlements[0]
	if first.From != "B" || first.To != "A" || first.FromName != "Bob" || first.ToName != "Alice" || !approxEqual(first.Amount, 30) {
		t.Errorf("unexpected first settlement %+v", first)
	}

	if summary.MyBalance == nil || summary.MyBalance.UserID != "B" || !approxEqual(summary.MyBalance.Balance, -30) {
		t.Errorf("unexpected viewer balance %+v", summary.MyBalance)
	}

	if got := testutil.ToFloat64(env.metrics.Summaries); got != 1 {
		t.Errorf("summaries counter = %v, want 1", got)
	}
}

func TestGetTripSummary_WithPayments(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()
	trip := env.createTrip(t)

	env.addExpense(t, &tripv1.CreateExpenseRequest{
		TripID: trip.ID, Description: "Hotel", PaidBy: "A", Amount: 90, SplitAmong: []string{"A", "B", "C"},
	})
	if _, err := env.expenses.RecordPayment(ctx, connect.NewRequest(&tripv1.RecordPaymentRequest{
		TripID: trip.ID, FromUserID: "B", ToUserID: "A", Amount: 30,
	})); err != nil {
		t.Fatalf("RecordPayment failed: %v", err)
	}

	resp, err := env.trips.GetTripSummary(ctx, connect.NewRequest(&tripv1.GetTripSummaryRequest{TripID: trip.ID}))
	if err != nil {
		t.Fatalf("GetTripSummary failed: %v", err)
	}
	summary := resp.Msg.Summary

	if !approxEqual(summary.TotalExpenses, 90) {
		t.Errorf("payments must not count as expenses, total = %v", summary.TotalExpenses)
	}
	if len(summary.Settlements) != 1 || summary.Settlements[0].From != "C" || !approxEqual(summary.Settlements[0].Amount, 30) {
		t.Errorf("expected only C to owe A 30, got %+v", summary.Settlements)
	}
	if summary.MyBalance != nil {
		t.Errorf("expected no viewer balance without header, got %+v", summary.MyBalance)
	}
}

func TestGetTripSummary_EmptyTrip(t *testing.T) {
	env := setupTestServer(t)
	trip := env.createTrip(t)

	resp, err := env.trips.GetTripSummary(context.Background(), connect.NewRequest(&tripv1.GetTripSummaryRequest{TripID: trip.ID}))
	if err != nil {
		t.Fatalf("GetTripSummary failed: %v", err)
	}
	if resp.Msg.Summary.TotalExpenses != 0 || len(resp.Msg.Summary.Settlements) != 0 {
		t.Errorf("expected an all-zero summary, got %+v", resp.Msg.Summary)
	}
	if len(resp.Msg.Summary.MemberBalances) != 3 {
		t.Errorf("expected a zero balance per member, got %+v", resp.Msg.Summary.MemberBalances)
	}
}

func TestGetTripSummary_NotFound(t *testing.T) {
	env := setupTestServer(t)

	_, err := env.trips.GetTripSummary(context.Background(), connect.NewRequest(&tripv1.GetTripSummaryRequest{TripID: "nonexistent-id"}))
	expectCode(t, err, connect.CodeNotFound)

	if got := testutil.ToFloat64(env.metrics.SummaryFailures.WithLabelValues(metrics.ReasonNotFound)); got != 1 {
		t.Errorf("not_found failures = %v, want 1", got)
	}
}

func TestGetTripSummary_StoredDataRejected(t *testing.T) {
	env := setupTestServer(t)
	trip := env.createTrip(t)

	// Written straight to the store, bypassing the roster check.
	err := env.store.CreateExpense(context.Background(), &models.Expense{
		TripID:      trip.ID,
		Description: "Ghost dinner",
		PaidBy:      "Z",
		Amount:      10,
		SplitAmong:  []string{"A"},
	})
	if err != nil {
		t.Fatalf("CreateExpense failed: %v", err)
	}

	_, err = env.trips.GetTripSummary(context.Background(), connect.NewRequest(&tripv1.GetTripSummaryRequest{TripID: trip.ID}))
	expectCode(t, err, connect.CodeFailedPrecondition)

	if got := testutil.ToFloat64(env.metrics.SummaryFailures.WithLabelValues(metrics.ReasonBadData)); got != 1 {
		t.Errorf("bad_data failures = %v, want 1", got)
	}
}

func TestGetTripSummary_LargeAmounts(t *testing.T) {
	env := setupTestServer(t)
	trip := env.createTrip(t)

	for range 2 {
		env.addExpense(t, &tripv1.CreateExpenseRequest{
			TripID: trip.ID, Description: "Yacht", PaidBy: "A", Amount: money.MaxAmount, SplitAmong: []string{"B"},
		})
	}

	resp, err := env.trips.GetTripSummary(context.Background(), connect.NewRequest(&tripv1.GetTripSummaryRequest{TripID: trip.ID}))
	if err != nil {
		t.Fatalf("GetTripSummary failed: %v", err)
	}
	summary := resp.Msg.Summary

	if summary.TotalExpenses != 2*money.MaxAmount {
		t.Errorf("TotalExpenses = %v, want %v", summary.TotalExpenses, 2*money.MaxAmount)
	}
	if len(summary.Settlements) != 1 {
		t.Fatalf("expected 1 settlement, got %+v", summary.Settlements)
	}
	s := summary.Settlements[0]
	if s.From != "B" || s.To != "A" || s.Amount != 2*money.MaxAmount {
		t.Errorf("settlement = %+v, want B pays A %v", s, 2*money.MaxAmount)
	}
}

func TestGetTripSummary_TotalsOutOfRange(t *testing.T) {
	env := setupTestServer(t)
	trip := env.createTrip(t)

	// Each expense is accepted on its own; together they exceed what the ledger holds.
	for range 100 {
		env.addExpense(t, &tripv1.CreateExpenseRequest{
			TripID: trip.ID, Description: "Yacht", PaidBy: "A", Amount: money.MaxAmount, SplitAmong: []string{"B"},
		})
	}

	_, err := env.trips.GetTripSummary(context.Background(), connect.NewRequest(&tripv1.GetTripSummaryRequest{TripID: trip.ID}))
	expectCode(t, err, connect.CodeFailedPrecondition)

	if got := testutil.ToFloat64(env.metrics.SummaryFailures.WithLabelValues(metrics.ReasonBadData)); got != 1 {
		t.Errorf("bad_data failures = %v, want 1", got)
	}
}
