package service

import (
	"context"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/mmynk/tripsplit/internal/calculator"
	"github.com/mmynk/tripsplit/internal/metrics"
	"github.com/mmynk/tripsplit/internal/middleware"
	"github.com/mmynk/tripsplit/internal/storage/sqlite"
	tripv1 "github.com/mmynk/tripsplit/pkg/tripv1"
	"github.com/mmynk/tripsplit/pkg/tripv1/tripv1connect"
)

// testEnv is a running server with both services on a temp database.
type testEnv struct {
	trips    tripv1connect.TripServiceClient
	expenses tripv1connect.ExpenseServiceClient
	store    *sqlite.SQLiteStore
	metrics  *metrics.Metrics
}

func setupTestServer(t *testing.T) *testEnv {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	m := metrics.New(prometheus.NewRegistry())
	interceptors := connect.WithInterceptors(middleware.ViewerInterceptor(), middleware.MetricsInterceptor(m))

	tripPath, tripHandler := tripv1connect.NewTripServiceHandler(NewTripService(store, m), interceptors)
	expensePath, expenseHandler := tripv1connect.NewExpenseServiceHandler(NewExpenseService(store), interceptors)

	mux := http.NewServeMux()
	mux.Handle(tripPath, tripHandler)
	mux.Handle(expensePath, expenseHandler)

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return &testEnv{
		trips:    tripv1connect.NewTripServiceClient(http.DefaultClient, server.URL),
		expenses: tripv1connect.NewExpenseServiceClient(http.DefaultClient, server.URL),
		store:    store,
		metrics:  m,
	}
}

// createTrip makes a trip with members A, B, C (Alice, Bob, Charlie).
func (e *testEnv) createTrip(t *testing.T) *tripv1.Trip {
	t.Helper()
	resp, err := e.trips.CreateTrip(context.Background(), connect.NewRequest(&tripv1.CreateTripRequest{
		Name: "Lisbon",
		Members: []tripv1.Member{
			{UserID: "A", UserName: "Alice"},
			{UserID: "B", UserName: "Bob"},
			{UserID: "C", UserName: "Charlie"},
		},
	}))
	if err != nil {
		t.Fatalf("CreateTrip failed: %v", err)
	}
	return resp.Msg.Trip
}

func (e *testEnv) addExpense(t *testing.T, req *tripv1.CreateExpenseRequest) *tripv1.Expense {
	t.Helper()
	resp, err := e.expenses.CreateExpense(context.Background(), connect.NewRequest(req))
	if err != nil {
		t.Fatalf("CreateExpense failed: %v", err)
	}
	return resp.Msg.Expense
}

func expectCode(t *testing.T, err error, want connect.Code) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %v error, got nil", want)
	}
	var connectErr *connect.Error
	if !errors.As(err, &connectErr) {
		t.Fatalf("expected connect.Error, got %T", err)
	}
	if connectErr.Code() != want {
		t.Errorf("expected %v, got %v (%s)", want, connectErr.Code(), connectErr.Message())
	}
}

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < calculator.Epsilon
}
