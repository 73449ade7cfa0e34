package service

import (
	"context"
	"errors"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/tripsplit/internal/calculator"
	"github.com/mmynk/tripsplit/internal/middleware"
	"github.com/mmynk/tripsplit/internal/models"
	"github.com/mmynk/tripsplit/internal/storage"
	tripv1 "github.com/mmynk/tripsplit/pkg/tripv1"
	"github.com/mmynk/tripsplit/pkg/tripv1/tripv1connect"
)

// ExpenseService implements the Connect ExpenseService
type ExpenseService struct {
	tripv1connect.UnimplementedExpenseServiceHandler
	store storage.Store
}

// NewExpenseService creates a new ExpenseService with the given storage backend.
func NewExpenseService(store storage.Store) *ExpenseService {
	return &ExpenseService{store: store}
}

// newExpense builds the stored form of an expense. Shares are dropped for
// equal splits so they cannot linger after a strategy change.
func newExpense(tripID, description, paidBy string, amount float64, strategy string, splitAmong []string, shares map[string]float64) *models.Expense {
	if strategy == "" {
		strategy = models.SplitEqual
	}
	if strategy != models.SplitExact {
		shares = nil
	}
	return &models.Expense{
		TripID:        tripID,
		Description:   description,
		PaidBy:        paidBy,
		Amount:        amount,
		SplitStrategy: strategy,
		SplitAmong:    splitAmong,
		Shares:        shares,
	}
}

// checkExpense runs the expense through the engine against the trip roster,
// so nothing is stored that a later summary would reject.
func checkExpense(trip *models.Trip, expense *models.Expense) ([]tripv1.Share, error) {
	if _, err := calculator.ComputeBalances(toCalcMembers(trip.Members), []calculator.Expense{toCalcExpense(expense)}); err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}
	shares, err := calculator.SplitShares(toCalcExpense(expense))
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}
	return toPBShares(shares), nil
}

// CreateExpense validates an expense against its trip and persists it.
func (s *ExpenseService) CreateExpense(ctx context.Context, req *connect.Request[tripv1.CreateExpenseRequest]) (*connect.Response[tripv1.CreateExpenseResponse], error) {
	slog.Info("CreateExpense request received",
		"trip_id", req.Msg.TripID,
		"paid_by", req.Msg.PaidBy,
		"amount", req.Msg.Amount,
		"split_strategy", req.Msg.SplitStrategy,
	)

	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	trip, err := s.store.GetTrip(ctx, req.Msg.TripID)
	if err != nil {
		return nil, storeError("CreateExpense", err, "trip_id", req.Msg.TripID)
	}

	expense := newExpense(req.Msg.TripID, req.Msg.Description, req.Msg.PaidBy, req.Msg.Amount,
		req.Msg.SplitStrategy, req.Msg.SplitAmong, req.Msg.Shares)
	shares, err := checkExpense(trip, expense)
	if err != nil {
		slog.Warn("CreateExpense rejected", "trip_id", trip.ID, "error", err)
		return nil, err
	}

	if err := s.store.CreateExpense(ctx, expense); err != nil {
		return nil, storeError("CreateExpense", err, "trip_id", trip.ID)
	}

	slog.Info("Expense created", "trip_id", trip.ID, "expense_id", expense.ID)

	return connect.NewResponse(&tripv1.CreateExpenseResponse{
		Expense: toPBExpense(expense),
		Shares:  shares,
	}), nil
}

// GetExpense retrieves an expense with the shares it splits into.
func (s *ExpenseService) GetExpense(ctx context.Context, req *connect.Request[tripv1.GetExpenseRequest]) (*connect.Response[tripv1.GetExpenseResponse], error) {
	slog.Info("GetExpense request received", "expense_id", req.Msg.ExpenseID)

	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	expense, err := s.store.GetExpense(ctx, req.Msg.ExpenseID)
	if err != nil {
		return nil, storeError("GetExpense", err, "expense_id", req.Msg.ExpenseID)
	}

	shares, err := calculator.SplitShares(toCalcExpense(expense))
	if err != nil {
		slog.Warn("GetExpense failed - stored expense does not split", "expense_id", expense.ID, "error", err)
		return nil, connect.NewError(connect.CodeFailedPrecondition, errors.New("unable to split expense: "+err.Error()))
	}

	return connect.NewResponse(&tripv1.GetExpenseResponse{
		Expense: toPBExpense(expense),
		Shares:  toPBShares(shares),
	}), nil
}

// UpdateExpense replaces an expense. Its trip stays the same.
func (s *ExpenseService) UpdateExpense(ctx context.Context, req *connect.Request[tripv1.UpdateExpenseRequest]) (*connect.Response[tripv1.UpdateExpenseResponse], error) {
	slog.Info("UpdateExpense request received",
		"expense_id", req.Msg.ExpenseID,
		"paid_by", req.Msg.PaidBy,
		"amount", req.Msg.Amount,
	)

	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	existing, err := s.store.GetExpense(ctx, req.Msg.ExpenseID)
	if err != nil {
		return nil, storeError("UpdateExpense", err, "expense_id", req.Msg.ExpenseID)
	}

	trip, err := s.store.GetTrip(ctx, existing.TripID)
	if err != nil {
		return nil, storeError("UpdateExpense", err, "trip_id", existing.TripID)
	}

	expense := newExpense(existing.TripID, req.Msg.Description, req.Msg.PaidBy, req.Msg.Amount,
		req.Msg.SplitStrategy, req.Msg.SplitAmong, req.Msg.Shares)
	expense.ID = existing.ID
	expense.CreatedAt = existing.CreatedAt

	shares, err := checkExpense(trip, expense)
	if err != nil {
		slog.Warn("UpdateExpense rejected", "expense_id", expense.ID, "error", err)
		return nil, err
	}

	if err := s.store.UpdateExpense(ctx, expense); err != nil {
		return nil, storeError("UpdateExpense", err, "expense_id", expense.ID)
	}

	slog.Info("Expense updated", "expense_id", expense.ID)

	return connect.NewResponse(&tripv1.UpdateExpenseResponse{
		Expense: toPBExpense(expense),
		Shares:  shares,
	}), nil
}

// DeleteExpense removes an expense.
func (s *ExpenseService) DeleteExpense(ctx context.Context, req *connect.Request[tripv1.DeleteExpenseRequest]) (*connect.Response[tripv1.DeleteExpenseResponse], error) {
	slog.Info("DeleteExpense request received", "expense_id", req.Msg.ExpenseID)

	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	if err := s.store.DeleteExpense(ctx, req.Msg.ExpenseID); err != nil {
		return nil, storeError("DeleteExpense", err, "expense_id", req.Msg.ExpenseID)
	}

	slog.Info("Expense deleted", "expense_id", req.Msg.ExpenseID)

	return connect.NewResponse(&tripv1.DeleteExpenseResponse{}), nil
}

// ListExpenses retrieves all expenses of a trip in the order they were recorded.
func (s *ExpenseService) ListExpenses(ctx context.Context, req *connect.Request[tripv1.ListExpensesRequest]) (*connect.Response[tripv1.ListExpensesResponse], error) {
	slog.Info("ListExpenses request received", "trip_id", req.Msg.TripID)

	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	// An unknown trip is NotFound rather than an empty list.
	if _, err := s.store.GetTrip(ctx, req.Msg.TripID); err != nil {
		return nil, storeError("ListExpenses", err, "trip_id", req.Msg.TripID)
	}

	expenses, err := s.store.ListExpensesByTrip(ctx, req.Msg.TripID)
	if err != nil {
		return nil, storeError("ListExpenses", err, "trip_id", req.Msg.TripID)
	}

	out := make([]*tripv1.Expense, len(expenses))
	for i, e := range expenses {
		out[i] = toPBExpense(e)
	}

	return connect.NewResponse(&tripv1.ListExpensesResponse{Expenses: out}), nil
}

// PreviewSplit computes the shares of an expense without storing it.
func (s *ExpenseService) PreviewSplit(ctx context.Context, req *connect.Request[tripv1.PreviewSplitRequest]) (*connect.Response[tripv1.PreviewSplitResponse], error) {
	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	expense := newExpense("", "", "", req.Msg.Amount, req.Msg.SplitStrategy, req.Msg.SplitAmong, req.Msg.Shares)
	shares, err := calculator.SplitShares(toCalcExpense(expense))
	if err != nil {
		slog.Warn("PreviewSplit failed", "error", err)
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	return connect.NewResponse(&tripv1.PreviewSplitResponse{Shares: toPBShares(shares)}), nil
}

// RecordPayment stores money one member handed to another. The viewer, if
// known, is recorded as its author.
func (s *ExpenseService) RecordPayment(ctx context.Context, req *connect.Request[tripv1.RecordPaymentRequest]) (*connect.Response[tripv1.RecordPaymentResponse], error) {
	slog.Info("RecordPayment request received",
		"trip_id", req.Msg.TripID,
		"from", req.Msg.FromUserID,
		"to", req.Msg.ToUserID,
		"amount", req.Msg.Amount,
	)

	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	trip, err := s.store.GetTrip(ctx, req.Msg.TripID)
	if err != nil {
		return nil, storeError("RecordPayment", err, "trip_id", req.Msg.TripID)
	}

	payment := &models.Payment{
		TripID:     trip.ID,
		FromUserID: req.Msg.FromUserID,
		ToUserID:   req.Msg.ToUserID,
		Amount:     req.Msg.Amount,
		Note:       req.Msg.Note,
		CreatedBy:  middleware.GetViewerID(ctx),
	}

	_, err = calculator.ComputeBalancesWithPayments(toCalcMembers(trip.Members), nil, []calculator.Payment{toCalcPayment(payment)})
	if err != nil {
		slog.Warn("RecordPayment rejected", "trip_id", trip.ID, "error", err)
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	if err := s.store.CreatePayment(ctx, payment); err != nil {
		return nil, storeError("RecordPayment", err, "trip_id", trip.ID)
	}

	slog.Info("Payment recorded", "trip_id", trip.ID, "payment_id", payment.ID)

	return connect.NewResponse(&tripv1.RecordPaymentResponse{Payment: toPBPayment(payment)}), nil
}

// DeletePayment removes a recorded payment.
func (s *ExpenseService) DeletePayment(ctx context.Context, req *connect.Request[tripv1.DeletePaymentRequest]) (*connect.Response[tripv1.DeletePaymentResponse], error) {
	slog.Info("DeletePayment request received", "payment_id", req.Msg.PaymentID)

	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	if err := s.store.DeletePayment(ctx, req.Msg.PaymentID); err != nil {
		return nil, storeError("DeletePayment", err, "payment_id", req.Msg.PaymentID)
	}

	slog.Info("Payment deleted", "payment_id", req.Msg.PaymentID)

	return connect.NewResponse(&tripv1.DeletePaymentResponse{}), nil
}

// ListPayments retrieves all recorded payments of a trip.
func (s *ExpenseService) ListPayments(ctx context.Context, req *connect.Request[tripv1.ListPaymentsRequest]) (*connect.Response[tripv1.ListPaymentsResponse], error) {
	slog.Info("ListPayments request received", "trip_id", req.Msg.TripID)

	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	if _, err := s.store.GetTrip(ctx, req.Msg.TripID); err != nil {
		return nil, storeError("ListPayments", err, "trip_id", req.Msg.TripID)
	}

	payments, err := s.store.ListPaymentsByTrip(ctx, req.Msg.TripID)
	if err != nil {
		return nil, storeError("ListPayments", err, "trip_id", req.Msg.TripID)
	}

	out := make([]*tripv1.Payment, len(payments))
	for i, p := range payments {
		out[i] = toPBPayment(p)
	}

	return connect.NewResponse(&tripv1.ListPaymentsResponse{Payments: out}), nil
}
