package service

import (
	"context"
	"errors"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/tripsplit/internal/calculator"
	"github.com/mmynk/tripsplit/internal/metrics"
	"github.com/mmynk/tripsplit/internal/middleware"
	"github.com/mmynk/tripsplit/internal/models"
	"github.com/mmynk/tripsplit/internal/storage"
	tripv1 "github.com/mmynk/tripsplit/pkg/tripv1"
	"github.com/mmynk/tripsplit/pkg/tripv1/tripv1connect"
)

// TripService implements the Connect TripService
type TripService struct {
	tripv1connect.UnimplementedTripServiceHandler
	store   storage.Store
	metrics *metrics.Metrics
}

// NewTripService creates a new TripService with the given storage backend.
// m may be nil.
func NewTripService(store storage.Store, m *metrics.Metrics) *TripService {
	return &TripService{store: store, metrics: m}
}

// CreateTrip creates a new trip with its initial members.
func (s *TripService) CreateTrip(ctx context.Context, req *connect.Request[tripv1.CreateTripRequest]) (*connect.Response[tripv1.CreateTripResponse], error) {
	slog.Info("CreateTrip request received",
		"name", req.Msg.Name,
		"members_count", len(req.Msg.Members),
	)

	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	trip := &models.Trip{
		Name:    req.Msg.Name,
		Members: toModelMembers(req.Msg.Members),
	}

	// Blank userIds are assigned by the store, so only given ones can clash.
	var given []calculator.Member
	for _, m := range trip.Members {
		if m.UserID != "" {
			given = append(given, calculator.Member{UserID: m.UserID, UserName: m.UserName})
		}
	}
	if _, err := calculator.ComputeBalances(given, nil); err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	if err := s.store.CreateTrip(ctx, trip); err != nil {
		return nil, storeError("CreateTrip", err)
	}

	slog.Info("Trip created", "trip_id", trip.ID)

	return connect.NewResponse(&tripv1.CreateTripResponse{Trip: toPBTrip(trip)}), nil
}

// GetTrip retrieves a trip by ID.
func (s *TripService) GetTrip(ctx context.Context, req *connect.Request[tripv1.GetTripRequest]) (*connect.Response[tripv1.GetTripResponse], error) {
	slog.Info("GetTrip request received", "trip_id", req.Msg.TripID)

	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	trip, err := s.store.GetTrip(ctx, req.Msg.TripID)
	if err != nil {
		return nil, storeError("GetTrip", err, "trip_id", req.Msg.TripID)
	}

	return connect.NewResponse(&tripv1.GetTripResponse{Trip: toPBTrip(trip)}), nil
}

// ListTrips retrieves all trips.
func (s *TripService) ListTrips(ctx context.Context, req *connect.Request[tripv1.ListTripsRequest]) (*connect.Response[tripv1.ListTripsResponse], error) {
	slog.Info("ListTrips request received")

	trips, err := s.store.ListTrips(ctx)
	if err != nil {
		return nil, storeError("ListTrips", err)
	}

	out := make([]*tripv1.Trip, len(trips))
	for i, trip := range trips {
		out[i] = toPBTrip(trip)
	}

	slog.Info("ListTrips successful", "count", len(trips))

	return connect.NewResponse(&tripv1.ListTripsResponse{Trips: out}), nil
}

// UpdateTrip renames a trip. The roster only changes through AddMembers.
func (s *TripService) UpdateTrip(ctx context.Context, req *connect.Request[tripv1.UpdateTripRequest]) (*connect.Response[tripv1.UpdateTripResponse], error) {
	slog.Info("UpdateTrip request received",
		"trip_id", req.Msg.TripID,
		"name", req.Msg.Name,
	)

	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	if err := s.store.UpdateTripName(ctx, req.Msg.TripID, req.Msg.Name); err != nil {
		return nil, storeError("UpdateTrip", err, "trip_id", req.Msg.TripID)
	}

	trip, err := s.store.GetTrip(ctx, req.Msg.TripID)
	if err != nil {
		return nil, storeError("UpdateTrip", err, "trip_id", req.Msg.TripID)
	}

	slog.Info("Trip updated", "trip_id", trip.ID)

	return connect.NewResponse(&tripv1.UpdateTripResponse{Trip: toPBTrip(trip)}), nil
}

// DeleteTrip removes a trip with its expenses and payments.
func (s *TripService) DeleteTrip(ctx context.Context, req *connect.Request[tripv1.DeleteTripRequest]) (*connect.Response[tripv1.DeleteTripResponse], error) {
	slog.Info("DeleteTrip request received", "trip_id", req.Msg.TripID)

	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	if err := s.store.DeleteTrip(ctx, req.Msg.TripID); err != nil {
		return nil, storeError("DeleteTrip", err, "trip_id", req.Msg.TripID)
	}

	slog.Info("Trip deleted", "trip_id", req.Msg.TripID)

	return connect.NewResponse(&tripv1.DeleteTripResponse{}), nil
}

// AddMembers appends members to a trip. Members already on the roster are skipped.
func (s *TripService) AddMembers(ctx context.Context, req *connect.Request[tripv1.AddMembersRequest]) (*connect.Response[tripv1.AddMembersResponse], error) {
	slog.Info("AddMembers request received",
		"trip_id", req.Msg.TripID,
		"members_count", len(req.Msg.Members),
	)

	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	added, err := s.store.AddTripMembers(ctx, req.Msg.TripID, toModelMembers(req.Msg.Members))
	if err != nil {
		return nil, storeError("AddMembers", err, "trip_id", req.Msg.TripID)
	}

	trip, err := s.store.GetTrip(ctx, req.Msg.TripID)
	if err != nil {
		return nil, storeError("AddMembers", err, "trip_id", req.Msg.TripID)
	}

	slog.Info("Members added", "trip_id", trip.ID, "added", len(added))

	return connect.NewResponse(&tripv1.AddMembersResponse{
		Added: toPBMembers(added),
		Trip:  toPBTrip(trip),
	}), nil
}

// GetTripSummary calculates balances and suggested settlements across all
// expenses and recorded payments of a trip. The viewer's own balance is
// filled in when the X-Viewer-ID header names a member.
func (s *TripService) GetTripSummary(ctx context.Context, req *connect.Request[tripv1.GetTripSummaryRequest]) (*connect.Response[tripv1.GetTripSummaryResponse], error) {
	tripID := req.Msg.TripID
	viewerID := middleware.GetViewerID(ctx)
	slog.Info("GetTripSummary request received", "trip_id", tripID, "viewer_id", viewerID)

	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	trip, err := s.store.GetTrip(ctx, tripID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.metrics.SummaryFailed(metrics.ReasonNotFound)
		} else {
			s.metrics.SummaryFailed(metrics.ReasonStorage)
		}
		return nil, storeError("GetTripSummary", err, "trip_id", tripID)
	}

	expenses, err := s.store.ListExpensesByTrip(ctx, tripID)
	if err != nil {
		s.metrics.SummaryFailed(metrics.ReasonStorage)
		return nil, storeError("GetTripSummary - could not list expenses", err, "trip_id", tripID)
	}

	payments, err := s.store.ListPaymentsByTrip(ctx, tripID)
	if err != nil {
		s.metrics.SummaryFailed(metrics.ReasonStorage)
		return nil, storeError("GetTripSummary - could not list payments", err, "trip_id", tripID)
	}

	summary, err := calculator.BuildSummaryWithPayments(
		toCalcMembers(trip.Members),
		toCalcExpenses(expenses),
		toCalcPayments(payments),
		viewerID,
	)
	if err != nil {
		return nil, s.summaryError(tripID, err)
	}
	s.metrics.SummaryComputed(len(summary.Settlements))

	slog.Info("GetTripSummary successful",
		"trip_id", tripID,
		"expenses_count", len(expenses),
		"payments_count", len(payments),
		"members_count", len(summary.MemberBalances),
		"settlements_count", len(summary.Settlements),
	)

	return connect.NewResponse(&tripv1.GetTripSummaryResponse{Summary: toPBSummary(summary)}), nil
}

// summaryError maps an engine failure on stored data to a Connect error.
// A ledger that does not net to zero is a bug in the engine, not in the data.
func (s *TripService) summaryError(tripID string, err error) error {
	if errors.Is(err, calculator.ErrUnbalancedLedger) {
		s.metrics.SummaryFailed(metrics.ReasonUnbalanced)
		slog.Error("GetTripSummary failed - ledger does not balance", "trip_id", tripID, "error", err)
		return connect.NewError(connect.CodeInternal, errors.New("internal error computing settlements"))
	}

	s.metrics.SummaryFailed(metrics.ReasonBadData)
	slog.Warn("GetTripSummary failed - stored data rejected", "trip_id", tripID, "error", err)
	return connect.NewError(connect.CodeFailedPrecondition, errors.New("unable to compute balances: "+err.Error()))
}
