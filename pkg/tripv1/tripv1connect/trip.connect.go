package tripv1connect

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	tripv1 "github.com/mmynk/tripsplit/pkg/tripv1"
)

// TripServiceName is the fully-qualified name of the TripService service.
const TripServiceName = "tripsplit.v1.TripService"

// These constants are the fully-qualified names of the RPCs defined in TripService.
const (
	TripServiceCreateTripProcedure     = "/tripsplit.v1.TripService/CreateTrip"
	TripServiceGetTripProcedure        = "/tripsplit.v1.TripService/GetTrip"
	TripServiceListTripsProcedure      = "/tripsplit.v1.TripService/ListTrips"
	TripServiceUpdateTripProcedure     = "/tripsplit.v1.TripService/UpdateTrip"
	TripServiceDeleteTripProcedure     = "/tripsplit.v1.TripService/DeleteTrip"
	TripServiceAddMembersProcedure     = "/tripsplit.v1.TripService/AddMembers"
	TripServiceGetTripSummaryProcedure = "/tripsplit.v1.TripService/GetTripSummary"
)

// TripServiceClient is a client for the tripsplit.v1.TripService service.
type TripServiceClient interface {
	CreateTrip(context.Context, *connect.Request[tripv1.CreateTripRequest]) (*connect.Response[tripv1.CreateTripResponse], error)
	GetTrip(context.Context, *connect.Request[tripv1.GetTripRequest]) (*connect.Response[tripv1.GetTripResponse], error)
	ListTrips(context.Context, *connect.Request[tripv1.ListTripsRequest]) (*connect.Response[tripv1.ListTripsResponse], error)
	UpdateTrip(context.Context, *connect.Request[tripv1.UpdateTripRequest]) (*connect.Response[tripv1.UpdateTripResponse], error)
	DeleteTrip(context.Context, *connect.Request[tripv1.DeleteTripRequest]) (*connect.Response[tripv1.DeleteTripResponse], error)
	AddMembers(context.Context, *connect.Request[tripv1.AddMembersRequest]) (*connect.Response[tripv1.AddMembersResponse], error)
	GetTripSummary(context.Context, *connect.Request[tripv1.GetTripSummaryRequest]) (*connect.Response[tripv1.GetTripSummaryResponse], error)
}

// NewTripServiceClient constructs a client for the tripsplit.v1.TripService
// service. The JSON codec is always installed; opts may add interceptors.
func NewTripServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) TripServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(JSONCodec{})}, opts...)
	return &tripServiceClient{
		createTrip:     connect.NewClient[tripv1.CreateTripRequest, tripv1.CreateTripResponse](httpClient, baseURL+TripServiceCreateTripProcedure, opts...),
		getTrip:        connect.NewClient[tripv1.GetTripRequest, tripv1.GetTripResponse](httpClient, baseURL+TripServiceGetTripProcedure, opts...),
		listTrips:      connect.NewClient[tripv1.ListTripsRequest, tripv1.ListTripsResponse](httpClient, baseURL+TripServiceListTripsProcedure, opts...),
		updateTrip:     connect.NewClient[tripv1.UpdateTripRequest, tripv1.UpdateTripResponse](httpClient, baseURL+TripServiceUpdateTripProcedure, opts...),
		deleteTrip:     connect.NewClient[tripv1.DeleteTripRequest, tripv1.DeleteTripResponse](httpClient, baseURL+TripServiceDeleteTripProcedure, opts...),
		addMembers:     connect.NewClient[tripv1.AddMembersRequest, tripv1.AddMembersResponse](httpClient, baseURL+TripServiceAddMembersProcedure, opts...),
		getTripSummary: connect.NewClient[tripv1.GetTripSummaryRequest, tripv1.GetTripSummaryResponse](httpClient, baseURL+TripServiceGetTripSummaryProcedure, opts...),
	}
}

type tripServiceClient struct {
	createTrip     *connect.Client[tripv1.CreateTripRequest, tripv1.CreateTripResponse]
	getTrip        *connect.Client[tripv1.GetTripRequest, tripv1.GetTripResponse]
	listTrips      *connect.Client[tripv1.ListTripsRequest, tripv1.ListTripsResponse]
	updateTrip     *connect.Client[tripv1.UpdateTripRequest, tripv1.UpdateTripResponse]
	deleteTrip     *connect.Client[tripv1.DeleteTripRequest, tripv1.DeleteTripResponse]
	addMembers     *connect.Client[tripv1.AddMembersRequest, tripv1.AddMembersResponse]
	getTripSummary *connect.Client[tripv1.GetTripSummaryRequest, tripv1.GetTripSummaryResponse]
}

func (c *tripServiceClient) CreateTrip(ctx context.Context, req *connect.Request[tripv1.CreateTripRequest]) (*connect.Response[tripv1.CreateTripResponse], error) {
	return c.createTrip.CallUnary(ctx, req)
}

func (c *tripServiceClient) GetTrip(ctx context.Context, req *connect.Request[tripv1.GetTripRequest]) (*connect.Response[tripv1.GetTripResponse], error) {
	return c.getTrip.CallUnary(ctx, req)
}

func (c *tripServiceClient) ListTrips(ctx context.Context, req *connect.Request[tripv1.ListTripsRequest]) (*connect.Response[tripv1.ListTripsResponse], error) {
	return c.listTrips.CallUnary(ctx, req)
}

func (c *tripServiceClient) UpdateTrip(ctx context.Context, req *connect.Request[tripv1.UpdateTripRequest]) (*connect.Response[tripv1.UpdateTripResponse], error) {
	return c.updateTrip.CallUnary(ctx, req)
}

func (c *tripServiceClient) DeleteTrip(ctx context.Context, req *connect.Request[tripv1.DeleteTripRequest]) (*connect.Response[tripv1.DeleteTripResponse], error) {
	return c.deleteTrip.CallUnary(ctx, req)
}

func (c *tripServiceClient) AddMembers(ctx context.Context, req *connect.Request[tripv1.AddMembersRequest]) (*connect.Response[tripv1.AddMembersResponse], error) {
	return c.addMembers.CallUnary(ctx, req)
}

func (c *tripServiceClient) GetTripSummary(ctx context.Context, req *connect.Request[tripv1.GetTripSummaryRequest]) (*connect.Response[tripv1.GetTripSummaryResponse], error) {
	return c.getTripSummary.CallUnary(ctx, req)
}

// TripServiceHandler is an implementation of the tripsplit.v1.TripService service.
type TripServiceHandler interface {
	CreateTrip(context.Context, *connect.Request[tripv1.CreateTripRequest]) (*connect.Response[tripv1.CreateTripResponse], error)
	GetTrip(context.Context, *connect.Request[tripv1.GetTripRequest]) (*connect.Response[tripv1.GetTripResponse], error)
	ListTrips(context.Context, *connect.Request[tripv1.ListTripsRequest]) (*connect.Response[tripv1.ListTripsResponse], error)
	UpdateTrip(context.Context, *connect.Request[tripv1.UpdateTripRequest]) (*connect.Response[tripv1.UpdateTripResponse], error)
	DeleteTrip(context.Context, *connect.Request[tripv1.DeleteTripRequest]) (*connect.Response[tripv1.DeleteTripResponse], error)
	AddMembers(context.Context, *connect.Request[tripv1.AddMembersRequest]) (*connect.Response[tripv1.AddMembersResponse], error)
	GetTripSummary(context.Context, *connect.Request[tripv1.GetTripSummaryRequest]) (*connect.Response[tripv1.GetTripSummaryResponse], error)
}

// NewTripServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewTripServiceHandler(svc TripServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(JSONCodec{})}, opts...)
	createTrip := connect.NewUnaryHandler(TripServiceCreateTripProcedure, svc.CreateTrip, opts...)
	getTrip := connect.NewUnaryHandler(TripServiceGetTripProcedure, svc.GetTrip, opts...)
	listTrips := connect.NewUnaryHandler(TripServiceListTripsProcedure, svc.ListTrips, opts...)
	updateTrip := connect.NewUnaryHandler(TripServiceUpdateTripProcedure, svc.UpdateTrip, opts...)
	deleteTrip := connect.NewUnaryHandler(TripServiceDeleteTripProcedure, svc.DeleteTrip, opts...)
	addMembers := connect.NewUnaryHandler(TripServiceAddMembersProcedure, svc.AddMembers, opts...)
	getTripSummary := connect.NewUnaryHandler(TripServiceGetTripSummaryProcedure, svc.GetTripSummary, opts...)
	return "/" + TripServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case TripServiceCreateTripProcedure:
			createTrip.ServeHTTP(w, r)
		case TripServiceGetTripProcedure:
			getTrip.ServeHTTP(w, r)
		case TripServiceListTripsProcedure:
			listTrips.ServeHTTP(w, r)
		case TripServiceUpdateTripProcedure:
			updateTrip.ServeHTTP(w, r)
		case TripServiceDeleteTripProcedure:
			deleteTrip.ServeHTTP(w, r)
		case TripServiceAddMembersProcedure:
			addMembers.ServeHTTP(w, r)
		case TripServiceGetTripSummaryProcedure:
			getTripSummary.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// UnimplementedTripServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedTripServiceHandler struct{}

func (UnimplementedTripServiceHandler) CreateTrip(context.Context, *connect.Request[tripv1.CreateTripRequest]) (*connect.Response[tripv1.CreateTripResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tripsplit.v1.TripService.CreateTrip is not implemented"))
}

func (UnimplementedTripServiceHandler) GetTrip(context.Context, *connect.Request[tripv1.GetTripRequest]) (*connect.Response[tripv1.GetTripResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tripsplit.v1.TripService.GetTrip is not implemented"))
}

func (UnimplementedTripServiceHandler) ListTrips(context.Context, *connect.Request[tripv1.ListTripsRequest]) (*connect.Response[tripv1.ListTripsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tripsplit.v1.TripService.ListTrips is not implemented"))
}

func (UnimplementedTripServiceHandler) UpdateTrip(context.Context, *connect.Request[tripv1.UpdateTripRequest]) (*connect.Response[tripv1.UpdateTripResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tripsplit.v1.TripService.UpdateTrip is not implemented"))
}

func (UnimplementedTripServiceHandler) DeleteTrip(context.Context, *connect.Request[tripv1.DeleteTripRequest]) (*connect.Response[tripv1.DeleteTripResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tripsplit.v1.TripService.DeleteTrip is not implemented"))
}

func (UnimplementedTripServiceHandler) AddMembers(context.Context, *connect.Request[tripv1.AddMembersRequest]) (*connect.Response[tripv1.AddMembersResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tripsplit.v1.TripService.AddMembers is not implemented"))
}

func (UnimplementedTripServiceHandler) GetTripSummary(context.Context, *connect.Request[tripv1.GetTripSummaryRequest]) (*connect.Response[tripv1.GetTripSummaryResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tripsplit.v1.TripService.GetTripSummary is not implemented"))
}
