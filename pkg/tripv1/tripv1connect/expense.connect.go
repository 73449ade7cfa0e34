package tripv1connect

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	tripv1 "github.com/mmynk/tripsplit/pkg/tripv1"
)

// ExpenseServiceName is the fully-qualified name of the ExpenseService service.
const ExpenseServiceName = "tripsplit.v1.ExpenseService"

// These constants are the fully-qualified names of the RPCs defined in ExpenseService.
const (
	ExpenseServiceCreateExpenseProcedure = "/tripsplit.v1.ExpenseService/CreateExpense"
	ExpenseServiceGetExpenseProcedure    = "/tripsplit.v1.ExpenseService/GetExpense"
	ExpenseServiceUpdateExpenseProcedure = "/tripsplit.v1.ExpenseService/UpdateExpense"
	ExpenseServiceDeleteExpenseProcedure = "/tripsplit.v1.ExpenseService/DeleteExpense"
	ExpenseServiceListExpensesProcedure  = "/tripsplit.v1.ExpenseService/ListExpenses"
	ExpenseServicePreviewSplitProcedure  = "/tripsplit.v1.ExpenseService/PreviewSplit"
	ExpenseServiceRecordPaymentProcedure = "/tripsplit.v1.ExpenseService/RecordPayment"
	ExpenseServiceDeletePaymentProcedure = "/tripsplit.v1.ExpenseService/DeletePayment"
	ExpenseServiceListPaymentsProcedure  = "/tripsplit.v1.ExpenseService/ListPayments"
)

// ExpenseServiceClient is a client for the tripsplit.v1.ExpenseService service.
type ExpenseServiceClient interface {
	CreateExpense(context.Context, *connect.Request[tripv1.CreateExpenseRequest]) (*connect.Response[tripv1.CreateExpenseResponse], error)
	GetExpense(context.Context, *connect.Request[tripv1.GetExpenseRequest]) (*connect.Response[tripv1.GetExpenseResponse], error)
	UpdateExpense(context.Context, *connect.Request[tripv1.UpdateExpenseRequest]) (*connect.Response[tripv1.UpdateExpenseResponse], error)
	DeleteExpense(context.Context, *connect.Request[tripv1.DeleteExpenseRequest]) (*connect.Response[tripv1.DeleteExpenseResponse], error)
	ListExpenses(context.Context, *connect.Request[tripv1.ListExpensesRequest]) (*connect.Response[tripv1.ListExpensesResponse], error)
	PreviewSplit(context.Context, *connect.Request[tripv1.PreviewSplitRequest]) (*connect.Response[tripv1.PreviewSplitResponse], error)
	RecordPayment(context.Context, *connect.Request[tripv1.RecordPaymentRequest]) (*connect.Response[tripv1.RecordPaymentResponse], error)
	DeletePayment(context.Context, *connect.Request[tripv1.DeletePaymentRequest]) (*connect.Response[tripv1.DeletePaymentResponse], error)
	ListPayments(context.Context, *connect.Request[tripv1.ListPaymentsRequest]) (*connect.Response[tripv1.ListPaymentsResponse], error)
}

// NewExpenseServiceClient constructs a client for the tripsplit.v1.ExpenseService service.
func NewExpenseServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) ExpenseServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(JSONCodec{})}, opts...)
	return &expenseServiceClient{
		createExpense: connect.NewClient[tripv1.CreateExpenseRequest, tripv1.CreateExpenseResponse](httpClient, baseURL+ExpenseServiceCreateExpenseProcedure, opts...),
		getExpense:    connect.NewClient[tripv1.GetExpenseRequest, tripv1.GetExpenseResponse](httpClient, baseURL+ExpenseServiceGetExpenseProcedure, opts...),
		updateExpense: connect.NewClient[tripv1.UpdateExpenseRequest, tripv1.UpdateExpenseResponse](httpClient, baseURL+ExpenseServiceUpdateExpenseProcedure, opts...),
		deleteExpense: connect.NewClient[tripv1.DeleteExpenseRequest, tripv1.DeleteExpenseResponse](httpClient, baseURL+ExpenseServiceDeleteExpenseProcedure, opts...),
		listExpenses:  connect.NewClient[tripv1.ListExpensesRequest, tripv1.ListExpensesResponse](httpClient, baseURL+ExpenseServiceListExpensesProcedure, opts...),
		previewSplit:  connect.NewClient[tripv1.PreviewSplitRequest, tripv1.PreviewSplitResponse](httpClient, baseURL+ExpenseServicePreviewSplitProcedure, opts...),
		recordPayment: connect.NewClient[tripv1.RecordPaymentRequest, tripv1.RecordPaymentResponse](httpClient, baseURL+ExpenseServiceRecordPaymentProcedure, opts...),
		deletePayment: connect.NewClient[tripv1.DeletePaymentRequest, tripv1.DeletePaymentResponse](httpClient, baseURL+ExpenseServiceDeletePaymentProcedure, opts...),
		listPayments:  connect.NewClient[tripv1.ListPaymentsRequest, tripv1.ListPaymentsResponse](httpClient, baseURL+ExpenseServiceListPaymentsProcedure, opts...),
	}
}

type expenseServiceClient struct {
	createExpense *connect.Client[tripv1.CreateExpenseRequest, tripv1.CreateExpenseResponse]
	getExpense    *connect.Client[tripv1.GetExpenseRequest, tripv1.GetExpenseResponse]
	updateExpense *connect.Client[tripv1.UpdateExpenseRequest, tripv1.UpdateExpenseResponse]
	deleteExpense *connect.Client[tripv1.DeleteExpenseRequest, tripv1.DeleteExpenseResponse]
	listExpenses  *connect.Client[tripv1.ListExpensesRequest, tripv1.ListExpensesResponse]
	previewSplit  *connect.Client[tripv1.PreviewSplitRequest, tripv1.PreviewSplitResponse]
	recordPayment *connect.Client[tripv1.RecordPaymentRequest, tripv1.RecordPaymentResponse]
	deletePayment *connect.Client[tripv1.DeletePaymentRequest, tripv1.DeletePaymentResponse]
	listPayments  *connect.Client[tripv1.ListPaymentsRequest, tripv1.ListPaymentsResponse]
}

func (c *expenseServiceClient) CreateExpense(ctx context.Context, req *connect.Request[tripv1.CreateExpenseRequest]) (*connect.Response[tripv1.CreateExpenseResponse], error) {
	return c.createExpense.CallUnary(ctx, req)
}

func (c *expenseServiceClient) GetExpense(ctx context.Context, req *connect.Request[tripv1.GetExpenseRequest]) (*connect.Response[tripv1.GetExpenseResponse], error) {
	return c.getExpense.CallUnary(ctx, req)
}

func (c *expenseServiceClient) UpdateExpense(ctx context.Context, req *connect.Request[tripv1.UpdateExpenseRequest]) (*connect.Response[tripv1.UpdateExpenseResponse], error) {
	return c.updateExpense.CallUnary(ctx, req)
}

func (c *expenseServiceClient) DeleteExpense(ctx context.Context, req *connect.Request[tripv1.DeleteExpenseRequest]) (*connect.Response[tripv1.DeleteExpenseResponse], error) {
	return c.deleteExpense.CallUnary(ctx, req)
}

func (c *expenseServiceClient) ListExpenses(ctx context.Context, req *connect.Request[tripv1.ListExpensesRequest]) (*connect.Response[tripv1.ListExpensesResponse], error) {
	return c.listExpenses.CallUnary(ctx, req)
}

func (c *expenseServiceClient) PreviewSplit(ctx context.Context, req *connect.Request[tripv1.PreviewSplitRequest]) (*connect.Response[tripv1.PreviewSplitResponse], error) {
	return c.previewSplit.CallUnary(ctx, req)
}

func (c *expenseServiceClient) RecordPayment(ctx context.Context, req *connect.Request[tripv1.RecordPaymentRequest]) (*connect.Response[tripv1.RecordPaymentResponse], error) {
	return c.recordPayment.CallUnary(ctx, req)
}

func (c *expenseServiceClient) DeletePayment(ctx context.Context, req *connect.Request[tripv1.DeletePaymentRequest]) (*connect.Response[tripv1.DeletePaymentResponse], error) {
	return c.deletePayment.CallUnary(ctx, req)
}

func (c *expenseServiceClient) ListPayments(ctx context.Context, req *connect.Request[tripv1.ListPaymentsRequest]) (*connect.Response[tripv1.ListPaymentsResponse], error) {
	return c.listPayments.CallUnary(ctx, req)
}

// ExpenseServiceHandler is an implementation of the tripsplit.v1.ExpenseService service.
type ExpenseServiceHandler interface {
	CreateExpense(context.Context, *connect.Request[tripv1.CreateExpenseRequest]) (*connect.Response[tripv1.CreateExpenseResponse], error)
	GetExpense(context.Context, *connect.Request[tripv1.GetExpenseRequest]) (*connect.Response[tripv1.GetExpenseResponse], error)
	UpdateExpense(context.Context, *connect.Request[tripv1.UpdateExpenseRequest]) (*connect.Response[tripv1.UpdateExpenseResponse], error)
	DeleteExpense(context.Context, *connect.Request[tripv1.DeleteExpenseRequest]) (*connect.Response[tripv1.DeleteExpenseResponse], error)
	ListExpenses(context.Context, *connect.Request[tripv1.ListExpensesRequest]) (*connect.Response[tripv1.ListExpensesResponse], error)
	PreviewSplit(context.Context, *connect.Request[tripv1.PreviewSplitRequest]) (*connect.Response[tripv1.PreviewSplitResponse], error)
	RecordPayment(context.Context, *connect.Request[tripv1.RecordPaymentRequest]) (*connect.Response[tripv1.RecordPaymentResponse], error)
	DeletePayment(context.Context, *connect.Request[tripv1.DeletePaymentRequest]) (*connect.Response[tripv1.DeletePaymentResponse], error)
	ListPayments(context.Context, *connect.Request[tripv1.ListPaymentsRequest]) (*connect.Response[tripv1.ListPaymentsResponse], error)
}

// NewExpenseServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewExpenseServiceHandler(svc ExpenseServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(JSONCodec{})}, opts...)
	createExpense := connect.NewUnaryHandler(ExpenseServiceCreateExpenseProcedure, svc.CreateExpense, opts...)
	getExpense := connect.NewUnaryHandler(ExpenseServiceGetExpenseProcedure, svc.GetExpense, opts...)
	updateExpense := connect.NewUnaryHandler(ExpenseServiceUpdateExpenseProcedure, svc.UpdateExpense, opts...)
	deleteExpense := connect.NewUnaryHandler(ExpenseServiceDeleteExpenseProcedure, svc.DeleteExpense, opts...)
	listExpenses := connect.NewUnaryHandler(ExpenseServiceListExpensesProcedure, svc.ListExpenses, opts...)
	previewSplit := connect.NewUnaryHandler(ExpenseServicePreviewSplitProcedure, svc.PreviewSplit, opts...)
	recordPayment := connect.NewUnaryHandler(ExpenseServiceRecordPaymentProcedure, svc.RecordPayment, opts...)
	deletePayment := connect.NewUnaryHandler(ExpenseServiceDeletePaymentProcedure, svc.DeletePayment, opts...)
	listPayments := connect.NewUnaryHandler(ExpenseServiceListPaymentsProcedure, svc.ListPayments, opts...)
	return "/" + ExpenseServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case ExpenseServiceCreateExpenseProcedure:
			createExpense.ServeHTTP(w, r)
		case ExpenseServiceGetExpenseProcedure:
			getExpense.ServeHTTP(w, r)
		case ExpenseServiceUpdateExpenseProcedure:
			updateExpense.ServeHTTP(w, r)
		case ExpenseServiceDeleteExpenseProcedure:
			deleteExpense.ServeHTTP(w, r)
		case ExpenseServiceListExpensesProcedure:
			listExpenses.ServeHTTP(w, r)
		case ExpenseServicePreviewSplitProcedure:
			previewSplit.ServeHTTP(w, r)
		case ExpenseServiceRecordPaymentProcedure:
			recordPayment.ServeHTTP(w, r)
		case ExpenseServiceDeletePaymentProcedure:
			deletePayment.ServeHTTP(w, r)
		case ExpenseServiceListPaymentsProcedure:
			listPayments.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// UnimplementedExpenseServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedExpenseServiceHandler struct{}

func (UnimplementedExpenseServiceHandler) CreateExpense(context.Context, *connect.Request[tripv1.CreateExpenseRequest]) (*connect.Response[tripv1.CreateExpenseResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tripsplit.v1.ExpenseService.CreateExpense is not implemented"))
}

func (UnimplementedExpenseServiceHandler) GetExpense(context.Context, *connect.Request[tripv1.GetExpenseRequest]) (*connect.Response[tripv1.GetExpenseResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tripsplit.v1.ExpenseService.GetExpense is not implemented"))
}

func (UnimplementedExpenseServiceHandler) UpdateExpense(context.Context, *connect.Request[tripv1.UpdateExpenseRequest]) (*connect.Response[tripv1.UpdateExpenseResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tripsplit.v1.ExpenseService.UpdateExpense is not implemented"))
}

func (UnimplementedExpenseServiceHandler) DeleteExpense(context.Context, *connect.Request[tripv1.DeleteExpenseRequest]) (*connect.Response[tripv1.DeleteExpenseResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tripsplit.v1.ExpenseService.DeleteExpense is not implemented"))
}

func (UnimplementedExpenseServiceHandler) ListExpenses(context.Context, *connect.Request[tripv1.ListExpensesRequest]) (*connect.Response[tripv1.ListExpensesResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tripsplit.v1.ExpenseService.ListExpenses is not implemented"))
}

func (UnimplementedExpenseServiceHandler) PreviewSplit(context.Context, *connect.Request[tripv1.PreviewSplitRequest]) (*connect.Response[tripv1.PreviewSplitResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tripsplit.v1.ExpenseService.PreviewSplit is not implemented"))
}

func (UnimplementedExpenseServiceHandler) RecordPayment(context.Context, *connect.Request[tripv1.RecordPaymentRequest]) (*connect.Response[tripv1.RecordPaymentResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tripsplit.v1.ExpenseService.RecordPayment is not implemented"))
}

func (UnimplementedExpenseServiceHandler) DeletePayment(context.Context, *connect.Request[tripv1.DeletePaymentRequest]) (*connect.Response[tripv1.DeletePaymentResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tripsplit.v1.ExpenseService.DeletePayment is not implemented"))
}

func (UnimplementedExpenseServiceHandler) ListPayments(context.Context, *connect.Request[tripv1.ListPaymentsRequest]) (*connect.Response[tripv1.ListPaymentsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tripsplit.v1.ExpenseService.ListPayments is not implemented"))
}
