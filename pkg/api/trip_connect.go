package api

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"
)

// TripServiceName is the fully-qualified name of the TripService service.
const TripServiceName = "tripledger.v1.TripService"

// Procedure paths for TripService, usable as HTTP routes and in interceptors.
const (
	TripServiceCreateTripProcedure    = "/tripledger.v1.TripService/CreateTrip"
	TripServiceGetTripProcedure       = "/tripledger.v1.TripService/GetTrip"
	TripServiceListTripsProcedure     = "/tripledger.v1.TripService/ListTrips"
	TripServiceSetTripStatusProcedure = "/tripledger.v1.TripService/SetTripStatus"
	TripServiceDeleteTripProcedure    = "/tripledger.v1.TripService/DeleteTrip"
	TripServiceAddExpenseProcedure    = "/tripledger.v1.TripService/AddExpense"
	TripServiceListExpensesProcedure  = "/tripledger.v1.TripService/ListExpenses"
	TripServiceDeleteExpenseProcedure = "/tripledger.v1.TripService/DeleteExpense"
	TripServiceGetBalancesProcedure   = "/tripledger.v1.TripService/GetBalances"
	TripServiceGetSettlementProcedure = "/tripledger.v1.TripService/GetSettlement"
	TripServiceGetReportProcedure     = "/tripledger.v1.TripService/GetReport"
)

// TripServiceHandler is implemented by the server side of TripService.
type TripServiceHandler interface {
	CreateTrip(context.Context, *connect.Request[CreateTripRequest]) (*connect.Response[CreateTripResponse], error)
	GetTrip(context.Context, *connect.Request[GetTripRequest]) (*connect.Response[GetTripResponse], error)
	ListTrips(context.Context, *connect.Request[ListTripsRequest]) (*connect.Response[ListTripsResponse], error)
	SetTripStatus(context.Context, *connect.Request[SetTripStatusRequest]) (*connect.Response[SetTripStatusResponse], error)
	DeleteTrip(context.Context, *connect.Request[DeleteTripRequest]) (*connect.Response[DeleteTripResponse], error)
	AddExpense(context.Context, *connect.Request[AddExpenseRequest]) (*connect.Response[AddExpenseResponse], error)
	ListExpenses(context.Context, *connect.Request[ListExpensesRequest]) (*connect.Response[ListExpensesResponse], error)
	DeleteExpense(context.Context, *connect.Request[DeleteExpenseRequest]) (*connect.Response[DeleteExpenseResponse], error)
	GetBalances(context.Context, *connect.Request[GetBalancesRequest]) (*connect.Response[GetBalancesResponse], error)
	GetSettlement(context.Context, *connect.Request[GetSettlementRequest]) (*connect.Response[GetSettlementResponse], error)
	GetReport(context.Context, *connect.Request[GetReportRequest]) (*connect.Response[GetReportResponse], error)
}

// NewTripServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewTripServiceHandler(svc TripServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(Codec{})}, opts...)

	createTrip := connect.NewUnaryHandler(TripServiceCreateTripProcedure, svc.CreateTrip, opts...)
	getTrip := connect.NewUnaryHandler(TripServiceGetTripProcedure, svc.GetTrip, opts...)
	listTrips := connect.NewUnaryHandler(TripServiceListTripsProcedure, svc.ListTrips, opts...)
	setTripStatus := connect.NewUnaryHandler(TripServiceSetTripStatusProcedure, svc.SetTripStatus, opts...)
	deleteTrip := connect.NewUnaryHandler(TripServiceDeleteTripProcedure, svc.DeleteTrip, opts...)
	addExpense := connect.NewUnaryHandler(TripServiceAddExpenseProcedure, svc.AddExpense, opts...)
	listExpenses := connect.NewUnaryHandler(TripServiceListExpensesProcedure, svc.ListExpenses, opts...)
	deleteExpense := connect.NewUnaryHandler(TripServiceDeleteExpenseProcedure, svc.DeleteExpense, opts...)
	getBalances := connect.NewUnaryHandler(TripServiceGetBalancesProcedure, svc.GetBalances, opts...)
	getSettlement := connect.NewUnaryHandler(TripServiceGetSettlementProcedure, svc.GetSettlement, opts...)
	getReport := connect.NewUnaryHandler(TripServiceGetReportProcedure, svc.GetReport, opts...)

	return "/" + TripServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case TripServiceCreateTripProcedure:
			createTrip.ServeHTTP(w, r)
		case TripServiceGetTripProcedure:
			getTrip.ServeHTTP(w, r)
		case TripServiceListTripsProcedure:
			listTrips.ServeHTTP(w, r)
		case TripServiceSetTripStatusProcedure:
			setTripStatus.ServeHTTP(w, r)
		case TripServiceDeleteTripProcedure:
			deleteTrip.ServeHTTP(w, r)
		case TripServiceAddExpenseProcedure:
			addExpense.ServeHTTP(w, r)
		case TripServiceListExpensesProcedure:
			listExpenses.ServeHTTP(w, r)
		case TripServiceDeleteExpenseProcedure:
			deleteExpense.ServeHTTP(w, r)
		case TripServiceGetBalancesProcedure:
			getBalances.ServeHTTP(w, r)
		case TripServiceGetSettlementProcedure:
			getSettlement.ServeHTTP(w, r)
		case TripServiceGetReportProcedure:
			getReport.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// TripServiceClient is a client for TripService.
type TripServiceClient interface {
	CreateTrip(context.Context, *connect.Request[CreateTripRequest]) (*connect.Response[CreateTripResponse], error)
	GetTrip(context.Context, *connect.Request[GetTripRequest]) (*connect.Response[GetTripResponse], error)
	ListTrips(context.Context, *connect.Request[ListTripsRequest]) (*connect.Response[ListTripsResponse], error)
	SetTripStatus(context.Context, *connect.Request[SetTripStatusRequest]) (*connect.Response[SetTripStatusResponse], error)
	DeleteTrip(context.Context, *connect.Request[DeleteTripRequest]) (*connect.Response[DeleteTripResponse], error)
	AddExpense(context.Context, *connect.Request[AddExpenseRequest]) (*connect.Response[AddExpenseResponse], error)
	ListExpenses(context.Context, *connect.Request[ListExpensesRequest]) (*connect.Response[ListExpensesResponse], error)
	DeleteExpense(context.Context, *connect.Request[DeleteExpenseRequest]) (*connect.Response[DeleteExpenseResponse], error)
	GetBalances(context.Context, *connect.Request[GetBalancesRequest]) (*connect.Response[GetBalancesResponse], error)
	GetSettlement(context.Context, *connect.Request[GetSettlementRequest]) (*connect.Response[GetSettlementResponse], error)
	GetReport(context.Context, *connect.Request[GetReportRequest]) (*connect.Response[GetReportResponse], error)
}

// NewTripServiceClient constructs a client for TripService at baseURL
// (for example, http://localhost:8080).
func NewTripServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) TripServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(Codec{})}, opts...)
	return &tripServiceClient{
		createTrip:    connect.NewClient[CreateTripRequest, CreateTripResponse](httpClient, baseURL+TripServiceCreateTripProcedure, opts...),
		getTrip:       connect.NewClient[GetTripRequest, GetTripResponse](httpClient, baseURL+TripServiceGetTripProcedure, opts...),
		listTrips:     connect.NewClient[ListTripsRequest, ListTripsResponse](httpClient, baseURL+TripServiceListTripsProcedure, opts...),
		setTripStatus: connect.NewClient[SetTripStatusRequest, SetTripStatusResponse](httpClient, baseURL+TripServiceSetTripStatusProcedure, opts...),
		deleteTrip:    connect.NewClient[DeleteTripRequest, DeleteTripResponse](httpClient, baseURL+TripServiceDeleteTripProcedure, opts...),
		addExpense:    connect.NewClient[AddExpenseRequest, AddExpenseResponse](httpClient, baseURL+TripServiceAddExpenseProcedure, opts...),
		listExpenses:  connect.NewClient[ListExpensesRequest, ListExpensesResponse](httpClient, baseURL+TripServiceListExpensesProcedure, opts...),
		deleteExpense: connect.NewClient[DeleteExpenseRequest, DeleteExpenseResponse](httpClient, baseURL+TripServiceDeleteExpenseProcedure, opts...),
		getBalances:   connect.NewClient[GetBalancesRequest, GetBalancesResponse](httpClient, baseURL+TripServiceGetBalancesProcedure, opts...),
		getSettlement: connect.NewClient[GetSettlementRequest, GetSettlementResponse](httpClient, baseURL+TripServiceGetSettlementProcedure, opts...),
		getReport:     connect.NewClient[GetReportRequest, GetReportResponse](httpClient, baseURL+TripServiceGetReportProcedure, opts...),
	}
}

type tripServiceClient struct {
	createTrip    *connect.Client[CreateTripRequest, CreateTripResponse]
	getTrip       *connect.Client[GetTripRequest, GetTripResponse]
	listTrips     *connect.Client[ListTripsRequest, ListTripsResponse]
	setTripStatus *connect.Client[SetTripStatusRequest, SetTripStatusResponse]
	deleteTrip    *connect.Client[DeleteTripRequest, DeleteTripResponse]
	addExpense    *connect.Client[AddExpenseRequest, AddExpenseResponse]
	listExpenses  *connect.Client[ListExpensesRequest, ListExpensesResponse]
	deleteExpense *connect.Client[DeleteExpenseRequest, DeleteExpenseResponse]
	getBalances   *connect.Client[GetBalancesRequest, GetBalancesResponse]
	getSettlement *connect.Client[GetSettlementRequest, GetSettlementResponse]
	getReport     *connect.Client[GetReportRequest, GetReportResponse]
}

func (c *tripServiceClient) CreateTrip(ctx context.Context, req *connect.Request[CreateTripRequest]) (*connect.Response[CreateTripResponse], error) {
	return c.createTrip.CallUnary(ctx, req)
}

func (c *tripServiceClient) GetTrip(ctx context.Context, req *connect.Request[GetTripRequest]) (*connect.Response[GetTripResponse], error) {
	return c.getTrip.CallUnary(ctx, req)
}

func (c *tripServiceClient) ListTrips(ctx context.Context, req *connect.Request[ListTripsRequest]) (*connect.Response[ListTripsResponse], error) {
	return c.listTrips.CallUnary(ctx, req)
}

func (c *tripServiceClient) SetTripStatus(ctx context.Context, req *connect.Request[SetTripStatusRequest]) (*connect.Response[SetTripStatusResponse], error) {
	return c.setTripStatus.CallUnary(ctx, req)
}

func (c *tripServiceClient) DeleteTrip(ctx context.Context, req *connect.Request[DeleteTripRequest]) (*connect.Response[DeleteTripResponse], error) {
	return c.deleteTrip.CallUnary(ctx, req)
}

func (c *tripServiceClient) AddExpense(ctx context.Context, req *connect.Request[AddExpenseRequest]) (*connect.Response[AddExpenseResponse], error) {
	return c.addExpense.CallUnary(ctx, req)
}

func (c *tripServiceClient) ListExpenses(ctx context.Context, req *connect.Request[ListExpensesRequest]) (*connect.Response[ListExpensesResponse], error) {
	return c.listExpenses.CallUnary(ctx, req)
}

func (c *tripServiceClient) DeleteExpense(ctx context.Context, req *connect.Request[DeleteExpenseRequest]) (*connect.Response[DeleteExpenseResponse], error) {
	return c.deleteExpense.CallUnary(ctx, req)
}

func (c *tripServiceClient) GetBalances(ctx context.Context, req *connect.Request[GetBalancesRequest]) (*connect.Response[GetBalancesResponse], error) {
	return c.getBalances.CallUnary(ctx, req)
}

func (c *tripServiceClient) GetSettlement(ctx context.Context, req *connect.Request[GetSettlementRequest]) (*connect.Response[GetSettlementResponse], error) {
	return c.getSettlement.CallUnary(ctx, req)
}

func (c *tripServiceClient) GetReport(ctx context.Context, req *connect.Request[GetReportRequest]) (*connect.Response[GetReportResponse], error) {
	return c.getReport.CallUnary(ctx, req)
}
