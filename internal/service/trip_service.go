package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"slices"
	"strings"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/tripledger/internal/auth"
	"github.com/mmynk/tripledger/internal/calculator"
	"github.com/mmynk/tripledger/internal/middleware"
	"github.com/mmynk/tripledger/internal/models"
	"github.com/mmynk/tripledger/internal/report"
	"github.com/mmynk/tripledger/internal/storage"
	"github.com/mmynk/tripledger/pkg/api"
)

var (
	errNotOwner      = errors.New("trip belongs to another user")
	errTripCompleted = errors.New("trip is completed; reopen it to add expenses")
)

// TripService implements the Connect TripService.
type TripService struct {
	store    storage.Store
	renderer *report.Renderer
	loc      *time.Location
}

// NewTripService creates a TripService. Reports group expenses by day in loc
// and format amounts with renderer.
func NewTripService(store storage.Store, renderer *report.Renderer, loc *time.Location) *TripService {
	return &TripService{store: store, renderer: renderer, loc: loc}
}

var _ api.TripServiceHandler = (*TripService)(nil)

// CreateTrip creates a new trip owned by the caller.
func (s *TripService) CreateTrip(ctx context.Context, req *connect.Request[api.CreateTripRequest]) (*connect.Response[api.CreateTripResponse], error) {
	slog.Info("CreateTrip request received",
		"name", req.Msg.Name,
		"participants_count", len(req.Msg.Participants),
	)

	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Msg.Name)
	if name == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("trip name is required"))
	}
	start, err := parseDate(req.Msg.StartDate)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}
	end, err := parseDate(req.Msg.EndDate)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}
	if !start.IsZero() && !end.IsZero() && end.Before(start) {
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("end date is before start date"))
	}

	trip := &models.Trip{
		OwnerID:      userID,
		Name:         name,
		StartDate:    start,
		EndDate:      end,
		Participants: models.NormalizeParticipants(req.Msg.Participants),
	}
	if err := s.store.CreateTrip(ctx, trip); err != nil {
		slog.Error("CreateTrip failed", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	slog.Info("Trip created", "trip_id", trip.ID, "participants_count", len(trip.Participants))

	return connect.NewResponse(&api.CreateTripResponse{
		Trip: toAPITrip(models.TripSummary{Trip: *trip}),
	}), nil
}

// GetTrip retrieves a trip with its totals.
func (s *TripService) GetTrip(ctx context.Context, req *connect.Request[api.GetTripRequest]) (*connect.Response[api.GetTripResponse], error) {
	slog.Info("GetTrip request received", "trip_id", req.Msg.TripID)

	trip, err := s.authorize(ctx, req.Msg.TripID)
	if err != nil {
		return nil, err
	}

	return connect.NewResponse(&api.GetTripResponse{Trip: toAPITrip(*trip)}), nil
}

// ListTrips lists the caller's trips, newest first.
func (s *TripService) ListTrips(ctx context.Context, req *connect.Request[api.ListTripsRequest]) (*connect.Response[api.ListTripsResponse], error) {
	slog.Info("ListTrips request received", "status", req.Msg.Status)

	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	var status models.TripStatus
	if req.Msg.Status != "" {
		if status, err = models.ParseTripStatus(req.Msg.Status); err != nil {
			return nil, connect.NewError(connect.CodeInvalidArgument, err)
		}
	}

	trips, err := s.store.ListTrips(ctx, userID, status)
	if err != nil {
		slog.Error("ListTrips failed", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	out := make([]api.Trip, len(trips))
	for i, trip := range trips {
		out[i] = toAPITrip(trip)
	}

	slog.Info("ListTrips successful", "count", len(out))

	return connect.NewResponse(&api.ListTripsResponse{Trips: out}), nil
}

// SetTripStatus marks a trip ongoing or completed.
func (s *TripService) SetTripStatus(ctx context.Context, req *connect.Request[api.SetTripStatusRequest]) (*connect.Response[api.SetTripStatusResponse], error) {
	slog.Info("SetTripStatus request received", "trip_id", req.Msg.TripID, "status", req.Msg.Status)

	status, err := models.ParseTripStatus(req.Msg.Status)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	trip, err := s.authorize(ctx, req.Msg.TripID)
	if err != nil {
		return nil, err
	}

	if err := s.store.UpdateTripStatus(ctx, trip.ID, status); err != nil {
		slog.Error("SetTripStatus failed", "trip_id", trip.ID, "error", err)
		return nil, storeError(err)
	}
	trip.Status = status

	slog.Info("Trip status updated", "trip_id", trip.ID, "status", status)

	return connect.NewResponse(&api.SetTripStatusResponse{Trip: toAPITrip(*trip)}), nil
}

// DeleteTrip deletes a trip with its participants and expenses.
func (s *TripService) DeleteTrip(ctx context.Context, req *connect.Request[api.DeleteTripRequest]) (*connect.Response[api.DeleteTripResponse], error) {
	slog.Info("DeleteTrip request received", "trip_id", req.Msg.TripID)

	if _, err := s.authorize(ctx, req.Msg.TripID); err != nil {
		return nil, err
	}

	if err := s.store.DeleteTrip(ctx, req.Msg.TripID); err != nil {
		slog.Error("DeleteTrip failed", "trip_id", req.Msg.TripID, "error", err)
		return nil, storeError(err)
	}

	slog.Info("Trip deleted", "trip_id", req.Msg.TripID)

	return connect.NewResponse(&api.DeleteTripResponse{}), nil
}

// AddExpense records a payment against an ongoing trip.
func (s *TripService) AddExpense(ctx context.Context, req *connect.Request[api.AddExpenseRequest]) (*connect.Response[api.AddExpenseResponse], error) {
	slog.Info("AddExpense request received",
		"trip_id", req.Msg.TripID,
		"amount", req.Msg.Amount,
		"self_paid", req.Msg.Payer.SelfPaid,
	)

	if math.IsNaN(req.Msg.Amount) || math.IsInf(req.Msg.Amount, 0) || req.Msg.Amount <= 0 {
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("amount must be greater than zero"))
	}

	trip, err := s.authorize(ctx, req.Msg.TripID)
	if err != nil {
		return nil, err
	}
	if trip.Status == models.TripCompleted {
		return nil, connect.NewError(connect.CodeFailedPrecondition, errTripCompleted)
	}

	payer, err := resolvePayer(req.Msg.Payer, trip.Participants)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	expense := &models.Expense{
		TripID:      trip.ID,
		PaidBy:      payer,
		Amount:      req.Msg.Amount,
		Category:    strings.TrimSpace(req.Msg.Category),
		Description: strings.TrimSpace(req.Msg.Description),
		Timestamp:   req.Msg.Timestamp,
	}
	if err := s.store.AddExpense(ctx, expense); err != nil {
		slog.Error("AddExpense failed", "trip_id", trip.ID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	slog.Info("Expense added", "trip_id", trip.ID, "expense_id", expense.ID, "paid_by", expense.PaidBy)

	return connect.NewResponse(&api.AddExpenseResponse{Expense: toAPIExpense(*expense)}), nil
}

// ListExpenses lists a trip's expenses, newest first.
func (s *TripService) ListExpenses(ctx context.Context, req *connect.Request[api.ListExpensesRequest]) (*connect.Response[api.ListExpensesResponse], error) {
	slog.Info("ListExpenses request received", "trip_id", req.Msg.TripID)

	if _, err := s.authorize(ctx, req.Msg.TripID); err != nil {
		return nil, err
	}

	expenses, err := s.store.ListExpenses(ctx, req.Msg.TripID)
	if err != nil {
		slog.Error("ListExpenses failed", "trip_id", req.Msg.TripID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	out := make([]api.Expense, len(expenses))
	for i, e := range expenses {
		out[i] = toAPIExpense(e)
	}

	slog.Info("ListExpenses successful", "trip_id", req.Msg.TripID, "count", len(out))

	return connect.NewResponse(&api.ListExpensesResponse{Expenses: out}), nil
}

// DeleteExpense removes a single expense.
func (s *TripService) DeleteExpense(ctx context.Context, req *connect.Request[api.DeleteExpenseRequest]) (*connect.Response[api.DeleteExpenseResponse], error) {
	slog.Info("DeleteExpense request received", "expense_id", req.Msg.ExpenseID)

	expense, err := s.store.GetExpense(ctx, req.Msg.ExpenseID)
	if err != nil {
		slog.Error("DeleteExpense failed", "expense_id", req.Msg.ExpenseID, "error", err)
		return nil, storeError(err)
	}
	if _, err := s.authorize(ctx, expense.TripID); err != nil {
		return nil, err
	}

	if err := s.store.DeleteExpense(ctx, expense.ID); err != nil {
		slog.Error("DeleteExpense failed", "expense_id", expense.ID, "error", err)
		return nil, storeError(err)
	}

	slog.Info("Expense deleted", "trip_id", expense.TripID, "expense_id", expense.ID)

	return connect.NewResponse(&api.DeleteExpenseResponse{}), nil
}

// GetBalances returns every participant's net balance and spending total.
func (s *TripService) GetBalances(ctx context.Context, req *connect.Request[api.GetBalancesRequest]) (*connect.Response[api.GetBalancesResponse], error) {
	slog.Info("GetBalances request received", "trip_id", req.Msg.TripID)

	trip, expenses, err := s.ledger(ctx, req.Msg.TripID)
	if err != nil {
		return nil, err
	}

	balances := calculator.ComputeBalances(trip.Participants, expenses)
	spending := calculator.SpendingTotals(trip.Participants, expenses)

	slog.Info("GetBalances successful", "trip_id", trip.ID, "participants_count", len(balances))

	return connect.NewResponse(&api.GetBalancesResponse{
		Balances: toAPIBalances(balances),
		Spending: toAPIMemberTotals(spending),
	}), nil
}

// GetSettlement returns the transfers that settle a trip.
func (s *TripService) GetSettlement(ctx context.Context, req *connect.Request[api.GetSettlementRequest]) (*connect.Response[api.GetSettlementResponse], error) {
	slog.Info("GetSettlement request received", "trip_id", req.Msg.TripID)

	trip, expenses, err := s.ledger(ctx, req.Msg.TripID)
	if err != nil {
		return nil, err
	}

	balances := calculator.ComputeBalances(trip.Participants, expenses)
	transfers, err := calculator.ComputeSettlement(balances)
	if err != nil {
		slog.Error("GetSettlement failed", "trip_id", trip.ID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	slog.Info("GetSettlement successful", "trip_id", trip.ID, "transfers_count", len(transfers))

	return connect.NewResponse(&api.GetSettlementResponse{
		Transfers:  toAPITransfers(transfers),
		AllSettled: balances.AllSettled(),
	}), nil
}

// GetReport returns the full trip report and its Markdown rendering.
func (s *TripService) GetReport(ctx context.Context, req *connect.Request[api.GetReportRequest]) (*connect.Response[api.GetReportResponse], error) {
	slog.Info("GetReport request received", "trip_id", req.Msg.TripID)

	trip, expenses, err := s.ledger(ctx, req.Msg.TripID)
	if err != nil {
		return nil, err
	}

	rep, err := report.Build(*trip, trip.Participants, expenses, s.loc)
	if err != nil {
		slog.Error("GetReport failed", "trip_id", trip.ID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	md, err := s.renderer.Markdown(rep)
	if err != nil {
		slog.Error("GetReport render failed", "trip_id", trip.ID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	slog.Info("GetReport successful", "trip_id", trip.ID)

	return connect.NewResponse(&api.GetReportResponse{
		Report:   toAPIReport(rep),
		Markdown: md,
	}), nil
}

// authorize loads a trip and checks that the caller owns it.
func (s *TripService) authorize(ctx context.Context, tripID string) (*models.TripSummary, error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	if tripID == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("trip id is required"))
	}

	trip, err := s.store.GetTripSummary(ctx, tripID)
	if err != nil {
		slog.Error("Failed to load trip", "trip_id", tripID, "error", err)
		return nil, storeError(err)
	}
	if trip.OwnerID != userID {
		slog.Warn("Trip access denied", "trip_id", tripID, "user_id", userID)
		return nil, connect.NewError(connect.CodePermissionDenied, errNotOwner)
	}
	return trip, nil
}

// ledger loads an owned trip together with its expenses.
func (s *TripService) ledger(ctx context.Context, tripID string) (*models.TripSummary, []models.Expense, error) {
	trip, err := s.authorize(ctx, tripID)
	if err != nil {
		return nil, nil, err
	}
	expenses, err := s.store.ListExpenses(ctx, trip.ID)
	if err != nil {
		slog.Error("Failed to load expenses", "trip_id", trip.ID, "error", err)
		return nil, nil, connect.NewError(connect.CodeInternal, err)
	}
	return trip, expenses, nil
}

func callerID(ctx context.Context) (string, error) {
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		return "", connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
	}
	return userID, nil
}

func storeError(err error) error {
	if errors.Is(err, storage.ErrNotFound) {
		return connect.NewError(connect.CodeNotFound, err)
	}
	return connect.NewError(connect.CodeInternal, err)
}

func resolvePayer(p api.Payer, participants []string) (models.Payer, error) {
	name := strings.TrimSpace(p.Participant)
	switch {
	case p.SelfPaid && name != "":
		return models.Payer{}, errors.New("payer cannot be both self-paid and a participant")
	case p.SelfPaid:
		return models.SelfPaid(), nil
	case name == "":
		return models.Payer{}, errors.New("payer is required")
	case !slices.Contains(participants, name):
		return models.Payer{}, fmt.Errorf("payer %q is not a participant of this trip", name)
	}
	return models.PaidBy(name), nil
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.ParseInLocation(api.DateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: want YYYY-MM-DD", s)
	}
	return t, nil
}
