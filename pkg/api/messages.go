package api

import "time"

// DateLayout is the wire format of calendar dates such as trip start and end.
const DateLayout = time.DateOnly

// User is an account that owns trips.
type User struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"displayName"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Trip is a trip together with its derived totals.
type Trip struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	// Dates use DateLayout; empty means unset.
	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`

	// EffectiveEndDate is EndDate, or the day of the last expense when
	// EndDate is unset.
	EffectiveEndDate string `json:"effectiveEndDate,omitempty"`

	Status       string    `json:"status"`
	Participants []string  `json:"participants"`
	TotalExpense float64   `json:"totalExpense"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Payer says who covered an expense: exactly one of Participant or SelfPaid.
type Payer struct {
	Participant string `json:"participant,omitempty"`
	SelfPaid    bool   `json:"selfPaid,omitempty"`
}

// Expense is one payment recorded against a trip.
type Expense struct {
	ID          string    `json:"id"`
	TripID      string    `json:"tripId"`
	Payer       Payer     `json:"payer"`
	Amount      float64   `json:"amount"`
	Category    string    `json:"category,omitempty"`
	Description string    `json:"description,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}

// Balance is one participant's position in the shared pool.
type Balance struct {
	Name  string  `json:"name"`
	Paid  float64 `json:"paid"`
	Share float64 `json:"share"`
	Net   float64 `json:"net"`
}

// MemberTotal is what one participant paid toward the shared pool.
type MemberTotal struct {
	Name  string  `json:"name"`
	Total float64 `json:"total"`
}

// DayTotal is the sum of expenses on one calendar day.
type DayTotal struct {
	Date  string  `json:"date"`
	Total float64 `json:"total"`
}

// Transfer is a single payment that moves a debtor toward zero.
type Transfer struct {
	From   string  `json:"from"`
	To     string  `json:"to"`
	Amount float64 `json:"amount"`
}

// Report is the full settlement summary of a trip.
type Report struct {
	Trip           Trip          `json:"trip"`
	SharedPool     float64       `json:"sharedPool"`
	PerPersonShare float64       `json:"perPersonShare"`
	Days           []DayTotal    `json:"days"`
	Spending       []MemberTotal `json:"spending"`
	Balances       []Balance     `json:"balances"`
	Transfers      []Transfer    `json:"transfers"`
	AllSettled     bool          `json:"allSettled"`
	NoParticipants bool          `json:"noParticipants"`
}

// TripService messages.

type CreateTripRequest struct {
	Name         string   `json:"name"`
	StartDate    string   `json:"startDate,omitempty"`
	EndDate      string   `json:"endDate,omitempty"`
	Participants []string `json:"participants"`
}

type CreateTripResponse struct {
	Trip Trip `json:"trip"`
}

type GetTripRequest struct {
	TripID string `json:"tripId"`
}

type GetTripResponse struct {
	Trip Trip `json:"trip"`
}

// ListTripsRequest filters by Status when it is set.
type ListTripsRequest struct {
	Status string `json:"status,omitempty"`
}

type ListTripsResponse struct {
	Trips []Trip `json:"trips"`
}

type SetTripStatusRequest struct {
	TripID string `json:"tripId"`
	Status string `json:"status"`
}

type SetTripStatusResponse struct {
	Trip Trip `json:"trip"`
}

type DeleteTripRequest struct {
	TripID string `json:"tripId"`
}

type DeleteTripResponse struct{}

// AddExpenseRequest records a payment. A zero Timestamp means now.
type AddExpenseRequest struct {
	TripID      string    `json:"tripId"`
	Payer       Payer     `json:"payer"`
	Amount      float64   `json:"amount"`
	Category    string    `json:"category,omitempty"`
	Description string    `json:"description,omitempty"`
	Timestamp   time.Time `json:"timestamp,omitzero"`
}

type AddExpenseResponse struct {
	Expense Expense `json:"expense"`
}

type ListExpensesRequest struct {
	TripID string `json:"tripId"`
}

type ListExpensesResponse struct {
	Expenses []Expense `json:"expenses"`
}

type DeleteExpenseRequest struct {
	ExpenseID string `json:"expenseId"`
}

type DeleteExpenseResponse struct{}

type GetBalancesRequest struct {
	TripID string `json:"tripId"`
}

type GetBalancesResponse struct {
	Balances []Balance     `json:"balances"`
	Spending []MemberTotal `json:"spending"`
}

type GetSettlementRequest struct {
	TripID string `json:"tripId"`
}

type GetSettlementResponse struct {
	Transfers  []Transfer `json:"transfers"`
	AllSettled bool       `json:"allSettled"`
}

type GetReportRequest struct {
	TripID string `json:"tripId"`
}

type GetReportResponse struct {
	Report   Report `json:"report"`
	Markdown string `json:"markdown"`
}

// AuthService messages.

type RegisterRequest struct {
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	Password    string `json:"password"`
}

type RegisterResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

type GetCurrentUserRequest struct{}

type GetCurrentUserResponse struct {
	User User `json:"user"`
}
