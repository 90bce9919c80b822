package service

import (
	"time"

	"github.com/mmynk/tripledger/internal/calculator"
	"github.com/mmynk/tripledger/internal/models"
	"github.com/mmynk/tripledger/internal/report"
	"github.com/mmynk/tripledger/pkg/api"
)

func toAPIUser(u *models.User) api.User {
	return api.User{
		ID:          u.ID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		CreatedAt:   time.Unix(u.CreatedAt, 0).UTC(),
	}
}

func toAPITrip(t models.TripSummary) api.Trip {
	participants := t.Participants
	if participants == nil {
		participants = []string{}
	}
	return api.Trip{
		ID:               t.ID,
		Name:             t.Name,
		StartDate:        formatDate(t.StartDate),
		EndDate:          formatDate(t.EndDate),
		EffectiveEndDate: formatDate(t.EffectiveEndDate()),
		Status:           string(t.Status),
		Participants:     participants,
		TotalExpense:     t.TotalExpense,
		CreatedAt:        time.Unix(t.CreatedAt, 0).UTC(),
	}
}

func toAPIExpense(e models.Expense) api.Expense {
	payer := api.Payer{SelfPaid: e.PaidBy.IsSelfPaid()}
	if name, ok := e.PaidBy.Participant(); ok {
		payer.Participant = name
	}
	return api.Expense{
		ID:          e.ID,
		TripID:      e.TripID,
		Payer:       payer,
		Amount:      e.Amount,
		Category:    e.Category,
		Description: e.Description,
		Timestamp:   e.Timestamp,
	}
}

func toAPIBalances(balances calculator.Balances) []api.Balance {
	out := make([]api.Balance, len(balances))
	for i, b := range balances {
		out[i] = api.Balance{Name: b.Name, Paid: b.Paid, Share: b.Share, Net: b.Net}
	}
	return out
}

func toAPIMemberTotals(totals []calculator.MemberTotal) []api.MemberTotal {
	out := make([]api.MemberTotal, len(totals))
	for i, t := range totals {
		out[i] = api.MemberTotal{Name: t.Name, Total: t.Total}
	}
	return out
}

func toAPITransfers(transfers []calculator.Transfer) []api.Transfer {
	out := make([]api.Transfer, len(transfers))
	for i, t := range transfers {
		out[i] = api.Transfer{From: t.From, To: t.To, Amount: t.Amount}
	}
	return out
}

func toAPIReport(r *report.Report) api.Report {
	days := make([]api.DayTotal, len(r.Days))
	for i, d := range r.Days {
		days[i] = api.DayTotal{Date: d.Day(), Total: d.Total}
	}

	trip := toAPITrip(r.Trip)
	trip.TotalExpense = r.TotalExpense

	return api.Report{
		Trip:           trip,
		SharedPool:     r.SharedPool,
		PerPersonShare: r.PerPersonShare,
		Days:           days,
		Spending:       toAPIMemberTotals(r.Spending),
		Balances:       toAPIBalances(r.Balances),
		Transfers:      toAPITransfers(r.Transfers),
		AllSettled:     r.AllSettled(),
		NoParticipants: r.NoParticipants,
	}
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(api.DateLayout)
}
