// Package models defines the core domain models for the trip ledger.
//
// # Models
//
//   - Trip: a journey shared by a fixed set of participants
//   - Participant: a display name scoped to one trip
//   - Expense: money spent during a trip, paid by a participant or self-paid
//   - Payer: who covered an expense (a participant, or SelfPaid)
//   - User: the account that owns trips
//
// Participants are identified by their name within a trip. Users never appear
// as participants; they only own the trips they created.
//
// # Relationships
//
// Models reference each other by ID strings rather than pointers. Deleting a
// trip removes its participants and expenses with it.
package models
