package calculator

import (
	"errors"
	"fmt"
)

// ErrInconsistentLedger is returned when balances do not sum to zero.
var ErrInconsistentLedger = errors.New("inconsistent ledger: balances do not sum to zero")

// Transfer is a payment from one participant to another.
type Transfer struct {
	From   string // Person who owes
	To     string // Person who is owed
	Amount float64
}

type position struct {
	name      string
	remaining float64
}

// ComputeSettlement turns net balances into an ordered list of transfers
// that brings every balance to zero.
//
// Payers (net < -Tolerance) and receivers (net > Tolerance) are matched with
// a two-pointer sweep in the order they appear in balances. Each step moves
// min(debt, credit) and advances whichever side is paid off, so at most
// len(balances)-1 transfers are produced.
//
// A settled ledger yields an empty, non-nil slice. Balances that do not sum
// to zero yield ErrInconsistentLedger and no transfers.
func ComputeSettlement(balances Balances) ([]Transfer, error) {
	if sum := balances.Sum(); !IsSettled(sum) {
		return nil, fmt.Errorf("%w (sum %.4f)", ErrInconsistentLedger, sum)
	}

	var payers, receivers []position
	for _, m := range balances {
		switch {
		case m.Net < -Tolerance:
			payers = append(payers, position{name: m.Name, remaining: -m.Net})
		case m.Net > Tolerance:
			receivers = append(receivers, position{name: m.Name, remaining: m.Net})
		}
	}

	transfers := []Transfer{}
	i, j := 0, 0
	for i < len(payers) && j < len(receivers) {
		payer, receiver := &payers[i], &receivers[j]

		amount := min(payer.remaining, receiver.remaining)
		transfers = append(transfers, Transfer{
			From:   payer.name,
			To:     receiver.name,
			Amount: amount,
		})

		payer.remaining -= amount
		receiver.remaining -= amount

		if payer.remaining <= Tolerance {
			i++
		}
		if receiver.remaining <= Tolerance {
			j++
		}
	}

	return transfers, nil
}
