package calculator

import (
	"math"

	"github.com/mmynk/tripledger/internal/models"
)

// Tolerance is the amount below which a balance or a remaining debt counts as zero.
const Tolerance = 0.01

// IsSettled reports whether amount is zero within Tolerance.
func IsSettled(amount float64) bool {
	return math.Abs(amount) <= Tolerance
}

// SharedPool sums the expenses that are split among all participants.
// Self-paid expenses are excluded.
func SharedPool(expenses []models.Expense) float64 {
	var total float64
	for _, e := range expenses {
		if e.PaidBy.IsSelfPaid() {
			continue
		}
		total += e.Amount
	}
	return total
}

// PerPersonShare splits the pool equally among n participants.
// It returns 0 when there is nobody to split among.
func PerPersonShare(pool float64, n int) float64 {
	if n <= 0 {
		return 0
	}
	return pool / float64(n)
}
