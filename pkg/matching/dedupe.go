package matching

import (
	"github.com/Ramsey-B/fern/pkg/identifiers"
	"github.com/Ramsey-B/fern/pkg/models"
	"github.com/Ramsey-B/fern/pkg/normalizers"
)

type dedupeKey struct {
	bureau     models.Bureau
	creditor   string
	identifier string
	dateOpened string
}

func keyFor(r models.AccountRecord) dedupeKey {
	identifier := models.StringValue(r.AccountNumberMasked)
	if last4 := identifiers.ExtractLast4(r.AccountNumberMasked); last4 != nil {
		identifier = *last4
	}

	return dedupeKey{
		bureau:     r.Bureau,
		creditor:   normalizers.NormalizeCreditorPtr(r.CreditorName),
		identifier: identifier,
		dateOpened: r.Opened(),
	}
}

// completeness counts the optional fields that make a duplicate worth keeping
func completeness(r models.AccountRecord) int {
	score := 0
	if r.CreditLimitCents != nil {
		score++
	}
	if r.BalanceCents != nil {
		score++
	}
	if r.DateUpdated != nil {
		score++
	}
	return score
}

// DedupeWithinBureau collapses records a single bureau reported more than once.
// The most complete record per key survives and the first one seen wins ties.
// Output follows the order in which each key was first seen.
func DedupeWithinBureau(records []models.AccountRecord) []models.AccountRecord {
	positions := make(map[dedupeKey]int, len(records))
	out := make([]models.AccountRecord, 0, len(records))

	for _, r := range records {
		key := keyFor(r)
		pos, seen := positions[key]
		if !seen {
			positions[key] = len(out)
			out = append(out, r)
			continue
		}

		if completeness(r) > completeness(out[pos]) {
			out[pos] = r
		}
	}

	return out
}
