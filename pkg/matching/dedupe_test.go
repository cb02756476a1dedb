package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ramsey-B/fern/pkg/models"
)

func TestDedupeWithinBureau(t *testing.T) {
	tests := []struct {
		name     string
		records  []models.AccountRecord
		expected []string
	}{
		{
			name: "keeps the more complete duplicate",
			records: []models.AccountRecord{
				{ID: "sparse", Bureau: models.BureauEquifax, CreditorName: str("Chase"), AccountNumberMasked: str("XXXX4321"), DateOpened: str("2017-01-01")},
				{ID: "full", Bureau: models.BureauEquifax, CreditorName: str("JPMCB CARD"), AccountNumberMasked: str("4321****"), DateOpened: str("2017-01-01"), CreditLimitCents: cents(100), BalanceCents: cents(50), DateUpdated: str("2024-01-01")},
			},
			expected: []string{"full"},
		},
		{
			name: "first seen wins ties",
			records: []models.AccountRecord{
				{ID: "first", Bureau: models.BureauExperian, CreditorName: str("Citi"), BalanceCents: cents(10)},
				{ID: "second", Bureau: models.BureauExperian, CreditorName: str("CITIBANK"), CreditLimitCents: cents(10)},
			},
			expected: []string{"first"},
		},
		{
			name: "different bureaus are not duplicates",
			records: []models.AccountRecord{
				{ID: "eq", Bureau: models.BureauEquifax, CreditorName: str("Citi")},
				{ID: "tu", Bureau: models.BureauTransUnion, CreditorName: str("Citi")},
			},
			expected: []string{"eq", "tu"},
		},
		{
			name: "raw mask used when no last four",
			records: []models.AccountRecord{
				{ID: "a", Bureau: models.BureauEquifax, CreditorName: str("Citi"), AccountNumberMasked: str("XXXXXXXX")},
				{ID: "b", Bureau: models.BureauEquifax, CreditorName: str("Citi"), AccountNumberMasked: str("********")},
			},
			expected: []string{"a", "b"},
		},
		{
			name: "different open dates are kept apart",
			records: []models.AccountRecord{
				{ID: "a", Bureau: models.BureauEquifax, CreditorName: str("Citi"), DateOpened: str("2017-01-01")},
				{ID: "b", Bureau: models.BureauEquifax, CreditorName: str("Citi"), DateOpened: str("2018-01-01")},
			},
			expected: []string{"a", "b"},
		},
		{
			name: "output keeps first seen key order",
			records: []models.AccountRecord{
				{ID: "x", Bureau: models.BureauEquifax, CreditorName: str("Discover")},
				{ID: "y", Bureau: models.BureauEquifax, CreditorName: str("Chase")},
				{ID: "x2", Bureau: models.BureauEquifax, CreditorName: str("Discover"), CreditLimitCents: cents(1)},
			},
			expected: []string{"x2", "y"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := DedupeWithinBureau(tt.records)
			require.Len(t, out, len(tt.expected))

			ids := make([]string, 0, len(out))
			for _, r := range out {
				ids = append(ids, r.ID)
			}
			assert.Equal(t, tt.expected, ids)
		})
	}
}

func TestDedupeWithinBureau_DoesNotMutateInput(t *testing.T) {
	records := []models.AccountRecord{
		{ID: "a", Bureau: models.BureauEquifax, CreditorName: str("Citi")},
		{ID: "b", Bureau: models.BureauEquifax, CreditorName: str("Citi"), BalanceCents: cents(5)},
	}

	_ = DedupeWithinBureau(records)
	assert.Equal(t, "a", records[0].ID)
	assert.Equal(t, "b", records[1].ID)
}
