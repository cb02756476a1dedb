package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Ramsey-B/fern/pkg/models"
)

func str(s string) *string {
	return &s
}

func cents(v int64) *int64 {
	return &v
}

func TestScore_SameBureauIsZero(t *testing.T) {
	a := models.AccountRecord{
		ID:                  "a",
		Bureau:              models.BureauEquifax,
		CreditorName:        str("AMEX"),
		DateOpened:          str("2019-03-01"),
		CreditLimitCents:    cents(500000),
		AccountNumberMasked: str("371234XXXXX1005"),
	}

	assert.Equal(t, 0, Score(a, a))

	detail := ScoreDetail(a, a)
	assert.True(t, detail.SameBureau)
	assert.Empty(t, detail.Signals)
}

func TestScore_AliasedCreditorAcrossBureaus(t *testing.T) {
	a := models.AccountRecord{
		ID:               "eq-1",
		Bureau:           models.BureauEquifax,
		CreditorName:     str("AMEX"),
		DateOpened:       str("2019-03-01"),
		CreditLimitCents: cents(500000),
		BalanceCents:     cents(12000),
		LoanType:         "credit_card",
		Status:           models.AccountStatusOpen,
	}
	b := models.AccountRecord{
		ID:               "tu-1",
		Bureau:           models.BureauTransUnion,
		CreditorName:     str("AMERICAN EXPRESS"),
		DateOpened:       str("2019-03-01"),
		CreditLimitCents: cents(500000),
		BalanceCents:     cents(90000),
		LoanType:         "charge_card",
		Status:           models.AccountStatusClosed,
	}

	detail := ScoreDetail(a, b)
	assert.Equal(t, 95, detail.Score)
	assert.True(t, detail.Matched)
	assert.Equal(t, map[string]int{
		SignalDateOpened:  PointsDateOpened,
		SignalCreditLimit: PointsCreditLimit,
		SignalCreditor:    PointsCreditor,
	}, detail.Signals)
}

func TestScore_AllSignals(t *testing.T) {
	a := models.AccountRecord{
		ID:                  "eq-1",
		Bureau:              models.BureauEquifax,
		CreditorName:        str("JPMCB Card Services"),
		AccountNumberMasked: str("414709786075****"),
		DateOpened:          str("2018-06-15"),
		CreditLimitCents:    cents(1000000),
		BalanceCents:        cents(250000),
		LoanType:            "credit_card",
		Status:              models.AccountStatusOpen,
	}
	b := a
	b.ID = "ex-1"
	b.Bureau = models.BureauExperian
	b.CreditorName = str("CHASE CARD")
	b.BalanceCents = cents(250100)

	assert.Equal(t, MaxScore, Score(a, b))
	assert.Equal(t, 170, MaxScore)
}

func TestScore_EmptyLoanTypeAndStatusStillMatch(t *testing.T) {
	a := models.AccountRecord{ID: "a", Bureau: models.BureauEquifax}
	b := models.AccountRecord{ID: "b", Bureau: models.BureauExperian}

	detail := ScoreDetail(a, b)
	assert.Equal(t, PointsLoanType+PointsStatus, detail.Score)
	assert.False(t, detail.Matched)
}

func TestScore_Balance(t *testing.T) {
	tests := []struct {
		name     string
		a, b     *int64
		expected bool
	}{
		{name: "both zero", a: cents(0), b: cents(0), expected: false},
		{name: "one zero", a: cents(0), b: cents(100), expected: false},
		{name: "one missing", a: nil, b: cents(100), expected: false},
		{name: "within one percent", a: cents(100000), b: cents(100500), expected: true},
		{name: "equal", a: cents(4242), b: cents(4242), expected: true},
		{name: "beyond one percent", a: cents(100000), b: cents(102000), expected: false},
		{name: "equal credit balances", a: cents(-500), b: cents(-500), expected: true},
		{name: "close credit balances", a: cents(-100000), b: cents(-100500), expected: true},
		{name: "distant credit balances", a: cents(-100), b: cents(-5000), expected: false},
		{name: "opposite signs average to zero", a: cents(-100), b: cents(100), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := models.AccountRecord{ID: "a", Bureau: models.BureauEquifax, BalanceCents: tt.a}
			b := models.AccountRecord{ID: "b", Bureau: models.BureauTransUnion, BalanceCents: tt.b}

			_, ok := ScoreDetail(a, b).Signals[SignalBalance]
			assert.Equal(t, tt.expected, ok)
		})
	}
}

func TestScore_Identifiers(t *testing.T) {
	a := models.AccountRecord{ID: "a", Bureau: models.BureauEquifax, AccountNumberMasked: str("414709XXXXXX")}
	b := models.AccountRecord{ID: "b", Bureau: models.BureauExperian, AccountNumberMasked: str("414709786075****")}

	detail := ScoreDetail(a, b)
	assert.Contains(t, detail.Signals, SignalBIN)
	assert.NotContains(t, detail.Signals, SignalLast4)

	c := models.AccountRecord{ID: "c", Bureau: models.BureauTransUnion, AccountNumberMasked: str("XXXXXXXXXXXX6075")}
	detail = ScoreDetail(b, c)
	assert.Contains(t, detail.Signals, SignalLast4)
	assert.NotContains(t, detail.Signals, SignalBIN)
}

func TestScore_Symmetric(t *testing.T) {
	records := []models.AccountRecord{
		{ID: "1", Bureau: models.BureauEquifax, CreditorName: str("AMEX"), DateOpened: str("2019-03-01"), BalanceCents: cents(1000)},
		{ID: "2", Bureau: models.BureauExperian, CreditorName: str("American Express"), BalanceCents: cents(1005), Status: models.AccountStatusOpen},
		{ID: "3", Bureau: models.BureauTransUnion, AccountNumberMasked: str("414709786075****"), DateOpened: str("2019-03-01")},
		{ID: "4", Bureau: models.BureauExperian, AccountNumberMasked: str("4147XXXXXXXX6075"), CreditLimitCents: cents(0)},
		{ID: "5", Bureau: models.BureauEquifax, CreditLimitCents: cents(0), LoanType: "auto"},
	}

	for _, a := range records {
		for _, b := range records {
			assert.Equal(t, Score(a, b), Score(b, a), "score(%s,%s)", a.ID, b.ID)
		}
	}
}
