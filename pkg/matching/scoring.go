package matching

import (
	"math"

	"github.com/Ramsey-B/fern/pkg/identifiers"
	"github.com/Ramsey-B/fern/pkg/models"
	"github.com/Ramsey-B/fern/pkg/normalizers"
)

// Signal names reported in a Breakdown
const (
	SignalDateOpened  = "date_opened"
	SignalCreditLimit = "credit_limit"
	SignalBalance     = "balance"
	SignalCreditor    = "creditor"
	SignalLast4       = "last4"
	SignalBIN         = "bin"
	SignalLoanType    = "loan_type"
	SignalStatus      = "status"
)

// Points awarded per signal
const (
	PointsDateOpened  = 50
	PointsCreditLimit = 30
	PointsBalance     = 20
	PointsCreditor    = 15
	PointsLast4       = 25
	PointsBIN         = 20
	PointsLoanType    = 5
	PointsStatus      = 5

	// MaxScore is the sum of every signal
	MaxScore = PointsDateOpened + PointsCreditLimit + PointsBalance + PointsCreditor +
		PointsLast4 + PointsBIN + PointsLoanType + PointsStatus

	// MatchThreshold is the minimum score for a record to join a group
	MatchThreshold = 50

	// balanceTolerance is the maximum relative balance difference still treated as equal
	balanceTolerance = 0.01
)

// Breakdown explains a pairwise score
type Breakdown struct {
	Score       int            `json:"score"`
	SameBureau  bool           `json:"same_bureau"`
	Signals     map[string]int `json:"signals"`
	Matched     bool           `json:"matched"`
	MaxPossible int            `json:"max_possible"`
}

// Score returns how likely two account records describe the same account.
// Records from the same bureau always score 0.
func Score(a, b models.AccountRecord) int {
	return ScoreDetail(a, b).Score
}

// ScoreDetail is Score with the contributing signals
func ScoreDetail(a, b models.AccountRecord) Breakdown {
	out := Breakdown{
		Signals:     make(map[string]int),
		MaxPossible: MaxScore,
	}

	if a.Bureau == b.Bureau {
		out.SameBureau = true
		return out
	}

	add := func(signal string, points int) {
		out.Signals[signal] = points
		out.Score += points
	}

	if a.Opened() != "" && a.Opened() == b.Opened() {
		add(SignalDateOpened, PointsDateOpened)
	}

	if a.CreditLimitCents != nil && b.CreditLimitCents != nil && *a.CreditLimitCents == *b.CreditLimitCents {
		add(SignalCreditLimit, PointsCreditLimit)
	}

	if balancesClose(a.BalanceCents, b.BalanceCents) {
		add(SignalBalance, PointsBalance)
	}

	if ca := normalizers.NormalizeCreditorPtr(a.CreditorName); ca != "" && ca == normalizers.NormalizeCreditorPtr(b.CreditorName) {
		add(SignalCreditor, PointsCreditor)
	}

	if identifiers.Equal(identifiers.ExtractLast4(a.AccountNumberMasked), identifiers.ExtractLast4(b.AccountNumberMasked)) {
		add(SignalLast4, PointsLast4)
	}

	if identifiers.Equal(identifiers.ExtractFirst6(a.AccountNumberMasked), identifiers.ExtractFirst6(b.AccountNumberMasked)) {
		add(SignalBIN, PointsBIN)
	}

	if a.LoanType == b.LoanType {
		add(SignalLoanType, PointsLoanType)
	}

	if a.Status == b.Status {
		add(SignalStatus, PointsStatus)
	}

	out.Matched = out.Score >= MatchThreshold
	return out
}

// balancesClose treats a zero balance as absent. Credit balances are negative,
// so the relative difference is taken against the magnitude of the average and
// a zero average never matches.
func balancesClose(a, b *int64) bool {
	if a == nil || b == nil || *a == 0 || *b == 0 {
		return false
	}

	av, bv := float64(*a), float64(*b)
	avg := math.Abs((av + bv) / 2)
	if avg == 0 {
		return false
	}
	return math.Abs(av-bv)/avg < balanceTolerance
}
