package models

// AccountGroup is the reconciled view of one real-world account across bureaus.
// Groups are rebuilt on every reconciliation pass and never persisted.
type AccountGroup struct {
	ID          string                     `json:"id"`
	DisplayName string                     `json:"display_name"`
	LoanType    string                     `json:"loan_type"`
	Status      AccountStatus              `json:"status"`
	DateOpened  *string                    `json:"date_opened,omitempty"`
	Accounts    []AccountRecord            `json:"accounts"`
	ByBureau    map[Bureau][]AccountRecord `json:"by_bureau"`
}

// NewAccountGroup seeds a group from its first member
func NewAccountGroup(seed AccountRecord) *AccountGroup {
	name := seed.Creditor()
	if name == "" {
		name = seed.AccountName
	}

	g := &AccountGroup{
		ID:          seed.ID,
		DisplayName: name,
		LoanType:    seed.LoanType,
		Status:      seed.Status,
		DateOpened:  seed.DateOpened,
		ByBureau:    make(map[Bureau][]AccountRecord),
	}
	g.Add(seed)
	return g
}

// Add appends a member and indexes it by bureau
func (g *AccountGroup) Add(record AccountRecord) {
	g.Accounts = append(g.Accounts, record)
	g.ByBureau[record.Bureau] = append(g.ByBureau[record.Bureau], record)
}

// Bureaus returns the bureaus reporting this account in display order
func (g *AccountGroup) Bureaus() []Bureau {
	out := make([]Bureau, 0, len(Bureaus))
	for _, b := range Bureaus {
		if len(g.ByBureau[b]) > 0 {
			out = append(out, b)
		}
	}
	return out
}

// BestForBureau returns the member from bureau b with the most of credit limit
// and balance present. The earliest member wins ties. Nil when b has no members.
func (g *AccountGroup) BestForBureau(b Bureau) *AccountRecord {
	members := g.ByBureau[b]
	if len(members) == 0 {
		return nil
	}

	best := 0
	bestScore := -1
	for i, m := range members {
		score := 0
		if m.CreditLimitCents != nil {
			score++
		}
		if m.BalanceCents != nil {
			score++
		}
		if score > bestScore {
			best, bestScore = i, score
		}
	}

	record := members[best]
	return &record
}

// BestOverall returns the most complete member of the group
func (g *AccountGroup) BestOverall() *AccountRecord {
	if len(g.Accounts) == 0 {
		return nil
	}

	best := 0
	bestScore := -1
	for i, m := range g.Accounts {
		if score := overallCompleteness(m); score > bestScore {
			best, bestScore = i, score
		}
	}

	record := g.Accounts[best]
	return &record
}

func overallCompleteness(r AccountRecord) int {
	score := 0
	if r.Creditor() != "" {
		score++
	}
	if r.CreditLimitCents != nil {
		score += 2
	}
	if r.BalanceCents != nil {
		score += 2
	}
	if r.Opened() != "" {
		score++
	}
	if StringValue(r.DateUpdated) != "" {
		score++
	}
	return score
}
