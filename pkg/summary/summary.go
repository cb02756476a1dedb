// Package summary derives dashboard metrics from reconciled account groups
package summary

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Ramsey-B/fern/pkg/models"
)

const revolvingAccountType = "revolving"

// Utilization is the revolving balance to limit ratio across open accounts
type Utilization struct {
	CreditLimitCents int64           `json:"credit_limit_cents"`
	BalanceCents     int64           `json:"balance_cents"`
	Percent          decimal.Decimal `json:"percent"`
	Accounts         int             `json:"accounts"`
}

// OldestAccount identifies the open group that has been open the longest
type OldestAccount struct {
	GroupID     string `json:"group_id"`
	DisplayName string `json:"display_name"`
	DateOpened  string `json:"date_opened"`
}

// Summary bundles the derived metrics for one reconciliation pass
type Summary struct {
	TotalGroups  int                   `json:"total_groups"`
	OpenGroups   int                   `json:"open_groups"`
	ClosedGroups int                   `json:"closed_groups"`
	ByBureau     map[models.Bureau]int `json:"by_bureau"`
	Utilization  Utilization           `json:"utilization"`
	OldestOpen   *OldestAccount        `json:"oldest_open,omitempty"`
}

// Summarize computes every derived metric for the given groups
func Summarize(groups []*models.AccountGroup) Summary {
	s := Summary{
		TotalGroups: len(groups),
		ByBureau:    make(map[models.Bureau]int, len(models.Bureaus)),
		Utilization: ComputeUtilization(groups),
		OldestOpen:  OldestOpen(groups),
	}

	for _, g := range groups {
		switch g.Status {
		case models.AccountStatusOpen:
			s.OpenGroups++
		case models.AccountStatusClosed:
			s.ClosedGroups++
		}
		for _, b := range g.Bureaus() {
			s.ByBureau[b]++
		}
	}

	return s
}

// ComputeUtilization sums limits and balances of open revolving groups. Each
// group contributes once, through its most complete member.
func ComputeUtilization(groups []*models.AccountGroup) Utilization {
	var u Utilization
	for _, g := range groups {
		if g.Status != models.AccountStatusOpen {
			continue
		}

		rep := g.BestOverall()
		if rep == nil || !strings.EqualFold(strings.TrimSpace(rep.AccountType), revolvingAccountType) {
			continue
		}

		u.Accounts++
		if rep.CreditLimitCents != nil {
			u.CreditLimitCents += *rep.CreditLimitCents
		}
		if rep.BalanceCents != nil {
			u.BalanceCents += *rep.BalanceCents
		}
	}

	u.Percent = Percent(u.BalanceCents, u.CreditLimitCents)
	return u
}

// Percent returns part/whole as a percentage rounded to two places, or zero
// when whole is not positive.
func Percent(part, whole int64) decimal.Decimal {
	if whole <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(part).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(whole)).
		Round(2)
}

// OldestOpen returns the open group with the earliest open date, or nil
func OldestOpen(groups []*models.AccountGroup) *OldestAccount {
	var oldest *models.AccountGroup
	for _, g := range groups {
		if g.Status != models.AccountStatusOpen {
			continue
		}
		opened := models.StringValue(g.DateOpened)
		if opened == "" {
			continue
		}
		if oldest == nil || opened < models.StringValue(oldest.DateOpened) {
			oldest = g
		}
	}

	if oldest == nil {
		return nil
	}
	return &OldestAccount{
		GroupID:     oldest.ID,
		DisplayName: oldest.DisplayName,
		DateOpened:  models.StringValue(oldest.DateOpened),
	}
}
