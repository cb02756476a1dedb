package summary

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ramsey-B/fern/pkg/models"
)

func group(id string, status models.AccountStatus, accountType string, opened string, limit, balance *int64) *models.AccountGroup {
	r := models.AccountRecord{
		ID:               id,
		Bureau:           models.BureauEquifax,
		CreditorName:     models.StringPtr(id),
		Status:           status,
		AccountType:      accountType,
		CreditLimitCents: limit,
		BalanceCents:     balance,
	}
	if opened != "" {
		r.DateOpened = models.StringPtr(opened)
	}
	return models.NewAccountGroup(r)
}

func TestComputeUtilization(t *testing.T) {
	groups := []*models.AccountGroup{
		group("card-a", models.AccountStatusOpen, "Revolving", "2015-01-01", models.Int64Ptr(1000000), models.Int64Ptr(250000)),
		group("card-b", models.AccountStatusOpen, "revolving", "2019-01-01", models.Int64Ptr(500000), models.Int64Ptr(50000)),
		group("closed-card", models.AccountStatusClosed, "revolving", "2010-01-01", models.Int64Ptr(900000), models.Int64Ptr(900000)),
		group("auto", models.AccountStatusOpen, "installment", "2021-01-01", models.Int64Ptr(2500000), models.Int64Ptr(1800000)),
		group("no-limit", models.AccountStatusOpen, "revolving", "", nil, models.Int64Ptr(10000)),
	}

	u := ComputeUtilization(groups)
	assert.Equal(t, 3, u.Accounts)
	assert.Equal(t, int64(1500000), u.CreditLimitCents)
	assert.Equal(t, int64(310000), u.BalanceCents)
	assert.True(t, decimal.RequireFromString("20.67").Equal(u.Percent), u.Percent.String())
}

func TestPercent(t *testing.T) {
	tests := []struct {
		name        string
		part, whole int64
		expected    string
	}{
		{name: "zero limit", part: 100, whole: 0, expected: "0"},
		{name: "exact", part: 50, whole: 200, expected: "25"},
		{name: "rounded", part: 1, whole: 3, expected: "33.33"},
		{name: "over limit", part: 300, whole: 200, expected: "150"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Percent(tt.part, tt.whole)
			assert.True(t, decimal.RequireFromString(tt.expected).Equal(got), got.String())
		})
	}
}

func TestOldestOpen(t *testing.T) {
	groups := []*models.AccountGroup{
		group("new", models.AccountStatusOpen, "revolving", "2020-01-01", nil, nil),
		group("closed-oldest", models.AccountStatusClosed, "revolving", "1999-01-01", nil, nil),
		group("undated", models.AccountStatusOpen, "revolving", "", nil, nil),
		group("old", models.AccountStatusOpen, "installment", "2008-06-30", nil, nil),
	}

	oldest := OldestOpen(groups)
	require.NotNil(t, oldest)
	assert.Equal(t, "old", oldest.GroupID)
	assert.Equal(t, "2008-06-30", oldest.DateOpened)

	assert.Nil(t, OldestOpen(groups[1:3]))
	assert.Nil(t, OldestOpen(nil))
}

func TestSummarize(t *testing.T) {
	groups := []*models.AccountGroup{
		group("a", models.AccountStatusOpen, "revolving", "2015-01-01", models.Int64Ptr(1000), models.Int64Ptr(100)),
		group("b", models.AccountStatusClosed, "revolving", "2011-01-01", nil, nil),
	}
	groups[0].Add(models.AccountRecord{ID: "a-tu", Bureau: models.BureauTransUnion})

	s := Summarize(groups)
	assert.Equal(t, 2, s.TotalGroups)
	assert.Equal(t, 1, s.OpenGroups)
	assert.Equal(t, 1, s.ClosedGroups)
	assert.Equal(t, 2, s.ByBureau[models.BureauEquifax])
	assert.Equal(t, 1, s.ByBureau[models.BureauTransUnion])
	assert.Equal(t, 1, s.Utilization.Accounts)
	require.NotNil(t, s.OldestOpen)
	assert.Equal(t, "a", s.OldestOpen.GroupID)
}
