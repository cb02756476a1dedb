package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ramsey-B/fern/pkg/models"
)

func TestReconcile_ClosedWins(t *testing.T) {
	records := amexAcrossBureaus()
	records[2].Status = models.AccountStatusClosed

	groups := GroupAccounts(records)
	require.Len(t, groups, 1)
	assert.Equal(t, models.AccountStatusClosed, groups[0].Status)
}

func TestReconcile_Ordering(t *testing.T) {
	group := func(id string, status models.AccountStatus, opened *string) *models.AccountGroup {
		return models.NewAccountGroup(models.AccountRecord{
			ID:         id,
			Bureau:     models.BureauEquifax,
			Status:     status,
			DateOpened: opened,
		})
	}

	groups := Reconcile([]*models.AccountGroup{
		group("closed-old", models.AccountStatusClosed, str("2001-01-01")),
		group("open-undated", models.AccountStatusOpen, nil),
		group("open-old", models.AccountStatusOpen, str("2010-05-05")),
		group("other-new", models.AccountStatus("transferred"), str("2023-01-01")),
		group("open-new", models.AccountStatusOpen, str("2022-08-08")),
		group("closed-undated", models.AccountStatusClosed, nil),
	})

	ids := make([]string, 0, len(groups))
	for _, g := range groups {
		ids = append(ids, g.ID)
	}

	assert.Equal(t, []string{
		"open-new",
		"open-old",
		"open-undated",
		"other-new",
		"closed-old",
		"closed-undated",
	}, ids)
}

func TestReconcile_KeepsOpenWhenNoMemberClosed(t *testing.T) {
	groups := GroupAccounts(amexAcrossBureaus())
	require.Len(t, groups, 1)
	assert.Equal(t, models.AccountStatusOpen, groups[0].Status)
}
