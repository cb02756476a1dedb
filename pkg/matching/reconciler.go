package matching

import (
	"sort"

	"github.com/Ramsey-B/fern/pkg/models"
)

// Reconcile resolves group level attributes and orders the groups for display:
// open groups first, then newest opened first within each tier.
func Reconcile(groups []*models.AccountGroup) []*models.AccountGroup {
	for _, g := range groups {
		for _, m := range g.Accounts {
			if m.IsClosed() {
				g.Status = models.AccountStatusClosed
				break
			}
		}
	}

	sort.SliceStable(groups, func(i, j int) bool {
		ti, tj := statusTier(groups[i].Status), statusTier(groups[j].Status)
		if ti != tj {
			return ti < tj
		}
		return dateOrDefault(groups[i].DateOpened, missingDateDescending) > dateOrDefault(groups[j].DateOpened, missingDateDescending)
	})

	return groups
}

func statusTier(status models.AccountStatus) int {
	if status == models.AccountStatusOpen {
		return 0
	}
	return 1
}
