package matching

import (
	"sort"
	"strings"

	"github.com/Ramsey-B/fern/pkg/models"
)

const (
	missingDateAscending  = "9999"
	missingDateDescending = "0000"
)

// groupSlot is an arena entry. Members are indices into the sorted record slice.
type groupSlot struct {
	members     []int
	displayName string
}

// GroupAccounts clusters account records from all bureaus into reconciled
// account groups. Every deduplicated record lands in exactly one group.
func GroupAccounts(records []models.AccountRecord) []*models.AccountGroup {
	return Reconcile(groupGreedy(DedupeWithinBureau(records)))
}

// groupGreedy places each record in the best scoring existing group or starts
// a new one. Placement is final; records are never moved afterwards.
func groupGreedy(records []models.AccountRecord) []*models.AccountGroup {
	sorted := make([]models.AccountRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return dateOrDefault(sorted[i].DateOpened, missingDateAscending) < dateOrDefault(sorted[j].DateOpened, missingDateAscending)
	})

	arena := make([]groupSlot, 0, len(sorted))
	for idx, record := range sorted {
		bestGroup, bestScore := -1, 0
		for g := range arena {
			if score := bestMemberScore(record, sorted, arena[g].members); score > bestScore {
				bestGroup, bestScore = g, score
			}
		}

		if bestGroup >= 0 && bestScore >= MatchThreshold {
			slot := &arena[bestGroup]
			slot.members = append(slot.members, idx)
			slot.displayName = preferredName(slot.displayName, record.Creditor())
			continue
		}

		name := record.Creditor()
		if name == "" {
			name = record.AccountName
		}
		arena = append(arena, groupSlot{members: []int{idx}, displayName: name})
	}

	groups := make([]*models.AccountGroup, 0, len(arena))
	for _, slot := range arena {
		group := models.NewAccountGroup(sorted[slot.members[0]])
		for _, idx := range slot.members[1:] {
			group.Add(sorted[idx])
		}
		group.DisplayName = slot.displayName
		groups = append(groups, group)
	}
	return groups
}

func bestMemberScore(candidate models.AccountRecord, records []models.AccountRecord, members []int) int {
	best := 0
	for _, idx := range members {
		if score := Score(candidate, records[idx]); score > best {
			best = score
		}
	}
	return best
}

// preferredName only ever moves toward a longer, more descriptive name
func preferredName(current, candidate string) string {
	if candidate == "" || strings.Contains(current, candidate) || len(candidate) <= len(current) {
		return current
	}
	return candidate
}

func dateOrDefault(date *string, fallback string) string {
	if date == nil || *date == "" {
		return fallback
	}
	return *date
}
