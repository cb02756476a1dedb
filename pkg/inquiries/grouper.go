// Package inquiries clusters credit inquiries reported by several bureaus into
// the applications that caused them.
package inquiries

import (
	"time"

	"github.com/Ramsey-B/fern/pkg/models"
	"github.com/Ramsey-B/fern/pkg/normalizers"
)

const (
	// MaxDaysApart is the widest gap between two inquiries of one application
	MaxDaysApart = 14

	// MinPrefixNameLength is the shortest cleaned company name eligible for prefix matching
	MinPrefixNameLength = 5

	// MaxPrefixLength caps how many leading characters prefix matching compares
	MaxPrefixLength = 8

	dateLayout = "2006-01-02"
)

// AutoGroup returns the user defined groups first, in the order given, followed
// by automatic groups for every inquiry no user group claims.
//
// Automatic grouping is a single pass: each unclaimed inquiry, in input order,
// pulls in every later unclaimed inquiry that matches it. Pulled inquiries are
// not compared with each other, so two inquiries that do not match may still
// share a group through a common seed.
func AutoGroup(records []models.InquiryRecord, userGroups []models.UserInquiryGroup) []*models.InquiryGroup {
	byID := make(map[string]int, len(records))
	for i, r := range records {
		if _, ok := byID[r.ID]; !ok {
			byID[r.ID] = i
		}
	}

	claimed := make([]bool, len(records))
	groups := make([]*models.InquiryGroup, 0, len(userGroups))

	for _, ug := range userGroups {
		var group *models.InquiryGroup
		for _, id := range ug.InquiryIDs {
			idx, ok := byID[id]
			if !ok || claimed[idx] {
				continue
			}
			claimed[idx] = true

			if group == nil {
				group = models.NewInquiryGroup(records[idx])
				continue
			}
			group.Add(records[idx])
		}

		if group == nil {
			continue
		}

		groupID := ug.ID
		group.ID = ug.ID
		group.GroupID = &groupID
		group.UserDefined = true
		group.RelatedApplication = ug.RelatedApplication
		if ug.Name != "" {
			group.CompanyName = ug.Name
		}
		groups = append(groups, group)
	}

	for i, seed := range records {
		if claimed[i] {
			continue
		}
		claimed[i] = true

		group := models.NewInquiryGroup(seed)
		for j := i + 1; j < len(records); j++ {
			if claimed[j] || !ShouldGroup(seed, records[j]) {
				continue
			}
			claimed[j] = true
			group.Add(records[j])
		}
		groups = append(groups, group)
	}

	return groups
}

// ShouldGroup reports whether two inquiries look like the same application:
// dated within MaxDaysApart of each other and with matching company names.
func ShouldGroup(a, b models.InquiryRecord) bool {
	days, ok := daysApart(a.InquiryDate, b.InquiryDate)
	if !ok || days > MaxDaysApart {
		return false
	}
	return CompanyNamesMatch(a.CompanyName, b.CompanyName)
}

// CompanyNamesMatch compares two inquiry company names after normalization.
// Names match when equal, or when both are long enough and share a prefix.
func CompanyNamesMatch(a, b string) bool {
	na, nb := normalizers.NormalizeCompany(a), normalizers.NormalizeCompany(b)
	if na != "" && na == nb {
		return true
	}

	if len(normalizers.CleanCompany(a)) < MinPrefixNameLength || len(normalizers.CleanCompany(b)) < MinPrefixNameLength {
		return false
	}

	n := min(len(na), len(nb), MaxPrefixLength)
	if n == 0 {
		return false
	}
	return na[:n] == nb[:n]
}

func daysApart(a, b string) (int, bool) {
	ta, err := parseDate(a)
	if err != nil {
		return 0, false
	}
	tb, err := parseDate(b)
	if err != nil {
		return 0, false
	}

	diff := ta.Sub(tb)
	if diff < 0 {
		diff = -diff
	}
	return int(diff.Hours() / 24), true
}

func parseDate(s string) (time.Time, error) {
	if len(s) > len(dateLayout) {
		s = s[:len(dateLayout)]
	}
	return time.Parse(dateLayout, s)
}
