package normalizers

import "strings"

type creditorAlias struct {
	alias     string
	canonical string
}

// creditorAliases is scanned in order for containment matches, so earlier
// entries win when several aliases overlap a name.
var creditorAliases = []creditorAlias{
	{"jpmcb", "chase"},
	{"jpmorgan chase", "chase"},
	{"chase card", "chase"},
	{"chase bank", "chase"},
	{"chase", "chase"},
	{"amex", "amex"},
	{"american express", "amex"},
	{"amer express", "amex"},
	{"americanexpress", "amex"},
	{"citibank", "citi"},
	{"citi cards", "citi"},
	{"citicards", "citi"},
	{"cbna", "citi"},
	{"citi", "citi"},
	{"capital one", "capital one"},
	{"capitalone", "capital one"},
	{"cap one", "capital one"},
	{"discover fin", "discover"},
	{"discover bank", "discover"},
	{"discover", "discover"},
	{"bank of america", "bank of america"},
	{"bk of amer", "bank of america"},
	{"wells fargo", "wells fargo"},
	{"wf crd svc", "wells fargo"},
	{"wfbna", "wells fargo"},
	{"synchrony", "synchrony"},
	{"syncb", "synchrony"},
	{"barclays", "barclays"},
	{"barclaycard", "barclays"},
	{"us bank", "us bank"},
	{"usbank", "us bank"},
	{"comenity", "comenity"},
	{"navy federal", "navy federal"},
	{"navy fcu", "navy federal"},
	{"usaa", "usaa"},
	{"goldman sachs", "goldman sachs"},
	{"apple card", "goldman sachs"},
	{"td bank", "td bank"},
	{"pnc bank", "pnc"},
	{"navient", "navient"},
	{"sallie mae", "sallie mae"},
	{"dept of ed", "dept of education"},
	{"fedloan", "dept of education"},
	{"nelnet", "nelnet"},
	{"ally financial", "ally"},
	{"ally bank", "ally"},
	{"toyota motor credit", "toyota financial"},
	{"toyota financial", "toyota financial"},
}

var creditorAliasIndex = func() map[string]string {
	idx := make(map[string]string, len(creditorAliases))
	for _, a := range creditorAliases {
		if _, ok := idx[a.alias]; !ok {
			idx[a.alias] = a.canonical
		}
	}
	return idx
}()

// CleanCreditor lowercases a name, keeps only ASCII letters, digits and
// spaces, and trims the result.
func CleanCreditor(name string) string {
	return strings.TrimSpace(keep(strings.ToLower(name), func(r rune) bool {
		return isASCIIAlnum(r) || r == ' '
	}))
}

// NormalizeCreditor maps a creditor name to its canonical form. An exact alias
// hit wins, then the first alias that contains or is contained by the cleaned
// name. Unmatched names come back cleaned.
func NormalizeCreditor(name string) string {
	cleaned := CleanCreditor(name)
	if cleaned == "" {
		return ""
	}

	if canonical, ok := creditorAliasIndex[cleaned]; ok {
		return canonical
	}

	for _, a := range creditorAliases {
		if strings.Contains(cleaned, a.alias) || strings.Contains(a.alias, cleaned) {
			return a.canonical
		}
	}

	return cleaned
}

// NormalizeCreditorPtr is NormalizeCreditor for optional names
func NormalizeCreditorPtr(name *string) string {
	if name == nil {
		return ""
	}
	return NormalizeCreditor(*name)
}
