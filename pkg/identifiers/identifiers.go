// Package identifiers pulls partial card numbers out of masked account numbers
package identifiers

import "regexp"

// binLength is the number of leading digits that identify the issuer
const binLength = 6

var (
	last4Patterns = []*regexp.Regexp{
		regexp.MustCompile(`(\d{4})\s*$`),
		regexp.MustCompile(`(\d{4})[*xX#•]+$`),
		regexp.MustCompile(`(\d{4})\D*$`),
	}
	first6Pattern = regexp.MustCompile(`^\d{6}`)
)

// ExtractLast4 returns the trailing four visible digits of a masked account
// number, or nil when none can be found. Digits that belong to a leading BIN
// are never reported as the last four.
func ExtractLast4(masked *string) *string {
	if masked == nil || *masked == "" {
		return nil
	}

	s := *masked
	binEnd := 0
	if first6Pattern.MatchString(s) {
		binEnd = binLength
	}

	for _, re := range last4Patterns {
		loc := re.FindStringSubmatchIndex(s)
		if loc == nil {
			continue
		}
		start, end := loc[2], loc[3]
		if end <= binEnd {
			continue
		}
		last4 := s[start:end]
		return &last4
	}

	return nil
}

// ExtractFirst6 returns the leading six digits (BIN) of a masked account
// number, or nil when the number does not start with six digits.
func ExtractFirst6(masked *string) *string {
	if masked == nil {
		return nil
	}

	bin := first6Pattern.FindString(*masked)
	if bin == "" {
		return nil
	}
	return &bin
}

// Equal reports whether two optional identifiers are both present and equal
func Equal(a, b *string) bool {
	return a != nil && b != nil && *a == *b
}
