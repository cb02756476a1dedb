package normalizers

import "strings"

// companyNoiseWords are stripped anywhere in the cleaned name, in this order
var companyNoiseWords = []string{
	"BANK",
	"FINANCIAL",
	"SERVICES",
	"CORP",
	"CORPORATION",
	"INC",
	"LLC",
	"NA",
	"USA",
}

// CleanCompany uppercases an inquiry company name and drops everything that
// is not an ASCII letter or digit.
func CleanCompany(name string) string {
	return Alphanumeric(strings.ToUpper(name))
}

// NormalizeCompany reduces an inquiry company name to a comparison key.
// Noise words are removed as substrings, not whole words.
func NormalizeCompany(name string) string {
	s := CleanCompany(name)
	for _, w := range companyNoiseWords {
		s = strings.ReplaceAll(s, w, "")
	}
	return s
}
