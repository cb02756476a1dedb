// Package normalizers canonicalizes creditor and inquiry company names and
// exposes a registry of named string normalizers.
package normalizers

import (
	"sort"
	"strings"
	"sync"
	"unicode"

	"github.com/pkg/errors"
)

type Normalizer func(string) string

var (
	mu       sync.RWMutex
	registry = map[string]Normalizer{
		"lowercase":         strings.ToLower,
		"uppercase":         strings.ToUpper,
		"trim":              strings.TrimSpace,
		"remove_whitespace": RemoveWhitespace,
		"digits_only":       DigitsOnly,
		"alphanumeric":      Alphanumeric,
		"creditor":          NormalizeCreditor,
		"company":           NormalizeCompany,
		"company_clean":     CleanCompany,
	}
)

// Register adds or replaces a named normalizer
func Register(name string, fn Normalizer) {
	mu.Lock()
	defer mu.Unlock()
	registry[name] = fn
}

func Get(name string) (Normalizer, bool) {
	mu.RLock()
	defer mu.RUnlock()
	fn, ok := registry[name]
	return fn, ok
}

// Names returns the registered names, sorted
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Chain resolves a comma separated pipeline such as "alphanumeric,uppercase"
// into one normalizer applied left to right.
func Chain(pipeline string) (Normalizer, error) {
	var steps []Normalizer
	for _, name := range strings.Split(pipeline, ",") {
		name = strings.TrimSpace(name)
		fn, ok := Get(name)
		if !ok {
			return nil, errors.Errorf("unknown normalizer %q", name)
		}
		steps = append(steps, fn)
	}

	return func(value string) string {
		for _, step := range steps {
			value = step(value)
		}
		return value
	}, nil
}

func RemoveWhitespace(s string) string {
	return keep(s, func(r rune) bool { return !unicode.IsSpace(r) })
}

func DigitsOnly(s string) string {
	return keep(s, unicode.IsDigit)
}

// Alphanumeric keeps ASCII letters and digits
func Alphanumeric(s string) string {
	return keep(s, isASCIIAlnum)
}

func isASCIIAlnum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

func keep(s string, pred func(rune) bool) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if pred(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
