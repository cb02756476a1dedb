package identifiers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(s string) *string {
	return &s
}

func TestExtractLast4(t *testing.T) {
	tests := []struct {
		name     string
		masked   *string
		expected *string
	}{
		{name: "nil", masked: nil, expected: nil},
		{name: "empty", masked: ptr(""), expected: nil},
		{name: "trailing digits", masked: ptr("XXXXXXXXXXXX1234"), expected: ptr("1234")},
		{name: "trailing digits with whitespace", masked: ptr("****5678  "), expected: ptr("5678")},
		{name: "digits before mask", masked: ptr("414709786075****"), expected: ptr("6075")},
		{name: "digits before hash mask", masked: ptr("1234####"), expected: ptr("1234")},
		{name: "digits before other suffix", masked: ptr("acct 9876-ending"), expected: ptr("9876")},
		{name: "bin only", masked: ptr("414709XXXXXX"), expected: nil},
		{name: "full number", masked: ptr("4147097860751234"), expected: ptr("1234")},
		{name: "fewer than four digits", masked: ptr("XXXX123"), expected: nil},
		{name: "no digits", masked: ptr("XXXXXXXX"), expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractLast4(tt.masked)
			if tt.expected == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.expected, *got)
		})
	}
}

func TestExtractFirst6(t *testing.T) {
	tests := []struct {
		name     string
		masked   *string
		expected *string
	}{
		{name: "nil", masked: nil, expected: nil},
		{name: "bin then digits", masked: ptr("414709786075****"), expected: ptr("414709")},
		{name: "bin then mask", masked: ptr("414709XXXXXX"), expected: ptr("414709")},
		{name: "masked prefix", masked: ptr("XXXX1234"), expected: nil},
		{name: "too short", masked: ptr("41470"), expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractFirst6(tt.masked)
			if tt.expected == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.expected, *got)
		})
	}
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal(ptr("1234"), ptr("1234")))
	assert.False(t, Equal(ptr("1234"), ptr("4321")))
	assert.False(t, Equal(nil, ptr("1234")))
	assert.False(t, Equal(nil, nil))
}
