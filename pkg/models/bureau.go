package models

import "fmt"

// Bureau identifies the credit bureau a record was pulled from
type Bureau string

const (
	BureauEquifax    Bureau = "equifax"
	BureauExperian   Bureau = "experian"
	BureauTransUnion Bureau = "transunion"
)

// Bureaus lists every supported bureau in display order
var Bureaus = []Bureau{BureauEquifax, BureauExperian, BureauTransUnion}

// ParseBureau converts a raw string into a Bureau, rejecting anything unknown
func ParseBureau(s string) (Bureau, error) {
	switch b := Bureau(s); b {
	case BureauEquifax, BureauExperian, BureauTransUnion:
		return b, nil
	default:
		return "", fmt.Errorf("unknown bureau %q", s)
	}
}

// IsValid reports whether b is one of the supported bureaus
func (b Bureau) IsValid() bool {
	_, err := ParseBureau(string(b))
	return err == nil
}

func (b Bureau) String() string {
	return string(b)
}

// UnmarshalText keeps unknown bureaus out of decoded payloads
func (b *Bureau) UnmarshalText(text []byte) error {
	parsed, err := ParseBureau(string(text))
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}
