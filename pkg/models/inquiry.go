package models

import "strings"

// InquiryRecord is one credit pull as reported by a single bureau
type InquiryRecord struct {
	ID          string  `json:"id" yaml:"id" validate:"required"`
	Bureau      Bureau  `json:"bureau" yaml:"bureau" validate:"required,oneof=equifax experian transunion"`
	CompanyName string  `json:"company_name" yaml:"company_name"`
	InquiryDate string  `json:"inquiry_date" yaml:"inquiry_date"`
	InquiryType *string `json:"inquiry_type,omitempty" yaml:"inquiry_type,omitempty"`

	// Snapshot tracking, carried through untouched
	SnapshotID  string  `json:"snapshot_id,omitempty" yaml:"snapshot_id,omitempty"`
	FirstSeenAt *string `json:"first_seen_at,omitempty" yaml:"first_seen_at,omitempty"`
	LastSeenAt  *string `json:"last_seen_at,omitempty" yaml:"last_seen_at,omitempty"`
}

var softInquiryTypes = map[string]struct{}{
	"soft":           {},
	"account_review": {},
	"promotional":    {},
}

// IsSoft reports whether the inquiry is a soft pull
func (r InquiryRecord) IsSoft() bool {
	if r.InquiryType == nil {
		return false
	}
	_, ok := softInquiryTypes[strings.ToLower(strings.TrimSpace(*r.InquiryType))]
	return ok
}

// UserInquiryGroup is a grouping the user saved explicitly. It always takes
// precedence over automatic grouping.
type UserInquiryGroup struct {
	ID                 string   `json:"id" yaml:"id" validate:"required"`
	Name               string   `json:"name,omitempty" yaml:"name,omitempty"`
	RelatedApplication *string  `json:"related_application,omitempty" yaml:"related_application,omitempty"`
	InquiryIDs         []string `json:"inquiry_ids" yaml:"inquiry_ids"`
}

// InquiryGroup is a cluster of inquiries believed to be the same application
type InquiryGroup struct {
	ID                 string                     `json:"id"`
	GroupID            *string                    `json:"group_id,omitempty"`
	UserDefined        bool                       `json:"user_defined"`
	CompanyName        string                     `json:"company_name"`
	InquiryDate        string                     `json:"inquiry_date"`
	Inquiries          []InquiryRecord            `json:"inquiries"`
	ByBureau           map[Bureau][]InquiryRecord `json:"by_bureau"`
	RelatedApplication *string                    `json:"related_application,omitempty"`
	Soft               bool                       `json:"soft"`
}

// NewInquiryGroup seeds an automatic group from its first member
func NewInquiryGroup(seed InquiryRecord) *InquiryGroup {
	g := &InquiryGroup{
		ID:          seed.ID,
		CompanyName: seed.CompanyName,
		InquiryDate: seed.InquiryDate,
		ByBureau:    make(map[Bureau][]InquiryRecord),
		Soft:        true,
	}
	g.Add(seed)
	return g
}

// Add appends a member, keeping the earliest inquiry date and the soft flag current
func (g *InquiryGroup) Add(record InquiryRecord) {
	g.Inquiries = append(g.Inquiries, record)
	g.ByBureau[record.Bureau] = append(g.ByBureau[record.Bureau], record)

	if record.InquiryDate != "" && (g.InquiryDate == "" || record.InquiryDate < g.InquiryDate) {
		g.InquiryDate = record.InquiryDate
	}
	if g.CompanyName == "" {
		g.CompanyName = record.CompanyName
	}
	g.Soft = g.Soft && record.IsSoft()
}
