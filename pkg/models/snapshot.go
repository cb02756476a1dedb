package models

// SnapshotKind selects which reconciliation a snapshot message triggers
type SnapshotKind string

const (
	SnapshotKindAccounts  SnapshotKind = "accounts"
	SnapshotKindInquiries SnapshotKind = "inquiries"
)

// SnapshotMessage is one user's bureau pull as published on the snapshot topic
type SnapshotMessage struct {
	SnapshotID  string             `json:"snapshot_id,omitempty" yaml:"snapshot_id,omitempty"`
	UserID      string             `json:"user_id" yaml:"user_id" validate:"required"`
	Kind        SnapshotKind       `json:"kind" yaml:"kind" validate:"required,oneof=accounts inquiries"`
	Accounts    []AccountRecord    `json:"accounts,omitempty" yaml:"accounts,omitempty"`
	Inquiries   []InquiryRecord    `json:"inquiries,omitempty" yaml:"inquiries,omitempty"`
	UserGroups  []UserInquiryGroup `json:"user_groups,omitempty" yaml:"user_groups,omitempty"`
	WalletCards []WalletCard       `json:"wallet_cards,omitempty" yaml:"wallet_cards,omitempty"`
}
