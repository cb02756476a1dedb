package models

// WalletCard is a card the user entered by hand
type WalletCard struct {
	ID               string  `json:"id" yaml:"id" validate:"required"`
	CardName         string  `json:"card_name" yaml:"card_name"`
	Issuer           string  `json:"issuer" yaml:"issuer"`
	Last4            *string `json:"last4,omitempty" yaml:"last4,omitempty" validate:"omitempty,len=4,numeric"`
	DateOpened       *string `json:"date_opened,omitempty" yaml:"date_opened,omitempty"`
	CreditLimitCents *int64  `json:"credit_limit_cents,omitempty" yaml:"credit_limit_cents,omitempty"`
}

// WalletLink ties a wallet card to the account group it most likely represents
type WalletLink struct {
	CardID  string   `json:"card_id"`
	GroupID string   `json:"group_id"`
	Score   int      `json:"score"`
	Signals []string `json:"signals"`
}
