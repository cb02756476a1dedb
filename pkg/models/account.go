package models

// AccountStatus is the reported state of a tradeline. Values other than
// open and closed are carried verbatim.
type AccountStatus string

const (
	AccountStatusOpen   AccountStatus = "open"
	AccountStatusClosed AccountStatus = "closed"
)

// Responsibility describes the consumer's liability on an account
type Responsibility string

const (
	ResponsibilityIndividual     Responsibility = "individual"
	ResponsibilityJoint          Responsibility = "joint"
	ResponsibilityAuthorizedUser Responsibility = "authorized_user"
	ResponsibilityCosigner       Responsibility = "cosigner"
	ResponsibilityUnknown        Responsibility = "unknown"
)

// AccountRecord is one tradeline as reported by a single bureau.
// Dates are YYYY-MM-DD strings and money is integer cents.
type AccountRecord struct {
	ID                  string         `json:"id" yaml:"id" validate:"required"`
	Bureau              Bureau         `json:"bureau" yaml:"bureau" validate:"required,oneof=equifax experian transunion"`
	AccountName         string         `json:"account_name" yaml:"account_name"`
	AccountNumberMasked *string        `json:"account_number_masked,omitempty" yaml:"account_number_masked,omitempty"`
	CreditorName        *string        `json:"creditor_name,omitempty" yaml:"creditor_name,omitempty"`
	Status              AccountStatus  `json:"status" yaml:"status"`
	DateOpened          *string        `json:"date_opened,omitempty" yaml:"date_opened,omitempty"`
	DateUpdated         *string        `json:"date_updated,omitempty" yaml:"date_updated,omitempty"`
	DateClosed          *string        `json:"date_closed,omitempty" yaml:"date_closed,omitempty"`
	CreditLimitCents    *int64         `json:"credit_limit_cents,omitempty" yaml:"credit_limit_cents,omitempty"`
	HighBalanceCents    *int64         `json:"high_balance_cents,omitempty" yaml:"high_balance_cents,omitempty"`
	BalanceCents        *int64         `json:"balance_cents,omitempty" yaml:"balance_cents,omitempty"`
	MonthlyPaymentCents *int64         `json:"monthly_payment_cents,omitempty" yaml:"monthly_payment_cents,omitempty"`
	AccountType         string         `json:"account_type" yaml:"account_type"`
	LoanType            string         `json:"loan_type" yaml:"loan_type"`
	Responsibility      Responsibility `json:"responsibility,omitempty" yaml:"responsibility,omitempty"`
	Terms               string         `json:"terms,omitempty" yaml:"terms,omitempty"`
	PaymentStatus       string         `json:"payment_status,omitempty" yaml:"payment_status,omitempty"`
}

// Creditor returns the creditor name or "" when absent
func (a AccountRecord) Creditor() string {
	return StringValue(a.CreditorName)
}

// Opened returns the open date or "" when absent
func (a AccountRecord) Opened() string {
	return StringValue(a.DateOpened)
}

// IsClosed reports whether the bureau lists this account as closed
func (a AccountRecord) IsClosed() bool {
	return a.Status == AccountStatusClosed
}

// StringValue dereferences an optional string
func StringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// StringPtr returns a pointer to s
func StringPtr(s string) *string {
	return &s
}

// Int64Ptr returns a pointer to v
func Int64Ptr(v int64) *int64 {
	return &v
}
