package domain

import "time"

type ReturnStatus string

const (
	ReturnStatusPending  ReturnStatus = "PENDING"
	ReturnStatusApproved ReturnStatus = "APPROVED"
	ReturnStatusRejected ReturnStatus = "REJECTED"
)

// ReturnRequest is submitted after order fulfillment: photo evidence of
// equipment condition plus bank details for the deposit refund.
// Verification is entirely server-side; customers only submit and read.
type ReturnRequest struct {
	ID      int32 `json:"id"`
	OrderID int32 `json:"order_id"`
	UserID  int32 `json:"user_id"`

	PhotoKeys []string `json:"photo_keys"` // storage keys, resolved to URLs on read

	BankName          string `json:"bank_name"`
	BankAccountName   string `json:"bank_account_name"`
	BankAccountNumber string `json:"bank_account_number"`

	Status    ReturnStatus `json:"status"`
	AdminNote string       `json:"admin_note,omitempty"`

	CreatedOn  time.Time  `json:"created_on"`
	ResolvedOn *time.Time `json:"resolved_on,omitempty"`
}
