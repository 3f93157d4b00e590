// Package payouts models a single payout instruction protected by approval.
package payouts

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nofrixion/moneymoov-go/libs/approvals"
)

// Payout is a single transfer instruction. Amount, currency and destination
// are the tamper-sensitive core, the critical-field set is the security
// boundary for this type.
type Payout struct {
	ID              uuid.UUID       `json:"id"`
	MerchantID      uuid.UUID       `json:"merchantId"`
	Amount          decimal.Decimal `json:"amount"`
	Currency        string          `json:"currency"`
	DestinationIBAN string          `json:"destinationIban"`
	TheirReference  string          `json:"theirReference"`
	// Nonce binds the hash to one approval attempt
	Nonce string `json:"nonce,omitempty"`
	// OurReference is internal bookkeeping, edits do not void an approval
	OurReference string `json:"ourReference,omitempty"`
}

// ApprovalID returns the stable identifier for approval tracking
func (p *Payout) ApprovalID() string {
	return p.ID.String()
}

// ApprovalType tags the critical-field set that applies
func (p *Payout) ApprovalType() approvals.EntityType {
	return approvals.EntityTypePayout
}

// ApprovalNonce returns the nonce bound to the current approval attempt
func (p *Payout) ApprovalNonce() string {
	return p.Nonce
}

// CriticalFields returns, in fixed order: id, merchant id, amount (2dp),
// currency, destination IBAN, their reference
func (p *Payout) CriticalFields() []string {
	return []string{
		p.ID.String(),
		p.MerchantID.String(),
		approvals.FormatAmount(p.Amount),
		p.Currency,
		p.DestinationIBAN,
		p.TheirReference,
	}
}
