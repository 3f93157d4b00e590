// Package sweeps models fund-sweep rules, which move surplus balance to
// configured destination accounts and require approval before enablement.
package sweeps

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nofrixion/moneymoov-go/libs/approvals"
)

// Destination is one target of a sweep with its split percentage.
type Destination struct {
	AccountID uuid.UUID       `json:"accountId"`
	IBAN      string          `json:"iban"`
	Percent   decimal.Decimal `json:"percent"`
	// Priority orders execution between destinations. It is deliberately
	// excluded from the critical-field set, reordering does not require
	// re-approval.
	Priority int `json:"priority"`
}

// Rule is a sweep rule over a set of destinations.
type Rule struct {
	ID           uuid.UUID     `json:"id"`
	MerchantID   uuid.UUID     `json:"merchantId"`
	Name         string        `json:"name"`
	Enabled      bool          `json:"enabled"`
	Destinations []Destination `json:"destinations"`
	// Nonce binds the hash to one approval attempt
	Nonce string `json:"nonce,omitempty"`
}

// ApprovalID returns the stable identifier for approval tracking
func (r *Rule) ApprovalID() string {
	return r.ID.String()
}

// ApprovalType tags the critical-field set that applies
func (r *Rule) ApprovalType() approvals.EntityType {
	return approvals.EntityTypeSweepRule
}

// ApprovalNonce returns the nonce bound to the current approval attempt
func (r *Rule) ApprovalNonce() string {
	return r.Nonce
}

// CriticalFields returns the sub-fields whose drift must void an approval:
// per destination in declaration order the account id, IBAN and 2dp split
// percentage. Rule name, enablement flag and destination priorities are
// outside the boundary.
func (r *Rule) CriticalFields() []string {
	fields := []string{
		r.ID.String(),
		r.MerchantID.String(),
	}
	for _, d := range r.Destinations {
		fields = append(fields,
			d.AccountID.String(),
			d.IBAN,
			approvals.FormatAmount(d.Percent),
		)
	}
	return fields
}
