// Package payruns models a scheduled batch of payouts submitted for
// multi-party approval before execution.
package payruns

import (
	"time"

	"github.com/google/uuid"

	"github.com/nofrixion/moneymoov-go/libs/approvals"
)

// PayRun is a named batch of payouts scheduled for a future date.
// The critical-field set below is a deliberate security decision, any change
// to it requires sign-off.
type PayRun struct {
	ID           uuid.UUID `json:"id"`
	MerchantID   uuid.UUID `json:"merchantId"`
	Name         string    `json:"name"`
	ScheduleDate time.Time `json:"scheduleDate"`
	// Nonce binds the hash to one approval attempt
	Nonce string `json:"nonce,omitempty"`
	// Notes are informational only, edits do not void an approval
	Notes string `json:"notes,omitempty"`
}

// ApprovalID returns the stable identifier for approval tracking
func (p *PayRun) ApprovalID() string {
	return p.ID.String()
}

// ApprovalType tags the critical-field set that applies
func (p *PayRun) ApprovalType() approvals.EntityType {
	return approvals.EntityTypePayRun
}

// ApprovalNonce returns the nonce bound to the current approval attempt
func (p *PayRun) ApprovalNonce() string {
	return p.Nonce
}

// CriticalFields returns, in fixed order: id, merchant id, name, schedule date
func (p *PayRun) CriticalFields() []string {
	return []string{
		p.ID.String(),
		p.MerchantID.String(),
		p.Name,
		approvals.FormatTime(p.ScheduleDate),
	}
}
