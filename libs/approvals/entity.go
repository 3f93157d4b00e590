// Package approvals implements the approval-integrity core protecting
// high-value actions. An entity's critical fields are hashed when a human
// approves an action and the hash is recomputed at execution time, any drift
// between the two voids the approval. Approvals accumulate per entity until an
// externally configured distinct-approver threshold is met.
package approvals

import (
	"github.com/google/uuid"
)

// EntityType tags the kind of approvable entity. Each kind defines its own
// critical-field set and that set is the security boundary, fields excluded
// from it can change post-approval without invalidating the approval.
type EntityType string

const (
	// EntityTypePayRun - a scheduled batch of payouts
	EntityTypePayRun EntityType = "payrun"
	// EntityTypePayout - a single payout instruction
	EntityTypePayout EntityType = "payout"
	// EntityTypeSweepRule - a fund sweep rule
	EntityTypeSweepRule EntityType = "sweeprule"
	// EntityTypeToken - a merchant API token
	EntityTypeToken EntityType = "token"
)

// Approvable is any domain object with a stable identifier and a set of
// critical fields whose modification must void an existing approval.
type Approvable interface {
	// ApprovalID is the stable identifier of the entity
	ApprovalID() string
	// ApprovalType tags which critical-field set applies
	ApprovalType() EntityType
	// CriticalFields returns the canonical string forms of the critical
	// fields in a fixed, type-specific order
	CriticalFields() []string
	// ApprovalNonce binds the hash to one approval attempt, empty when unbound
	ApprovalNonce() string
}

// UserRef identifies a human approver
type UserRef struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name,omitempty"`
	Roles []string  `json:"roles,omitempty"`
}
