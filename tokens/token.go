// Package tokens models merchant API tokens, whose activation is gated behind
// approval because a token grants standing API access.
package tokens

import (
	"strings"

	"github.com/google/uuid"

	"github.com/nofrixion/moneymoov-go/libs/approvals"
)

// Token is a merchant-scoped API token.
type Token struct {
	ID          uuid.UUID `json:"id"`
	MerchantID  uuid.UUID `json:"merchantId"`
	Description string    `json:"description"`
	Permissions []string  `json:"permissions"`
	// Nonce binds the hash to one approval attempt
	Nonce string `json:"nonce,omitempty"`
	// LastUsedNote is operational metadata, edits do not void an approval
	LastUsedNote string `json:"lastUsedNote,omitempty"`
}

// ApprovalID returns the stable identifier for approval tracking
func (t *Token) ApprovalID() string {
	return t.ID.String()
}

// ApprovalType tags the critical-field set that applies
func (t *Token) ApprovalType() approvals.EntityType {
	return approvals.EntityTypeToken
}

// ApprovalNonce returns the nonce bound to the current approval attempt
func (t *Token) ApprovalNonce() string {
	return t.Nonce
}

// CriticalFields returns, in fixed order: description, merchant id and the
// permission list in declaration order
func (t *Token) CriticalFields() []string {
	return []string{
		t.Description,
		t.MerchantID.String(),
		strings.Join(t.Permissions, ","),
	}
}
