package approvals

import (
	"github.com/asaskevich/govalidator"

	errorutils "github.com/nofrixion/moneymoov-go/libs/errors"
)

// Claim is the strongly typed approval claim produced by the external identity
// service after successful strong-customer-authentication. Signature and key
// verification against the identity provider's keys is the caller's
// responsibility, this core only validates the hash against recomputed state.
type Claim struct {
	EntityID   string `json:"entityId" valid:"required"`
	EntityType string `json:"entityType" valid:"required"`
	Hash       string `json:"approvalHash" valid:"required"`
	Signature  string `json:"signature" valid:"required"`
	KeyID      string `json:"keyId" valid:"required"`
	AuthMethod string `json:"authenticationMethod" valid:"-"`
}

// ClaimFromMap converts the loosely typed external claims bag into a Claim,
// validating once at the boundary
func ClaimFromMap(m map[string]interface{}) (*Claim, error) {
	str := func(key string) string {
		if v, ok := m[key].(string); ok {
			return v
		}
		return ""
	}
	claim := &Claim{
		EntityID:   str("entityId"),
		EntityType: str("entityType"),
		Hash:       str("approvalHash"),
		Signature:  str("signature"),
		KeyID:      str("keyId"),
		AuthMethod: str("authenticationMethod"),
	}
	if _, err := govalidator.ValidateStruct(claim); err != nil {
		return nil, errorutils.New(errorutils.ErrInvalidClaim, "failed to convert approval claims", govalidator.ErrorsByField(err))
	}
	return claim, nil
}

// Verify checks the claim against the live entity state and consumes it.
// A hash mismatch means the entity changed after approval was granted and the
// approval must be rejected, a second consumption is a replay.
func (c *Claim) Verify(entity Approvable, replay *ReplayRegistry) error {
	if c.EntityID != entity.ApprovalID() || c.EntityType != string(entity.ApprovalType()) {
		return errorutils.ErrInvalidClaim
	}
	if ComputeHash(entity) != c.Hash {
		return errorutils.ErrApprovalHashMismatch
	}
	if replay != nil {
		return replay.Consume(c.consumptionKey())
	}
	return nil
}

func (c *Claim) consumptionKey() string {
	return c.EntityType + "/" + c.EntityID + "/" + c.Hash
}
