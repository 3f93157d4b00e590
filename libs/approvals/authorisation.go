package approvals

import (
	"time"

	errorutils "github.com/nofrixion/moneymoov-go/libs/errors"
)

// Authorisation is a single completed approval. It is immutable once recorded,
// it is only ever removed by a full re-approval cycle after the critical-field
// hash changed.
type Authorisation struct {
	Approver     UserRef   `json:"approver"`
	AuthorisedAt time.Time `json:"authorisedAt"`
}

// Record is the authorisation state stored alongside one approvable entity.
// The record is owned exclusively by the resource server holding the entity,
// callers must serialise concurrent approval submissions for the same entity.
type Record struct {
	// Hash of the critical fields the approvals were granted against
	Hash string `json:"approvalHash"`
	// RequiredCount is externally supplied merchant or account level configuration
	RequiredCount  int             `json:"authorisersRequiredCount"`
	Authorisations []Authorisation `json:"authorisations"`
	State          State           `json:"state"`
}

// NewRecord starts an approval cycle bound to the given critical-field hash
func NewRecord(hash string, requiredCount int) *Record {
	return &Record{
		Hash:          hash,
		RequiredCount: requiredCount,
		State:         Unapproved,
	}
}

// CompletedCount is the number of distinct approvers recorded
func (r *Record) CompletedCount() int {
	seen := map[string]bool{}
	for _, a := range r.Authorisations {
		seen[a.Approver.ID.String()] = true
	}
	return len(seen)
}

// HasAuthorised returns true if the user already has a counted approval on the
// current hash
func (r *Record) HasAuthorised(user UserRef) bool {
	for _, a := range r.Authorisations {
		if a.Approver.ID == user.ID {
			return true
		}
	}
	return false
}

// advance moves the record to the next state, refusing invalid transitions
func (r *Record) advance(next State) error {
	if !r.State.NextStateValid(next) {
		return errorutils.ErrInvalidTransition
	}
	r.State = next
	return nil
}

// Authorise records an approval granted against currentHash. Approvals only
// count when the hash still matches, a duplicate approval by the same user is
// a no-op rather than a double count. Once the threshold is met the record
// only accepts Execute or Void, further approvals are refused.
func (r *Record) Authorise(user UserRef, at time.Time, currentHash string) error {
	if r.State == FullyApproved || r.State == Executed {
		return errorutils.ErrInvalidTransition
	}
	if currentHash != r.Hash {
		// the entity drifted since this cycle started
		return errorutils.ErrApprovalHashMismatch
	}
	if r.State == Voided {
		// re-approval cycle restarting against the same hash
		if err := r.advance(Unapproved); err != nil {
			return err
		}
	}
	if r.HasAuthorised(user) {
		return nil
	}
	r.Authorisations = append(r.Authorisations, Authorisation{
		Approver:     user,
		AuthorisedAt: at,
	})
	next := PartiallyApproved
	if r.CompletedCount() >= r.RequiredCount {
		next = FullyApproved
	}
	return r.advance(next)
}

// Void invalidates all recorded approvals after a critical-field mutation
func (r *Record) Void() {
	r.Authorisations = nil
	// always a valid transition per the map
	_ = r.advance(Voided)
}

// Restart rebinds the record to a new critical-field hash and reopens the cycle
func (r *Record) Restart(newHash string) {
	r.Hash = newHash
	r.Authorisations = nil
	r.State = Unapproved
}

// Refresh compares the record against the entity's current critical-field hash
// and voids the cycle when the entity drifted. Returns true if approvals were
// invalidated.
func (r *Record) Refresh(currentHash string) bool {
	if currentHash == r.Hash {
		return false
	}
	r.Void()
	r.Restart(currentHash)
	return true
}

// Execute marks the approved action as performed. The authorisation list is
// kept for audit.
func (r *Record) Execute() error {
	if r.State != FullyApproved {
		return errorutils.ErrInsufficientApprovers
	}
	return r.advance(Executed)
}
