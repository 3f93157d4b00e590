package approvals

import (
	errorutils "github.com/nofrixion/moneymoov-go/libs/errors"
)

// Policy is externally supplied approver configuration, merchant or account
// level settings. This package only consumes it.
type Policy struct {
	// EligibleRoles restricts who may approve, empty permits any role
	EligibleRoles []string
	// ExcludeCreator forbids the entity's creator from being a counted approver
	ExcludeCreator bool
	// ExcludeLastEditor forbids the entity's last editor from being a counted approver
	ExcludeLastEditor bool
	// AllowedAuthenticationMethods the identity provider may use for step-up auth
	AllowedAuthenticationMethods []string
}

// Actors captures the humans relevant to a status computation
type Actors struct {
	CurrentUser UserRef
	Creator     *UserRef
	LastEditor  *UserRef
}

// CheckEligibility applies the business rules for whether the current user may
// hold a counted approval on the entity
func (p Policy) CheckEligibility(actors Actors) error {
	if p.ExcludeCreator && actors.Creator != nil && actors.Creator.ID == actors.CurrentUser.ID {
		return errorutils.ErrIneligibleApprover
	}
	if p.ExcludeLastEditor && actors.LastEditor != nil && actors.LastEditor.ID == actors.CurrentUser.ID {
		return errorutils.ErrIneligibleApprover
	}
	if len(p.EligibleRoles) == 0 {
		return nil
	}
	for _, role := range p.EligibleRoles {
		for _, held := range actors.CurrentUser.Roles {
			if role == held {
				return nil
			}
		}
	}
	return errorutils.ErrIneligibleApprover
}

// AuthorisationStatus is a view over a record, computed fresh on every read
// from the current authorisation list and policy. It is never persisted, the
// stored record is the only source of truth.
type AuthorisationStatus struct {
	Authorisations               []Authorisation `json:"authorisations"`
	AuthorisersRequiredCount     int             `json:"authorisersRequiredCount"`
	AuthorisersCompletedCount    int             `json:"authorisersCompletedCount"`
	CanAuthorise                 bool            `json:"canAuthorise"`
	CanUpdate                    bool            `json:"canUpdate"`
	HasCurrentUserAuthorised     bool            `json:"hasCurrentUserAuthorised"`
	AllowedAuthenticationMethods []string        `json:"allowedAuthenticationMethods,omitempty"`
	State                        State           `json:"state"`
}

// Status derives the capability flags for the current user. canAuthorise is
// true only while the threshold is unmet, the user has not already authorised
// the current hash and the policy permits them to approve. Editing remains
// possible until the action executes, though it voids existing approvals.
func (r *Record) Status(pol Policy, actors Actors) AuthorisationStatus {
	completed := r.CompletedCount()
	hasAuthorised := r.HasAuthorised(actors.CurrentUser)

	canAuthorise := r.State != FullyApproved &&
		r.State != Executed &&
		completed < r.RequiredCount &&
		!hasAuthorised &&
		pol.CheckEligibility(actors) == nil

	return AuthorisationStatus{
		Authorisations:               r.Authorisations,
		AuthorisersRequiredCount:     r.RequiredCount,
		AuthorisersCompletedCount:    completed,
		CanAuthorise:                 canAuthorise,
		CanUpdate:                    r.State != Executed,
		HasCurrentUserAuthorised:     hasAuthorised,
		AllowedAuthenticationMethods: pol.AllowedAuthenticationMethods,
		State:                        r.State,
	}
}
