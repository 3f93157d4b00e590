package approvals

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextStateValid(t *testing.T) {
	assert.True(t, Unapproved.NextStateValid(PartiallyApproved))
	assert.True(t, Unapproved.NextStateValid(FullyApproved))
	assert.True(t, PartiallyApproved.NextStateValid(PartiallyApproved))
	assert.True(t, PartiallyApproved.NextStateValid(FullyApproved))
	assert.True(t, FullyApproved.NextStateValid(Executed))
	assert.True(t, Executed.NextStateValid(Voided))
	assert.True(t, Voided.NextStateValid(Unapproved))

	// a critical-field mutation voids from any live state
	for _, s := range []State{Unapproved, PartiallyApproved, FullyApproved, Executed} {
		assert.True(t, s.NextStateValid(Voided), "%s -> voided", s)
	}

	assert.False(t, Unapproved.NextStateValid(Executed))
	assert.False(t, Executed.NextStateValid(FullyApproved))
	assert.False(t, FullyApproved.NextStateValid(PartiallyApproved))
	assert.False(t, Voided.NextStateValid(Executed))
}
