package approvals

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// testEntity is a minimal approvable with one field outside the critical set
type testEntity struct {
	id     string
	name   string
	amount decimal.Decimal
	notes  string // not critical
	nonce  string
	kind   EntityType
}

func (e *testEntity) ApprovalID() string       { return e.id }
func (e *testEntity) ApprovalType() EntityType { return e.kind }
func (e *testEntity) ApprovalNonce() string    { return e.nonce }
func (e *testEntity) CriticalFields() []string {
	return []string{e.id, e.name, FormatAmount(e.amount)}
}

func TestComputeHashStability(t *testing.T) {
	e := &testEntity{id: "e1", name: "rent", amount: decimal.NewFromFloat(10.5), kind: EntityTypePayout}

	first := ComputeHash(e)
	second := ComputeHash(e)
	assert.Equal(t, first, second)
}

func TestComputeHashCriticalFieldSensitivity(t *testing.T) {
	e := &testEntity{id: "e1", name: "rent", amount: decimal.NewFromFloat(10.5), kind: EntityTypePayout}
	base := ComputeHash(e)

	e.name = "rent 2"
	assert.NotEqual(t, base, ComputeHash(e))
	e.name = "rent"

	e.amount = decimal.NewFromFloat(10.51)
	assert.NotEqual(t, base, ComputeHash(e))
	e.amount = decimal.NewFromFloat(10.5)

	// a field outside the critical set does not change the hash
	e.notes = "updated internal notes"
	assert.Equal(t, base, ComputeHash(e))
}

func TestComputeHashNonceBinding(t *testing.T) {
	e := &testEntity{id: "e1", name: "rent", amount: decimal.NewFromFloat(10.5)}
	unbound := ComputeHash(e)

	e.nonce = "0f8fad5b-d9cb-469f-a165-70867728950e"
	assert.NotEqual(t, unbound, ComputeHash(e))
}

func TestFormatAmountFixedPrecision(t *testing.T) {
	// rounding noise must not produce spurious hash mismatches
	assert.Equal(t, "12.50", FormatAmount(decimal.NewFromFloat(12.5)))
	assert.Equal(t, "12.50", FormatAmount(decimal.NewFromFloat(12.499999999)))
	assert.Equal(t, "0.00", FormatAmount(decimal.Zero))
}

func TestFormatTime(t *testing.T) {
	loc := time.FixedZone("CET", 3600)
	at := time.Date(2024, time.November, 20, 13, 21, 17, 0, loc)
	assert.Equal(t, "2024-11-20T12:21:17Z", FormatTime(at))
}
