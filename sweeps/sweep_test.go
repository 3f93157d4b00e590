package sweeps

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/nofrixion/moneymoov-go/libs/approvals"
)

func testRule() *Rule {
	return &Rule{
		ID:         uuid.MustParse("9e0a7b3c-1d2e-4f50-8a61-7b8c9d0e1f02"),
		MerchantID: uuid.MustParse("0e1cb5a5-42b9-4c25-8d2f-4e4fd95a1c02"),
		Name:       "overnight sweep",
		Destinations: []Destination{
			{
				AccountID: uuid.MustParse("11111111-2222-3333-4444-555555555555"),
				IBAN:      "IE29AIBK93115212345678",
				Percent:   decimal.NewFromFloat(70),
				Priority:  1,
			},
			{
				AccountID: uuid.MustParse("66666666-7777-8888-9999-aaaaaaaaaaaa"),
				IBAN:      "IE29AIBK93115287654321",
				Percent:   decimal.NewFromFloat(30),
				Priority:  2,
			},
		},
	}
}

func TestRuleHashCriticalFields(t *testing.T) {
	base := approvals.ComputeHash(testRule())

	r := testRule()
	r.Destinations[0].Percent = decimal.NewFromFloat(71)
	assert.NotEqual(t, base, approvals.ComputeHash(r))

	r = testRule()
	r.Destinations[1].IBAN = "IE29AIBK93115200000000"
	assert.NotEqual(t, base, approvals.ComputeHash(r))
}

func TestRuleHashIgnoresPriorityAndName(t *testing.T) {
	base := approvals.ComputeHash(testRule())

	// priority ordering metadata does not require re-approval
	r := testRule()
	r.Destinations[0].Priority = 9
	r.Destinations[1].Priority = 1
	assert.Equal(t, base, approvals.ComputeHash(r))

	r = testRule()
	r.Name = "renamed sweep"
	r.Enabled = true
	assert.Equal(t, base, approvals.ComputeHash(r))
}
