package tokens

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/nofrixion/moneymoov-go/libs/approvals"
)

func testToken() *Token {
	return &Token{
		ID:          uuid.MustParse("d0a1b2c3-d4e5-4f60-8172-93a4b5c6d701"),
		MerchantID:  uuid.MustParse("0e1cb5a5-42b9-4c25-8d2f-4e4fd95a1c02"),
		Description: "warehouse integration",
		Permissions: []string{"payouts:read", "payouts:create"},
	}
}

func TestTokenHashCriticalFields(t *testing.T) {
	base := approvals.ComputeHash(testToken())

	tok := testToken()
	tok.Permissions = []string{"payouts:read", "payouts:create", "tokens:create"}
	assert.NotEqual(t, base, approvals.ComputeHash(tok))

	tok = testToken()
	tok.Description = "warehouse integration v2"
	assert.NotEqual(t, base, approvals.ComputeHash(tok))

	// operational metadata sits outside the boundary
	tok = testToken()
	tok.LastUsedNote = "rotated 2024-11-20"
	assert.Equal(t, base, approvals.ComputeHash(tok))
}
