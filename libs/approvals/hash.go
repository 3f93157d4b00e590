package approvals

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/shopspring/decimal"
)

// ComputeHash produces the deterministic approval hash over the entity's
// current critical fields. It is computed once when an approval is requested
// and recomputed at execution time, execution is only permitted when the two
// hashes are equal. No secret is involved at this layer, the threat model is
// drift detection between approval and execution, not forgery.
func ComputeHash(a Approvable) string {
	h := sha256.New()
	for _, f := range a.CriticalFields() {
		// no delimiters beyond the natural string forms, the fields' shapes
		// make collisions across field boundaries practically negligible
		h.Write([]byte(f))
	}
	if nonce := a.ApprovalNonce(); nonce != "" {
		h.Write([]byte(nonce))
	}
	return hex.EncodeToString(h.Sum(nil))
}

// FormatAmount renders a monetary value with fixed two-decimal precision so
// floating rounding noise cannot produce spurious hash mismatches
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// FormatTime renders an instant in canonical UTC RFC3339 form
func FormatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
