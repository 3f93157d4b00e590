package webhook

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignRoundTrip(t *testing.T) {
	secret := []byte("endpoint-shared-secret")
	payload := []byte(`{"eventType":"payin","amount":"10.00"}`)

	sig := Sign(secret, payload)
	assert.NotEmpty(t, sig)
	assert.True(t, Verify(secret, payload, sig))
}

func TestSignDeterminism(t *testing.T) {
	secret := []byte("endpoint-shared-secret")
	payload := []byte("payload bytes")

	assert.Equal(t, Sign(secret, payload), Sign(secret, payload))
}

func TestVerifyRejectsDrift(t *testing.T) {
	secret := []byte("endpoint-shared-secret")
	payload := []byte(`{"eventType":"payin"}`)
	sig := Sign(secret, payload)

	// re-serialised or mutated body must not verify
	assert.False(t, Verify(secret, []byte(`{"eventType": "payin"}`), sig))
	// wrong secret must not verify
	assert.False(t, Verify([]byte("other-secret"), payload, sig))
	// truncated signature must not verify
	assert.False(t, Verify(secret, payload, sig[:len(sig)-2]))
}

func TestConfig(t *testing.T) {
	cfg := NewConfig([]byte("s3cret"))
	assert.Equal(t, DefaultSignatureHeader, cfg.Header)

	payload := []byte("body")
	assert.True(t, cfg.Verify(payload, cfg.Sign(payload)))
}
