// Package webhook signs outbound webhook payloads so receivers can authenticate
// payload origin and integrity. Unlike request signing the scheme is not
// versioned, it is always HMAC-SHA256 over the exact byte sequence transmitted.
package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
)

// DefaultSignatureHeader is the header the signature is delivered in
const DefaultSignatureHeader = "x-moneymoov-signature"

// Config carries the per-endpoint webhook settings, passed explicitly so the
// signer is free of ambient globals
type Config struct {
	// Header the signature travels in
	Header string
	// Secret shared with the receiving endpoint
	Secret []byte
}

// NewConfig creates a webhook config with the default signature header
func NewConfig(secret []byte) Config {
	return Config{
		Header: DefaultSignatureHeader,
		Secret: secret,
	}
}

// Sign computes the base64 HMAC-SHA256 of the payload bytes.
// The payload must be the exact byte sequence that will be transmitted, any
// re-serialisation before verification invalidates the signature.
func Sign(secret, payload []byte) string {
	mac := hmac.New(sha256.New, secret)
	// hash.Hash writes never return an error
	_, _ = mac.Write(payload)
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// Verify recomputes the signature over the received raw body and compares it
// in constant time
func Verify(secret, payload []byte, signature string) bool {
	expected := Sign(secret, payload)
	return subtle.ConstantTimeCompare([]byte(expected), []byte(signature)) == 1
}

// Sign computes the signature for the payload with the config's secret
func (c Config) Sign(payload []byte) string {
	return Sign(c.Secret, payload)
}

// Verify checks the payload signature with the config's secret
func (c Config) Verify(payload []byte, signature string) bool {
	return Verify(c.Secret, payload, signature)
}
