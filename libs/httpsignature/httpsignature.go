// Package httpsignature contains methods for signing and verifying the versioned
// HMAC signature tokens carried on MoneyMoov API requests. The signature is an
// HMAC over a canonical signing string built from the request date header and a
// single-use nonce, base64 encoded and percent-escaped for transport.
package httpsignature

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"net/url"
	"time"

	errorutils "github.com/nofrixion/moneymoov-go/libs/errors"
)

const (
	// DateHeader is the header carrying the request timestamp
	DateHeader = "date"
	// NonceHeader is the header carrying the request nonce for version 0 signatures
	NonceHeader = "x-mod-nonce"
	// IdempotencyKeyHeader is the header carrying the request nonce for version 1+ signatures
	IdempotencyKeyHeader = "idempotency-key"
	// KeyIDHeader is the header identifying which shared secret signed the request
	KeyIDHeader = "x-mod-keyid"
	// VersionHeader is the header carrying the signature scheme version
	VersionHeader = "x-mod-version"
	// SignatureHeader is the header carrying the signature token itself
	SignatureHeader = "x-mod-signature"
)

// SignatureParams contains parameters needed to create and verify signature tokens
type SignatureParams struct {
	Version   uint
	Algorithm Algorithm
	KeyID     string
}

// EffectiveAlgorithm resolves the algorithm the params will sign with.
// Version 0 always signs with SHA-1 regardless of the algorithm field, this is
// a legacy compatibility requirement. Version 1 and up use the caller-selected
// algorithm, SHA-1 is no longer accepted there.
func (sp *SignatureParams) EffectiveAlgorithm() (Algorithm, error) {
	if sp.Version == 0 {
		return SHA1, nil
	}
	switch sp.Algorithm {
	case SHA256, SHA512:
		return sp.Algorithm, nil
	default:
		return invalid, errorutils.ErrUnsupportedAlgorithm
	}
}

// BuildSigningString builds the canonical signing input from the nonce and date.
// The date is always rendered in RFC1123 GMT form independent of locale. The
// nonce line is named after the header it travels in, which changed between
// signature versions.
func (sp *SignatureParams) BuildSigningString(nonce string, date time.Time) []byte {
	nonceHeader := NonceHeader
	if sp.Version >= 1 {
		nonceHeader = IdempotencyKeyHeader
	}
	return []byte(fmt.Sprintf("%s: %s\n%s: %s",
		DateHeader, date.UTC().Format(http.TimeFormat),
		nonceHeader, nonce,
	))
}

// Sign computes the signature token for the given nonce and date.
// The token is the raw HMAC base64 encoded and then percent-escaped, since it
// travels as a URL or header value where '+', '/' and '=' are unsafe.
func Sign(params SignatureParams, key HMACKey, nonce string, date time.Time) (string, error) {
	alg, err := params.EffectiveAlgorithm()
	if err != nil {
		return "", err
	}
	mac, err := key.Sign(alg, params.BuildSigningString(nonce, date))
	if err != nil {
		return "", err
	}
	return url.QueryEscape(base64.StdEncoding.EncodeToString(mac)), nil
}

// Verify recomputes the signature token from the same inputs and compares it
// in constant time against the presented token. A malformed token is an
// authentication failure, not a parse error.
func Verify(params SignatureParams, key HMACKey, nonce string, date time.Time, token string) (bool, error) {
	alg, err := params.EffectiveAlgorithm()
	if err != nil {
		return false, err
	}
	unescaped, err := url.QueryUnescape(token)
	if err != nil {
		return false, nil
	}
	sig, err := base64.StdEncoding.DecodeString(unescaped)
	if err != nil {
		return false, nil
	}
	return key.Verify(alg, params.BuildSigningString(nonce, date), sig)
}

// SignatureRequest bundles the inputs for a single outbound call signature.
// It is constructed per call and never persisted, callers should Zero the
// secret once the token has been produced.
type SignatureRequest struct {
	SignatureParams
	Nonce  string
	Date   time.Time
	Secret HMACKey
}

// Sign produces the signature token for the request
func (sr *SignatureRequest) Sign() (string, error) {
	return Sign(sr.SignatureParams, sr.Secret, sr.Nonce, sr.Date)
}

// Keystore provides a way to look up the shared key and signature parameters
// based on the keyID a request was signed with
type Keystore interface {
	// LookupKey based on the keyID
	LookupKey(ctx context.Context, keyID string) (context.Context, HMACKey, *SignatureParams, error)
}

// StaticKeystore is a keystore that always returns a static key independent of keyID
type StaticKeystore struct {
	Key    HMACKey
	Params SignatureParams
}

// LookupKey by returning the static key and params
func (sk *StaticKeystore) LookupKey(ctx context.Context, keyID string) (context.Context, HMACKey, *SignatureParams, error) {
	params := sk.Params
	params.KeyID = keyID
	return ctx, sk.Key, &params, nil
}
