package httpsignature

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errorutils "github.com/nofrixion/moneymoov-go/libs/errors"
)

var (
	testNonce  = "abdc0084-9a07-463b-ba8c-f47f2285531b"
	testSecret = HMACKey("123456Q3MDc2YjNhNDUzMTk1NzljZmVj")
)

func TestBuildSigningString(t *testing.T) {
	date := time.Date(2023, time.January, 13, 12, 21, 17, 0, time.UTC)

	v0 := SignatureParams{Version: 0}
	expected := "date: Fri, 13 Jan 2023 12:21:17 GMT\nx-mod-nonce: " + testNonce
	assert.Equal(t, expected, string(v0.BuildSigningString(testNonce, date)))

	v1 := SignatureParams{Version: 1, Algorithm: SHA256}
	expected = "date: Fri, 13 Jan 2023 12:21:17 GMT\nidempotency-key: " + testNonce
	assert.Equal(t, expected, string(v1.BuildSigningString(testNonce, date)))
}

func TestSignVersion0Vector(t *testing.T) {
	date := time.Date(2023, time.January, 13, 12, 21, 17, 0, time.UTC)

	token, err := Sign(SignatureParams{Version: 0}, testSecret, testNonce, date)
	require.NoError(t, err)

	decoded, err := url.QueryUnescape(token)
	require.NoError(t, err)
	assert.Equal(t, "qsL1e/Vbz92f/Uj3zqEg3bboI/A=", decoded)
}

func TestSignVersion1Sha512Vector(t *testing.T) {
	date := time.Date(2024, time.November, 20, 12, 21, 17, 0, time.UTC)

	token, err := Sign(SignatureParams{Version: 1, Algorithm: SHA512}, testSecret, testNonce, date)
	require.NoError(t, err)

	decoded, err := url.QueryUnescape(token)
	require.NoError(t, err)
	assert.Equal(t, "rWnfYK2BqiWrF2xGYdShgUhvFJO8gBWWnHLHKIV1X2KoUalr3Xf1MZ2oxs9+KQGyONVcSyVv3th7afcFPh7SPw==", decoded)
}

func TestSignVersion0PinsSha1(t *testing.T) {
	date := time.Date(2023, time.January, 13, 12, 21, 17, 0, time.UTC)

	// version 0 must produce the SHA-1 signature even when another algorithm is supplied
	pinned, err := Sign(SignatureParams{Version: 0, Algorithm: SHA512}, testSecret, testNonce, date)
	require.NoError(t, err)
	plain, err := Sign(SignatureParams{Version: 0}, testSecret, testNonce, date)
	require.NoError(t, err)
	assert.Equal(t, plain, pinned)
}

func TestSignDeterminism(t *testing.T) {
	date := time.Date(2024, time.November, 20, 12, 21, 17, 0, time.UTC)
	params := SignatureParams{Version: 1, Algorithm: SHA256}

	first, err := Sign(params, testSecret, testNonce, date)
	require.NoError(t, err)
	second, err := Sign(params, testSecret, testNonce, date)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestSignShortSecret(t *testing.T) {
	date := time.Date(2023, time.January, 13, 12, 21, 17, 0, time.UTC)

	// secrets shorter than the hash's ideal key size must not error
	token, err := Sign(SignatureParams{Version: 1, Algorithm: SHA256}, HMACKey("password"), testNonce, date)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	// an empty secret still produces a deterministic signature
	token, err = Sign(SignatureParams{Version: 0}, HMACKey(""), testNonce, date)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestSignUnsupportedAlgorithm(t *testing.T) {
	date := time.Now()

	_, err := Sign(SignatureParams{Version: 1, Algorithm: SHA1}, testSecret, testNonce, date)
	assert.ErrorIs(t, err, errorutils.ErrUnsupportedAlgorithm)

	_, err = Sign(SignatureParams{Version: 2}, testSecret, testNonce, date)
	assert.ErrorIs(t, err, errorutils.ErrUnsupportedAlgorithm)
}

func TestVerifyRoundTrip(t *testing.T) {
	date := time.Date(2024, time.November, 20, 12, 21, 17, 0, time.UTC)

	for _, params := range []SignatureParams{
		{Version: 0},
		{Version: 1, Algorithm: SHA256},
		{Version: 1, Algorithm: SHA512},
	} {
		token, err := Sign(params, testSecret, testNonce, date)
		require.NoError(t, err)

		valid, err := Verify(params, testSecret, testNonce, date, token)
		require.NoError(t, err)
		assert.True(t, valid, "round trip for %+v", params)

		// any input drift is an authentication failure
		valid, err = Verify(params, testSecret, "another-nonce", date, token)
		require.NoError(t, err)
		assert.False(t, valid)

		valid, err = Verify(params, HMACKey("other-secret"), testNonce, date, token)
		require.NoError(t, err)
		assert.False(t, valid)
	}
}

func TestVerifyMalformedToken(t *testing.T) {
	date := time.Now()
	params := SignatureParams{Version: 1, Algorithm: SHA256}

	// not valid base64 after unescaping, must be a clean mismatch
	valid, err := Verify(params, testSecret, testNonce, date, "%%%garbage")
	require.NoError(t, err)
	assert.False(t, valid)
}

func TestHMACKeyZero(t *testing.T) {
	key := HMACKey("supersecret")
	key.Zero()
	for _, b := range key {
		assert.Zero(t, b)
	}
}

func TestAlgorithmMarshalText(t *testing.T) {
	var alg Algorithm
	require.NoError(t, alg.UnmarshalText([]byte("sha512")))
	assert.Equal(t, SHA512, alg)

	text, err := alg.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "sha512", string(text))

	assert.Error(t, alg.UnmarshalText([]byte("md5")))
}
