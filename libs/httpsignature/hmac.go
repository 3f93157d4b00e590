package httpsignature

import (
	"crypto/hmac"
	"crypto/subtle"
)

// HMACKey is a symmetric key that can be used for request signing and verification.
// Short or empty keys are accepted, signing with them is deterministic.
type HMACKey []byte

func hmacSign(key HMACKey, alg Algorithm, message []byte) ([]byte, error) {
	newHash, err := alg.hashFunc()
	if err != nil {
		return nil, err
	}
	hhash := hmac.New(newHash, key)
	// writing the message (the canonical signing string) to it
	_, err = hhash.Write(message)
	if err != nil {
		return nil, err
	}
	// Get the hash sum, do not base64 encode it here
	return hhash.Sum(nil), nil
}

// Sign the message using the hmac key and the given algorithm
func (key HMACKey) Sign(alg Algorithm, message []byte) ([]byte, error) {
	return hmacSign(key, alg, message)
}

// Verify the signature sig for message using the hmac key
func (key HMACKey) Verify(alg Algorithm, message, sig []byte) (bool, error) {
	hashSum, err := hmacSign(key, alg, message)
	if err != nil {
		return false, err
	}
	// Check whether or not the calculated hash is equal to sig in constant time
	return subtle.ConstantTimeCompare(hashSum, sig) == 1, nil
}

// Zero overwrites the key material, secrets are scoped to the shortest possible lifetime
func (key HMACKey) Zero() {
	for i := range key {
		key[i] = 0
	}
}
