package httpsignature

import (
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"errors"
	"hash"

	errorutils "github.com/nofrixion/moneymoov-go/libs/errors"
)

// Algorithm is an enum-like representing a hash algorithm usable for request signatures
type Algorithm int

const (
	invalid Algorithm = iota
	// SHA1 is only valid for version 0 signatures, kept for legacy verification
	SHA1
	// SHA256 hmac-sha256
	SHA256
	// SHA512 hmac-sha512
	SHA512
)

var algorithmName = map[Algorithm]string{
	SHA1:   "sha1",
	SHA256: "sha256",
	SHA512: "sha512",
}

var algorithmID = map[string]Algorithm{
	"sha1":   SHA1,
	"sha256": SHA256,
	"sha512": SHA512,
}

func (a Algorithm) String() string {
	return algorithmName[a]
}

// MarshalText marshalls the algorithm into text.
func (a *Algorithm) MarshalText() (text []byte, err error) {
	if *a == invalid {
		return nil, errors.New("not a supported algorithm")
	}
	text = []byte(a.String())
	return
}

// UnmarshalText unmarshalls the algorithm from text.
func (a *Algorithm) UnmarshalText(text []byte) (err error) {
	var exists bool
	*a, exists = algorithmID[string(text)]
	if !exists {
		return errors.New("not a supported algorithm")
	}
	return nil
}

// hashFunc returns the hash constructor backing the algorithm
func (a Algorithm) hashFunc() (func() hash.Hash, error) {
	switch a {
	case SHA1:
		return sha1.New, nil
	case SHA256:
		return sha256.New, nil
	case SHA512:
		return sha512.New, nil
	default:
		return nil, errorutils.ErrUnsupportedAlgorithm
	}
}
