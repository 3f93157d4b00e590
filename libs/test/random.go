// Package test holds small helpers shared by the package tests. Never import
// it from non-test code.
package test

import (
	"crypto/rand"
	"math/big"
)

const alphanumerics = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// RandomString returns a ten character random alphanumeric string.
func RandomString() string {
	return RandomStringWithLen(10)
}

// RandomStringWithLen returns a random alphanumeric string of the given length.
func RandomStringWithLen(length int) string {
	s := make([]byte, length)
	for i := range s {
		n, _ := rand.Int(rand.Reader, big.NewInt(int64(len(alphanumerics))))
		s[i] = alphanumerics[n.Int64()]
	}
	return string(s)
}
