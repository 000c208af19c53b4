package util

import (
	"crypto/rand"
	"encoding/hex"
)

// NewOpaqueToken returns a 32-character hex token from a CSPRNG. Unlike
// ULIDs these carry no timestamp component, which keeps shareable invitation
// links unguessable.
func NewOpaqueToken() string {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand never fails on supported platforms
		panic(err)
	}
	return hex.EncodeToString(buf)
}
