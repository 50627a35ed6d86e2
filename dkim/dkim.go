// Package dkim parses DKIM key records found in DNS TXT data and
// reconstructs the public keys they carry.
//
// Unlike a verifier, a scanner has to accept the malformed and partial
// records that are common in the wild: missing version tags, stray
// whitespace inside the base64 key data, unpadded base64, records cut
// short by the publisher. Parsing here is therefore tolerant; a record
// is only rejected when it carries no usable key material at all.
package dkim

import "errors"

var (
	// ErrBadKey indicates the p= tag could not be decoded or does not
	// contain an RSA public key.
	ErrBadKey = errors.New("dkim: unusable public key")
)

// Mode reports whether a key is enforced in production or published
// for testing (t=y).
type Mode int

const (
	ModeProd Mode = iota
	ModeTest
)

func (m Mode) String() string {
	if m == ModeTest {
		return "TEST"
	}
	return "PROD"
}
