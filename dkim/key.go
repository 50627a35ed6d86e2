package dkim

import (
	"crypto/rsa"
	"crypto/sha1"
	"crypto/x509"
	"encoding/base64"
	"encoding/hex"
	"encoding/pem"
	"fmt"
	"strconv"
)

// KeyInfo describes a reconstructed RSA public key.
type KeyInfo struct {
	// Bits is the modulus length in bits (byte length times eight).
	Bits int

	// Modulus and Exponent are the key parameters in decimal.
	Modulus  string
	Exponent string

	// Fingerprint is the SHA-1 hex digest of the raw DER bytes, taken
	// before PEM wrapping so it matches the published p= data.
	Fingerprint string

	// PEM is the key re-encoded as a PUBLIC KEY block.
	PEM string
}

// InspectKey decodes the padded base64 from a p= tag and derives the
// key parameters. The data must hold a PKIX-encoded RSA public key;
// anything else returns ErrBadKey.
func InspectKey(key string) (*KeyInfo, error) {
	der, err := base64.StdEncoding.DecodeString(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadKey, err)
	}

	digest := sha1.Sum(der)

	block := pem.EncodeToMemory(&pem.Block{
		Type:  "PUBLIC KEY",
		Bytes: der,
	})

	parsed, err := x509.ParsePKIXPublicKey(der)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadKey, err)
	}
	pub, ok := parsed.(*rsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("%w: expected RSA, got %T", ErrBadKey, parsed)
	}

	return &KeyInfo{
		Bits:        len(pub.N.Bytes()) * 8,
		Modulus:     pub.N.String(),
		Exponent:    strconv.Itoa(pub.E),
		Fingerprint: hex.EncodeToString(digest[:]),
		PEM:         string(block),
	}, nil
}
