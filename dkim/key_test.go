package dkim

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha1"
	"crypto/x509"
	"encoding/base64"
	"encoding/hex"
	"encoding/pem"
	"errors"
	"strings"
	"testing"
)

// genKeyB64 generates an RSA key of the given size and returns its
// public key as unpadded-free standard base64 DER, plus the DER bytes.
func genKeyB64(t *testing.T, bits int) (string, []byte) {
	t.Helper()
	priv, err := rsa.GenerateKey(rand.Reader, bits)
	if err != nil {
		t.Fatalf("generating key: %v", err)
	}
	der, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	if err != nil {
		t.Fatalf("marshaling key: %v", err)
	}
	return base64.StdEncoding.EncodeToString(der), der
}

func TestInspectKey(t *testing.T) {
	b64, der := genKeyB64(t, 1024)

	info, err := InspectKey(b64)
	if err != nil {
		t.Fatalf("InspectKey error: %v", err)
	}

	if info.Bits != 1024 {
		t.Errorf("bits = %d, want 1024", info.Bits)
	}

	wantFP := sha1.Sum(der)
	if info.Fingerprint != hex.EncodeToString(wantFP[:]) {
		t.Errorf("fingerprint = %q, want SHA-1 of raw DER", info.Fingerprint)
	}
	if len(info.Fingerprint) != 40 {
		t.Errorf("fingerprint length = %d, want 40", len(info.Fingerprint))
	}

	if info.Modulus == "" || strings.HasPrefix(info.Modulus, "-") {
		t.Errorf("modulus = %q, want positive decimal", info.Modulus)
	}
	if info.Exponent != "65537" {
		t.Errorf("exponent = %q, want 65537", info.Exponent)
	}

	// The PEM block must decode back to the same DER bytes.
	block, _ := pem.Decode([]byte(info.PEM))
	if block == nil {
		t.Fatal("PEM output does not decode")
	}
	if block.Type != "PUBLIC KEY" {
		t.Errorf("PEM type = %q, want PUBLIC KEY", block.Type)
	}
	if !strings.HasPrefix(info.PEM, "-----BEGIN PUBLIC KEY-----\n") {
		t.Errorf("PEM framing missing: %q", info.PEM[:40])
	}
	if len(block.Bytes) != len(der) {
		t.Errorf("PEM payload %d bytes, want %d", len(block.Bytes), len(der))
	}
}

func TestInspectKeySizes(t *testing.T) {
	for _, bits := range []int{1024, 2048} {
		b64, _ := genKeyB64(t, bits)
		info, err := InspectKey(b64)
		if err != nil {
			t.Fatalf("InspectKey(%d bits) error: %v", bits, err)
		}
		if info.Bits != bits {
			t.Errorf("bits = %d, want %d", info.Bits, bits)
		}
	}
}

func TestInspectKeyErrors(t *testing.T) {
	tests := []struct {
		name string
		key  string
	}{
		{name: "not base64", key: "!!!not-base64!!!"},
		{name: "not a key", key: base64.StdEncoding.EncodeToString([]byte("hello"))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := InspectKey(tt.key); !errors.Is(err, ErrBadKey) {
				t.Errorf("InspectKey error = %v, want ErrBadKey", err)
			}
		})
	}
}
