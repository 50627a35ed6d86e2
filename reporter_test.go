package dkimhound

import (
	"strings"
	"testing"

	"github.com/synqronlabs/dkimhound/dkim"
)

func sampleFinding() *Finding {
	return &Finding{
		Session:     "01JTESTSESSIONULID0000000000",
		FQDN:        "default._domainkey.example.com",
		RawTXT:      "v=DKIM1; p=ABCD",
		Domain:      "example.com",
		Selector:    "default",
		Mode:        dkim.ModeProd,
		Bits:        1024,
		Modulus:     "1234567890",
		Exponent:    "65537",
		Fingerprint: "da39a3ee5e6b4b0d3255bfef95601890afd80709",
		PEM:         "-----BEGIN PUBLIC KEY-----\nABCD\n-----END PUBLIC KEY-----\n",
	}
}

func TestFindingSummary(t *testing.T) {
	got := sampleFinding().Summary()
	want := "da39a3ee5e6b4b0d3255bfef95601890afd80709 1024 example.com default PROD"
	if got != want {
		t.Errorf("Summary() = %q, want %q", got, want)
	}
}

func TestTextReporter(t *testing.T) {
	var sb strings.Builder
	r := &TextReporter{W: &sb}
	r.Report(sampleFinding())

	out := sb.String()
	for _, want := range []string{
		"default._domainkey.example.com",
		"v=DKIM1; p=ABCD",
		"bits:        1024",
		"modulus:     1234567890",
		"exponent:    65537",
		"da39a3ee5e6b4b0d3255bfef95601890afd80709 1024 example.com default PROD",
		"-----BEGIN PUBLIC KEY-----",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

// Bit sizes pad to four digits so short keys line up.
func TestTextReporterPadsBits(t *testing.T) {
	var sb strings.Builder
	f := sampleFinding()
	f.Bits = 768
	(&TextReporter{W: &sb}).Report(f)

	if !strings.Contains(sb.String(), "bits:        0768") {
		t.Errorf("output missing zero-padded bits:\n%s", sb.String())
	}
}

func TestTextReporterQuiet(t *testing.T) {
	var sb strings.Builder
	f := sampleFinding()
	(&TextReporter{W: &sb, Quiet: true}).Report(f)

	if sb.String() != f.PEM {
		t.Errorf("quiet output = %q, want only the PEM text", sb.String())
	}
}
