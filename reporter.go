package dkimhound

import (
	"fmt"
	"io"

	"github.com/synqronlabs/dkimhound/dkim"
)

// Finding is one discovered DKIM key. It is immutable once constructed
// and produced at most once per selector per session.
type Finding struct {
	// Session is the ULID of the scan session that produced this
	// finding, for log correlation.
	Session string

	// FQDN is the fully-qualified name that was queried.
	FQDN string

	// RawTXT is the TXT record text the key was parsed from.
	RawTXT string

	// Domain and Selector are the two halves of the queried name
	// around "._domainkey.".
	Domain   string
	Selector string

	// Mode is TEST when the record carries t=y, PROD otherwise.
	Mode dkim.Mode

	// Bits is the RSA modulus size in bits.
	Bits int

	// Modulus and Exponent are the key parameters in decimal.
	Modulus  string
	Exponent string

	// Fingerprint is the SHA-1 hex digest of the raw decoded key.
	Fingerprint string

	// PEM is the reconstructed PUBLIC KEY block.
	PEM string
}

// Summary returns the one-line form:
// <sha1-fingerprint> <bit-size> <domain> <selector> <mode>.
func (f *Finding) Summary() string {
	return fmt.Sprintf("%s %d %s %s %s", f.Fingerprint, f.Bits, f.Domain, f.Selector, f.Mode)
}

// Reporter is the output boundary. Report is only ever called from the
// session's serial response-handling path, so implementations need no
// locking and writes are naturally ordered.
type Reporter interface {
	Report(f *Finding)
}

// TextReporter writes findings to W as text. With Quiet set only the
// reconstructed public-key text is written; otherwise each finding is
// a block with the queried name, the raw record, the key parameters, a
// summary line and the PEM text.
type TextReporter struct {
	W     io.Writer
	Quiet bool
}

var _ Reporter = (*TextReporter)(nil)

func (r *TextReporter) Report(f *Finding) {
	if r.Quiet {
		fmt.Fprint(r.W, f.PEM)
		return
	}

	fmt.Fprintf(r.W, "fqdn:        %s\n", f.FQDN)
	fmt.Fprintf(r.W, "txt:         %s\n", f.RawTXT)
	fmt.Fprintf(r.W, "bits:        %04d\n", f.Bits)
	fmt.Fprintf(r.W, "modulus:     %s\n", f.Modulus)
	fmt.Fprintf(r.W, "exponent:    %s\n", f.Exponent)
	fmt.Fprintf(r.W, "fingerprint: %s\n", f.Summary())
	fmt.Fprintf(r.W, "%s\n", f.PEM)
}
