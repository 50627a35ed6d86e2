package dkimhound

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/net/idna"
	"golang.org/x/net/publicsuffix"
)

// ErrBadDomain indicates the target domain is not a resolvable name.
var ErrBadDomain = errors.New("dkimhound: invalid domain")

// NormalizeDomain lowercases the target, strips a trailing dot and
// converts internationalized names to their ASCII (punycode) form, so
// generated query names are always valid on the wire.
func NormalizeDomain(name string) (string, error) {
	name = strings.TrimSuffix(strings.ToLower(strings.TrimSpace(name)), ".")
	if name == "" || !strings.Contains(name, ".") {
		return "", fmt.Errorf("%w: %q", ErrBadDomain, name)
	}

	ascii, err := idna.Lookup.ToASCII(name)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrBadDomain, name, err)
	}
	return ascii, nil
}

// OrganizationalDomain returns the domain directly under the public
// suffix, e.g. sub.example.co.uk -> example.co.uk. For names that are
// themselves a public suffix (or unlisted) the input is returned
// unchanged. Useful context when scanning a subdomain: DKIM keys are
// commonly published at the organizational level.
func OrganizationalDomain(domain string) string {
	etld1, err := publicsuffix.EffectiveTLDPlusOne(domain)
	if err != nil {
		return domain
	}
	return etld1
}
