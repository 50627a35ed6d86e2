// Package dns provides the TXT lookup transport used by the scanner.
//
// The scanner only ever asks one question, the TXT record set of a
// candidate name, so the Resolver interface is deliberately narrow.
// DNSResolver implements it on github.com/miekg/dns with configurable
// nameservers and retries; MockResolver implements it in memory for
// tests.
package dns

import (
	"context"
	"errors"
)

// Resolver answers TXT queries for the scanner.
type Resolver interface {
	// LookupTXT retrieves the TXT records for name. Multi-segment
	// records are joined into one string per record. ErrNotFound is
	// returned for NXDOMAIN and for names with no TXT records.
	LookupTXT(ctx context.Context, name string) ([]string, error)
}

var (
	// ErrNotFound indicates the name does not exist or has no TXT
	// records (NXDOMAIN or an empty answer section).
	ErrNotFound = errors.New("dns: not found")

	// ErrServFail indicates a server failure response.
	ErrServFail = errors.New("dns: server failure")

	// ErrRefused indicates the server refused the query.
	ErrRefused = errors.New("dns: query refused")

	// ErrTimeout indicates the query timed out after all retries.
	ErrTimeout = errors.New("dns: timeout")
)

// IsNotFound reports whether err means the name definitively does not
// exist, as opposed to a transient failure.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsTemporary reports whether the query might succeed if retried.
func IsTemporary(err error) bool {
	return errors.Is(err, ErrServFail) || errors.Is(err, ErrTimeout)
}
