package dns

import (
	"context"
	"slices"
	"sync/atomic"
)

// MockResolver is a Resolver used for testing.
// Set TXT records in the TXT field, which maps FQDNs (with trailing
// dot) to record values.
type MockResolver struct {
	TXT map[string][]string

	// Fail contains names that will return ErrServFail.
	Fail []string

	// queries counts LookupTXT calls, for asserting scan coverage.
	queries atomic.Int64
}

var _ Resolver = (*MockResolver)(nil)

// ensureFQDN ensures the name ends with a dot.
func ensureFQDN(name string) string {
	if len(name) == 0 || name[len(name)-1] != '.' {
		return name + "."
	}
	return name
}

// LookupTXT returns the configured TXT records for the given name.
func (r *MockResolver) LookupTXT(ctx context.Context, name string) ([]string, error) {
	r.queries.Add(1)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	fqdn := ensureFQDN(name)
	if slices.Contains(r.Fail, fqdn) {
		return nil, ErrServFail
	}

	records, ok := r.TXT[fqdn]
	if !ok || len(records) == 0 {
		return nil, ErrNotFound
	}
	return records, nil
}

// Queries returns the number of LookupTXT calls made so far.
func (r *MockResolver) Queries() int64 {
	return r.queries.Load()
}
