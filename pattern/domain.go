package pattern

import "strings"

// Domain holds the target domain split into its ordered labels.
// It is read-only for the whole run and shared across expansions.
type Domain struct {
	name   string
	labels []string
}

// NewDomain splits name on "." into labels. The name is used as given;
// selector candidates are not validated as DNS labels.
func NewDomain(name string) *Domain {
	return &Domain{
		name:   name,
		labels: strings.Split(name, "."),
	}
}

// Name returns the full domain as passed to NewDomain.
func (d *Domain) Name() string { return d.name }

// NumLabels returns the number of dot-separated labels.
func (d *Domain) NumLabels() int { return len(d.labels) }

// Label returns the label at idx. Positive template arguments are
// 1-based from the left; non-positive arguments count from the right,
// Perl style. The index is clamped into range rather than rejected, so
// out-of-range rules still generate something instead of aborting.
func (d *Domain) Label(idx int) string {
	return d.labels[d.normalize(idx)]
}

// Slice returns the inclusive label range from i to j joined by ".".
// If the normalized start exceeds the end the result is empty.
func (d *Domain) Slice(i, j int) string {
	lo, hi := d.normalize(i), d.normalize(j)
	if lo > hi {
		return ""
	}
	return strings.Join(d.labels[lo:hi+1], ".")
}

// normalize converts a template argument to a 0-based slice index:
// decrement positive values, keep non-positive values as negative
// offsets, clamp into [-n, n-1], then wrap negatives.
func (d *Domain) normalize(idx int) int {
	n := len(d.labels)
	if idx > 0 {
		idx--
	}
	if idx < -n {
		idx = -n
	}
	if idx > n-1 {
		idx = n - 1
	}
	if idx < 0 {
		idx += n
	}
	return idx
}
