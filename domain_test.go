package dkimhound

import (
	"errors"
	"testing"
)

func TestNormalizeDomain(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "plain", in: "example.com", want: "example.com"},
		{name: "uppercase", in: "EXAMPLE.COM", want: "example.com"},
		{name: "trailing dot", in: "example.com.", want: "example.com"},
		{name: "surrounding space", in: "  example.com ", want: "example.com"},
		{name: "idn to punycode", in: "bücher.example", want: "xn--bcher-kva.example"},
		{name: "empty", in: "", wantErr: true},
		{name: "no dot", in: "localhost", wantErr: true},
		{name: "bare dot", in: ".", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeDomain(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrBadDomain) {
					t.Fatalf("NormalizeDomain(%q) error = %v, want ErrBadDomain", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NormalizeDomain(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("NormalizeDomain(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestOrganizationalDomain(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"example.com", "example.com"},
		{"sub.example.com", "example.com"},
		{"deep.sub.example.co.uk", "example.co.uk"},
		{"com", "com"},
	}

	for _, tt := range tests {
		if got := OrganizationalDomain(tt.in); got != tt.want {
			t.Errorf("OrganizationalDomain(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
