// Package dkimhound discovers DKIM selectors for a target domain.
//
// Candidate selectors are generated from a compact template grammar
// (see the pattern package), each candidate is resolved as
// <selector>._domainkey.<domain> TXT with bounded concurrency, and
// every selector that publishes a usable RSA key is reported with its
// size, parameters and SHA-1 fingerprint.
//
// A scan is driven through a Session:
//
//	session := dkimhound.NewSession(dkimhound.Config{
//	    Resolver: dns.NewResolver(dns.ResolverConfig{}),
//	    Reporter: &dkimhound.TextReporter{W: os.Stdout},
//	})
//	err := session.Run(ctx, "example.com", rules.Default())
//
// Sessions are independent: each carries its own found-selector set,
// so concurrent scans of different domains do not interfere.
package dkimhound
