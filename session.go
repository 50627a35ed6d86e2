package dkimhound

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	"golang.org/x/sync/semaphore"

	"github.com/synqronlabs/dkimhound/dkim"
	"github.com/synqronlabs/dkimhound/dns"
	"github.com/synqronlabs/dkimhound/pattern"
)

// domainKeyInfix separates the selector from the domain in a DKIM
// query name.
const domainKeyInfix = "._domainkey."

// Session is one scan run. It owns the found-selector set, so separate
// sessions never cross-contaminate; create one per domain scan.
type Session struct {
	id       string
	config   Config
	logger   *slog.Logger
	resolver dns.Resolver
	reporter Reporter

	// found marks selectors that already had an answer processed.
	// Touched only from the serial response-handling goroutine.
	found    map[string]bool
	findings int
}

// response is one resolved (or failed) TXT query.
type response struct {
	fqdn    string
	records []string
	err     error
}

// NewSession creates a scan session with its own identity and
// found-selector set.
func NewSession(config Config) *Session {
	config = config.withDefaults()
	id := ulid.Make().String()
	return &Session{
		id:       id,
		config:   config,
		logger:   config.Logger.With(slog.String("session", id)),
		resolver: config.Resolver,
		reporter: config.Reporter,
		found:    make(map[string]bool),
	}
}

// ID returns the session's ULID.
func (s *Session) ID() string { return s.id }

// Findings returns the number of findings reported so far.
func (s *Session) Findings() int { return s.findings }

// Run scans domain with the given rule lines.
//
// All rules are compiled up front, so a corrupt rule aborts the run
// before any query is sent. Generation then proceeds depth first
// through each rule; every candidate acquires a semaphore slot
// (blocking generation at the in-flight cap) and resolves on its own
// goroutine. Responses funnel into a single handler goroutine, which
// keeps the found set and the reporter free of locks. Run returns
// after every in-flight query has drained and every response has been
// handled.
func (s *Session) Run(ctx context.Context, domain string, lines []string) error {
	compiled := make([][]pattern.Token, 0, len(lines))
	for _, line := range lines {
		tokens, err := pattern.Compile(line)
		if err != nil {
			return fmt.Errorf("rule %q: %w", line, err)
		}
		compiled = append(compiled, tokens)
	}

	s.logger.Info("scan starting",
		slog.String("domain", domain),
		slog.Int("rules", len(compiled)),
		slog.Int("concurrency", s.config.Concurrency))
	start := time.Now()

	d := pattern.NewDomain(domain)
	sem := semaphore.NewWeighted(int64(s.config.Concurrency))
	responses := make(chan response)

	var wg sync.WaitGroup
	handlerDone := make(chan struct{})
	go func() {
		defer close(handlerDone)
		for resp := range responses {
			s.handle(resp)
		}
	}()

	var candidates int64
	submit := func(candidate string) error {
		candidates++
		fqdn := candidate + domainKeyInfix + domain
		if err := sem.Acquire(ctx, 1); err != nil {
			return err
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer sem.Release(1)
			records, err := s.resolver.LookupTXT(ctx, fqdn)
			responses <- response{fqdn: fqdn, records: records, err: err}
		}()
		return nil
	}

	var genErr error
	for _, tokens := range compiled {
		if genErr = pattern.Expand(tokens, d, submit); genErr != nil {
			break
		}
	}

	// Drain: even when generation stopped early, every submitted
	// query still gets resolved and handled.
	wg.Wait()
	close(responses)
	<-handlerDone

	s.logger.Info("scan finished",
		slog.String("domain", domain),
		slog.Int64("candidates", candidates),
		slog.Int("findings", s.findings),
		slog.Duration("elapsed", time.Since(start)))

	return genErr
}

// handle processes one response on the serial handler goroutine.
func (s *Session) handle(resp response) {
	if resp.err != nil {
		// Best effort: NXDOMAIN and exhausted retries are expected
		// across thousands of candidates.
		if !dns.IsNotFound(resp.err) {
			s.logger.Debug("lookup failed",
				slog.String("fqdn", resp.fqdn),
				slog.Any("error", resp.err))
		}
		return
	}

	selector, domain, ok := splitQueryName(resp.fqdn)
	if !ok {
		s.logger.Warn("malformed query name", slog.String("fqdn", resp.fqdn))
		return
	}

	// First processed answer per selector wins.
	if s.found[selector] {
		return
	}
	s.found[selector] = true

	for _, txt := range resp.records {
		record, usable := dkim.ParseRecord(txt)
		if !usable {
			continue
		}

		info, err := dkim.InspectKey(record.Key)
		if err != nil {
			s.logger.Debug("key does not parse",
				slog.String("selector", selector),
				slog.Any("error", err))
			continue
		}

		s.findings++
		s.reporter.Report(&Finding{
			Session:     s.id,
			FQDN:        resp.fqdn,
			RawTXT:      txt,
			Domain:      domain,
			Selector:    selector,
			Mode:        record.Mode,
			Bits:        info.Bits,
			Modulus:     info.Modulus,
			Exponent:    info.Exponent,
			Fingerprint: info.Fingerprint,
			PEM:         info.PEM,
		})
		return
	}
}

// splitQueryName splits a queried name on the first "._domainkey."
// into selector and domain. The trailing dot, if any, is dropped from
// the domain.
func splitQueryName(fqdn string) (selector, domain string, ok bool) {
	idx := strings.Index(fqdn, domainKeyInfix)
	if idx < 0 {
		return "", "", false
	}
	selector = fqdn[:idx]
	domain = strings.TrimSuffix(fqdn[idx+len(domainKeyInfix):], ".")
	return selector, domain, true
}
