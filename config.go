package dkimhound

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/synqronlabs/dkimhound/dns"
)

// QuietEnv is the environment variable that suppresses diagnostic and
// intermediate output. When set to a non-empty value, only the
// reconstructed public-key text is printed per finding.
const QuietEnv = "DKIMHOUND_QUIET"

// Config contains configuration options for a scan session. The zero
// value is usable; NewSession fills missing fields with defaults.
type Config struct {
	// Nameservers to query, host:port. Empty means the system
	// resolvers from /etc/resolv.conf, falling back to public DNS.
	Nameservers []string `yaml:"nameservers"`

	// Concurrency is the maximum number of in-flight DNS queries.
	// Candidate generation blocks once the cap is reached.
	// Default: 2048
	Concurrency int `yaml:"concurrency"`

	// Retries is the per-query retry budget on transport failure or
	// timeout.
	// Default: 3
	Retries int `yaml:"retries"`

	// Timeout is the per-query timeout.
	// Default: 5s
	Timeout time.Duration `yaml:"timeout"`

	// Quiet suppresses everything but the public-key text.
	Quiet bool `yaml:"quiet"`

	// Logger receives diagnostics. Defaults to slog.Default().
	Logger *slog.Logger `yaml:"-"`

	// Resolver performs the TXT lookups. Defaults to a
	// dns.DNSResolver built from Nameservers, Timeout and Retries.
	Resolver dns.Resolver `yaml:"-"`

	// Reporter receives findings. Defaults to a TextReporter on
	// standard output honoring Quiet.
	Reporter Reporter `yaml:"-"`
}

// withDefaults fills in unset fields.
func (c Config) withDefaults() Config {
	if c.Concurrency <= 0 {
		c.Concurrency = 2048
	}
	if c.Retries <= 0 {
		c.Retries = 3
	}
	if c.Timeout <= 0 {
		c.Timeout = 5 * time.Second
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	if c.Resolver == nil {
		c.Resolver = dns.NewResolver(dns.ResolverConfig{
			Nameservers: c.Nameservers,
			Timeout:     c.Timeout,
			Retries:     c.Retries,
		})
	}
	if c.Reporter == nil {
		c.Reporter = &TextReporter{W: os.Stdout, Quiet: c.Quiet}
	}
	return c
}

// UnmarshalYAML decodes a config file section over the existing
// values, so a file only overrides the fields it mentions. The timeout
// accepts Go duration strings ("2s", "500ms").
func (c *Config) UnmarshalYAML(value *yaml.Node) error {
	type raw struct {
		Nameservers []string `yaml:"nameservers"`
		Concurrency int      `yaml:"concurrency"`
		Retries     int      `yaml:"retries"`
		Timeout     string   `yaml:"timeout"`
		Quiet       bool     `yaml:"quiet"`
	}
	var r raw
	if err := value.Decode(&r); err != nil {
		return err
	}

	if r.Nameservers != nil {
		c.Nameservers = r.Nameservers
	}
	if r.Concurrency != 0 {
		c.Concurrency = r.Concurrency
	}
	if r.Retries != 0 {
		c.Retries = r.Retries
	}
	if r.Quiet {
		c.Quiet = true
	}
	if r.Timeout != "" {
		d, err := time.ParseDuration(r.Timeout)
		if err != nil {
			return fmt.Errorf("timeout: %w", err)
		}
		c.Timeout = d
	}
	return nil
}

// LoadConfig reads a YAML config file over the given base config.
// Only fields present in the file are overridden.
func LoadConfig(path string, base Config) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("config: %w", err)
	}
	if err := yaml.Unmarshal(data, &base); err != nil {
		return base, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return base, nil
}
