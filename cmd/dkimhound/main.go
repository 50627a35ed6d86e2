// Command dkimhound discovers DKIM selectors for a domain.
//
// Usage:
//
//	dkimhound <domain> [rule-file]
//
// Without a rule file the embedded default corpus is used. Setting
// DKIMHOUND_QUIET (or --quiet) prints only the reconstructed public
// keys.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/synqronlabs/dkimhound"
	"github.com/synqronlabs/dkimhound/dns"
	"github.com/synqronlabs/dkimhound/rules"
)

const version = "0.2.0"

var (
	flagNameservers []string
	flagConcurrency int
	flagRetries     int
	flagTimeout     time.Duration
	flagConfig      string
	flagQuiet       bool
	flagVerbose     bool
)

var rootCmd = &cobra.Command{
	Use:   "dkimhound <domain> [rule-file]",
	Short: "discover DKIM selectors and inspect the keys they publish",
	Long: `dkimhound expands a rule corpus into candidate DKIM selectors,
resolves <selector>._domainkey.<domain> for each with bounded
concurrency, and reports every selector that publishes a usable RSA
key: size, modulus, exponent, SHA-1 fingerprint and the reconstructed
public key.`,
	Version:       version,
	Args:          cobra.RangeArgs(1, 2),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func run(cmd *cobra.Command, args []string) error {
	quiet := flagQuiet || os.Getenv(dkimhound.QuietEnv) != ""

	level := slog.LevelInfo
	if flagVerbose {
		level = slog.LevelDebug
	}
	if quiet {
		level = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	config := dkimhound.Config{}
	if flagConfig != "" {
		var err error
		if config, err = dkimhound.LoadConfig(flagConfig, config); err != nil {
			return err
		}
	}

	// Flags given on the command line win over the config file.
	if cmd.Flags().Changed("nameserver") {
		config.Nameservers = nil
		for _, ns := range flagNameservers {
			config.Nameservers = append(config.Nameservers, dns.SplitHostPort(ns))
		}
	}
	if cmd.Flags().Changed("concurrency") {
		config.Concurrency = flagConcurrency
	}
	if cmd.Flags().Changed("retries") {
		config.Retries = flagRetries
	}
	if cmd.Flags().Changed("timeout") {
		config.Timeout = flagTimeout
	}
	config.Quiet = config.Quiet || quiet
	config.Logger = logger

	domain, err := dkimhound.NormalizeDomain(args[0])
	if err != nil {
		return err
	}
	if org := dkimhound.OrganizationalDomain(domain); org != domain {
		logger.Info("scanning a subdomain",
			slog.String("domain", domain),
			slog.String("organizational_domain", org))
	}

	lines := rules.Default()
	if len(args) == 2 {
		if lines, err = rules.LoadFile(args[1]); err != nil {
			return err
		}
	}

	session := dkimhound.NewSession(config)
	if err := session.Run(cmd.Context(), domain, lines); err != nil {
		return err
	}

	if session.Findings() == 0 && !config.Quiet {
		logger.Info("no DKIM keys found", slog.String("domain", domain))
	}
	return nil
}

func main() {
	rootCmd.Flags().StringSliceVarP(&flagNameservers, "nameserver", "n", nil,
		"DNS server to query, host[:port] (repeatable; default: system resolvers)")
	rootCmd.Flags().IntVarP(&flagConcurrency, "concurrency", "c", 2048,
		"maximum in-flight DNS queries")
	rootCmd.Flags().IntVarP(&flagRetries, "retries", "r", 3,
		"per-query retries on transport failure")
	rootCmd.Flags().DurationVarP(&flagTimeout, "timeout", "t", 5*time.Second,
		"per-query timeout")
	rootCmd.Flags().StringVar(&flagConfig, "config", "",
		"YAML config file")
	rootCmd.Flags().BoolVarP(&flagQuiet, "quiet", "q", false,
		"print only the reconstructed public keys")
	rootCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false,
		"enable debug logging")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
