// Package rules loads selector rule corpora.
//
// A rule file is a plain text stream: blank lines and comment lines
// (prefixed with '#' or ';') are skipped, a line reading EoF stops
// processing entirely, and every other line is a selector template in
// the pattern grammar. A default corpus is embedded in the binary for
// runs that do not supply their own file.
package rules

import (
	"bufio"
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"
)

//go:embed default.rules
var defaultCorpus []byte

// Terminator is the literal line that ends rule processing.
const Terminator = "EoF"

// Load reads template lines from r, applying comment, blank-line and
// terminator filtering. The returned lines are raw templates; the
// pattern package handles whitespace stripping and parsing.
func Load(r io.Reader) ([]string, error) {
	var lines []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line[0] == '#' || line[0] == ';' {
			continue
		}
		if line == Terminator {
			break
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("rules: reading corpus: %w", err)
	}
	return lines, nil
}

// LoadFile loads a rule file from disk. A missing or unreadable path
// is an error; the caller treats it as fatal at startup.
func LoadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("rules: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Default returns the embedded rule corpus.
func Default() []string {
	lines, err := Load(bytes.NewReader(defaultCorpus))
	if err != nil {
		// The embedded corpus cannot fail to read.
		panic(err)
	}
	return lines
}
