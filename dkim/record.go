package dkim

import (
	"regexp"
	"strings"
	"unicode"
)

// Record is one parsed DKIM key record.
type Record struct {
	// Tags holds the raw tag=value pairs in the record.
	Tags map[string]string

	// Key is the base64 public key data from the p= tag, with
	// internal whitespace removed and padding restored.
	Key string

	// Mode is ModeTest when the record carries t=y, ModeProd
	// otherwise.
	Mode Mode
}

// splitBoundary matches the quoting left behind when a long TXT record
// is published as adjacent quoted segments and the segments are glued
// back together verbatim.
var splitBoundary = regexp.MustCompile(`"\s*"`)

// ParseRecord parses one TXT record into a Record. The second return
// value is false when the record has no usable key: either there is no
// non-empty p= tag (a revoked key per RFC 6376) or no tags parse at
// all. Both are expected on a scan and are not errors.
func ParseRecord(txt string) (*Record, bool) {
	tags := ParseTags(txt)
	if len(tags) == 0 {
		return nil, false
	}

	key := stripSpace(tags["p"])
	if key == "" {
		return nil, false
	}

	record := &Record{
		Tags: tags,
		Key:  PadBase64(key),
	}
	if strings.EqualFold(tags["t"], "y") {
		record.Mode = ModeTest
	}
	return record, true
}

// ParseTags tolerantly parses tag=value pairs from TXT record text.
//
// The boundary between adjacent quoted segments is collapsed to a
// single space first, then leading key=value tokens are peeled off one
// at a time, each terminated by an optional (possibly backslash
// escaped) semicolon or the end of the string. Text that does not look
// like a tag is dropped rather than failing the whole record.
func ParseTags(txt string) map[string]string {
	txt = splitBoundary.ReplaceAllString(txt, " ")

	tags := make(map[string]string)
	for txt != "" {
		var token string
		if idx := strings.IndexByte(txt, ';'); idx >= 0 {
			token = txt[:idx]
			txt = txt[idx+1:]
		} else {
			token = txt
			txt = ""
		}
		// A backslash before the semicolon belongs to the terminator.
		token = strings.TrimSuffix(token, `\`)

		eq := strings.IndexByte(token, '=')
		if eq < 0 {
			continue
		}
		key := strings.TrimSpace(token[:eq])
		value := strings.TrimSpace(token[eq+1:])
		if key == "" {
			continue
		}
		tags[key] = value
	}
	return tags
}

// PadBase64 restores the trailing = padding stripped from base64 data,
// so the value decodes with the standard encoding.
func PadBase64(s string) string {
	if rem := len(s) % 4; rem != 0 {
		return s + strings.Repeat("=", 4-rem)
	}
	return s
}

// stripSpace removes every whitespace rune from s.
func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
