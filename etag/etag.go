// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package etag

import (
	"crypto/sha256"
	"encoding/base64"
	"strings"
)

// Compute returns a strong entity tag for body: the standard base64
// SHA-256 digest wrapped in double quotes.
func Compute(body []byte) string {
	sum := sha256.Sum256(body)
	return `"` + base64.StdEncoding.EncodeToString(sum[:]) + `"`
}

// Match reports whether an If-None-Match header value matches tag.
// Comparison is weak, as RFC 9110 requires for If-None-Match, so a
// W/ prefix on either side is ignored.
func Match(ifNoneMatch, tag string) bool {
	ifNoneMatch = strings.TrimSpace(ifNoneMatch)
	if ifNoneMatch == "" || tag == "" {
		return false
	}
	if ifNoneMatch == "*" {
		return true
	}

	want := opaque(tag)
	for _, candidate := range strings.Split(ifNoneMatch, ",") {
		if opaque(strings.TrimSpace(candidate)) == want {
			return true
		}
	}
	return false
}

// opaque strips the weakness indicator, leaving the quoted value
func opaque(tag string) string {
	return strings.TrimPrefix(tag, "W/")
}
