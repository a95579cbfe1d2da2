// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package etag computes and compares HTTP entity tags.

# Computing

A tag is the SHA-256 digest of the exact response bytes, base64 encoded
and quoted:

	tag := etag.Compute(body) // "<base64 digest>"

Byte-identical bodies always produce the same tag.

# Conditional Requests

Match implements the If-None-Match comparison used for 304 responses:

	if etag.Match(r.Header.Get("If-None-Match"), tag) {
		w.WriteHeader(http.StatusNotModified)
	}

It accepts "*", comma-separated lists and weak (W/) validators.
*/
package etag
