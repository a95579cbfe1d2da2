// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"bytes"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/quickly-notes/etag"
)

// WithETag buffers the response and, for a 2xx response with a body,
// sets ETag to the hash of the exact bytes sent. GET and HEAD requests
// whose If-None-Match matches get 304 Not Modified without a body.
// onNotModified may be nil.
func WithETag(onNotModified func()) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			buf := &bufferedWriter{ResponseWriter: w}
			next(buf, r)

			status := buf.status
			if status == 0 {
				status = http.StatusOK
			}
			body := buf.body.Bytes()

			if status >= 200 && status < 300 && len(body) > 0 {
				tag := etag.Compute(body)
				w.Header().Set("ETag", tag)

				if (r.Method == http.MethodGet || r.Method == http.MethodHead) &&
					etag.Match(r.Header.Get("If-None-Match"), tag) {
					if onNotModified != nil {
						onNotModified()
					}
					w.WriteHeader(http.StatusNotModified)
					return
				}
			}

			w.WriteHeader(status)
			if _, err := w.Write(body); err != nil {
				slog.Error("failed to write response", "error", err)
			}
		}
	}
}

// bufferedWriter holds the status and body back until the hash is known.
// Headers go straight to the underlying writer's map.
type bufferedWriter struct {
	http.ResponseWriter
	status int
	body   bytes.Buffer
}

func (b *bufferedWriter) WriteHeader(code int) {
	if b.status == 0 {
		b.status = code
	}
}

func (b *bufferedWriter) Write(p []byte) (int, error) {
	if b.status == 0 {
		b.status = http.StatusOK
	}
	return b.body.Write(p)
}
