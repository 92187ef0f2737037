// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/jncep-web/internal/utils"
)

const digestHeader = "Content-Digest"

// withDigest stamps attachment responses with a Content-Digest header in the
// RFC 9530 sha-256 dictionary form so download clients can verify the file
// they saved. Attachments are produced as a single buffered Write, which is
// what makes computing the digest in-line possible: headers are held back
// until that first Write arrives.
func withDigest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		dw := &digestResponseWriter{ResponseWriter: w}

		next.ServeHTTP(dw, r)

		// Bodyless responses still need their recorded status forwarded.
		dw.flushHeader()
	})
}

// digestResponseWriter postpones forwarding WriteHeader so a digest of the
// payload can still be added to the header map when the body shows up.
type digestResponseWriter struct {
	http.ResponseWriter

	status      int
	wroteHeader bool
	headerSent  bool
}

func (w *digestResponseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.status = statusCode
	w.wroteHeader = true
}

func (w *digestResponseWriter) Write(b []byte) (int, error) {
	if !w.headerSent {
		if isAttachment(w.Header()) {
			w.Header().Set(digestHeader, "sha-256=:"+utils.DigestBase64(b)+":")
		}
		w.flushHeader()
	}
	return w.ResponseWriter.Write(b)
}

func (w *digestResponseWriter) flushHeader() {
	if w.headerSent {
		return
	}
	w.headerSent = true

	status := w.status
	if status == 0 {
		status = http.StatusOK
	}
	w.ResponseWriter.WriteHeader(status)
}

func isAttachment(header http.Header) bool {
	return strings.HasPrefix(header.Get("Content-Disposition"), "attachment")
}
