// Package middleware provides chi-compatible HTTP middleware for the swpara
// diagnostic server.
package middleware

import (
	"log"
	"net/http"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// Logger logs one line per request: method, path, status, size, duration,
// and the chi request ID when present.
func Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			reqID := chimiddleware.GetReqID(r.Context())
			log.Printf("%s %s %s -> %d (%d bytes) in %s [%s]",
				r.Method, r.URL.Path, r.RemoteAddr, ww.Status(), ww.BytesWritten(), time.Since(start), reqID)
		}()

		next.ServeHTTP(ww, r)
	})
}
