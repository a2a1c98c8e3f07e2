package middleware

import (
	"net/http"
	"strings"

	"equisports-backend/internal/logging"

	"github.com/google/uuid"
)

const (
	HeaderCorrelationID = "X-Correlation-ID"
	HeaderRequestID     = "X-Request-ID"

	maxCorrelationIDLen = 128
)

// CorrelationID takes the caller's correlation id (or request id) header, or
// generates a UUIDv7 when neither is usable, echoes it back on the response
// and stores it in the request context for logging.
func CorrelationID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cid := normalizeCID(r.Header.Get(HeaderCorrelationID))
		if cid == "" {
			cid = normalizeCID(r.Header.Get(HeaderRequestID))
		}
		if cid == "" {
			cid = uuid.Must(uuid.NewV7()).String()
		}

		w.Header().Set(HeaderCorrelationID, cid)
		next.ServeHTTP(w, r.WithContext(logging.WithCorrelationID(r.Context(), cid)))
	})
}

func normalizeCID(v string) string {
	v = strings.TrimSpace(v)
	if strings.ContainsAny(v, "\r\n") {
		return ""
	}
	if len(v) > maxCorrelationIDLen {
		v = v[:maxCorrelationIDLen]
	}
	return v
}
