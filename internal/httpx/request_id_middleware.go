package httpx

import (
	"net/http"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const requestIDHeader = "X-Request-Id"

// maxRequestIDLen caps client-supplied ids before they reach logs.
const maxRequestIDLen = 128

// RequestIDMiddleware reuses a well-formed X-Request-Id from the caller or
// mints a time-ordered one, echoes it on the response and tags the active
// span with it.
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if !acceptableRequestID(id) {
			id = newRequestID()
		}

		w.Header().Set(requestIDHeader, id)
		ctx := ContextWithRequestID(r.Context(), id)
		trace.SpanFromContext(ctx).SetAttributes(attribute.String("request.id", id))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// acceptableRequestID admits short tokens of letters, digits, '-', '_' and
// '.'. Anything else is replaced so forged ids cannot break log lines.
func acceptableRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLen {
		return false
	}
	for i := 0; i < len(id); i++ {
		switch c := id[i]; {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case c == '-' || c == '_' || c == '.':
		default:
			return false
		}
	}
	return true
}

func newRequestID() string {
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}
	return uuid.NewString()
}
