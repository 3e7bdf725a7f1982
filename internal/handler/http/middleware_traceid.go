package http

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-conf-keeper/internal/utils"
)

const (
	traceIDHeader = "X-Trace-ID"

	// maxTraceIDLength bounds caller supplied trace ids; longer ones are
	// replaced with a fresh one.
	maxTraceIDLength = 128
)

// withTraceID tags the request logger with a trace id taken from the
// X-Trace-ID header or generated, and echoes it in the response.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := traceIDFromRequest(r)

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})
		r = r.WithContext(l.WithContext(r.Context()))

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r)
	})
}

func traceIDFromRequest(r *http.Request) string {
	traceID := r.Header.Get(traceIDHeader)
	if traceID == "" || len(traceID) > maxTraceIDLength {
		return utils.NewTraceID()
	}
	return traceID
}
