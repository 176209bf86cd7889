package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/sustainage/materiality-survey/pkg/ctxutil"
)

// Logger returns middleware that logs each HTTP request with method, path,
// status code, duration, and context identifiers (request_id, client_ip,
// operator). Query strings are not logged since they may carry survey tokens.
func Logger(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(sw, r)

			ctx := r.Context()
			attrs := []slog.Attr{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", sw.status),
				slog.Duration("duration", time.Since(start)),
				slog.String("request_id", ctxutil.RequestIDFromCtx(ctx)),
			}
			if ip := ctxutil.ClientFromCtx(ctx).IP; ip != "" {
				attrs = append(attrs, slog.String("client_ip", ip))
			}
			if sw.operator != "" {
				attrs = append(attrs, slog.String("operator", sw.operator))
			}

			level := slog.LevelInfo
			switch {
			case sw.status >= 500:
				level = slog.LevelError
			case sw.status == http.StatusTooManyRequests || sw.status == http.StatusUnauthorized:
				level = slog.LevelWarn
			}
			logger.LogAttrs(ctx, level, "http.request", attrs...)
		})
	}
}

// statusWriter wraps http.ResponseWriter to capture the response status code
// and the operator resolved further down the chain.
type statusWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
	operator    string
}

func (w *statusWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.status = code
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.wroteHeader = true
	}
	return w.ResponseWriter.Write(b)
}

func (w *statusWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

// operatorRecorder is implemented by statusWriter so that the operator gate,
// which runs inside Logger, can report who made the request.
type operatorRecorder interface {
	recordOperator(ref string)
}

func (w *statusWriter) recordOperator(ref string) {
	w.operator = ref
}
