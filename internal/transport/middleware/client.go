package middleware

import (
	"net"
	"net/http"
	"strings"

	"github.com/sustainage/materiality-survey/pkg/ctxutil"
)

// ClientInfo stores the origin address and user agent of the request.
// Forwarding headers are honoured only when trustProxy is set, i.e. when the
// service runs behind a reverse proxy that overwrites them.
func ClientInfo(trustProxy bool) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := ctxutil.WithClient(r.Context(), ctxutil.Client{
				IP:        clientIP(r, trustProxy),
				UserAgent: r.UserAgent(),
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func clientIP(r *http.Request, trustProxy bool) string {
	if trustProxy {
		if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
			first, _, _ := strings.Cut(fwd, ",")
			if ip := strings.TrimSpace(first); ip != "" {
				return ip
			}
		}
		if ip := strings.TrimSpace(r.Header.Get("X-Real-Ip")); ip != "" {
			return ip
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
