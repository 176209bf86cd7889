package middleware

import (
	"net/http"
	"strings"

	"github.com/sustainage/materiality-survey/internal/auth"
	"github.com/sustainage/materiality-survey/pkg/ctxutil"
)

// APIKeyHeader carries the operator shared secret.
const APIKeyHeader = "X-API-Key"

type credentialChecker interface {
	Check(credential string) error
}

type sessionValidator interface {
	Validate(token string) (string, error)
}

// Operator admits requests that present the shared secret in X-API-Key or a
// session token as "Authorization: Bearer". The operator reference stored in
// the context is the secret's fingerprint or the session subject. sessions
// may be nil when session tokens are disabled.
func Operator(gate credentialChecker, sessions sessionValidator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ref, ok := authenticate(r, gate, sessions)
			if !ok {
				writeError(w, http.StatusUnauthorized, "unauthorized")
				return
			}

			if rec, isRec := w.(operatorRecorder); isRec {
				rec.recordOperator(ref)
			}
			next.ServeHTTP(w, r.WithContext(ctxutil.WithOperator(r.Context(), ref)))
		})
	}
}

func authenticate(r *http.Request, gate credentialChecker, sessions sessionValidator) (string, bool) {
	if key := r.Header.Get(APIKeyHeader); key != "" {
		if gate.Check(key) != nil {
			return "", false
		}
		return auth.Fingerprint(key), true
	}

	if token := bearerToken(r); token != "" && sessions != nil {
		subject, err := sessions.Validate(token)
		if err != nil || subject == "" {
			return "", false
		}
		return subject, true
	}
	return "", false
}

func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if len(h) <= len(prefix) || !strings.EqualFold(h[:len(prefix)], prefix) {
		return ""
	}
	return strings.TrimSpace(h[len(prefix):])
}
