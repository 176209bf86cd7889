package rest

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sustainage/materiality-survey/internal/auth"
	"github.com/sustainage/materiality-survey/internal/transport/middleware"
)

const (
	testAPIKey  = "operator-secret"
	testMaxBody = 1 << 16
)

type testDeps struct {
	surveys   *surveyServiceMock
	reports   *reportServiceMock
	notify    *notifyServiceMock
	public    *publicSurveyServiceMock
	submit    *submitServiceMock
	sessions  *sessionIssuerMock
	noSession bool
}

func passthrough(next http.Handler) http.Handler { return next }

func newTestRouter(t *testing.T, d testDeps) http.Handler {
	t.Helper()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	if d.surveys == nil {
		d.surveys = &surveyServiceMock{}
	}
	if d.reports == nil {
		d.reports = &reportServiceMock{}
	}
	if d.notify == nil {
		d.notify = &notifyServiceMock{}
	}
	if d.public == nil {
		d.public = &publicSurveyServiceMock{}
	}
	if d.submit == nil {
		d.submit = &submitServiceMock{}
	}

	rt := Routes{
		Health:      NewHealthHandler(dbUp, "test"),
		Surveys:     NewSurveyHandler(d.surveys, log, testMaxBody),
		Reports:     NewReportHandler(d.reports, log),
		Notify:      NewNotifyHandler(d.notify, log, testMaxBody),
		Public:      NewPublicHandler(d.public, d.submit, log, testMaxBody),
		Operator:    middleware.Operator(auth.NewGate(testAPIKey), nil),
		FetchLimit:  passthrough,
		SubmitLimit: passthrough,
	}
	if !d.noSession {
		if d.sessions == nil {
			d.sessions = &sessionIssuerMock{}
		}
		rt.Sessions = NewSessionHandler(d.sessions, log)
	}
	return NewRouter(rt)
}

// operatorRequest builds a request that carries the shared secret.
func operatorRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()
	req := jsonRequest(t, method, target, body)
	req.Header.Set(middleware.APIKeyHeader, testAPIKey)
	return req
}

func jsonRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()

	var rdr io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		rdr = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		rdr = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, rdr)
	if rdr != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}
