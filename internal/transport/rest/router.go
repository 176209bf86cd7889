package rest

import (
	"net/http"

	"github.com/sustainage/materiality-survey/internal/transport/middleware"
)

// Routes bundles the handlers and per-group middleware of the HTTP API.
// Sessions may be nil when operator sessions are disabled.
type Routes struct {
	Health   *HealthHandler
	Surveys  *SurveyHandler
	Reports  *ReportHandler
	Notify   *NotifyHandler
	Public   *PublicHandler
	Sessions *SessionHandler

	Operator    middleware.Middleware
	FetchLimit  middleware.Middleware
	SubmitLimit middleware.Middleware
}

// NewRouter registers every endpoint on a ServeMux.
func NewRouter(rt Routes) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", rt.Health.Live)
	mux.HandleFunc("GET /ready", rt.Health.Ready)
	mux.HandleFunc("GET /health", rt.Health.Health)

	op := func(h http.HandlerFunc) http.Handler { return rt.Operator(h) }

	mux.Handle("POST /api/v1/surveys", op(rt.Surveys.Create))
	mux.Handle("GET /api/v1/surveys", op(rt.Surveys.List))
	mux.Handle("GET /api/v1/surveys/{id}", op(rt.Surveys.Get))
	mux.Handle("PATCH /api/v1/surveys/{id}/status", op(rt.Surveys.UpdateStatus))
	mux.Handle("DELETE /api/v1/surveys/{id}", op(rt.Surveys.Delete))

	mux.Handle("GET /api/v1/surveys/{id}/summary", op(rt.Reports.Summary))
	mux.Handle("GET /api/v1/surveys/{id}/responses", op(rt.Reports.Responses))
	mux.Handle("GET /api/v1/surveys/{id}/comments", op(rt.Reports.Comments))
	mux.Handle("GET /api/v1/surveys/{id}/audit", op(rt.Reports.Audit))
	mux.Handle("GET /api/v1/responses", op(rt.Reports.ResponsesByToken))

	mux.Handle("POST /api/v1/surveys/{id}/invitations", op(rt.Notify.Invitations))
	mux.Handle("POST /api/v1/surveys/{id}/reminders", op(rt.Notify.Reminders))

	if rt.Sessions != nil {
		mux.Handle("POST /api/v1/sessions", op(rt.Sessions.Create))
	}

	mux.Handle("GET /api/v1/public/surveys/{token}", rt.FetchLimit(http.HandlerFunc(rt.Public.Fetch)))
	mux.Handle("POST /api/v1/public/surveys/{token}/responses", rt.SubmitLimit(http.HandlerFunc(rt.Public.Submit)))

	return mux
}
