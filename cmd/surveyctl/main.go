// Command surveyctl is the operator command line for the materiality survey
// API. It prints the JSON replies of the server.
//
//	surveyctl --url https://survey.example.com create --name "Materiality 2026" \
//	    --company Acme --topic "E1:Climate change:Environment" --topic "S1:Health and safety:Social"
//	surveyctl summary 7
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/urfave/cli/v3"
)

func main() {
	if err := newApp(os.Stdout, nil).Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "surveyctl:", err)
		os.Exit(1)
	}
}

// newApp builds the command tree. A nil httpClient means a client with the
// --timeout flag applied.
func newApp(out io.Writer, httpClient *http.Client) *cli.Command {
	var api apiClient

	return &cli.Command{
		Name:   "surveyctl",
		Usage:  "Manage materiality surveys",
		Writer: out,

		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "url",
				Value:   "http://localhost:8080",
				Usage:   "API base URL",
				Sources: cli.EnvVars("SURVEYCTL_URL"),
			},
			&cli.StringFlag{
				Name:     "api-key",
				Usage:    "operator shared secret",
				Required: true,
				Sources:  cli.EnvVars("SURVEYCTL_API_KEY"),
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Value: 30 * time.Second,
				Usage: "request timeout",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			api.base = cmd.String("url")
			api.apiKey = cmd.String("api-key")
			api.http = httpClient
			if api.http == nil {
				api.http = &http.Client{Timeout: cmd.Duration("timeout")}
			}
			return ctx, nil
		},
		Commands: []*cli.Command{
			createCommand(&api),
			listCommand(&api),
			getCommand(&api),
			statusCommand(&api),
			deleteCommand(&api),
			summaryCommand(&api),
			responsesCommand(&api),
			commentsCommand(&api),
			auditCommand(&api),
			sendCommand(&api, "invite", "invitations", "Email the survey link to stakeholders"),
			sendCommand(&api, "remind", "reminders", "Email a deadline reminder to stakeholders"),
		},
	}
}
