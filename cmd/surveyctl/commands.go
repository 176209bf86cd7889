package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/mail"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/urfave/cli/v3"
)

func printJSON(cmd *cli.Command, raw json.RawMessage) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return fmt.Errorf("format response: %w", err)
	}
	buf.WriteByte('\n')
	_, err := cmd.Root().Writer.Write(buf.Bytes())
	return err
}

func surveyIDArg(cmd *cli.Command) (int64, error) {
	arg := cmd.Args().First()
	if arg == "" {
		return 0, errors.New("survey id argument is required")
	}
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid survey id %q", arg)
	}
	return id, nil
}

func surveyPath(id int64, suffix string) string {
	return "/api/v1/surveys/" + strconv.FormatInt(id, 10) + suffix
}

// byID runs a request against one survey and prints the reply.
func byID(api *apiClient, method, suffix string, query func(*cli.Command) url.Values) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		id, err := surveyIDArg(cmd)
		if err != nil {
			return err
		}
		var q url.Values
		if query != nil {
			q = query(cmd)
		}
		raw, err := api.do(ctx, method, surveyPath(id, suffix), q, nil)
		if err != nil {
			return err
		}
		return printJSON(cmd, raw)
	}
}

// ---------------------------------------------------------------------------
// Surveys
// ---------------------------------------------------------------------------

type topicPayload struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Category    string `json:"category,omitempty"`
	Description string `json:"description,omitempty"`
}

// parseTopic reads CODE:Name[:Category[:Description]].
func parseTopic(s string) (topicPayload, error) {
	parts := strings.SplitN(s, ":", 4)
	if len(parts) < 2 || strings.TrimSpace(parts[0]) == "" || strings.TrimSpace(parts[1]) == "" {
		return topicPayload{}, fmt.Errorf("topic %q: want CODE:Name[:Category[:Description]]", s)
	}
	t := topicPayload{Code: strings.TrimSpace(parts[0]), Name: strings.TrimSpace(parts[1])}
	if len(parts) > 2 {
		t.Category = strings.TrimSpace(parts[2])
	}
	if len(parts) > 3 {
		t.Description = strings.TrimSpace(parts[3])
	}
	return t, nil
}

func createCommand(api *apiClient) *cli.Command {
	return &cli.Command{
		Name:  "create",
		Usage: "Create a survey from flags or a JSON file",

		// Topic descriptions may contain commas.
		DisableSliceFlagSeparator: true,

		Flags: []cli.Flag{
			&cli.StringFlag{Name: "file", Aliases: []string{"f"}, Usage: "JSON request body; other flags are ignored"},
			&cli.StringFlag{Name: "name"},
			&cli.StringFlag{Name: "company"},
			&cli.StringFlag{Name: "type", Usage: "survey type tag"},
			&cli.StringFlag{Name: "description"},
			&cli.StringFlag{Name: "deadline", Usage: "YYYY-MM-DD or RFC3339"},
			&cli.StringFlag{Name: "status", Usage: "draft or active"},
			&cli.StringSliceFlag{Name: "topic", Usage: "CODE:Name[:Category[:Description]], repeatable"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			var body any
			if path := cmd.String("file"); path != "" {
				raw, err := os.ReadFile(path)
				if err != nil {
					return err
				}
				if !json.Valid(raw) {
					return fmt.Errorf("%s: not valid JSON", path)
				}
				body = json.RawMessage(raw)
			} else {
				topics := make([]topicPayload, 0, len(cmd.StringSlice("topic")))
				for _, s := range cmd.StringSlice("topic") {
					t, err := parseTopic(s)
					if err != nil {
						return err
					}
					topics = append(topics, t)
				}
				body = map[string]any{
					"name":         cmd.String("name"),
					"company_name": cmd.String("company"),
					"survey_type":  cmd.String("type"),
					"description":  cmd.String("description"),
					"deadline":     cmd.String("deadline"),
					"status":       cmd.String("status"),
					"topics":       topics,
				}
			}

			raw, err := api.do(ctx, http.MethodPost, "/api/v1/surveys", nil, body)
			if err != nil {
				return err
			}
			return printJSON(cmd, raw)
		},
	}
}

func listCommand(api *apiClient) *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List surveys",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "status", Value: "all", Usage: "draft, active, closed or all"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			raw, err := api.do(ctx, http.MethodGet, "/api/v1/surveys", url.Values{"status": {cmd.String("status")}}, nil)
			if err != nil {
				return err
			}
			return printJSON(cmd, raw)
		},
	}
}

func getCommand(api *apiClient) *cli.Command {
	return &cli.Command{
		Name:      "get",
		Usage:     "Show a survey with its topics",
		ArgsUsage: "SURVEY_ID",
		Action:    byID(api, http.MethodGet, "", nil),
	}
}

func statusCommand(api *apiClient) *cli.Command {
	return &cli.Command{
		Name:      "status",
		Usage:     "Change the status of a survey",
		ArgsUsage: "SURVEY_ID",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "to", Required: true, Usage: "draft, active or closed"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			id, err := surveyIDArg(cmd)
			if err != nil {
				return err
			}
			raw, err := api.do(ctx, http.MethodPatch, surveyPath(id, "/status"), nil, map[string]string{"status": cmd.String("to")})
			if err != nil {
				return err
			}
			return printJSON(cmd, raw)
		},
	}
}

func deleteCommand(api *apiClient) *cli.Command {
	return &cli.Command{
		Name:      "delete",
		Usage:     "Delete a survey with its topics and responses",
		ArgsUsage: "SURVEY_ID",
		Action:    byID(api, http.MethodDelete, "", nil),
	}
}

// ---------------------------------------------------------------------------
// Reports
// ---------------------------------------------------------------------------

func summaryCommand(api *apiClient) *cli.Command {
	return &cli.Command{
		Name:      "summary",
		Usage:     "Show per-topic averages and materiality scores",
		ArgsUsage: "SURVEY_ID",
		Action:    byID(api, http.MethodGet, "/summary", nil),
	}
}

func responsesCommand(api *apiClient) *cli.Command {
	return &cli.Command{
		Name:      "responses",
		Usage:     "Show responses grouped by stakeholder",
		ArgsUsage: "[SURVEY_ID]",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "token", Usage: "look the survey up by distribution token"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if token := cmd.String("token"); token != "" {
				raw, err := api.do(ctx, http.MethodGet, "/api/v1/responses", url.Values{"token": {token}}, nil)
				if err != nil {
					return err
				}
				return printJSON(cmd, raw)
			}
			return byID(api, http.MethodGet, "/responses", nil)(ctx, cmd)
		},
	}
}

func commentsCommand(api *apiClient) *cli.Command {
	return &cli.Command{
		Name:      "comments",
		Usage:     "Show stakeholder comments",
		ArgsUsage: "SURVEY_ID",
		Action:    byID(api, http.MethodGet, "/comments", nil),
	}
}

func auditCommand(api *apiClient) *cli.Command {
	return &cli.Command{
		Name:      "audit",
		Usage:     "Show the audit trail of a survey",
		ArgsUsage: "SURVEY_ID",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "limit", Value: 50},
		},
		Action: byID(api, http.MethodGet, "/audit", func(cmd *cli.Command) url.Values {
			return url.Values{"limit": {strconv.Itoa(int(cmd.Int("limit")))}}
		}),
	}
}

// ---------------------------------------------------------------------------
// Notifications
// ---------------------------------------------------------------------------

type recipientPayload struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// parseRecipient accepts "jane@example.com" or "Jane Doe <jane@example.com>".
func parseRecipient(s string) (recipientPayload, error) {
	addr, err := mail.ParseAddress(strings.TrimSpace(s))
	if err != nil {
		return recipientPayload{}, fmt.Errorf("recipient %q: %w", s, err)
	}
	return recipientPayload{Email: addr.Address, Name: addr.Name}, nil
}

func sendCommand(api *apiClient, name, endpoint, usage string) *cli.Command {
	return &cli.Command{
		Name:      name,
		Usage:     usage,
		ArgsUsage: "SURVEY_ID",

		// Quoted display names may contain commas.
		DisableSliceFlagSeparator: true,

		Flags: []cli.Flag{
			&cli.StringSliceFlag{Name: "to", Required: true, Usage: `"Name <email>" or email, repeatable`},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			id, err := surveyIDArg(cmd)
			if err != nil {
				return err
			}

			var recipients []recipientPayload
			for _, s := range cmd.StringSlice("to") {
				r, err := parseRecipient(s)
				if err != nil {
					return err
				}
				recipients = append(recipients, r)
			}

			raw, err := api.do(ctx, http.MethodPost, surveyPath(id, "/"+endpoint), nil, map[string]any{"recipients": recipients})
			if err != nil {
				return err
			}
			return printJSON(cmd, raw)
		},
	}
}
