package notify

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
	texttemplate "text/template"

	"github.com/sustainage/materiality-survey/internal/domain"
)

const deadlineLayout = "02.01.2006"

type messageData struct {
	Name        string
	SurveyName  string
	CompanyName string
	Description string
	URL         string
	Deadline    string
}

type messageTemplates struct {
	subject *texttemplate.Template
	text    *texttemplate.Template
	html    *htmltemplate.Template
}

var templates = map[domain.MessageKind]messageTemplates{
	domain.MessageInvitation: {
		subject: texttemplate.Must(texttemplate.New("subject").Parse(
			`{{.CompanyName}}: {{.SurveyName}}`)),
		text: texttemplate.Must(texttemplate.New("text").Parse(`Dear {{.Name}},

{{.CompanyName}} invites you to take part in the survey "{{.SurveyName}}".
{{if .Description}}
{{.Description}}
{{end}}
Please rate each topic by importance and impact:
{{.URL}}

The survey is open until {{.Deadline}}.

Thank you,
{{.CompanyName}}
`)),
		html: htmltemplate.Must(htmltemplate.New("html").Parse(`<p>Dear {{.Name}},</p>
<p>{{.CompanyName}} invites you to take part in the survey <strong>{{.SurveyName}}</strong>.</p>
{{if .Description}}<p>{{.Description}}</p>{{end}}
<p>Please rate each topic by importance and impact:<br><a href="{{.URL}}">{{.URL}}</a></p>
<p>The survey is open until {{.Deadline}}.</p>
<p>Thank you,<br>{{.CompanyName}}</p>
`)),
	},
	domain.MessageReminder: {
		subject: texttemplate.Must(texttemplate.New("subject").Parse(
			`Reminder: {{.SurveyName}} closes on {{.Deadline}}`)),
		text: texttemplate.Must(texttemplate.New("text").Parse(`Dear {{.Name}},

this is a reminder that the survey "{{.SurveyName}}" by {{.CompanyName}} closes on {{.Deadline}}.
If you have already responded, please ignore this message.

{{.URL}}

Thank you,
{{.CompanyName}}
`)),
		html: htmltemplate.Must(htmltemplate.New("html").Parse(`<p>Dear {{.Name}},</p>
<p>this is a reminder that the survey <strong>{{.SurveyName}}</strong> by {{.CompanyName}} closes on {{.Deadline}}.
If you have already responded, please ignore this message.</p>
<p><a href="{{.URL}}">{{.URL}}</a></p>
<p>Thank you,<br>{{.CompanyName}}</p>
`)),
	},
}

func render(kind domain.MessageKind, to Recipient, data messageData) (domain.MailMessage, error) {
	tpl, ok := templates[kind]
	if !ok {
		return domain.MailMessage{}, fmt.Errorf("unknown message kind %q", kind)
	}

	var subject, text, html bytes.Buffer
	if err := tpl.subject.Execute(&subject, data); err != nil {
		return domain.MailMessage{}, fmt.Errorf("render %s subject: %w", kind, err)
	}
	if err := tpl.text.Execute(&text, data); err != nil {
		return domain.MailMessage{}, fmt.Errorf("render %s text: %w", kind, err)
	}
	if err := tpl.html.Execute(&html, data); err != nil {
		return domain.MailMessage{}, fmt.Errorf("render %s html: %w", kind, err)
	}

	return domain.MailMessage{
		To:      to.Email,
		ToName:  data.Name,
		Subject: subject.String(),
		Text:    text.String(),
		HTML:    html.String(),
	}, nil
}
