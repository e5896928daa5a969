package mailer

import (
	"strings"
	"text/template"
)

type emailTemplate struct {
	subject *template.Template
	body    *template.Template
}

func mustTemplate(name, subject, body string) emailTemplate {
	return emailTemplate{
		subject: template.Must(template.New(name + "_subject").Parse(subject)),
		body:    template.Must(template.New(name + "_body").Parse(body)),
	}
}

func (t emailTemplate) render(data any) (subject, body string, err error) {
	var sb, bb strings.Builder
	if err := t.subject.Execute(&sb, data); err != nil {
		return "", "", err
	}
	if err := t.body.Execute(&bb, data); err != nil {
		return "", "", err
	}
	return strings.TrimSpace(sb.String()), bb.String(), nil
}

var adminMatchTemplate = mustTemplate("admin_match",
	`[Hromada] Prozorro match: {{.FacilityName}}`,
	`A tender on Prozorro may belong to a funded project.

Project:       {{.FacilityName}} (EDRPOU {{.EDRPOU}})
Tender:        {{.TenderID}}
Issued by:     {{.EntityName}}
Status:        {{.TenderStatus}}

Review it at {{.URL}} and link it to the project if it matches.
`)

var donorUpdateTemplate = mustTemplate("donor_update",
	`{{.ProjectName}}: {{.UpdateTitle}}`,
	`Hello {{.DonorName}},

There is news about {{.ProjectName}}, a project you supported.

{{.UpdateMessage}}
{{if .TenderID}}
Tender {{.TenderID}}: {{.URL}}
{{end}}
Thank you for your support,
Hromada
`)

var syncFailureTemplate = mustTemplate("sync_failure",
	`[Hromada] Prozorro sync failed`,
	`The Prozorro sync run {{.RunID}} failed at {{.OccurredAt.UTC.Format "2006-01-02 15:04:05 MST"}} after {{.Duration}}.

Error: {{.Error}}
`)
