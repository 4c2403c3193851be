package notify

import (
	"bytes"
	htmltemplate "html/template"
	"strings"
	"text/template"
)

const emailSubjectFormat = "You've been invited to join %s"

var textTmpl = template.Must(template.New("text").Parse(
	`{{.InviterName}} invited you to join {{.BusinessName}} as {{.Role}}.

Accept the invitation: {{.Link}}

This link expires on {{.ExpiresAt.Format "2 Jan 2006"}}. If you weren't expecting it, ignore this message.
`))

var htmlTmpl = htmltemplate.Must(htmltemplate.New("html").Parse(
	`<p>{{.InviterName}} invited you to join <strong>{{.BusinessName}}</strong> as {{.Role}}.</p>
<p><a href="{{.Link}}">Accept the invitation</a></p>
<p>This link expires on {{.ExpiresAt.Format "2 Jan 2006"}}. If you weren't expecting it, ignore this message.</p>
`))

var smsTmpl = template.Must(template.New("sms").Parse(
	`{{.InviterName}} invited you to join {{.BusinessName}} on Cashbook: {{.Link}}`))

func withDefaults(inv Invitation) Invitation {
	if strings.TrimSpace(inv.InviterName) == "" {
		inv.InviterName = "A teammate"
	}
	if strings.TrimSpace(inv.BusinessName) == "" {
		inv.BusinessName = "a business"
	}
	return inv
}

func renderText(inv Invitation) (string, error) {
	var buf bytes.Buffer
	if err := textTmpl.Execute(&buf, withDefaults(inv)); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func renderHTML(inv Invitation) (string, error) {
	var buf bytes.Buffer
	if err := htmlTmpl.Execute(&buf, withDefaults(inv)); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func renderSMS(inv Invitation) (string, error) {
	var buf bytes.Buffer
	if err := smsTmpl.Execute(&buf, withDefaults(inv)); err != nil {
		return "", err
	}
	return buf.String(), nil
}
