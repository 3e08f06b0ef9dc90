package contact

import (
	"fmt"
	"strings"
	"text/template"
)

// Email holds the two renditions of a submission plus the subject line,
// ready to hand to the delivery layer.
type Email struct {
	Subject string
	HTML    string
	Text    string
}

// htmlFields are pre-sanitized values fed into the HTML template. The
// template itself must not escape again, hence text/template rather than
// html/template: escaping happens exactly once, in RenderEmail.
type htmlFields struct {
	Name        string
	Email       string
	Company     string
	ProjectType string
	Message     string
}

var htmlTmpl = template.Must(template.New("contact-email").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
  <h2 style="color: #1a1a2e;">New Contact Form Submission</h2>
  <p><strong>Name:</strong> {{.Name}}</p>
  <p><strong>Email:</strong> <a href="mailto:{{.Email}}">{{.Email}}</a></p>
{{- if .Company}}
  <p><strong>Company:</strong> {{.Company}}</p>
{{- end}}
  <p><strong>Project Type:</strong> {{.ProjectType}}</p>
  <p><strong>Message:</strong></p>
  <p>{{.Message}}</p>
  <hr>
  <p style="color: #888; font-size: 12px;">Reply directly to this email to respond to {{.Name}}.</p>
</body>
</html>
`))

// RenderEmail produces the subject line and both renditions for a validated
// submission. HTML fields are escaped once and the message's line breaks are
// converted to <br> after escaping; the plain-text rendition carries the
// message verbatim since it is not embedded in markup.
func RenderEmail(sub *Submission) Email {
	label := ProjectTypeLabel(sub.ProjectType)

	fields := htmlFields{
		Name:        EscapeHTML(sub.Name),
		Email:       EscapeHTML(sub.Email),
		Company:     EscapeHTML(sub.Company),
		ProjectType: EscapeHTML(label),
		Message:     strings.ReplaceAll(EscapeHTML(sub.Message), "\n", "<br>"),
	}

	var html strings.Builder
	// The template is parsed at init and the data is a plain struct, so
	// Execute cannot fail here.
	_ = htmlTmpl.Execute(&html, fields)

	var text strings.Builder
	text.WriteString("New Contact Form Submission\n\n")
	fmt.Fprintf(&text, "Name: %s\n", sub.Name)
	fmt.Fprintf(&text, "Email: %s\n", sub.Email)
	if sub.Company != "" {
		fmt.Fprintf(&text, "Company: %s\n", sub.Company)
	}
	fmt.Fprintf(&text, "Project Type: %s\n", label)
	fmt.Fprintf(&text, "Message:\n%s\n", sub.Message)
	fmt.Fprintf(&text, "\nReply directly to this email to respond to %s.\n", sub.Name)

	return Email{
		Subject: fmt.Sprintf("New Contact Form Submission from %s - %s", sub.Name, label),
		HTML:    html.String(),
		Text:    text.String(),
	}
}
