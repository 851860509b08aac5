// Package templates renders the HTML body of contact inquiry emails.
package templates

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
)

// InquiryProps is the data shown in an inquiry email.
type InquiryProps struct {
	Name      string
	Email     string
	Subject   string
	Message   string
	Language  string
	Direction string
}

type inquiryTemplateData struct {
	InquiryProps
	Paragraphs []string
}

var inquiryTemplate = template.Must(template.New("inquiry").Parse(`<!doctype html>
<html lang="{{.Language}}" dir="{{.Direction}}">
  <head>
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <meta http-equiv="Content-Type" content="text/html; charset=UTF-8">
    <title>{{.Subject}}</title>
  </head>
  <body style="font-family: Helvetica, sans-serif; font-size: 16px; line-height: 1.4; background-color: #f4f5f6; margin: 0; padding: 24px;">
    <table role="presentation" border="0" cellpadding="0" cellspacing="0" style="max-width: 600px; margin: 0 auto; background: #ffffff; border: 1px solid #eaebed; border-radius: 16px; width: 100%;" width="100%">
      <tr>
        <td style="padding: 24px;">
          <h2 style="margin: 0 0 16px 0;">{{.Subject}}</h2>
          <p style="margin: 0 0 8px 0;"><strong>{{.Name}}</strong> &lt;<a href="mailto:{{.Email}}">{{.Email}}</a>&gt;</p>
          {{range .Paragraphs}}<p style="margin: 0 0 16px 0;">{{.}}</p>
          {{end}}
        </td>
      </tr>
    </table>
  </body>
</html>`))

// RenderInquiry returns the HTML body for props. Every field is escaped.
func RenderInquiry(props InquiryProps) (string, error) {
	if props.Direction == "" {
		props.Direction = "ltr"
	}

	data := inquiryTemplateData{InquiryProps: props}
	for _, p := range strings.Split(strings.ReplaceAll(props.Message, "\r\n", "\n"), "\n\n") {
		if p = strings.TrimSpace(p); p != "" {
			data.Paragraphs = append(data.Paragraphs, p)
		}
	}

	var buf bytes.Buffer
	if err := inquiryTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render inquiry email: %w", err)
	}
	return buf.String(), nil
}

// RenderInquiryText returns the plain text body for props.
func RenderInquiryText(props InquiryProps) string {
	return fmt.Sprintf("From: %s <%s>\nSubject: %s\n\n%s\n", props.Name, props.Email, props.Subject, props.Message)
}
