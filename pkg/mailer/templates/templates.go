package templates

import (
	"bytes"
	"fmt"
	"html/template"
)

// Welcome is the template name for the post-registration email.
const Welcome = "welcome"

var welcomeHTML = template.Must(template.New(Welcome).Parse(`
<!doctype html>
<html>
  <body style="font-family: sans-serif; color: #222;">
    <h2>Welcome to DevConnect, {{.Name}}!</h2>
    <p>Your account for {{.Email}} is ready.</p>
    <p>Create your developer profile, add your experience and education, and
    start sharing posts with the community.</p>
  </body>
</html>
`))

// Render renders the named template with data and returns subject, text,
// and html bodies.
func Render(name string, data map[string]any) (subject, text, html string, err error) {
	switch name {
	case Welcome:
		var buf bytes.Buffer
		if err = welcomeHTML.Execute(&buf, data); err != nil {
			return "", "", "", err
		}
		subject = "Welcome to DevConnect"
		text = fmt.Sprintf("Welcome to DevConnect, %v! Your account is ready.", data["Name"])
		return subject, text, buf.String(), nil
	default:
		return "", "", "", fmt.Errorf("unknown email template %q", name)
	}
}
