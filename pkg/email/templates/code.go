package templates

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/a-h/templ"
)

// CodeParams fills the verification code email.
type CodeParams struct {
	ProductName string
	Heading     string
	Intro       string
	Code        string
	ExpiresIn   time.Duration
}

// VerificationCode renders a one-time code email. Every field is escaped.
func VerificationCode(p CodeParams) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, codeLayout,
			templ.EscapeString(p.Heading),
			templ.EscapeString(p.Heading),
			templ.EscapeString(p.Intro),
			templ.EscapeString(p.Code),
			templ.EscapeString(formatExpiry(p.ExpiresIn)),
			templ.EscapeString(p.ProductName),
		)
		return err
	})
}

const codeLayout = `<!DOCTYPE html>
<html lang="en">
<head><meta charset="utf-8"><title>%s</title></head>
<body style="font-family:sans-serif;color:#111">
<h1 style="font-size:20px">%s</h1>
<p>%s</p>
<p style="font-size:28px;font-weight:bold;letter-spacing:4px">%s</p>
<p>The code expires in %s. If you did not ask for it, ignore this email.</p>
<p style="color:#666">%s</p>
</body>
</html>
`

func formatExpiry(d time.Duration) string {
	minutes := int(d.Round(time.Minute) / time.Minute)
	switch {
	case minutes <= 1:
		return "1 minute"
	case minutes < 120:
		return fmt.Sprintf("%d minutes", minutes)
	default:
		return fmt.Sprintf("%d hours", minutes/60)
	}
}
