// Package email delivers transactional mail, in particular the one-time
// verification codes issued by the auth workflows.
//
// EmailSender abstracts the provider. NewPostmarkClient sends through
// Postmark; NewDevSender writes each message to a directory as an HTML file
// plus a JSON metadata file, for local development.
//
// CodeMailer renders the verification code template for a purpose and sends
// it, and satisfies auth.CodeSender:
//
//	sender, err := email.NewPostmarkClient(cfg)
//	if err != nil {
//		return err
//	}
//	mailer := email.NewCodeMailer(sender, email.WithProductName("Acme"))
//
//	svc, err := auth.New(auth.Deps{Mailer: mailer /* ... */})
//
// Templates live in the templates subpackage and are templ components, so
// they can be rendered anywhere templ is used.
package email
