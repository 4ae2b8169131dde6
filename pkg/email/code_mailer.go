package email

import (
	"context"
	"log/slog"
	"time"

	"github.com/dmitrymomot/authkit/pkg/auth"
	"github.com/dmitrymomot/authkit/pkg/email/templates"
	"github.com/dmitrymomot/authkit/pkg/logger"
	"github.com/dmitrymomot/authkit/pkg/verification"
)

type codeCopy struct {
	subject string
	intro   string
}

var codeCopies = map[verification.Purpose]codeCopy{
	verification.PurposeSignup: {
		subject: "Confirm your email address",
		intro:   "Enter this code to finish creating your account.",
	},
	verification.PurposePasswordReset: {
		subject: "Reset your password",
		intro:   "Enter this code to choose a new password.",
	},
	verification.PurposeEmailVerification: {
		subject: "Verify your email address",
		intro:   "Enter this code to verify your email address.",
	},
	verification.PurposeAccountAssociation: {
		subject: "Link your sign-in method",
		intro:   "Enter this code to link the new sign-in method to your account.",
	},
	verification.PurposeProviderLink: {
		subject: "Link your sign-in method",
		intro:   "Enter this code to link the new sign-in method to your account.",
	},
}

// CodeMailer sends verification codes through an EmailSender.
type CodeMailer struct {
	sender  EmailSender
	product string
	logger  *slog.Logger
	now     func() time.Time
}

var _ auth.CodeSender = (*CodeMailer)(nil)

// CodeMailerOption configures a CodeMailer.
type CodeMailerOption func(*CodeMailer)

// WithProductName sets the product name shown in the mail footer.
func WithProductName(name string) CodeMailerOption {
	return func(m *CodeMailer) {
		if name != "" {
			m.product = name
		}
	}
}

func WithLogger(l *slog.Logger) CodeMailerOption {
	return func(m *CodeMailer) {
		if l != nil {
			m.logger = l
		}
	}
}

func WithClock(now func() time.Time) CodeMailerOption {
	return func(m *CodeMailer) {
		if now != nil {
			m.now = now
		}
	}
}

// NewCodeMailer returns a CodeMailer sending through sender.
func NewCodeMailer(sender EmailSender, opts ...CodeMailerOption) *CodeMailer {
	m := &CodeMailer{
		sender:  sender,
		product: "authkit",
		logger:  logger.Discard(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.logger = m.logger.With(logger.Component("email"))
	return m
}

// SendCode renders the code email for msg.Purpose and sends it.
func (m *CodeMailer) SendCode(ctx context.Context, msg auth.CodeMessage) error {
	c, ok := codeCopies[msg.Purpose]
	if !ok {
		c = codeCopy{subject: "Your verification code", intro: "Enter this code to continue."}
	}

	body, err := templates.Render(ctx, templates.VerificationCode(templates.CodeParams{
		ProductName: m.product,
		Heading:     c.subject,
		Intro:       c.intro,
		Code:        msg.Code,
		ExpiresIn:   msg.ExpiresAt.Sub(m.now()),
	}))
	if err != nil {
		return err
	}

	err = m.sender.SendEmail(ctx, SendEmailParams{
		SendTo:   msg.Email,
		Subject:  c.subject,
		BodyHTML: body,
		Tag:      msg.Purpose.String(),
	})
	if err != nil {
		m.logger.ErrorContext(ctx, "failed to send verification code",
			logger.Purpose(msg.Purpose.String()),
			logger.Error(err),
		)
		return err
	}
	return nil
}

// NewSender returns a Postmark sender when cfg carries tokens and a
// DevSender writing to cfg.DevDir otherwise.
func NewSender(cfg Config, l *slog.Logger) (EmailSender, error) {
	if cfg.PostmarkServerToken == "" && cfg.PostmarkAccountToken == "" {
		return NewDevSender(cfg.DevDir, WithDevLogger(l)), nil
	}
	return NewPostmarkClient(cfg)
}
