package auth

import (
	"context"
	"time"

	"github.com/dmitrymomot/authkit/pkg/verification"
)

// CodeMessage is a one-time code to deliver to an address.
type CodeMessage struct {
	Purpose   verification.Purpose
	Email     string
	Code      string
	ExpiresAt time.Time
}

// CodeSender delivers verification codes.
type CodeSender interface {
	SendCode(ctx context.Context, msg CodeMessage) error
}

// CodeSenderFunc adapts a function to CodeSender.
type CodeSenderFunc func(ctx context.Context, msg CodeMessage) error

func (f CodeSenderFunc) SendCode(ctx context.Context, msg CodeMessage) error { return f(ctx, msg) }
