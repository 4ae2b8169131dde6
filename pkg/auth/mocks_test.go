package auth_test

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/dmitrymomot/authkit/pkg/auth"
)

// MockCodeSender is a mock implementation of auth.CodeSender that also
// remembers the last delivered message.
type MockCodeSender struct {
	mock.Mock

	mu   sync.Mutex
	last auth.CodeMessage
}

func (m *MockCodeSender) SendCode(ctx context.Context, msg auth.CodeMessage) error {
	args := m.Called(ctx, msg)
	if args.Error(0) == nil {
		m.mu.Lock()
		m.last = msg
		m.mu.Unlock()
	}
	return args.Error(0)
}

// Last returns the last delivered message.
func (m *MockCodeSender) Last() auth.CodeMessage {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.last
}
