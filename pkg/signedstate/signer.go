package signedstate

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"reflect"
	"strings"

	"github.com/google/uuid"
	jschema "github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/dmitrymomot/authkit/pkg/logger"
	"github.com/dmitrymomot/authkit/pkg/secret"
)

const separator = "."

// Signer issues and validates signed states carrying a payload of type T.
// T must be a struct. A Signer is safe for concurrent use.
type Signer[T any] struct {
	purpose string
	key     []byte
	schema  *jschema.Schema
	opts    options
}

// New returns a Signer for payloads of type T, bound to purpose and key.
func New[T any](purpose string, key []byte, opts ...Option) (*Signer[T], error) {
	if len(key) == 0 {
		return nil, ErrEmptyKey
	}
	if purpose == "" {
		return nil, ErrEmptyPurpose
	}

	var zero T
	t := reflect.TypeOf(zero)
	if t == nil || t.Kind() != reflect.Struct {
		return nil, ErrPayloadNotStruct
	}

	sch, err := compileSchema(&zero, purpose)
	if err != nil {
		return nil, err
	}

	o := options{
		logger:   logger.Discard(),
		newNonce: uuid.NewString,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return &Signer[T]{
		purpose: purpose,
		key:     bytes.Clone(key),
		schema:  sch,
		opts:    o,
	}, nil
}

// MustNew is like New but panics on error.
func MustNew[T any](purpose string, key []byte, opts ...Option) *Signer[T] {
	s, err := New[T](purpose, key, opts...)
	if err != nil {
		panic(err)
	}
	return s
}

// Purpose returns the purpose the signer is bound to.
func (s *Signer[T]) Purpose() string { return s.purpose }

// Generate signs payload together with a fresh nonce.
func (s *Signer[T]) Generate(payload T) (string, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	fields := make(map[string]any)
	if err := json.Unmarshal(raw, &fields); err != nil {
		return "", err
	}
	fields[nonceField] = s.opts.newNonce()
	fields[purposeField] = s.purpose

	data, err := json.Marshal(fields)
	if err != nil {
		return "", err
	}

	encoded := base64.RawURLEncoding.EncodeToString(data)
	return encoded + separator + s.sign(encoded), nil
}

// Validate verifies state and returns its payload.
func (s *Signer[T]) Validate(state string) (T, error) {
	var payload T

	encoded, sig, ok := strings.Cut(state, separator)
	if !ok || encoded == "" || sig == "" || strings.Contains(sig, separator) {
		return payload, ErrInvalidSignedState
	}
	if !secret.Equal(s.sign(encoded), sig) {
		return payload, ErrInvalidSignedState
	}

	data, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return payload, s.decodeFailed(err)
	}
	doc, err := jschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return payload, s.decodeFailed(err)
	}

	if err := s.schema.Validate(doc); err != nil {
		return payload, ErrInvalidSignedState
	}

	// nonce and purpose have no matching fields in T and are dropped here
	if err := json.Unmarshal(data, &payload); err != nil {
		return payload, s.decodeFailed(err)
	}
	return payload, nil
}

func (s *Signer[T]) sign(encoded string) string {
	mac := hmac.New(sha256.New, s.key)
	mac.Write([]byte(encoded))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

func (s *Signer[T]) decodeFailed(err error) error {
	s.opts.logger.Error("failed to decode signed state",
		logger.Component("signedstate"),
		logger.Purpose(s.purpose),
		logger.Error(err),
	)
	return errors.Join(ErrFailedToDecodeSignedState, err)
}
