package secret_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/authkit/pkg/secret"
)

var alphabet = regexp.MustCompile(`^[a-z2-7]+$`)

func TestGenerate(t *testing.T) {
	t.Parallel()

	seen := make(map[string]struct{}, 100)
	for range 100 {
		s, err := secret.Generate()
		require.NoError(t, err)
		assert.Len(t, s, secret.Length)
		assert.Regexp(t, alphabet, s)

		_, dup := seen[s]
		require.False(t, dup, "generated duplicate secret")
		seen[s] = struct{}{}
	}
}

func TestHasher(t *testing.T) {
	t.Parallel()

	t.Run("deterministic", func(t *testing.T) {
		t.Parallel()
		h := secret.NewHasher("pepper")
		assert.Equal(t, h.Hash("abc"), h.Hash("abc"))
		assert.Len(t, h.Hash("abc"), 64)
	})

	t.Run("different inputs produce different digests", func(t *testing.T) {
		t.Parallel()
		h := secret.NewHasher("pepper")
		assert.NotEqual(t, h.Hash("abc"), h.Hash("abd"))
	})

	t.Run("pepper changes digest", func(t *testing.T) {
		t.Parallel()
		assert.NotEqual(t, secret.NewHasher("one").Hash("abc"), secret.NewHasher("two").Hash("abc"))
		assert.NotEqual(t, secret.NewHasher("").Hash("abc"), secret.NewHasher("two").Hash("abc"))
	})

	t.Run("known vector without pepper", func(t *testing.T) {
		t.Parallel()
		var h secret.Hasher
		assert.Equal(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", h.Hash("abc"))
	})

	t.Run("verify", func(t *testing.T) {
		t.Parallel()
		h := secret.NewHasher("pepper")
		s := secret.MustGenerate()
		stored := h.Hash(s)

		assert.True(t, h.Verify(s, stored))
		assert.False(t, h.Verify(s+"x", stored))
		assert.False(t, secret.NewHasher("other").Verify(s, stored))
	})
}

func TestEqual(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{"identical", "abcdef", "abcdef", true},
		{"empty", "", "", true},
		{"one char differs", "abcdef", "abcdeg", false},
		{"different length", "abc", "abcd", false},
		{"prefix", "abcd", "abc", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, secret.Equal(tt.a, tt.b))
		})
	}
}
