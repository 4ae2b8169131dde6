package code_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/authkit/pkg/code"
)

func TestNumeric(t *testing.T) {
	t.Parallel()

	c, err := code.Numeric()
	require.NoError(t, err)
	assert.Regexp(t, `^[0-9]{8}$`, c)
}

func TestGenerate(t *testing.T) {
	t.Parallel()

	t.Run("custom charset", func(t *testing.T) {
		t.Parallel()
		c, err := code.Generate(12, "ABC")
		require.NoError(t, err)
		assert.Regexp(t, `^[ABC]{12}$`, c)
	})

	t.Run("every digit appears", func(t *testing.T) {
		t.Parallel()
		seen := make(map[rune]bool)
		for range 200 {
			c, err := code.Numeric()
			require.NoError(t, err)
			for _, r := range c {
				seen[r] = true
			}
		}
		assert.Len(t, seen, 10)
	})

	t.Run("invalid length", func(t *testing.T) {
		t.Parallel()
		_, err := code.Generate(0, code.Digits)
		assert.ErrorIs(t, err, code.ErrInvalidLength)
	})

	t.Run("invalid charset", func(t *testing.T) {
		t.Parallel()
		_, err := code.Generate(8, "x")
		assert.ErrorIs(t, err, code.ErrInvalidCharset)
	})
}
