package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrap(t *testing.T) {
	t.Run("wraps with context and preserves the chain", func(t *testing.T) {
		err := Wrap(ErrNotFound, "token lookup")
		assert.EqualError(t, err, "token lookup: not found")
		assert.True(t, Is(err, ErrNotFound))
	})

	t.Run("nil error returns nil", func(t *testing.T) {
		assert.NoError(t, Wrap(nil, "anything"))
	})

	t.Run("double wrap still matches the sentinel", func(t *testing.T) {
		err := Wrap(Wrap(ErrUnavailable, "vault get"), "detokenize")
		assert.True(t, Is(err, ErrUnavailable))
		assert.False(t, Is(err, ErrNotFound))
	})
}

func TestAs(t *testing.T) {
	type codeError struct{ error }

	inner := codeError{New("boom")}
	err := fmt.Errorf("outer: %w", inner)

	var target codeError
	assert.True(t, As(err, &target))
}
