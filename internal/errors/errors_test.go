package errors_test

import (
	"context"
	"io"
	"testing"

	"megaskyshop/internal/errors"

	"github.com/stretchr/testify/assert"
)

type lineError struct{ line int }

func (e *lineError) Error() string { return "bad line" }

func TestIsAny(t *testing.T) {
	wrapped := errors.Wrap(io.ErrUnexpectedEOF, "read row")

	assert.True(t, errors.IsAny(wrapped, context.Canceled, io.ErrUnexpectedEOF))
	assert.False(t, errors.IsAny(wrapped, context.Canceled, io.EOF))
	assert.False(t, errors.IsAny(wrapped))
}

func TestAsType(t *testing.T) {
	err := errors.Wrapf(&lineError{line: 4}, "row %d", 4)

	target, ok := errors.AsType[*lineError](err)
	assert.True(t, ok)
	assert.Equal(t, 4, target.line)

	_, ok = errors.AsType[*lineError](errors.New("other"))
	assert.False(t, ok)
}

func TestWrapKeepsCause(t *testing.T) {
	assert.NoError(t, errors.Wrap(nil, "ignored"))

	err := errors.WithMessage(errors.WithStack(io.EOF), "decode")
	assert.Equal(t, io.EOF, errors.Cause(err))
	assert.EqualError(t, err, "decode: EOF")
}

func TestJoin(t *testing.T) {
	assert.NoError(t, errors.Join(nil, nil))
	assert.ErrorIs(t, errors.Join(nil, io.EOF), io.EOF)
}
