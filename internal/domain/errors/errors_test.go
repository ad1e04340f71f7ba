package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsFatal(t *testing.T) {
	assert.True(t, IsFatal(NewSourceMissingError("products.csv", nil)))
	assert.True(t, IsFatal(fmt.Errorf("open: %w", NewSchemaError("orders", []string{"name"}))))
	assert.False(t, IsFatal(NewMalformedRowError(3, 4, 5, nil)))
	assert.False(t, IsFatal(NewRowParseError(3, "price", stderrors.New("bad"))))
	assert.False(t, IsFatal(NewPersistenceError(stderrors.New("boom"), "create order", false)))
	assert.False(t, IsFatal(stderrors.New("plain")))
}

func TestCode(t *testing.T) {
	assert.Equal(t, "ROW_MALFORMED", Code(fmt.Errorf("wrapped: %w", NewMalformedRowError(2, 3, 1, nil))))
	assert.Equal(t, "CATEGORY_TOO_DEEP", Code(ErrCategoryTooDeep.WithDetails("Phones")))
	assert.Equal(t, "UNKNOWN", Code(stderrors.New("plain")))
}

func TestBaseError_IsMatchesByCode(t *testing.T) {
	err := ErrCategoryParentNotFound.WithDetails("Electronics")

	assert.True(t, stderrors.Is(err, ErrCategoryParentNotFound))
	assert.False(t, stderrors.Is(err, ErrCategoryTooDeep))
	assert.Equal(t, "parent category not found: Electronics", err.Error())
}

func TestMalformedRowError_Message(t *testing.T) {
	err := NewMalformedRowError(7, 4, 2, nil)

	assert.Equal(t, "line 7: expected 4 columns, got 2", err.Error())
}

func TestPersistenceError_Transient(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := NewPersistenceError(cause, "create product", true)

	assert.True(t, err.Transient())
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "create product")
}
