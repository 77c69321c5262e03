package validation

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrReturnsNilWhenEmpty(t *testing.T) {
	verrs := Errors{}
	assert.NoError(t, verrs.Err())

	verrs.Add("name", "is required")
	assert.Error(t, verrs.Err())
}

func TestFirstMessagePerFieldWins(t *testing.T) {
	verrs := Errors{}
	verrs.Add("price", "must be greater than zero")
	verrs.Add("price", "second message")

	assert.Equal(t, "must be greater than zero", verrs["price"])
}

func TestErrorMessageIsSortedAndComplete(t *testing.T) {
	verrs := Errors{}
	verrs.Add("price", "must be greater than zero")
	verrs.Add("name", "is required")

	assert.Equal(t, "validation failed: name: is required; price: must be greater than zero", verrs.Error())
}

func TestAsErrorsUnwrapsWrappedErrors(t *testing.T) {
	verrs := Errors{"name": "is required"}
	wrapped := fmt.Errorf("failed to create product: %w", verrs)

	got, ok := AsErrors(wrapped)
	require.True(t, ok)
	assert.Equal(t, verrs, got)

	_, ok = AsErrors(errors.New("plain"))
	assert.False(t, ok)

	_, ok = AsErrors(nil)
	assert.False(t, ok)
}
