package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithDetailsKeepsIdentity(t *testing.T) {
	sentinel := New(http.StatusConflict, "time slot already booked")
	detailed := sentinel.WithDetails("10:00 - 11:00")

	assert.True(t, errors.Is(detailed, sentinel))
	assert.True(t, errors.Is(fmt.Errorf("wrapped: %w", detailed), sentinel))
	assert.Nil(t, sentinel.Details, "sentinel must not be mutated")
	assert.Equal(t, "10:00 - 11:00", detailed.Details)
}

func TestIsDistinguishesMessages(t *testing.T) {
	a := New(http.StatusBadRequest, "a")
	b := New(http.StatusBadRequest, "b")
	assert.False(t, errors.Is(a, b))
	assert.True(t, a.IsClientError())
	assert.False(t, New(http.StatusInternalServerError, "x").IsClientError())
}

func TestWithCauseKeepsIdentityAndCause(t *testing.T) {
	sentinel := New(http.StatusConflict, "time slot already booked")
	cause := errors.New("exclusion constraint violated")

	wrapped := sentinel.WithCause(cause)

	assert.True(t, errors.Is(wrapped, sentinel))
	assert.True(t, errors.Is(wrapped, cause))
	assert.Equal(t, cause, errors.Unwrap(wrapped))
	assert.Equal(t, sentinel.Message, wrapped.Error())
	assert.Nil(t, sentinel.Err, "sentinel must not be mutated")
}

func TestWrap(t *testing.T) {
	cause := errors.New("boom")
	err := Wrap(cause, http.StatusBadRequest, "bad input")

	var appErr *AppError
	assert.True(t, errors.As(fmt.Errorf("ctx: %w", err), &appErr))
	assert.Equal(t, http.StatusBadRequest, appErr.Code)
	assert.Equal(t, cause, errors.Unwrap(err))
}
