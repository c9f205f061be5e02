// internal/util/errors_test.go
package util

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsErrorMatchesWrappedSentinel(t *testing.T) {
	err := fmt.Errorf("%w, e.g. '40.5'", ErrInvalidAmount)

	assert.True(t, IsError(err, ErrInvalidAmount))
	assert.False(t, IsError(err, ErrCancelled))
	assert.False(t, IsError(errors.New("amount must be a number greater than 0"), ErrInvalidAmount))
}
