package cmdutil

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlagError(t *testing.T) {
	err := FlagErrorf("unknown contract %q", "boat")
	assert.Equal(t, `unknown contract "boat"`, err.Error())

	var flagErr *FlagError
	assert.True(t, errors.As(err, &flagErr))
}

func TestFlagErrorWrap(t *testing.T) {
	base := errors.New("base")
	err := FlagErrorWrap(base)
	assert.ErrorIs(t, err, base)

	var flagErr *FlagError
	assert.True(t, errors.As(err, &flagErr))
}
