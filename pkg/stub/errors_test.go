package stub_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schmitthub/stubkit/pkg/stub"
)

func TestUnstubbedError(t *testing.T) {
	err := stub.Unstubbed("vehicle.Steerable", "Steer")

	assert.Equal(t, "vehicle.Steerable", err.Contract)
	assert.Equal(t, "Steer", err.Member)
	assert.Contains(t, err.Error(), "vehicle.Steerable.Steer")
	assert.Contains(t, err.Error(), "SteerFn")
	assert.True(t, errors.Is(err, stub.ErrUnstubbed))
	assert.False(t, errors.Is(err, stub.ErrUnknownPreset))
}

func TestCatch(t *testing.T) {
	t.Run("returns nil when fn returns", func(t *testing.T) {
		assert.NoError(t, stub.Catch(func() {}))
	})

	t.Run("returns unstubbed error", func(t *testing.T) {
		err := stub.Catch(func() { panic(stub.Unstubbed("c", "M")) })
		require.Error(t, err)

		var ue *stub.UnstubbedError
		require.True(t, errors.As(err, &ue))
		assert.Equal(t, "M", ue.Member)
	})

	t.Run("re-panics anything else", func(t *testing.T) {
		assert.PanicsWithValue(t, "boom", func() {
			_ = stub.Catch(func() { panic("boom") })
		})
	})

	t.Run("re-panics plain errors", func(t *testing.T) {
		other := errors.New("other")
		assert.PanicsWithError(t, "other", func() {
			_ = stub.Catch(func() { panic(other) })
		})
	})
}

func TestUnknownPresetError(t *testing.T) {
	err := &stub.UnknownPresetError{Name: "x", Known: []string{"noop"}}
	assert.Equal(t, `unknown preset "x" (known: [noop])`, err.Error())

	err.Contract = "httpclient.Client"
	assert.Equal(t, `unknown preset "x" for httpclient.Client (known: [noop])`, err.Error())
	assert.ErrorIs(t, err, stub.ErrUnknownPreset)
}
