package panicerr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Recover_passesThroughNormalReturn(t *testing.T) {
	err := Recover(func() error { return nil })
	assert.NoError(t, err)

	sentinel := errors.New("boom")
	err = Recover(func() error { return sentinel })
	assert.Same(t, sentinel, err)
}

func Test_Recover_catchesPanicWithError(t *testing.T) {
	sentinel := errors.New("boom")
	err := Recover(func() error { panic(sentinel) })
	require.Error(t, err)
	assert.True(t, IsPanic(err))
	assert.ErrorIs(t, err, sentinel)
	assert.NotEmpty(t, PanicStack(err))
}

func Test_Recover_catchesPanicWithNonError(t *testing.T) {
	err := Recover(func() error { panic("kaboom") })
	require.Error(t, err)
	assert.True(t, IsPanic(err))
	assert.Contains(t, err.Error(), "kaboom")
}

func Test_IsPanic_falseForOrdinaryError(t *testing.T) {
	assert.False(t, IsPanic(errors.New("ordinary")))
	assert.Empty(t, PanicStack(errors.New("ordinary")))
}
