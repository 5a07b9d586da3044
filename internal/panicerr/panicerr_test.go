package panicerr_test

import (
	"errors"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcorbin/stackr/internal/panicerr"
)

func TestRecover(t *testing.T) {
	errBoom := errors.New("boom")

	t.Run("returns", func(t *testing.T) {
		assert.NoError(t, panicerr.Recover("ok", func() error { return nil }))
		assert.Equal(t, errBoom, panicerr.Recover("fail", func() error { return errBoom }))
	})

	t.Run("panics", func(t *testing.T) {
		err := panicerr.Recover("thing", func() error { panic(errBoom) })
		require.Error(t, err)
		assert.True(t, panicerr.IsPanic(err), "expected a panic error")
		assert.False(t, panicerr.IsExit(err), "expected no exit error")
		assert.True(t, errors.Is(err, errBoom), "expected to unwrap the panic value")
		assert.Equal(t, "thing paniced: boom", err.Error())
	})

	t.Run("goexit", func(t *testing.T) {
		err := panicerr.Recover("quitter", func() error {
			runtime.Goexit()
			return nil
		})
		require.Error(t, err)
		assert.True(t, panicerr.IsExit(err), "expected an exit error")
		assert.EqualError(t, err, "quitter called runtime.Goexit")
	})
}
