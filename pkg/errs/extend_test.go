package errs

import (
	"errors"
	"io"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestExtend(t *testing.T) {
	require.EqualError(t, Extend(errors.New("a"), "b"), "b: a")
}

func TestExtendNil(t *testing.T) {
	require.NoError(t, Extend(nil, "b"))
}

func TestExtendKeepsCause(t *testing.T) {
	err := Extend(io.ErrUnexpectedEOF, "field \"x\"")
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
	require.Equal(t, io.ErrUnexpectedEOF, pkgerrors.Cause(err))
}
