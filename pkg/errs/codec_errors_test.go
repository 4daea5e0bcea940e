package errs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCapacityViolation(t *testing.T) {
	require.EqualError(t, NewCapacityViolation("a").Extend("b"), "b: a")
}

func TestConstructionFailure(t *testing.T) {
	require.EqualError(t, Extend(NewConstructionFailure("a"), "b"), "b: a")
}

func TestMissingArray(t *testing.T) {
	require.EqualError(t, Extend(NewMissingArray("a"), "b"), "b: a")
}

func TestNullElement(t *testing.T) {
	require.EqualError(t, NewNullElement("a").Extend("b"), "b: a")
}

func TestDynamicSize(t *testing.T) {
	require.EqualError(t, NewDynamicSize("a").Extend("b"), "b: a")
}

func TestInvalidDescriptor(t *testing.T) {
	require.EqualError(t, NewInvalidDescriptor("a").Extend("b"), "b: a")
}

func TestExtendedErrorsKeepType(t *testing.T) {
	for _, test := range []struct {
		err    error
		target error
	}{
		{NewCapacityViolation("a"), CapacityViolation{}},
		{NewConstructionFailure("a"), ConstructionFailure{}},
		{NewMissingArray("a"), MissingArray{}},
		{NewNullElement("a"), NullElement{}},
		{NewDynamicSize("a"), DynamicSize{}},
		{NewInvalidDescriptor("a"), InvalidDescriptor{}},
	} {
		extended := Extend(Extend(test.err, "inner"), "outer")
		assert.True(t, errors.Is(extended, test.target), "%T", test.err)
		assert.True(t, IsCodecError(extended), "%T", test.err)
	}
	assert.False(t, errors.Is(NewMissingArray("a"), NullElement{}))
}

func TestIsCodecError(t *testing.T) {
	assert.True(t, IsCodecError(NewMissingArray("a")))
	assert.False(t, IsCodecError(errors.New("a")))
}
