package validator

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidator(t *testing.T) {
	v := New()
	require.True(t, v.Valid())

	v.Check(true, "title", "must be provided")
	require.True(t, v.Valid())

	v.Check(false, "title", "must be provided")
	require.False(t, v.Valid())
	require.Equal(t, "must be provided", v.Errors["title"])

	// First message for a field wins.
	v.AddError("title", "something else")
	require.Equal(t, "must be provided", v.Errors["title"])
}
