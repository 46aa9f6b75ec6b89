package rest_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/rest"
)

func TestEnvironmentUnmarshalText(t *testing.T) {
	tcs := []struct {
		name     string
		val      string
		expected rest.Environment
		err      error
	}{
		{"Upper", "PRODUCTION", rest.Production, nil},
		{"Lower", "staging", rest.Staging, nil},
		{"Padded", " testing\n", rest.Testing, nil},
		{"Invalid", "moon", rest.Development, rest.ErrNotValid},
		{"Empty", "", rest.Development, rest.ErrNotValid},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			e := rest.Development

			// Act
			err := e.UnmarshalText([]byte(tc.val))

			// Assert
			require.ErrorIs(t, err, tc.err)
			require.Equal(t, tc.expected, e)
		})
	}
}

func TestEnvironmentPredicates(t *testing.T) {
	require.True(t, rest.Development.IsDevelopment())
	require.True(t, rest.Production.IsProduction())
	require.True(t, rest.Testing.IsTesting())
	require.False(t, rest.Staging.IsProduction())
	require.ErrorIs(t, rest.Environment("").Valid(), rest.ErrNotValid)
}
