package docstore_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/rest"
	"github.com/xy-planning-network/rest/internal/docstore"
)

func TestOpen(t *testing.T) {
	tcs := []struct {
		name   string
		driver string
		err    error
	}{
		{"Default", "", nil},
		{"SQLite", "SQLite ", nil},
		{"Unknown", "mongo", rest.ErrBadConfig},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Act
			store, err := docstore.Open(context.Background(), tc.driver, ":memory:")

			// Assert
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
				require.Nil(t, store)
				return
			}

			require.Nil(t, err)
			require.IsType(t, &docstore.SQLite{}, store)
			require.Nil(t, store.Close())
		})
	}
}
