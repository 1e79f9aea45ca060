package selection_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jcmexdev/invoice-gateway/internal/core/selection"
)

func TestManagerSessionLifecycle(t *testing.T) {
	m := selection.NewManager()

	id, store := m.Open()
	require.NotEmpty(t, id)
	require.NotNil(t, store)
	require.Equal(t, 1, m.Len())

	got, err := m.Get(id)
	require.NoError(t, err)
	require.Same(t, store, got)

	require.NoError(t, m.Close(id))
	require.Equal(t, 0, m.Len())

	_, err = m.Get(id)
	require.ErrorIs(t, err, selection.ErrSessionNotFound)
}

func TestManagerCloseUnknownSession(t *testing.T) {
	m := selection.NewManager()
	require.ErrorIs(t, m.Close("nope"), selection.ErrSessionNotFound)
}

func TestManagerSessionsAreIsolated(t *testing.T) {
	m := selection.NewManager()

	idA, storeA := m.Open()
	idB, storeB := m.Open()
	require.NotEqual(t, idA, idB)

	storeA.Toggle(order("a", "10"))

	require.Equal(t, 1, storeA.Count())
	require.Equal(t, 0, storeB.Count())
}
