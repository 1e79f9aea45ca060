package selection_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/jcmexdev/invoice-gateway/internal/core/domain/entity"
	"github.com/jcmexdev/invoice-gateway/internal/core/selection"
)

func order(id, amount string) entity.Order {
	return entity.Order{
		ID:     id,
		Amount: decimal.RequireFromString(amount),
		Status: entity.OrderStatusCompleted,
	}
}

func TestToggleSelectsDistinctOrders(t *testing.T) {
	s := selection.NewStore()

	s.Toggle(order("a", "10"))
	s.Toggle(order("b", "20"))

	require.Equal(t, 2, s.Count())
	require.True(t, s.IsSelected("a"))
	require.True(t, s.IsSelected("b"))
}

func TestToggleTwiceIsSelfInverse(t *testing.T) {
	s := selection.NewStore()
	s.Toggle(order("a", "10"))

	before := s.SelectedOrderIDs()

	s.Toggle(order("b", "20"))
	s.Toggle(order("b", "20"))

	require.Equal(t, before, s.SelectedOrderIDs())
	require.Equal(t, 1, s.Count())
}

func TestToggleNeverDuplicatesAnID(t *testing.T) {
	s := selection.NewStore()

	s.Toggle(order("a", "10"))
	s.Toggle(order("a", "10"))
	s.Toggle(order("a", "10"))

	require.Equal(t, []string{"a"}, s.SelectedOrderIDs())
}

func TestTotalAmountTracksEveryMutation(t *testing.T) {
	s := selection.NewStore()

	// The derived total must equal the arithmetic sum after each operation.
	check := func(want string) {
		t.Helper()
		require.True(t, s.TotalAmount().Equal(decimal.RequireFromString(want)),
			"want total %s, got %s", want, s.TotalAmount())
	}

	check("0")
	s.Toggle(order("a", "1280.50"))
	check("1280.50")
	s.Toggle(order("b", "2450.00"))
	check("3730.50")
	s.Deselect("a")
	check("2450.00")
	s.Toggle(order("a", "1280.50"))
	check("3730.50")
	s.Clear()
	check("0")
}

func TestClearAlwaysEmpties(t *testing.T) {
	s := selection.NewStore()
	s.Clear()
	require.Equal(t, 0, s.Count())

	s.Toggle(order("a", "1"))
	s.Toggle(order("b", "2"))
	s.Clear()
	require.Equal(t, 0, s.Count())
	require.Empty(t, s.SelectedOrderIDs())
}

func TestDeselectUnknownIDIsNoOp(t *testing.T) {
	s := selection.NewStore()
	s.Toggle(order("a", "10"))

	s.Deselect("missing")

	require.Equal(t, []string{"a"}, s.SelectedOrderIDs())
	require.True(t, s.TotalAmount().Equal(decimal.RequireFromString("10")))
}

func TestSelectedOrderIDsPreserveInsertionOrder(t *testing.T) {
	s := selection.NewStore()
	s.Toggle(order("first", "1280.50"))
	s.Toggle(order("second", "2450.00"))

	require.Equal(t, []string{"first", "second"}, s.SelectedOrderIDs())
	require.True(t, s.TotalAmount().Equal(decimal.RequireFromString("3730.50")))
}

func TestToggleDoesNotTouchCurrent(t *testing.T) {
	s := selection.NewStore()
	cur := order("detail", "5")
	s.SetCurrent(&cur)

	s.Toggle(order("a", "10"))

	got := s.Current()
	require.NotNil(t, got)
	require.Equal(t, "detail", got.ID)
}

func TestCurrentIsACopy(t *testing.T) {
	s := selection.NewStore()
	cur := order("detail", "5")
	s.SetCurrent(&cur)

	got := s.Current()
	got.ID = "mutated"

	require.Equal(t, "detail", s.Current().ID)

	s.SetCurrent(nil)
	require.Nil(t, s.Current())
}

func TestOrdersReturnsSnapshot(t *testing.T) {
	s := selection.NewStore()
	s.Toggle(order("a", "10"))

	snapshot := s.Orders()
	snapshot[0].ID = "mutated"

	require.True(t, s.IsSelected("a"))
	require.False(t, s.IsSelected("mutated"))
}
