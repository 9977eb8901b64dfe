package ledger

import (
	"testing"

	"product-compare/internal/model"

	"github.com/stretchr/testify/require"
)

func TestAppendPreservesOrder(t *testing.T) {
	l := New()
	r1 := l.Append(model.Product{Name: "R1", Price: 1, Quantity: 1})
	r2 := l.Append(model.Product{Name: "R2", Price: 2, Quantity: 1})
	r3 := l.Append(model.Product{Name: "R3", Price: 3, Quantity: 1})

	snap := l.Snapshot()
	require.Len(t, snap, 3)
	require.Equal(t, []string{"R1", "R2", "R3"}, []string{snap[0].Name, snap[1].Name, snap[2].Name})
	require.Equal(t, r1.ID, snap[0].ID)
	require.Equal(t, r2.ID, snap[1].ID)
	require.Equal(t, r3.ID, snap[2].ID)
}

func TestAppendAssignsDistinctIDs(t *testing.T) {
	l := New()
	a := l.Append(model.Product{Name: "same", Price: 1, Quantity: 1})
	b := l.Append(model.Product{Name: "same", Price: 1, Quantity: 1})
	require.NotEmpty(t, a.ID)
	require.NotEqual(t, a.ID, b.ID)

	kept := l.Append(model.Product{ID: "fixed", Name: "x", Price: 1, Quantity: 1})
	require.Equal(t, "fixed", kept.ID)
}

func TestClearIsIdempotent(t *testing.T) {
	l := New()
	l.Append(model.Product{Name: "A", Price: 1, Quantity: 1})
	l.Append(model.Product{Name: "B", Price: 2, Quantity: 1})

	l.Clear()
	require.Equal(t, 0, l.Len())
	require.Empty(t, l.Snapshot())

	l.Clear()
	require.Equal(t, 0, l.Len())
	require.Empty(t, l.Snapshot())
}

func TestSnapshotIsACopy(t *testing.T) {
	l := New()
	l.Append(model.Product{Name: "A", Price: 1, Quantity: 1})

	snap := l.Snapshot()
	snap[0].Name = "mutated"
	l.Append(model.Product{Name: "B", Price: 2, Quantity: 1})

	require.Len(t, snap, 1)
	require.Equal(t, "A", l.Snapshot()[0].Name)
}
