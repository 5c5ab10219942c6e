package jsexp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestD(t *testing.T) {
	t.Run("empty document", func(t *testing.T) {
		var d D
		require.Len(t, d, 0)
		require.Nil(t, d) // zero value of D is nil slice
	})

	t.Run("initialized document is not nil", func(t *testing.T) {
		d := D{}
		require.Len(t, d, 0)
		require.NotNil(t, d) // D{} creates a non-nil empty slice
	})

	t.Run("multiple entry document preserves order", func(t *testing.T) {
		d := D{
			{Key: "first", Value: 1},
			{Key: "second", Value: 2},
			{Key: "third", Value: 3},
		}
		require.Len(t, d, 3)
		require.Equal(t, "first", d[0].Key)
		require.Equal(t, "second", d[1].Key)
		require.Equal(t, "third", d[2].Key)
	})

	t.Run("document can contain any value types", func(t *testing.T) {
		nested := D{{Key: "nested", Value: "value"}}
		arr := A{1, 2, 3}
		d := D{
			{Key: "string", Value: "text"},
			{Key: "number", Value: 42},
			{Key: "boolean", Value: true},
			{Key: "null", Value: nil},
			{Key: "document", Value: nested},
			{Key: "array", Value: arr},
		}
		require.Len(t, d, 6)
		require.Equal(t, nested, d[4].Value)
		require.Equal(t, arr, d[5].Value)
	})
}

func TestA(t *testing.T) {
	t.Run("empty array", func(t *testing.T) {
		var a A
		require.Len(t, a, 0)
		require.Nil(t, a)
	})

	t.Run("multiple element array preserves order", func(t *testing.T) {
		a := A{"first", "second", "third"}
		require.Len(t, a, 3)
		require.Equal(t, "first", a[0])
		require.Equal(t, "second", a[1])
		require.Equal(t, "third", a[2])
	})
}
