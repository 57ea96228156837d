package flextype_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mxher07/flextype"
	"github.com/Mxher07/flextype/kind"
	"github.com/Mxher07/flextype/options"
)

func TestDebugSnapshot(t *testing.T) {
	v, err := flextype.New("x", "42", options.LockBool)
	require.NoError(t, err)

	snap := v.Debug()
	assert.Equal(t, "x", snap.Name)
	assert.Equal(t, float64(42), snap.Value)
	assert.Equal(t, kind.KindNumber, snap.Type)
	assert.Equal(t, []kind.KindEnum{kind.KindString, kind.KindNumber}, snap.History)
	assert.Equal(t, options.LockEnum(options.LockBool), snap.Locks)
	assert.True(t, snap.IsLocked)
}

func TestDebugHistoryIsACopy(t *testing.T) {
	v := flextype.Wrap("42")

	snap := v.Debug()
	snap.History[0] = kind.KindNull

	assert.Equal(t, []kind.KindEnum{kind.KindString, kind.KindNumber}, v.Debug().History)
}

func TestDebugSharesContainers(t *testing.T) {
	v := flextype.Wrap(map[string]any{"a": 1})

	snap := v.Debug()
	snap.Value.(map[string]any)["a"] = 2

	a, err := v.Get("a")
	require.NoError(t, err)
	assert.Equal(t, 2, a.Value(), "container snapshots alias the live payload")
}

func TestDumpMentionsTheFields(t *testing.T) {
	out := flextype.Wrap("42").Debug().Dump()

	assert.Contains(t, out, "Name")
	assert.Contains(t, out, "unknown")
	assert.Contains(t, out, "History")
}

func TestExportDetachesFromWrapper(t *testing.T) {
	v, err := flextype.New("c", `{"items":[1]}`)
	require.NoError(t, err)

	exported := v.Export().(map[string]any)
	exported["items"].([]any)[0] = float64(99)

	items, err := v.Get("items")
	require.NoError(t, err)
	assert.Equal(t, []any{float64(1)}, items.Value(), "export must not alias the wrapper's containers")
}
