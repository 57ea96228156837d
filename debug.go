package flextype

import (
	"github.com/davecgh/go-spew/spew"

	"github.com/Mxher07/flextype/kind"
	"github.com/Mxher07/flextype/options"
)

// Snapshot is a point-in-time view of a wrapper for debugging. History
// and lock flags are copies; a container Value is shared by reference,
// mirroring the aliasing policy of the collection operations.
type Snapshot struct {
	Name     string
	Value    any
	Type     kind.KindEnum
	History  []kind.KindEnum
	Locks    options.LockEnum
	IsLocked bool
}

// Debug captures a snapshot of the wrapper.
func (v *Value) Debug() Snapshot {
	return Snapshot{
		Name:     v.name,
		Value:    v.Value(),
		Type:     v.kind,
		History:  v.TypeHistory(),
		Locks:    v.locks,
		IsLocked: v.IsLocked(),
	}
}

// Dump renders the snapshot with spew, nested containers included.
func (s Snapshot) Dump() string {
	return spew.Sdump(s)
}
