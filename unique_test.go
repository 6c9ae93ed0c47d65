package workspace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnique_ZeroValue(t *testing.T) {
	var u Unique
	assert.NotPanics(t, func() { u.Release() })
	assert.Nil(t, u.Get().Host.Data)

	var nilU *Unique
	assert.NotPanics(t, func() { nilU.Release() })
}

func TestUnique_Release(t *testing.T) {
	t.Run("runs action exactly once", func(t *testing.T) {
		calls := 0
		ws := Workspace{Host: Block{Data: []byte{1, 2, 3}, Req: MemReq(3, 1)}}
		u := NewUnique(ws, func(w *Workspace) {
			calls++
			w.Host.Data = nil
		})

		u.Release()
		u.Release()
		u.Release()
		assert.Equal(t, 1, calls)
	})

	t.Run("clears workspace", func(t *testing.T) {
		ws := Workspace{
			Host:   Block{Data: []byte{1}, Req: MemReq(1, 1)},
			Pinned: Block{Data: []byte{2}, Req: MemReq(1, 1)},
			Device: Block{Data: []byte{3}, Req: MemReq(1, 1)},
		}
		u := NewUnique(ws, func(*Workspace) {})

		require.NotNil(t, u.Get().Host.Data)
		u.Release()

		got := u.Get()
		assert.Nil(t, got.Host.Data)
		assert.Nil(t, got.Pinned.Data)
		assert.Nil(t, got.Device.Data)
		assert.Zero(t, got.Host.Req)
		assert.Nil(t, got.Device.Ready)
	})

	t.Run("no action is a no-op", func(t *testing.T) {
		u := NewUnique(Workspace{}, nil)
		assert.NotPanics(t, func() { u.Release() })
	})
}

func TestUnique_Move(t *testing.T) {
	calls := 0
	data := []byte{1, 2, 3}
	u := NewUnique(Workspace{Host: Block{Data: data, Req: MemReq(3, 1)}}, func(*Workspace) {
		calls++
	})

	moved := u.Move()

	// Source is empty; releasing it is a no-op.
	assert.Nil(t, u.Get().Host.Data)
	u.Release()
	assert.Equal(t, 0, calls)

	// Destination owns the original blocks and releases them exactly once.
	assert.Equal(t, data, moved.Get().Host.Data)
	moved.Release()
	moved.Release()
	assert.Equal(t, 1, calls)
}

func TestWorkspace_BlockFor(t *testing.T) {
	var ws Workspace
	ws.Host.Req = MemReq(1, 1)
	ws.Pinned.Req = MemReq(2, 2)
	ws.Device.Req = MemReq(4, 4)

	assert.Equal(t, &ws.Host, ws.BlockFor(SpaceHost))
	assert.Equal(t, &ws.Pinned, ws.BlockFor(SpacePinned))
	assert.Equal(t, &ws.Device, ws.BlockFor(SpaceDevice))
}

func TestSpace_String(t *testing.T) {
	assert.Equal(t, "host", SpaceHost.String())
	assert.Equal(t, "pinned", SpacePinned.String())
	assert.Equal(t, "device", SpaceDevice.String())
	assert.Equal(t, "unknown", Space(99).String())
}
