package scene

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRigSnapshotRoundTrip(t *testing.T) {
	h := NewMemHost()
	rig := h.AddRig("face", "CTRL_jawOpen.ty", "CTRL_browUp.ty")

	attr, err := h.ResolveAttribute(rig, "CTRL_jawOpen.ty")
	require.NoError(t, err)
	attr.SetKey(Keyframe{Time: 0, Value: 0.2})
	attr.SetKey(Keyframe{Time: 10, Value: 0.8, Tangent: &Tangent{OutAngle: 45}})

	snap, err := h.Snapshot(rig)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "rig.json")
	require.NoError(t, WriteRigSnapshot(snap, path))

	loaded, err := LoadRigSnapshot(path)
	require.NoError(t, err)
	assert.Equal(t, snap, loaded)

	// Reinstalling the snapshot reproduces the same attribute state.
	h2 := NewMemHost()
	rig2 := h2.LoadRig(loaded)
	attr2, err := h2.ResolveAttribute(rig2, "CTRL_jawOpen.ty")
	require.NoError(t, err)
	assert.Equal(t, attr.Keys(), attr2.Keys())
}

func TestLoadSourceSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "source.json")
	data := `{
  "name": "baked_face_take",
  "channels": [
    {"id": "jaw_open", "keys": [{"time": 0, "value": 0}, {"time": 10, "value": 1}]}
  ]
}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	snap, err := LoadSourceSnapshot(path)
	require.NoError(t, err)
	assert.Equal(t, "baked_face_take", snap.Name)
	require.Len(t, snap.Channels, 1)
	assert.Equal(t, "jaw_open", snap.Channels[0].ID)
	assert.Len(t, snap.Channels[0].Keys, 2)
}

func TestLoadSourceSnapshotErrors(t *testing.T) {
	_, err := LoadSourceSnapshot(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err = LoadSourceSnapshot(path)
	assert.Error(t, err)
}
