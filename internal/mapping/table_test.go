package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(f float64) *float64 { return &f }

func TestCompile(t *testing.T) {
	mf := &MappingFile{
		Version: "2",
		Controls: map[string]string{
			"jaw_open": "CTRL_jawOpen",
			"brow_up":  "CTRL_browUp.ty",
		},
		Entries: []ControlMapping{
			{Source: "eye_look_down", Target: AttrRef{Node: "CTRL_eye"}, Transform: "negate"},
		},
		Ignore: []string{"root_transform"},
	}

	table, err := Compile(mf)
	require.NoError(t, err)
	assert.Equal(t, "2", table.Version())
	assert.Equal(t, 3, table.Len())

	// Shorthand expands in sorted key order, before full entries.
	entries := table.Entries()
	assert.Equal(t, "brow_up", entries[0].Source)
	assert.Equal(t, "jaw_open", entries[1].Source)
	assert.Equal(t, "eye_look_down", entries[2].Source)

	e, ok := table.Lookup("jaw_open")
	require.True(t, ok)
	assert.Equal(t, "CTRL_jawOpen.ty", e.Target)
	assert.Equal(t, 0.25, e.Apply(0.25), "identity transform")

	e, ok = table.Lookup("eye_look_down")
	require.True(t, ok)
	assert.Equal(t, "negate", e.TransformName)
	assert.Equal(t, -0.25, e.Apply(0.25))

	_, ok = table.Lookup("eye_blink")
	assert.False(t, ok)

	assert.True(t, table.Ignored("root_transform"))
	assert.False(t, table.Ignored("jaw_open"))

	assert.Equal(t, []string{"brow_up", "eye_look_down", "jaw_open"}, table.SourceIDs())
}

func TestCompileDuplicateSource(t *testing.T) {
	mf := &MappingFile{
		Controls: map[string]string{"jaw_open": "CTRL_jawOpen"},
		Entries: []ControlMapping{
			{Source: "jaw_open", Target: AttrRef{Node: "CTRL_other"}},
		},
	}

	_, err := Compile(mf)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate source channel")
}

func TestCompileSharedTargetAllowed(t *testing.T) {
	mf := &MappingFile{
		Entries: []ControlMapping{
			{Source: "corner_pull", Target: AttrRef{Node: "CTRL_corner"}},
			{Source: "corner_depress", Target: AttrRef{Node: "CTRL_corner"}, Transform: "negate"},
		},
	}

	table, err := Compile(mf)
	require.NoError(t, err)
	assert.Equal(t, 2, table.Len())
}

func TestCompileUnknownTransform(t *testing.T) {
	mf := &MappingFile{
		Entries: []ControlMapping{
			{Source: "jaw_open", Target: AttrRef{Node: "CTRL_jawOpen"}, Transform: "wobble"},
		},
	}

	_, err := Compile(mf)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown transform "wobble"`)
}

func TestCompileRejectsBadEntries(t *testing.T) {
	tests := []struct {
		name string
		mf   *MappingFile
	}{
		{"nil file", nil},
		{"no source", &MappingFile{Entries: []ControlMapping{{Target: AttrRef{Node: "CTRL_x"}}}}},
		{"no target", &MappingFile{Entries: []ControlMapping{{Source: "jaw_open"}}}},
		{"bad shorthand target", &MappingFile{Controls: map[string]string{"jaw_open": ""}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compile(tt.mf)
			assert.Error(t, err)
		})
	}
}

func TestBuildRegistry(t *testing.T) {
	registry, err := BuildRegistry([]TransformDef{
		{Name: "half", Scale: ptr(0.5)},
		{Name: "bias", Offset: 1},
	})
	require.NoError(t, err)

	fn, ok := registry.Get("half")
	require.True(t, ok)
	assert.Equal(t, 0.5, fn(1))

	// Scale defaults to 1, so "bias" is a pure offset.
	fn, ok = registry.Get("bias")
	require.True(t, ok)
	assert.Equal(t, 3.0, fn(2))

	// negate is builtin.
	fn, ok = registry.Get("negate")
	require.True(t, ok)
	assert.Equal(t, -2.0, fn(2))

	assert.Equal(t, []string{"bias", "half", "negate"}, registry.Names())
}

func TestBuildRegistryRejectsDuplicates(t *testing.T) {
	_, err := BuildRegistry([]TransformDef{{Name: "half"}, {Name: "half"}})
	assert.Error(t, err)

	// Builtins cannot be shadowed.
	_, err = BuildRegistry([]TransformDef{{Name: "negate", Scale: ptr(2)}})
	assert.Error(t, err)

	_, err = BuildRegistry([]TransformDef{{}})
	assert.Error(t, err)
}

func TestDefaultTable(t *testing.T) {
	table, err := Default()
	require.NoError(t, err)
	assert.Equal(t, "2", table.Version())
	assert.Equal(t, "face_control_board", table.Rigs().Target)
	assert.Greater(t, table.Len(), 30)

	e, ok := table.Lookup("CTRL_expressions_jawOpen")
	require.True(t, ok)
	assert.Equal(t, "CTRL_C_jaw.ty", e.Target)

	// Right-side jaw travel lands on the same cell, negated.
	e, ok = table.Lookup("CTRL_expressions_jawRight")
	require.True(t, ok)
	assert.Equal(t, "CTRL_C_jaw.tx", e.Target)
	assert.Equal(t, -1.0, e.Apply(1))

	assert.True(t, table.Ignored("CTRL_faceGUI"))
}
