package mapping

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	yaml := `
version: "2"
rigs:
  source: metahuman_anim_sequence
  target: face_control_board
controls:
  CTRL_expressions_jawOpen: CTRL_C_jaw.ty
  CTRL_expressions_browRaiseInL: CTRL_L_brow_raiseIn
entries:
  - source: CTRL_expressions_jawRight
    target: CTRL_C_jaw.tx
    transform: negate
  - source: CTRL_expressions_eyeLookLeftL
    target: {node: CTRL_L_eye, channel: tx}
ignore:
  - CTRL_faceGUI
transforms:
  - name: eyeLookScale
    scale: 0.5
    description: Eye look channels travel half the board cell height.
`

	mf, err := Parse([]byte(yaml))
	require.NoError(t, err)
	require.NotNil(t, mf)

	assert.Equal(t, "2", mf.Version)
	assert.Equal(t, "metahuman_anim_sequence", mf.Rigs.Source)
	assert.Equal(t, "face_control_board", mf.Rigs.Target)

	// Shorthand controls
	assert.Len(t, mf.Controls, 2)
	assert.Equal(t, "CTRL_C_jaw.ty", mf.Controls["CTRL_expressions_jawOpen"])

	// Full entries; both target syntaxes parse to the same shape
	require.Len(t, mf.Entries, 2)
	assert.Equal(t, "CTRL_expressions_jawRight", mf.Entries[0].Source)
	assert.Equal(t, AttrRef{Node: "CTRL_C_jaw", Channel: "tx"}, mf.Entries[0].Target)
	assert.Equal(t, "negate", mf.Entries[0].Transform)
	assert.Equal(t, AttrRef{Node: "CTRL_L_eye", Channel: "tx"}, mf.Entries[1].Target)

	assert.Equal(t, []string{"CTRL_faceGUI"}, mf.Ignore)

	require.Len(t, mf.Transforms, 1)
	tr := mf.Transforms[0]
	assert.Equal(t, "eyeLookScale", tr.Name)
	require.NotNil(t, tr.Scale)
	assert.Equal(t, 0.5, *tr.Scale)
}

func TestParseMinimal(t *testing.T) {
	yaml := `
controls:
  jaw_open: CTRL_jawOpen
`

	mf, err := Parse([]byte(yaml))
	require.NoError(t, err)

	assert.Equal(t, "1", mf.Version) // Default version
	assert.Equal(t, "CTRL_jawOpen", mf.Controls["jaw_open"])
}

func TestParseAttrRef(t *testing.T) {
	tests := []struct {
		input    string
		expected AttrRef
		wantErr  bool
	}{
		{input: "CTRL_jawOpen.ty", expected: AttrRef{Node: "CTRL_jawOpen", Channel: "ty"}},
		{input: "CTRL_jawOpen", expected: AttrRef{Node: "CTRL_jawOpen", Channel: "ty"}},
		{input: "CTRL_L_eye.tx", expected: AttrRef{Node: "CTRL_L_eye", Channel: "tx"}},
		{input: "", wantErr: true},
		{input: ".ty", wantErr: true},
		{input: "CTRL_jawOpen.", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result, err := ParseAttrRef(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			}
		})
	}
}

func TestEntryTargetDefaultChannel(t *testing.T) {
	yaml := `
entries:
  - source: jaw_open
    target: {node: CTRL_jawOpen}
`

	mf, err := Parse([]byte(yaml))
	require.NoError(t, err)
	require.Len(t, mf.Entries, 1)
	assert.Equal(t, "CTRL_jawOpen.ty", mf.Entries[0].Target.ID())
}

func TestMarshalRoundTrip(t *testing.T) {
	mf := &MappingFile{
		Version: "2",
		Rigs:    RigPair{Source: "a", Target: "b"},
		Controls: map[string]string{
			"jaw_open": "CTRL_jawOpen.ty",
		},
		Entries: []ControlMapping{
			{Source: "eye_blink", Target: AttrRef{Node: "CTRL_eyeBlink", Channel: "ty"}, Transform: "negate"},
		},
		Ignore: []string{"CTRL_faceGUI"},
	}

	data, err := Marshal(mf)
	require.NoError(t, err)
	assert.Contains(t, string(data), "CTRL_eyeBlink.ty")

	parsed, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, mf.Version, parsed.Version)
	assert.Equal(t, mf.Controls, parsed.Controls)
	assert.Equal(t, mf.Entries, parsed.Entries)
	assert.Equal(t, mf.Ignore, parsed.Ignore)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "map.yaml")
	mf := &MappingFile{Controls: map[string]string{"jaw_open": "CTRL_jawOpen"}}
	require.NoError(t, WriteFile(mf, path))

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "CTRL_jawOpen", loaded.Controls["jaw_open"])

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestParseInvalidYAML(t *testing.T) {
	_, err := Parse([]byte("controls: ["))
	assert.Error(t, err)
}
