package mapping

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultChannel is the board channel assumed when a target attribute is
// written without one. Board controls travel along translateY unless the
// table says otherwise.
const DefaultChannel = "ty"

// MappingFile represents the root of a YAML mapping definition file.
// This is the authoritative, human-reviewed mapping configuration.
type MappingFile struct {
	// Version of the mapping schema (for cross-rig-version compatibility).
	Version string `yaml:"version,omitempty"`

	// Rigs names the rig pair this table was authored for.
	Rigs RigPair `yaml:"rigs,omitempty"`

	// Controls is a simplified mapping syntax where keys are source channel
	// ids and values are target attribute ids. 1:1 only, no transform.
	Controls map[string]string `yaml:"controls,omitempty"`

	// Entries defines explicit channel mappings with full control,
	// including named value transforms and shared targets.
	Entries []ControlMapping `yaml:"entries,omitempty"`

	// Ignore lists source channels that are deliberately never
	// transferred (rig logic switches, GUI helpers and the like).
	Ignore []string `yaml:"ignore,omitempty"`

	// Transforms defines custom value transforms available for use.
	Transforms []TransformDef `yaml:"transforms,omitempty"`
}

// RigPair names the source and target rig flavors of a mapping table.
type RigPair struct {
	Source string `yaml:"source,omitempty"`
	Target string `yaml:"target,omitempty"`
}

// ControlMapping maps one source channel onto one target attribute.
// Several mappings may share a target; their values compose additively.
type ControlMapping struct {
	// Source channel id as the exporter names it.
	Source string `yaml:"source"`

	// Target attribute on the control board.
	Target AttrRef `yaml:"target"`

	// Transform names a registered value transform applied to every key
	// value before it lands on the target. Empty means identity.
	Transform string `yaml:"transform,omitempty"`
}

// AttrRef identifies a target attribute as a board node plus a channel.
type AttrRef struct {
	Node    string `yaml:"node"`
	Channel string `yaml:"channel,omitempty"`
}

// ID returns the canonical attribute id ("node.channel").
func (r AttrRef) ID() string {
	channel := r.Channel
	if channel == "" {
		channel = DefaultChannel
	}

	return r.Node + "." + channel
}

// ParseAttrRef parses a bare attribute string. "CTRL_jawOpen.ty" splits on
// the last dot; "CTRL_jawOpen" gets the default channel.
func ParseAttrRef(s string) (AttrRef, error) {
	if s == "" {
		return AttrRef{}, errors.New("empty target attribute")
	}

	i := strings.LastIndexByte(s, '.')
	if i < 0 {
		return AttrRef{Node: s, Channel: DefaultChannel}, nil
	}

	if i == 0 || i == len(s)-1 {
		return AttrRef{}, fmt.Errorf("malformed target attribute %q", s)
	}

	return AttrRef{Node: s[:i], Channel: s[i+1:]}, nil
}

// UnmarshalYAML accepts either a bare string ("CTRL_jawOpen.ty") or a map
// ({node: CTRL_jawOpen, channel: ty}).
func (r *AttrRef) UnmarshalYAML(unmarshal func(any) error) error {
	var s string
	if err := unmarshal(&s); err == nil {
		parsed, err := ParseAttrRef(s)
		if err != nil {
			return err
		}

		*r = parsed

		return nil
	}

	var full struct {
		Node    string `yaml:"node"`
		Channel string `yaml:"channel"`
	}

	if err := unmarshal(&full); err != nil {
		return errors.New("expected attribute string or {node, channel} map")
	}

	if full.Node == "" {
		return errors.New("target attribute is missing a node")
	}

	if full.Channel == "" {
		full.Channel = DefaultChannel
	}

	*r = AttrRef{Node: full.Node, Channel: full.Channel}

	return nil
}

// MarshalYAML emits the compact string form.
func (r AttrRef) MarshalYAML() (any, error) {
	return r.ID(), nil
}
