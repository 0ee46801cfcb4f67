package scene

import (
	"encoding/json"
	"fmt"
	"os"
)

// SourceSnapshot is the JSON form of an exported animation source: just a
// set of named channels, the same shape the host exposes after an import.
type SourceSnapshot struct {
	Name     string    `json:"name,omitempty"`
	Channels []Channel `json:"channels"`
}

// RigSnapshot is the JSON form of a control rig's animatable state.
type RigSnapshot struct {
	Name       string         `json:"name"`
	Attributes []AttrSnapshot `json:"attributes"`
}

// AttrSnapshot captures one attribute's rest value and keys.
type AttrSnapshot struct {
	ID    string     `json:"id"`
	Value float64    `json:"value"`
	Keys  []Keyframe `json:"keys,omitempty"`
}

// LoadSourceSnapshot reads a source snapshot from a JSON file.
func LoadSourceSnapshot(path string) (*SourceSnapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read source snapshot %s: %w", path, err)
	}

	var snap SourceSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to parse source snapshot %s: %w", path, err)
	}

	return &snap, nil
}

// LoadRigSnapshot reads a rig snapshot from a JSON file.
func LoadRigSnapshot(path string) (*RigSnapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rig snapshot %s: %w", path, err)
	}

	var snap RigSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to parse rig snapshot %s: %w", path, err)
	}

	return &snap, nil
}

// WriteRigSnapshot writes a rig snapshot as indented JSON.
func WriteRigSnapshot(snap *RigSnapshot, path string) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal rig snapshot: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write rig snapshot %s: %w", path, err)
	}

	return nil
}

// LoadRig installs a rig from a snapshot and returns its handle.
func (h *MemHost) LoadRig(snap *RigSnapshot) Ref {
	rig := &MemRig{name: snap.Name, attrs: make(map[string]*MemAttr, len(snap.Attributes))}

	for _, as := range snap.Attributes {
		attr := &MemAttr{id: as.ID, value: as.Value}
		for _, k := range as.Keys {
			attr.SetKey(k)
		}

		rig.attrs[as.ID] = attr
	}

	ref := Ref(snap.Name)
	h.rigs[ref] = rig

	return ref
}

// Snapshot captures the current state of an installed rig.
func (h *MemHost) Snapshot(rig Ref) (*RigSnapshot, error) {
	r, ok := h.rigs[rig]
	if !ok {
		return nil, fmt.Errorf("unknown rig %s", rig)
	}

	snap := &RigSnapshot{Name: r.name}
	for _, id := range r.AttrIDs() {
		attr := r.attrs[id]
		snap.Attributes = append(snap.Attributes, AttrSnapshot{
			ID:    id,
			Value: attr.value,
			Keys:  attr.Keys(),
		})
	}

	return snap, nil
}
