package mapping

import (
	"errors"
	"fmt"
	"sort"
)

// Entry is one compiled correspondence between a source channel and a
// target attribute. Entries are immutable once the table is compiled.
type Entry struct {
	// Source channel id, unique within the table.
	Source string

	// Target attribute id in canonical "node.channel" form. Not unique:
	// entries sharing a target compose additively in the engine.
	Target string

	// TransformName is the resolved transform, empty for identity.
	TransformName string

	transform Func
}

// Apply runs the entry's value transform. Identity when none is set.
func (e Entry) Apply(v float64) float64 {
	if e.transform == nil {
		return v
	}

	return e.transform(v)
}

// Table is the compiled control name map. It is read-only during a
// transfer; nothing in the engine may mutate it.
type Table struct {
	version  string
	rigs     RigPair
	entries  []Entry
	bySource map[string]int
	ignore   map[string]struct{}
}

// Compile turns a parsed mapping file into a lookup table. The controls
// shorthand is expanded first (in sorted key order so compilation is
// deterministic), then the full entries. Duplicate source ids and
// unresolved transform names are compile errors.
func Compile(mf *MappingFile) (*Table, error) {
	if mf == nil {
		return nil, errors.New("mapping file is nil")
	}

	registry, err := BuildRegistry(mf.Transforms)
	if err != nil {
		return nil, err
	}

	t := &Table{
		version:  mf.Version,
		rigs:     mf.Rigs,
		bySource: make(map[string]int),
		ignore:   make(map[string]struct{}, len(mf.Ignore)),
	}

	if t.version == "" {
		t.version = "1"
	}

	shorthand := make([]string, 0, len(mf.Controls))
	for source := range mf.Controls {
		shorthand = append(shorthand, source)
	}

	sort.Strings(shorthand)

	for _, source := range shorthand {
		target, err := ParseAttrRef(mf.Controls[source])
		if err != nil {
			return nil, fmt.Errorf("control %q: %w", source, err)
		}

		if err := t.add(ControlMapping{Source: source, Target: target}, registry); err != nil {
			return nil, err
		}
	}

	for _, cm := range mf.Entries {
		if err := t.add(cm, registry); err != nil {
			return nil, err
		}
	}

	for _, id := range mf.Ignore {
		t.ignore[id] = struct{}{}
	}

	return t, nil
}

func (t *Table) add(cm ControlMapping, registry *Registry) error {
	if cm.Source == "" {
		return errors.New("mapping entry has no source channel")
	}

	if cm.Target.Node == "" {
		return fmt.Errorf("entry %q has no target attribute", cm.Source)
	}

	if _, exists := t.bySource[cm.Source]; exists {
		return fmt.Errorf("duplicate source channel %q", cm.Source)
	}

	entry := Entry{
		Source:        cm.Source,
		Target:        cm.Target.ID(),
		TransformName: cm.Transform,
	}

	if cm.Transform != "" {
		fn, ok := registry.Get(cm.Transform)
		if !ok {
			return fmt.Errorf("entry %q: unknown transform %q", cm.Source, cm.Transform)
		}

		entry.transform = fn
	}

	t.bySource[cm.Source] = len(t.entries)
	t.entries = append(t.entries, entry)

	return nil
}

// Lookup returns the entry for a source channel id in O(1).
func (t *Table) Lookup(sourceID string) (Entry, bool) {
	i, ok := t.bySource[sourceID]
	if !ok {
		return Entry{}, false
	}

	return t.entries[i], true
}

// Entries returns the compiled entries in table order.
func (t *Table) Entries() []Entry {
	return t.entries
}

// Len returns the number of compiled entries.
func (t *Table) Len() int {
	return len(t.entries)
}

// SourceIDs returns every mapped source channel id in sorted order.
func (t *Table) SourceIDs() []string {
	ids := make([]string, 0, len(t.bySource))
	for id := range t.bySource {
		ids = append(ids, id)
	}

	sort.Strings(ids)

	return ids
}

// Ignored reports whether a source channel is on the ignore list.
func (t *Table) Ignored(id string) bool {
	_, ok := t.ignore[id]
	return ok
}

// Version returns the mapping schema version.
func (t *Table) Version() string {
	return t.version
}

// Rigs returns the rig pair this table was authored for.
func (t *Table) Rigs() RigPair {
	return t.rigs
}
