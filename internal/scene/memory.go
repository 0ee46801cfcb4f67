package scene

import (
	"fmt"
	"sort"
)

// MemHost is an in-memory Host. Tests and the CLI register importable
// source files and rigs up front, then run the transfer against it exactly
// as they would against a live session.
type MemHost struct {
	files      map[string][]Channel
	sources    map[Ref][]Channel
	rigs       map[Ref]*MemRig
	nextSource int

	// FailRemoval makes every RemoveSource call return an error without
	// removing anything, simulating a host that refuses to delete the
	// imported hierarchy (e.g. an unexpected external reference).
	FailRemoval bool
}

// NewMemHost returns an empty in-memory host.
func NewMemHost() *MemHost {
	return &MemHost{
		files:   make(map[string][]Channel),
		sources: make(map[Ref][]Channel),
		rigs:    make(map[Ref]*MemRig),
	}
}

// AddSourceFile registers an importable animation file under path.
func (h *MemHost) AddSourceFile(path string, channels []Channel) {
	h.files[path] = channels
}

// AddRig installs a rig with the given attributes, all unkeyed at value 0,
// and returns its handle.
func (h *MemHost) AddRig(name string, attrIDs ...string) Ref {
	rig := &MemRig{name: name, attrs: make(map[string]*MemAttr, len(attrIDs))}
	for _, id := range attrIDs {
		rig.attrs[id] = &MemAttr{id: id}
	}

	ref := Ref(name)
	h.rigs[ref] = rig

	return ref
}

// Rig returns an installed rig by handle, or nil.
func (h *MemHost) Rig(rig Ref) *MemRig {
	return h.rigs[rig]
}

// SourceCount returns how many imported sources are still in the scene.
func (h *MemHost) SourceCount() int {
	return len(h.sources)
}

// HasSource reports whether an imported source is still present.
func (h *MemHost) HasSource(src Ref) bool {
	_, ok := h.sources[src]
	return ok
}

// ImportSource implements Host. The channels are deep-copied so later key
// writes can never leak back into the registered file.
func (h *MemHost) ImportSource(path string) (Ref, error) {
	channels, ok := h.files[path]
	if !ok {
		return "", fmt.Errorf("cannot import %s: no such file", path)
	}

	h.nextSource++
	src := Ref(fmt.Sprintf("source#%d", h.nextSource))
	h.sources[src] = copyChannels(channels)

	return src, nil
}

// SourceChannels implements Host.
func (h *MemHost) SourceChannels(src Ref) ([]Channel, error) {
	channels, ok := h.sources[src]
	if !ok {
		return nil, fmt.Errorf("unknown source %s", src)
	}

	return copyChannels(channels), nil
}

// RemoveSource implements Host.
func (h *MemHost) RemoveSource(src Ref) error {
	if _, ok := h.sources[src]; !ok {
		return fmt.Errorf("unknown source %s", src)
	}

	if h.FailRemoval {
		return fmt.Errorf("host refused to remove %s: hierarchy is externally referenced", src)
	}

	delete(h.sources, src)

	return nil
}

// ResolveAttribute implements Host.
func (h *MemHost) ResolveAttribute(rig Ref, attrID string) (Attr, error) {
	r, ok := h.rigs[rig]
	if !ok {
		return nil, fmt.Errorf("unknown rig %s", rig)
	}

	attr, ok := r.attrs[attrID]
	if !ok {
		return nil, fmt.Errorf("rig %s has no %s: %w", rig, attrID, ErrAttributeNotFound)
	}

	return attr, nil
}

// MemRig is a rig held by MemHost.
type MemRig struct {
	name  string
	attrs map[string]*MemAttr
}

// Name returns the rig name.
func (r *MemRig) Name() string {
	return r.name
}

// Attr returns an attribute by id, or nil.
func (r *MemRig) Attr(id string) *MemAttr {
	return r.attrs[id]
}

// AttrIDs returns the rig's attribute ids in sorted order.
func (r *MemRig) AttrIDs() []string {
	ids := make([]string, 0, len(r.attrs))
	for id := range r.attrs {
		ids = append(ids, id)
	}

	sort.Strings(ids)

	return ids
}

// MemAttr is a writable attribute on a MemRig.
type MemAttr struct {
	id    string
	value float64
	keys  []Keyframe
}

// ID implements Attr.
func (a *MemAttr) ID() string {
	return a.id
}

// Value implements Attr.
func (a *MemAttr) Value() float64 {
	return a.value
}

// SetValue implements Attr.
func (a *MemAttr) SetValue(v float64) {
	a.value = v
}

// Keys implements Attr. The returned slice is a copy.
func (a *MemAttr) Keys() []Keyframe {
	out := make([]Keyframe, len(a.keys))
	copy(out, a.keys)

	return out
}

// SetKey implements Attr.
func (a *MemAttr) SetKey(k Keyframe) {
	i := sort.Search(len(a.keys), func(i int) bool {
		return a.keys[i].Time >= k.Time
	})

	if i < len(a.keys) && a.keys[i].Time == k.Time {
		a.keys[i] = k
		return
	}

	a.keys = append(a.keys, Keyframe{})
	copy(a.keys[i+1:], a.keys[i:])
	a.keys[i] = k
}

func copyChannels(channels []Channel) []Channel {
	out := make([]Channel, len(channels))
	for i, c := range channels {
		keys := make([]Keyframe, len(c.Keys))
		copy(keys, c.Keys)
		out[i] = Channel{ID: c.ID, Keys: keys}
	}

	return out
}
