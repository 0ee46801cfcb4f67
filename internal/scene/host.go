package scene

import "errors"

// Ref identifies a hierarchy inside the host scene: an imported source or
// a rig already present in the scene. Refs are opaque to the core; only
// the host that issued one can interpret it.
type Ref string

// ErrAttributeNotFound is wrapped by hosts when a rig lacks a requested
// attribute. Callers detect it with errors.Is.
var ErrAttributeNotFound = errors.New("attribute not found")

// Host is the adapter over the animation tool's scene-graph API.
// Implementations must not require any ambient state: everything the core
// needs is identified by the Refs passed in.
type Host interface {
	// ImportSource brings the animation file at path into the scene and
	// returns a handle to the imported hierarchy.
	ImportSource(path string) (Ref, error)

	// SourceChannels enumerates every animated channel under the imported
	// hierarchy.
	SourceChannels(src Ref) ([]Channel, error)

	// RemoveSource deletes the imported hierarchy from the scene. It must
	// never touch anything outside that hierarchy.
	RemoveSource(src Ref) error

	// ResolveAttribute looks up a named attribute on a rig. The returned
	// error wraps ErrAttributeNotFound when the rig lacks the attribute.
	ResolveAttribute(rig Ref, attrID string) (Attr, error)
}

// Attr is a writable animatable attribute on the target rig.
type Attr interface {
	// ID returns the attribute identifier as the host knows it.
	ID() string

	// Keys returns the current keyframes in time order.
	Keys() []Keyframe

	// SetKey inserts a keyframe, keeping keys ordered by time. A key at an
	// already-keyed time replaces that key.
	SetKey(k Keyframe)

	// SetValue sets the unkeyed rest value of the attribute.
	SetValue(v float64)

	// Value returns the current rest value.
	Value() float64
}
