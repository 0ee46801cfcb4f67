package inspect

import (
	"errors"
	"fmt"

	"facial-transfer/internal/match"
	"facial-transfer/internal/scene"
)

// AttributeNotFoundError reports a target rig missing an attribute the
// mapping table expects. This fails the whole operation: a partial
// transfer against the wrong rig looks complete and corrupts animation.
type AttributeNotFoundError struct {
	Attribute string
}

// Error implements error.
func (e *AttributeNotFoundError) Error() string {
	return fmt.Sprintf("target rig has no attribute %q (wrong rig version?)", e.Attribute)
}

// Inspector reads scene state through the host adapter.
type Inspector struct {
	host scene.Host
}

// New returns an Inspector over the given host.
func New(host scene.Host) Inspector {
	return Inspector{host: host}
}

// SourceChannels enumerates the animated channels of an imported source.
// Channel ids are stripped of any host namespace and the result is sorted
// by id, so the same source always produces the same listing and ids line
// up with mapping table keys.
func (i Inspector) SourceChannels(src scene.Ref) ([]scene.Channel, error) {
	channels, err := i.host.SourceChannels(src)
	if err != nil {
		return nil, fmt.Errorf("failed to list source channels: %w", err)
	}

	for j := range channels {
		channels[j].ID = match.StripNamespace(channels[j].ID)
	}

	scene.SortChannels(channels)

	return channels, nil
}

// ResolveAttribute resolves a target attribute on the rig. A missing
// attribute comes back as *AttributeNotFoundError; any other host failure
// is passed through wrapped.
func (i Inspector) ResolveAttribute(rig scene.Ref, attrID string) (scene.Attr, error) {
	attr, err := i.host.ResolveAttribute(rig, attrID)
	if err != nil {
		if errors.Is(err, scene.ErrAttributeNotFound) {
			return nil, &AttributeNotFoundError{Attribute: attrID}
		}

		return nil, fmt.Errorf("failed to resolve %s: %w", attrID, err)
	}

	return attr, nil
}
