// Package scene defines the animation data model and the host adapter
// interface the transfer core depends on.
//
// Key capabilities:
//   - Keyframe/Channel types shared by every other package
//   - Host interface abstracting the scene-graph API of the animation tool
//     (import a source file, enumerate channels, resolve attributes,
//     remove the imported hierarchy)
//   - In-memory host implementation used by tests and the CLI
//   - JSON snapshots of sources and rigs for running transfers offline
//
// The core never talks to a live host session directly; it only sees the
// Host and Attr interfaces, so the current selection or any other ambient
// scene state must be resolved by the caller and passed in explicitly.
package scene
