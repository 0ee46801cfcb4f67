// Package inspect reads both sides of a transfer: the imported source
// hierarchy and the target control rig.
//
// Key capabilities:
//   - Deterministic enumeration of source channels (namespace-stripped,
//     sorted by id so results match the mapping table keys exactly)
//   - Target attribute resolution with a typed AttributeNotFound error,
//     since running against the wrong rig version must fail the whole
//     operation rather than produce a partial transfer
package inspect
