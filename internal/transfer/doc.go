// Package transfer copies keyed animation from mapped source channels
// onto target control board attributes, and owns the lifecycle of one
// transfer operation.
//
// The engine is deliberately conservative:
//   - Every required target attribute is resolved before the first key is
//     written, so a missing attribute aborts with zero mutations.
//   - A channel with malformed key times fails alone; unrelated channels
//     still complete.
//   - Re-running the same transfer against the same target yields the same
//     curves (same-time keys overwrite, keys outside the copied range are
//     never touched).
//
// Session drives one operation through its states:
//
//	Idle -> SourceLoaded -> Inspected -> Transferring
//	     -> {Completed | Aborted} -> CleanedUp
//
// CleanedUp is the only terminal state and is reached from both Completed
// and Aborted: the imported source hierarchy is removed on every exit
// path. A failed removal is reported but never rolls back applied keys.
package transfer
