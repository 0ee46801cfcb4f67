// Package diagnostic provides structured warnings, errors, and
// informational notices accumulated during a transfer.
//
// Key capabilities:
//   - Unmapped channel notices with near-miss suggestions
//   - Malformed channel warnings isolated to one channel
//   - Fatal resolution errors (missing attribute, empty source)
//   - Cleanup failure warnings that never roll back applied keys
package diagnostic
