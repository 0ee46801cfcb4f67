// Package match normalizes animation channel identifiers and suggests
// near-miss mapping keys for unmapped channels.
//
// Naming-convention drift between the exporting tool and the mapping table
// (case changes, separator changes, a stray namespace or FBX axis suffix)
// is the most common real-world transfer failure. This package exists so
// those mismatches are surfaced with concrete suggestions instead of being
// silently dropped.
package match
