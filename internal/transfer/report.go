package transfer

import (
	"fmt"
	"time"

	"facial-transfer/internal/diagnostic"
)

// EntryStatus is the per-mapping-entry outcome of a transfer.
type EntryStatus int

const (
	// StatusCopied means the entry's keys landed on the target attribute.
	StatusCopied EntryStatus = iota
	// StatusSkipped means the source had no channel for this entry.
	StatusSkipped
	// StatusFailed means the channel existed but could not be copied.
	StatusFailed
)

// String returns a human-readable status name.
func (s EntryStatus) String() string {
	switch s {
	case StatusCopied:
		return "mapped-and-copied"
	case StatusSkipped:
		return "skipped-unmapped"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// EntryResult is the outcome of one mapping entry.
type EntryResult struct {
	Source string
	Target string
	Status EntryStatus
	// Keys is the number of keyframes copied for this entry.
	Keys int
	// Reason explains a skip or failure.
	Reason string
}

// Report accumulates everything a transfer did and noticed.
type Report struct {
	// Counts by entry status.
	Copied  int
	Skipped int
	Failed  int

	// Entries holds per-mapping-entry outcomes in table order.
	Entries []EntryResult

	// Unmapped lists source channels with no table entry, in sorted
	// order. Informational: the export usually carries channels (root
	// transform, eyelook joints) with no board equivalent.
	Unmapped []string

	// StartFrame and EndFrame bound the copied keys. Only meaningful
	// when Copied > 0.
	StartFrame float64
	EndFrame   float64

	// CleanupFailed is set when the host refused to remove the imported
	// source hierarchy; the applied keys stay in place regardless.
	CleanupFailed bool

	Elapsed time.Duration

	Diags diagnostic.Diagnostics

	ranged bool
}

// NewReport returns an empty report.
func NewReport() *Report {
	return &Report{}
}

func (r *Report) addEntry(er EntryResult) {
	r.Entries = append(r.Entries, er)

	switch er.Status {
	case StatusCopied:
		r.Copied++
	case StatusSkipped:
		r.Skipped++
	case StatusFailed:
		r.Failed++
	}
}

func (r *Report) widenRange(start, end float64) {
	if !r.ranged || start < r.StartFrame {
		r.StartFrame = start
	}

	if !r.ranged || end > r.EndFrame {
		r.EndFrame = end
	}

	r.ranged = true
}

// Summary returns a one-line description of the transfer outcome.
func (r *Report) Summary() string {
	s := fmt.Sprintf("copied %d, skipped %d, failed %d, unmapped %d",
		r.Copied, r.Skipped, r.Failed, len(r.Unmapped))

	if r.Copied > 0 {
		s += fmt.Sprintf(" (frames %g..%g)", r.StartFrame, r.EndFrame)
	}

	return s
}
