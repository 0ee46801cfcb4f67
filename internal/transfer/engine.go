package transfer

import (
	"sort"
	"time"

	"facial-transfer/internal/common"
	"facial-transfer/internal/diagnostic"
	"facial-transfer/internal/inspect"
	"facial-transfer/internal/mapping"
	"facial-transfer/internal/match"
	"facial-transfer/internal/scene"
)

// maxSuggestions caps the near-miss keys offered per unmapped channel.
const maxSuggestions = 3

// Options tune how keys land on the target.
type Options struct {
	// PreserveTangents carries source tangent metadata onto the written
	// keys. When false (or when the source has none), the target keeps
	// its own default interpolation.
	PreserveTangents bool

	// ZeroOutControls resets every mapped target attribute to its rest
	// value 0 before keys are applied, so stale poses never bleed into
	// the transferred take.
	ZeroOutControls bool
}

// DefaultOptions carries tangents and leaves rest values alone.
func DefaultOptions() Options {
	return Options{PreserveTangents: true}
}

// Transfer copies every mapped source channel onto the target rig and
// returns a report of what happened. The mapping table is never mutated.
//
// Failure behavior follows the channel isolation rules: a missing target
// attribute aborts the whole operation before any write; a malformed
// channel fails alone; unmapped channels are informational only.
func Transfer(
	host scene.Host,
	channels []scene.Channel,
	targetRig scene.Ref,
	table *mapping.Table,
	opts Options,
) (*Report, error) {
	started := time.Now()
	report := NewReport()

	defer func() {
		report.Elapsed = time.Since(started)
	}()

	if common.IsEmpty(channels) {
		report.Diags.AddError(diagnostic.CodeEmptySource, ErrEmptySource.Error(), "", "")
		return report, ErrEmptySource
	}

	byID := make(map[string]scene.Channel, len(channels))
	for _, ch := range channels {
		byID[ch.ID] = ch
	}

	insp := inspect.New(host)

	// Plan phase: resolve every attribute and transform every channel
	// before the first write, so resolution failures abort with the
	// target completely untouched.
	type planned struct {
		entry mapping.Entry
		keys  []scene.Keyframe
	}

	var plan []planned

	attrs := make(map[string]scene.Attr)

	var targetOrder []string

	for _, entry := range table.Entries() {
		ch, ok := byID[entry.Source]
		if !ok {
			report.addEntry(EntryResult{
				Source: entry.Source,
				Target: entry.Target,
				Status: StatusSkipped,
				Reason: "no matching source channel",
			})

			continue
		}

		if err := ch.ValidateTimes(); err != nil {
			chErr := &MalformedChannelError{Channel: entry.Source, Err: err}
			report.addEntry(EntryResult{
				Source: entry.Source,
				Target: entry.Target,
				Status: StatusFailed,
				Reason: chErr.Error(),
			})
			report.Diags.AddWarning(diagnostic.CodeMalformedChannel, chErr.Error(), entry.Source, entry.Target)

			continue
		}

		if _, ok := attrs[entry.Target]; !ok {
			attr, err := insp.ResolveAttribute(targetRig, entry.Target)
			if err != nil {
				report.Diags.AddError(diagnostic.CodeAttributeNotFound, err.Error(), entry.Source, entry.Target)
				return report, err
			}

			attrs[entry.Target] = attr
			targetOrder = append(targetOrder, entry.Target)
		}

		plan = append(plan, planned{entry: entry, keys: transformKeys(ch.Keys, entry, opts)})
		report.addEntry(EntryResult{
			Source: entry.Source,
			Target: entry.Target,
			Status: StatusCopied,
			Keys:   len(ch.Keys),
		})
	}

	reportUnmapped(report, byID, table)

	// Entries sharing a target compose additively, the way multiple
	// expression curves feed one board cell through a weighted sum.
	composed := make(map[string][]scene.Keyframe, len(targetOrder))
	for _, p := range plan {
		composed[p.entry.Target] = composeKeys(composed[p.entry.Target], p.keys)
	}

	if opts.ZeroOutControls {
		for _, id := range targetOrder {
			attrs[id].SetValue(0)
		}
	}

	for _, id := range targetOrder {
		keys := composed[id]
		if common.IsEmpty(keys) {
			continue
		}

		for _, k := range keys {
			attrs[id].SetKey(k)
		}

		report.widenRange(keys[0].Time, keys[len(keys)-1].Time)
	}

	return report, nil
}

// transformKeys applies the entry's value transform to a copy of the
// channel keys.
func transformKeys(keys []scene.Keyframe, entry mapping.Entry, opts Options) []scene.Keyframe {
	out := make([]scene.Keyframe, len(keys))

	for i, k := range keys {
		nk := scene.Keyframe{Time: k.Time, Value: entry.Apply(k.Value)}
		if opts.PreserveTangents && k.Tangent != nil {
			tangent := *k.Tangent
			nk.Tangent = &tangent
		}

		out[i] = nk
	}

	return out
}

// composeKeys merges keys into an accumulator, summing values at equal
// times. The first key carrying a tangent at a time keeps it. The result
// stays sorted by time.
func composeKeys(acc, keys []scene.Keyframe) []scene.Keyframe {
	if common.IsEmpty(acc) {
		return keys
	}

	byTime := make(map[float64]int, len(acc))
	for i, k := range acc {
		byTime[k.Time] = i
	}

	for _, k := range keys {
		if i, ok := byTime[k.Time]; ok {
			acc[i].Value += k.Value
			if acc[i].Tangent == nil {
				acc[i].Tangent = k.Tangent
			}

			continue
		}

		byTime[k.Time] = len(acc)
		acc = append(acc, k)
	}

	sort.Slice(acc, func(i, j int) bool {
		return acc[i].Time < acc[j].Time
	})

	return acc
}

// reportUnmapped records source channels the table knows nothing about,
// with near-miss suggestions so naming-convention drift is visible.
func reportUnmapped(report *Report, byID map[string]scene.Channel, table *mapping.Table) {
	ids := make([]string, 0, len(byID))
	for id := range byID {
		ids = append(ids, id)
	}

	sort.Strings(ids)

	known := table.SourceIDs()

	for _, id := range ids {
		if _, ok := table.Lookup(id); ok {
			continue
		}

		if table.Ignored(id) {
			report.Diags.AddInfo(diagnostic.CodeIgnoredChannel, "channel is on the ignore list", id, "")
			continue
		}

		report.Unmapped = append(report.Unmapped, id)
		report.Diags.AddInfoSuggest(diagnostic.CodeUnmappedChannel,
			"no mapping entry for this channel", id, match.Suggest(id, known, maxSuggestions))
	}
}
