package match

import "sort"

// suggestThreshold is the minimum normalized similarity for a known key to
// be offered as a suggestion.
const suggestThreshold = 0.6

// ExactFold returns the known key whose normalized form equals the
// normalized id, if any. A hit means the channel and the key differ only
// by naming convention (case, separators, namespace, axis suffix).
func ExactFold(id string, known []string) (string, bool) {
	norm := NormalizeChannelID(id)
	for _, k := range known {
		if NormalizeChannelID(k) == norm {
			return k, true
		}
	}

	return "", false
}

// Suggest ranks the known mapping keys against an unmapped channel id and
// returns the best candidates, at most limit, best first. Ties break
// alphabetically so reports stay deterministic.
func Suggest(id string, known []string, limit int) []string {
	norm := NormalizeChannelID(id)

	type candidate struct {
		key   string
		score float64
	}

	var candidates []candidate

	for _, k := range known {
		score := Similarity(norm, NormalizeChannelID(k))
		if score >= suggestThreshold {
			candidates = append(candidates, candidate{key: k, score: score})
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}

		return candidates[i].key < candidates[j].key
	})

	if limit > 0 && len(candidates) > limit {
		candidates = candidates[:limit]
	}

	out := make([]string, len(candidates))
	for i, c := range candidates {
		out[i] = c.key
	}

	return out
}
