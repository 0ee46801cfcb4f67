package match

import "strings"

// StripNamespace removes any host namespace qualifier from an identifier.
// Examples:
//   - "mh01:CTRL_jawOpen" -> "CTRL_jawOpen"
//   - ":CTRL_jawOpen" -> "CTRL_jawOpen"
//   - "CTRL_jawOpen" -> "CTRL_jawOpen"
func StripNamespace(id string) string {
	if i := strings.LastIndexByte(id, ':'); i >= 0 {
		return id[i+1:]
	}

	return id
}

// SplitAxisSuffix splits an exporter attribute name of the form
// "<control>FBX<axis>" into the control name and the axis letter.
// Level-sequence exports name driven translate channels this way
// ("CTRL_eyeLookFBXY" drives CTRL_eyeLook along Y).
func SplitAxisSuffix(id string) (control string, axis byte, ok bool) {
	i := strings.Index(id, "FBX")
	if i < 0 || len(id) == 0 {
		return id, 0, false
	}

	axis = id[len(id)-1]
	if axis != 'X' && axis != 'Y' && axis != 'Z' {
		return id, 0, false
	}

	return id[:i], axis, true
}

// NormalizeChannelID folds an identifier to a canonical comparison form:
// namespace stripped, FBX axis suffix stripped, lowercased, separators
// removed. Two identifiers that normalize equal differ only by naming
// convention.
func NormalizeChannelID(id string) string {
	id = StripNamespace(id)
	if control, _, ok := SplitAxisSuffix(id); ok {
		id = control
	}

	var b strings.Builder
	b.Grow(len(id))

	for _, r := range strings.ToLower(id) {
		switch r {
		case '_', '-', ' ', '.':
		default:
			b.WriteRune(r)
		}
	}

	return b.String()
}
