package scene

import (
	"fmt"
	"sort"
)

// Keyframe is a single (time, value) sample on an animation curve.
// Tangent is optional; a nil tangent means the host applies its own
// default interpolation at this key.
type Keyframe struct {
	Time    float64  `json:"time"`
	Value   float64  `json:"value"`
	Tangent *Tangent `json:"tangent,omitempty"`
}

// Tangent holds the interpolation shape of a key. Angles are in degrees,
// weights are unitless curve handle lengths.
type Tangent struct {
	InAngle   float64 `json:"in_angle"`
	OutAngle  float64 `json:"out_angle"`
	InWeight  float64 `json:"in_weight"`
	OutWeight float64 `json:"out_weight"`
}

// Channel is one animatable parameter with its keyed samples.
// Keys must be ordered by strictly increasing time; duplicate times are
// invalid input and rejected by ValidateTimes.
type Channel struct {
	ID   string     `json:"id"`
	Keys []Keyframe `json:"keys"`
}

// ValidateTimes checks that key times are strictly increasing.
func (c Channel) ValidateTimes() error {
	for i := 1; i < len(c.Keys); i++ {
		if c.Keys[i].Time <= c.Keys[i-1].Time {
			return fmt.Errorf("key %d: time %g is not after %g",
				i, c.Keys[i].Time, c.Keys[i-1].Time)
		}
	}

	return nil
}

// Range returns the first and last key times. ok is false for an unkeyed
// channel.
func (c Channel) Range() (start, end float64, ok bool) {
	if len(c.Keys) == 0 {
		return 0, 0, false
	}

	return c.Keys[0].Time, c.Keys[len(c.Keys)-1].Time, true
}

// SortChannels orders channels by ID so enumeration results are
// deterministic regardless of how the host walked the hierarchy.
func SortChannels(channels []Channel) {
	sort.Slice(channels, func(i, j int) bool {
		return channels[i].ID < channels[j].ID
	})
}
