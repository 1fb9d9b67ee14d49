package modecounter

import (
	"cmp"
	"slices"
)

// Entry amount of times Value was seen
type Entry[K cmp.Ordered] struct {
	Value K   `json:"value"`
	Count int `json:"count"`
}

// ModeCounter struct that counts how many times each value of a column appears
// + Name: name of the column to collect data
// + counters: amount of times each value was seen
type ModeCounter[K cmp.Ordered] struct {
	Name     string
	counters map[K]int
}

func NewModeCounter[K cmp.Ordered](name string) *ModeCounter[K] {
	return &ModeCounter[K]{
		Name:     name,
		counters: make(map[K]int),
	}
}

// NewModeCounterWithData returns a ModeCounter that has already counted all the values
func NewModeCounterWithData[K cmp.Ordered](name string, values []K) *ModeCounter[K] {
	mc := NewModeCounter[K](name)
	for _, value := range values {
		mc.UpdateCounter(value)
	}
	return mc
}

func (mc *ModeCounter[K]) UpdateCounter(value K) {
	mc.counters[value] += 1
}

// Mode returns the most frequent value. Ties are broken by the smallest value.
// The boolean is false if nothing was counted
func (mc *ModeCounter[K]) Mode() (K, bool) {
	counts := mc.Counts()
	if len(counts) == 0 {
		var zero K
		return zero, false
	}
	return counts[0].Value, true
}

// Counts returns every value with its counter, the most frequent first.
// Values with the same counter are sorted in ascending order
func (mc *ModeCounter[K]) Counts() []Entry[K] {
	entries := make([]Entry[K], 0, len(mc.counters))
	for value, counter := range mc.counters {
		entries = append(entries, Entry[K]{Value: value, Count: counter})
	}

	slices.SortFunc(entries, func(a, b Entry[K]) int {
		if a.Count != b.Count {
			return cmp.Compare(b.Count, a.Count)
		}
		return cmp.Compare(a.Value, b.Value)
	})
	return entries
}

// Min returns the smallest value counted
func (mc *ModeCounter[K]) Min() (K, bool) {
	return mc.extreme(func(a, b K) bool { return a < b })
}

// Max returns the greatest value counted
func (mc *ModeCounter[K]) Max() (K, bool) {
	return mc.extreme(func(a, b K) bool { return a > b })
}

func (mc *ModeCounter[K]) extreme(better func(a, b K) bool) (K, bool) {
	var result K
	found := false
	for value := range mc.counters {
		if !found || better(value, result) {
			result = value
			found = true
		}
	}
	return result, found
}
