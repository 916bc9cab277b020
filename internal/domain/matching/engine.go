// Package matching holds the pure people-filtering logic: availability
// windows and skill-set predicates. It has no knowledge of storage.
package matching

import "time"

// Window is an availability window. A nil bound means unbounded on that
// side. Bounds are inclusive.
type Window struct {
	Start *time.Time
	End   *time.Time
}

func (w Window) Contains(t time.Time) bool {
	if w.Start != nil && w.Start.After(t) {
		return false
	}
	if w.End != nil && w.End.Before(t) {
		return false
	}
	return true
}

// SkillSet maps competency label to rating value for one person.
type SkillSet map[string]int

// MeetsMinimum reports whether the set holds every listed competency with a
// rating of at least min. All-or-nothing: one missing or underrated
// competency rejects the whole set.
func MeetsMinimum(set SkillSet, labels []string, min int) bool {
	for _, label := range labels {
		rating, ok := set[label]
		if !ok || rating < min {
			return false
		}
	}
	return true
}

// Possesses reports whether the set covers every listed competency,
// ratings ignored.
func Possesses(set SkillSet, labels []string) bool {
	for _, label := range labels {
		if _, ok := set[label]; !ok {
			return false
		}
	}
	return true
}
