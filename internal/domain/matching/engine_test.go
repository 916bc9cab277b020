package matching

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestWindowContains(t *testing.T) {
	now := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		w    Window
		want bool
	}{
		{"unbounded", Window{}, true},
		{"inside", Window{Start: date(2025, time.June, 1), End: date(2025, time.June, 30)}, true},
		{"starts today", Window{Start: date(2025, time.June, 15)}, true},
		{"ends today", Window{End: date(2025, time.June, 15)}, true},
		{"starts tomorrow", Window{Start: date(2025, time.June, 16)}, false},
		{"ended yesterday", Window{End: date(2025, time.June, 14)}, false},
		{"open start", Window{End: date(2025, time.December, 31)}, true},
		{"open end", Window{Start: date(2025, time.January, 1)}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.w.Contains(now); got != tc.want {
				t.Fatalf("Contains(%v) = %v, want %v", now, got, tc.want)
			}
		})
	}
}

func TestMeetsMinimum(t *testing.T) {
	set := SkillSet{"JAVA": 4, "SPRING": 5, "SQL": 2}

	cases := []struct {
		name   string
		labels []string
		min    int
		want   bool
	}{
		{"all at threshold", []string{"JAVA", "SPRING"}, 4, true},
		{"one below threshold", []string{"JAVA", "SQL"}, 3, false},
		{"missing competency", []string{"JAVA", "GO"}, 1, false},
		{"empty labels", nil, 5, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := MeetsMinimum(set, tc.labels, tc.min); got != tc.want {
				t.Fatalf("MeetsMinimum(%v, %d) = %v, want %v", tc.labels, tc.min, got, tc.want)
			}
		})
	}
}

func TestPossesses(t *testing.T) {
	set := SkillSet{"JAVA": 1, "GO": 3}

	if !Possesses(set, []string{"JAVA", "GO"}) {
		t.Fatalf("expected set to cover JAVA and GO")
	}
	if Possesses(set, []string{"JAVA", "DEVOPS"}) {
		t.Fatalf("expected missing DEVOPS to reject the set")
	}
	if !Possesses(set, nil) {
		t.Fatalf("empty label list must always pass")
	}
}

func TestFilterIdempotence(t *testing.T) {
	set := SkillSet{"JAVA": 4, "SPRING": 4}
	labels := []string{"JAVA", "SPRING"}

	first := MeetsMinimum(set, labels, 4)
	second := MeetsMinimum(set, labels, 4)
	if first != second {
		t.Fatalf("same inputs must give the same verdict")
	}
}
