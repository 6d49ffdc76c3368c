package catalog

import (
	"math"
	"reflect"
	"testing"
)

func TestGenerateSessions_TwelveHours(t *testing.T) {
	got := GenerateSessions(12, 60)

	if len(got) != 12 {
		t.Fatalf("len=%d want=12", len(got))
	}

	for i, s := range got[:11] {
		if s.DurationMin != 60 {
			t.Fatalf("session %d duration=%d want=60", i+1, s.DurationMin)
		}
	}
	if got[11].DurationMin != 60 {
		t.Fatalf("last duration=%d want=60", got[11].DurationMin)
	}

	first := got[0]
	if !first.IsPreview {
		t.Fatalf("session 1 is_preview=false")
	}
	if first.Title != "Intro (Preview)" {
		t.Fatalf("session 1 title=%q", first.Title)
	}
	if got[1].Title != "Session 2" {
		t.Fatalf("session 2 title=%q", got[1].Title)
	}
	for i, s := range got {
		if s.Index != i+1 {
			t.Fatalf("session %d index=%d", i+1, s.Index)
		}
		if s.IsPreview && s.Index != 1 {
			t.Fatalf("session %d marked preview", s.Index)
		}
	}
}

func TestGenerateSessions_CountAndDurationSum(t *testing.T) {
	cases := []float64{0, 0.1, 0.5, 1, 1.5, 2.75, 8, 12, 24, 26, 100}

	for _, hours := range cases {
		got := GenerateSessions(hours, 60)

		totalMin := int(math.Round(hours * 60))
		wantCount := (totalMin + 59) / 60
		if wantCount < 1 {
			wantCount = 1
		}
		if len(got) != wantCount {
			t.Fatalf("hours=%v len=%d want=%d", hours, len(got), wantCount)
		}

		sum := 0
		for _, s := range got {
			sum += s.DurationMin
		}

		// The tail session never drops below 10 minutes, so the sum may
		// exceed the exact total for very short courses.
		wantSum := totalMin
		if tail := totalMin - (wantCount-1)*60; tail < 10 {
			wantSum = (wantCount-1)*60 + 10
		}
		if sum != wantSum {
			t.Fatalf("hours=%v sum=%d want=%d", hours, sum, wantSum)
		}
	}
}

func TestGenerateSessions_ZeroHours(t *testing.T) {
	got := GenerateSessions(0, 60)

	if len(got) != 1 {
		t.Fatalf("len=%d want=1", len(got))
	}
	if !got[0].IsPreview {
		t.Fatalf("single session must be the preview")
	}
	if got[0].DurationMin != 10 {
		t.Fatalf("duration=%d want=10", got[0].DurationMin)
	}
}

func TestGenerateSessions_NegativeHoursClamped(t *testing.T) {
	got := GenerateSessions(-3, 60)

	if len(got) != 1 {
		t.Fatalf("len=%d want=1", len(got))
	}
}

func TestGenerateSessions_Deterministic(t *testing.T) {
	a := GenerateSessions(14.5, 60)
	b := GenerateSessions(14.5, 60)

	if !reflect.DeepEqual(a, b) {
		t.Fatalf("same input produced different output:\n%v\n%v", a, b)
	}
}

func TestGenerateSessions_BadChunkFallsBack(t *testing.T) {
	a := GenerateSessions(5, 0)
	b := GenerateSessions(5, 60)

	if !reflect.DeepEqual(a, b) {
		t.Fatalf("chunk fallback mismatch")
	}
}

func TestSessionAt(t *testing.T) {
	c := Course{Meta: Meta{TotalHours: 2}}

	s, ok := SessionAt(c, 2)
	if !ok {
		t.Fatalf("expected session 2")
	}
	if s.Index != 2 || s.IsPreview {
		t.Fatalf("session=%+v", s)
	}

	if _, ok := SessionAt(c, 0); ok {
		t.Fatalf("index 0 must not resolve")
	}
	if _, ok := SessionAt(c, 3); ok {
		t.Fatalf("index past the end must not resolve")
	}
}
