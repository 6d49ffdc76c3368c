package catalog

import (
	"math"
	"strconv"
)

// Session is a synthetic unit of course content. Nothing is stored for it:
// the list is derived from the course's total-hours metadata on every read.
type Session struct {
	Index       int    `json:"index"`
	Title       string `json:"title"`
	DurationMin int    `json:"duration_min"`
	IsPreview   bool   `json:"is_preview"`
}

const (
	// DefaultChunkMin is the nominal session length.
	DefaultChunkMin = 60

	// minTailMin is the floor for the final, possibly short, session.
	minTailMin = 10
)

// GenerateSessions chunks a course's total duration into 1-based sessions.
// Every chunk runs chunkMin minutes except the last, which takes whatever
// remains but never less than minTailMin. A course always yields at least
// one session, and session 1 is the free preview. The result depends only
// on the inputs.
func GenerateSessions(totalHours float64, chunkMin int) []Session {
	if chunkMin <= 0 {
		chunkMin = DefaultChunkMin
	}

	totalMin := int(math.Round(totalHours * 60))
	if totalMin < 0 {
		totalMin = 0
	}

	count := (totalMin + chunkMin - 1) / chunkMin
	if count < 1 {
		count = 1
	}

	out := make([]Session, 0, count)
	for i := 0; i < count; i++ {
		index := i + 1

		durationMin := chunkMin
		if i == count-1 {
			remaining := totalMin - i*chunkMin
			if remaining < minTailMin {
				remaining = minTailMin
			}
			durationMin = remaining
		}

		title := "Session " + strconv.Itoa(index)
		if index == 1 {
			title = "Intro (Preview)"
		}

		out = append(out, Session{
			Index:       index,
			Title:       title,
			DurationMin: durationMin,
			IsPreview:   index == 1,
		})
	}

	return out
}

// SessionAt returns the session with the given 1-based index, recomputing
// the list from course metadata.
func SessionAt(c Course, index int) (Session, bool) {
	sessions := GenerateSessions(c.Meta.TotalHours, DefaultChunkMin)
	if index < 1 || index > len(sessions) {
		return Session{}, false
	}
	return sessions[index-1], true
}
