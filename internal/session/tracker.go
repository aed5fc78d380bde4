package session

import "github.com/chenyiwei198603-source/xmpkzhihuizhusuan/internal/domain"

// historyCap bounds the rolling accuracy history consumed by the host's
// progress chart.
const historyCap = 10

// Tracker accumulates the per-session counters the host persists: one
// operation per rod mutation, one correct answer per transition into the
// Correct verdict, and a derived accuracy point recorded at each correct.
type Tracker struct {
	stats domain.SessionStats
}

func NewTracker() *Tracker { return &Tracker{} }

// Resume continues from previously persisted stats.
func Resume(s domain.SessionStats) *Tracker {
	if len(s.AccuracyHistory) > historyCap {
		s.AccuracyHistory = s.AccuracyHistory[len(s.AccuracyHistory)-historyCap:]
	}
	return &Tracker{stats: s}
}

// RecordOperation counts one bead mutation.
func (t *Tracker) RecordOperation() {
	t.stats.TotalOperations++
}

// RecordCorrect counts a solved challenge and appends an accuracy point.
func (t *Tracker) RecordCorrect() {
	t.stats.CorrectAnswers++
	t.stats.AccuracyHistory = append(t.stats.AccuracyHistory, t.accuracy())
	if len(t.stats.AccuracyHistory) > historyCap {
		t.stats.AccuracyHistory = t.stats.AccuracyHistory[1:]
	}
}

// accuracy is the host's display metric, capped at 100.
func (t *Tracker) accuracy() float64 {
	correct := float64(t.stats.CorrectAnswers)
	acc := correct / (correct + 0.5) * 100
	if acc > 100 {
		acc = 100
	}
	return acc
}

// Snapshot returns a copy of the current stats for persistence.
func (t *Tracker) Snapshot() domain.SessionStats {
	out := t.stats
	out.AccuracyHistory = append([]float64(nil), t.stats.AccuracyHistory...)
	return out
}

// Reset clears all counters and history.
func (t *Tracker) Reset() {
	t.stats = domain.SessionStats{}
}
