package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chenyiwei198603-source/xmpkzhihuizhusuan/internal/domain"
)

func TestCounters(t *testing.T) {
	tr := NewTracker()
	for i := 0; i < 5; i++ {
		tr.RecordOperation()
	}
	tr.RecordCorrect()
	tr.RecordCorrect()

	s := tr.Snapshot()
	assert.Equal(t, 5, s.TotalOperations)
	assert.Equal(t, 2, s.CorrectAnswers)
}

func TestAccuracyMetric(t *testing.T) {
	tr := NewTracker()
	tr.RecordCorrect()

	s := tr.Snapshot()
	require.Len(t, s.AccuracyHistory, 1)
	// correct/(correct+0.5)*100 with correct=1
	assert.InDelta(t, 100.0/1.5, s.AccuracyHistory[0], 1e-9)

	tr.RecordCorrect()
	s = tr.Snapshot()
	require.Len(t, s.AccuracyHistory, 2)
	assert.InDelta(t, 200.0/2.5, s.AccuracyHistory[1], 1e-9)
	assert.LessOrEqual(t, s.AccuracyHistory[1], 100.0)
}

func TestHistoryCappedAtTen(t *testing.T) {
	tr := NewTracker()
	for i := 0; i < 25; i++ {
		tr.RecordCorrect()
	}
	s := tr.Snapshot()
	assert.Len(t, s.AccuracyHistory, 10)
	assert.Equal(t, 25, s.CorrectAnswers)
}

func TestResumeTrimsOversizedHistory(t *testing.T) {
	long := make([]float64, 14)
	for i := range long {
		long[i] = float64(i)
	}
	tr := Resume(domain.SessionStats{CorrectAnswers: 14, AccuracyHistory: long})

	s := tr.Snapshot()
	require.Len(t, s.AccuracyHistory, 10)
	assert.Equal(t, 4.0, s.AccuracyHistory[0], "oldest points drop first")
}

func TestSnapshotIsACopy(t *testing.T) {
	tr := NewTracker()
	tr.RecordCorrect()
	s := tr.Snapshot()
	s.AccuracyHistory[0] = -1

	assert.NotEqual(t, -1.0, tr.Snapshot().AccuracyHistory[0])
}

func TestReset(t *testing.T) {
	tr := NewTracker()
	tr.RecordOperation()
	tr.RecordCorrect()
	tr.Reset()

	s := tr.Snapshot()
	assert.Zero(t, s.TotalOperations)
	assert.Zero(t, s.CorrectAnswers)
	assert.Empty(t, s.AccuracyHistory)
}
