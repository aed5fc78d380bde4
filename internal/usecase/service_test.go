package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chenyiwei198603-source/xmpkzhihuizhusuan/internal/challenge"
	"github.com/chenyiwei198603-source/xmpkzhihuizhusuan/internal/domain"
	"github.com/chenyiwei198603-source/xmpkzhihuizhusuan/internal/formula"
	"github.com/chenyiwei198603-source/xmpkzhihuizhusuan/internal/validator"
)

type fixedRNG struct{}

func (fixedRNG) Intn(n int) int { return 0 }

func newService(t *testing.T) *Service {
	t.Helper()
	cl, err := formula.New()
	require.NoError(t, err)
	return NewService(cl, challenge.NewGenerator(4, fixedRNG{}), validator.New(), nil)
}

func TestApplyMovePipeline(t *testing.T) {
	// One user action end to end: mutate one rod, read its formula, then
	// the new total. Board [rod0, rod1], weights 10 and 1.
	svc := newService(t)
	b, err := svc.NewBoard(2)
	require.NoError(t, err)

	res, err := svc.ApplyMove(context.Background(), b, 1, 1, 3, nil)
	require.NoError(t, err)
	assert.Equal(t, 8, res.RodValue)
	assert.Equal(t, 8, res.Total)
	require.NotNil(t, res.Formula, "a 0→8 move has a named technique")
	assert.Equal(t, "add_8", res.Formula.Action)

	// dropping the heaven bead: 8 → 3 is the subtract-five move
	res, err = svc.ApplyMove(context.Background(), b, 1, 0, 3, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, res.RodValue)
	assert.Equal(t, 3, res.Total)
	require.NotNil(t, res.Formula)
	assert.Equal(t, "sub_5", res.Formula.Action)
	assert.Equal(t, "五去五", res.Formula.Koujue)
}

func TestApplyMoveRejectionLeavesBoardUntouched(t *testing.T) {
	svc := newService(t)
	b, err := svc.NewBoard(2)
	require.NoError(t, err)
	_, err = svc.ApplyMove(context.Background(), b, 1, 1, 2, nil)
	require.NoError(t, err)

	_, err = svc.ApplyMove(context.Background(), b, 1, 3, 0, nil)
	assert.ErrorIs(t, err, domain.ErrBeadOutOfRange)
	assert.Equal(t, 7, b.Total())
	assert.Equal(t, 1, svc.Stats().TotalOperations, "rejected move does not count as an operation")
}

func TestApplyMoveCountsCorrectOnce(t *testing.T) {
	svc := newService(t)
	b, err := svc.NewBoard(2)
	require.NoError(t, err)
	ch := &domain.Challenge{Type: domain.Addition, TargetValue: 8}

	res, err := svc.ApplyMove(context.Background(), b, 1, 1, 3, ch)
	require.NoError(t, err)
	assert.Equal(t, domain.Correct, res.Verdict)
	assert.Equal(t, 1, svc.Stats().CorrectAnswers)

	// staying on the correct total must not count again
	res, err = svc.ApplyMove(context.Background(), b, 0, 0, 0, ch)
	require.NoError(t, err)
	assert.Equal(t, domain.Correct, res.Verdict)
	assert.Equal(t, 1, svc.Stats().CorrectAnswers)
	assert.Equal(t, 2, svc.Stats().TotalOperations)
}

func TestVerdictProgression(t *testing.T) {
	svc := newService(t)
	b, err := svc.NewBoard(2)
	require.NoError(t, err)
	ch := &domain.Challenge{Type: domain.Addition, TargetValue: 15}

	v, err := svc.Validate(b.Total(), ch)
	require.NoError(t, err)
	assert.Equal(t, domain.Idle, v)

	res, err := svc.ApplyMove(context.Background(), b, 1, 1, 2, ch) // total 7
	require.NoError(t, err)
	assert.Equal(t, domain.InProgress, res.Verdict)

	res, err = svc.ApplyMove(context.Background(), b, 0, 0, 1, ch) // tens rod at 1, total 17
	require.NoError(t, err)
	assert.Equal(t, domain.TooHigh, res.Verdict)

	res, err = svc.ApplyMove(context.Background(), b, 1, 1, 0, ch) // rod1=5 → total 15
	require.NoError(t, err)
	assert.Equal(t, domain.Correct, res.Verdict)
}

func TestNilGuards(t *testing.T) {
	svc := &Service{}
	_, err := svc.Generate(domain.Addition)
	assert.Error(t, err)
	_, err = svc.Validate(0, nil)
	assert.Error(t, err)
	_, err = svc.Classify(0, 1)
	assert.Error(t, err)
	_, err = svc.Settings(context.Background())
	assert.Error(t, err)
}
