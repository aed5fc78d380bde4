package usecase

import (
	"context"
	"errors"
	"sync"

	"github.com/chenyiwei198603-source/xmpkzhihuizhusuan/internal/domain"
	"github.com/chenyiwei198603-source/xmpkzhihuizhusuan/internal/ports"
	"github.com/chenyiwei198603-source/xmpkzhihuizhusuan/internal/session"
)

// Service is the engine facade. The board and the active challenge travel
// with each call and stay owned by the caller; only the session counters
// live here, guarded for the concurrent HTTP host.
type Service struct {
	Classifier ports.Classifier
	Generator  ports.Generator
	Validator  ports.Validator
	Storage    ports.Storage

	mu      sync.Mutex
	tracker *session.Tracker
}

func NewService(c ports.Classifier, g ports.Generator, v ports.Validator, st ports.Storage) *Service {
	return &Service{
		Classifier: c,
		Generator:  g,
		Validator:  v,
		Storage:    st,
		tracker:    session.NewTracker(),
	}
}

var errNotConfigured = errors.New("usecase dependency not configured")

// ResumeSession reloads persisted counters, if any.
func (u *Service) ResumeSession(ctx context.Context) error {
	if u.Storage == nil {
		return errNotConfigured
	}
	stats, err := u.Storage.LoadStats(ctx)
	if err != nil {
		return err
	}
	u.mu.Lock()
	u.tracker = session.Resume(stats)
	u.mu.Unlock()
	return nil
}

// NewBoard creates an all-zero board with the given rod count.
func (u *Service) NewBoard(count int) (*domain.Board, error) {
	return domain.NewBoard(count)
}

// MoveResult is everything one bead mutation produces, in pipeline order:
// the rod's new value, the technique behind the transition, the recomputed
// total, and the verdict against the active challenge.
type MoveResult struct {
	Board    *domain.Board
	RodValue int
	Formula  *domain.Formula
	Total    int
	Verdict  domain.Verdict
}

// ApplyMove runs the full pipeline for one user action: mutate the rod,
// classify its delta, recompute the total, validate. A rejected mutation
// leaves board and counters untouched. The correct-answer counter ticks
// only on the transition into Correct, not while sitting on it.
func (u *Service) ApplyMove(ctx context.Context, b *domain.Board, index, heaven, earth int, ch *domain.Challenge) (MoveResult, error) {
	if u.Classifier == nil || u.Validator == nil {
		return MoveResult{}, errNotConfigured
	}
	wasCorrect := ch != nil && u.Validator.Check(b.Total(), ch) == domain.Correct

	oldValue, newValue, err := b.SetBeads(index, heaven, earth)
	if err != nil {
		return MoveResult{}, err
	}

	res := MoveResult{Board: b, RodValue: newValue}
	if f, ok := u.Classifier.Classify(oldValue, newValue); ok {
		res.Formula = &f
	}
	res.Total = b.Total()
	res.Verdict = u.Validator.Check(res.Total, ch)

	u.mu.Lock()
	u.tracker.RecordOperation()
	if ch != nil && res.Verdict == domain.Correct && !wasCorrect {
		u.tracker.RecordCorrect()
	}
	snapshot := u.tracker.Snapshot()
	u.mu.Unlock()

	if u.Storage != nil {
		if err := u.Storage.SaveStats(ctx, snapshot); err != nil {
			return res, err
		}
	}
	return res, nil
}

// Generate produces a fresh challenge of the requested type.
func (u *Service) Generate(t domain.ProblemType) (*domain.Challenge, error) {
	if u.Generator == nil {
		return nil, errNotConfigured
	}
	return u.Generator.New(t)
}

// Validate judges a board total against a challenge without mutating anything.
func (u *Service) Validate(total int, ch *domain.Challenge) (domain.Verdict, error) {
	if u.Validator == nil {
		return domain.Idle, errNotConfigured
	}
	return u.Validator.Check(total, ch), nil
}

// Classify names the technique behind a single rod's value transition.
func (u *Service) Classify(oldValue, newValue int) (*domain.Formula, error) {
	if u.Classifier == nil {
		return nil, errNotConfigured
	}
	if f, ok := u.Classifier.Classify(oldValue, newValue); ok {
		return &f, nil
	}
	return nil, nil
}

// Stats returns a copy of the session counters.
func (u *Service) Stats() domain.SessionStats {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.tracker.Snapshot()
}

// ResetSession clears counters and persists the empty record.
func (u *Service) ResetSession(ctx context.Context) error {
	u.mu.Lock()
	u.tracker.Reset()
	snapshot := u.tracker.Snapshot()
	u.mu.Unlock()
	if u.Storage == nil {
		return nil
	}
	return u.Storage.SaveStats(ctx, snapshot)
}

// Settings / SaveSettings pass through to storage.
func (u *Service) Settings(ctx context.Context) (domain.Settings, error) {
	if u.Storage == nil {
		return domain.Settings{}, errNotConfigured
	}
	return u.Storage.LoadSettings(ctx)
}

func (u *Service) SaveSettings(ctx context.Context, s domain.Settings) error {
	if u.Storage == nil {
		return errNotConfigured
	}
	return u.Storage.SaveSettings(ctx, s)
}
