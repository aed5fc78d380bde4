package ports

import (
	"context"

	"github.com/chenyiwei198603-source/xmpkzhihuizhusuan/internal/domain"
)

// Classifier names the counting technique behind a single rod's transition.
type Classifier interface {
	Classify(oldValue, newValue int) (domain.Formula, bool)
}

// Generator produces a new arithmetic exercise of the requested type.
type Generator interface {
	New(t domain.ProblemType) (*domain.Challenge, error)
}

// Validator judges the board total against the active challenge.
type Validator interface {
	Check(total int, ch *domain.Challenge) domain.Verdict
}

// Storage persists the two host records as opaque documents.
type Storage interface {
	SaveSettings(ctx context.Context, s domain.Settings) error
	LoadSettings(ctx context.Context) (domain.Settings, error)
	SaveStats(ctx context.Context, s domain.SessionStats) error
	LoadStats(ctx context.Context) (domain.SessionStats, error)
}
