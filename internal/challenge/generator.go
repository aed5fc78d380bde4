package challenge

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/chenyiwei198603-source/xmpkzhihuizhusuan/internal/domain"
)

// retryCap bounds the exact-division search before the canned fallback.
const retryCap = 64

// errExhausted never leaves this package: generation must always succeed,
// so an exhausted draw loop resolves to a guaranteed-exact canned pair.
var errExhausted = errors.New("operand draw exhausted")

const (
	mulRule = "读数从首位起：乘积从最高位的档读起，后面的空档补零（forward placement: read the product from its highest rod; trailing empty rods count as zeros）。"
	divRule = "商的档位在被除数首位左侧：从商的最高位读起，后面的空档补零（the quotient is read from its highest rod; trailing empty rods count as zeros）。"
)

// Generator synthesizes arithmetic exercises sized to the board.
type Generator struct {
	digits int
	rng    domain.RNG
}

// NewGenerator builds a generator for a board with the given rod count.
// Rod counts above nine are clamped: operands never need more headroom,
// and 10^10 no longer fits the weighted-sum arithmetic comfortably.
func NewGenerator(digits int, rng domain.RNG) *Generator {
	if digits < 1 {
		digits = 1
	}
	if digits > 9 {
		digits = 9
	}
	return &Generator{digits: digits, rng: rng}
}

// New produces one challenge of the requested type. All intermediate values
// are guaranteed representable on the board; DIV is exact by construction.
func (g *Generator) New(t domain.ProblemType) (*domain.Challenge, error) {
	switch t {
	case domain.Addition:
		return g.addition(), nil
	case domain.Subtraction:
		return g.subtraction(), nil
	case domain.Multiplication:
		return g.multiplication(), nil
	case domain.Division:
		return g.division(), nil
	case domain.Mixed:
		return g.mixed(), nil
	default:
		return nil, domain.ErrUnknownType
	}
}

func (g *Generator) max() int {
	m := 1
	for i := 0; i < g.digits; i++ {
		m *= 10
	}
	return m - 1
}

// intIn draws a uniform value in [lo, hi]. lo must be <= hi.
func (g *Generator) intIn(lo, hi int) int {
	return lo + g.rng.Intn(hi-lo+1)
}

func (g *Generator) addition() *domain.Challenge {
	count := g.intIn(2, 3)
	limit := min(99, g.max()/count)
	if limit < 1 {
		limit = 1
	}
	steps := make([]int, count)
	sum := 0
	for i := range steps {
		steps[i] = g.intIn(1, limit)
		sum += steps[i]
	}
	return &domain.Challenge{
		ID:          uuid.NewString(),
		Type:        domain.Addition,
		Question:    formatQuestion(steps),
		TargetValue: sum,
		Steps:       steps,
	}
}

func (g *Generator) subtraction() *domain.Challenge {
	start := g.intIn(2, min(99, g.max()))
	count := g.intIn(1, 2)
	steps := []int{start}
	running := start
	for i := 0; i < count && running > 0; i++ {
		sub := g.intIn(1, running)
		steps = append(steps, -sub)
		running -= sub
	}
	return &domain.Challenge{
		ID:          uuid.NewString(),
		Type:        domain.Subtraction,
		Question:    formatQuestion(steps),
		TargetValue: running,
		Steps:       steps,
	}
}

func (g *Generator) multiplication() *domain.Challenge {
	b := g.intIn(2, min(9, g.max()))
	aCap := min(99, g.max()/b)
	if aCap < 1 {
		aCap = 1
	}
	a := g.intIn(1, aCap)
	return &domain.Challenge{
		ID:              uuid.NewString(),
		Type:            domain.Multiplication,
		Question:        fmt.Sprintf("%d × %d", a, b),
		TargetValue:     a * b,
		Steps:           []int{a, b},
		RuleDescription: mulRule,
	}
}

func (g *Generator) division() *domain.Challenge {
	dividend, divisor, err := g.divOperands()
	if err != nil {
		// Exhausted draws: fall back to a canned exact pair.
		dividend, divisor = 56, 7
	}
	return &domain.Challenge{
		ID:              uuid.NewString(),
		Type:            domain.Division,
		Question:        fmt.Sprintf("%d ÷ %d", dividend, divisor),
		TargetValue:     dividend / divisor,
		Steps:           []int{dividend, divisor},
		RuleDescription: divRule,
	}
}

// divOperands draws dividend/divisor pairs until the division is exact.
func (g *Generator) divOperands() (int, int, error) {
	hi := min(999, g.max())
	for i := 0; i < retryCap; i++ {
		divisor := g.intIn(2, 9)
		if divisor > hi {
			continue
		}
		dividend := g.intIn(divisor, hi)
		if dividend%divisor == 0 {
			return dividend, divisor, nil
		}
	}
	return 0, 0, errExhausted
}

func (g *Generator) mixed() *domain.Challenge {
	limit := min(99, g.max()/2)
	if limit < 1 {
		limit = 1
	}
	a := g.intIn(1, limit)
	b := g.intIn(1, limit)
	c := g.intIn(1, a+b)
	steps := []int{a, b, -c}
	return &domain.Challenge{
		ID:          uuid.NewString(),
		Type:        domain.Mixed,
		Question:    formatQuestion(steps),
		TargetValue: a + b - c,
		Steps:       steps,
	}
}

// formatQuestion renders signed operands as "a + b - c".
func formatQuestion(steps []int) string {
	var sb strings.Builder
	for i, s := range steps {
		switch {
		case i == 0:
			fmt.Fprintf(&sb, "%d", s)
		case s < 0:
			fmt.Fprintf(&sb, " − %d", -s)
		default:
			fmt.Fprintf(&sb, " + %d", s)
		}
	}
	return sb.String()
}
