package validator

import (
	"strconv"
	"strings"

	"github.com/chenyiwei198603-source/xmpkzhihuizhusuan/internal/domain"
)

// AnswerValidator judges the board total against a challenge target.
// It is a pure function of its inputs; step tracking stays with the caller.
type AnswerValidator struct{}

func New() *AnswerValidator { return &AnswerValidator{} }

// Check returns the verdict for the current board total.
//
// ADD, SUB and MIXED require exact equality: the answer sits unit-aligned.
// MUL and DIV tolerate the forward-placement convention, where the result
// is laid out from the leftmost rod: both sides are compared with trailing
// zeros stripped, and a zero board is never correct.
func (v *AnswerValidator) Check(total int, ch *domain.Challenge) domain.Verdict {
	if ch == nil {
		return domain.Idle
	}
	switch ch.Type {
	case domain.Multiplication, domain.Division:
		return checkAligned(total, ch.TargetValue)
	default:
		return checkExact(total, ch.TargetValue)
	}
}

func checkExact(total, target int) domain.Verdict {
	switch {
	case total == target:
		return domain.Correct
	case total > target:
		return domain.TooHigh
	case total > 0:
		return domain.InProgress
	default:
		return domain.Idle
	}
}

func checkAligned(total, target int) domain.Verdict {
	if total > 0 && stripTrailingZeros(total) == stripTrailingZeros(target) {
		return domain.Correct
	}
	if total > 0 {
		return domain.InProgress
	}
	return domain.Idle
}

// stripTrailingZeros drops trailing zero digits from the decimal form, so
// 42000 and 42 compare equal. Zero strips to the empty string.
func stripTrailingZeros(n int) string {
	return strings.TrimRight(strconv.Itoa(n), "0")
}
