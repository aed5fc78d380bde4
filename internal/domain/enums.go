package domain

// ProblemType selects the kind of arithmetic exercise to generate.
type ProblemType int

const (
	Addition ProblemType = iota
	Subtraction
	Multiplication
	Division
	Mixed
)

func (t ProblemType) String() string {
	switch t {
	case Addition:
		return "add"
	case Subtraction:
		return "sub"
	case Multiplication:
		return "mul"
	case Division:
		return "div"
	case Mixed:
		return "mixed"
	default:
		return "unknown"
	}
}

// Verdict classifies the board total against the active challenge.
type Verdict int

const (
	Idle Verdict = iota // board at zero, nothing entered yet
	InProgress
	Correct
	TooHigh // ADD/SUB only; place alignment makes it meaningless for MUL/DIV
)

func (v Verdict) String() string {
	switch v {
	case InProgress:
		return "in_progress"
	case Correct:
		return "correct"
	case TooHigh:
		return "too_high"
	default:
		return "idle"
	}
}
