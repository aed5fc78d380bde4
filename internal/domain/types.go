package domain

// Rod is one decimal place of the frame: up to 2 heaven beads (5 each)
// and 5 earth beads (1 each) engaged toward the beam.
type Rod struct {
	Index  int `json:"index"`
	Heaven int `json:"heaven"`
	Earth  int `json:"earth"`
}

// Formula describes one recognized bead-movement technique.
type Formula struct {
	Action      string `json:"action"`
	Koujue      string `json:"koujue"`
	Description string `json:"description,omitempty"`
}

// Challenge is one arithmetic exercise. Immutable except for CurrentStepIndex,
// which the host advances during guided play.
type Challenge struct {
	ID               string      `json:"id"`
	Type             ProblemType `json:"type"`
	Question         string      `json:"question"`
	TargetValue      int         `json:"targetValue"`
	Steps            []int       `json:"steps"`
	CurrentStepIndex int         `json:"currentStepIndex"`
	RuleDescription  string      `json:"ruleDescription,omitempty"`
}

// Settings holds the host's feedback toggles.
type Settings struct {
	Sound      bool `json:"sound"`
	Voice      bool `json:"voice"`
	Hints      bool `json:"hints"`
	MentalMode bool `json:"mentalMode"`
}

// DefaultSettings matches a fresh install: everything audible, hints on.
func DefaultSettings() Settings {
	return Settings{Sound: true, Voice: true, Hints: true}
}

// SessionStats is the persisted progress record: running counters plus a
// bounded history of the derived accuracy metric.
type SessionStats struct {
	TotalOperations int       `json:"totalOperations"`
	CorrectAnswers  int       `json:"correctAnswers"`
	AccuracyHistory []float64 `json:"accuracyHistory,omitempty"`
}
