package domain

const (
	MaxHeaven = 2
	MaxEarth  = 5
)

// Value is the rod's contribution before positional weighting. It is derived
// on every call, never cached, and may transiently exceed 9 while a
// complement technique is half finished. That tolerance is deliberate: real
// bead work passes through such states, so the model must not clamp them.
func (r Rod) Value() int {
	return r.Heaven*5 + r.Earth
}

// SetBeads replaces the rod's engaged bead counts after bounds checking.
// On a rejected move the rod is left exactly as it was.
func (r *Rod) SetBeads(heaven, earth int) error {
	if heaven < 0 || heaven > MaxHeaven || earth < 0 || earth > MaxEarth {
		return ErrBeadOutOfRange
	}
	r.Heaven = heaven
	r.Earth = earth
	return nil
}

// Board is an ordered run of rods; index 0 is the leftmost (highest) place,
// the last rod is the units place.
type Board struct {
	Rods []Rod `json:"rods"`
}

// NewBoard creates an all-zero board with the given rod count.
func NewBoard(count int) (*Board, error) {
	if count < 1 {
		return nil, ErrBoardSize
	}
	rods := make([]Rod, count)
	for i := range rods {
		rods[i].Index = i
	}
	return &Board{Rods: rods}, nil
}

// SetBeads applies a bead mutation to one rod and returns its previous and
// new derived values. No other rod is touched.
func (b *Board) SetBeads(index, heaven, earth int) (oldValue, newValue int, err error) {
	if index < 0 || index >= len(b.Rods) {
		return 0, 0, ErrRodIndex
	}
	oldValue = b.Rods[index].Value()
	if err := b.Rods[index].SetBeads(heaven, earth); err != nil {
		return 0, 0, err
	}
	return oldValue, b.Rods[index].Value(), nil
}

// Total is the positional sum Σ value(i)·10^(N-1-i). It stays well defined
// when individual rods sit in a transient >9 state; the sum is plain
// arithmetic, not a digit-wise reading.
func (b *Board) Total() int {
	total := 0
	for _, r := range b.Rods {
		total = total*10 + r.Value()
	}
	return total
}

// Capacity is the number of decimal digits the board can hold.
func (b *Board) Capacity() int {
	return len(b.Rods)
}

// Reset clears every rod back to the all-zero state.
func (b *Board) Reset() {
	for i := range b.Rods {
		b.Rods[i].Heaven = 0
		b.Rods[i].Earth = 0
	}
}
