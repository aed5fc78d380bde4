package formula

import (
	"fmt"

	"github.com/chenyiwei198603-source/xmpkzhihuizhusuan/internal/domain"
)

// Classifier maps a single rod's value transition onto the canonical
// counting technique that produced it. Classification is a pure table
// lookup over (delta sign, magnitude, boundary crossings); the same pair
// always yields the same formula.
type Classifier struct {
	table map[string]domain.Formula
}

// New loads the embedded koujue table. The table is parsed once per process.
func New() (*Classifier, error) {
	t, err := loadTable()
	if err != nil {
		return nil, err
	}
	return &Classifier{table: t}, nil
}

// Classify inspects a rod's (old, new) values, both in the tolerant 0-15
// range, and returns the matching formula. The second return is false only
// for a no-op (old == new); every actual movement has a named technique.
//
// A transition explainable both without and with a ten-complement reading
// classifies as the plain reading: it needs fewer bead movements, so the
// ten family is recognized only when a value passes outside 0-9 or on the
// ±10 carry/borrow adjustments themselves.
func (c *Classifier) Classify(oldValue, newValue int) (domain.Formula, bool) {
	d := newValue - oldValue
	if d == 0 {
		return domain.Formula{}, false
	}
	m := d
	if m < 0 {
		m = -m
	}

	switch {
	case d == 10:
		return c.table["borrow_ten"], true
	case d == -10:
		return c.table["carry_ten"], true
	case m > 10:
		return c.compound(d, m), true
	case oldValue <= 9 && newValue > 9:
		// Rod pushed past nine: first half of a carrying addition.
		return c.table[fmt.Sprintf("add_%d_ten", d)], true
	case oldValue > 9 && newValue <= 9:
		// Rod dropping back into range: subtraction after a borrow.
		return c.table[fmt.Sprintf("sub_%d_ten", m)], true
	case d > 0:
		if d <= 4 && oldValue >= 5-d && oldValue <= 4 {
			return c.table[fmt.Sprintf("add_%d_five", d)], true
		}
		return c.table[fmt.Sprintf("add_%d", d)], true
	default:
		if m <= 4 && oldValue >= 5 && oldValue <= 4+m {
			return c.table[fmt.Sprintf("sub_%d_five", m)], true
		}
		return c.table[fmt.Sprintf("sub_%d", m)], true
	}
}

// compound covers magnitudes 11-15, reachable only through the tolerant
// value space: a carry or borrow adjustment folded together with a direct
// move. No single canonical koujue names these, so the phrase is composed
// from the two it combines.
func (c *Classifier) compound(d, m int) domain.Formula {
	n := m - 10
	if d > 0 {
		borrow := c.table["borrow_ten"]
		add := c.table[fmt.Sprintf("add_%d", n)]
		return domain.Formula{
			Action:      fmt.Sprintf("borrow_add_%d", n),
			Koujue:      borrow.Koujue + "，" + add.Koujue,
			Description: borrow.Description + " Then: " + add.Description,
		}
	}
	carry := c.table["carry_ten"]
	sub := c.table[fmt.Sprintf("sub_%d", n)]
	return domain.Formula{
		Action:      fmt.Sprintf("carry_sub_%d", n),
		Koujue:      carry.Koujue + "，" + sub.Koujue,
		Description: carry.Description + " Then: " + sub.Description,
	}
}
