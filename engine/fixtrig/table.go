package fixtrig

// MaxPoints is the finest table a one-unit phase step allows.
const MaxPoints = FullTurn

// Table holds Sin/Cos sampled at n evenly spaced phases. Index a is the
// angle a/n of a turn. Built once, read-only afterwards.
type Table struct {
	step int16
	sin  []int16
	cos  []int16
}

// NewTable samples n slots; n is clamped to [1, MaxPoints].
func NewTable(n int) *Table {
	if n < 1 {
		n = 1
	}
	if n > MaxPoints {
		n = MaxPoints
	}
	t := &Table{
		step: int16(FullTurn / n),
		sin:  make([]int16, n),
		cos:  make([]int16, n),
	}
	for i := 0; i < n; i++ {
		p := t.Phase(i)
		t.sin[i] = Sin(p)
		t.cos[i] = Cos(p)
	}
	return t
}

// Len is the number of slots in one revolution.
func (t *Table) Len() int { return len(t.sin) }

// Step is the phase distance between adjacent slots.
func (t *Table) Step() int16 { return t.step }

// Phase returns the wheel phase of slot a.
func (t *Table) Phase(a int) int16 { return int16(a * int(t.step)) }

// Sine returns the sine of slot a. a must be in [0, Len()).
func (t *Table) Sine(a int) int16 { return t.sin[a] }

// Cosine returns the cosine of slot a. a must be in [0, Len()).
func (t *Table) Cosine(a int) int16 { return t.cos[a] }
