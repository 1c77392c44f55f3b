// Package fixtrig implements integer sine and cosine on a 2^15-step phase
// wheel with 2^12 fixed-point output, plus the precomputed angle table the
// renderer indexes.
package fixtrig

const (
	// Shift is the fixed-point fraction width; One is 1.0.
	Shift = 12
	One   = 1 << Shift

	// FullTurn phase units make one revolution.
	FullTurn    = 1 << 15
	QuarterTurn = FullTurn / 4
)

// Epsilon bounds |sin^2 + cos^2 - One^2| for every phase (about 0.1%).
const Epsilon = 16384

// Polynomial calibration and shift constants. n is the Q position of the
// input, a the output, p/q/r the intermediate scalings.
const (
	cA1 uint32 = 3370945099
	cB1 uint32 = 2746362156
	cC1 uint32 = 292421

	qn = 13
	qa = 12
	qp = 32
	qq = 31
	qr = 3
)

// Sin returns sin(2*pi*phase/FullTurn) scaled by One.
//
// Any int16 is accepted; the phase wraps every FullTurn units.
func Sin(phase int16) int16 {
	i := uint32(uint16(phase) << 1) // one turn now spans the full 16 bits
	neg := i&0x8000 != 0

	// Fold the second and fourth quarters onto the first and third.
	if i&0x4000 != 0 {
		i = 1<<15 - i
	}
	i = (i & 0x7FFF) >> 1

	y := (cC1 * i) >> qn
	y = cB1 - (i*y)>>qr
	y = i * (y >> qn)
	y = i * (y >> qn)
	y = cA1 - y>>(qp-qq)
	y = i * (y >> qn)
	y = (y + 1<<(qq-qa-1)) >> (qq - qa)

	if neg {
		return -int16(y)
	}
	return int16(y)
}

// Cos is Sin shifted by a quarter turn.
func Cos(phase int16) int16 {
	return Sin(int16(uint16(phase) + QuarterTurn))
}
