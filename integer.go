package fixedpoint

// fint (Fast INTeger) is a wrapper around uint64 holding the magnitude
// of a scaled integer.
type fint uint64

// maxFint is a maximum value of fint, which is equal to |math.MinInt64|.
const maxFint = 1 << 63

// pow10 is a cache of powers of 10, where pow10[x] = 10^x.
var pow10 = [...]fint{
	1,                         // 10^0
	10,                        // 10^1
	100,                       // 10^2
	1_000,                     // 10^3
	10_000,                    // 10^4
	100_000,                   // 10^5
	1_000_000,                 // 10^6
	10_000_000,                // 10^7
	100_000_000,               // 10^8
	1_000_000_000,             // 10^9
	10_000_000_000,            // 10^10
	100_000_000_000,           // 10^11
	1_000_000_000_000,         // 10^12
	10_000_000_000_000,        // 10^13
	100_000_000_000_000,       // 10^14
	1_000_000_000_000_000,     // 10^15
	10_000_000_000_000_000,    // 10^16
	100_000_000_000_000_000,   // 10^17
	1_000_000_000_000_000_000, // 10^18
}

// newFint returns the magnitude of v.
// The magnitude of math.MinInt64 is representable because maxFint is 2^63.
func newFint(v int64) fint {
	if v < 0 {
		return fint(-uint64(v))
	}
	return fint(v)
}

// add calculates x + y and checks overflow.
func (x fint) add(y fint) (z fint, ok bool) {
	if maxFint-x < y {
		return 0, false
	}
	z = x + y
	return z, true
}

// mul calculates x * y and checks overflow.
func (x fint) mul(y fint) (z fint, ok bool) {
	if y == 0 {
		return 0, true
	}
	z = x * y
	if z/y != x {
		return 0, false
	}
	if z > maxFint {
		return 0, false
	}
	return z, true
}

// lsh (Left Shift) calculates x * 10^shift and checks overflow.
func (x fint) lsh(shift int) (z fint, ok bool) {
	// Special cases
	switch {
	case shift <= 0:
		return x, true
	case x == 0:
		return 0, true
	case shift >= len(pow10):
		return 0, false
	}
	// General case
	return x.mul(pow10[shift])
}

// fsa (Fused Shift and Addition) calculates x * 10^shift + b and checks overflow.
func (x fint) fsa(shift int, b byte) (z fint, ok bool) {
	z, ok = x.lsh(shift)
	if !ok {
		return 0, false
	}
	z, ok = z.add(fint(b))
	if !ok {
		return 0, false
	}
	return z, true
}

// int64 converts the magnitude back into a signed integer and checks overflow.
func (x fint) int64(neg bool) (int64, bool) {
	switch {
	case neg:
		// -int64(maxFint) wraps to math.MinInt64, which is the desired value.
		return -int64(x), true
	case x > maxFint-1:
		return 0, false
	}
	return int64(x), true
}

// prec returns length of x in decimal digits.
// prec assumes that 0 has no digits.
func (x fint) prec() int {
	left, right := 0, len(pow10)
	for left < right {
		mid := (left + right) / 2
		if x < pow10[mid] {
			right = mid
		} else {
			left = mid + 1
		}
	}
	// 10^19 is not in the table, but every x >= 10^18 has 19 digits.
	return left
}
