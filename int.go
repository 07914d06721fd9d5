package num

// Int is a two's complement signed integer of fixed width, stored as the bit
// pattern of a Uint of the same width. The sign is the top bit of the top
// digit.
//
// Int values are value types; all operations return new values.
type Int[A Digits] struct {
	u Uint[A]
}

// IntFromBits reinterprets the bits of u as a two's complement Int. Values
// of u with the top bit set become negative. See Int.Bits() for the
// counterpart.
func IntFromBits[A Digits](u Uint[A]) Int[A] { return Int[A]{u: u} }

// MaxInt returns the largest value representable by Int[A].
func MaxInt[A Digits]() Int[A] { return Int[A]{u: MaxUint[A]().Rsh(1)} }

// MinInt returns the smallest value representable by Int[A].
func MinInt[A Digits]() Int[A] { return Int[A]{u: UintOne[A]().Lsh(widthOf[A]() - 1)} }

func IntOne[A Digits]() Int[A]    { return Int[A]{u: UintOne[A]()} }
func IntNegOne[A Digits]() Int[A] { return Int[A]{u: MaxUint[A]()} }

// Bits returns the raw two's complement bit pattern of i.
func (i Int[A]) Bits() Uint[A] { return i.u }

func (i Int[A]) Width() uint { return i.u.Width() }

func (i Int[A]) IsZero() bool { return i.u.IsZero() }

func (i Int[A]) IsNegative() bool {
	return i.u.d[len(i.u.d)-1]&digitSignBit != 0
}

func (i Int[A]) IsPositive() bool { return !i.IsNegative() && !i.IsZero() }

func (i Int[A]) Sign() int {
	if i.IsZero() {
		return 0
	} else if i.IsNegative() {
		return -1
	}
	return 1
}

// UnsignedAbs returns the magnitude of i. Unlike Abs, it does not overflow:
// the magnitude of MinInt fits in a Uint.
func (i Int[A]) UnsignedAbs() Uint[A] {
	if i.IsNegative() {
		return i.u.Neg()
	}
	return i.u
}

func (i Int[A]) Inc() Int[A] { return Int[A]{u: i.u.Inc()} }
func (i Int[A]) Dec() Int[A] { return Int[A]{u: i.u.Dec()} }

// Add returns i+n. Overflow wraps around, as per the Go spec.
func (i Int[A]) Add(n Int[A]) Int[A] { return Int[A]{u: i.u.Add(n.u)} }

// Sub returns i-n. Overflow wraps around, as per the Go spec.
func (i Int[A]) Sub(n Int[A]) Int[A] { return Int[A]{u: i.u.Sub(n.u)} }

// Mul returns the product of two Ints. Overflow wraps around, as per the Go
// spec.
func (i Int[A]) Mul(n Int[A]) Int[A] { return Int[A]{u: i.u.Mul(n.u)} }

// Neg returns -i. Negating MinInt returns MinInt.
func (i Int[A]) Neg() Int[A] { return Int[A]{u: i.u.Neg()} }

// Abs returns |i|. The absolute value of MinInt is MinInt.
func (i Int[A]) Abs() Int[A] {
	if i.IsNegative() {
		return i.Neg()
	}
	return i
}

// Pow returns i**exp. Overflow wraps around.
func (i Int[A]) Pow(exp uint) Int[A] { return Int[A]{u: i.u.Pow(exp)} }

func (i Int[A]) And(n Int[A]) Int[A]    { return Int[A]{u: i.u.And(n.u)} }
func (i Int[A]) AndNot(n Int[A]) Int[A] { return Int[A]{u: i.u.AndNot(n.u)} }
func (i Int[A]) Or(n Int[A]) Int[A]     { return Int[A]{u: i.u.Or(n.u)} }
func (i Int[A]) Xor(n Int[A]) Int[A]    { return Int[A]{u: i.u.Xor(n.u)} }
func (i Int[A]) Not() Int[A]            { return Int[A]{u: i.u.Not()} }

// Lsh shifts i left by n bits. Shifting by the width or more yields zero.
func (i Int[A]) Lsh(n uint) Int[A] { return Int[A]{u: i.u.Lsh(n)} }

// Rsh is an arithmetic right shift: the sign bit is copied into the vacated
// bits. Shifting by the width or more yields 0 or -1, as per the Go spec.
func (i Int[A]) Rsh(n uint) Int[A] {
	if !i.IsNegative() {
		return Int[A]{u: i.u.Rsh(n)}
	}
	w := i.u.Width()
	if n >= w {
		return IntNegOne[A]()
	} else if n == 0 {
		return i
	}
	return Int[A]{u: i.u.Rsh(n).Or(MaxUint[A]().Lsh(w - n))}
}

// QuoRem returns the quotient q and remainder r for y != 0. If y == 0, a
// division-by-zero run-time panic occurs.
//
// QuoRem implements T-division and modulus (like Go):
//
//	q = x/y      with the result truncated to zero
//	r = x - y*q
//
// MinInt / -1 wraps to MinInt, as per the Go spec.
func (i Int[A]) QuoRem(by Int[A]) (q, r Int[A]) {
	qu, ru := i.UnsignedAbs().QuoRem(by.UnsignedAbs())
	q, r = Int[A]{u: qu}, Int[A]{u: ru}
	if i.IsNegative() != by.IsNegative() {
		q = q.Neg()
	}
	if i.IsNegative() {
		r = r.Neg()
	}
	return q, r
}

// Quo returns the quotient x/y for y != 0. If y == 0, a division-by-zero
// run-time panic occurs. Quo implements truncated division (like Go); see
// QuoRem for more details.
func (i Int[A]) Quo(by Int[A]) (q Int[A]) {
	q, _ = i.QuoRem(by)
	return q
}

// Rem returns the remainder of x%y for y != 0. If y == 0, a division-by-zero
// run-time panic occurs. Rem implements truncated modulus (like Go); see
// QuoRem for more details.
func (i Int[A]) Rem(by Int[A]) (r Int[A]) {
	_, r = i.QuoRem(by)
	return r
}

// QuoRemEuclid implements Euclidean division: the remainder is always in
// the range [0, |by|), and the quotient is adjusted to match. If y == 0, a
// division-by-zero run-time panic occurs.
func (i Int[A]) QuoRemEuclid(by Int[A]) (q, r Int[A]) {
	q, r = i.QuoRem(by)
	if r.IsNegative() {
		if by.IsNegative() {
			q, r = q.Inc(), r.Sub(by)
		} else {
			q, r = q.Dec(), r.Add(by)
		}
	}
	return q, r
}

func (i Int[A]) QuoEuclid(by Int[A]) (q Int[A]) {
	q, _ = i.QuoRemEuclid(by)
	return q
}

func (i Int[A]) RemEuclid(by Int[A]) (r Int[A]) {
	_, r = i.QuoRemEuclid(by)
	return r
}

// AddOverflow returns the wrapped sum and whether the true sum was outside
// the range of Int[A].
func (i Int[A]) AddOverflow(n Int[A]) (v Int[A], overflow bool) {
	v = i.Add(n)
	return v, i.IsNegative() == n.IsNegative() && v.IsNegative() != i.IsNegative()
}

func (i Int[A]) SubOverflow(n Int[A]) (v Int[A], overflow bool) {
	v = i.Sub(n)
	return v, i.IsNegative() != n.IsNegative() && v.IsNegative() != i.IsNegative()
}

// AddUnsignedOverflow adds an unsigned value of the same width.
func (i Int[A]) AddUnsignedOverflow(n Uint[A]) (v Int[A], overflow bool) {
	rhs := IntFromBits(n)
	v, overflow = i.AddOverflow(rhs)
	return v, overflow != rhs.IsNegative()
}

func (i Int[A]) SubUnsignedOverflow(n Uint[A]) (v Int[A], overflow bool) {
	rhs := IntFromBits(n)
	v, overflow = i.SubOverflow(rhs)
	return v, overflow != rhs.IsNegative()
}

// MulOverflow returns the wrapped product and whether the true product was
// outside the range of Int[A].
func (i Int[A]) MulOverflow(n Int[A]) (v Int[A], overflow bool) {
	v = i.Mul(n)
	mag, overflow := i.UnsignedAbs().MulOverflow(n.UnsignedAbs())
	if overflow {
		return v, true
	}
	if i.IsNegative() != n.IsNegative() {
		return v, mag.GreaterThan(MinInt[A]().u)
	}
	return v, IntFromBits(mag).IsNegative()
}

// NegOverflow returns -i; the flag is set only for MinInt.
func (i Int[A]) NegOverflow() (Int[A], bool) {
	return i.Neg(), i == MinInt[A]()
}

func (i Int[A]) AbsOverflow() (Int[A], bool) {
	return i.Abs(), i == MinInt[A]()
}

func (i Int[A]) isMinDivNegOne(by Int[A]) bool {
	return i == MinInt[A]() && by == IntNegOne[A]()
}

// QuoOverflow returns i/by. MinInt / -1 returns MinInt with the overflow
// flag set. If by == 0, a division-by-zero run-time panic occurs.
func (i Int[A]) QuoOverflow(by Int[A]) (Int[A], bool) {
	if i.isMinDivNegOne(by) {
		return i, true
	}
	return i.Quo(by), false
}

// RemOverflow returns i%by. MinInt % -1 returns 0 with the overflow flag
// set.
func (i Int[A]) RemOverflow(by Int[A]) (Int[A], bool) {
	if i.isMinDivNegOne(by) {
		return Int[A]{}, true
	}
	return i.Rem(by), false
}

func (i Int[A]) QuoEuclidOverflow(by Int[A]) (Int[A], bool) {
	if i.isMinDivNegOne(by) {
		return i, true
	}
	return i.QuoEuclid(by), false
}

func (i Int[A]) RemEuclidOverflow(by Int[A]) (Int[A], bool) {
	if i.isMinDivNegOne(by) {
		return Int[A]{}, true
	}
	return i.RemEuclid(by), false
}

// LshOverflow shifts i left by n modulo the width. The overflow flag is set
// if n is greater than or equal to the width.
func (i Int[A]) LshOverflow(n uint) (Int[A], bool) {
	w := i.u.Width()
	return i.Lsh(n % w), n >= w
}

// RshOverflow arithmetically shifts i right by n modulo the width. The
// overflow flag is set if n is greater than or equal to the width.
func (i Int[A]) RshOverflow(n uint) (Int[A], bool) {
	w := i.u.Width()
	return i.Rsh(n % w), n >= w
}

func (i Int[A]) LeadingZeros() uint  { return i.u.LeadingZeros() }
func (i Int[A]) LeadingOnes() uint   { return i.u.LeadingOnes() }
func (i Int[A]) TrailingZeros() uint { return i.u.TrailingZeros() }
func (i Int[A]) CountOnes() uint     { return i.u.CountOnes() }
