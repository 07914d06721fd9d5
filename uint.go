package num

import (
	"fmt"
	"math/big"
	"math/bits"
	"strconv"
)

// Uint is an unsigned integer of fixed width. The width is chosen by the
// digit array type A: U128 is Uint[[4]Digit].
//
// Uint values are value types; all operations return new values. Two Uint
// values can be compared with ==.
type Uint[A Digits] struct {
	d A
}

// UintFromDigits creates a Uint from its digits, least-significant first.
// See Uint.Digits() for the counterpart.
func UintFromDigits[A Digits](d A) Uint[A] { return Uint[A]{d: d} }

// MaxUint returns the Uint with every bit set.
func MaxUint[A Digits]() (u Uint[A]) {
	for i := 0; i < len(u.d); i++ {
		u.d[i] = digitMax
	}
	return u
}

func UintOne[A Digits]() (u Uint[A]) { u.d[0] = 1; return u }
func UintTwo[A Digits]() (u Uint[A]) { u.d[0] = 2; return u }

func U128From64(v uint64) U128 { return uintFrom64[[4]Digit](v) }
func U128From32(v uint32) U128 { return uintFrom64[[4]Digit](uint64(v)) }
func U128From16(v uint16) U128 { return uintFrom64[[4]Digit](uint64(v)) }
func U128From8(v uint8) U128   { return uintFrom64[[4]Digit](uint64(v)) }

// Digits returns the raw digits of u, least-significant first.
func (u Uint[A]) Digits() A { return u.d }

// Width returns the width of u in bits.
func (u Uint[A]) Width() uint { return uint(len(u.d)) * digitBits }

func (u Uint[A]) IsZero() bool {
	var zero Uint[A]
	return u == zero
}

func (u Uint[A]) String() string {
	// FIXME: This is good enough for now, but not forever.
	if u.IsUint64() {
		return strconv.FormatUint(u.AsUint64(), 10)
	}
	return u.AsBigInt().String()
}

func (u Uint[A]) Format(s fmt.State, c rune) {
	// FIXME: This is good enough for now, but not forever.
	u.AsBigInt().Format(s, c)
}

// IntoBigInt copies u into a big.Int, allowing you to retain and recycle
// memory.
func (u Uint[A]) IntoBigInt(b *big.Int) {
	ln := len(u.d)
	buf := make([]byte, ln*4)
	for i := 0; i < ln; i++ {
		d := u.d[ln-1-i]
		buf[i*4], buf[i*4+1], buf[i*4+2], buf[i*4+3] = byte(d>>24), byte(d>>16), byte(d>>8), byte(d)
	}
	b.SetBytes(buf)
}

func (u Uint[A]) AsBigInt() *big.Int {
	var v big.Int
	u.IntoBigInt(&v)
	return &v
}

func (u Uint[A]) AsBigFloat() *big.Float {
	return new(big.Float).SetInt(u.AsBigInt())
}

// AsUint64 truncates u to fit in a uint64. Values outside the range will
// over/underflow. See IsUint64() if you want to check before you convert.
func (u Uint[A]) AsUint64() (v uint64) {
	for i := 0; i < len(u.d) && i < 64/digitBits; i++ {
		v |= uint64(u.d[i]) << (uint(i) * digitBits)
	}
	return v
}

// IsUint64 reports whether u can be represented as a uint64.
func (u Uint[A]) IsUint64() bool { return u.BitLen() <= 64 }

func (u Uint[A]) Inc() (v Uint[A]) {
	v = u
	for i := 0; i < len(v.d); i++ {
		v.d[i]++
		if v.d[i] != 0 {
			break
		}
	}
	return v
}

func (u Uint[A]) Dec() (v Uint[A]) {
	v = u
	for i := 0; i < len(v.d); i++ {
		v.d[i]--
		if v.d[i] != digitMax {
			break
		}
	}
	return v
}

// AddOverflow returns u+n and whether the addition carried out of the top
// digit.
func (u Uint[A]) AddOverflow(n Uint[A]) (v Uint[A], overflow bool) {
	var carry Digit
	for i := 0; i < len(u.d); i++ {
		v.d[i], carry = bits.Add32(u.d[i], n.d[i], carry)
	}
	return v, carry != 0
}

// Add returns u+n. Overflow wraps around, as per the Go spec.
func (u Uint[A]) Add(n Uint[A]) Uint[A] {
	v, _ := u.AddOverflow(n)
	return v
}

// SubOverflow returns u-n and whether the subtraction borrowed past the top
// digit.
func (u Uint[A]) SubOverflow(n Uint[A]) (v Uint[A], overflow bool) {
	var borrow Digit
	for i := 0; i < len(u.d); i++ {
		v.d[i], borrow = bits.Sub32(u.d[i], n.d[i], borrow)
	}
	return v, borrow != 0
}

func (u Uint[A]) Sub(n Uint[A]) Uint[A] {
	v, _ := u.SubOverflow(n)
	return v
}

// NegOverflow returns the two's complement of u. Negating any value other
// than zero overflows.
func (u Uint[A]) NegOverflow() (Uint[A], bool) {
	return u.Neg(), !u.IsZero()
}

func (u Uint[A]) Neg() Uint[A] { return u.Not().Inc() }

// MulOverflow returns the low digits of u*n and whether any part of the
// product did not fit.
func (u Uint[A]) MulOverflow(n Uint[A]) (v Uint[A], overflow bool) {
	ln := len(u.d)
	for i := 0; i < ln; i++ {
		if u.d[i] == 0 {
			continue
		}
		var carry Digit
		for j := 0; j < ln; j++ {
			if i+j >= ln {
				if n.d[j] != 0 {
					overflow = true
				}
				continue
			}
			carry, v.d[i+j] = mulAddDigit(u.d[i], n.d[j], v.d[i+j], carry)
		}
		if carry != 0 {
			overflow = true
		}
	}
	return v, overflow
}

// Mul returns the product of two Uints. Overflow wraps around, as per the Go
// spec.
func (u Uint[A]) Mul(n Uint[A]) Uint[A] {
	v, _ := u.MulOverflow(n)
	return v
}

// QuoRem returns the quotient q and remainder r for y != 0. If y == 0, a
// division-by-zero run-time panic occurs.
//
// QuoRem implements T-division and modulus (like Go):
//
//	q = x/y      with the result truncated to zero
//	r = x - y*q
//
func (u Uint[A]) QuoRem(by Uint[A]) (q, r Uint[A]) {
	if by.IsZero() {
		panic("num: division by zero")
	}

	if by.BitLen() <= digitBits {
		var rd Digit
		q, rd = quoRemDigit(u, by.d[0])
		r.d[0] = rd
		return q, r
	}

	if cmp := u.Cmp(by); cmp < 0 {
		return q, u // it's 100% remainder
	} else if cmp == 0 {
		q.d[0] = 1 // dividend and divisor are the same
		return q, r
	}

	return quoRemBin(u, by)
}

// Quo returns the quotient x/y for y != 0. If y == 0, a division-by-zero
// run-time panic occurs. Quo implements truncated division (like Go); see
// QuoRem for more details.
func (u Uint[A]) Quo(by Uint[A]) (q Uint[A]) {
	q, _ = u.QuoRem(by)
	return q
}

// Rem returns the remainder of x%y for y != 0. If y == 0, a division-by-zero
// run-time panic occurs.
func (u Uint[A]) Rem(by Uint[A]) (r Uint[A]) {
	_, r = u.QuoRem(by)
	return r
}

// QuoEuclid and RemEuclid are identical to Quo and Rem for unsigned values.
func (u Uint[A]) QuoEuclid(by Uint[A]) Uint[A] { return u.Quo(by) }
func (u Uint[A]) RemEuclid(by Uint[A]) Uint[A] { return u.Rem(by) }

func (u Uint[A]) And(n Uint[A]) (v Uint[A]) {
	for i := 0; i < len(u.d); i++ {
		v.d[i] = u.d[i] & n.d[i]
	}
	return v
}

func (u Uint[A]) AndNot(n Uint[A]) (v Uint[A]) {
	for i := 0; i < len(u.d); i++ {
		v.d[i] = u.d[i] &^ n.d[i]
	}
	return v
}

func (u Uint[A]) Or(n Uint[A]) (v Uint[A]) {
	for i := 0; i < len(u.d); i++ {
		v.d[i] = u.d[i] | n.d[i]
	}
	return v
}

func (u Uint[A]) Xor(n Uint[A]) (v Uint[A]) {
	for i := 0; i < len(u.d); i++ {
		v.d[i] = u.d[i] ^ n.d[i]
	}
	return v
}

func (u Uint[A]) Not() (v Uint[A]) {
	for i := 0; i < len(u.d); i++ {
		v.d[i] = ^u.d[i]
	}
	return v
}

// Lsh shifts u left by n bits. Shifting by the width or more yields zero,
// as per the Go spec.
func (u Uint[A]) Lsh(n uint) (v Uint[A]) {
	ln := len(u.d)
	if n == 0 {
		return u
	} else if n >= uint(ln)*digitBits {
		return v
	}

	ds, bs := int(n/digitBits), n%digitBits
	for i := ln - 1; i >= ds; i-- {
		d := u.d[i-ds] << bs
		if bs > 0 && i-ds-1 >= 0 {
			d |= u.d[i-ds-1] >> (digitBits - bs)
		}
		v.d[i] = d
	}
	return v
}

// Rsh shifts u right by n bits. Shifting by the width or more yields zero.
func (u Uint[A]) Rsh(n uint) (v Uint[A]) {
	ln := len(u.d)
	if n == 0 {
		return u
	} else if n >= uint(ln)*digitBits {
		return v
	}

	ds, bs := int(n/digitBits), n%digitBits
	for i := 0; i+ds < ln; i++ {
		d := u.d[i+ds] >> bs
		if bs > 0 && i+ds+1 < ln {
			d |= u.d[i+ds+1] << (digitBits - bs)
		}
		v.d[i] = d
	}
	return v
}

// LshOverflow shifts u left by n modulo the width. The overflow flag is set
// if n is greater than or equal to the width.
func (u Uint[A]) LshOverflow(n uint) (Uint[A], bool) {
	w := u.Width()
	return u.Lsh(n % w), n >= w
}

// RshOverflow shifts u right by n modulo the width. The overflow flag is set
// if n is greater than or equal to the width.
func (u Uint[A]) RshOverflow(n uint) (Uint[A], bool) {
	w := u.Width()
	return u.Rsh(n % w), n >= w
}

func (u Uint[A]) LeadingZeros() uint {
	ln := len(u.d)
	for i := ln - 1; i >= 0; i-- {
		if u.d[i] != 0 {
			return uint(ln-1-i)*digitBits + uint(bits.LeadingZeros32(u.d[i]))
		}
	}
	return uint(ln) * digitBits
}

func (u Uint[A]) LeadingOnes() uint { return u.Not().LeadingZeros() }

func (u Uint[A]) TrailingZeros() uint {
	for i := 0; i < len(u.d); i++ {
		if u.d[i] != 0 {
			return uint(i)*digitBits + uint(bits.TrailingZeros32(u.d[i]))
		}
	}
	return u.Width()
}

// BitLen returns the number of bits required to represent u.
func (u Uint[A]) BitLen() uint { return u.Width() - u.LeadingZeros() }

func (u Uint[A]) CountOnes() (n uint) {
	for i := 0; i < len(u.d); i++ {
		n += uint(bits.OnesCount32(u.d[i]))
	}
	return n
}

// Bit returns the value of the i'th bit of u. Bits outside the width are
// zero.
func (u Uint[A]) Bit(i uint) uint {
	if i >= u.Width() {
		return 0
	}
	return uint(u.d[i/digitBits]>>(i%digitBits)) & 1
}

// SetBit returns u with the i'th bit set to b (0 or 1). Setting a bit
// outside the width is a no-op.
func (u Uint[A]) SetBit(i uint, b uint) Uint[A] {
	if i >= u.Width() {
		return u
	}
	mask := Digit(1) << (i % digitBits)
	if b == 0 {
		u.d[i/digitBits] &^= mask
	} else {
		u.d[i/digitBits] |= mask
	}
	return u
}

// Cmp compares u to n and returns:
//
//	< 0 if u <  n
//	  0 if u == n
//	> 0 if u >  n
//
// The specific value returned by Cmp is undefined, but it is guaranteed to
// satisfy the above constraints.
func (u Uint[A]) Cmp(n Uint[A]) int {
	for i := len(u.d) - 1; i >= 0; i-- {
		if u.d[i] > n.d[i] {
			return 1
		} else if u.d[i] < n.d[i] {
			return -1
		}
	}
	return 0
}

func (u Uint[A]) Equal(n Uint[A]) bool            { return u == n }
func (u Uint[A]) GreaterThan(n Uint[A]) bool      { return u.Cmp(n) > 0 }
func (u Uint[A]) GreaterOrEqualTo(n Uint[A]) bool { return u.Cmp(n) >= 0 }
func (u Uint[A]) LessThan(n Uint[A]) bool         { return u.Cmp(n) < 0 }
func (u Uint[A]) LessOrEqualTo(n Uint[A]) bool    { return u.Cmp(n) <= 0 }

// Pow returns u**exp. Overflow wraps around.
func (u Uint[A]) Pow(exp uint) Uint[A] {
	acc := UintOne[A]()
	for exp > 0 {
		if exp&1 == 1 {
			acc = acc.Mul(u)
		}
		exp >>= 1
		if exp > 0 {
			u = u.Mul(u)
		}
	}
	return acc
}

// CheckedPow returns u**exp, or ok == false if the result does not fit.
//
// The base is only squared while bits of exp remain, so an overflowing
// square always means an overflowing result.
func (u Uint[A]) CheckedPow(exp uint) (out Uint[A], ok bool) {
	if exp == 0 {
		return UintOne[A](), true
	}

	var overflow bool
	acc := UintOne[A]()
	for exp > 1 {
		if exp&1 == 1 {
			if acc, overflow = acc.MulOverflow(u); overflow {
				return out, false
			}
		}
		exp >>= 1
		if u, overflow = u.MulOverflow(u); overflow {
			return out, false
		}
	}
	if acc, overflow = acc.MulOverflow(u); overflow {
		return out, false
	}
	return acc, true
}

// logBase selects the base of checkedLog.
type logBase uint8

const (
	logBase2 logBase = iota
	logBase10
)

// powersOfTen9 is the largest power of ten that fits in a Digit.
const powersOfTen9 = 1_000_000_000

func (u Uint[A]) checkedLog(base logBase) (uint, bool) {
	if u.IsZero() {
		return 0, false
	}

	switch base {
	case logBase2:
		return u.BitLen() - 1, true

	case logBase10:
		var n uint
		for u.BitLen() > digitBits {
			u, _ = quoRemDigit(u, powersOfTen9)
			n += 9
		}
		for d := u.d[0]; d >= 10; d /= 10 {
			n++
		}
		return n, true

	default:
		panic(fmt.Errorf("num: unknown log base %d", base))
	}
}

// CheckedLog2 returns floor(log2(u)), or ok == false if u is zero.
func (u Uint[A]) CheckedLog2() (uint, bool) { return u.checkedLog(logBase2) }

// CheckedLog10 returns floor(log10(u)), or ok == false if u is zero.
func (u Uint[A]) CheckedLog10() (uint, bool) { return u.checkedLog(logBase10) }

func (u Uint[A]) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

func (u *Uint[A]) UnmarshalText(bts []byte) (err error) {
	v, err := UintFromString[A](string(bts))
	if err != nil {
		return err
	}
	*u = v
	return nil
}

func (u Uint[A]) MarshalJSON() ([]byte, error) {
	return []byte(`"` + u.String() + `"`), nil
}

func (u *Uint[A]) UnmarshalJSON(bts []byte) (err error) {
	if len(bts) > 0 && bts[0] == '"' {
		ln := len(bts)
		if ln < 2 || bts[ln-1] != '"' {
			return Error.New("%s invalid JSON %q", uintName[A](), string(bts))
		}
		bts = bts[1 : ln-1]
	}

	v, err := UintFromString[A](string(bts))
	if err != nil {
		return err
	}
	*u = v
	return nil
}
