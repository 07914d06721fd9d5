package num

import (
	"fmt"
	"math/big"
	"sync"

	"github.com/zeebo/errs"
)

// Float is the raw bit pattern of an IEEE-754 style binary floating point
// value: one sign bit, then the exponent field, then the mantissa field. The
// split between exponent and mantissa is described by a FloatFormat.
//
// Float does not implement arithmetic.
type Float[A Digits] struct {
	bits Uint[A]
}

func FloatFromBits[A Digits](u Uint[A]) Float[A] { return Float[A]{bits: u} }

func (f Float[A]) Bits() Uint[A] { return f.bits }

func floatSignBit[A Digits]() Uint[A] { return UintOne[A]().Lsh(widthOf[A]() - 1) }

func (f Float[A]) IsSignNegative() bool { return IntFromBits(f.bits).IsNegative() }
func (f Float[A]) IsSignPositive() bool { return !f.IsSignNegative() }

// Neg flips the sign bit.
func (f Float[A]) Neg() Float[A] { return Float[A]{bits: f.bits.Xor(floatSignBit[A]())} }

// Abs clears the sign bit.
func (f Float[A]) Abs() Float[A] { return Float[A]{bits: f.bits.AndNot(floatSignBit[A]())} }

// CopySign returns f with the sign bit of sign.
func (f Float[A]) CopySign(sign Float[A]) Float[A] {
	s := floatSignBit[A]()
	return Float[A]{bits: f.bits.AndNot(s).Or(sign.bits.And(s))}
}

// TotalCmp orders a and b by the IEEE-754 totalOrder predicate:
// -NaN < -Inf < negative values < -0 < +0 < positive values < +Inf < +NaN.
func (f Float[A]) TotalCmp(n Float[A]) int {
	return totalOrderKey(f).Cmp(totalOrderKey(n))
}

// totalOrderKey flips every bit but the sign of negative values, so that the
// signed integer order of the keys matches the float total order.
func totalOrderKey[A Digits](f Float[A]) Int[A] {
	k := IntFromBits(f.bits)
	mask := k.Rsh(k.Width() - 1).Bits().Rsh(1)
	return k.Xor(IntFromBits(mask))
}

// FloatClass is the IEEE-754 category of a Float.
type FloatClass int

const (
	FloatNaN FloatClass = iota + 1
	FloatInfinite
	FloatZero
	FloatSubnormal
	FloatNormal
)

func (c FloatClass) String() string {
	switch c {
	case FloatNaN:
		return "nan"
	case FloatInfinite:
		return "infinite"
	case FloatZero:
		return "zero"
	case FloatSubnormal:
		return "subnormal"
	case FloatNormal:
		return "normal"
	default:
		return fmt.Sprintf("FloatClass(%d)", int(c))
	}
}

// FloatFormat describes a binary floating point layout of width
// len(A) * 32 with MantissaBits() bits of mantissa. All constants are
// derived once, by shifting and masking all-ones and all-zeros patterns, when
// the format is created.
//
// Use NewFloatFormat to obtain one; formats are cached per width and
// mantissa size and are safe for concurrent use.
type FloatFormat[A Digits] struct {
	mantissaBits uint
	expBits      uint

	bias           Int[A]
	minExp         Int[A]
	maxExp         Int[A]
	maxUnbiasedExp Int[A]
	digits         uint

	min, max                   Float[A]
	minPositive, maxNegative   Float[A]
	maxSubnormal, minSubnormal Float[A]
	minPositiveSubnormal       Float[A]
	maxNegativeSubnormal       Float[A]
	nan, negNaN                Float[A]
	inf, negInf                Float[A]
	zero, negZero              Float[A]
	one, negOne                Float[A]
	epsilon                    Float[A]
}

type floatFormatKey struct {
	digits       any
	mantissaBits uint
}

var floatFormats sync.Map

var (
	Binary32  = mustFloatFormat[[1]Digit](23)
	Binary64  = mustFloatFormat[[2]Digit](52)
	Binary128 = mustFloatFormat[[4]Digit](112)
	Binary256 = mustFloatFormat[[8]Digit](236)
)

func mustFloatFormat[A Digits](mantissaBits uint) *FloatFormat[A] {
	ff, err := NewFloatFormat[A](mantissaBits)
	if err != nil {
		panic(err)
	}
	return ff
}

// NewFloatFormat returns the format of width len(A) * 32 with the given
// number of mantissa bits. The mantissa must be at least 1 bit and leave at
// least 2 bits for the exponent.
func NewFloatFormat[A Digits](mantissaBits uint) (*FloatFormat[A], error) {
	var digits A
	key := floatFormatKey{digits: digits, mantissaBits: mantissaBits}
	if v, ok := floatFormats.Load(key); ok {
		return v.(*FloatFormat[A]), nil
	}

	ff, err := newFloatFormat[A](mantissaBits)
	if err != nil {
		return nil, err
	}
	v, _ := floatFormats.LoadOrStore(key, ff)
	return v.(*FloatFormat[A]), nil
}

func newFloatFormat[A Digits](mb uint) (*FloatFormat[A], error) {
	width := widthOf[A]()

	var group errs.Group
	if mb < 1 {
		group.Add(Error.New("float: mantissa bits %d < 1", mb))
	}
	if mb+3 > width {
		group.Add(Error.New("float: mantissa bits %d leave no room for a %d-bit exponent", mb, width))
	}
	if err := group.Err(); err != nil {
		return nil, err
	}

	e := width - mb - 1
	all := MaxUint[A]()
	sign := floatSignBit[A]()
	bits := func(u Uint[A]) Float[A] { return Float[A]{bits: u} }

	ff := &FloatFormat[A]{mantissaBits: mb, expBits: e}

	ff.bias = MaxInt[A]().Rsh(mb + 1)
	two := IntFromBits(UintTwo[A]())
	ff.minExp = two.Sub(ff.bias)
	ff.maxExp = ff.bias.Inc()
	ff.maxUnbiasedExp = ff.bias.Lsh(1)
	ff.digits, _ = UintOne[A]().Lsh(mb).CheckedLog10()

	ff.min = bits(all.Rsh(mb + 1).Lsh(mb + 1).Or(all.Rsh(e + 1)))
	ff.max = ff.min.Abs()

	ff.minPositive = bits(UintOne[A]().Lsh(mb))
	ff.maxNegative = ff.minPositive.Neg()

	ff.maxSubnormal = bits(all.Rsh(e + 1))
	ff.minSubnormal = ff.maxSubnormal.Neg()
	ff.minPositiveSubnormal = bits(UintOne[A]())
	ff.maxNegativeSubnormal = ff.minPositiveSubnormal.Neg()

	ff.nan = bits(all.Lsh(1).Rsh(mb).Lsh(mb - 1))
	ff.negNaN = ff.nan.Neg()

	ff.inf = bits(all.Lsh(1).Rsh(mb + 1).Lsh(mb))
	ff.negInf = bits(all.Rsh(mb).Lsh(mb))

	ff.negZero = bits(sign)

	ff.one = bits(all.Lsh(2).Rsh(mb + 2).Lsh(mb))
	ff.negOne = ff.one.Neg()

	// Epsilon is 2**-mb. It is normal unless the exponent field is too narrow
	// to reach it.
	mbInt := IntFromBits(uintFrom64[A](uint64(mb)))
	if ff.bias.GreaterThan(mbInt) {
		ff.epsilon = bits(ff.bias.Sub(mbInt).Bits().Lsh(mb))
	} else {
		ff.epsilon = bits(UintOne[A]().Lsh(uint(ff.bias.AsInt64() - 1)))
	}

	return ff, nil
}

func (ff *FloatFormat[A]) Width() uint        { return widthOf[A]() }
func (ff *FloatFormat[A]) MantissaBits() uint { return ff.mantissaBits }
func (ff *FloatFormat[A]) ExponentBits() uint { return ff.expBits }

func (ff *FloatFormat[A]) Radix() uint { return 2 }

// MantissaDigits is the number of significant binary digits, including the
// implicit leading bit.
func (ff *FloatFormat[A]) MantissaDigits() uint { return ff.mantissaBits + 1 }

// Digits is the number of decimal digits that survive a round trip through
// the format.
func (ff *FloatFormat[A]) Digits() uint { return ff.digits }

func (ff *FloatFormat[A]) ExpBias() Int[A]        { return ff.bias }
func (ff *FloatFormat[A]) MinExp() Int[A]         { return ff.minExp }
func (ff *FloatFormat[A]) MaxExp() Int[A]         { return ff.maxExp }
func (ff *FloatFormat[A]) MaxUnbiasedExp() Int[A] { return ff.maxUnbiasedExp }

func (ff *FloatFormat[A]) Min() Float[A]                  { return ff.min }
func (ff *FloatFormat[A]) Max() Float[A]                  { return ff.max }
func (ff *FloatFormat[A]) MinPositive() Float[A]          { return ff.minPositive }
func (ff *FloatFormat[A]) MaxNegative() Float[A]          { return ff.maxNegative }
func (ff *FloatFormat[A]) MaxSubnormal() Float[A]         { return ff.maxSubnormal }
func (ff *FloatFormat[A]) MinSubnormal() Float[A]         { return ff.minSubnormal }
func (ff *FloatFormat[A]) MinPositiveSubnormal() Float[A] { return ff.minPositiveSubnormal }
func (ff *FloatFormat[A]) MaxNegativeSubnormal() Float[A] { return ff.maxNegativeSubnormal }
func (ff *FloatFormat[A]) NaN() Float[A]                  { return ff.nan }
func (ff *FloatFormat[A]) NegNaN() Float[A]               { return ff.negNaN }
func (ff *FloatFormat[A]) Infinity() Float[A]             { return ff.inf }
func (ff *FloatFormat[A]) NegInfinity() Float[A]          { return ff.negInf }
func (ff *FloatFormat[A]) Zero() Float[A]                 { return ff.zero }
func (ff *FloatFormat[A]) NegZero() Float[A]              { return ff.negZero }
func (ff *FloatFormat[A]) One() Float[A]                  { return ff.one }
func (ff *FloatFormat[A]) NegOne() Float[A]               { return ff.negOne }

// Epsilon is the difference between 1.0 and the next representable value,
// 2**-MantissaBits().
func (ff *FloatFormat[A]) Epsilon() Float[A] { return ff.epsilon }

// Fields splits f into its sign bit, raw (biased) exponent field and
// mantissa field.
func (ff *FloatFormat[A]) Fields(f Float[A]) (negative bool, exp, mant Uint[A]) {
	w := widthOf[A]()
	exp = f.bits.Lsh(1).Rsh(ff.mantissaBits + 1)
	mant = f.bits.Lsh(w - ff.mantissaBits).Rsh(w - ff.mantissaBits)
	return f.IsSignNegative(), exp, mant
}

func (ff *FloatFormat[A]) Classify(f Float[A]) FloatClass {
	_, exp, mant := ff.Fields(f)
	switch {
	case exp.IsZero() && mant.IsZero():
		return FloatZero
	case exp.IsZero():
		return FloatSubnormal
	case exp.CountOnes() == ff.expBits:
		if mant.IsZero() {
			return FloatInfinite
		}
		return FloatNaN
	default:
		return FloatNormal
	}
}

func (ff *FloatFormat[A]) IsNaN(f Float[A]) bool       { return ff.Classify(f) == FloatNaN }
func (ff *FloatFormat[A]) IsInfinite(f Float[A]) bool  { return ff.Classify(f) == FloatInfinite }
func (ff *FloatFormat[A]) IsZero(f Float[A]) bool      { return ff.Classify(f) == FloatZero }
func (ff *FloatFormat[A]) IsSubnormal(f Float[A]) bool { return ff.Classify(f) == FloatSubnormal }
func (ff *FloatFormat[A]) IsNormal(f Float[A]) bool    { return ff.Classify(f) == FloatNormal }

func (ff *FloatFormat[A]) IsFinite(f Float[A]) bool {
	c := ff.Classify(f)
	return c != FloatNaN && c != FloatInfinite
}

// PartialCmp compares a and b numerically. ok is false if either is NaN.
// Negative and positive zero compare equal.
func (ff *FloatFormat[A]) PartialCmp(a, b Float[A]) (cmp int, ok bool) {
	if ff.IsNaN(a) || ff.IsNaN(b) {
		return 0, false
	}
	if ff.IsZero(a) && ff.IsZero(b) {
		return 0, true
	}
	return a.TotalCmp(b), true
}

// BigFloat returns the exact value of f. NaN has no big.Float equivalent and
// returns an error, as do exponents beyond the range of big.Float.
func (ff *FloatFormat[A]) BigFloat(f Float[A]) (*big.Float, error) {
	negative, exp, mant := ff.Fields(f)

	out := new(big.Float)
	switch ff.Classify(f) {
	case FloatNaN:
		return nil, Error.New("float: NaN has no big.Float value")

	case FloatInfinite:
		return out.SetInf(negative), nil

	case FloatZero:
		if negative {
			out.Neg(out)
		}
		return out, nil

	case FloatSubnormal:
		exp = UintOne[A]()

	default:
		mant = mant.SetBit(ff.mantissaBits, 1)
	}

	if !ff.bias.IsInt64() || !exp.IsUint64() {
		return nil, Error.New("float: exponent of %d-bit format out of big.Float range", ff.Width())
	}
	e := int64(exp.AsUint64()) - ff.bias.AsInt64() - int64(ff.mantissaBits)
	if e < big.MinExp || e > big.MaxExp {
		return nil, Error.New("float: exponent %d out of big.Float range", e)
	}

	out.SetMantExp(new(big.Float).SetInt(mant.AsBigInt()), int(e))
	if negative {
		out.Neg(out)
	}
	return out, nil
}
