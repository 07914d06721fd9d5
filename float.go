package num

import (
	"math"
	"math/big"
	"math/bits"
)

// float64Parts splits a finite, non-negative f into mant * 2**exp. The
// implicit leading bit of normal values is included in mant.
func float64Parts(f float64) (mant uint64, exp int) {
	const (
		mask  = 0x7FF
		shift = 64 - 11 - 1
		bias  = 1023
	)

	b := math.Float64bits(f)
	e := int(b>>shift) & mask
	mant = b & (1<<shift - 1)
	if e == 0 {
		return mant, 1 - bias - shift
	}
	return mant | 1<<shift, e - bias - shift
}

// uintFromFloat truncates f towards zero and converts it to a Uint. from and
// to name the types in the returned error.
func uintFromFloat[A Digits](f float64, from, to string) (out Uint[A], err error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return out, convErr(from, to, NotFinite)
	}

	f = math.Trunc(f)
	if f == 0 {
		return out, nil
	} else if f < 0 {
		return out, convErr(from, to, Negative)
	}

	mant, exp := float64Parts(f)
	if exp < 0 {
		// f is integral, so only zero bits are discarded.
		mant, exp = mant>>uint(-exp), 0
	}
	if bits.Len64(mant)+exp > int(widthOf[A]()) {
		return out, convErr(from, to, TooLarge)
	}
	return uintFrom64[A](mant).Lsh(uint(exp)), nil
}

// UintFromFloat64 converts f to a Uint, truncating any fractional part.
func UintFromFloat64[A Digits](f float64) (Uint[A], error) {
	return uintFromFloat[A](f, "float64", uintName[A]())
}

func UintFromFloat32[A Digits](f float32) (Uint[A], error) {
	return uintFromFloat[A](float64(f), "float32", uintName[A]())
}

// intFromFloat converts the magnitude of f and re-applies the sign.
func intFromFloat[A Digits](f float64, from string) (out Int[A], err error) {
	to := intName[A]()
	if f < 0 {
		mag, err := uintFromFloat[A](-f, from, to)
		if err != nil {
			return out, err
		}
		if mag.GreaterThan(MinInt[A]().u) {
			return out, convErr(from, to, TooLarge)
		}
		return IntFromBits(mag).Neg(), nil
	}

	mag, err := uintFromFloat[A](f, from, to)
	if err != nil {
		return out, err
	}
	if IntFromBits(mag).IsNegative() {
		return out, convErr(from, to, TooLarge)
	}
	return IntFromBits(mag), nil
}

// IntFromFloat64 converts f to an Int, truncating towards zero. NaN and the
// infinities fail with NotFinite, values outside the Int's range fail with
// TooLarge.
func IntFromFloat64[A Digits](f float64) (Int[A], error) {
	return intFromFloat[A](f, "float64")
}

func IntFromFloat32[A Digits](f float32) (Int[A], error) {
	return intFromFloat[A](float64(f), "float32")
}

// AsFloat64 returns the nearest float64 to u.
func (u Uint[A]) AsFloat64() float64 {
	if u.IsUint64() {
		return float64(u.AsUint64())
	}
	f, _ := u.AsBigFloat().Float64()
	return f
}

// AsFloat32 returns the nearest float32 to u.
func (u Uint[A]) AsFloat32() float32 {
	if u.BitLen() <= 24 {
		return float32(u.AsUint64())
	}
	f, _ := u.AsBigFloat().Float32()
	return f
}

// AsFloat64 returns the nearest float64 to i.
func (i Int[A]) AsFloat64() float64 {
	if i.IsNegative() {
		return -i.UnsignedAbs().AsFloat64()
	}
	return i.u.AsFloat64()
}

func (i Int[A]) AsFloat32() float32 {
	if i.IsNegative() {
		return -i.UnsignedAbs().AsFloat32()
	}
	return i.u.AsFloat32()
}

func (i Int[A]) AsBigFloat() *big.Float {
	return new(big.Float).SetInt(i.AsBigInt())
}
