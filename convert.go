package num

import (
	"fmt"
	"math/big"
	"math/bits"

	"golang.org/x/exp/constraints"
)

// intShape reports the width in bits of the native integer type T and
// whether it is signed.
func intShape[T constraints.Integer]() (size uint, signed bool) {
	var zero T
	if ^zero < zero {
		size = 1
		for x := T(1); x > 0; x <<= 1 {
			size++
		}
		return size, true
	}
	return uint(bits.Len64(uint64(^zero))), false
}

func nativeName[T constraints.Integer]() string {
	var zero T
	return fmt.Sprintf("%T", zero)
}

// UintFrom converts a native integer into a Uint. Negative values fail with
// Negative, values wider than the Uint fail with TooLarge.
func UintFrom[A Digits, T constraints.Integer](v T) (out Uint[A], err error) {
	if _, signed := intShape[T](); signed && v < 0 {
		return out, convErr(nativeName[T](), uintName[A](), Negative)
	}
	x := uint64(v)
	if uint(bits.Len64(x)) > widthOf[A]() {
		return out, convErr(nativeName[T](), uintName[A](), TooLarge)
	}
	return uintFrom64[A](x), nil
}

// UintInto converts u into the native integer type T, failing with TooLarge
// if it does not fit.
func UintInto[T constraints.Integer, A Digits](u Uint[A]) (out T, err error) {
	size, signed := intShape[T]()
	if signed {
		size--
	}
	if u.BitLen() > size {
		return out, convErr(uintName[A](), nativeName[T](), TooLarge)
	}
	return T(u.AsUint64()), nil
}

// IntFrom converts a native integer into an Int. Signed sources are sign
// extended; the conversion fails with TooLarge only when T is wider than the
// Int and v does not fit.
func IntFrom[A Digits, T constraints.Integer](v T) (out Int[A], err error) {
	size, signed := intShape[T]()
	width := widthOf[A]()

	if !signed {
		x := uint64(v)
		if uint(bits.Len64(x)) > width-1 {
			return out, convErr(nativeName[T](), intName[A](), TooLarge)
		}
		return Int[A]{u: uintFrom64[A](x)}, nil
	}

	x := int64(v)
	var u Uint[A]
	if x < 0 {
		u = MaxUint[A]()
	}
	for i := 0; i < len(u.d) && i < 64/digitBits; i++ {
		u.d[i] = Digit(uint64(x) >> (uint(i) * digitBits))
	}

	out = Int[A]{u: u}
	if size > width && out.AsInt64() != x {
		return Int[A]{}, convErr(nativeName[T](), intName[A](), TooLarge)
	}
	return out, nil
}

// IntInto converts i into the native integer type T. Negative values fail
// with Negative if T is unsigned; values outside T's range fail with
// TooLarge.
func IntInto[T constraints.Integer, A Digits](i Int[A]) (out T, err error) {
	size, signed := intShape[T]()

	if i.IsNegative() {
		if !signed {
			return out, convErr(intName[A](), nativeName[T](), Negative)
		}
		// ^i == -i-1, which has the same bit length as the smallest
		// magnitude that still fits.
		if i.Not().u.BitLen() > size-1 {
			return out, convErr(intName[A](), nativeName[T](), TooLarge)
		}
		return T(i.AsInt64()), nil
	}

	if signed {
		size--
	}
	if i.u.BitLen() > size {
		return out, convErr(intName[A](), nativeName[T](), TooLarge)
	}
	return T(i.u.AsUint64()), nil
}

// uintFromBigAbs copies the absolute value of v into a Uint if it fits.
func uintFromBigAbs[A Digits](v *big.Int) (u Uint[A], ok bool) {
	width := widthOf[A]()
	if uint(v.BitLen()) > width {
		return u, false
	}

	var buf [64]byte
	n := int(width / 8)
	b := buf[:n]
	v.FillBytes(b)

	for i := 0; i < len(u.d); i++ {
		o := n - 4*(i+1)
		u.d[i] = Digit(b[o])<<24 | Digit(b[o+1])<<16 | Digit(b[o+2])<<8 | Digit(b[o+3])
	}
	return u, true
}

// UintFromBigInt converts v into a Uint, failing with Negative or TooLarge.
func UintFromBigInt[A Digits](v *big.Int) (out Uint[A], err error) {
	if v.Sign() < 0 {
		return out, convErr("big.Int", uintName[A](), Negative)
	}
	out, ok := uintFromBigAbs[A](v)
	if !ok {
		return out, convErr("big.Int", uintName[A](), TooLarge)
	}
	return out, nil
}

// parseBig parses s in the given radix. The sign has already been validated
// by the caller for unsigned targets.
func parseBig(s string, radix int) (*big.Int, error) {
	if radix < 2 || radix > 36 {
		return nil, Error.New("radix %d out of range [2, 36]", radix)
	}

	body := s
	if len(body) > 0 && (body[0] == '+' || body[0] == '-') {
		body = body[1:]
	}
	if body == "" {
		return nil, parseErr(s, radix, Empty)
	}

	b, ok := new(big.Int).SetString(s, radix)
	if !ok {
		return nil, parseErr(s, radix, InvalidDigit)
	}
	return b, nil
}

// UintFromString parses a decimal string into a Uint.
func UintFromString[A Digits](s string) (out Uint[A], err error) {
	return UintFromStringRadix[A](s, 10)
}

// UintFromStringRadix parses s in the given radix (2 to 36) into a Uint.
// A leading '+' is accepted, a leading '-' is an invalid digit. Values that
// do not fit fail with PosOverflow.
func UintFromStringRadix[A Digits](s string, radix int) (out Uint[A], err error) {
	if len(s) > 0 && s[0] == '-' {
		return out, parseErr(s, radix, InvalidDigit)
	}
	b, err := parseBig(s, radix)
	if err != nil {
		return out, err
	}
	out, ok := uintFromBigAbs[A](b)
	if !ok {
		return Uint[A]{}, parseErr(s, radix, PosOverflow)
	}
	return out, nil
}
