package num

import (
	"fmt"
	"math/big"
	"strconv"
)

func I128From64(v int64) I128 {
	out, _ := IntFrom[[4]Digit](v)
	return out
}

func I128From32(v int32) I128   { return I128From64(int64(v)) }
func I128From16(v int16) I128   { return I128From64(int64(v)) }
func I128From8(v int8) I128     { return I128From64(int64(v)) }
func I128FromInt(v int) I128    { return I128From64(int64(v)) }
func I128FromU64(v uint64) I128 { return I128{u: U128From64(v)} }

// IntFromBool returns 1 for true and 0 for false.
func IntFromBool[A Digits](b bool) (out Int[A]) {
	if b {
		return IntOne[A]()
	}
	return out
}

// IntFromUint converts u to an Int if it is no larger than MaxInt.
// Values with the top bit set fail with TooLarge.
func IntFromUint[A Digits](u Uint[A]) (out Int[A], err error) {
	v := IntFromBits(u)
	if v.IsNegative() {
		return out, convErr(uintName[A](), intName[A](), TooLarge)
	}
	return v, nil
}

// Uint converts i to a Uint of the same width, failing with Negative if i
// is below zero.
func (i Int[A]) Uint() (out Uint[A], err error) {
	if i.IsNegative() {
		return out, convErr(intName[A](), uintName[A](), Negative)
	}
	return i.u, nil
}

// IntFromBigInt converts v to an Int, failing with TooLarge if v is outside
// the range of Int[A].
func IntFromBigInt[A Digits](v *big.Int) (out Int[A], err error) {
	out, ok := intFromBig[A](v)
	if !ok {
		return out, convErr("big.Int", intName[A](), TooLarge)
	}
	return out, nil
}

func intFromBig[A Digits](v *big.Int) (out Int[A], ok bool) {
	mag, ok := uintFromBigAbs[A](v)
	if !ok {
		return out, false
	}
	if v.Sign() < 0 {
		if mag.GreaterThan(MinInt[A]().u) {
			return out, false
		}
		return IntFromBits(mag).Neg(), true
	}
	out = IntFromBits(mag)
	return out, !out.IsNegative()
}

// IntFromString parses a decimal string into an Int.
func IntFromString[A Digits](s string) (out Int[A], err error) {
	return IntFromStringRadix[A](s, 10)
}

// IntFromStringRadix parses s in the given radix (2 to 36) into an Int.
// Errors are *ParseError values wrapped in the Error class; values outside
// the range of Int[A] fail with PosOverflow or NegOverflow.
func IntFromStringRadix[A Digits](s string, radix int) (out Int[A], err error) {
	b, err := parseBig(s, radix)
	if err != nil {
		return out, err
	}
	out, ok := intFromBig[A](b)
	if !ok {
		if b.Sign() < 0 {
			return Int[A]{}, parseErr(s, radix, NegOverflow)
		}
		return Int[A]{}, parseErr(s, radix, PosOverflow)
	}
	return out, nil
}

// AsInt64 truncates i to fit in an int64. Values outside the range will
// over/underflow. See IsInt64() if you want to check before you convert.
func (i Int[A]) AsInt64() int64 {
	v := i.u.AsUint64()
	if w := i.u.Width(); w < 64 && i.IsNegative() {
		v |= ^uint64(0) << w
	}
	return int64(v)
}

// IsInt64 reports whether i can be represented as an int64.
func (i Int[A]) IsInt64() bool {
	if i.IsNegative() {
		return i.Not().u.BitLen() <= 63
	}
	return i.u.BitLen() <= 63
}

// IntoBigInt copies i into a big.Int, allowing you to retain and recycle
// memory.
func (i Int[A]) IntoBigInt(b *big.Int) {
	i.UnsignedAbs().IntoBigInt(b)
	if i.IsNegative() {
		b.Neg(b)
	}
}

// AsBigInt allocates a new big.Int and copies i into it.
func (i Int[A]) AsBigInt() *big.Int {
	var b big.Int
	i.IntoBigInt(&b)
	return &b
}

func (i Int[A]) String() string {
	if i.IsInt64() {
		return strconv.FormatInt(i.AsInt64(), 10)
	}
	return i.AsBigInt().String()
}

func (i Int[A]) Format(s fmt.State, c rune) {
	// FIXME: This is good enough for now, but not forever.
	i.AsBigInt().Format(s, c)
}

func (i Int[A]) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

func (i *Int[A]) UnmarshalText(bts []byte) (err error) {
	v, err := IntFromString[A](string(bts))
	if err != nil {
		return err
	}
	*i = v
	return nil
}

func (i Int[A]) MarshalJSON() ([]byte, error) {
	return []byte(`"` + i.String() + `"`), nil
}

func (i *Int[A]) UnmarshalJSON(bts []byte) (err error) {
	if len(bts) > 0 && bts[0] == '"' {
		ln := len(bts)
		if ln < 2 || bts[ln-1] != '"' {
			return Error.New("%s invalid JSON %q", intName[A](), string(bts))
		}
		bts = bts[1 : ln-1]
	}

	v, err := IntFromString[A](string(bts))
	if err != nil {
		return err
	}
	*i = v
	return nil
}
