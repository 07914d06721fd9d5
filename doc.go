/*
Package num provides fixed-width unsigned (Uint) and signed (Int) integers
of 32 to 512 bits, plus the bit layout of IEEE-754 style binary floating
point formats (Float, FloatFormat) of the same widths.

The width is part of the type: U128 is Uint[[4]Digit], I256 is
Int[[8]Digit]. Mixing widths is a compile error. All types are value types;
all operations return new values, and values can be compared with ==.

Simple example:

	u1 := U128From64(math.MaxUint64)
	u2 := U128From64(math.MaxUint64)
	fmt.Println(u1.Mul(u2))
	// Output: 340282366920938463426481119284349108225

Arithmetic comes in three flavours:

	Add, Sub, Mul, Neg, ...                wrap around, as per the Go spec
	AddOverflow, SubOverflow, ...          wrap, and report overflow
	CheckedAdd, CheckedSub, CheckedPow, ...  report ok == false instead

Division by zero panics in the wrapping and overflowing flavours, like Go.
The checked flavour never panics.

Conversions that can fail return a *ConversionError with a ConversionReason:

	IntFrom[A, T](v T) (Int[A], error)
	IntInto[T](i Int[A]) (T, error)
	IntFromUint(u Uint[A]) (Int[A], error)
	IntFromFloat64(f float64) (Int[A], error)
	IntFromBigInt(v *big.Int) (Int[A], error)
	UintFrom[A, T](v T) (Uint[A], error)
	UintInto[T](u Uint[A]) (T, error)

Parsing returns a *ParseError wrapped in the Error class:

	IntFromStringRadix[A](s string, radix int) (Int[A], error)
	UintFromStringRadix[A](s string, radix int) (Uint[A], error)

Uint and Int support the following formatting and marshalling interfaces:

	- fmt.Formatter
	- fmt.Stringer
	- json.Marshaler
	- json.Unmarshaler
	- encoding.TextMarshaler
	- encoding.TextUnmarshaler

Binary32, Binary64, Binary128 and Binary256 describe the standard float
layouts; NewFloatFormat builds others.
*/
package num
