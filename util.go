package num

type RandSource interface {
	Uint64() uint64
}

// RandUint generates an unsigned random integer from an external source.
func RandUint[A Digits](source RandSource) (out Uint[A]) {
	for i := 0; i < len(out.d); i += 2 {
		v := source.Uint64()
		out.d[i] = Digit(v)
		if i+1 < len(out.d) {
			out.d[i+1] = Digit(v >> digitBits)
		}
	}
	return out
}

// RandInt generates a positive signed random integer from an external
// source.
func RandInt[A Digits](source RandSource) Int[A] {
	u := RandUint[A](source)
	return IntFromBits(u.SetBit(u.Width()-1, 0))
}

// DifferenceUint subtracts the smaller of a and b from the larger.
func DifferenceUint[A Digits](a, b Uint[A]) Uint[A] {
	if a.GreaterThan(b) {
		return a.Sub(b)
	}
	return b.Sub(a)
}

func LargerUint[A Digits](a, b Uint[A]) Uint[A] {
	if b.GreaterThan(a) {
		return b
	}
	return a
}

func SmallerUint[A Digits](a, b Uint[A]) Uint[A] {
	if b.LessThan(a) {
		return b
	}
	return a
}

// DifferenceInt returns |a - b|. The result is a Uint as the distance
// between MinInt and MaxInt does not fit in an Int.
func DifferenceInt[A Digits](a, b Int[A]) Uint[A] {
	if a.GreaterThan(b) {
		return a.Sub(b).u
	}
	return b.Sub(a).u
}

func LargerInt[A Digits](a, b Int[A]) Int[A] {
	if b.GreaterThan(a) {
		return b
	}
	return a
}

func SmallerInt[A Digits](a, b Int[A]) Int[A] {
	if b.LessThan(a) {
		return b
	}
	return a
}
