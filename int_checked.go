package num

// The Checked family returns the zero value and ok == false instead of
// wrapping or panicking whenever the exact result is not representable in
// Int[A].

func (i Int[A]) CheckedAdd(n Int[A]) (out Int[A], ok bool) {
	if v, overflow := i.AddOverflow(n); !overflow {
		return v, true
	}
	return out, false
}

func (i Int[A]) CheckedSub(n Int[A]) (out Int[A], ok bool) {
	if v, overflow := i.SubOverflow(n); !overflow {
		return v, true
	}
	return out, false
}

func (i Int[A]) CheckedMul(n Int[A]) (out Int[A], ok bool) {
	if v, overflow := i.MulOverflow(n); !overflow {
		return v, true
	}
	return out, false
}

func (i Int[A]) CheckedAddUnsigned(n Uint[A]) (out Int[A], ok bool) {
	if v, overflow := i.AddUnsignedOverflow(n); !overflow {
		return v, true
	}
	return out, false
}

func (i Int[A]) CheckedSubUnsigned(n Uint[A]) (out Int[A], ok bool) {
	if v, overflow := i.SubUnsignedOverflow(n); !overflow {
		return v, true
	}
	return out, false
}

// CheckedQuo fails if by is zero, or for MinInt / -1.
func (i Int[A]) CheckedQuo(by Int[A]) (out Int[A], ok bool) {
	if by.IsZero() || i.isMinDivNegOne(by) {
		return out, false
	}
	return i.Quo(by), true
}

func (i Int[A]) CheckedRem(by Int[A]) (out Int[A], ok bool) {
	if by.IsZero() || i.isMinDivNegOne(by) {
		return out, false
	}
	return i.Rem(by), true
}

// CheckedQuoEuclid fails if by is zero, or for MinInt / -1. The quotient
// rounds towards negative infinity when the signs differ so that the
// remainder is never negative.
func (i Int[A]) CheckedQuoEuclid(by Int[A]) (out Int[A], ok bool) {
	if by.IsZero() || i.isMinDivNegOne(by) {
		return out, false
	}
	return i.QuoEuclid(by), true
}

func (i Int[A]) CheckedRemEuclid(by Int[A]) (out Int[A], ok bool) {
	if by.IsZero() || i.isMinDivNegOne(by) {
		return out, false
	}
	return i.RemEuclid(by), true
}

func (i Int[A]) CheckedNeg() (out Int[A], ok bool) {
	if v, overflow := i.NegOverflow(); !overflow {
		return v, true
	}
	return out, false
}

func (i Int[A]) CheckedAbs() (out Int[A], ok bool) {
	if v, overflow := i.AbsOverflow(); !overflow {
		return v, true
	}
	return out, false
}

// CheckedLsh fails if n is greater than or equal to the width.
func (i Int[A]) CheckedLsh(n uint) (out Int[A], ok bool) {
	if v, overflow := i.LshOverflow(n); !overflow {
		return v, true
	}
	return out, false
}

// CheckedRsh fails if n is greater than or equal to the width.
func (i Int[A]) CheckedRsh(n uint) (out Int[A], ok bool) {
	if v, overflow := i.RshOverflow(n); !overflow {
		return v, true
	}
	return out, false
}

// CheckedPow raises |i| to exp with the unsigned checked power, then
// re-applies the sign. A magnitude that spills into the sign bit fails.
func (i Int[A]) CheckedPow(exp uint) (out Int[A], ok bool) {
	mag, ok := i.UnsignedAbs().CheckedPow(exp)
	if !ok {
		return out, false
	}

	v := IntFromBits(mag)
	if !i.IsNegative() || exp%2 == 0 {
		if v.IsNegative() {
			return out, false
		}
		return v, true
	}

	v = v.Neg()
	if !v.IsNegative() {
		return out, false
	}
	return v, true
}

// CheckedLog2 returns floor(log2(i)). It fails if i is not positive.
func (i Int[A]) CheckedLog2() (uint, bool) {
	if i.IsNegative() {
		return 0, false
	}
	return i.u.checkedLog(logBase2)
}

// CheckedLog10 returns floor(log10(i)). It fails if i is not positive.
func (i Int[A]) CheckedLog10() (uint, bool) {
	if i.IsNegative() {
		return 0, false
	}
	return i.u.checkedLog(logBase10)
}

// CheckedNextMultipleOf returns the smallest multiple of by that is greater
// than or equal to i when by is positive, or less than or equal to i when
// by is negative.
func (i Int[A]) CheckedNextMultipleOf(by Int[A]) (out Int[A], ok bool) {
	r, ok := i.CheckedRemEuclid(by)
	if !ok {
		return out, false
	}
	if by.IsNegative() {
		return i.CheckedSub(r)
	} else if r.IsZero() {
		return i, true
	}
	return i.CheckedAdd(by.Sub(r))
}
