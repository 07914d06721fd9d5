package num

// mulAddDigit returns x*y + a + c split into two digits. The sum can not
// overflow: (2^32-1)^2 + 2*(2^32-1) == 2^64-1.
func mulAddDigit(x, y, a, c Digit) (hi, lo Digit) {
	t := uint64(x)*uint64(y) + uint64(a) + uint64(c)
	return Digit(t >> digitBits), Digit(t)
}

// quoRemDigit divides u by a single digit using schoolbook short division,
// top digit first.
func quoRemDigit[A Digits](u Uint[A], by Digit) (q Uint[A], r Digit) {
	if by == 0 {
		panic("num: division by zero")
	}
	var rem uint64
	for i := len(u.d) - 1; i >= 0; i-- {
		cur := rem<<digitBits | uint64(u.d[i])
		q.d[i] = Digit(cur / uint64(by))
		rem = cur % uint64(by)
	}
	return q, Digit(rem)
}

// quoRemBin is binary long division for divisors wider than one digit.
// Callers guarantee u > by > 0.
func quoRemBin[A Digits](u, by Uint[A]) (q, r Uint[A]) {
	shift := int(by.LeadingZeros() - u.LeadingZeros())
	by = by.Lsh(uint(shift))

	for {
		q = q.Lsh(1)

		// performance tweak: "not less than" is cheaper than building a
		// GreaterOrEqualTo from Cmp here.
		if !u.LessThan(by) {
			u = u.Sub(by)
			q.d[0] |= 1
		}

		by = by.Rsh(1)

		if shift <= 0 {
			break
		}
		shift--
	}

	return q, u
}

// uintFrom64 truncates v into a Uint.
func uintFrom64[A Digits](v uint64) (u Uint[A]) {
	for i := 0; i < len(u.d) && i < 64/digitBits; i++ {
		u.d[i] = Digit(v >> (uint(i) * digitBits))
	}
	return u
}
