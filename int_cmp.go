package num

// signedDigit returns the top digit of i, sign extended.
func (i Int[A]) signedDigit() int32 {
	return int32(i.u.d[len(i.u.d)-1])
}

// Cmp compares i to n and returns:
//
//	< 0 if i <  n
//	  0 if i == n
//	> 0 if i >  n
//
// The top digits are compared as signed values first. When they match, both
// values have the same sign and the remaining digits order the same way as
// unsigned digits.
func (i Int[A]) Cmp(n Int[A]) int {
	a, b := i.signedDigit(), n.signedDigit()
	if a < b {
		return -1
	} else if a > b {
		return 1
	}
	return i.u.Cmp(n.u)
}

func (i Int[A]) Equal(n Int[A]) bool            { return i == n }
func (i Int[A]) GreaterThan(n Int[A]) bool      { return i.Cmp(n) > 0 }
func (i Int[A]) GreaterOrEqualTo(n Int[A]) bool { return i.Cmp(n) >= 0 }
func (i Int[A]) LessThan(n Int[A]) bool         { return i.Cmp(n) < 0 }
func (i Int[A]) LessOrEqualTo(n Int[A]) bool    { return i.Cmp(n) <= 0 }
