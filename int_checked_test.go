package num

import (
	"fmt"
	"math/big"
	"math/rand"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

var (
	minBigI64 = bigI64(minInt64)
	maxBigI64 = bigI64(maxInt64)
)

func i64v(v int64) I64 {
	out, err := IntFrom[[2]Digit](v)
	if err != nil {
		panic(err)
	}
	return out
}

// inI64 returns b and whether it lies inside the int64 range.
func inI64(b *big.Int) (*big.Int, bool) {
	return b, b.Cmp(minBigI64) >= 0 && b.Cmp(maxBigI64) <= 0
}

// randInt64 favours small magnitudes and the edges of the range.
func randInt64(rng *rand.Rand) int64 {
	switch rng.Intn(8) {
	case 0:
		edges := []int64{0, 1, -1, 2, -2, minInt64, maxInt64, minInt64 + 1, maxInt64 - 1}
		return edges[rng.Intn(len(edges))]
	case 1:
		return int64(rng.Intn(64)) - 32
	}
	v := rng.Int63() >> uint(rng.Intn(63))
	if rng.Intn(2) == 1 {
		v = -v - int64(rng.Intn(2))
	}
	return v
}

type checkedBinaryCase struct {
	name    string
	checked func(a, b I64) (I64, bool)
	big     func(a, b *big.Int) (*big.Int, bool)
}

func nonZeroDiv(a, b *big.Int) bool {
	return b.Sign() != 0 && !(a.Cmp(minBigI64) == 0 && b.Cmp(bigI64(-1)) == 0)
}

var checkedBinaryCases = []checkedBinaryCase{
	{"add", I64.CheckedAdd, func(a, b *big.Int) (*big.Int, bool) {
		return inI64(new(big.Int).Add(a, b))
	}},
	{"sub", I64.CheckedSub, func(a, b *big.Int) (*big.Int, bool) {
		return inI64(new(big.Int).Sub(a, b))
	}},
	{"mul", I64.CheckedMul, func(a, b *big.Int) (*big.Int, bool) {
		return inI64(new(big.Int).Mul(a, b))
	}},
	{"quo", I64.CheckedQuo, func(a, b *big.Int) (*big.Int, bool) {
		if !nonZeroDiv(a, b) {
			return nil, false
		}
		return new(big.Int).Quo(a, b), true
	}},
	{"rem", I64.CheckedRem, func(a, b *big.Int) (*big.Int, bool) {
		if !nonZeroDiv(a, b) {
			return nil, false
		}
		return new(big.Int).Rem(a, b), true
	}},
	{"quoeuclid", I64.CheckedQuoEuclid, func(a, b *big.Int) (*big.Int, bool) {
		if !nonZeroDiv(a, b) {
			return nil, false
		}
		return new(big.Int).Div(a, b), true
	}},
	{"remeuclid", I64.CheckedRemEuclid, func(a, b *big.Int) (*big.Int, bool) {
		if !nonZeroDiv(a, b) {
			return nil, false
		}
		return new(big.Int).Mod(a, b), true
	}},
	{"nextmultipleof", I64.CheckedNextMultipleOf, func(a, b *big.Int) (*big.Int, bool) {
		if !nonZeroDiv(a, b) {
			return nil, false
		}
		r := new(big.Int).Mod(a, b)
		if b.Sign() < 0 {
			return inI64(r.Sub(a, r))
		} else if r.Sign() == 0 {
			return a, true
		}
		return inI64(r.Add(a, r.Sub(b, r)))
	}},
}

func TestI64CheckedAgainstBig(t *testing.T) {
	for _, tc := range checkedBinaryCases {
		t.Run(tc.name, func(t *testing.T) {
			tt := assert.WrapTB(t)
			rng := rand.New(rand.NewSource(fuzzSeed))

			for i := 0; i < 20000; i++ {
				a, b := randInt64(rng), randInt64(rng)
				ai, bi := i64v(a), i64v(b)

				out, ok := tc.checked(ai, bi)
				exp, expOK := tc.big(bigI64(a), bigI64(b))
				tt.MustEqual(expOK, ok, "%d %s %d", a, tc.name, b)
				if ok {
					tt.MustEqual(exp.String(), out.String(), "%d %s %d", a, tc.name, b)
				} else {
					tt.MustAssert(out.IsZero(), "%d %s %d", a, tc.name, b)
				}
			}
		})
	}
}

func TestI64CheckedPowAgainstBig(t *testing.T) {
	tt := assert.WrapTB(t)
	rng := rand.New(rand.NewSource(fuzzSeed))

	for i := 0; i < 20000; i++ {
		a := randInt64(rng)
		if rng.Intn(2) == 1 {
			a = int64(rng.Intn(40)) - 20
		}
		exp := uint(rng.Intn(70))

		out, ok := i64v(a).CheckedPow(exp)
		bexp, expOK := inI64(new(big.Int).Exp(bigI64(a), bigU64(uint64(exp)), nil))
		tt.MustEqual(expOK, ok, "%d ** %d", a, exp)
		if ok {
			tt.MustEqual(bexp.String(), out.String(), "%d ** %d", a, exp)
		}
	}
}

func TestI128CheckedPow(t *testing.T) {
	for idx, tc := range []struct {
		a   I128
		exp uint
		ok  bool
	}{
		{i64(-13), 22, true},
		{i64(7), 29, true},
		{i64(-7), 29, true},
		{i64(2), 126, true},
		{i64(2), 127, false},
		{i64(-2), 127, true},
		{i64(-2), 128, false},
		{i64(-1), 1 << 20, true},
		{i64(-1), 1<<20 + 1, true},
		{i64(0), 0, true},
		{MinI128, 1, true},
		{MinI128, 2, false},
		{MaxI128, 1, true},
		{i64(3), 80, true},
		{i64(3), 81, false},
		{i64(-3), 81, false},
	} {
		t.Run(fmt.Sprintf("%d/%s**%d", idx, tc.a, tc.exp), func(t *testing.T) {
			tt := assert.WrapTB(t)
			out, ok := tc.a.CheckedPow(tc.exp)
			tt.MustEqual(tc.ok, ok)
			if ok {
				exp := new(big.Int).Exp(tc.a.AsBigInt(), bigU64(uint64(tc.exp)), nil)
				tt.MustEqual(exp.String(), out.String())
				tt.MustEqual(out, tc.a.Pow(tc.exp))
			}
		})
	}
}

func TestI128CheckedDivByZero(t *testing.T) {
	tt := assert.WrapTB(t)
	for _, v := range []I128{i64(0), i64(1), i64(-1), MaxI128, MinI128} {
		_, ok := v.CheckedQuo(i64(0))
		tt.MustAssert(!ok)
		_, ok = v.CheckedRem(i64(0))
		tt.MustAssert(!ok)
		_, ok = v.CheckedQuoEuclid(i64(0))
		tt.MustAssert(!ok)
		_, ok = v.CheckedRemEuclid(i64(0))
		tt.MustAssert(!ok)
		_, ok = v.CheckedNextMultipleOf(i64(0))
		tt.MustAssert(!ok)
	}
}

func TestI128CheckedMinByNegOne(t *testing.T) {
	tt := assert.WrapTB(t)

	_, ok := MinI128.CheckedQuo(i64(-1))
	tt.MustAssert(!ok)
	_, ok = MinI128.CheckedRem(i64(-1))
	tt.MustAssert(!ok)
	_, ok = MinI128.CheckedQuoEuclid(i64(-1))
	tt.MustAssert(!ok)
	_, ok = MinI128.CheckedRemEuclid(i64(-1))
	tt.MustAssert(!ok)
	_, ok = MinI128.CheckedMul(i64(-1))
	tt.MustAssert(!ok)

	v, ok := MinI128.Inc().CheckedQuo(i64(-1))
	tt.MustAssert(ok)
	tt.MustEqual(MaxI128, v)

	v, of := MinI128.QuoOverflow(i64(-1))
	tt.MustAssert(of)
	tt.MustEqual(MinI128, v)

	v, of = MinI128.RemOverflow(i64(-1))
	tt.MustAssert(of)
	tt.MustEqual(i64(0), v)
}

func TestI128CheckedNegAbs(t *testing.T) {
	tt := assert.WrapTB(t)

	_, ok := MinI128.CheckedNeg()
	tt.MustAssert(!ok)
	_, ok = MinI128.CheckedAbs()
	tt.MustAssert(!ok)

	rng := rand.New(rand.NewSource(fuzzSeed))
	for i := 0; i < 1000; i++ {
		v := randI128(rng)
		if v == MinI128 {
			continue
		}
		n, ok := v.CheckedNeg()
		tt.MustAssert(ok)
		back, ok := n.CheckedNeg()
		tt.MustAssert(ok)
		tt.MustEqual(v, back)

		a, ok := v.CheckedAbs()
		tt.MustAssert(ok)
		tt.MustAssert(!a.IsNegative())
	}
}

func TestI128CheckedAddSub(t *testing.T) {
	tt := assert.WrapTB(t)

	_, ok := MaxI128.CheckedAdd(i64(1))
	tt.MustAssert(!ok)
	_, ok = MinI128.CheckedSub(i64(1))
	tt.MustAssert(!ok)
	_, ok = MinI128.CheckedAdd(i64(-1))
	tt.MustAssert(!ok)

	v, ok := MaxI128.CheckedAdd(MinI128)
	tt.MustAssert(ok)
	tt.MustEqual(i64(-1), v)

	v, ok = i64(-5).CheckedSub(i64(-5))
	tt.MustAssert(ok)
	tt.MustEqual(i64(0), v)
}

func TestI128CheckedUnsigned(t *testing.T) {
	for idx, tc := range []struct {
		i   I128
		n   U128
		add I128
		aok bool
		sub I128
		sok bool
	}{
		{i64(1), u64(1), i64(2), true, i64(0), true},
		{i64(-1), u64(1), i64(0), true, i64(-2), true},
		{MinI128, MaxU128, MaxI128, true, I128{}, false},
		{MaxI128, MaxU128, I128{}, false, MinI128, true},
		{i64(0), MaxI128.Bits(), MaxI128, true, MinI128.Inc(), true},
		{i64(0), MinI128.Bits(), I128{}, false, MinI128, true},
		{i64(-1), MinI128.Bits(), MaxI128, true, I128{}, false},
	} {
		t.Run(fmt.Sprintf("%d/%s,%s", idx, tc.i, tc.n), func(t *testing.T) {
			tt := assert.WrapTB(t)

			v, ok := tc.i.CheckedAddUnsigned(tc.n)
			tt.MustEqual(tc.aok, ok, "add")
			if ok {
				tt.MustEqual(tc.add, v, "add")
			}

			v, ok = tc.i.CheckedSubUnsigned(tc.n)
			tt.MustEqual(tc.sok, ok, "sub")
			if ok {
				tt.MustEqual(tc.sub, v, "sub")
			}
		})
	}
}

func TestI128CheckedShift(t *testing.T) {
	for idx, tc := range []struct {
		i   I128
		n   uint
		lsh I128
		rsh I128
		ok  bool
	}{
		{i64(1), 0, i64(1), i64(1), true},
		{i64(1), 127, MinI128, i64(0), true},
		{i64(-1), 127, MinI128, i64(-1), true},
		{i64(1), 128, I128{}, I128{}, false},
		{i64(-1), 129, I128{}, I128{}, false},
		{i64(3), 1000, I128{}, I128{}, false},
	} {
		t.Run(fmt.Sprintf("%d/%s,%d", idx, tc.i, tc.n), func(t *testing.T) {
			tt := assert.WrapTB(t)
			l, ok := tc.i.CheckedLsh(tc.n)
			tt.MustEqual(tc.ok, ok)
			r, ok := tc.i.CheckedRsh(tc.n)
			tt.MustEqual(tc.ok, ok)
			if ok {
				tt.MustEqual(tc.lsh, l)
				tt.MustEqual(tc.rsh, r)
			}
		})
	}

	t.Run("overflowing", func(t *testing.T) {
		tt := assert.WrapTB(t)
		v, of := i64(1).LshOverflow(129)
		tt.MustAssert(of)
		tt.MustEqual(i64(2), v)

		v, of = i64(-4).RshOverflow(129)
		tt.MustAssert(of)
		tt.MustEqual(i64(-2), v)
	})
}

func TestI128CheckedLog(t *testing.T) {
	for idx, tc := range []struct {
		i     I128
		log2  uint
		log10 uint
		ok    bool
	}{
		{i64(-1), 0, 0, false},
		{MinI128, 0, 0, false},
		{i64(0), 0, 0, false},
		{i64(1), 0, 0, true},
		{i64(9), 3, 0, true},
		{i64(10), 3, 1, true},
		{i64(1000), 9, 3, true},
		{i128s("1000000000000000000000"), 69, 21, true},
		{i128s("999999999999999999999"), 69, 20, true},
		{MaxI128, 126, 38, true},
	} {
		t.Run(fmt.Sprintf("%d/%s", idx, tc.i), func(t *testing.T) {
			tt := assert.WrapTB(t)
			l2, ok := tc.i.CheckedLog2()
			tt.MustEqual(tc.ok, ok)
			tt.MustEqual(tc.log2, l2)

			l10, ok := tc.i.CheckedLog10()
			tt.MustEqual(tc.ok, ok)
			tt.MustEqual(tc.log10, l10)
		})
	}
}

func TestI128CheckedNextMultipleOf(t *testing.T) {
	for idx, tc := range []struct {
		i, by, out I128
		ok         bool
	}{
		{i64(16), i64(8), i64(16), true},
		{i64(23), i64(8), i64(24), true},
		{i64(16), i64(-8), i64(16), true},
		{i64(23), i64(-8), i64(16), true},
		{i64(-16), i64(8), i64(-16), true},
		{i64(-23), i64(8), i64(-16), true},
		{i64(-16), i64(-8), i64(-16), true},
		{i64(-23), i64(-8), i64(-24), true},
		{MaxI128, i64(2), I128{}, false},
		{MinI128, i64(3), MinI128.Add(i64(2)), true},
		{MinI128.Inc(), i64(-3), I128{}, false},
		{MinI128, i64(-1), I128{}, false},
		{MinI128, i64(2), MinI128, true},
	} {
		t.Run(fmt.Sprintf("%d/%s,%s", idx, tc.i, tc.by), func(t *testing.T) {
			tt := assert.WrapTB(t)
			out, ok := tc.i.CheckedNextMultipleOf(tc.by)
			tt.MustEqual(tc.ok, ok)
			tt.MustEqual(tc.out, out)
		})
	}
}
