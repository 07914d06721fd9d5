package num

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func TestMulAddDigit(t *testing.T) {
	tt := assert.WrapTB(t)

	hi, lo := mulAddDigit(digitMax, digitMax, digitMax, digitMax)
	tt.MustEqual(Digit(digitMax), hi)
	tt.MustEqual(Digit(digitMax), lo)

	rng := rand.New(rand.NewSource(fuzzSeed))
	for i := 0; i < 50000; i++ {
		x, y, a, c := Digit(rng.Uint32()), Digit(rng.Uint32()), Digit(rng.Uint32()), Digit(rng.Uint32())
		hi, lo := mulAddDigit(x, y, a, c)

		rb := new(big.Int).Mul(bigU64(uint64(x)), bigU64(uint64(y)))
		rb.Add(rb, bigU64(uint64(a))).Add(rb, bigU64(uint64(c)))

		rc := new(big.Int).Lsh(bigU64(uint64(hi)), 32)
		rc.Or(rc, bigU64(uint64(lo)))
		tt.MustEqual(rb.String(), rc.String(), "failed at index %d", i)
	}
}

func TestQuoRemDigit(t *testing.T) {
	tt := assert.WrapTB(t)
	rng := rand.New(rand.NewSource(fuzzSeed))

	for i := 0; i < 20000; i++ {
		u := randU128(rng)
		by := Digit(rng.Uint32())
		if by == 0 {
			by = 1
		}
		q, r := quoRemDigit(u, by)

		bq, br := new(big.Int).QuoRem(u.AsBigInt(), bigU64(uint64(by)), new(big.Int))
		tt.MustEqual(bq.String(), q.String(), "%s / %d", u, by)
		tt.MustEqual(br.String(), bigU64(uint64(r)).String(), "%s %% %d", u, by)
	}
}

func TestQuoRemDigitByZero(t *testing.T) {
	tt := assert.WrapTB(t)
	defer func() {
		tt.MustEqual("num: division by zero", recover())
	}()
	quoRemDigit(u64(1), 0)
}

func TestQuoRemBin(t *testing.T) {
	tt := assert.WrapTB(t)
	rng := rand.New(rand.NewSource(fuzzSeed))

	for i := 0; i < 20000; i++ {
		u, by := randU128(rng), randU128(rng)
		if by.BitLen() <= digitBits {
			by = by.Or(u64(1 << 40))
		}
		if !u.GreaterThan(by) {
			u, by = by, u
		}
		if !u.GreaterThan(by) || by.BitLen() <= digitBits {
			continue
		}

		q, r := quoRemBin(u, by)
		bq, br := new(big.Int).QuoRem(u.AsBigInt(), by.AsBigInt(), new(big.Int))
		tt.MustEqual(bq.String(), q.String(), "%s / %s", u, by)
		tt.MustEqual(br.String(), r.String(), "%s %% %s", u, by)
	}
}

func TestUintFrom64Truncates(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustEqual(u32d(0x89ABCDEF), uintFrom64[[1]Digit](0x0123456789ABCDEF))
	tt.MustEqual("81985529216486895", uintFrom64[[2]Digit](0x0123456789ABCDEF).String())
}

func u32d(d Digit) U32 { return UintFromDigits([1]Digit{d}) }
