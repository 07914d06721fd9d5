package num

import (
	"math"
	"strconv"
)

// Digit is the storage unit of every fixed-width value. Values are held as
// arrays of digits, least-significant first.
type Digit = uint32

const (
	digitBits    = 32
	digitMax     = math.MaxUint32
	digitSignBit = 1 << (digitBits - 1)
)

// Digits constrains the width parameter of Uint, Int and Float to the
// supported digit array lengths. The width of a value in bits is
// len(A) * 32.
type Digits interface {
	~[1]Digit | ~[2]Digit | ~[4]Digit | ~[8]Digit | ~[16]Digit
}

type (
	U32  = Uint[[1]Digit]
	U64  = Uint[[2]Digit]
	U128 = Uint[[4]Digit]
	U256 = Uint[[8]Digit]
	U512 = Uint[[16]Digit]

	I32  = Int[[1]Digit]
	I64  = Int[[2]Digit]
	I128 = Int[[4]Digit]
	I256 = Int[[8]Digit]
	I512 = Int[[16]Digit]

	F32  = Float[[1]Digit]
	F64  = Float[[2]Digit]
	F128 = Float[[4]Digit]
	F256 = Float[[8]Digit]
)

// widthOf returns the width in bits of values stored in A.
func widthOf[A Digits]() uint {
	var a A
	return uint(len(a)) * digitBits
}

func uintName[A Digits]() string { return "U" + strconv.Itoa(int(widthOf[A]())) }
func intName[A Digits]() string  { return "I" + strconv.Itoa(int(widthOf[A]())) }
