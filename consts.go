package num

var (
	MaxU128 = MaxUint[[4]Digit]()
	MaxI128 = MaxInt[[4]Digit]()
	MinI128 = MinInt[[4]Digit]()

	MaxU256 = MaxUint[[8]Digit]()
	MaxI256 = MaxInt[[8]Digit]()
	MinI256 = MinInt[[8]Digit]()
)
