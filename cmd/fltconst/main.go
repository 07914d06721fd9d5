package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/davecgh/go-spew/spew"
	num "github.com/shabbyrobe/go-bnum"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const usage = `Float format constant table

Prints the derived constants of a binary floating point format with the given
total width and number of mantissa bits.

Usage: fltconst [-dump] <width> <mantissa-bits>

Width must be one of 32, 64, 128, 256, 512.`

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

type constant struct {
	Name  string
	Bits  string
	Value string
}

type table struct {
	Width          uint
	MantissaBits   uint
	ExponentBits   uint
	MantissaDigits uint
	Digits         uint
	ExpBias        string
	MinExp         string
	MaxExp         string
	Constants      []constant
}

func run(args []string, w io.Writer) error {
	var dump bool

	fs := flag.NewFlagSet("fltconst", flag.ContinueOnError)
	fs.SetOutput(w)
	fs.Usage = func() { fmt.Fprintln(w, usage) }
	fs.BoolVar(&dump, "dump", false, "Dump the constant table with spew instead of printing it")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() != 2 {
		fs.Usage()
		return fmt.Errorf("fltconst: expected <width> <mantissa-bits>, found %d args", fs.NArg())
	}

	width, err := strconv.ParseUint(fs.Arg(0), 10, 0)
	if err != nil {
		return fmt.Errorf("fltconst: invalid width %q: %w", fs.Arg(0), err)
	}
	mb, err := strconv.ParseUint(fs.Arg(1), 10, 0)
	if err != nil {
		return fmt.Errorf("fltconst: invalid mantissa bits %q: %w", fs.Arg(1), err)
	}

	var tbl *table
	switch width {
	case 32:
		tbl, err = describe[[1]num.Digit](uint(mb))
	case 64:
		tbl, err = describe[[2]num.Digit](uint(mb))
	case 128:
		tbl, err = describe[[4]num.Digit](uint(mb))
	case 256:
		tbl, err = describe[[8]num.Digit](uint(mb))
	case 512:
		tbl, err = describe[[16]num.Digit](uint(mb))
	default:
		return fmt.Errorf("fltconst: width must be 32, 64, 128, 256 or 512, found %d", width)
	}
	if err != nil {
		return err
	}

	if dump {
		spew.Fdump(w, tbl)
		return nil
	}
	return printTable(w, tbl)
}

func describe[A num.Digits](mb uint) (*table, error) {
	ff, err := num.NewFloatFormat[A](mb)
	if err != nil {
		return nil, err
	}

	tbl := &table{
		Width:          ff.Width(),
		MantissaBits:   ff.MantissaBits(),
		ExponentBits:   ff.ExponentBits(),
		MantissaDigits: ff.MantissaDigits(),
		Digits:         ff.Digits(),
		ExpBias:        ff.ExpBias().String(),
		MinExp:         ff.MinExp().String(),
		MaxExp:         ff.MaxExp().String(),
	}

	for _, c := range []struct {
		name string
		f    num.Float[A]
	}{
		{"MIN", ff.Min()},
		{"MAX", ff.Max()},
		{"MIN_POSITIVE", ff.MinPositive()},
		{"MAX_NEGATIVE", ff.MaxNegative()},
		{"MIN_POSITIVE_SUBNORMAL", ff.MinPositiveSubnormal()},
		{"MAX_SUBNORMAL", ff.MaxSubnormal()},
		{"EPSILON", ff.Epsilon()},
		{"ONE", ff.One()},
		{"NEG_ONE", ff.NegOne()},
		{"ZERO", ff.Zero()},
		{"NEG_ZERO", ff.NegZero()},
		{"INFINITY", ff.Infinity()},
		{"NEG_INFINITY", ff.NegInfinity()},
		{"NAN", ff.NaN()},
	} {
		value := "-"
		if ff.IsNaN(c.f) {
			value = "NaN"
		} else if bf, err := ff.BigFloat(c.f); err == nil {
			value = bf.Text('g', 12)
		}

		tbl.Constants = append(tbl.Constants, constant{
			Name:  c.name,
			Bits:  fmt.Sprintf("%#0*x", ff.Width()/4+2, c.f.Bits()),
			Value: value,
		})
	}

	return tbl, nil
}

func printTable(w io.Writer, tbl *table) error {
	p := message.NewPrinter(language.English)

	if _, err := p.Fprintf(w, "width:           %d\n", tbl.Width); err != nil {
		return err
	}
	p.Fprintf(w, "mantissa bits:   %d\n", tbl.MantissaBits)
	p.Fprintf(w, "exponent bits:   %d\n", tbl.ExponentBits)
	p.Fprintf(w, "mantissa digits: %d\n", tbl.MantissaDigits)
	p.Fprintf(w, "digits:          %d\n", tbl.Digits)
	p.Fprintf(w, "exp bias:        %s\n", groupDigits(p, tbl.ExpBias))
	p.Fprintf(w, "min exp:         %s\n", groupDigits(p, tbl.MinExp))
	p.Fprintf(w, "max exp:         %s\n", groupDigits(p, tbl.MaxExp))
	fmt.Fprintln(w)

	for _, c := range tbl.Constants {
		if _, err := fmt.Fprintf(w, "%-24s %s  %s\n", c.Name, c.Bits, c.Value); err != nil {
			return err
		}
	}
	return nil
}

// groupDigits adds thousands separators to s if it fits in an int64.
func groupDigits(p *message.Printer, s string) string {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return s
	}
	return p.Sprintf("%d", v)
}
