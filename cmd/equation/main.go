// Command equation evaluates unit-aware arithmetic expressions.
//
// With arguments, each argument is parsed and evaluated:
//
//	equation '3.1 V / 1 A' '100 degC # degF'
//
// With no arguments it reads expressions interactively. Variables are
// declared with -given and may be reassigned inside expressions:
//
//	equation -given x=5 -given y=0.25
//	eq> x + sin(pi * y)
//	5.707106781186548
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/chzyer/readline"

	"github.com/zephyrtronium/equation"
)

func main() {
	log.SetFlags(0)
	var (
		verb    string
		derived bool
		names   []string
		values  []float64
	)
	addGiven := func(s string) error {
		d := strings.SplitN(s, "=", 2)
		if len(d) != 2 {
			return fmt.Errorf(`variable definitions must be "name=value", not %q`, s)
		}
		var e equation.Equation
		v, err := e.ParseConstant(strings.TrimSpace(d[1]))
		if err != nil {
			return err
		}
		names = append(names, strings.TrimSpace(d[0]))
		values = append(values, v)
		return nil
	}
	flag.StringVar(&verb, "fmt", "%g", "result formatting verb")
	flag.BoolVar(&derived, "derived", true, "describe results with derived units (Ohm rather than kg m2 /A2 s3)")
	flag.Func("given", "name=value variable definition (any number of times)", addGiven)
	flag.Parse()

	opts := []equation.EvalOption{equation.AllowAssign()}
	if derived {
		opts = append(opts, equation.DerivedUnits())
	}

	show := func(src string) {
		var e equation.Equation
		if err := e.Parse(src, names); err != nil {
			fmt.Println(e.ErrorMessage())
			return
		}
		v, unit, err := e.Eval(values, opts...)
		if err != nil {
			fmt.Println(e.ErrorMessage())
			return
		}
		if unit != "" {
			fmt.Printf(verb+" %s\n", v, unit)
		} else {
			fmt.Printf(verb+"\n", v)
		}
	}

	if flag.NArg() > 0 {
		for _, arg := range flag.Args() {
			show(arg)
		}
		return
	}

	rl, err := readline.New("eq> ")
	if err != nil {
		log.Fatal(err)
	}
	defer rl.Close()
	for {
		line, err := rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
				return
			}
			log.Fatal(err)
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		show(line)
	}
}
