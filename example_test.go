package stackr_test

import (
	"errors"
	"fmt"
	"os"

	"github.com/jcorbin/stackr"
)

func ExampleEngine_Evaluate() {
	e := stackr.New(struct{}{}, stackr.WithOutput(os.Stdout))
	if err := e.Evaluate(`
		: sq "squares a number" "n -- n" "3 sq" dup * ;
		0 begin 1 + dup sq print dup 3 == if break end loop
	`, "example"); err != nil {
		fmt.Println(err)
	}
	// Output:
	// 1
	// 4
	// 9
}

func ExampleEngine_RegisterBuiltin() {
	type host struct{ greeted []string }
	e := stackr.New(&host{})
	if err := e.RegisterBuiltin("greet", "name --", "Greets someone.", `"bob" greet`,
		func(e *stackr.Engine[*host]) error {
			name, err := e.PopString()
			if err != nil {
				return err
			}
			e.State.greeted = append(e.State.greeted, name)
			return nil
		},
	); err != nil {
		fmt.Println(err)
	}

	fmt.Println(e.Evaluate(`"alice" greet "carol" greet`, ""))
	fmt.Println(e.State.greeted)

	err := e.Evaluate("42 greet", "")
	fmt.Println(err, errors.Is(err, stackr.ErrExpectedString))
	// Output:
	// <nil>
	// [alice carol]
	// stdin:1:4: Expected a string true
}

func ExampleFormat() {
	out, err := stackr.Format(`1 0 > if "pos" print end`, "")
	if err != nil {
		fmt.Println(err)
	}
	fmt.Print(out)
	// Output:
	// 1 0 >
	// if
	// 	"pos" print
	// end
}
