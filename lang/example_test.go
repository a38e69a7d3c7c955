package lang_test

import (
	"context"
	"fmt"

	"github.com/ardnew/oden/lang"
)

func ExampleCompile() {
	src := lang.NewSource("cube.oden", `
part Cube:
    size = 2mm * 2
    part.add(Cube(size))
`)

	part, err := lang.Compile(context.Background(), src)
	if err != nil {
		fmt.Println(err)

		return
	}

	fmt.Println(part)
	// Output: cuboid(0.004 0.004 0.004)
}

func ExampleError_Render() {
	_, err := lang.CompileString(context.Background(), "part.add(Cube(10deg))")
	if e, ok := err.(*lang.Error); ok {
		fmt.Print(e.Render())
	}
	// Output:
	// error: arguments should be [Length] but are [Angle]
	//   --> <input>:1:10
	//   1 | part.add(Cube(10deg))
	//                ^^^^^^^^^^^
}

func ExampleEnvironment_Execute() {
	env := lang.NewEnvironment()

	stmts, _ := lang.Parse(context.Background(), lang.NewSource("", "angle = 1rad / 2\nside = 2m + 1m"))
	for _, s := range stmts {
		if err := env.Execute(s); err != nil {
			fmt.Println(err)
		}
	}

	for _, name := range []string{"angle", "side"} {
		v, _ := env.Get(name)
		fmt.Println(name, v.Kind(), v)
	}
	// Output:
	// angle Angle 0.5rad
	// side Length 3m
}
