package posfmt_test

import (
	"fmt"

	"github.com/bjaus/posfmt"
)

func ExampleOut() {
	posfmt.Put([]byte("Hello, world!\n"))
	posfmt.Out("The numbers are {1}, {2}, and {0}.\n", posfmt.I(1), posfmt.I(2), posfmt.I(3))
	posfmt.Flush()
	// Output:
	// Hello, world!
	// The numbers are 2, 3, and 1.
}

func ExampleBuffer_Format() {
	buf := posfmt.NewBuffer(make([]byte, 16))
	buf.Format("{0}-{1}-{0}", posfmt.I(7), posfmt.I(99))
	fmt.Println(buf.String())
	// Output: 7-99-7
}

func ExampleBuffer_Format_truncated() {
	data := make([]byte, 15)
	buf := posfmt.NewBuffer(data)
	buf.Format("The number is {0}.\n", posfmt.I(42))
	fmt.Printf("%q %d\n", buf.String(), buf.Len())
	// Output: "The number is " 14
}
