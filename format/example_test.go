package format_test

import (
	"fmt"
	"time"

	"github.com/hasbyte1/cronies/format"
)

func ExampleDateFormatter_Format() {
	f := format.DateFormatter{Location: time.UTC}
	t := time.Date(2016, time.July, 9, 14, 5, 0, 0, time.UTC)
	fmt.Println(f.Format(t, "EE YYYY/MM/dd hhaa"))
	// Output: Sat 2016/07/09 2pm
}

func ExampleRoundToFixed() {
	s, _ := format.RoundToFixed(125, 2)
	fmt.Println(s)
	// Output: 125.00
}

func ExampleThreeComma() {
	s, _ := format.ThreeComma(1000.234)
	fmt.Println(s)
	// Output: 1,000.234
}
