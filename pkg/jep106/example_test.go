package jep106_test

import (
	"fmt"

	"github.com/OpenTraceLab/jep106/pkg/jep106"
)

func ExampleGetManufacturerName() {
	fmt.Println(jep106.GetManufacturerName(0x01, 0))
	fmt.Printf("%q\n", jep106.GetManufacturerName(0x01, 255))
	// Output:
	// AMD
	// ""
}

func ExampleStripParity() {
	// Macronix reports 0xC2 as the first byte of its SPI flash JEDEC ID.
	code, ok := jep106.StripParity(0xC2)
	fmt.Println(ok, jep106.GetManufacturerName(code, 0))
	// Output: true Macronix
}

func ExampleSearch() {
	for _, e := range jep106.Search("winbond") {
		fmt.Println(e.ID, e.Name)
	}
	// Output: bank 1, 0x5A Winbond Electronic
}
