package parts_test

import (
	"fmt"

	"github.com/cwbudde/algo-xover/network"
	"github.com/cwbudde/algo-xover/parts"
)

func ExampleSelectStandard() {
	ideal, _ := network.Ideal(network.Params{CutoffHz: 2400, LoadOhms: 4})
	sel, _ := parts.SelectStandard(ideal)

	fmt.Printf("L=%v %s\n", sel.InductanceMH, parts.UnitMilliHenry)
	fmt.Printf("C=%v %s\n", sel.CapacitanceUF, parts.UnitMicroFarad)
	// Output:
	// L=0.39 mH
	// C=12 µF
}
