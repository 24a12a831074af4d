// Package network computes the ideal reactive components of a second-order
// passive crossover.
//
// The alignment is maximally flat (Butterworth, Q = 1/√2) for a resistive
// load R at cutoff fc:
//
//	L = R·√2 / (2π·fc)
//	C = 1 / (2π·fc·R·√2)
//
// The same inductor/capacitor pair serves both halves of the crossover: the
// low-pass feeds the woofer through a series L with C shunting the load, the
// high-pass feeds the tweeter through a series C with L shunting the load.
//
// Example:
//
//	ideal, err := network.Ideal(network.Params{CutoffHz: 2400, LoadOhms: 4})
//	if err != nil {
//		return err
//	}
//	fmt.Printf("L=%.3f mH C=%.3f µF\n", ideal.InductanceMH(), ideal.CapacitanceUF())
package network
