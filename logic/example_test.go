// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package logic_test

import (
	"fmt"

	"github.com/go-air/lnet/logic"
	"github.com/go-air/lnet/tt"
)

func Example_majority() {
	for _, v := range []*logic.Variant{logic.Primary, logic.GTG} {
		ntk := logic.New(v)
		a, b, c := ntk.CreatePI(), ntk.CreatePI(), ntk.CreatePI()
		ntk.CreatePO(ntk.Maj(a, b, c))
		outs := ntk.SimulatePOs([]tt.T{tt.Nth(3, 0), tt.Nth(3, 1), tt.Nth(3, 2)})
		fmt.Printf("%s: %d gates, function %s\n", v, ntk.NumGates(), outs[0].Hex())
	}
	// Output:
	// primary: 4 gates, function e8
	// gtg: 1 gates, function e8
}
