// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/scott-cotton/cli"

	"github.com/go-air/lnet/logic"
)

func sim(cfg *SimConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Sim.Parse(cc, args)
	if err != nil {
		return err
	}
	file, err := fileArg(args)
	if err != nil {
		return err
	}
	n, seed := cfg.N, int64(cfg.Seed)
	if fc := cfg.File; fc != nil {
		if n == 0 {
			n = fc.Sim.N
		}
		if seed == 0 {
			seed = fc.Sim.Seed
		}
	}
	if n <= 0 {
		n = 1
	}
	ntk, _, err := cfg.read(cc, file)
	if err != nil {
		return err
	}
	simulate(cc.Out, ntk, n, seed)
	return nil
}

// simulate writes one line per output of ntk with its values under n
// words of random input patterns, as hex.
func simulate(w io.Writer, ntk *logic.Network, n int, seed int64) {
	rnd := rand.New(rand.NewSource(seed))
	outs := make([][]uint64, ntk.NumPOs())
	vs := make([]uint64, ntk.Size())
	for k := 0; k < n; k++ {
		for i := 0; i < ntk.NumPIs(); i++ {
			vs[ntk.PI(i)] = rnd.Uint64()
		}
		ntk.Eval64(vs)
		for i := range outs {
			m := ntk.PO(i)
			v := vs[m.Node()]
			if m.Compl() {
				v = ^v
			}
			outs[i] = append(outs[i], v)
		}
	}
	for i, ws := range outs {
		fmt.Fprintf(w, "%d", i)
		for _, v := range ws {
			fmt.Fprintf(w, " %016x", v)
		}
		fmt.Fprintln(w)
	}
}
