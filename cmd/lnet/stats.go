// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"

	"github.com/go-air/lnet/gtech"
	"github.com/go-air/lnet/logic"
	"github.com/go-air/lnet/z"
)

func stats(cfg *StatsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Stats.Parse(cc, args)
	if err != nil {
		return err
	}
	file, err := fileArg(args)
	if err != nil {
		return err
	}
	ntk, info, err := cfg.read(cc, file)
	if err != nil {
		return err
	}
	writeStats(cc.Out, ntk, &info)
	return nil
}

var heading = color.New(color.Bold)

func writeStats(w io.Writer, ntk *logic.Network, info *gtech.PortInfo) {
	heading.Fprintf(w, "%s", info.Module)
	fmt.Fprintf(w, " (%s)\n", ntk.Variant())
	fmt.Fprintf(w, "  inputs  %d", ntk.NumPIs())
	if len(info.Latches) > 0 {
		fmt.Fprintf(w, " (%d latch outputs)", len(info.Latches))
	}
	fmt.Fprintf(w, "\n  outputs %d\n", ntk.NumPOs())
	fmt.Fprintf(w, "  gates   %d\n", ntk.NumGates())
	d := logic.NewDepthView(ntk)
	fmt.Fprintf(w, "  depth   %d\n", d.Depth())
	d.Release()

	kinds := map[string]int{}
	ntk.ForeachGate(func(n z.Node, _ int) bool {
		kinds[ntk.Kind(n).String()]++
		return true
	})
	if len(kinds) == 0 {
		return
	}
	names := make([]string, 0, len(kinds))
	for k := range kinds {
		names = append(names, k)
	}
	sort.Strings(names)
	heading.Fprintln(w, "gates")
	for _, k := range names {
		fmt.Fprintf(w, "  %-8s %d\n", k, kinds[k])
	}
}
