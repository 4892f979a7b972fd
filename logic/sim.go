// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package logic

import (
	"fmt"

	"github.com/go-air/lnet/tt"
	"github.com/go-air/lnet/z"
)

func (ntk *Network) gateNode(n z.Node, nvs int) *node {
	nd := ntk.s.at(n)
	if len(nd.fanin) == 0 {
		panic(fmt.Sprintf("logic: cannot compute non-gate %s", n))
	}
	if nvs != len(nd.fanin) {
		panic(fmt.Sprintf("logic: %d values for %d children of %s", nvs, len(nd.fanin), n))
	}
	return nd
}

// Compute returns the value of gate n when its children's nodes have
// values vs.  Complemented children invert their value, and child j
// selects bit j of the minterm looked up in the function of n.
func (ntk *Network) Compute(n z.Node, vs []bool) bool {
	nd := ntk.gateNode(n, len(vs))
	m := 0
	for j, c := range nd.fanin {
		if vs[j] != c.Compl() {
			m |= 1 << uint(j)
		}
	}
	return ntk.s.cache.Bit(nd.fn, m)
}

// ComputeTT is like Compute, but each value is a vector of patterns.
// All vectors must have the same width.  Bit i of the result is
// Compute applied to bit i of each vector.
func (ntk *Network) ComputeTT(n z.Node, vs []tt.T) tt.T {
	nd := ntk.gateNode(n, len(vs))
	nv := vs[0].Vars()
	for _, v := range vs[1:] {
		if v.Vars() != nv {
			panic(fmt.Sprintf("logic: simulation width mismatch %d != %d", v.Vars(), nv))
		}
	}
	ws := make([]uint64, len(vs[0].Words()))
	ins := make([]uint64, len(vs))
	for w := range ws {
		for j, c := range nd.fanin {
			x := vs[j].Word(w)
			if c.Compl() {
				x = ^x
			}
			ins[j] = x
		}
		ws[w] = ntk.s.word(nd.fn, ins)
	}
	return tt.FromWords(nv, ws)
}

// word evaluates the function with literal fn on 64 patterns at once,
// as the sum of its minterms.
func (s *Storage) word(fn uint32, ins []uint64) uint64 {
	var r uint64
	k := len(ins)
	for m := 0; m < 1<<uint(k); m++ {
		if !s.cache.Bit(fn, m) {
			continue
		}
		term := ^uint64(0)
		for j := 0; j < k; j++ {
			if (m>>uint(j))&1 == 1 {
				term &= ins[j]
			} else {
				term &^= ins[j]
			}
		}
		r |= term
	}
	return r
}

// Eval evaluates ntk with values vs, where vs[i] is the value of node
// i.  vs must contain values for all inputs; the values of the constant
// and of all gates which are not dead are computed.
func (ntk *Network) Eval(vs []bool) {
	vs[0] = false
	var buf [MaxFanin]bool
	for i := 1; i < len(ntk.s.nodes); i++ {
		nd := &ntk.s.nodes[i]
		if len(nd.fanin) == 0 || nd.fanout&deadBit != 0 {
			continue
		}
		cv := buf[:len(nd.fanin)]
		for j, c := range nd.fanin {
			cv[j] = vs[c.Node()]
		}
		vs[i] = ntk.Compute(z.Node(i), cv)
	}
}

// Eval64 is like Eval but evaluates 64 different inputs in parallel as
// the bits of a uint64.
func (ntk *Network) Eval64(vs []uint64) {
	vs[0] = 0
	var buf [MaxFanin]uint64
	for i := 1; i < len(ntk.s.nodes); i++ {
		nd := &ntk.s.nodes[i]
		if len(nd.fanin) == 0 || nd.fanout&deadBit != 0 {
			continue
		}
		ins := buf[:len(nd.fanin)]
		for j, c := range nd.fanin {
			x := vs[c.Node()]
			if c.Compl() {
				x = ^x
			}
			ins[j] = x
		}
		vs[i] = ntk.s.word(nd.fn, ins)
	}
}

// Simulate returns the value of every node when input i has the
// patterns pis[i].  Dead nodes have no value.
func (ntk *Network) Simulate(pis []tt.T) []tt.T {
	if len(pis) != len(ntk.s.inputs) {
		panic(fmt.Sprintf("logic: %d patterns for %d inputs", len(pis), len(ntk.s.inputs)))
	}
	nv := 0
	if len(pis) > 0 {
		nv = pis[0].Vars()
	}
	vals := make([]tt.T, len(ntk.s.nodes))
	vals[0] = tt.New(nv)
	for i, n := range ntk.s.inputs {
		vals[n] = pis[i]
	}
	var buf [MaxFanin]tt.T
	ntk.ForeachGate(func(n z.Node, _ int) bool {
		nd := &ntk.s.nodes[n]
		cv := buf[:len(nd.fanin)]
		for j, c := range nd.fanin {
			cv[j] = vals[c.Node()]
		}
		vals[n] = ntk.ComputeTT(n, cv)
		return true
	})
	return vals
}

// SimulatePOs returns the value of every primary output when input i
// has the patterns pis[i].
func (ntk *Network) SimulatePOs(pis []tt.T) []tt.T {
	vals := ntk.Simulate(pis)
	res := make([]tt.T, len(ntk.s.outputs))
	for i, m := range ntk.s.outputs {
		v := vals[m.Node()]
		if m.Compl() {
			v = v.Not()
		}
		res[i] = v
	}
	return res
}
