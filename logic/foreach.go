// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package logic

import "github.com/go-air/lnet/z"

// Plain adapts a callback which ignores the iteration index to the
// shape taken by the Foreach methods.
func Plain[T any](fn func(x T) bool) func(x T, i int) bool {
	return func(x T, _ int) bool {
		return fn(x)
	}
}

// ForeachNode calls fn with every node which is not dead, in index order,
// together with its position in the iteration.  Iteration stops when fn
// returns false.
func (ntk *Network) ForeachNode(fn func(n z.Node, i int) bool) {
	i := 0
	for j := range ntk.s.nodes {
		if ntk.s.nodes[j].fanout&deadBit != 0 {
			continue
		}
		if !fn(z.Node(j), i) {
			return
		}
		i++
	}
}

// ForeachPI calls fn with every primary input and its input index.
func (ntk *Network) ForeachPI(fn func(n z.Node, i int) bool) {
	for i, n := range ntk.s.inputs {
		if !fn(n, i) {
			return
		}
	}
}

// ForeachPO calls fn with every primary output signal and its output
// index.
func (ntk *Network) ForeachPO(fn func(m z.Sig, i int) bool) {
	for i, m := range ntk.s.outputs {
		if !fn(m, i) {
			return
		}
	}
}

// ForeachGate calls fn with every gate which is not dead, in index order,
// together with its position in the iteration.
func (ntk *Network) ForeachGate(fn func(n z.Node, i int) bool) {
	i := 0
	for j := 1; j < len(ntk.s.nodes); j++ {
		nd := &ntk.s.nodes[j]
		if len(nd.fanin) == 0 || nd.fanout&deadBit != 0 {
			continue
		}
		if !fn(z.Node(j), i) {
			return
		}
		i++
	}
}

// ForeachFanin calls fn with the children of n in order.
func (ntk *Network) ForeachFanin(n z.Node, fn func(m z.Sig, i int) bool) {
	for i, m := range ntk.s.at(n).fanin {
		if !fn(m, i) {
			return
		}
	}
}
