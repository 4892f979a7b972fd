// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package logic

import (
	"fmt"

	"github.com/go-air/lnet/tt"
	"github.com/go-air/lnet/z"
)

// Size returns the number of nodes of ntk, including the constant
// node and dead nodes.
func (ntk *Network) Size() int {
	return len(ntk.s.nodes)
}

// NumPIs returns the number of primary inputs.
func (ntk *Network) NumPIs() int {
	return len(ntk.s.inputs)
}

// NumPOs returns the number of primary outputs.
func (ntk *Network) NumPOs() int {
	return len(ntk.s.outputs)
}

// NumGates returns the number of gates which are not dead.
func (ntk *Network) NumGates() int {
	return ntk.s.ngates
}

// PI returns the node of the i'th primary input.
func (ntk *Network) PI(i int) z.Node {
	return ntk.s.inputs[i]
}

// PO returns the signal of the i'th primary output.
func (ntk *Network) PO(i int) z.Sig {
	return ntk.s.outputs[i]
}

// PIIndex returns the input index of n, which must be a primary input.
func (ntk *Network) PIIndex(n z.Node) int {
	if !ntk.IsPI(n) {
		panic(fmt.Sprintf("logic: %s is not an input", n))
	}
	return int(ntk.s.nodes[n].aux)
}

// IsConstant returns whether n is the constant node.
func (ntk *Network) IsConstant(n z.Node) bool {
	return n == 0
}

// IsPI returns whether n is a primary input.
func (ntk *Network) IsPI(n z.Node) bool {
	nd := ntk.s.at(n)
	return n != 0 && nd.fn == litPI && len(nd.fanin) == 0
}

// IsGate returns whether n is neither constant nor input.
func (ntk *Network) IsGate(n z.Node) bool {
	return len(ntk.s.at(n).fanin) != 0
}

// IsDead returns whether n has been killed.
func (ntk *Network) IsDead(n z.Node) bool {
	return ntk.s.at(n).fanout&deadBit != 0
}

// FaninSize returns the number of children of n.
func (ntk *Network) FaninSize(n z.Node) int {
	return len(ntk.s.at(n).fanin)
}

// Fanin returns the i'th child of n.
func (ntk *Network) Fanin(n z.Node, i int) z.Sig {
	return ntk.s.at(n).fanin[i]
}

// Fanins places the children of n in dst, if there is space, and
// returns them.
func (ntk *Network) Fanins(n z.Node, dst []z.Sig) []z.Sig {
	return append(dst[:0], ntk.s.at(n).fanin...)
}

// FanoutSize returns the number of references to n from the children of
// live nodes and from the outputs.
func (ntk *Network) FanoutSize(n z.Node) int {
	return int(ntk.s.at(n).fanout &^ deadBit)
}

// IncrFanout increments the reference count of n and returns it.
func (ntk *Network) IncrFanout(n z.Node) int {
	return int(ntk.s.incrFanout(n))
}

// DecrFanout decrements the reference count of n and returns it.
// DecrFanout panics if the count is 0.
func (ntk *Network) DecrFanout(n z.Node) int {
	return int(ntk.s.decrFanout(n))
}

// Kill marks the gate n dead.  Its children keep their place but no
// longer count n among their references, and n is no longer found by
// structural hashing.  Killing a dead node has no effect.
func (ntk *Network) Kill(n z.Node) {
	s := ntk.s
	nd := s.at(n)
	if len(nd.fanin) == 0 {
		panic(fmt.Sprintf("logic: cannot kill non-gate %s", n))
	}
	if nd.fanout&deadBit != 0 {
		return
	}
	nd.fanout |= deadBit
	if ntk.v.Strash {
		s.unregister(nd.fn, nd.fanin, n)
	}
	for _, c := range nd.fanin {
		s.decrFanout(c.Node())
	}
	s.ngates--
	s.events.deleted(n)
}

// Literal returns the function literal of n.
func (ntk *Network) Literal(n z.Node) uint32 {
	return ntk.s.at(n).fn
}

// NodeFunction returns the truth table of n over its children.  The
// function of an input is the identity.
func (ntk *Network) NodeFunction(n z.Node) tt.T {
	if ntk.IsPI(n) {
		return Buf.Table()
	}
	return ntk.s.cache.Lookup(ntk.s.at(n).fn)
}

// Kind returns the gate kind of n.
func (ntk *Network) Kind(n z.Node) Gate {
	switch {
	case n == 0:
		return Const
	case ntk.IsPI(n):
		return Input
	}
	return GateOf(ntk.s.nodes[n].fn)
}

func (ntk *Network) is(n z.Node, g Gate) bool {
	nd := ntk.s.at(n)
	return len(nd.fanin) != 0 && nd.fn == gateLits[g]
}

func (ntk *Network) IsBuf(n z.Node) bool   { return ntk.is(n, Buf) }
func (ntk *Network) IsNot(n z.Node) bool   { return ntk.is(n, Not) }
func (ntk *Network) IsAnd(n z.Node) bool   { return ntk.is(n, And) }
func (ntk *Network) IsNand(n z.Node) bool  { return ntk.is(n, Nand) }
func (ntk *Network) IsOr(n z.Node) bool    { return ntk.is(n, Or) }
func (ntk *Network) IsNor(n z.Node) bool   { return ntk.is(n, Nor) }
func (ntk *Network) IsLt(n z.Node) bool    { return ntk.is(n, Lt) }
func (ntk *Network) IsLe(n z.Node) bool    { return ntk.is(n, Le) }
func (ntk *Network) IsXor(n z.Node) bool   { return ntk.is(n, Xor) }
func (ntk *Network) IsXnor(n z.Node) bool  { return ntk.is(n, Xnor) }
func (ntk *Network) IsMaj(n z.Node) bool   { return ntk.is(n, Maj) }
func (ntk *Network) IsIte(n z.Node) bool   { return ntk.is(n, Ite) }
func (ntk *Network) IsXor3(n z.Node) bool  { return ntk.is(n, Xor3) }
func (ntk *Network) IsAnd3(n z.Node) bool  { return ntk.is(n, And3) }
func (ntk *Network) IsOr3(n z.Node) bool   { return ntk.is(n, Or3) }
func (ntk *Network) IsNand3(n z.Node) bool { return ntk.is(n, Nand3) }
func (ntk *Network) IsNor3(n z.Node) bool  { return ntk.is(n, Nor3) }
func (ntk *Network) IsAoi21(n z.Node) bool { return ntk.is(n, Aoi21) }
func (ntk *Network) IsOai21(n z.Node) bool { return ntk.is(n, Oai21) }
func (ntk *Network) IsAxi21(n z.Node) bool { return ntk.is(n, Axi21) }
func (ntk *Network) IsXai21(n z.Node) bool { return ntk.is(n, Xai21) }
func (ntk *Network) IsOxi21(n z.Node) bool { return ntk.is(n, Oxi21) }
func (ntk *Network) IsXoi21(n z.Node) bool { return ntk.is(n, Xoi21) }

// Value returns the application value of n.
func (ntk *Network) Value(n z.Node) uint32 {
	return ntk.s.at(n).value
}

// SetValue sets the application value of n.
func (ntk *Network) SetValue(n z.Node, v uint32) {
	ntk.s.at(n).value = v
}

// IncrValue increments the application value of n and returns the value
// before the increment.
func (ntk *Network) IncrValue(n z.Node) uint32 {
	nd := ntk.s.at(n)
	v := nd.value
	nd.value++
	return v
}

// DecrValue decrements the application value of n and returns the value
// after the decrement.
func (ntk *Network) DecrValue(n z.Node) uint32 {
	nd := ntk.s.at(n)
	nd.value--
	return nd.value
}

// ClearValues sets all application values to 0.
func (ntk *Network) ClearValues() {
	for i := range ntk.s.nodes {
		ntk.s.nodes[i].value = 0
	}
}

// Visited returns the visited marker of n.
func (ntk *Network) Visited(n z.Node) uint32 {
	return ntk.s.at(n).visited
}

// SetVisited sets the visited marker of n, usually to TravID().
func (ntk *Network) SetVisited(n z.Node, v uint32) {
	ntk.s.at(n).visited = v
}

// ClearVisited sets all visited markers to 0.
func (ntk *Network) ClearVisited() {
	for i := range ntk.s.nodes {
		ntk.s.nodes[i].visited = 0
	}
}

// TravID returns the current traversal id.
func (ntk *Network) TravID() uint32 {
	return ntk.s.travID
}

// IncrTravID increments the traversal id, which marks all nodes as not
// visited in the current traversal, and returns the new id.
func (ntk *Network) IncrTravID() uint32 {
	ntk.s.travID++
	return ntk.s.travID
}
