// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package logic

import (
	"fmt"

	"github.com/go-air/lnet/tt"
	"github.com/go-air/lnet/z"
)

const deadBit = uint32(1) << 31

type node struct {
	fanin   []z.Sig
	fanout  uint32 // reference count, msb marks dead nodes
	fn      uint32 // function literal
	value   uint32 // application scratch
	visited uint32 // traversal id
	aux     uint32 // input index of primary inputs
}

type strashKey struct {
	fn uint32
	n  uint8
	cs [MaxFanin]z.Sig
}

func keyOf(fn uint32, cs []z.Sig) strashKey {
	k := strashKey{fn: fn, n: uint8(len(cs))}
	copy(k.cs[:], cs)
	return k
}

// Type Storage holds the nodes, inputs, outputs and functions of a
// network.  A Storage may be shared by several network handles, of which
// only one may mutate it at any time.
type Storage struct {
	nodes   []node
	inputs  []z.Node
	outputs []z.Sig
	strash  map[strashKey]z.Node
	cache   *tt.Cache
	travID  uint32
	ngates  int
	events  *Events
}

func newStorage(capHint int) *Storage {
	if capHint < 1 {
		capHint = 1
	}
	s := &Storage{
		nodes:  make([]node, 1, capHint),
		strash: make(map[strashKey]z.Node),
		cache:  tt.NewCache(),
		events: &Events{}}
	seed(s.cache)
	return s
}

func (s *Storage) clone() *Storage {
	d := &Storage{
		nodes:   make([]node, len(s.nodes), cap(s.nodes)),
		inputs:  append([]z.Node(nil), s.inputs...),
		outputs: append([]z.Sig(nil), s.outputs...),
		strash:  make(map[strashKey]z.Node, len(s.strash)),
		cache:   s.cache.Clone(),
		travID:  s.travID,
		ngates:  s.ngates,
		events:  &Events{}}
	copy(d.nodes, s.nodes)
	for i := range d.nodes {
		d.nodes[i].fanin = append([]z.Sig(nil), s.nodes[i].fanin...)
	}
	for k, v := range s.strash {
		d.strash[k] = v
	}
	return d
}

func (s *Storage) at(n z.Node) *node {
	if int(n) >= len(s.nodes) {
		panic(fmt.Sprintf("logic: node %s out of range [0..%d)", n, len(s.nodes)))
	}
	return &s.nodes[n]
}

func (s *Storage) find(fn uint32, cs []z.Sig) (z.Node, bool) {
	n, ok := s.strash[keyOf(fn, cs)]
	return n, ok
}

func (s *Storage) register(fn uint32, cs []z.Sig, n z.Node) {
	s.strash[keyOf(fn, cs)] = n
}

func (s *Storage) unregister(fn uint32, cs []z.Sig, n z.Node) {
	k := keyOf(fn, cs)
	if m, ok := s.strash[k]; ok && m == n {
		delete(s.strash, k)
	}
}

func (s *Storage) incrFanout(n z.Node) uint32 {
	nd := s.at(n)
	if nd.fanout&^deadBit == ^deadBit {
		panic(fmt.Sprintf("logic: fanout overflow at %s", n))
	}
	nd.fanout++
	return nd.fanout &^ deadBit
}

func (s *Storage) decrFanout(n z.Node) uint32 {
	nd := s.at(n)
	if nd.fanout&^deadBit == 0 {
		panic(fmt.Sprintf("logic: fanout underflow at %s", n))
	}
	nd.fanout--
	return nd.fanout &^ deadBit
}

// Len returns the number of nodes in s, including the constant node.
func (s *Storage) Len() int {
	return len(s.nodes)
}

// Functions returns the number of distinct functions in the truth table
// cache of s, counting a function and its complement once.
func (s *Storage) Functions() int {
	return s.cache.Len()
}
