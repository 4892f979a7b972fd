// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package logic

import (
	"fmt"

	"github.com/go-air/lnet/tt"
	"github.com/go-air/lnet/z"
)

// Type Network is a handle on a logic network of some Variant.
//
// Nodes are only ever appended, so node indices are a topological order:
// every child of a node has a smaller index than the node.
type Network struct {
	s    *Storage
	v    *Variant
	name string
}

type config struct {
	capHint int
	name    string
}

// Option configures a new network.
type Option func(*config)

// Capacity sets the initial node capacity of a network.
func Capacity(n int) Option {
	return func(c *config) {
		c.capHint = n
	}
}

// Name sets the name of a network.
func Name(name string) Option {
	return func(c *config) {
		c.name = name
	}
}

// New creates a new network of variant v.
func New(v *Variant, opts ...Option) *Network {
	c := &config{capHint: 128}
	for _, opt := range opts {
		opt(c)
	}
	return &Network{s: newStorage(c.capHint), v: v, name: c.name}
}

// NewPrimary creates a network of the Primary variant.
func NewPrimary(opts ...Option) *Network {
	return New(Primary, opts...)
}

// NewGTG creates a network of the GTG variant.
func NewGTG(opts ...Option) *Network {
	return New(GTG, opts...)
}

// NewGTech creates a network of the GTech variant.
func NewGTech(opts ...Option) *Network {
	return New(GTech, opts...)
}

// Variant returns the variant of ntk.
func (ntk *Network) Variant() *Variant {
	return ntk.v
}

// Name returns the name of ntk.
func (ntk *Network) Name() string {
	return ntk.name
}

// SetName sets the name of ntk.
func (ntk *Network) SetName(name string) {
	ntk.name = name
}

// Storage returns the storage of ntk.
func (ntk *Network) Storage() *Storage {
	return ntk.s
}

// Events returns the observers of the storage of ntk.
func (ntk *Network) Events() *Events {
	return ntk.s.events
}

// View returns a new handle which shares the storage of ntk.
func (ntk *Network) View() *Network {
	return &Network{s: ntk.s, v: ntk.v, name: ntk.name}
}

// Clone returns a network with a deep copy of the storage of ntk.
// Observers are not copied.
func (ntk *Network) Clone() *Network {
	return &Network{s: ntk.s.clone(), v: ntk.v, name: ntk.name}
}

// Constant returns the constant signal with value v.
func (ntk *Network) Constant(v bool) z.Sig {
	if v {
		return z.Const1
	}
	return z.Const0
}

// CreatePI creates a new primary input.
func (ntk *Network) CreatePI() z.Sig {
	s := ntk.s
	id := z.Node(len(s.nodes))
	s.nodes = append(s.nodes, node{fn: litPI, aux: uint32(len(s.inputs))})
	s.inputs = append(s.inputs, id)
	return id.Pos()
}

// CreatePO adds m to the primary outputs and returns its output index.
func (ntk *Network) CreatePO(m z.Sig) int {
	s := ntk.s
	s.incrFanout(m.Node())
	s.outputs = append(s.outputs, m)
	return len(s.outputs) - 1
}

// create returns a node with function literal fn and children cs,
// allocating it unless the variant hashes and an equal node exists.
func (ntk *Network) create(fn uint32, cs []z.Sig) z.Sig {
	if len(cs) == 0 || len(cs) > ntk.v.MaxFanin {
		panic(fmt.Sprintf("logic: %s: %d children not in [1..%d]", ntk.v, len(cs), ntk.v.MaxFanin))
	}
	s := ntk.s
	if ntk.v.Strash {
		if n, ok := s.find(fn, cs); ok {
			return n.Pos()
		}
	}
	for _, c := range cs {
		s.at(c.Node())
	}
	id := z.Node(len(s.nodes))
	fanin := make([]z.Sig, len(cs))
	copy(fanin, cs)
	s.nodes = append(s.nodes, node{fanin: fanin, fn: fn})
	if ntk.v.Strash {
		s.register(fn, fanin, id)
	}
	for _, c := range fanin {
		s.incrFanout(c.Node())
	}
	s.ngates++
	s.events.added(id)
	return id.Pos()
}

// CreateNode creates a node with function t over children cs.  t must
// have as many variables as there are children.  If cs is empty, t must
// have no variables and the corresponding constant is returned.
func (ntk *Network) CreateNode(cs []z.Sig, t tt.T) z.Sig {
	if len(cs) == 0 {
		if t.Vars() != 0 {
			panic(fmt.Sprintf("logic: constant node with function %s", t))
		}
		return ntk.Constant(t.Bit(0))
	}
	if t.Vars() != len(cs) {
		panic(fmt.Sprintf("logic: function %s over %d children", t, len(cs)))
	}
	return ntk.create(ntk.s.cache.Insert(t), cs)
}

// CloneNode creates a node with the function of node n of other over
// the children cs.
func (ntk *Network) CloneNode(other *Network, n z.Node, cs []z.Sig) z.Sig {
	if len(cs) == 0 {
		panic("logic: clone without children")
	}
	t := other.s.cache.Lookup(other.s.at(n).fn)
	return ntk.CreateNode(cs, t)
}
