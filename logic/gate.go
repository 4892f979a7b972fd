// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package logic

import (
	"fmt"

	"github.com/go-air/lnet/tt"
)

// Type Gate classifies nodes by their function.  The classification is
// derived from the function literal of a node only.
type Gate uint8

// Gate kinds.  For the 3 input gates the operands are (a, b, c) and for
// Ite and Nite they are (i, t, e).
const (
	Const Gate = iota // constant 0
	Input             // primary input
	Buf               // a
	Not               // !a
	And               // a & b
	Nand              // !(a & b)
	Or                // a | b
	Nor               // !(a | b)
	Lt                // !a & b
	Le                // !(a & !b)
	Xor               // a ^ b
	Xnor              // !(a ^ b)
	Maj               // majority of a, b, c
	Ite               // i ? t : e
	Nite              // !(i ? t : e)
	Xor3              // a ^ b ^ c
	And3              // a & b & c
	Nand3             // !(a & b & c)
	Or3               // a | b | c
	Nor3              // !(a | b | c)
	Aoi21             // !((a & b) | c)
	Oai21             // !((a | b) & c)
	Axi21             // !((a & c) ^ b)
	Xai21             // !((a ^ c) & b)
	Oxi21             // !((a | c) ^ b)
	Xoi21             // !((a ^ c) | b)
	Other             // any other function
	numGates
)

type gateDef struct {
	name  string
	arity int
	f     func(a, b, c bool) bool
}

var gateDefs = [numGates]gateDef{
	Const: {"const", 0, func(a, b, c bool) bool { return false }},
	Input: {"pi", 0, nil},
	Buf:   {"buf", 1, func(a, b, c bool) bool { return a }},
	Not:   {"not", 1, func(a, b, c bool) bool { return !a }},
	And:   {"and", 2, func(a, b, c bool) bool { return a && b }},
	Nand:  {"nand", 2, func(a, b, c bool) bool { return !(a && b) }},
	Or:    {"or", 2, func(a, b, c bool) bool { return a || b }},
	Nor:   {"nor", 2, func(a, b, c bool) bool { return !(a || b) }},
	Lt:    {"lt", 2, func(a, b, c bool) bool { return !a && b }},
	Le:    {"le", 2, func(a, b, c bool) bool { return !(a && !b) }},
	Xor:   {"xor", 2, func(a, b, c bool) bool { return a != b }},
	Xnor:  {"xnor", 2, func(a, b, c bool) bool { return a == b }},
	Maj:   {"maj", 3, func(a, b, c bool) bool { return (a && b) || (a && c) || (b && c) }},
	Ite:   {"ite", 3, func(i, t, e bool) bool { return (i && t) || (!i && e) }},
	Nite:  {"nite", 3, func(i, t, e bool) bool { return !((i && t) || (!i && e)) }},
	Xor3:  {"xor3", 3, func(a, b, c bool) bool { return a != b != c }},
	And3:  {"and3", 3, func(a, b, c bool) bool { return a && b && c }},
	Nand3: {"nand3", 3, func(a, b, c bool) bool { return !(a && b && c) }},
	Or3:   {"or3", 3, func(a, b, c bool) bool { return a || b || c }},
	Nor3:  {"nor3", 3, func(a, b, c bool) bool { return !(a || b || c) }},
	Aoi21: {"aoi21", 3, func(a, b, c bool) bool { return !((a && b) || c) }},
	Oai21: {"oai21", 3, func(a, b, c bool) bool { return !((a || b) && c) }},
	Axi21: {"axi21", 3, func(a, b, c bool) bool { return !((a && c) != b) }},
	Xai21: {"xai21", 3, func(a, b, c bool) bool { return !((a != c) && b) }},
	Oxi21: {"oxi21", 3, func(a, b, c bool) bool { return !((a || c) != b) }},
	Xoi21: {"xoi21", 3, func(a, b, c bool) bool { return !((a != c) || b) }},
	Other: {"other", -1, nil}}

// literals of the gate kinds, fixed by inserting the gate tables in
// kind order into an empty cache.  Every Storage performs the same
// insertions, so these agree with the literals of any network.
var (
	gateLits [numGates]uint32
	litGates = map[uint32]Gate{}
)

const (
	litConst0 uint32 = 0
	litPI     uint32 = 1
)

func init() {
	c := tt.NewCache()
	seed(c)
	for g := Const; g < Other; g++ {
		if g == Input {
			gateLits[g] = litPI
			continue
		}
		gateLits[g] = c.Insert(g.Table())
		if _, ok := litGates[gateLits[g]]; !ok {
			litGates[gateLits[g]] = g
		}
	}
}

// seed inserts the tables of the gate kinds into c.
func seed(c *tt.Cache) {
	for g := Const; g < Other; g++ {
		if g == Input {
			continue
		}
		c.Insert(g.Table())
	}
}

// Arity returns the number of operands of g, or -1 if g is Other.
func (g Gate) Arity() int {
	return gateDefs[g].arity
}

// Literal returns the reserved function literal of g.
func (g Gate) Literal() uint32 {
	if g >= Other {
		panic(fmt.Sprintf("logic: gate %s has no literal", g))
	}
	return gateLits[g]
}

// Table returns the truth table of g.  Operand j of g is variable j.
func (g Gate) Table() tt.T {
	d := &gateDefs[g]
	if d.f == nil {
		panic(fmt.Sprintf("logic: gate %s has no table", g))
	}
	return tt.FromFunc(d.arity, func(m int) bool {
		return d.f(m&1 != 0, m&2 != 0, m&4 != 0)
	})
}

func (g Gate) String() string {
	if g >= numGates {
		return fmt.Sprintf("gate(%d)", uint8(g))
	}
	return gateDefs[g].name
}

// GateOf returns the gate kind with function literal lit.
func GateOf(lit uint32) Gate {
	if g, ok := litGates[lit]; ok {
		return g
	}
	return Other
}
