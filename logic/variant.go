// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package logic

import "fmt"

// MaxFanin is the largest number of children of any node.
const MaxFanin = 6

type gateSet uint64

func gates(gs ...Gate) gateSet {
	var s gateSet
	for _, g := range gs {
		s |= 1 << g
	}
	return s
}

func (s gateSet) has(g Gate) bool {
	return s&(1<<g) != 0
}

// Type Variant describes a flavour of network.  All variants share the
// same engine and differ only in the parameters below.
type Variant struct {
	Name      string
	MaxFanin  int  // maximal number of children of a node
	Strash    bool // deduplicate structurally equal nodes
	Canonical bool // order operands of commutative 2 input gates by index
	natives   gateSet
}

// NewVariant creates a variant whose natively stored gate kinds are
// natives.  Gates which are not native are composed from native ones.
// And must be native.
func NewVariant(name string, maxFanin int, strash, canonical bool, natives ...Gate) *Variant {
	v := &Variant{
		Name:      name,
		MaxFanin:  maxFanin,
		Strash:    strash,
		Canonical: canonical,
		natives:   gates(natives...)}
	v.check()
	return v
}

func (v *Variant) check() {
	if v.MaxFanin < 2 || v.MaxFanin > MaxFanin {
		panic(fmt.Sprintf("logic: variant %s: invalid max fanin %d", v.Name, v.MaxFanin))
	}
	if !v.natives.has(And) {
		panic(fmt.Sprintf("logic: variant %s: and is not native", v.Name))
	}
	for g := Const; g < Other; g++ {
		if v.natives.has(g) && g.Arity() > v.MaxFanin {
			panic(fmt.Sprintf("logic: variant %s: %s exceeds max fanin", v.Name, g))
		}
	}
}

// Native returns whether g is stored as a single node by networks of
// variant v.
func (v *Variant) Native(g Gate) bool {
	return v.natives.has(g)
}

func (v *Variant) String() string {
	return v.Name
}

var natives2 = []Gate{And, Nand, Or, Nor, Xor, Xnor}

var natives3 = append(natives2[:len(natives2):len(natives2)], Maj, Ite, Xor3)

// The predefined variants.
var (
	// Primary is the 2 input variant.  It hashes nodes and orders the
	// operands of commutative gates, composing all 3 input gates from 2
	// input ones.
	Primary = NewVariant("primary", 2, true, true, natives2...)

	// GTG is the 3 input generic gate variant, which stores majority,
	// if-then-else and xor3 natively and does not hash.
	GTG = NewVariant("gtg", 3, false, false, natives3...)

	// HashedGTG is GTG with structural hashing.
	HashedGTG = NewVariant("hgtg", 3, true, false, natives3...)

	// GTech additionally stores and3, or3 and the 21 class gates
	// natively.
	GTech = NewVariant("gtech", 3, true, false, append(natives3[:len(natives3):len(natives3)],
		And3, Nand3, Or3, Nor3, Aoi21, Oai21, Axi21, Xai21, Oxi21, Xoi21)...)
)

// Variants lists the predefined variants.
var Variants = []*Variant{Primary, GTG, HashedGTG, GTech}

// VariantNamed returns the predefined variant with name, or nil.
func VariantNamed(name string) *Variant {
	for _, v := range Variants {
		if v.Name == name {
			return v
		}
	}
	return nil
}
