// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package inter contains the small interfaces shared by lnet packages.
//
// Readers of netlist formats and generators construct networks only through
// these interfaces, so they never depend on a concrete network type.
package inter

import "github.com/go-air/lnet/z"

// Source produces the leaves of a network: constants and primary inputs.
type Source interface {
	// Constant returns the constant signal with value v.
	Constant(v bool) z.Sig

	// CreatePI appends a new primary input and returns its positive signal.
	CreatePI() z.Sig
}

// Sink consumes the roots of a network.
type Sink interface {
	// CreatePO appends s to the primary outputs and returns its index.
	CreatePO(s z.Sig) int
}

// Gates2 constructs 1 and 2 input gates.
//
// Buf and Not never need to allocate anything: they may be implemented
// as manipulations of the complement bit.
type Gates2 interface {
	Buf(a z.Sig) z.Sig
	Not(a z.Sig) z.Sig
	And(a, b z.Sig) z.Sig
	Nand(a, b z.Sig) z.Sig
	Or(a, b z.Sig) z.Sig
	Nor(a, b z.Sig) z.Sig
	Xor(a, b z.Sig) z.Sig
	Xnor(a, b z.Sig) z.Sig
	Lt(a, b z.Sig) z.Sig
	Le(a, b z.Sig) z.Sig
}

// Gates3 constructs 3 input gates, including the 21-class gates named
// after their two constituent binary operators.
type Gates3 interface {
	And3(a, b, c z.Sig) z.Sig
	Or3(a, b, c z.Sig) z.Sig
	Xor3(a, b, c z.Sig) z.Sig
	Maj(a, b, c z.Sig) z.Sig
	Ite(i, t, e z.Sig) z.Sig
	Mux21(i, t, e z.Sig) z.Sig
	Nmux21(i, t, e z.Sig) z.Sig
	Nand3(a, b, c z.Sig) z.Sig
	Nor3(a, b, c z.Sig) z.Sig
	Aoi21(a, b, c z.Sig) z.Sig
	Oai21(a, b, c z.Sig) z.Sig
	Axi21(a, b, c z.Sig) z.Sig
	Xai21(a, b, c z.Sig) z.Sig
	Oxi21(a, b, c z.Sig) z.Sig
	Xoi21(a, b, c z.Sig) z.Sig
}

// Nary constructs gates over arbitrary numbers of operands.
type Nary interface {
	// Ands returns the conjunction of ms, true if ms is empty.
	Ands(ms ...z.Sig) z.Sig
	// Ors returns the disjunction of ms, false if ms is empty.
	Ors(ms ...z.Sig) z.Sig
	// Xors returns the parity of ms, false if ms is empty.
	Xors(ms ...z.Sig) z.Sig
}

// Builder is everything needed to construct a combinational network.
type Builder interface {
	Source
	Sink
	Gates2
	Gates3
	Nary
}

// Sequential is implemented by builders which support registers.
// Readers fall back to cutting registers into a pseudo input and a pseudo
// output when the builder does not implement it.
type Sequential interface {
	// CreateRO creates the output of a register with initial value init
	// and returns its signal.
	CreateRO(init bool) z.Sig

	// CreateRI sets the next state of the register whose output is ro.
	CreateRI(ro, next z.Sig)
}
