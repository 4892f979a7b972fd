// Copyright 2018 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package gtech

import "fmt"

// Operand is a reference to a signal by name, possibly negated.
type Operand struct {
	Name string
	Neg  bool
}

func (o Operand) String() string {
	if o.Neg {
		return "~" + o.Name
	}
	return o.Name
}

// Range is the bit range of a declaration.  The zero Range declares
// scalars.
type Range struct {
	Hi, Lo int
	Vec    bool
}

// Width returns the number of bits in r.
func (r Range) Width() int {
	if !r.Vec {
		return 1
	}
	if r.Hi < r.Lo {
		return r.Lo - r.Hi + 1
	}
	return r.Hi - r.Lo + 1
}

// Bits returns the names of the bits of a declaration of name with range
// r, from the lowest index to the highest.
func (r Range) Bits(name string) []string {
	if !r.Vec {
		return []string{name}
	}
	lo := r.Lo
	if r.Hi < lo {
		lo = r.Hi
	}
	res := make([]string, r.Width())
	for i := range res {
		res[i] = fmt.Sprintf("%s[%d]", name, lo+i)
	}
	return res
}

func (r Range) String() string {
	if !r.Vec {
		return ""
	}
	return fmt.Sprintf("[%d:%d]", r.Hi, r.Lo)
}

// LatchInit is the initial value of a latch.
type LatchInit uint8

const (
	Init0 LatchInit = iota
	Init1
	InitX // unknown
)

func (i LatchInit) String() string {
	switch i {
	case Init0:
		return "0"
	case Init1:
		return "1"
	}
	return "x"
}

// Pin connects a bit of a port of an instantiated module, Formal, to a
// signal of the instantiating module, Actual.
type Pin struct {
	Formal string
	Actual string
}

// Reader receives the constructs of a netlist.
//
// Port and declaration callbacks are made as the statements are read.
// Gate, assignment, latch and instantiation callbacks are made once
// every signal they depend on has been produced, so within a module they
// arrive in a topological order.  Each gate callback receives the name
// of the signal it produces and its operands.
//
// A non-nil error from any callback aborts reading.
type Reader interface {
	OnModuleHeader(name string, ports []string) error
	OnInputs(names []string, r Range) error
	OnOutputs(names []string, r Range) error
	OnWires(names []string, r Range) error
	OnParameter(name, value string) error
	OnEndmodule() error

	// OnLatchOutput is called when a latch statement is read, before
	// any statement using q is dispatched.  OnLatch and OnLatchInput
	// follow once d is produced.
	OnLatchOutput(q string) error
	OnLatch(q string, d Operand, init LatchInit) error
	OnLatchInput(d string) error

	OnAssign(lhs string, rhs Operand) error
	OnZero(lhs string) error
	OnOne(lhs string) error

	OnBuf(lhs string, a Operand) error
	OnNot(lhs string, a Operand) error
	OnAnd(lhs string, a, b Operand) error
	OnNand(lhs string, a, b Operand) error
	OnOr(lhs string, a, b Operand) error
	OnNor(lhs string, a, b Operand) error
	OnXor(lhs string, a, b Operand) error
	OnXnor(lhs string, a, b Operand) error
	OnLt(lhs string, a, b Operand) error
	OnLe(lhs string, a, b Operand) error
	OnAnd3(lhs string, a, b, c Operand) error
	OnOr3(lhs string, a, b, c Operand) error
	OnXor3(lhs string, a, b, c Operand) error
	OnMaj(lhs string, a, b, c Operand) error
	OnIte(lhs string, i, t, e Operand) error
	OnNmux(lhs string, i, t, e Operand) error
	OnNand3(lhs string, a, b, c Operand) error
	OnNor3(lhs string, a, b, c Operand) error
	OnAoi21(lhs string, a, b, c Operand) error
	OnOai21(lhs string, a, b, c Operand) error
	OnAxi21(lhs string, a, b, c Operand) error
	OnXai21(lhs string, a, b, c Operand) error
	OnOxi21(lhs string, a, b, c Operand) error
	OnXoi21(lhs string, a, b, c Operand) error

	// OnModuleInstantiation receives one pin per connected port bit.
	OnModuleInstantiation(module string, params []string, inst string, pins []Pin) error
	OnComment(text string) error
}

// NopReader implements Reader by ignoring everything.  Readers
// interested in a few constructs can embed it.
type NopReader struct{}

func (NopReader) OnModuleHeader(name string, ports []string) error { return nil }
func (NopReader) OnInputs(names []string, r Range) error             { return nil }
func (NopReader) OnOutputs(names []string, r Range) error            { return nil }
func (NopReader) OnWires(names []string, r Range) error              { return nil }
func (NopReader) OnParameter(name, value string) error               { return nil }
func (NopReader) OnEndmodule() error                                 { return nil }
func (NopReader) OnLatchOutput(q string) error                       { return nil }
func (NopReader) OnLatch(q string, d Operand, init LatchInit) error  { return nil }
func (NopReader) OnLatchInput(d string) error                        { return nil }
func (NopReader) OnAssign(lhs string, rhs Operand) error             { return nil }
func (NopReader) OnZero(lhs string) error                            { return nil }
func (NopReader) OnOne(lhs string) error                             { return nil }
func (NopReader) OnBuf(lhs string, a Operand) error                  { return nil }
func (NopReader) OnNot(lhs string, a Operand) error                  { return nil }
func (NopReader) OnAnd(lhs string, a, b Operand) error               { return nil }
func (NopReader) OnNand(lhs string, a, b Operand) error              { return nil }
func (NopReader) OnOr(lhs string, a, b Operand) error                { return nil }
func (NopReader) OnNor(lhs string, a, b Operand) error               { return nil }
func (NopReader) OnXor(lhs string, a, b Operand) error               { return nil }
func (NopReader) OnXnor(lhs string, a, b Operand) error              { return nil }
func (NopReader) OnLt(lhs string, a, b Operand) error                { return nil }
func (NopReader) OnLe(lhs string, a, b Operand) error                { return nil }
func (NopReader) OnAnd3(lhs string, a, b, c Operand) error           { return nil }
func (NopReader) OnOr3(lhs string, a, b, c Operand) error            { return nil }
func (NopReader) OnXor3(lhs string, a, b, c Operand) error           { return nil }
func (NopReader) OnMaj(lhs string, a, b, c Operand) error            { return nil }
func (NopReader) OnIte(lhs string, i, t, e Operand) error            { return nil }
func (NopReader) OnNmux(lhs string, i, t, e Operand) error           { return nil }
func (NopReader) OnNand3(lhs string, a, b, c Operand) error          { return nil }
func (NopReader) OnNor3(lhs string, a, b, c Operand) error           { return nil }
func (NopReader) OnAoi21(lhs string, a, b, c Operand) error          { return nil }
func (NopReader) OnOai21(lhs string, a, b, c Operand) error          { return nil }
func (NopReader) OnAxi21(lhs string, a, b, c Operand) error          { return nil }
func (NopReader) OnXai21(lhs string, a, b, c Operand) error          { return nil }
func (NopReader) OnOxi21(lhs string, a, b, c Operand) error          { return nil }
func (NopReader) OnXoi21(lhs string, a, b, c Operand) error          { return nil }
func (NopReader) OnComment(text string) error                        { return nil }

func (NopReader) OnModuleInstantiation(module string, params []string, inst string, pins []Pin) error {
	return nil
}
