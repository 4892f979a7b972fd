// Copyright 2018 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package gtech

import (
	"fmt"
	"strings"
)

// Op identifies the statement carried by a Call.
type Op uint8

const (
	OpAssign Op = iota
	OpZero
	OpOne
	OpBuf
	OpNot
	OpAnd
	OpNand
	OpOr
	OpNor
	OpXor
	OpXnor
	OpLt
	OpLe
	OpAnd3
	OpOr3
	OpXor3
	OpMaj
	OpIte
	OpNmux
	OpNand3
	OpNor3
	OpAoi21
	OpOai21
	OpAxi21
	OpXai21
	OpOxi21
	OpXoi21
	OpLatch
	OpInstance
	numOps
)

var opNames = [numOps]string{
	"assign", "zero", "one", "buf", "not", "and", "nand", "or", "nor",
	"xor", "xnor", "lt", "le", "and3", "or3", "xor3", "maj", "ite", "nmux",
	"nand3", "nor3", "aoi21", "oai21", "axi21", "xai21", "oxi21", "xoi21",
	"latch", "instance"}

func (o Op) String() string {
	if o >= numOps {
		return fmt.Sprintf("op(%d)", uint8(o))
	}
	return opNames[o]
}

// Arity returns the number of operands of o, or -1 for instances.
func (o Op) Arity() int {
	switch {
	case o == OpZero || o == OpOne:
		return 0
	case o == OpAssign || o == OpBuf || o == OpNot || o == OpLatch:
		return 1
	case o >= OpAnd && o <= OpLe:
		return 2
	case o >= OpAnd3 && o <= OpXoi21:
		return 3
	}
	return -1
}

// gate statement keywords
var keywords = map[string]Op{
	"buf":    OpBuf,
	"not":    OpNot,
	"inv":    OpNot,
	"and":    OpAnd,
	"and2":   OpAnd,
	"nand":   OpNand,
	"nand2":  OpNand,
	"or":     OpOr,
	"or2":    OpOr,
	"nor":    OpNor,
	"nor2":   OpNor,
	"xor":    OpXor,
	"xor2":   OpXor,
	"xnor":   OpXnor,
	"xnor2":  OpXnor,
	"lt":     OpLt,
	"le":     OpLe,
	"and3":   OpAnd3,
	"or3":    OpOr3,
	"xor3":   OpXor3,
	"nand3":  OpNand3,
	"nor3":   OpNor3,
	"maj":    OpMaj,
	"maj3":   OpMaj,
	"ite":    OpIte,
	"mux":    OpIte,
	"mux21":  OpIte,
	"nmux":   OpNmux,
	"nmux21": OpNmux,
	"aoi21":  OpAoi21,
	"oai21":  OpOai21,
	"axi21":  OpAxi21,
	"xai21":  OpXai21,
	"oxi21":  OpOxi21,
	"xoi21":  OpXoi21}

// Instance is a module instantiation.
type Instance struct {
	Module string
	Params []string
	Name   string
	Pins   []Pin
}

// Call is a statement awaiting dispatch to a Reader.
type Call struct {
	Op   Op
	Out  string    // produced signal, q for latches
	Ins  []Operand // operands in statement order
	Init LatchInit
	Inst *Instance
	Line int
}

// Producer returns a name identifying what c produces.
func (c *Call) Producer() string {
	if c.Op == OpInstance {
		return c.Inst.Name
	}
	return c.Out
}

func (c *Call) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %s(", c.Op, c.Producer())
	for i, m := range c.Ins {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(m.String())
	}
	sb.WriteString(")")
	return sb.String()
}

// Apply makes the Reader callbacks for c.
func (c *Call) Apply(rd Reader) error {
	ins := c.Ins
	switch c.Op {
	case OpAssign:
		return rd.OnAssign(c.Out, ins[0])
	case OpZero:
		return rd.OnZero(c.Out)
	case OpOne:
		return rd.OnOne(c.Out)
	case OpBuf:
		return rd.OnBuf(c.Out, ins[0])
	case OpNot:
		return rd.OnNot(c.Out, ins[0])
	case OpAnd:
		return rd.OnAnd(c.Out, ins[0], ins[1])
	case OpNand:
		return rd.OnNand(c.Out, ins[0], ins[1])
	case OpOr:
		return rd.OnOr(c.Out, ins[0], ins[1])
	case OpNor:
		return rd.OnNor(c.Out, ins[0], ins[1])
	case OpXor:
		return rd.OnXor(c.Out, ins[0], ins[1])
	case OpXnor:
		return rd.OnXnor(c.Out, ins[0], ins[1])
	case OpLt:
		return rd.OnLt(c.Out, ins[0], ins[1])
	case OpLe:
		return rd.OnLe(c.Out, ins[0], ins[1])
	case OpAnd3:
		return rd.OnAnd3(c.Out, ins[0], ins[1], ins[2])
	case OpOr3:
		return rd.OnOr3(c.Out, ins[0], ins[1], ins[2])
	case OpXor3:
		return rd.OnXor3(c.Out, ins[0], ins[1], ins[2])
	case OpMaj:
		return rd.OnMaj(c.Out, ins[0], ins[1], ins[2])
	case OpIte:
		return rd.OnIte(c.Out, ins[0], ins[1], ins[2])
	case OpNmux:
		return rd.OnNmux(c.Out, ins[0], ins[1], ins[2])
	case OpNand3:
		return rd.OnNand3(c.Out, ins[0], ins[1], ins[2])
	case OpNor3:
		return rd.OnNor3(c.Out, ins[0], ins[1], ins[2])
	case OpAoi21:
		return rd.OnAoi21(c.Out, ins[0], ins[1], ins[2])
	case OpOai21:
		return rd.OnOai21(c.Out, ins[0], ins[1], ins[2])
	case OpAxi21:
		return rd.OnAxi21(c.Out, ins[0], ins[1], ins[2])
	case OpXai21:
		return rd.OnXai21(c.Out, ins[0], ins[1], ins[2])
	case OpOxi21:
		return rd.OnOxi21(c.Out, ins[0], ins[1], ins[2])
	case OpXoi21:
		return rd.OnXoi21(c.Out, ins[0], ins[1], ins[2])
	case OpLatch:
		if err := rd.OnLatch(c.Out, ins[0], c.Init); err != nil {
			return err
		}
		return rd.OnLatchInput(ins[0].Name)
	case OpInstance:
		in := c.Inst
		return rd.OnModuleInstantiation(in.Module, in.Params, in.Name, in.Pins)
	}
	panic(fmt.Sprintf("gtech: unknown op %d", c.Op))
}
