// Copyright 2018 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package gtech

import (
	"github.com/pkg/errors"

	"github.com/go-air/lnet/inter"
	"github.com/go-air/lnet/z"
)

// Errors returned by Builder.Finish.
var (
	ErrNoModule        = errors.New("no module")
	ErrUndefinedSignal = errors.New("undefined signal")
	ErrUndrivenOutput  = errors.New("undriven output")
)

// Port is a named port of a module and its width in bits.
type Port struct {
	Name  string
	Width int
}

// PortInfo describes the interface of the module realized by a Builder.
// Inputs and outputs are listed in declaration order; the primary inputs
// and outputs of the target follow this order bit by bit, lowest index
// first.
type PortInfo struct {
	Module  string
	Inputs  []Port
	Outputs []Port

	// Externals lists the external signals used by the module.  They
	// are primary inputs following the input bits, in Extern order.
	Externals []string

	// Latches lists the latch outputs, with the instance path as
	// prefix for latches of instantiated modules.  Unless the target
	// is inter.Sequential, latch i is cut into the primary input
	// following the inputs and externals at offset i and the primary
	// output following the real ones at offset i.
	Latches []string
}

// InputBits returns the total width of the inputs.
func (p *PortInfo) InputBits() int {
	return width(p.Inputs)
}

// OutputBits returns the total width of the outputs.
func (p *PortInfo) OutputBits() int {
	return width(p.Outputs)
}

func width(ps []Port) int {
	n := 0
	for _, p := range ps {
		n += p.Width
	}
	return n
}

type step struct {
	*Call
	ro bool // creation of the output of latch Out
}

type macro struct {
	name    string
	ports   []string
	inputs  []port
	outputs []port
	params  map[string]string
	steps   []step
	ros     map[string]int // latch output -> step
}

// Builder is a Reader which records every module it reads and realizes
// one of them in an inter.Builder with Finish.
//
// Recorded modules are replayed in dispatch order, so every operand is
// available when a gate is constructed.  Instances are inlined.
type Builder struct {
	target inter.Builder
	top    string
	diags  Diagnostics
	macros map[string]*macro
	order  []string
	cur    *macro
	ext    []string
	extSig env
}

// NewBuilder creates a builder for target.  Finish realizes the module
// named top, or the last module read if top is empty.  Diagnostics
// arising in Finish are reported to d, which may be nil.
func NewBuilder(target inter.Builder, top string, d Diagnostics) *Builder {
	return &Builder{
		target: target,
		top:    top,
		diags:  d,
		macros: make(map[string]*macro)}
}

// Extern declares signals which no module defines, such as clocks made
// known to the parser with WithKnown.  Finish binds each of them to a
// primary input shared by all modules, unless the top module declares an
// input of the same name.
func (b *Builder) Extern(names ...string) {
	b.ext = append(b.ext, names...)
}

// Modules returns the names of the modules read so far, in order.
func (b *Builder) Modules() []string {
	return append([]string(nil), b.order...)
}

func (b *Builder) report(id DiagID, args ...interface{}) {
	if b.diags != nil {
		b.diags.Report(Diagnostic{ID: id, Args: args})
	}
}

func (b *Builder) record(c *Call) error {
	b.cur.steps = append(b.cur.steps, step{Call: c})
	return nil
}

func (b *Builder) OnModuleHeader(name string, ports []string) error {
	b.cur = &macro{
		name:   name,
		ports:  ports,
		params: make(map[string]string),
		ros:    make(map[string]int)}
	return nil
}

func (b *Builder) OnInputs(names []string, r Range) error {
	for _, n := range names {
		b.cur.inputs = append(b.cur.inputs, port{name: n, r: r})
	}
	return nil
}

func (b *Builder) OnOutputs(names []string, r Range) error {
	for _, n := range names {
		b.cur.outputs = append(b.cur.outputs, port{name: n, r: r})
	}
	return nil
}

func (b *Builder) OnWires(names []string, r Range) error {
	return nil
}

func (b *Builder) OnParameter(name, value string) error {
	b.cur.params[name] = value
	return nil
}

func (b *Builder) OnEndmodule() error {
	if _, ok := b.macros[b.cur.name]; !ok {
		b.order = append(b.order, b.cur.name)
	}
	b.macros[b.cur.name] = b.cur
	b.cur = nil
	return nil
}

func (b *Builder) OnLatchOutput(q string) error {
	b.cur.ros[q] = len(b.cur.steps)
	b.cur.steps = append(b.cur.steps, step{Call: &Call{Op: OpLatch, Out: q}, ro: true})
	return nil
}

func (b *Builder) OnLatch(q string, d Operand, init LatchInit) error {
	if i, ok := b.cur.ros[q]; ok {
		b.cur.steps[i].Init = init
	}
	return b.record(&Call{Op: OpLatch, Out: q, Ins: []Operand{d}, Init: init})
}

func (b *Builder) OnLatchInput(d string) error {
	return nil
}

func (b *Builder) OnAssign(lhs string, rhs Operand) error {
	return b.record(&Call{Op: OpAssign, Out: lhs, Ins: []Operand{rhs}})
}

func (b *Builder) OnZero(lhs string) error {
	return b.record(&Call{Op: OpZero, Out: lhs})
}

func (b *Builder) OnOne(lhs string) error {
	return b.record(&Call{Op: OpOne, Out: lhs})
}

func (b *Builder) gate1(op Op, lhs string, a Operand) error {
	return b.record(&Call{Op: op, Out: lhs, Ins: []Operand{a}})
}

func (b *Builder) gate2(op Op, lhs string, x, y Operand) error {
	return b.record(&Call{Op: op, Out: lhs, Ins: []Operand{x, y}})
}

func (b *Builder) gate3(op Op, lhs string, x, y, w Operand) error {
	return b.record(&Call{Op: op, Out: lhs, Ins: []Operand{x, y, w}})
}

func (b *Builder) OnBuf(lhs string, a Operand) error         { return b.gate1(OpBuf, lhs, a) }
func (b *Builder) OnNot(lhs string, a Operand) error         { return b.gate1(OpNot, lhs, a) }
func (b *Builder) OnAnd(lhs string, x, y Operand) error      { return b.gate2(OpAnd, lhs, x, y) }
func (b *Builder) OnNand(lhs string, x, y Operand) error     { return b.gate2(OpNand, lhs, x, y) }
func (b *Builder) OnOr(lhs string, x, y Operand) error       { return b.gate2(OpOr, lhs, x, y) }
func (b *Builder) OnNor(lhs string, x, y Operand) error      { return b.gate2(OpNor, lhs, x, y) }
func (b *Builder) OnXor(lhs string, x, y Operand) error      { return b.gate2(OpXor, lhs, x, y) }
func (b *Builder) OnXnor(lhs string, x, y Operand) error     { return b.gate2(OpXnor, lhs, x, y) }
func (b *Builder) OnLt(lhs string, x, y Operand) error       { return b.gate2(OpLt, lhs, x, y) }
func (b *Builder) OnLe(lhs string, x, y Operand) error       { return b.gate2(OpLe, lhs, x, y) }
func (b *Builder) OnAnd3(lhs string, x, y, w Operand) error  { return b.gate3(OpAnd3, lhs, x, y, w) }
func (b *Builder) OnOr3(lhs string, x, y, w Operand) error   { return b.gate3(OpOr3, lhs, x, y, w) }
func (b *Builder) OnXor3(lhs string, x, y, w Operand) error  { return b.gate3(OpXor3, lhs, x, y, w) }
func (b *Builder) OnMaj(lhs string, x, y, w Operand) error   { return b.gate3(OpMaj, lhs, x, y, w) }
func (b *Builder) OnIte(lhs string, x, y, w Operand) error   { return b.gate3(OpIte, lhs, x, y, w) }
func (b *Builder) OnNmux(lhs string, x, y, w Operand) error  { return b.gate3(OpNmux, lhs, x, y, w) }
func (b *Builder) OnNand3(lhs string, x, y, w Operand) error { return b.gate3(OpNand3, lhs, x, y, w) }
func (b *Builder) OnNor3(lhs string, x, y, w Operand) error  { return b.gate3(OpNor3, lhs, x, y, w) }
func (b *Builder) OnAoi21(lhs string, x, y, w Operand) error { return b.gate3(OpAoi21, lhs, x, y, w) }
func (b *Builder) OnOai21(lhs string, x, y, w Operand) error { return b.gate3(OpOai21, lhs, x, y, w) }
func (b *Builder) OnAxi21(lhs string, x, y, w Operand) error { return b.gate3(OpAxi21, lhs, x, y, w) }
func (b *Builder) OnXai21(lhs string, x, y, w Operand) error { return b.gate3(OpXai21, lhs, x, y, w) }
func (b *Builder) OnOxi21(lhs string, x, y, w Operand) error { return b.gate3(OpOxi21, lhs, x, y, w) }
func (b *Builder) OnXoi21(lhs string, x, y, w Operand) error { return b.gate3(OpXoi21, lhs, x, y, w) }

func (b *Builder) OnModuleInstantiation(module string, params []string, inst string, pins []Pin) error {
	return b.record(&Call{Op: OpInstance, Inst: &Instance{Module: module, Params: params, Name: inst, Pins: pins}})
}

func (b *Builder) OnComment(text string) error {
	return nil
}

// reg is a latch being realized.
type reg struct {
	name string
	ro   z.Sig
	next z.Sig
	set  bool
}

type env map[string]z.Sig

func (b *Builder) constants() env {
	e := make(env, 64)
	for _, c := range Constants {
		v, _ := constValue(c)
		e[c] = b.target.Constant(v)
	}
	for n, s := range b.extSig {
		e[n] = s
	}
	return e
}

// Finish realizes the top module in the target and returns its ports.
//
// Primary inputs are created for the input bits, followed by the
// externals and then the cut latch outputs.  Primary outputs are created for the output bits,
// followed by the cut latch inputs.  Finish fails if an output is not
// driven or an operand has no signal.
func (b *Builder) Finish() (PortInfo, error) {
	m, err := b.topMacro()
	if err != nil {
		return PortInfo{}, err
	}
	info := PortInfo{Module: m.name}
	b.extSig = nil
	e := b.constants()
	for _, p := range m.inputs {
		for _, bit := range p.r.Bits(p.name) {
			e[bit] = b.target.CreatePI()
		}
		info.Inputs = append(info.Inputs, Port{Name: p.name, Width: p.r.Width()})
	}
	b.extSig = make(env, len(b.ext))
	for _, n := range b.ext {
		if _, ok := e[n]; ok {
			continue
		}
		s := b.target.CreatePI()
		e[n] = s
		b.extSig[n] = s
		info.Externals = append(info.Externals, n)
	}
	var regs []reg
	if err := b.replay(m, e, "", &regs); err != nil {
		return info, err
	}
	var outs []z.Sig
	undriven := 0
	for _, p := range m.outputs {
		for _, bit := range p.r.Bits(p.name) {
			s, ok := e[bit]
			if !ok {
				b.report(WrnUndrivenOutput, bit, m.name)
				undriven++
				continue
			}
			outs = append(outs, s)
		}
		info.Outputs = append(info.Outputs, Port{Name: p.name, Width: p.r.Width()})
	}
	if undriven > 0 {
		return info, errors.Wrapf(ErrUndrivenOutput, "gtech: module %s: %d outputs", m.name, undriven)
	}
	for _, s := range outs {
		b.target.CreatePO(s)
	}
	seq, isSeq := b.target.(inter.Sequential)
	for _, r := range regs {
		if !r.set {
			return info, errors.Wrapf(ErrUndefinedSignal, "gtech: input of latch %s", r.name)
		}
		info.Latches = append(info.Latches, r.name)
		if isSeq {
			seq.CreateRI(r.ro, r.next)
			continue
		}
		b.target.CreatePO(r.next)
	}
	return info, nil
}

func (b *Builder) topMacro() (*macro, error) {
	if len(b.order) == 0 {
		return nil, errors.Wrap(ErrNoModule, "gtech")
	}
	last := b.macros[b.order[len(b.order)-1]]
	if b.top == "" {
		return last, nil
	}
	if m, ok := b.macros[b.top]; ok {
		return m, nil
	}
	b.report(WrnTopMismatch, b.top, last.name)
	return last, nil
}

func (b *Builder) sig(e env, m Operand, path string) (z.Sig, error) {
	s, ok := e[m.Name]
	if !ok {
		return 0, errors.Wrapf(ErrUndefinedSignal, "gtech: %s%s", path, m.Name)
	}
	return s.Xor(m.Neg), nil
}

// replay realizes the steps of m with signals e.  Latches are appended
// to regs, named with path as prefix.
func (b *Builder) replay(m *macro, e env, path string, regs *[]reg) error {
	seq, isSeq := b.target.(inter.Sequential)
	ros := make(map[string]int)
	var ms [3]z.Sig
	for _, st := range m.steps {
		switch {
		case st.ro:
			var s z.Sig
			if isSeq {
				s = seq.CreateRO(st.Init == Init1)
			} else {
				s = b.target.CreatePI()
			}
			e[st.Out] = s
			ros[st.Out] = len(*regs)
			*regs = append(*regs, reg{name: path + st.Out, ro: s})
			continue
		case st.Op == OpInstance:
			if err := b.inline(st.Inst, e, path, regs); err != nil {
				return err
			}
			continue
		}
		args := ms[:len(st.Ins)]
		for i, o := range st.Ins {
			s, err := b.sig(e, o, path)
			if err != nil {
				return err
			}
			args[i] = s
		}
		if st.Op == OpLatch {
			r := &(*regs)[ros[st.Out]]
			r.next = args[0]
			r.set = true
			continue
		}
		e[st.Out] = b.gate(st.Op, args)
	}
	return nil
}

func (b *Builder) inline(in *Instance, e env, path string, regs *[]reg) error {
	sub, ok := b.macros[in.Module]
	if !ok {
		return errors.Wrapf(ErrNoModule, "gtech: %s%s: %s", path, in.Name, in.Module)
	}
	actual := make(map[string]string, len(in.Pins))
	for _, p := range in.Pins {
		actual[p.Formal] = p.Actual
	}
	se := b.constants()
	for _, p := range sub.inputs {
		for _, bit := range p.r.Bits(p.name) {
			a, ok := actual[bit]
			if !ok {
				return errors.Wrapf(ErrUndefinedSignal, "gtech: %s%s: input %s is not connected", path, in.Name, bit)
			}
			s, err := b.sig(e, Operand{Name: a}, path)
			if err != nil {
				return err
			}
			se[bit] = s
		}
	}
	if err := b.replay(sub, se, path+in.Name+".", regs); err != nil {
		return err
	}
	for _, p := range sub.outputs {
		for _, bit := range p.r.Bits(p.name) {
			a, ok := actual[bit]
			if !ok {
				continue
			}
			s, ok := se[bit]
			if !ok {
				return errors.Wrapf(ErrUndrivenOutput, "gtech: %s%s: %s", path, in.Name, bit)
			}
			e[a] = s
		}
	}
	return nil
}

func (b *Builder) gate(op Op, ms []z.Sig) z.Sig {
	t := b.target
	switch op {
	case OpZero:
		return t.Constant(false)
	case OpOne:
		return t.Constant(true)
	case OpAssign, OpBuf:
		return t.Buf(ms[0])
	case OpNot:
		return t.Not(ms[0])
	case OpAnd:
		return t.And(ms[0], ms[1])
	case OpNand:
		return t.Nand(ms[0], ms[1])
	case OpOr:
		return t.Or(ms[0], ms[1])
	case OpNor:
		return t.Nor(ms[0], ms[1])
	case OpXor:
		return t.Xor(ms[0], ms[1])
	case OpXnor:
		return t.Xnor(ms[0], ms[1])
	case OpLt:
		return t.Lt(ms[0], ms[1])
	case OpLe:
		return t.Le(ms[0], ms[1])
	case OpAnd3:
		return t.And3(ms[0], ms[1], ms[2])
	case OpOr3:
		return t.Or3(ms[0], ms[1], ms[2])
	case OpXor3:
		return t.Xor3(ms[0], ms[1], ms[2])
	case OpMaj:
		return t.Maj(ms[0], ms[1], ms[2])
	case OpIte:
		return t.Ite(ms[0], ms[1], ms[2])
	case OpNmux:
		return t.Nmux21(ms[0], ms[1], ms[2])
	case OpNand3:
		return t.Nand3(ms[0], ms[1], ms[2])
	case OpNor3:
		return t.Nor3(ms[0], ms[1], ms[2])
	case OpAoi21:
		return t.Aoi21(ms[0], ms[1], ms[2])
	case OpOai21:
		return t.Oai21(ms[0], ms[1], ms[2])
	case OpAxi21:
		return t.Axi21(ms[0], ms[1], ms[2])
	case OpXai21:
		return t.Xai21(ms[0], ms[1], ms[2])
	case OpOxi21:
		return t.Oxi21(ms[0], ms[1], ms[2])
	case OpXoi21:
		return t.Xoi21(ms[0], ms[1], ms[2])
	}
	panic("gtech: cannot build " + op.String())
}
