// Copyright 2018 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package gtech

import (
	"fmt"
	"io"
	"strconv"

	"github.com/pkg/errors"
)

// Error is returned by Read when the input is malformed.  It holds the
// diagnostic which was reported for the failure.
type Error struct {
	Diag Diagnostic
	Err  error // underlying lexical error, if any
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("gtech: %s: %s", e.Diag, e.Err)
	}
	return "gtech: " + e.Diag.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Option configures Read.
type Option func(*parser)

// WithDiagnostics reports diagnostics to d.
func WithDiagnostics(d Diagnostics) Option {
	return func(p *parser) {
		p.diags = d
	}
}

// WithKnown makes names known in every module before parsing starts,
// in addition to the constants 0, 1, 1'b0, 1'b1, 1'h0 and 1'h1.
func WithKnown(names ...string) Option {
	return func(p *parser) {
		p.known = append(p.known, names...)
	}
}

// Constants are the signal names known in every module.
var Constants = []string{"0", "1", "1'b0", "1'b1", "1'h0", "1'h1"}

var errSyntax = errors.New("syntax error")

type port struct {
	name string
	r    Range
}

type module struct {
	name    string
	inputs  []port
	outputs []port
}

func (m *module) port(name string) (port, bool, bool) {
	for _, p := range m.inputs {
		if p.name == name {
			return p, true, true
		}
	}
	for _, p := range m.outputs {
		if p.name == name {
			return p, false, true
		}
	}
	return port{}, false, false
}

type parser struct {
	lx      *Lexer
	rd      Reader
	diags   Diagnostics
	known   []string
	modules map[string]*module
	mod     *module
	sched   *Sched
	insts   map[string]bool
	tok     Token
	lexErr  error
	rdErr   error
}

// Read reads the modules of a gtech netlist from r, making the
// callbacks of rd.
//
// If the input is malformed, Read reports one diagnostic for the
// failure and returns a *Error holding it.  Errors returned by rd are
// returned wrapped with the line of the statement.
func Read(r io.Reader, rd Reader, opts ...Option) error {
	p := &parser{
		lx:      NewLexer(r),
		rd:      rd,
		modules: make(map[string]*module)}
	p.known = append(p.known, Constants...)
	for _, opt := range opts {
		opt(p)
	}
	return p.parse()
}

func (p *parser) report(id DiagID, line int, args ...interface{}) Diagnostic {
	d := Diagnostic{ID: id, Line: line, Args: args}
	if p.diags != nil {
		p.diags.Report(d)
	}
	return d
}

func (p *parser) fail(id DiagID, args ...interface{}) error {
	d := p.report(id, p.tok.Line, args...)
	err := p.lexErr
	p.lexErr = nil
	return &Error{Diag: d, Err: err}
}

// next returns the next token which is not a comment, passing comments
// to the reader.  At the end of input and on lexical errors, next returns
// false.
func (p *parser) next() bool {
	for {
		tok, err := p.lx.Next()
		p.tok = tok
		if err != nil {
			p.lexErr = err
			return false
		}
		switch tok.Kind {
		case EOF:
			return false
		case Comment:
			p.report(NoteComment, tok.Line, tok.Text)
			if err := p.rd.OnComment(tok.Text); err != nil && p.rdErr == nil {
				p.rdErr = errors.Wrapf(err, "gtech: line %d", tok.Line)
			}
			continue
		}
		return true
	}
}

func (p *parser) unread() {
	p.lx.Unread()
}

func (p *parser) expect(text string) error {
	if !p.next() || !p.tok.Is(text) {
		return errSyntax
	}
	return nil
}

// accept consumes the next token if it is text.
func (p *parser) accept(text string) bool {
	if !p.next() {
		return false
	}
	if p.tok.Is(text) {
		return true
	}
	p.unread()
	return false
}

// readerErr wraps an error returned by the reader.
func (p *parser) readerErr(err error, line int) error {
	if err == nil {
		return nil
	}
	return errors.Wrapf(err, "gtech: line %d", line)
}

// statement runs f, turning syntax errors into one diagnostic with id.
func (p *parser) statement(f func() error, id DiagID, args ...interface{}) error {
	err := f()
	if err == nil {
		err = p.rdErr
	}
	if errors.Cause(err) == errSyntax {
		return p.fail(id, args...)
	}
	return err
}

func (p *parser) parse() error {
	n := 0
	for {
		if !p.next() {
			if p.lexErr != nil {
				return p.fail(ErrModuleHeader, p.tok.Text)
			}
			if p.rdErr != nil {
				return p.rdErr
			}
			if n == 0 {
				return p.fail(ErrModuleHeader, "")
			}
			return nil
		}
		if !p.tok.Is("module") {
			return p.fail(ErrModuleHeader, p.tok.Text)
		}
		if err := p.module(); err != nil {
			return err
		}
		n++
	}
}

func (p *parser) module() error {
	if err := p.statement(p.header, ErrModuleHeader, p.tok.Text); err != nil {
		return err
	}
	for {
		if !p.next() {
			if p.lexErr != nil {
				return p.fail(ErrModuleHeader, p.tok.Text)
			}
			return p.fail(ErrEndOfFile, p.mod.name)
		}
		if p.rdErr != nil {
			return p.rdErr
		}
		tok := p.tok
		op, isGate := keywords[tok.Text]
		var err error
		switch {
		case tok.Is("endmodule"):
			return p.endmodule()
		case tok.Is("input"):
			err = p.statement(func() error { return p.decl(&p.mod.inputs, p.rd.OnInputs, true) }, ErrInputDeclaration)
		case tok.Is("output"):
			err = p.statement(func() error { return p.decl(&p.mod.outputs, p.rd.OnOutputs, false) }, ErrOutputDeclaration)
		case tok.Is("wire"):
			err = p.statement(func() error { return p.decl(nil, p.rd.OnWires, false) }, ErrWireDeclaration)
		case tok.Is("parameter"):
			err = p.statement(p.parameter, ErrParameter)
		case tok.Is("assign"):
			err = p.statement(p.assign, ErrAssignment)
		case tok.Is("latch"):
			err = p.statement(p.latch, ErrLatch)
		case tok.Kind == Ident && isGate:
			err = p.statement(func() error { return p.gate(op) }, ErrGate, tok.Text)
		case tok.Kind == Ident:
			err = p.instance()
		default:
			err = p.fail(ErrStatement, tok.Text, p.mod.name)
		}
		if err != nil {
			return err
		}
	}
}

func (p *parser) header() error {
	if !p.next() || p.tok.Kind != Ident {
		return errSyntax
	}
	line := p.tok.Line
	p.mod = &module{name: p.tok.Text}
	p.insts = make(map[string]bool)
	if err := p.expect("("); err != nil {
		return err
	}
	var ports []string
	if !p.accept(")") {
		for {
			name, err := p.signal()
			if err != nil {
				return err
			}
			ports = append(ports, name)
			if p.accept(")") {
				break
			}
			if err := p.expect(","); err != nil {
				return err
			}
		}
	}
	if err := p.expect(";"); err != nil {
		return err
	}
	if err := p.readerErr(p.rd.OnModuleHeader(p.mod.name, ports), line); err != nil {
		return err
	}
	p.sched = NewSched(p.dispatch)
	for _, k := range p.known {
		if err := p.sched.DeclareKnown(k); err != nil {
			return err
		}
	}
	return nil
}

func (p *parser) dispatch(c *Call) error {
	return p.readerErr(c.Apply(p.rd), c.Line)
}

// signal reads a signal name, possibly with a bit index.
func (p *parser) signal() (string, error) {
	if !p.next() || (p.tok.Kind != Ident && p.tok.Kind != Number) {
		return "", errSyntax
	}
	name := p.tok.Text
	if !p.accept("[") {
		return name, nil
	}
	idx, err := p.number()
	if err != nil {
		return "", err
	}
	if err := p.expect("]"); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s[%d]", name, idx), nil
}

func (p *parser) number() (int, error) {
	if !p.next() || p.tok.Kind != Number {
		return 0, errSyntax
	}
	n, err := strconv.Atoi(p.tok.Text)
	if err != nil {
		return 0, errSyntax
	}
	return n, nil
}

// decl reads a declaration list with an optional range, records the
// ports in dst if dst is not nil, and makes the bits known if known is
// true.
func (p *parser) decl(dst *[]port, cb func([]string, Range) error, known bool) error {
	line := p.tok.Line
	var r Range
	if p.accept("[") {
		hi, err := p.number()
		if err != nil {
			return err
		}
		if err := p.expect(":"); err != nil {
			return err
		}
		lo, err := p.number()
		if err != nil {
			return err
		}
		if err := p.expect("]"); err != nil {
			return err
		}
		r = Range{Hi: hi, Lo: lo, Vec: true}
	}
	var names []string
	for {
		if !p.next() || p.tok.Kind != Ident {
			return errSyntax
		}
		names = append(names, p.tok.Text)
		if p.accept(";") {
			break
		}
		if err := p.expect(","); err != nil {
			return err
		}
	}
	if err := p.readerErr(cb(names, r), line); err != nil {
		return err
	}
	for _, n := range names {
		if dst != nil {
			*dst = append(*dst, port{name: n, r: r})
		}
		if !known {
			continue
		}
		for _, b := range r.Bits(n) {
			if err := p.sched.DeclareKnown(b); err != nil {
				return err
			}
		}
	}
	return nil
}

func (p *parser) parameter() error {
	line := p.tok.Line
	if !p.next() || p.tok.Kind != Ident {
		return errSyntax
	}
	name := p.tok.Text
	if err := p.expect("="); err != nil {
		return err
	}
	if !p.next() || (p.tok.Kind != Ident && p.tok.Kind != Number) {
		return errSyntax
	}
	value := p.tok.Text
	if err := p.expect(";"); err != nil {
		return err
	}
	return p.readerErr(p.rd.OnParameter(name, value), line)
}

// operand reads [~]signal.
func (p *parser) operand() (Operand, error) {
	neg := false
	for p.accept("~") || p.accept("!") {
		neg = !neg
	}
	name, err := p.signal()
	return Operand{Name: name, Neg: neg}, err
}

// connection reads [~]signal or .pin([~]signal), returning the pin name
// if there is one.
func (p *parser) connection() (string, Operand, error) {
	if !p.accept(".") {
		m, err := p.operand()
		return "", m, err
	}
	if !p.next() || p.tok.Kind != Ident {
		return "", Operand{}, errSyntax
	}
	pin := p.tok.Text
	if err := p.expect("("); err != nil {
		return "", Operand{}, err
	}
	if p.accept(")") {
		return pin, Operand{}, nil
	}
	m, err := p.operand()
	if err != nil {
		return "", Operand{}, err
	}
	return pin, m, p.expect(")")
}

// instName reads an optional instance name.
func (p *parser) instName() (string, error) {
	if !p.next() {
		return "", errSyntax
	}
	if p.tok.Kind == Ident {
		return p.tok.Text, nil
	}
	p.unread()
	return "", nil
}

// duplicate reports and returns whether inst was already seen in the
// current module.
func (p *parser) duplicate(inst string, line int) bool {
	if inst == "" {
		return false
	}
	if p.insts[inst] {
		p.report(WrnDuplicateInstance, line, inst)
		return true
	}
	p.insts[inst] = true
	return false
}

func (p *parser) gate(op Op) error {
	line := p.tok.Line
	inst, err := p.instName()
	if err != nil {
		return err
	}
	if err := p.expect("("); err != nil {
		return err
	}
	var ms []Operand
	for {
		_, m, err := p.connection()
		if err != nil {
			return err
		}
		ms = append(ms, m)
		if p.accept(")") {
			break
		}
		if err := p.expect(","); err != nil {
			return err
		}
	}
	if err := p.expect(";"); err != nil {
		return err
	}
	if len(ms) != op.Arity()+1 || ms[0].Neg {
		return errSyntax
	}
	for _, m := range ms {
		if m.Name == "" {
			return errSyntax
		}
	}
	if p.duplicate(inst, line) {
		return nil
	}
	c := &Call{Op: op, Out: ms[0].Name, Ins: ms[1:], Line: line}
	return p.sched.Defer(names(c.Ins), []string{c.Out}, c)
}

func names(ms []Operand) []string {
	res := make([]string, len(ms))
	for i, m := range ms {
		res[i] = m.Name
	}
	return res
}

// latch reads latch [#(init)] [inst] (q, d);
func (p *parser) latch() error {
	line := p.tok.Line
	init := Init0
	if p.accept("#") {
		if err := p.expect("("); err != nil {
			return err
		}
		if !p.next() {
			return errSyntax
		}
		switch v, ok := constValue(p.tok.Text); {
		case ok && v:
			init = Init1
		case ok:
			init = Init0
		case p.tok.Text == "x" || p.tok.Text == "1'bx" || p.tok.Text == "1'bX":
			init = InitX
		default:
			return errSyntax
		}
		if err := p.expect(")"); err != nil {
			return err
		}
	}
	inst, err := p.instName()
	if err != nil {
		return err
	}
	if err := p.expect("("); err != nil {
		return err
	}
	_, q, err := p.connection()
	if err != nil {
		return err
	}
	if err := p.expect(","); err != nil {
		return err
	}
	_, d, err := p.connection()
	if err != nil {
		return err
	}
	if err := p.expect(")"); err != nil {
		return err
	}
	if err := p.expect(";"); err != nil {
		return err
	}
	if q.Neg || q.Name == "" || d.Name == "" {
		return errSyntax
	}
	if p.duplicate(inst, line) {
		return nil
	}
	if err := p.readerErr(p.rd.OnLatchOutput(q.Name), line); err != nil {
		return err
	}
	if err := p.sched.DeclareKnown(q.Name); err != nil {
		return err
	}
	c := &Call{Op: OpLatch, Out: q.Name, Ins: []Operand{d}, Init: init, Line: line}
	return p.sched.Defer([]string{d.Name}, nil, c)
}

func (p *parser) assign() error {
	line := p.tok.Line
	lhs, err := p.signal()
	if err != nil {
		return err
	}
	if err := p.expect("="); err != nil {
		return err
	}
	var toks []Token
	for {
		if !p.next() {
			return errSyntax
		}
		if p.tok.Is(";") {
			break
		}
		toks = append(toks, p.tok)
	}
	e, err := parseExpr(toks)
	if err != nil {
		return p.fail(ErrAssignmentRHS, lhs)
	}
	op, ins, err := match(e)
	if err != nil {
		return p.fail(ErrAssignmentRHS, lhs)
	}
	c := &Call{Op: op, Out: lhs, Ins: ins, Line: line}
	return p.sched.Defer(names(ins), []string{lhs}, c)
}

// instance reads Module [#(params)] inst (.pin(sig), ...);
func (p *parser) instance() error {
	line := p.tok.Line
	name := p.tok.Text
	m := p.modules[name]
	if m == nil {
		return p.fail(ErrUndeclaredModule, name)
	}
	var (
		inst *Instance
		ins  []string
		outs []string
	)
	err := p.statement(func() error {
		var err error
		inst, ins, outs, err = p.instantiation(m)
		return err
	}, ErrInstantiation, name)
	if err != nil || inst == nil {
		return err
	}
	if p.duplicate(inst.Name, line) {
		return nil
	}
	c := &Call{Op: OpInstance, Inst: inst, Line: line}
	return p.sched.Defer(ins, outs, c)
}

func (p *parser) instantiation(m *module) (*Instance, []string, []string, error) {
	inst := &Instance{Module: m.name}
	if p.accept("#") {
		if err := p.expect("("); err != nil {
			return nil, nil, nil, err
		}
		for {
			if !p.next() || (p.tok.Kind != Ident && p.tok.Kind != Number) {
				return nil, nil, nil, errSyntax
			}
			inst.Params = append(inst.Params, p.tok.Text)
			if p.accept(")") {
				break
			}
			if err := p.expect(","); err != nil {
				return nil, nil, nil, err
			}
		}
	}
	if !p.next() || p.tok.Kind != Ident {
		return nil, nil, nil, errSyntax
	}
	inst.Name = p.tok.Text
	if err := p.expect("("); err != nil {
		return nil, nil, nil, err
	}
	var ins, outs []string
	for first := true; !p.accept(")"); first = false {
		if !first {
			if err := p.expect(","); err != nil {
				return nil, nil, nil, err
			}
		}
		pin, a, err := p.connection()
		if err != nil {
			return nil, nil, nil, err
		}
		if pin == "" || a.Neg {
			return nil, nil, nil, errSyntax
		}
		formal, isIn, ok := m.port(pin)
		if !ok {
			return nil, nil, nil, p.fail(ErrUndeclaredPin, pin, m.name)
		}
		if a.Name == "" {
			continue
		}
		fbits := formal.r.Bits(formal.name)
		abits := []string{a.Name}
		if formal.r.Vec {
			abits = formal.r.Bits(a.Name)
		}
		for i, f := range fbits {
			inst.Pins = append(inst.Pins, Pin{Formal: f, Actual: abits[i]})
		}
		if isIn {
			ins = append(ins, abits...)
		} else {
			outs = append(outs, abits...)
		}
	}
	if err := p.expect(";"); err != nil {
		return nil, nil, nil, err
	}
	return inst, ins, outs, nil
}

func (p *parser) endmodule() error {
	line := p.tok.Line
	deps := p.sched.Unresolved()
	if len(deps) > 0 {
		var first Diagnostic
		for i, d := range deps {
			diag := p.report(WrnUnresolvedDependency, d.Line, d.Producer, d.Missing)
			if i == 0 {
				first = diag
			}
		}
		return &Error{Diag: first}
	}
	if err := p.readerErr(p.rd.OnEndmodule(), line); err != nil {
		return err
	}
	p.modules[p.mod.name] = p.mod
	return nil
}
