// Copyright 2018 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package gtech

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var errRHS = errors.New("unsupported right hand side")

// expr is the syntax tree of the right hand side of an assignment.
// Leaves have op 0.  Operators are '&', '|', '^' and '?' for the
// conditional, whose args are the condition, then and else branches.
type expr struct {
	op   byte
	neg  bool
	name string
	args []*expr
}

type exprParser struct {
	toks []Token
	i    int
}

// parseExpr parses toks as a verilog expression over the operators
// ~ ! & ^ | ?: and parentheses, with the usual precedence.
func parseExpr(toks []Token) (*expr, error) {
	p := &exprParser{toks: toks}
	e, err := p.cond()
	if err != nil {
		return nil, err
	}
	if p.i != len(toks) {
		return nil, errRHS
	}
	return flatten(e), nil
}

func (p *exprParser) peek() string {
	if p.i >= len(p.toks) {
		return ""
	}
	t := p.toks[p.i]
	if t.Kind != Punct {
		return ""
	}
	return t.Text
}

func (p *exprParser) cond() (*expr, error) {
	c, err := p.binary(0)
	if err != nil {
		return nil, err
	}
	if p.peek() != "?" {
		return c, nil
	}
	p.i++
	t, err := p.cond()
	if err != nil {
		return nil, err
	}
	if p.peek() != ":" {
		return nil, errRHS
	}
	p.i++
	e, err := p.cond()
	if err != nil {
		return nil, err
	}
	return &expr{op: '?', args: []*expr{c, t, e}}, nil
}

// binary operators from weakest to strongest
var binops = []byte{'|', '^', '&'}

func (p *exprParser) binary(level int) (*expr, error) {
	if level == len(binops) {
		return p.unary()
	}
	op := binops[level]
	x, err := p.binary(level + 1)
	if err != nil {
		return nil, err
	}
	for p.peek() == string(op) {
		p.i++
		y, err := p.binary(level + 1)
		if err != nil {
			return nil, err
		}
		x = &expr{op: op, args: []*expr{x, y}}
	}
	return x, nil
}

func (p *exprParser) unary() (*expr, error) {
	if p.i >= len(p.toks) {
		return nil, errRHS
	}
	t := p.toks[p.i]
	p.i++
	switch {
	case t.Is("~") || t.Is("!"):
		e, err := p.unary()
		if err != nil {
			return nil, err
		}
		e.neg = !e.neg
		return e, nil
	case t.Is("("):
		e, err := p.cond()
		if err != nil {
			return nil, err
		}
		if p.peek() != ")" {
			return nil, errRHS
		}
		p.i++
		return e, nil
	case t.Kind == Ident || t.Kind == Number:
		name := t.Text
		if p.peek() == "[" && p.i+2 < len(p.toks) && p.toks[p.i+1].Kind == Number && p.toks[p.i+2].Is("]") {
			name += "[" + p.toks[p.i+1].Text + "]"
			p.i += 3
		}
		return &expr{name: name}, nil
	}
	return nil, errRHS
}

// flatten merges chains of the same associative operator, so that
// a & (b & c) has 3 args.
func flatten(e *expr) *expr {
	if e.op == 0 {
		return e
	}
	args := make([]*expr, 0, len(e.args))
	for _, a := range e.args {
		a = flatten(a)
		if e.op != '?' && a.op == e.op && !a.neg {
			args = append(args, a.args...)
			continue
		}
		args = append(args, a)
	}
	e.args = args
	return e
}

func (e *expr) leaf() bool {
	return e.op == 0
}

func (e *expr) operand() Operand {
	return Operand{Name: e.name, Neg: e.neg}
}

func leaves(es []*expr) ([]Operand, bool) {
	res := make([]Operand, len(es))
	for i, e := range es {
		if !e.leaf() {
			return nil, false
		}
		res[i] = e.operand()
	}
	return res, true
}

// constValue returns the value of a 1 bit constant such as 0, 1'b1 or
// 1'h0.
func constValue(s string) (v, ok bool) {
	switch s {
	case "0":
		return false, true
	case "1":
		return true, true
	}
	i := strings.IndexByte(s, '\'')
	if i < 0 || i+2 > len(s) {
		return false, false
	}
	digits := strings.ReplaceAll(s[i+2:], "_", "")
	base := 10
	switch s[i+1] {
	case 'b', 'B':
		base = 2
	case 'o', 'O':
		base = 8
	case 'h', 'H':
		base = 16
	}
	n, err := strconv.ParseUint(digits, base, 64)
	if err != nil || n > 1 {
		return false, false
	}
	return n == 1, true
}

var (
	ops2 = map[byte][2]Op{'&': {OpAnd, OpNand}, '|': {OpOr, OpNor}, '^': {OpXor, OpXnor}}
	ops3 = map[byte][2]Op{'&': {OpAnd3, OpNand3}, '|': {OpOr3, OpNor3}, '^': {OpXor3, OpXor3}}
)

// match maps e to a single statement, or returns errRHS.
func match(e *expr) (Op, []Operand, error) {
	pol := 0
	if e.neg {
		pol = 1
	}
	if e.leaf() {
		if v, ok := constValue(e.name); ok {
			if v != e.neg {
				return OpOne, nil, nil
			}
			return OpZero, nil, nil
		}
		return OpAssign, []Operand{e.operand()}, nil
	}
	if e.op == '|' && len(e.args) == 3 {
		if ins, ok := majority(e.args); ok {
			if e.neg {
				// majority is self dual
				for i := range ins {
					ins[i].Neg = !ins[i].Neg
				}
			}
			return OpMaj, ins, nil
		}
	}
	ins, ok := leaves(e.args)
	if !ok {
		return 0, nil, errRHS
	}
	switch {
	case e.op == '?':
		return [2]Op{OpIte, OpNmux}[pol], ins, nil
	case len(ins) == 2:
		return ops2[e.op][pol], ins, nil
	case len(ins) == 3:
		if e.op == '^' && e.neg {
			ins[0].Neg = !ins[0].Neg
		}
		return ops3[e.op][pol], ins, nil
	}
	return 0, nil, errRHS
}

// majority matches x&y | x&z | y&z in any order.
func majority(args []*expr) ([]Operand, bool) {
	var pairs [3][]Operand
	for i, a := range args {
		if a.op != '&' || a.neg || len(a.args) != 2 {
			return nil, false
		}
		ins, ok := leaves(a.args)
		if !ok {
			return nil, false
		}
		pairs[i] = ins
	}
	var vs []Operand
	for _, p := range pairs {
		for _, o := range p {
			found := false
			for _, v := range vs {
				if v == o {
					found = true
					break
				}
			}
			if !found {
				vs = append(vs, o)
			}
		}
	}
	if len(vs) != 3 {
		return nil, false
	}
	for i := 0; i < 3; i++ {
		for j := i + 1; j < 3; j++ {
			if !hasPair(pairs[:], vs[i], vs[j]) {
				return nil, false
			}
		}
	}
	return vs, true
}

func hasPair(pairs [][]Operand, a, b Operand) bool {
	for _, p := range pairs {
		if (p[0] == a && p[1] == b) || (p[0] == b && p[1] == a) {
			return true
		}
	}
	return false
}
