// Copyright 2018 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package aig

import (
	"bufio"
	"fmt"

	glogic "github.com/go-air/gini/logic"
	gz "github.com/go-air/gini/z"
)

// encoder numbers the cone of the outputs of an aig the way aiger
// requires: inputs first, then and gates in topological order, each
// defined on a positive variable.
type encoder struct {
	s    *glogic.S
	ins  []gz.Lit
	outs []gz.Lit
	ids  []uint32 // aiger variable by gini variable
	ands []gz.Lit
}

func newEncoder(s *glogic.S, ins, outs []gz.Lit) *encoder {
	e := &encoder{s: s, ins: ins, outs: outs, ids: make([]uint32, s.Len())}
	cone := make([]bool, s.Len())
	stack := make([]gz.Var, 0, 64)
	for _, m := range outs {
		stack = append(stack, m.Var())
	}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if cone[v] {
			continue
		}
		cone[v] = true
		if s.Type(v.Pos()) != glogic.SAnd {
			continue
		}
		c0, c1 := s.Ins(v.Pos())
		stack = append(stack, c0.Var(), c1.Var())
	}
	id := uint32(1)
	for _, m := range ins {
		e.ids[m.Var()] = id
		id++
	}
	for i := 2; i < s.Len(); i++ {
		m := s.At(i)
		if !cone[m.Var()] || s.Type(m) != glogic.SAnd {
			continue
		}
		e.ids[m.Var()] = id
		id++
		e.ands = append(e.ands, m)
	}
	return e
}

func (e *encoder) lit(m gz.Lit) uint32 {
	switch m {
	case e.s.F:
		return 0
	case e.s.T:
		return 1
	}
	r := 2 * e.ids[m.Var()]
	if !m.IsPos() {
		r |= 1
	}
	return r
}

// and returns the aiger literals of m and its children, the larger
// child first.
func (e *encoder) and(m gz.Lit) (lhs, r0, r1 uint32) {
	c0, c1 := e.s.Ins(m)
	r0, r1 = e.lit(c0), e.lit(c1)
	if r0 < r1 {
		r0, r1 = r1, r0
	}
	return e.lit(m), r0, r1
}

func (e *encoder) header(w *bufio.Writer, format string) {
	fmt.Fprintf(w, "%s %d %d 0 %d %d\n", format, len(e.ins)+len(e.ands), len(e.ins), len(e.outs), len(e.ands))
}

func (e *encoder) writeAscii(w *bufio.Writer) {
	e.header(w, "aag")
	for _, m := range e.ins {
		fmt.Fprintf(w, "%d\n", e.lit(m))
	}
	for _, m := range e.outs {
		fmt.Fprintf(w, "%d\n", e.lit(m))
	}
	for _, m := range e.ands {
		lhs, r0, r1 := e.and(m)
		fmt.Fprintf(w, "%d %d %d\n", lhs, r0, r1)
	}
}

func (e *encoder) writeBinary(w *bufio.Writer) {
	e.header(w, "aig")
	for _, m := range e.outs {
		fmt.Fprintf(w, "%d\n", e.lit(m))
	}
	for _, m := range e.ands {
		lhs, r0, r1 := e.and(m)
		write7(w, lhs-r0)
		write7(w, r0-r1)
	}
}

// write7 writes x in the variable length code of binary aiger, 7 bits per
// byte with the high bit set on all but the last byte.
func write7(w *bufio.Writer, x uint32) {
	for x&^0x7f != 0 {
		w.WriteByte(byte(x&0x7f | 0x80))
		x >>= 7
	}
	w.WriteByte(byte(x))
}
