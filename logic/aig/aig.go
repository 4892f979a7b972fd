// Copyright 2018 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package aig

import (
	"bufio"
	"fmt"
	"io"

	glogic "github.com/go-air/gini/logic"
	"github.com/go-air/gini/logic/aiger"
	gz "github.com/go-air/gini/z"
	"github.com/pkg/errors"

	"github.com/go-air/lnet/inter"
	"github.com/go-air/lnet/logic"
	"github.com/go-air/lnet/tt"
	"github.com/go-air/lnet/z"
)

// Lower creates a new aig with one input per primary input of ntk and
// returns it together with the literals of the primary outputs of ntk.
func Lower(ntk *logic.Network) (*glogic.S, []gz.Lit) {
	s, _, outs := lower(ntk)
	return s, outs
}

func lower(ntk *logic.Network) (*glogic.S, []gz.Lit, []gz.Lit) {
	s := glogic.NewSCap(ntk.Size() * 4)
	ins := make([]gz.Lit, ntk.NumPIs())
	for i := range ins {
		ins[i] = s.Lit()
	}
	return s, ins, LowerInto(&s.C, ntk, ins)
}

// LowerInto lowers ntk into c, using ins[i] as the literal of primary input
// i, and returns the literals of the primary outputs of ntk.  Several
// networks lowered into the same circuit over the same inputs form a
// miter.
func LowerInto(c *glogic.C, ntk *logic.Network, ins []gz.Lit) []gz.Lit {
	if len(ins) != ntk.NumPIs() {
		panic(fmt.Sprintf("aig: %d literals for %d inputs", len(ins), ntk.NumPIs()))
	}
	lits := make([]gz.Lit, ntk.Size())
	lits[0] = c.F
	ntk.ForeachPI(func(n z.Node, i int) bool {
		lits[n] = ins[i]
		return true
	})
	lit := func(m z.Sig) gz.Lit {
		x := lits[m.Node()]
		if m.Compl() {
			return x.Not()
		}
		return x
	}
	var buf [logic.MaxFanin]gz.Lit
	ntk.ForeachGate(func(n z.Node, _ int) bool {
		cs := buf[:ntk.FaninSize(n)]
		ntk.ForeachFanin(n, func(m z.Sig, j int) bool {
			cs[j] = lit(m)
			return true
		})
		lits[n] = lowerGate(c, ntk.Kind(n), ntk.NodeFunction(n), cs)
		return true
	})
	outs := make([]gz.Lit, 0, ntk.NumPOs())
	ntk.ForeachPO(func(m z.Sig, _ int) bool {
		outs = append(outs, lit(m))
		return true
	})
	return outs
}

func lowerGate(c *glogic.C, g logic.Gate, t tt.T, cs []gz.Lit) gz.Lit {
	switch g {
	case logic.Buf:
		return cs[0]
	case logic.Not:
		return cs[0].Not()
	case logic.And:
		return c.And(cs[0], cs[1])
	case logic.Nand:
		return c.And(cs[0], cs[1]).Not()
	case logic.Or:
		return c.Or(cs[0], cs[1])
	case logic.Nor:
		return c.Or(cs[0], cs[1]).Not()
	case logic.Xor:
		return c.Xor(cs[0], cs[1])
	case logic.Xnor:
		return c.Xor(cs[0], cs[1]).Not()
	case logic.Ite:
		return c.Choice(cs[0], cs[1], cs[2])
	case logic.Nite:
		return c.Choice(cs[0], cs[1], cs[2]).Not()
	case logic.Maj:
		return c.Ors(c.And(cs[0], cs[1]), c.And(cs[0], cs[2]), c.And(cs[1], cs[2]))
	case logic.And3:
		return c.Ands(cs...)
	case logic.Or3:
		return c.Ors(cs...)
	case logic.Xor3:
		return c.Xor(c.Xor(cs[0], cs[1]), cs[2])
	}
	return lowerTable(c, t, cs)
}

// lowerTable lowers t as the sum of its minterms, or the complement of
// the sum of its off-set minterms when that is smaller.
func lowerTable(c *glogic.C, t tt.T, cs []gz.Lit) gz.Lit {
	neg := false
	if 2*t.Count() > t.Bits() {
		t = t.Not()
		neg = true
	}
	terms := make([]gz.Lit, 0, t.Count())
	lits := make([]gz.Lit, len(cs))
	for m := 0; m < t.Bits(); m++ {
		if !t.Bit(m) {
			continue
		}
		for j, x := range cs {
			if (m>>uint(j))&1 == 1 {
				lits[j] = x
			} else {
				lits[j] = x.Not()
			}
		}
		terms = append(terms, c.Ands(lits...))
	}
	r := c.Ors(terms...)
	if neg {
		return r.Not()
	}
	return r
}

// WriteAiger writes the combinational aig of ntk to w in aiger format,
// binary if binary is true and ascii otherwise.  The aiger inputs and
// outputs are the primary inputs and outputs of ntk, in order.  Only
// the and gates reachable from the outputs are written.
func WriteAiger(w io.Writer, ntk *logic.Network, binary bool) error {
	e := newEncoder(lower(ntk))
	bw := bufio.NewWriter(w)
	if binary {
		e.writeBinary(bw)
	} else {
		e.writeAscii(bw)
	}
	return errors.Wrap(bw.Flush(), "aig: write")
}

// ReadAiger reads an aiger file from r and constructs it in b.
//
// Inputs and outputs of the file become primary inputs and outputs of b
// in order.  Latches are created with b's CreateRO and CreateRI if b
// implements inter.Sequential.  Otherwise every latch is cut: its output
// becomes a primary input following the real ones, and its next state a
// primary output following the real ones.
func ReadAiger(r io.Reader, binary bool, b inter.Builder) error {
	var (
		a   *aiger.T
		err error
	)
	if binary {
		a, err = aiger.ReadBinary(r)
	} else {
		a, err = aiger.ReadAscii(r)
	}
	if err != nil {
		return errors.Wrap(err, "aig: read")
	}
	raise(a, b)
	return nil
}

func raise(a *aiger.T, b inter.Builder) {
	sigs := make([]z.Sig, a.Len())
	sigs[a.S.T.Var()] = b.Constant(a.S.T.IsPos())
	sig := func(m gz.Lit) z.Sig {
		return sigs[m.Var()].Xor(!m.IsPos())
	}
	for _, m := range a.Inputs {
		sigs[m.Var()] = b.CreatePI()
	}
	sq, isSeq := b.(inter.Sequential)
	for _, m := range a.Latches {
		if isSeq {
			sigs[m.Var()] = sq.CreateRO(a.Init(m) == a.S.T)
			continue
		}
		sigs[m.Var()] = b.CreatePI()
	}
	for i := 2; i < a.Len(); i++ {
		m := a.At(i)
		if a.Type(m) != glogic.SAnd {
			continue
		}
		c0, c1 := a.Ins(m)
		sigs[m.Var()] = b.And(sig(c0), sig(c1))
	}
	for _, m := range a.Outputs {
		b.CreatePO(sig(m))
	}
	for _, m := range a.Latches {
		if isSeq {
			sq.CreateRI(sigs[m.Var()], sig(a.Next(m)))
			continue
		}
		b.CreatePO(sig(a.Next(m)))
	}
}
