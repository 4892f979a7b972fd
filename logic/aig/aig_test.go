// Copyright 2018 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package aig_test

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"

	"github.com/go-air/gini"
	glogic "github.com/go-air/gini/logic"
	gz "github.com/go-air/gini/z"

	"github.com/go-air/lnet/logic"
	"github.com/go-air/lnet/logic/aig"
	"github.com/go-air/lnet/tt"
	"github.com/go-air/lnet/z"
)

// build constructs the same random circuit in every network of ntks.
func build(seed int64, nIn, nGates, nOut int, ntks ...*logic.Network) {
	for _, ntk := range ntks {
		rnd := rand.New(rand.NewSource(seed))
		ms := []z.Sig{z.Const0}
		for i := 0; i < nIn; i++ {
			ms = append(ms, ntk.CreatePI())
		}
		pick := func() z.Sig {
			return ms[rnd.Intn(len(ms))].Xor(rnd.Intn(2) == 1)
		}
		for i := 0; i < nGates; i++ {
			g := logic.Buf + logic.Gate(rnd.Intn(int(logic.Other-logic.Buf)))
			args := make([]z.Sig, g.Arity())
			for j := range args {
				args[j] = pick()
			}
			ms = append(ms, ntk.CreateGate(g, args...))
		}
		for i := 0; i < nOut; i++ {
			ntk.CreatePO(ms[len(ms)-1-i])
		}
	}
}

// equiv reports whether the outputs of a and b are pairwise equivalent.
func equiv(t *testing.T, a, b *logic.Network) bool {
	t.Helper()
	c := glogic.NewC()
	ins := make([]gz.Lit, a.NumPIs())
	for i := range ins {
		ins[i] = c.Lit()
	}
	oa := aig.LowerInto(c, a, ins)
	ob := aig.LowerInto(c, b, ins)
	if len(oa) != len(ob) {
		t.Fatalf("outputs %d != %d", len(oa), len(ob))
	}
	diffs := make([]gz.Lit, len(oa))
	for i := range oa {
		diffs[i] = c.Xor(oa[i], ob[i])
	}
	miter := c.Ors(diffs...)
	g := gini.New()
	c.ToCnfFrom(g, miter)
	g.Assume(miter)
	return g.Solve() == -1
}

func TestLowerEquivalent(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		for _, v := range []*logic.Variant{logic.GTG, logic.HashedGTG, logic.GTech} {
			p, q := logic.NewPrimary(), logic.New(v)
			build(seed, 6, 120, 5, p, q)
			if !equiv(t, p, q) {
				t.Errorf("seed %d: %s not equivalent to primary", seed, v)
			}
		}
	}
}

func TestLower(t *testing.T) {
	ntk := logic.NewPrimary()
	a, b := ntk.CreatePI(), ntk.CreatePI()
	ntk.CreatePO(ntk.Xnor(a, b))
	s, outs := aig.Lower(ntk)
	if len(outs) != 1 {
		t.Fatalf("%d outputs", len(outs))
	}
	vs := make([]bool, s.Len())
	for x := 0; x < 4; x++ {
		vs[2], vs[3] = x&1 != 0, x&2 != 0
		s.Eval(vs)
		got := vs[outs[0].Var()] == outs[0].IsPos()
		if got != (vs[2] == vs[3]) {
			t.Errorf("xnor(%t, %t) = %t", vs[2], vs[3], got)
		}
	}
}

func TestLowerOther(t *testing.T) {
	a := logic.NewGTG()
	ms := []z.Sig{a.CreatePI(), a.CreatePI(), a.CreatePI()}
	a.CreatePO(a.CreateNode(ms, tt.FromWord(3, 0x6a)))
	b := logic.NewPrimary()
	x, y, w := b.CreatePI(), b.CreatePI(), b.CreatePI()
	// 0x6a is a ^ (b & c)
	b.CreatePO(b.Xor(x, b.And(y, w)))
	if !equiv(t, a, b) {
		t.Errorf("lowered table not equivalent")
	}
}

func TestMiterDistinguishes(t *testing.T) {
	a, b := logic.NewPrimary(), logic.NewPrimary()
	for _, ntk := range []*logic.Network{a, b} {
		ntk.CreatePI()
		ntk.CreatePI()
	}
	a.CreatePO(a.And(a.PI(0).Pos(), a.PI(1).Pos()))
	b.CreatePO(b.Or(b.PI(0).Pos(), b.PI(1).Pos()))
	if equiv(t, a, b) {
		t.Errorf("and equivalent to or")
	}
}

func TestAigerRoundTrip(t *testing.T) {
	for _, binary := range []bool{false, true} {
		src := logic.NewGTech()
		build(7, 5, 80, 4, src)
		var buf bytes.Buffer
		if err := aig.WriteAiger(&buf, src, binary); err != nil {
			t.Fatal(err)
		}
		dst := logic.NewPrimary()
		if err := aig.ReadAiger(&buf, binary, dst); err != nil {
			t.Fatal(err)
		}
		if dst.NumPIs() != src.NumPIs() || dst.NumPOs() != src.NumPOs() {
			t.Fatalf("binary %t: io %d/%d != %d/%d", binary,
				dst.NumPIs(), dst.NumPOs(), src.NumPIs(), src.NumPOs())
		}
		ins := make([]tt.T, src.NumPIs())
		for i := range ins {
			ins[i] = tt.Nth(len(ins), i)
		}
		want := src.SimulatePOs(ins)
		got := dst.SimulatePOs(ins)
		for i := range want {
			if !got[i].Equal(want[i]) {
				t.Errorf("binary %t: output %d: %s != %s", binary, i, got[i], want[i])
			}
		}
	}
}

func TestWriteAigerComplemented(t *testing.T) {
	ntk := logic.NewPrimary()
	a, b := ntk.CreatePI(), ntk.CreatePI()
	ntk.CreatePO(ntk.Or(a, b))
	ntk.CreatePI()
	for _, tc := range []struct {
		binary bool
		want   string
	}{
		{false, "aag 4 3 0 1 1\n2\n4\n6\n9\n8 5 3\n"},
		{true, "aig 4 3 0 1 1\n9\n\x03\x02"}} {
		var buf bytes.Buffer
		if err := aig.WriteAiger(&buf, ntk, tc.binary); err != nil {
			t.Fatal(err)
		}
		if got := buf.String(); got != tc.want {
			t.Errorf("binary %t: got %q, want %q", tc.binary, got, tc.want)
		}
		back := logic.NewPrimary()
		if err := aig.ReadAiger(strings.NewReader(tc.want), tc.binary, back); err != nil {
			t.Fatalf("binary %t: %v", tc.binary, err)
		}
		if back.NumPIs() != 3 || back.NumPOs() != 1 {
			t.Errorf("binary %t: io %d/%d", tc.binary, back.NumPIs(), back.NumPOs())
		}
	}
}

func TestReadAigerLatch(t *testing.T) {
	// toggle flip flop with enable input
	const toggle = "aag 3 1 1 1 1\n2\n4 6\n6\n6 5 3\n"
	ntk := logic.NewPrimary()
	if err := aig.ReadAiger(strings.NewReader(toggle), false, ntk); err != nil {
		t.Fatal(err)
	}
	if ntk.NumPIs() != 2 || ntk.NumPOs() != 2 || ntk.NumGates() != 1 {
		t.Errorf("cut latch: %d pis %d pos %d gates", ntk.NumPIs(), ntk.NumPOs(), ntk.NumGates())
	}
	if ntk.PO(0) != ntk.PO(1) {
		t.Errorf("next state and output differ: %s %s", ntk.PO(0), ntk.PO(1))
	}
}

func TestReadAigerError(t *testing.T) {
	if err := aig.ReadAiger(strings.NewReader("aig x"), false, logic.NewPrimary()); err == nil {
		t.Errorf("no error on bad header")
	}
}
