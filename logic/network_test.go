// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package logic_test

import (
	"math/rand"
	"testing"

	"github.com/go-air/lnet/logic"
	"github.com/go-air/lnet/tt"
	"github.com/go-air/lnet/z"
)

var rnd = rand.New(rand.NewSource(1))

func pis(ntk *logic.Network, n int) []z.Sig {
	ms := make([]z.Sig, n)
	for i := range ms {
		ms[i] = ntk.CreatePI()
	}
	return ms
}

func TestReservedLiterals(t *testing.T) {
	want := map[logic.Gate]uint32{
		logic.Const: 0,
		logic.Input: 1,
		logic.Buf:   2,
		logic.Not:   3,
		logic.And:   4,
		logic.Nand:  5,
		logic.Or:    6,
		logic.Nor:   7,
		logic.Lt:    8,
		logic.Le:    11,
		logic.Xor:   12,
		logic.Xnor:  13,
		logic.Maj:   14,
		logic.Ite:   16,
		logic.Nite:  17,
		logic.Xor3:  18}
	for g, lit := range want {
		if g.Literal() != lit {
			t.Errorf("%s: literal %d want %d", g, g.Literal(), lit)
		}
	}
	if logic.Maj.Table().Hex() != "e8" || logic.Ite.Table().Hex() != "d8" || logic.Xor3.Table().Hex() != "96" {
		t.Errorf("3 input tables %s %s %s", logic.Maj.Table(), logic.Ite.Table(), logic.Xor3.Table())
	}
	seen := map[uint32]logic.Gate{}
	for g := logic.Const; g < logic.Other; g++ {
		if h, ok := seen[g.Literal()]; ok {
			t.Errorf("%s and %s share literal %d", g, h, g.Literal())
		}
		seen[g.Literal()] = g
	}
}

func TestStrashIdempotent(t *testing.T) {
	for _, v := range []*logic.Variant{logic.Primary, logic.HashedGTG, logic.GTech} {
		ntk := logic.New(v)
		ms := pis(ntk, 3)
		a, b, c := ms[0], ms[1].Not(), ms[2]
		ops := []func() z.Sig{
			func() z.Sig { return ntk.And(a, b) },
			func() z.Sig { return ntk.Or(a, b) },
			func() z.Sig { return ntk.Xor(a, b) },
			func() z.Sig { return ntk.Nand(a, b) },
			func() z.Sig { return ntk.Maj(a, b, c) },
			func() z.Sig { return ntk.Ite(a, b, c) },
			func() z.Sig { return ntk.Aoi21(a, b, c) }}
		for i, op := range ops {
			g := op()
			n := ntk.Size()
			if h := op(); h != g {
				t.Errorf("%s: op %d: invalid strash %s != %s", v, i, h, g)
			}
			if ntk.Size() != n {
				t.Errorf("%s: op %d: size grew", v, i)
			}
		}
	}
}

func TestNoStrash(t *testing.T) {
	ntk := logic.NewGTG()
	ms := pis(ntk, 2)
	if ntk.And(ms[0], ms[1]) == ntk.And(ms[0], ms[1]) {
		t.Errorf("gtg hashed")
	}
	if ntk.NumGates() != 2 {
		t.Errorf("gates: %d", ntk.NumGates())
	}
}

func TestCanonicalOrder(t *testing.T) {
	ntk := logic.NewPrimary()
	ms := pis(ntk, 2)
	g := ntk.And(ms[0], ms[1])
	h := ntk.And(ms[1], ms[0])
	if g != h || ntk.NumGates() != 1 {
		t.Errorf("and(a,b) != and(b,a): %s %s", g, h)
	}
	hashed := logic.New(logic.HashedGTG)
	ms = pis(hashed, 2)
	if hashed.And(ms[0], ms[1]) == hashed.And(ms[1], ms[0]) {
		t.Errorf("non canonical variant reordered operands")
	}
}

func TestNotBufFree(t *testing.T) {
	for _, v := range logic.Variants {
		ntk := logic.New(v)
		a := pis(ntk, 1)[0]
		n := ntk.Size()
		if ntk.Not(a) != a.Not() || ntk.Buf(a) != a {
			t.Errorf("%s: not/buf", v)
		}
		if ntk.Not(ntk.Not(a)) != a {
			t.Errorf("%s: double not", v)
		}
		if ntk.Size() != n {
			t.Errorf("%s: not/buf allocated", v)
		}
	}
}

func TestGateFunctions(t *testing.T) {
	for _, v := range logic.Variants {
		for g := logic.Buf; g < logic.Other; g++ {
			ntk := logic.New(v)
			k := g.Arity()
			ms := pis(ntk, k)
			ntk.CreatePO(ntk.CreateGate(g, ms...))
			ins := make([]tt.T, k)
			for j := range ins {
				ins[j] = tt.Nth(k, j)
			}
			got := ntk.SimulatePOs(ins)[0]
			if !got.Equal(g.Table()) {
				t.Errorf("%s: %s computes %s want %s", v, g, got, g.Table())
			}
			if v.Native(g) && k >= 2 && !ntk.IsGate(ntk.PO(0).Node()) {
				t.Errorf("%s: native %s is not a node", v, g)
			}
			if v.Native(g) && ntk.Kind(ntk.PO(0).Node()) != g {
				t.Errorf("%s: native %s classified as %s", v, g, ntk.Kind(ntk.PO(0).Node()))
			}
		}
	}
}

func TestPredicates(t *testing.T) {
	ntk := logic.NewGTech()
	ms := pis(ntk, 3)
	a, b, c := ms[0], ms[1], ms[2]
	checks := []struct {
		m    z.Sig
		pred func(z.Node) bool
	}{
		{ntk.And(a, b), ntk.IsAnd},
		{ntk.Nand(a, b), ntk.IsNand},
		{ntk.Or(a, b), ntk.IsOr},
		{ntk.Nor(a, b), ntk.IsNor},
		{ntk.Xor(a, b), ntk.IsXor},
		{ntk.Xnor(a, b), ntk.IsXnor},
		{ntk.Maj(a, b, c), ntk.IsMaj},
		{ntk.Ite(a, b, c), ntk.IsIte},
		{ntk.Xor3(a, b, c), ntk.IsXor3},
		{ntk.And3(a, b, c), ntk.IsAnd3},
		{ntk.Or3(a, b, c), ntk.IsOr3},
		{ntk.Nand3(a, b, c), ntk.IsNand3},
		{ntk.Nor3(a, b, c), ntk.IsNor3},
		{ntk.Aoi21(a, b, c), ntk.IsAoi21},
		{ntk.Oai21(a, b, c), ntk.IsOai21},
		{ntk.Axi21(a, b, c), ntk.IsAxi21},
		{ntk.Xai21(a, b, c), ntk.IsXai21},
		{ntk.Oxi21(a, b, c), ntk.IsOxi21},
		{ntk.Xoi21(a, b, c), ntk.IsXoi21},
		{ntk.CreateNode([]z.Sig{a, b}, logic.Lt.Table()), ntk.IsLt},
		{ntk.CreateNode([]z.Sig{a, b}, logic.Le.Table()), ntk.IsLe},
		{ntk.CreateNode([]z.Sig{a}, logic.Buf.Table()), ntk.IsBuf},
		{ntk.CreateNode([]z.Sig{a}, logic.Not.Table()), ntk.IsNot}}
	for i, c := range checks {
		if !c.pred(c.m.Node()) {
			t.Errorf("check %d: predicate false for %s (%s)", i, c.m, ntk.Kind(c.m.Node()))
		}
	}
	if !ntk.IsPI(a.Node()) || ntk.IsGate(a.Node()) || ntk.IsAnd(a.Node()) {
		t.Errorf("input predicates")
	}
	if !ntk.IsConstant(0) || ntk.IsPI(0) || ntk.Kind(0) != logic.Const {
		t.Errorf("constant predicates")
	}
	for i := 0; i < 3; i++ {
		if ntk.PIIndex(ntk.PI(i)) != i {
			t.Errorf("pi index %d", i)
		}
	}
}

func TestCreateNode(t *testing.T) {
	ntk := logic.NewGTG()
	if ntk.CreateNode(nil, tt.Const(0, true)) != z.Const1 {
		t.Errorf("constant 1")
	}
	if ntk.CreateNode(nil, tt.Const(0, false)) != z.Const0 {
		t.Errorf("constant 0")
	}
	ms := pis(ntk, 3)
	f := tt.FromWord(3, 0x1e)
	g := ntk.CreateNode(ms, f)
	if !ntk.NodeFunction(g.Node()).Equal(f) {
		t.Errorf("function %s want %s", ntk.NodeFunction(g.Node()), f)
	}
	if ntk.Kind(g.Node()) != logic.Other {
		t.Errorf("kind %s", ntk.Kind(g.Node()))
	}
	if ntk.FaninSize(g.Node()) != 3 {
		t.Errorf("fanin size %d", ntk.FaninSize(g.Node()))
	}
	defer func() {
		if recover() == nil {
			t.Errorf("4 children accepted by gtg")
		}
	}()
	ntk.CreateNode(append(ms, ms[0]), tt.New(4))
}

func TestCloneNode(t *testing.T) {
	src := logic.NewGTG()
	ms := pis(src, 3)
	f := tt.FromWord(3, 0x6a)
	g := src.CreateNode(ms, f)
	dst := logic.NewGTech()
	ns := pis(dst, 3)
	h := dst.CloneNode(src, g.Node(), []z.Sig{ns[2], ns[1], ns[0]})
	if !dst.NodeFunction(h.Node()).Equal(f) {
		t.Errorf("cloned function %s", dst.NodeFunction(h.Node()))
	}
	if dst.Fanin(h.Node(), 0) != ns[2] {
		t.Errorf("cloned children")
	}
	m := dst.CloneNode(src, src.And(ms[0], ms[1]).Node(), ns[:2])
	if !dst.IsAnd(m.Node()) {
		t.Errorf("cloned and is %s", dst.Kind(m.Node()))
	}
}

func TestNary(t *testing.T) {
	ntk := logic.NewPrimary()
	if ntk.Ands() != z.Const1 || ntk.Ors() != z.Const0 || ntk.Xors() != z.Const0 {
		t.Errorf("identities")
	}
	ms := pis(ntk, 8)
	if ntk.Ands(ms[3]) != ms[3] {
		t.Errorf("singleton")
	}
	g := ntk.Ands(ms...)
	d := logic.NewDepthView(ntk)
	defer d.Release()
	if d.Level(g.Node()) != 3 {
		t.Errorf("and of 8 has level %d, not balanced", d.Level(g.Node()))
	}
	ins := make([]tt.T, 8)
	for j := range ins {
		ins[j] = tt.Nth(8, j)
	}
	ntk.CreatePO(g)
	ntk.CreatePO(ntk.Ors(ms...))
	ntk.CreatePO(ntk.Xors(ms...))
	outs := ntk.SimulatePOs(ins)
	for m := 0; m < 256; m++ {
		par := false
		for j := 0; j < 8; j++ {
			par = par != ((m>>uint(j))&1 == 1)
		}
		if outs[0].Bit(m) != (m == 255) || outs[1].Bit(m) != (m != 0) || outs[2].Bit(m) != par {
			t.Errorf("nary at %d", m)
		}
	}
}

// checkFanout verifies that reference counts equal references from live
// nodes and outputs.
func checkFanout(t *testing.T, ntk *logic.Network) {
	t.Helper()
	refs := make([]int, ntk.Size())
	ntk.ForeachGate(func(n z.Node, _ int) bool {
		ntk.ForeachFanin(n, func(m z.Sig, _ int) bool {
			refs[m.Node()]++
			return true
		})
		return true
	})
	ntk.ForeachPO(func(m z.Sig, _ int) bool {
		refs[m.Node()]++
		return true
	})
	for i := range refs {
		if ntk.FanoutSize(z.Node(i)) != refs[i] {
			t.Errorf("%s: fanout %d refs %d", z.Node(i), ntk.FanoutSize(z.Node(i)), refs[i])
		}
	}
}

func randomNetwork(v *logic.Variant, nIn, nGates int) *logic.Network {
	ntk := logic.New(v)
	ms := pis(ntk, nIn)
	ms = append(ms, z.Const0, z.Const1)
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
	for i := 0; i < 4; i++ {
		ntk.CreatePO(pick())
	}
	return ntk
}

func TestFanoutConservation(t *testing.T) {
	for _, v := range logic.Variants {
		ntk := randomNetwork(v, 6, 200)
		checkFanout(t, ntk)
		killed := 0
		ntk.ForeachGate(func(n z.Node, _ int) bool {
			if ntk.FanoutSize(n) == 0 && killed < 10 {
				ntk.Kill(n)
				killed++
			}
			return true
		})
		checkFanout(t, ntk)
	}
}

func TestKill(t *testing.T) {
	ntk := logic.NewPrimary()
	ms := pis(ntk, 2)
	g := ntk.And(ms[0], ms[1])
	deleted := []z.Node{}
	obs := ntk.Events().OnDelete(func(n z.Node) { deleted = append(deleted, n) })
	ntk.Kill(g.Node())
	ntk.Events().Release(obs)
	if !ntk.IsDead(g.Node()) || ntk.NumGates() != 0 {
		t.Errorf("not dead")
	}
	if len(deleted) != 1 || deleted[0] != g.Node() {
		t.Errorf("delete event: %v", deleted)
	}
	if ntk.FanoutSize(ms[0].Node()) != 0 {
		t.Errorf("child fanout after kill")
	}
	ntk.ForeachNode(func(n z.Node, _ int) bool {
		if n == g.Node() {
			t.Errorf("dead node traversed")
		}
		return true
	})
	if ntk.FaninSize(g.Node()) != 2 {
		t.Errorf("dead node lost its fanin")
	}
	h := ntk.And(ms[0], ms[1])
	if h == g {
		t.Errorf("strash returned dead node")
	}
	ntk.Kill(g.Node())
	if ntk.FanoutSize(ms[0].Node()) != 1 {
		t.Errorf("double kill decremented")
	}
}

func TestDecrFanoutUnderflow(t *testing.T) {
	ntk := logic.NewPrimary()
	a := pis(ntk, 1)[0]
	defer func() {
		if recover() == nil {
			t.Errorf("underflow did not panic")
		}
	}()
	ntk.DecrFanout(a.Node())
}

func TestForeachEarlyExit(t *testing.T) {
	ntk := randomNetwork(logic.GTech, 4, 30)
	count := 0
	ntk.ForeachGate(logic.Plain(func(n z.Node) bool {
		count++
		return count < 3
	}))
	if count != 3 {
		t.Errorf("gate early exit after %d", count)
	}
	last := -1
	ntk.ForeachPI(func(n z.Node, i int) bool {
		if i != last+1 || ntk.PI(i) != n {
			t.Errorf("pi index %d", i)
		}
		last = i
		return true
	})
	if last != 3 {
		t.Errorf("pis visited %d", last+1)
	}
	ntk.ForeachFanin(ntk.PO(0).Node(), func(m z.Sig, i int) bool {
		if i > 0 {
			t.Errorf("fanin early exit")
		}
		return false
	})
}

func TestTravID(t *testing.T) {
	ntk := randomNetwork(logic.Primary, 4, 20)
	id := ntk.IncrTravID()
	ntk.SetVisited(3, id)
	if ntk.Visited(3) != ntk.TravID() {
		t.Errorf("visited")
	}
	ntk.IncrTravID()
	if ntk.Visited(3) == ntk.TravID() {
		t.Errorf("visited after increment")
	}
	ntk.SetValue(4, 7)
	if ntk.IncrValue(4) != 7 || ntk.DecrValue(4) != 7 || ntk.Value(4) != 7 {
		t.Errorf("values")
	}
	ntk.ClearValues()
	ntk.ClearVisited()
	if ntk.Value(4) != 0 || ntk.Visited(3) != 0 {
		t.Errorf("clear")
	}
}

func TestCloneAndView(t *testing.T) {
	ntk := randomNetwork(logic.HashedGTG, 4, 40)
	c := ntk.Clone()
	v := ntk.View()
	n := ntk.Size()
	ms := pis(v, 2)
	v.Xor(ms[0], ms[1])
	if ntk.Size() != n+3 {
		t.Errorf("view does not share storage")
	}
	if c.Size() != n {
		t.Errorf("clone shares storage")
	}
	checkFanout(t, c)
}
