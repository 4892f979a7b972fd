// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package logic

import "github.com/go-air/lnet/z"

func (ntk *Network) gate2(g Gate, a, b z.Sig) z.Sig {
	if ntk.v.Canonical && a.Node() > b.Node() {
		a, b = b, a
	}
	cs := [2]z.Sig{a, b}
	return ntk.create(gateLits[g], cs[:])
}

func (ntk *Network) gate3(g Gate, a, b, c z.Sig) z.Sig {
	cs := [3]z.Sig{a, b, c}
	return ntk.create(gateLits[g], cs[:])
}

// Buf returns a, no node is created.
func (ntk *Network) Buf(a z.Sig) z.Sig {
	return a
}

// Not returns the complement of a, no node is created.
func (ntk *Network) Not(a z.Sig) z.Sig {
	return a.Not()
}

// And returns a signal equivalent to "a and b".
func (ntk *Network) And(a, b z.Sig) z.Sig {
	return ntk.gate2(And, a, b)
}

// Nand returns a signal equivalent to "not (a and b)".
func (ntk *Network) Nand(a, b z.Sig) z.Sig {
	if ntk.v.natives.has(Nand) {
		return ntk.gate2(Nand, a, b)
	}
	return ntk.And(a, b).Not()
}

// Or returns a signal equivalent to "a or b".
func (ntk *Network) Or(a, b z.Sig) z.Sig {
	if ntk.v.natives.has(Or) {
		return ntk.gate2(Or, a, b)
	}
	return ntk.And(a.Not(), b.Not()).Not()
}

// Nor returns a signal equivalent to "not (a or b)".
func (ntk *Network) Nor(a, b z.Sig) z.Sig {
	if ntk.v.natives.has(Nor) {
		return ntk.gate2(Nor, a, b)
	}
	return ntk.Or(a, b).Not()
}

// Xor returns a signal equivalent to "a xor b".
func (ntk *Network) Xor(a, b z.Sig) z.Sig {
	if ntk.v.natives.has(Xor) {
		return ntk.gate2(Xor, a, b)
	}
	return ntk.Or(ntk.And(a, b.Not()), ntk.And(a.Not(), b))
}

// Xnor returns a signal equivalent to "a iff b".
func (ntk *Network) Xnor(a, b z.Sig) z.Sig {
	if ntk.v.natives.has(Xnor) {
		return ntk.gate2(Xnor, a, b)
	}
	return ntk.Xor(a, b).Not()
}

// Lt returns a signal equivalent to "a < b", that is "not a and b".
func (ntk *Network) Lt(a, b z.Sig) z.Sig {
	return ntk.And(a.Not(), b)
}

// Le returns a signal equivalent to "a <= b".
func (ntk *Network) Le(a, b z.Sig) z.Sig {
	return ntk.And(a, b.Not()).Not()
}

// Maj returns the majority of a, b and c.
func (ntk *Network) Maj(a, b, c z.Sig) z.Sig {
	if ntk.v.natives.has(Maj) {
		return ntk.gate3(Maj, a, b, c)
	}
	c1 := ntk.Xor(a, b)
	c2 := ntk.Xor(a, c)
	c3 := ntk.And(c1, c2)
	return ntk.Xor(a, c3)
}

// Ite returns a signal equivalent to "if i then t else e".
func (ntk *Network) Ite(i, t, e z.Sig) z.Sig {
	if ntk.v.natives.has(Ite) {
		return ntk.gate3(Ite, i, t, e)
	}
	compl := false
	if t.Node() < e.Node() {
		t, e = e, t
		i = i.Not()
	}
	if t.Compl() {
		t = t.Not()
		e = e.Not()
		compl = true
	}
	return ntk.And(ntk.And(i.Not(), e).Not(), ntk.And(i, t).Not()).Xor(!compl)
}

// Mux21 is Ite.
func (ntk *Network) Mux21(i, t, e z.Sig) z.Sig {
	return ntk.Ite(i, t, e)
}

// Nmux21 returns the complement of Ite.
func (ntk *Network) Nmux21(i, t, e z.Sig) z.Sig {
	return ntk.Ite(i, t, e).Not()
}

// Xor3 returns the parity of a, b and c.
func (ntk *Network) Xor3(a, b, c z.Sig) z.Sig {
	if ntk.v.natives.has(Xor3) {
		return ntk.gate3(Xor3, a, b, c)
	}
	return ntk.Xor(ntk.Xor(a, b), c)
}

// And3 returns the conjunction of a, b and c.
func (ntk *Network) And3(a, b, c z.Sig) z.Sig {
	if ntk.v.natives.has(And3) {
		return ntk.gate3(And3, a, b, c)
	}
	return ntk.And(a, ntk.And(b, c))
}

// Or3 returns the disjunction of a, b and c.
func (ntk *Network) Or3(a, b, c z.Sig) z.Sig {
	if ntk.v.natives.has(Or3) {
		return ntk.gate3(Or3, a, b, c)
	}
	return ntk.Or(a, ntk.Or(b, c))
}

// Nand3 returns the complement of And3.
func (ntk *Network) Nand3(a, b, c z.Sig) z.Sig {
	if ntk.v.natives.has(Nand3) {
		return ntk.gate3(Nand3, a, b, c)
	}
	return ntk.And3(a, b, c).Not()
}

// Nor3 returns the complement of Or3.
func (ntk *Network) Nor3(a, b, c z.Sig) z.Sig {
	if ntk.v.natives.has(Nor3) {
		return ntk.gate3(Nor3, a, b, c)
	}
	return ntk.Or3(a, b, c).Not()
}

// Aoi21 returns "not ((a and b) or c)".
func (ntk *Network) Aoi21(a, b, c z.Sig) z.Sig {
	if ntk.v.natives.has(Aoi21) {
		return ntk.gate3(Aoi21, a, b, c)
	}
	return ntk.Or(ntk.And(a, b), c).Not()
}

// Oai21 returns "not ((a or b) and c)".
func (ntk *Network) Oai21(a, b, c z.Sig) z.Sig {
	if ntk.v.natives.has(Oai21) {
		return ntk.gate3(Oai21, a, b, c)
	}
	return ntk.And(ntk.Or(a, b), c).Not()
}

// Axi21 returns "not ((a and c) xor b)".
func (ntk *Network) Axi21(a, b, c z.Sig) z.Sig {
	if ntk.v.natives.has(Axi21) {
		return ntk.gate3(Axi21, a, b, c)
	}
	return ntk.Xor(ntk.And(a, c), b).Not()
}

// Xai21 returns "not ((a xor c) and b)".
func (ntk *Network) Xai21(a, b, c z.Sig) z.Sig {
	if ntk.v.natives.has(Xai21) {
		return ntk.gate3(Xai21, a, b, c)
	}
	return ntk.And(ntk.Xor(a, c), b).Not()
}

// Oxi21 returns "not ((a or c) xor b)".
func (ntk *Network) Oxi21(a, b, c z.Sig) z.Sig {
	if ntk.v.natives.has(Oxi21) {
		return ntk.gate3(Oxi21, a, b, c)
	}
	return ntk.Xor(ntk.Or(a, c), b).Not()
}

// Xoi21 returns "not ((a xor c) or b)".
func (ntk *Network) Xoi21(a, b, c z.Sig) z.Sig {
	if ntk.v.natives.has(Xoi21) {
		return ntk.gate3(Xoi21, a, b, c)
	}
	return ntk.Or(ntk.Xor(a, c), b).Not()
}

// CreateGate creates gate g over ms, which must contain g.Arity() signals.
func (ntk *Network) CreateGate(g Gate, ms ...z.Sig) z.Sig {
	if g.Arity() != len(ms) {
		panic("logic: " + g.String() + ": wrong number of operands")
	}
	switch g {
	case Const:
		return z.Const0
	case Buf:
		return ntk.Buf(ms[0])
	case Not:
		return ntk.Not(ms[0])
	case And:
		return ntk.And(ms[0], ms[1])
	case Nand:
		return ntk.Nand(ms[0], ms[1])
	case Or:
		return ntk.Or(ms[0], ms[1])
	case Nor:
		return ntk.Nor(ms[0], ms[1])
	case Lt:
		return ntk.Lt(ms[0], ms[1])
	case Le:
		return ntk.Le(ms[0], ms[1])
	case Xor:
		return ntk.Xor(ms[0], ms[1])
	case Xnor:
		return ntk.Xnor(ms[0], ms[1])
	case Maj:
		return ntk.Maj(ms[0], ms[1], ms[2])
	case Ite:
		return ntk.Ite(ms[0], ms[1], ms[2])
	case Nite:
		return ntk.Nmux21(ms[0], ms[1], ms[2])
	case Xor3:
		return ntk.Xor3(ms[0], ms[1], ms[2])
	case And3:
		return ntk.And3(ms[0], ms[1], ms[2])
	case Nand3:
		return ntk.Nand3(ms[0], ms[1], ms[2])
	case Or3:
		return ntk.Or3(ms[0], ms[1], ms[2])
	case Nor3:
		return ntk.Nor3(ms[0], ms[1], ms[2])
	case Aoi21:
		return ntk.Aoi21(ms[0], ms[1], ms[2])
	case Oai21:
		return ntk.Oai21(ms[0], ms[1], ms[2])
	case Axi21:
		return ntk.Axi21(ms[0], ms[1], ms[2])
	case Xai21:
		return ntk.Xai21(ms[0], ms[1], ms[2])
	case Oxi21:
		return ntk.Oxi21(ms[0], ms[1], ms[2])
	case Xoi21:
		return ntk.Xoi21(ms[0], ms[1], ms[2])
	default:
		panic("logic: cannot create gate " + g.String())
	}
}

// Ands returns the conjunction of ms as a balanced tree.  If ms is empty,
// Ands returns the true signal.
func (ntk *Network) Ands(ms ...z.Sig) z.Sig {
	return reduce(ms, z.Const1, ntk.And)
}

// Ors returns the disjunction of ms as a balanced tree.  If ms is empty,
// Ors returns the false signal.
func (ntk *Network) Ors(ms ...z.Sig) z.Sig {
	return reduce(ms, z.Const0, ntk.Or)
}

// Xors returns the parity of ms as a balanced tree.  If ms is empty,
// Xors returns the false signal.
func (ntk *Network) Xors(ms ...z.Sig) z.Sig {
	return reduce(ms, z.Const0, ntk.Xor)
}

func reduce(ms []z.Sig, id z.Sig, op func(a, b z.Sig) z.Sig) z.Sig {
	switch len(ms) {
	case 0:
		return id
	case 1:
		return ms[0]
	}
	h := len(ms) / 2
	return op(reduce(ms[:h], id, op), reduce(ms[h:], id, op))
}
