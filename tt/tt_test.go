// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package tt_test

import (
	"math/rand"
	"testing"

	"github.com/go-air/lnet/tt"
)

var rnd = rand.New(rand.NewSource(1))

func randT(n int) tt.T {
	ws := make([]uint64, len(tt.New(n).Words()))
	for i := range ws {
		ws[i] = rnd.Uint64()
	}
	return tt.FromWords(n, ws)
}

func TestNth(t *testing.T) {
	for n := 1; n <= 8; n++ {
		for i := 0; i < n; i++ {
			p := tt.Nth(n, i)
			for m := 0; m < p.Bits(); m++ {
				if p.Bit(m) != ((m>>uint(i))&1 == 1) {
					t.Errorf("nth(%d,%d) bit %d", n, i, m)
				}
			}
		}
	}
}

func TestHex(t *testing.T) {
	and := tt.And(tt.Nth(2, 0), tt.Nth(2, 1))
	if and.Hex() != "8" {
		t.Errorf("and hex: %s", and.Hex())
	}
	maj := tt.FromWord(3, 0xe8)
	if maj.Hex() != "e8" {
		t.Errorf("maj hex: %s", maj.Hex())
	}
	if tt.Const(0, true).Hex() != "1" {
		t.Errorf("const1 hex: %s", tt.Const(0, true).Hex())
	}
}

func TestNot(t *testing.T) {
	for n := 0; n <= 8; n++ {
		a := randT(n)
		if !a.Not().Not().Equal(a) {
			t.Errorf("double complement %d", n)
		}
		if !tt.Xor(a, a.Not()).Equal(tt.Const(n, true)) {
			t.Errorf("xor complement %d", n)
		}
		if a.Count()+a.Not().Count() != a.Bits() {
			t.Errorf("count %d", n)
		}
	}
}

func TestCacheRoundTrip(t *testing.T) {
	c := tt.NewCache()
	for i := 0; i < 200; i++ {
		n := rnd.Intn(9)
		a := randT(n)
		lit := c.Insert(a)
		if c.Insert(a) != lit {
			t.Errorf("insert not idempotent")
		}
		if !c.Lookup(lit).Equal(a) {
			t.Errorf("lookup(insert(%s)) = %s", a, c.Lookup(lit))
		}
		if c.Insert(a.Not()) != lit^1 {
			t.Errorf("complement literal")
		}
		for m := 0; m < a.Bits(); m++ {
			if c.Bit(lit, m) != a.Bit(m) {
				t.Errorf("bit %d of %s", m, a)
			}
		}
	}
}

func TestCacheReserved(t *testing.T) {
	c := tt.NewCache()
	want := []struct {
		t   tt.T
		lit uint32
	}{
		{tt.Const(0, false), 0},
		{tt.Const(0, true), 1},
		{tt.Nth(1, 0), 2},
		{tt.FromWord(2, 0x8), 4},
		{tt.FromWord(2, 0x7), 5},
		{tt.FromWord(2, 0xe), 6},
		{tt.FromWord(2, 0x1), 7}}
	for _, w := range want {
		if lit := c.Insert(w.t); lit != w.lit {
			t.Errorf("%s: got literal %d want %d", w.t, lit, w.lit)
		}
	}
	if lit := c.Insert(tt.Nth(1, 0).Not()); lit != 3 {
		t.Errorf("not: got %d", lit)
	}
	d := c.Clone()
	c.Insert(tt.FromWord(2, 0x6))
	if d.Len() == c.Len() {
		t.Errorf("clone shares storage")
	}
}
