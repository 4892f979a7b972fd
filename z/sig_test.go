// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package z

import (
	"fmt"
	"testing"
)

func TestSigPacking(t *testing.T) {
	for i := 0; i < 100; i++ {
		n := Node(i)
		if n.Pos().Node() != n || n.Neg().Node() != n {
			t.Errorf("node round trip %d", i)
		}
		if !n.Pos().IsPos() {
			t.Errorf("not positive: %d", i)
		}
		if n.Neg().IsPos() {
			t.Errorf("not negative: %d", i)
		}
		if n.Sig(true) != n.Neg() || n.Sig(false) != n.Pos() {
			t.Errorf("Sig(c) mismatch %d", i)
		}
	}
}

func TestSigAlgebra(t *testing.T) {
	s := Node(33).Pos()
	if s.Not().Not() != s {
		t.Errorf("double negation")
	}
	if s.Not().Abs() != s || s.Neg() != s.Not() {
		t.Errorf("force polarity")
	}
	if s.Xor(false) != s || s.Xor(true) != s.Not() {
		t.Errorf("xor with bool")
	}
	if !Const0.IsConst() || !Const1.IsConst() || s.IsConst() {
		t.Errorf("constants")
	}
	if Const0.Not() != Const1 {
		t.Errorf("constant negation")
	}
	if fmt.Sprintf("%s", s.Not()) != "!n33" {
		t.Errorf("format: %s", s.Not())
	}
	if fmt.Sprintf("%s", Node(33)) != fmt.Sprintf("n%d", 33) {
		t.Errorf("format.")
	}
}
