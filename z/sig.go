// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package z

import "fmt"

// Type Sig is a reference to a node together with a complement bit.
//
// The complement bit is the low bit, the node index the remaining bits.
type Sig uint32

// The constant signals, both over node 0.
const (
	Const0 Sig = 0
	Const1 Sig = 1
)

// Node returns the node referenced by s.
func (s Sig) Node() Node {
	return Node(s >> 1)
}

// IsPos returns true if s is not complemented.
func (s Sig) IsPos() bool {
	return s&1 == 0
}

// Compl returns true if s is complemented.
func (s Sig) Compl() bool {
	return s&1 == 1
}

// Not returns the negation of s.
func (s Sig) Not() Sig {
	return s ^ 1
}

// Abs returns s forced to positive polarity.
func (s Sig) Abs() Sig {
	return s &^ 1
}

// Neg returns s forced to negative polarity.
func (s Sig) Neg() Sig {
	return s | 1
}

// Xor returns s negated if b is true, s otherwise.
func (s Sig) Xor(b bool) Sig {
	if b {
		return s ^ 1
	}
	return s
}

// IsConst returns whether s is one of the two constant signals.
func (s Sig) IsConst() bool {
	return s>>1 == 0
}

func (s Sig) String() string {
	if s.IsPos() {
		return fmt.Sprintf("n%d", uint32(s>>1))
	}
	return fmt.Sprintf("!n%d", uint32(s>>1))
}
