// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package z

import "fmt"

// Type Node is an index of a node in a network.
type Node uint32

// NodeNull is not a valid node of any network other than as the
// constant node.  It is returned by lookups which fail.
const NodeNull Node = 0

// Pos returns the positive (uncomplemented) signal of n.
func (n Node) Pos() Sig {
	return Sig(n << 1)
}

// Neg returns the negative (complemented) signal of n.
func (n Node) Neg() Sig {
	return Sig(n<<1 | 1)
}

// Sig returns the signal of n with complement c.
func (n Node) Sig(c bool) Sig {
	if c {
		return n.Neg()
	}
	return n.Pos()
}

func (n Node) String() string {
	return fmt.Sprintf("n%d", uint32(n))
}
