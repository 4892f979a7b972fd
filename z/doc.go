// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package z contains the basic value types of lnet: nodes and signals.
//
// A Node is an index into the node arena of a network.  Node 0 is always the
// constant node.  A Sig is a node together with a complement (inversion) bit,
// packed into a single uint32 as
//
//  index<<1 | complement
//
// so signals are cheap to copy, compare and use as map keys.
package z
