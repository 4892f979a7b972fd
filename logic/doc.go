// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package logic provides hash-consed logic networks.
//
// A Network is a directed acyclic graph of nodes stored in an append only
// arena.  Node 0 is the constant node; the remaining nodes are primary
// inputs and gates.  Gates reference their children by z.Sig, so
// inversion is free.  The function of every gate is a truth table held in
// a deduplicating cache, and the cache literal of the table doubles as
// the kind of the gate.
//
// The same engine implements several variants, see Variant.  Variants
// which hash nodes never create two nodes with the same function and
// children.
//
// Nodes are never removed.  A gate can be marked dead by Kill, after
// which traversals skip it.
//
// Networks perform no locking.  Storage may be shared by several handles,
// such as views, but must be mutated by one at a time.
package logic
