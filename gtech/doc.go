// Copyright 2018 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package gtech reads structural gtech verilog netlists.
//
// The dialect is a small subset of verilog: module headers, input,
// output and wire declarations with optional [hi:lo] ranges, parameters,
// latches, one statement per primitive gate, assignments whose right
// hand side matches a small fixed grammar, and instantiation of modules
// defined earlier in the same input.
//
// Statements may refer to signals which are only produced by later
// statements.  Read defers every statement with a Sched until all the
// signals it depends on are produced, so a Reader sees statements in a
// topological order.  Signals which are never produced are reported at
// the end of their module as unresolved dependencies, which fails the
// read.  Reading is not transactional: a Reader may have received part
// of the input before a failure, and that part is unspecified.
//
// Builder is a Reader which constructs the netlist in an inter.Builder,
// such as a *logic.Network.
package gtech
