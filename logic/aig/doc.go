// Copyright 2018 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package aig connects logic networks to and-inverter graphs as
// represented by github.com/go-air/gini/logic.
//
// Lower maps every live gate to and gates over its children, so that the
// result can be handed to gini's solver or written in aiger format 1.9
// with WriteAiger.  ReadAiger goes the other way, constructing an aiger
// file in any inter.Builder.
package aig
