// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package lnet reads gate level netlists into logic networks.
//
// Read parses a gtech netlist and builds the selected module in a
// network of the selected variant:
//
//	ntk, info, err := lnet.Read(f, lnet.Variant(logic.GTech), lnet.Top("alu"))
//
// Packages logic, gtech and logic/aig provide the underlying network
// engine, reader and AIGER bridge.
package lnet

import (
	"io"

	"github.com/pkg/errors"

	"github.com/go-air/lnet/gtech"
	"github.com/go-air/lnet/logic"
)

type config struct {
	variant *logic.Variant
	top     string
	diags   gtech.Diagnostics
	known   []string
}

// Option configures Read.
type Option func(*config)

// Variant makes Read build a network of variant v.  The default is
// logic.Primary.
func Variant(v *logic.Variant) Option {
	return func(c *config) {
		c.variant = v
	}
}

// Top selects the module to build by name.  By default, the last module
// is built.
func Top(name string) Option {
	return func(c *config) {
		c.top = name
	}
}

// Diagnostics reports diagnostics to d.
func Diagnostics(d gtech.Diagnostics) Option {
	return func(c *config) {
		c.diags = d
	}
}

// Known declares external signals, such as clocks, which every module
// may use without defining.  Each one becomes a primary input following
// the input bits, listed in PortInfo.Externals.
func Known(names ...string) Option {
	return func(c *config) {
		c.known = append(c.known, names...)
	}
}

// Read reads a gtech netlist from r and builds its top module in a new
// network.  The returned PortInfo describes the inputs and outputs of the
// network, which follow the ports of the module bit by bit.
func Read(r io.Reader, opts ...Option) (*logic.Network, gtech.PortInfo, error) {
	c := &config{variant: logic.Primary}
	for _, opt := range opts {
		opt(c)
	}
	ntk := logic.New(c.variant)
	b := gtech.NewBuilder(ntk, c.top, c.diags)
	b.Extern(c.known...)
	if err := gtech.Read(r, b, gtech.WithDiagnostics(c.diags), gtech.WithKnown(c.known...)); err != nil {
		return nil, gtech.PortInfo{}, err
	}
	info, err := b.Finish()
	if err != nil {
		return nil, info, errors.Wrap(err, "lnet")
	}
	ntk.SetName(info.Module)
	return ntk, info, nil
}
