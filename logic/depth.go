// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package logic

import "github.com/go-air/lnet/z"

// Type DepthView is a view of a network which keeps the level of every
// node up to date as nodes are added.  Inputs and the constant have level
// 0, a gate has level one more than its deepest child.
type DepthView struct {
	*Network
	levels []uint32
	obs    *Observer
}

// NewDepthView creates a depth view on the storage of ntk.
func NewDepthView(ntk *Network) *DepthView {
	d := &DepthView{Network: ntk.View()}
	d.Update()
	d.obs = ntk.Events().OnAdd(d.added)
	return d
}

// Update recomputes all levels.
func (d *DepthView) Update() {
	d.levels = d.levels[:0]
	for i := 0; i < d.Size(); i++ {
		d.levels = append(d.levels, 0)
		d.setLevel(z.Node(i))
	}
}

func (d *DepthView) setLevel(n z.Node) {
	var l uint32
	d.ForeachFanin(n, func(m z.Sig, _ int) bool {
		if cl := d.levels[m.Node()] + 1; cl > l {
			l = cl
		}
		return true
	})
	d.levels[n] = l
}

func (d *DepthView) added(n z.Node) {
	for int(n) >= len(d.levels) {
		d.levels = append(d.levels, 0)
	}
	d.setLevel(n)
}

// CreatePI creates a primary input with level 0.
func (d *DepthView) CreatePI() z.Sig {
	m := d.Network.CreatePI()
	d.added(m.Node())
	return m
}

// Level returns the level of n.
func (d *DepthView) Level(n z.Node) int {
	if int(n) >= len(d.levels) {
		return 0
	}
	return int(d.levels[n])
}

// Depth returns the largest level of a primary output, whichever handle
// created it.
func (d *DepthView) Depth() int {
	depth := 0
	d.ForeachPO(func(m z.Sig, _ int) bool {
		if l := d.Level(m.Node()); l > depth {
			depth = l
		}
		return true
	})
	return depth
}

// Release stops tracking additions to the network.
func (d *DepthView) Release() {
	if d.obs != nil {
		d.Events().Release(d.obs)
		d.obs = nil
	}
}
