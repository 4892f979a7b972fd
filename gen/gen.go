// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package gen

import (
	"math/rand"
	"sync"

	"github.com/go-air/lnet/inter"
	"github.com/go-air/lnet/z"
)

/// make the rng seedable
var rng = rand.New(rand.NewSource(33))
var mu sync.Mutex

func Seed(s int64) {
	mu.Lock()
	defer mu.Unlock()
	rng = rand.New(rand.NewSource(s))
}

func operand(ms []z.Sig) z.Sig {
	return ms[rng.Intn(len(ms))].Xor(rng.Intn(2) == 1)
}

// RandNetwork builds a random network with nIn inputs and nGates gates
// of random kinds in b, and makes the last nOut gates outputs.
func RandNetwork(b inter.Builder, nIn, nGates, nOut int) {
	mu.Lock() // for package rng
	defer mu.Unlock()
	ms := make([]z.Sig, 0, nIn+nGates)
	for i := 0; i < nIn; i++ {
		ms = append(ms, b.CreatePI())
	}
	for i := 0; i < nGates; i++ {
		x, y, w := operand(ms), operand(ms), operand(ms)
		var g z.Sig
		switch rng.Intn(12) {
		case 0:
			g = b.And(x, y)
		case 1:
			g = b.Or(x, y)
		case 2:
			g = b.Xor(x, y)
		case 3:
			g = b.Lt(x, y)
		case 4:
			g = b.Maj(x, y, w)
		case 5:
			g = b.Ite(x, y, w)
		case 6:
			g = b.Xor3(x, y, w)
		case 7:
			g = b.And3(x, y, w)
		case 8:
			g = b.Aoi21(x, y, w)
		case 9:
			g = b.Oxi21(x, y, w)
		case 10:
			g = b.Ands(x, y, w, operand(ms))
		case 11:
			g = b.Xors(x, y, w, operand(ms))
		}
		ms = append(ms, g)
	}
	if nOut > len(ms) {
		nOut = len(ms)
	}
	for _, m := range ms[len(ms)-nOut:] {
		b.CreatePO(m)
	}
}
